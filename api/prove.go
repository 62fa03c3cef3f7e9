package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zkvoting/exovote/log"
	"github.com/zkvoting/exovote/verifier"
)

// prove verifies a residency-exclusion proof and returns the signed
// attestation binding (address, country code).
// POST /api/prove
func (a *API) prove(w http.ResponseWriter, r *http.Request) {
	req := &verifier.ProveRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrMalformedBody.Withf("could not decode request body: %v", err).Write(w)
		return
	}
	signature, err := a.verifier.CheckAndAttest(r.Context(), req)
	if err != nil {
		log.Warnw("prove request rejected", "address", req.Address.String(), "error", err.Error())
		proofErrorToAPIError(err).Write(w)
		return
	}
	httpWriteJSON(w, &ProveResponse{Signature: signature})
}

// proofErrorToAPIError maps the verifier error taxonomy onto the HTTP
// error envelope. Statement, proof and credential-kind failures are the
// caller's fault; node access failures are ours. Everything unclassified,
// including a credential id mismatch, deliberately surfaces as an internal
// error, matching the behavior callers already rely on.
func proofErrorToAPIError(err error) Error {
	switch {
	case errors.Is(err, verifier.ErrStatementNotAllowed):
		return ErrStatementNotAllowed
	case errors.Is(err, verifier.ErrNotAllowed):
		return ErrProofNotAllowed
	case errors.Is(err, verifier.ErrInvalidProofs):
		return ErrInvalidProof
	case errors.Is(err, verifier.ErrNodeAccess):
		return ErrNodeAccess.WithErr(err)
	default:
		return ErrGenericInternalServerError
	}
}
