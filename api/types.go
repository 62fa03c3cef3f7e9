package api

import "github.com/zkvoting/exovote/types"

// ProveResponse is the success response of the prove endpoint: the
// attestation signature, hex-encoded.
type ProveResponse struct {
	Signature types.HexBytes `json:"signature"`
}
