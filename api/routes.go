package api

const (
	// PingEndpoint is the endpoint for checking the API status
	PingEndpoint = "/ping"
	// ProveEndpoint is the endpoint for verifying a residency proof and
	// obtaining a vote attestation
	ProveEndpoint = "/api/prove"
)
