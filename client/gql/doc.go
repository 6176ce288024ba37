// Package gql implements the transport gateway for the Monarch Money API: a
// single HTTP round trip per call with ambient headers and the session token
// attached. It does not interpret remote error semantics beyond the raw
// status and body.
package gql
