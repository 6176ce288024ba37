// Package store persists the Monarch Money login session so authenticated
// clients can be rebuilt across process runs without re-entering credentials.
//
// It ships an in-memory implementation for tests and single-shot tools, and a
// file implementation backed by the afs abstract storage service.
package store
