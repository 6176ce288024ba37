// Package schema defines the wire-level contracts shared by the Monarch Money
// client packages: the GraphQL request envelope, the typed result shapes for
// every supported operation, the persisted session, and the error taxonomy.
//
// The shapes cover the subset of the remote schema the client actually
// requests; decoding is defensive and unexpected payloads surface as
// *OperationError rather than raw json errors.
package schema
