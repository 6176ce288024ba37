// Package auth implements the Monarch Money login lifecycle: password login,
// the multi-factor step (manual code entry or local TOTP derivation from a
// seed), an interactive prompt flow, and session persistence through a
// pluggable store.
//
// Session validity is never probed proactively; an expired token is
// discovered when the remote rejects an authenticated call.
package auth
