// Package client implements the typed operation surface over the Monarch
// Money GraphQL API: accounts, transactions, categories and tags, budgets
// and cashflow.
//
// Every operation requires a logged-in session on the authenticator and
// executes exactly one request (the refresh-and-wait helper being the one
// bounded polling exception). Non-mutating operations are safe to retry;
// mutating ones are never retried by the client.
package client
