// Package api is the client's view of the Velvet Research backend
// collaborators: auth, upload, generation, and referral endpoints that
// do not exist in this repository yet.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (the Client interface) covering every
//     endpoint the Phase-I client sketch calls.
//  2. A concrete HTTP implementation (HTTPClient) that injects the bearer
//     token, submits staged files as multipart, and maps responses to a
//     small error taxonomy.
//
// # Error Handling
//
// Conditions callers branch on are sentinel errors matched with errors.Is:
// ErrUnavailable (collaborator unreachable) and ErrUnauthorized (401 from
// any endpoint; the caller must clear the session). Collaborator-reported
// failures are *APIError values whose Detail is shown to the user verbatim.
//
// See Also
//
//   - Interface: Client
//   - HTTP impl: HTTPClient
//   - Errors:    ErrUnavailable, ErrUnauthorized, APIError
package api
