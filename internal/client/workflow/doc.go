// Package workflow contains the client-side controllers of the Phase-I
// product sketch: authentication, upload staging, the kickoff sequence
// (upload → generate → redirect to review), and referrals.
//
// The flow the mockup scattered across ambient globals and per-element
// callbacks lives here as a single Controller holding the session service,
// the staging list, the collaborator client, and a UI port, plus a
// declarative event→handler table (Bindings). Everything runs on one
// goroutine; network calls suspend the flow until the collaborator
// answers, with the cosmetic busy flag as the only in-flight guard.
//
// Failure handling follows a fixed taxonomy: client-side validation stops
// before the network and raises a blocking notice; collaborator-reported
// failures surface their detail verbatim and reset the control state;
// unauthorized responses clear the session silently; transport failures
// show a generic message. No failure is fatal; every path returns the UI
// to an interactive idle state.
package workflow
