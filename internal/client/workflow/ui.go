package workflow

import "context"

// UI is the surface the controllers drive. The CLI provides the concrete
// implementation; tests use a recording fake. Keeping the controllers
// behind this boundary is what makes the flow testable without a browser
// document.
type UI interface {
	// Notify raises a blocking, user-visible notice (the alert analog).
	Notify(message string)

	// SetControl mutates the continue control's label and enabled state.
	// Purely cosmetic; it never gates the underlying sequence.
	SetControl(label string, enabled bool)

	// SetInviteEnabled toggles the referral invite submit control.
	SetInviteEnabled(enabled bool)

	// Navigate sends the user to the given location (the redirect analog).
	Navigate(location string)

	// ShowAuth reveals the authentication surface so the user can sign in.
	ShowAuth()

	// ShowLoggedIn flips the visible account state to the given label.
	ShowLoggedIn(label string)

	// ShowLoggedOut flips the visible account state to logged out.
	ShowLoggedOut()

	// ShowReferralCode displays a referral code, server-issued or fabricated.
	ShowReferralCode(code string)
}

// Event names the UI gestures the controller handles.
type Event string

const (
	EventContinue     Event = "continue"
	EventLoadSamples  Event = "load-samples"
	EventReferralCode Event = "referral-code"
	EventLogout       Event = "logout"
)

// Bindings returns the declarative event→handler table. UI layers dispatch
// through it instead of wiring callbacks element by element; events that
// carry input (credentials, file candidates, invite emails) are invoked as
// direct methods by the layer that gathered the input.
func (c *Controller) Bindings() map[Event]func(ctx context.Context) error {
	return map[Event]func(ctx context.Context) error{
		EventContinue:    c.Continue,
		EventLoadSamples: c.LoadSamples,
		EventReferralCode: func(ctx context.Context) error {
			c.GenerateCode(ctx)
			return nil
		},
		EventLogout: c.Logout,
	}
}
