package workflow

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/velvetresearch/velvet/internal/client/api"
	"github.com/velvetresearch/velvet/internal/client/session"
	"github.com/velvetresearch/velvet/internal/common"
)

// Tab is the visible auth form: login or signup. Switching tabs never
// clears field values; the controller only tracks which form is active.
type Tab string

const (
	TabLogin  Tab = "login"
	TabSignup Tab = "signup"
)

var validate = validator.New()

// ActiveTab reports which auth form is visible.
func (c *Controller) ActiveTab() Tab {
	return c.tab
}

// Submitting reports whether an auth submission is in flight.
func (c *Controller) Submitting() bool {
	return c.submitting
}

// SwitchTab swaps the active auth form.
func (c *Controller) SwitchTab(tab Tab) {
	if tab == TabLogin || tab == TabSignup {
		c.tab = tab
	}
}

// SubmitLogin runs the login form submission: validate, call the auth
// collaborator, and on success persist the session and reveal the
// logged-in state. Collaborator failures return the controller to idle
// with the detail surfaced verbatim. A submission while another is in
// flight is ignored.
func (c *Controller) SubmitLogin(ctx context.Context, email string, password []byte) error {
	if c.submitting {
		return nil
	}

	if err := validate.Var(email, "required,email"); err != nil {
		c.ui.Notify("Please enter a valid email address")
		return nil
	}
	if len(password) == 0 {
		c.ui.Notify("Please enter your password")
		return nil
	}

	return c.submit(ctx, func(ctx context.Context) (api.AuthResult, error) {
		return c.client.Login(ctx, email, string(password))
	})
}

// SubmitSignup runs the signup form submission. Password length and
// confirmation equality are checked before any network call.
func (c *Controller) SubmitSignup(ctx context.Context, email string, password, confirm []byte) error {
	if c.submitting {
		return nil
	}

	if err := validate.Var(email, "required,email"); err != nil {
		c.ui.Notify("Please enter a valid email address")
		return nil
	}
	if len(password) < 6 {
		c.ui.Notify("Password must be at least 6 characters")
		return nil
	}
	if string(password) != string(confirm) {
		c.ui.Notify("Passwords do not match")
		return nil
	}

	return c.submit(ctx, func(ctx context.Context) (api.AuthResult, error) {
		return c.client.Register(ctx, email, string(password))
	})
}

func (c *Controller) submit(ctx context.Context, call func(ctx context.Context) (api.AuthResult, error)) error {
	c.submitting = true
	defer func() { c.submitting = false }()

	res, err := call(ctx)
	if err != nil {
		c.surface(ctx, err)
		return nil
	}

	if err := c.sessions.Save(ctx, res.AccessToken, res.User); err != nil {
		return err
	}

	c.sess = session.NewAuthenticated(res.AccessToken, res.User)
	c.client.SetToken(res.AccessToken)
	c.ui.ShowLoggedIn(common.EmailLocalPart(res.User.Email))

	if c.resumeAfterAuth {
		c.resumeAfterAuth = false
		if c.policy == ResumeAuto {
			return c.Continue(ctx)
		}
	}
	return nil
}
