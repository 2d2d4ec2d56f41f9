package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/velvetresearch/velvet/internal/client/api"
	"github.com/velvetresearch/velvet/internal/client/session"
	"github.com/velvetresearch/velvet/internal/client/staging"
)

// ResumePolicy selects what happens to a kickoff attempt that was suspended
// for authentication. The two observed behaviors are deliberate, mutually
// exclusive product variants; do not unify them.
type ResumePolicy string

const (
	// ResumeManual requires the user to trigger continue again after
	// signing in.
	ResumeManual ResumePolicy = "manual"

	// ResumeAuto re-runs the suspended kickoff as soon as authentication
	// succeeds.
	ResumeAuto ResumePolicy = "auto"
)

// ParseResumePolicy validates a configured policy value.
func ParseResumePolicy(s string) (ResumePolicy, error) {
	switch ResumePolicy(s) {
	case ResumeManual, ResumeAuto:
		return ResumePolicy(s), nil
	}
	return "", fmt.Errorf("unknown resume policy %q (want %q or %q)", s, ResumeManual, ResumeAuto)
}

// Controller is the single workflow context object: it owns the session
// service, the staging list, the collaborator client, and the UI surface.
// There are no ambient globals; everything the flow touches hangs off this
// struct.
//
// All methods are called from one goroutine (the UI loop analog). The busy
// flag is a cosmetic in-flight guard, not a lock.
type Controller struct {
	sessions *session.Service
	files    *staging.List
	client   api.Client
	ui       UI
	policy   ResumePolicy

	sess session.Session

	tab        Tab
	submitting bool

	busy            bool
	resumeAfterAuth bool
}

func NewController(sessions *session.Service, files *staging.List, client api.Client, ui UI, policy ResumePolicy) *Controller {
	return &Controller{
		sessions: sessions,
		files:    files,
		client:   client,
		ui:       ui,
		policy:   policy,
		tab:      TabLogin,
	}
}

// Init loads the persisted session and initializes the visible account
// state, mirroring page load.
func (c *Controller) Init(ctx context.Context) error {
	sess, err := c.sessions.Load(ctx)
	if err != nil {
		return err
	}
	c.sess = sess

	if sess.Authenticated() {
		c.client.SetToken(sess.Token)
		c.ui.ShowLoggedIn(sess.Label())
	} else {
		c.ui.ShowLoggedOut()
	}
	return nil
}

// Session exposes the cached session state.
func (c *Controller) Session() session.Session {
	return c.sess
}

// Files exposes the staging list.
func (c *Controller) Files() *staging.List {
	return c.files
}

// AddFiles stages the candidates, surfacing each rejection as a notice.
func (c *Controller) AddFiles(candidates []staging.Candidate) []staging.StagedFile {
	accepted, rejected := c.files.AddFiles(candidates)
	for _, r := range rejected {
		c.ui.Notify(r.Reason)
	}
	return accepted
}

// LoadSamples replaces the staging list with the fabricated demo files.
func (c *Controller) LoadSamples(ctx context.Context) error {
	_ = ctx
	c.files.LoadSamples()
	return nil
}

// Logout clears the session explicitly and flips the UI to logged out.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.sessions.Clear(ctx); err != nil {
		return err
	}
	c.dropSession()
	return nil
}

// dropSession resets the in-memory authenticated state and the visible
// account state. Persistent entries must already be cleared.
func (c *Controller) dropSession() {
	c.sess = session.Session{}
	c.client.SetToken("")
	c.ui.ShowLoggedOut()
}

// handleUnauthorized implements the 401 rule: clear the session and force
// the logged-out UI state, silently, regardless of which endpoint answered.
func (c *Controller) handleUnauthorized(ctx context.Context) {
	_ = c.sessions.Clear(ctx)
	c.dropSession()
}

// surface reports a collaborator or transport failure to the user:
// collaborator detail verbatim, transport failures as a generic message,
// unauthorized silently via session clearing.
func (c *Controller) surface(ctx context.Context, err error) {
	var apiErr *api.APIError
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		c.handleUnauthorized(ctx)
	case errors.As(err, &apiErr):
		c.ui.Notify(apiErr.Detail)
	case errors.Is(err, api.ErrUnavailable):
		c.ui.Notify("Network error. Please try again.")
	default:
		c.ui.Notify("Something went wrong. Please try again.")
	}
}
