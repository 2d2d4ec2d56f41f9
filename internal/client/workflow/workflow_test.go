package workflow

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velvetresearch/velvet/internal/client/api"
	"github.com/velvetresearch/velvet/internal/client/session"
	"github.com/velvetresearch/velvet/internal/client/staging"
	"github.com/velvetresearch/velvet/internal/client/storage"

	_ "modernc.org/sqlite"
)

// ---- fake collaborator client ----

type fakeClient struct {
	token string

	loginRes   api.AuthResult
	loginErr   error
	loginCalls int

	registerRes   api.AuthResult
	registerErr   error
	registerCalls int

	uploadID        string
	uploadErr       error
	uploadCalls     int
	lastUploadNames []string

	jobID         string
	generateErr   error
	generateCalls int
	lastUploadID  string

	refCode  string
	refErr   error
	refCalls int

	inviteErr       error
	inviteCalls     int
	lastInviteEmail string
}

func (f *fakeClient) SetToken(token string) { f.token = token }

func (f *fakeClient) Login(_ context.Context, email, password string) (api.AuthResult, error) {
	f.loginCalls++
	return f.loginRes, f.loginErr
}

func (f *fakeClient) Register(_ context.Context, email, password string) (api.AuthResult, error) {
	f.registerCalls++
	return f.registerRes, f.registerErr
}

func (f *fakeClient) Upload(_ context.Context, files []staging.StagedFile) (string, error) {
	f.uploadCalls++
	f.lastUploadNames = nil
	for _, file := range files {
		f.lastUploadNames = append(f.lastUploadNames, file.Name)
	}
	return f.uploadID, f.uploadErr
}

func (f *fakeClient) Generate(_ context.Context, uploadID string) (string, error) {
	f.generateCalls++
	f.lastUploadID = uploadID
	return f.jobID, f.generateErr
}

func (f *fakeClient) GenerateReferralCode(_ context.Context) (string, error) {
	f.refCalls++
	return f.refCode, f.refErr
}

func (f *fakeClient) SendInvite(_ context.Context, email string) error {
	f.inviteCalls++
	f.lastInviteEmail = email
	return f.inviteErr
}

// ---- fake UI surface ----

type fakeUI struct {
	notices []string

	controlLabel   string
	controlEnabled bool
	controlHistory []string

	inviteEnabled bool
	inviteToggles []bool

	navigations []string

	authShown int

	loggedInLabel string
	loggedOut     int

	codes []string
}

func newFakeUI() *fakeUI {
	return &fakeUI{controlEnabled: true, inviteEnabled: true}
}

func (u *fakeUI) Notify(message string) { u.notices = append(u.notices, message) }

func (u *fakeUI) SetControl(label string, enabled bool) {
	u.controlLabel = label
	u.controlEnabled = enabled
	u.controlHistory = append(u.controlHistory, label)
}

func (u *fakeUI) SetInviteEnabled(enabled bool) {
	u.inviteEnabled = enabled
	u.inviteToggles = append(u.inviteToggles, enabled)
}

func (u *fakeUI) Navigate(location string) { u.navigations = append(u.navigations, location) }

func (u *fakeUI) ShowAuth() { u.authShown++ }

func (u *fakeUI) ShowLoggedIn(label string) { u.loggedInLabel = label }

func (u *fakeUI) ShowLoggedOut() {
	u.loggedInLabel = ""
	u.loggedOut++
}

func (u *fakeUI) ShowReferralCode(code string) { u.codes = append(u.codes, code) }

// ---- fixture ----

type fixture struct {
	ctrl     *Controller
	client   *fakeClient
	ui       *fakeUI
	sessions *session.Service
	files    *staging.List
}

func setup(t *testing.T, policy ResumePolicy) *fixture {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE localstore (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	sessions := session.NewService(storage.NewSQLiteRepository(db))
	files := staging.NewList()
	client := &fakeClient{}
	ui := newFakeUI()

	return &fixture{
		ctrl:     NewController(sessions, files, client, ui, policy),
		client:   client,
		ui:       ui,
		sessions: sessions,
		files:    files,
	}
}

// signIn puts the fixture into an authenticated state through the real
// login path.
func signIn(t *testing.T, f *fixture) {
	t.Helper()
	f.client.loginRes = api.AuthResult{
		AccessToken: "abc",
		User:        session.User{ID: "u-1", Email: "x@y.com"},
	}
	require.NoError(t, f.ctrl.SubmitLogin(context.Background(), "x@y.com", []byte("secret")))
	require.True(t, f.ctrl.Session().Authenticated())
}
