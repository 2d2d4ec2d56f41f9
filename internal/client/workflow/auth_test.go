package workflow

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetresearch/velvet/internal/client/api"
	"github.com/velvetresearch/velvet/internal/client/session"
)

func TestSwitchTab(t *testing.T) {
	f := setup(t, ResumeManual)

	assert.Equal(t, TabLogin, f.ctrl.ActiveTab())

	f.ctrl.SwitchTab(TabSignup)
	assert.Equal(t, TabSignup, f.ctrl.ActiveTab())

	f.ctrl.SwitchTab(Tab("bogus"))
	assert.Equal(t, TabSignup, f.ctrl.ActiveTab(), "unknown tab must be ignored")
}

func TestSubmitLogin_InvalidEmailNeverReachesNetwork(t *testing.T) {
	f := setup(t, ResumeManual)

	require.NoError(t, f.ctrl.SubmitLogin(context.Background(), "not-an-email", []byte("secret")))

	assert.Equal(t, 0, f.client.loginCalls)
	require.Len(t, f.ui.notices, 1)
	assert.Contains(t, f.ui.notices[0], "valid email")
}

func TestSubmitLogin_EmptyPasswordNeverReachesNetwork(t *testing.T) {
	f := setup(t, ResumeManual)

	require.NoError(t, f.ctrl.SubmitLogin(context.Background(), "x@y.com", nil))

	assert.Equal(t, 0, f.client.loginCalls)
	assert.NotEmpty(t, f.ui.notices)
}

func TestSubmitSignup_ShortPasswordNeverReachesNetwork(t *testing.T) {
	f := setup(t, ResumeManual)

	require.NoError(t, f.ctrl.SubmitSignup(context.Background(), "x@y.com", []byte("12345"), []byte("12345")))

	assert.Equal(t, 0, f.client.registerCalls)
	require.Len(t, f.ui.notices, 1)
	assert.Contains(t, f.ui.notices[0], "at least 6 characters")
}

func TestSubmitSignup_ConfirmationMismatchNeverReachesNetwork(t *testing.T) {
	f := setup(t, ResumeManual)

	require.NoError(t, f.ctrl.SubmitSignup(context.Background(), "x@y.com", []byte("123456"), []byte("654321")))

	assert.Equal(t, 0, f.client.registerCalls)
	require.Len(t, f.ui.notices, 1)
	assert.Contains(t, f.ui.notices[0], "do not match")
}

func TestSubmitLogin_SuccessPopulatesSessionAndLabel(t *testing.T) {
	f := setup(t, ResumeManual)
	f.client.loginRes = api.AuthResult{
		AccessToken: "abc",
		User:        session.User{ID: "u-1", Email: "x@y.com"},
	}

	require.NoError(t, f.ctrl.SubmitLogin(context.Background(), "x@y.com", []byte("secret")))

	// In-memory state.
	assert.True(t, f.ctrl.Session().Authenticated())
	assert.Equal(t, "abc", f.ctrl.Session().Token)
	assert.Equal(t, "abc", f.client.token)
	assert.Equal(t, "x", f.ui.loggedInLabel, "account label is the email local part")
	assert.False(t, f.ctrl.Submitting())

	// Persisted state round-trips.
	stored, err := f.sessions.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", stored.Token)
	assert.Equal(t, "x@y.com", stored.User.Email)
}

func TestSubmitSignup_Success(t *testing.T) {
	f := setup(t, ResumeManual)
	f.ctrl.SwitchTab(TabSignup)
	f.client.registerRes = api.AuthResult{
		AccessToken: "tok",
		User:        session.User{ID: "u-9", Email: "new@lab.org"},
	}

	require.NoError(t, f.ctrl.SubmitSignup(context.Background(), "new@lab.org", []byte("123456"), []byte("123456")))

	assert.Equal(t, 1, f.client.registerCalls)
	assert.True(t, f.ctrl.Session().Authenticated())
	assert.Equal(t, "new", f.ui.loggedInLabel)
}

func TestSubmitLogin_CollaboratorFailureSurfacesDetailAndReturnsToIdle(t *testing.T) {
	f := setup(t, ResumeManual)
	f.client.loginErr = &api.APIError{StatusCode: http.StatusBadRequest, Detail: "Invalid email or password"}

	require.NoError(t, f.ctrl.SubmitLogin(context.Background(), "x@y.com", []byte("wrong")))

	assert.False(t, f.ctrl.Session().Authenticated())
	assert.False(t, f.ctrl.Submitting())
	require.Len(t, f.ui.notices, 1)
	assert.Equal(t, "Invalid email or password", f.ui.notices[0])
}

func TestSubmitLogin_UnauthorizedClearsSessionSilently(t *testing.T) {
	f := setup(t, ResumeManual)
	f.client.loginErr = api.ErrUnauthorized

	require.NoError(t, f.ctrl.SubmitLogin(context.Background(), "x@y.com", []byte("wrong")))

	assert.Empty(t, f.ui.notices, "authorization loss is not a user-facing error")
	assert.GreaterOrEqual(t, f.ui.loggedOut, 1)
	assert.False(t, f.ctrl.Session().Authenticated())
}

func TestSubmit_IgnoredWhileSubmitting(t *testing.T) {
	f := setup(t, ResumeManual)
	f.ctrl.submitting = true

	require.NoError(t, f.ctrl.SubmitLogin(context.Background(), "x@y.com", []byte("secret")))
	require.NoError(t, f.ctrl.SubmitSignup(context.Background(), "x@y.com", []byte("123456"), []byte("123456")))

	assert.Equal(t, 0, f.client.loginCalls)
	assert.Equal(t, 0, f.client.registerCalls)
}

func TestAuthSuccess_AutoPolicyResumesSuspendedKickoff(t *testing.T) {
	f := setup(t, ResumeAuto)
	f.files.LoadSamples()
	f.client.uploadID = "up-1"
	f.client.jobID = "job-1"

	// Continue while unauthenticated suspends and reveals the auth surface.
	require.NoError(t, f.ctrl.Continue(context.Background()))
	assert.Equal(t, 1, f.ui.authShown)
	assert.Equal(t, 0, f.client.uploadCalls)

	signIn(t, f)

	assert.Equal(t, 1, f.client.uploadCalls, "auto policy resumes the kickoff")
	assert.Equal(t, []string{"/review.html?job_id=job-1"}, f.ui.navigations)
}

func TestAuthSuccess_ManualPolicyRequiresSecondContinue(t *testing.T) {
	f := setup(t, ResumeManual)
	f.files.LoadSamples()
	f.client.uploadID = "up-1"
	f.client.jobID = "job-1"

	require.NoError(t, f.ctrl.Continue(context.Background()))
	assert.Equal(t, 1, f.ui.authShown)

	signIn(t, f)

	assert.Equal(t, 0, f.client.uploadCalls, "manual policy must not resume on its own")

	require.NoError(t, f.ctrl.Continue(context.Background()))
	assert.Equal(t, 1, f.client.uploadCalls)
}

func TestAuthSuccess_WithoutSuspendedKickoffDoesNotUpload(t *testing.T) {
	f := setup(t, ResumeAuto)
	f.files.LoadSamples()

	signIn(t, f)

	assert.Equal(t, 0, f.client.uploadCalls)
}
