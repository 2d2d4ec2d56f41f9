package api

import (
	"context"

	"github.com/velvetresearch/velvet/internal/client/session"
	"github.com/velvetresearch/velvet/internal/client/staging"
)

// AuthResult is the success payload of the login and register endpoints.
type AuthResult struct {
	AccessToken string       `json:"access_token"`
	User        session.User `json:"user"`
}

// Client is the transport-agnostic contract to the Velvet Research backend
// collaborators. None of the endpoints exist yet; the contract is the one
// the Phase-I client was written against.
type Client interface {
	// SetToken installs the bearer token used on subsequent requests.
	// An empty token removes it.
	SetToken(token string)

	// Login authenticates with email/password.
	Login(ctx context.Context, email, password string) (AuthResult, error)

	// Register creates an account with email/password.
	Register(ctx context.Context, email, password string) (AuthResult, error)

	// Upload submits the staged files as one multipart payload and returns
	// the upload identifier.
	Upload(ctx context.Context, files []staging.StagedFile) (uploadID string, err error)

	// Generate asks the generation collaborator to start a report for the
	// given upload and returns the job identifier.
	Generate(ctx context.Context, uploadID string) (jobID string, err error)

	// GenerateReferralCode requests a server-issued referral code.
	GenerateReferralCode(ctx context.Context) (string, error)

	// SendInvite asks the referral collaborator to email an invitation.
	SendInvite(ctx context.Context, email string) error
}
