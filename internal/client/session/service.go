package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/velvetresearch/velvet/internal/client/storage"
)

// Service reads and writes the session entries in the client store.
type Service struct {
	store storage.Repository
}

func NewService(store storage.Repository) *Service {
	return &Service{store: store}
}

// Load reads both entries. The returned session is authenticated only when
// the token entry is non-empty and the user entry unmarshals as a record;
// a corrupt or missing user entry yields a logged-out session, not an
// error, matching page-load behavior.
func (s *Service) Load(ctx context.Context) (Session, error) {
	token, err := s.store.Get(ctx, TokenKey)
	if err != nil {
		return Session{}, fmt.Errorf("load session token: %w", err)
	}

	raw, err := s.store.Get(ctx, UserKey)
	if err != nil {
		return Session{}, fmt.Errorf("load session user: %w", err)
	}

	if len(token) == 0 || len(raw) == 0 {
		return Session{}, nil
	}

	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return Session{}, nil
	}

	return Session{Token: string(token), User: user, authenticated: true}, nil
}

// Save persists the token and the user record as two sequential writes.
// There is no rollback on partial failure; store writes are treated as
// infallible by the workflow, so the first error is simply reported.
func (s *Service) Save(ctx context.Context, token string, user User) error {
	if err := s.store.Set(ctx, TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	if err := s.store.Set(ctx, UserKey, raw); err != nil {
		return fmt.Errorf("save session user: %w", err)
	}
	return nil
}

// Clear removes both entries, forcing the logged-out state on next Load.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	if err := s.store.Delete(ctx, UserKey); err != nil {
		return fmt.Errorf("clear session user: %w", err)
	}
	return nil
}
