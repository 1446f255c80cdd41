// Package auth provides the client-side auth session: login/signup
// against the backend, durable persistence of the token and user
// identity, and routing helpers for the candidate/recruiter split.
package auth

import (
	"context"
	"fmt"

	"github.com/rohan/voicecv-cli/internal/api"
	"github.com/rohan/voicecv-cli/internal/storage"
	"github.com/rohan/voicecv-cli/internal/types"
)

// User types stored under the user_type key.
const (
	UserTypeEmployee = "employee"
	UserTypeCompany  = "company"
)

// Service mediates between the auth endpoints and the durable store.
type Service struct {
	client *api.Client
	store  *storage.Store
}

// NewService creates an auth service.
func NewService(client *api.Client, store *storage.Store) *Service {
	return &Service{client: client, store: store}
}

// TokenSource returns an api.TokenSource backed by the store, for
// wiring into the HTTP client.
func TokenSource(store *storage.Store) api.TokenSource {
	return api.TokenFunc(func() string {
		token, _ := store.Get(storage.KeyToken)
		return token
	})
}

// Login authenticates and persists token, user, and user_type.
func (s *Service) Login(ctx context.Context, username, password string) (*types.AuthResponse, error) {
	req := &types.LoginRequest{Username: username, Password: password}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	var resp types.AuthResponse
	if err := s.client.Post(ctx, "/auth/login/", req, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if err := s.persist(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup registers a new account and persists the returned session.
// Password confirmation is enforced locally before any network call.
func (s *Service) Signup(ctx context.Context, req *types.SignupRequest) (*types.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid signup request: %w", err)
	}

	var resp types.AuthResponse
	if err := s.client.Post(ctx, "/auth/signup/", req, &resp); err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	if err := s.persist(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout clears the persisted session. The backend holds no client
// session state to invalidate.
func (s *Service) Logout() error {
	return s.store.Delete(storage.KeyToken, storage.KeyUser, storage.KeyUserType)
}

// IsAuthenticated reports whether a token is persisted.
func (s *Service) IsAuthenticated() bool {
	token, ok := s.store.Get(storage.KeyToken)
	return ok && token != ""
}

// CurrentUser returns the persisted user, or nil when logged out.
func (s *Service) CurrentUser() *types.User {
	var user types.User
	ok, err := s.store.GetJSON(storage.KeyUser, &user)
	if !ok || err != nil {
		return nil
	}
	return &user
}

// UserType returns the persisted user_type ("employee" or "company"),
// or "" when unknown.
func (s *Service) UserType() string {
	t, _ := s.store.Get(storage.KeyUserType)
	return t
}

// IsCompany reports whether the session belongs to a recruiter account.
func (s *Service) IsCompany() bool { return s.UserType() == UserTypeCompany }

// IsEmployee reports whether the session belongs to a candidate account.
func (s *Service) IsEmployee() bool { return s.UserType() == UserTypeEmployee }

func (s *Service) persist(resp *types.AuthResponse) error {
	if resp.Token == "" {
		return fmt.Errorf("auth response contained no token")
	}
	if err := s.store.Set(storage.KeyToken, resp.Token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if resp.User != nil {
		if err := s.store.SetJSON(storage.KeyUser, resp.User); err != nil {
			return fmt.Errorf("failed to persist user: %w", err)
		}
		if resp.User.Profile != nil {
			if err := s.store.Set(storage.KeyUserType, resp.User.Profile.UserType); err != nil {
				return fmt.Errorf("failed to persist user type: %w", err)
			}
		}
	}
	return nil
}
