// Package auth keeps the worker's session on the client: the access
// token obtained at login, persisted in the local store and checked for
// expiry before every authenticated operation.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	clientapi "github.com/iudanet/homevisit/internal/client/api"
	"github.com/iudanet/homevisit/internal/client/storage"
	pkgapi "github.com/iudanet/homevisit/pkg/api"
)

// ErrNotAuthenticated означает отсутствие или истечение сессии;
// пользователь должен выполнить login заново
var ErrNotAuthenticated = errors.New("not authenticated")

// Service предоставляет функции авторизации клиента
type Service struct {
	apiClient clientapi.ClientAPI
	store     storage.AuthStorage
	now       func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(apiClient clientapi.ClientAPI, store storage.AuthStorage) *Service {
	return &Service{
		apiClient: apiClient,
		store:     store,
		now:       time.Now,
	}
}

// Login authenticates against the backend and persists the session
func (s *Service) Login(ctx context.Context, username, password string) (*storage.Session, error) {
	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	session := &storage.Session{
		Username:    username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		ExpiresAt:   s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}

	if err := s.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// Token returns the stored access token.
// Returns ErrNotAuthenticated when no session exists or it expired.
func (s *Service) Token(ctx context.Context) (string, error) {
	session, err := s.Session(ctx)
	if err != nil {
		return "", err
	}
	return session.AccessToken, nil
}

// Session returns the current valid session
func (s *Service) Session(ctx context.Context) (*storage.Session, error) {
	session, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if s.now().Unix() >= session.ExpiresAt {
		return nil, ErrNotAuthenticated
	}

	return session, nil
}

// Logout removes the stored session
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// TokenClaims parses the stored token without verifying the signature.
// Подпись проверяет сервер; клиенту claims нужны только для вывода в
// команде status.
func (s *Service) TokenClaims(ctx context.Context) (jwt.MapClaims, error) {
	session, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(session.AccessToken, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	return claims, nil
}
