package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/utils"
)

// TokenConfig holds the settings used to sign session tokens.
type TokenConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

type authService struct {
	BaseService
	sessions    portsrepo.SessionRepository
	tokens      TokenConfig
	mode        domain.StorageMode
	adviceReady func() bool
}

// NewAuthService creates the username session service.
func NewAuthService(sessions portsrepo.SessionRepository, tokens TokenConfig, mode domain.StorageMode, advice portssvc.AdviceSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		sessions:    sessions,
		tokens:      tokens,
		mode:        mode,
		adviceReady: advice.IsEnabled,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, validationError("username is required")
	}

	token, expiresAt, err := utils.GenerateJWT(username, s.tokens.Secret, s.tokens.Expiry, s.tokens.Issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate token", slog.String("username", username))
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	// Remembering the user is a convenience; the session works without it.
	if err := s.sessions.SaveLastUser(ctx, username); err != nil {
		s.LogError(ctx, err, "Failed to record last user", slog.String("username", username))
	}

	s.LogInfo(ctx, "User logged in", slog.String("username", username))
	return &dto.LoginResponse{Token: token, Username: username, ExpiresAt: expiresAt}, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.ClearLastUser(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear last user")
		return writeError(err)
	}
	return nil
}

func (s *authService) GetSession(ctx context.Context, username string) dto.SessionResponse {
	lastUser, err := s.sessions.FindLastUser(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read last user")
		lastUser = ""
	}
	return dto.SessionResponse{
		Username:      username,
		StorageMode:   s.mode,
		AdviceEnabled: s.adviceReady(),
		LastUser:      lastUser,
	}
}
