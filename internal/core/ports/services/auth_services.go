package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// AuthSvcFacade defines the interface for username sessions.
type AuthSvcFacade interface {
	// Login issues an access token for the trimmed username.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout forgets the recorded last user.
	Logout(ctx context.Context) error
	GetSession(ctx context.Context, username string) dto.SessionResponse
}

// WorkspaceSvcFacade loads everything a user needs at session start.
type WorkspaceSvcFacade interface {
	LoadWorkspace(ctx context.Context, userID string) (*domain.Workspace, error)
}

// DataSvcFacade handles bulk data operations.
type DataSvcFacade interface {
	// ResetData removes every transaction, category and subcategory of the user.
	ResetData(ctx context.Context, userID string) error
}
