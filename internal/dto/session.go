package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// LoginRequest carries the username to open a session for.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionResponse describes the current session and the server's storage mode.
type SessionResponse struct {
	Username      string             `json:"username"`
	StorageMode   domain.StorageMode `json:"storageMode"`
	AdviceEnabled bool               `json:"adviceEnabled"`
	LastUser      string             `json:"lastUser,omitempty"`
}

// WorkspaceResponse is everything a client needs to render after login.
type WorkspaceResponse struct {
	Transactions  []TransactionResponse  `json:"transactions"`
	Categories    []CategoryResponse     `json:"categories"`
	Subcategories []SubcategoryResponse  `json:"subcategories"`
	Stats         DashboardStatsResponse `json:"stats"`
}

// ToWorkspaceResponse converts a domain.Workspace to its DTO
func ToWorkspaceResponse(w *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		Transactions:  ToListTransactionResponse(w.Transactions),
		Categories:    ToListCategoryResponse(w.Categories),
		Subcategories: ToListSubcategoryResponse(w.Subcategories),
		Stats:         ToDashboardStatsResponse(w.Stats),
	}
}
