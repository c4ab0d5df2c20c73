package dto

import "github.com/SscSPs/expense_tracker/internal/core/domain"

// DeleteResponse reports the outcome of a delete or reset.
type DeleteResponse struct {
	SyncStatus domain.SyncStatus `json:"syncStatus"`
	ID         string            `json:"id,omitempty"`
	Error      string            `json:"error,omitempty"`
}
