package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.PUT("/:transactionID", h.updateTransaction)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists every transaction of the logged-in user. An unreadable store yields an empty list.
// @Tags transactions
// @Produce  json
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txns := h.transactionService.ListTransactions(c.Request.Context(), userID)
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records an expense or income. A store failure returns 502 with syncStatus "failed" and the rejected transaction.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionMutationResponse
// @Failure 400 {object} ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Transaction ID already used"
// @Failure 502 {object} dto.TransactionMutationResponse "Store rejected the write"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		h.respondMutationError(c, logger, txn, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.TransactionMutationResponse{
		SyncStatus:  domain.Committed,
		Transaction: dto.ToTransactionResponse(txn),
	})
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Replaces the editable fields of a transaction.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionMutationResponse
// @Failure 400 {object} ErrorResponse "Invalid input or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 502 {object} dto.TransactionMutationResponse "Store rejected the write"
// @Security BearerAuth
// @Router /transactions/{transactionID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("transaction_id", transactionID))
	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, transactionID, req)
	if err != nil {
		h.respondMutationError(c, logger, txn, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, dto.TransactionMutationResponse{
		SyncStatus:  domain.Committed,
		Transaction: dto.ToTransactionResponse(txn),
	})
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 502 {object} dto.DeleteResponse "Store rejected the delete"
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID)
	respondDelete(c, logger, transactionID, err, "Failed to delete transaction")
}

func (h *transactionHandler) respondMutationError(c *gin.Context, logger *slog.Logger, txn *domain.Transaction, err error, msg string) {
	if errors.Is(err, apperrors.ErrPersistence) && txn != nil {
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, dto.TransactionMutationResponse{
			SyncStatus:  domain.Failed,
			Transaction: dto.ToTransactionResponse(txn),
			Error:       err.Error(),
		})
		return
	}
	respondServiceError(c, logger, err, msg, msg)
}

// respondDelete writes the outcome of a delete. Store failures keep the
// syncStatus envelope so clients can reconcile.
func respondDelete(c *gin.Context, logger *slog.Logger, id string, err error, msg string) {
	if err == nil {
		c.JSON(http.StatusOK, dto.DeleteResponse{SyncStatus: domain.Committed, ID: id})
		return
	}
	if errors.Is(err, apperrors.ErrPersistence) {
		logger.Error(msg, slog.String("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, dto.DeleteResponse{SyncStatus: domain.Failed, ID: id, Error: err.Error()})
		return
	}
	respondServiceError(c, logger, err, msg, msg)
}
