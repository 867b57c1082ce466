package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/evertonab28/finance/internal/errors"
	"github.com/evertonab28/finance/internal/models"
	"github.com/evertonab28/finance/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
type CreateTransactionRequest struct {
	Type          models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount        string                 `json:"amount" binding:"required,amount"`
	CategoryID    int                    `json:"categoryId" binding:"required,min=1"`
	Description   string                 `json:"description" binding:"required"`
	PaymentMethod string                 `json:"paymentMethod"`
	Date          time.Time              `json:"date" binding:"required"`
}

// UpdateTransactionRequest represents the request payload for partially
// updating a transaction. Absent fields leave the stored value unchanged.
type UpdateTransactionRequest struct {
	Type          *models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
	Amount        *string                 `json:"amount" binding:"omitempty,amount"`
	CategoryID    *int                    `json:"categoryId" binding:"omitempty,min=1"`
	Description   *string                 `json:"description"`
	PaymentMethod *string                 `json:"paymentMethod"`
	Date          *time.Time              `json:"date"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record a new income or expense transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(
		req.Type,
		req.Amount,
		req.CategoryID,
		req.Description,
		req.PaymentMethod,
		req.Date,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// GetTransactions handles the retrieval of all transactions
// @Summary     Get all transactions
// @Description Get all transactions, newest business date first
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       from query string false "Start date (RFC 3339 or YYYY-MM-DD)"
// @Param       to query string false "End date (RFC 3339 or YYYY-MM-DD)"
// @Param       type query string false "Filter by type (receita/despesa)"
// @Param       categoryId query int false "Filter by category id"
// @Success     200 {array} models.Transaction "List of transactions"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.GetTransactions(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Description Get a single transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// UpdateTransaction handles partially updating a transaction
// @Summary     Update transaction
// @Description Merge the supplied fields into an existing transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input or transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(transactionID, models.TransactionPatch{
		Type:          req.Type,
		Amount:        req.Amount,
		CategoryID:    req.CategoryID,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Date:          req.Date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction handles deleting a transaction
// @Summary     Delete transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     204 "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseTransactionFilter builds a TransactionFilter from the list query
// parameters. Dates accept RFC 3339 timestamps or plain YYYY-MM-DD.
func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if raw := c.Query("from"); raw != "" {
		from, err := parseDateParam(raw)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid from date")
		}
		filter.FromDate = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := parseDateParam(raw)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid to date")
		}
		filter.ToDate = &to
	}
	if raw := c.Query("type"); raw != "" {
		transactionType := models.TransactionType(raw)
		if transactionType != models.TransactionTypeReceita && transactionType != models.TransactionTypeDespesa {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid transaction type")
		}
		filter.Type = &transactionType
	}
	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := parseIntParam(raw)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid categoryId")
		}
		filter.CategoryID = &categoryID
	}

	return filter, nil
}

func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
