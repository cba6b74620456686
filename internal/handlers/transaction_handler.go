package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/store"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	store *store.Store
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(s *store.Store) *TransactionHandler {
	return &TransactionHandler{store: s}
}

// TransactionRequest represents the payload for creating or updating a transaction
type TransactionRequest struct {
	Type        string  `json:"type" binding:"required,transaction_type"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	CategoryID  string  `json:"categoryId"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description"`
	Frequency   string  `json:"frequency" binding:"required,frequency"`
	EndDate     string  `json:"endDate"`
}

// toTransaction converts the request into a domain transaction.
func (r TransactionRequest) toTransaction() (models.Transaction, error) {
	date, err := parseDate("date", r.Date)
	if err != nil {
		return models.Transaction{}, err
	}
	endDate, err := parseOptionalDate("endDate", r.EndDate)
	if err != nil {
		return models.Transaction{}, err
	}
	return models.Transaction{
		Type:        models.TransactionType(r.Type),
		Amount:      decimal.NewFromFloat(r.Amount),
		CategoryID:  r.CategoryID,
		Date:        date,
		Description: r.Description,
		Frequency:   models.Frequency(r.Frequency),
		EndDate:     endDate,
	}, nil
}

// CreateTransaction records a new transaction
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	tx, err := req.toTransaction()
	if err != nil {
		respondWithError(c, err)
		return
	}

	created, err := h.store.AddTransaction(tx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": created})
}

// ListTransactions returns the transaction sequence, paginated, optionally
// filtered by type.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	transactions := h.store.State().Transactions
	if txType := c.Query("type"); txType != "" {
		filtered := make([]models.Transaction, 0, len(transactions))
		for _, t := range transactions {
			if string(t.Type) == txType {
				filtered = append(filtered, t)
			}
		}
		transactions = filtered
	}

	c.JSON(http.StatusOK, pagination.Page(transactions, page))
}

// GetTransactionByID returns a single transaction
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	tx, ok := h.store.Transaction(c.Param("id"))
	if !ok {
		respondWithError(c, apperrors.ErrTransactionNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// UpdateTransaction replaces an existing transaction
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	tx, err := req.toTransaction()
	if err != nil {
		respondWithError(c, err)
		return
	}
	tx.ID = c.Param("id")

	updated, err := h.store.UpdateTransaction(tx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": updated})
}

// DeleteTransaction removes a transaction
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.store.DeleteTransaction(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
