package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vanshajvr/FinTrack/models"
)

// Ledger is the subset of the storage service the HTTP layer calls.
type Ledger interface {
	AddTransaction(ctx context.Context, in models.NewTransaction) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	ComputeSummary(ctx context.Context) (models.Summary, error)
	FindTransactions(ctx context.Context, f models.TransactionFilter) ([]models.Transaction, error)
	FilteredSummary(ctx context.Context, f models.TransactionFilter) (models.Summary, error)
	CurrencySummaries(ctx context.Context, f models.TransactionFilter) ([]models.CurrencySummary, error)
	DailyTotals(ctx context.Context, f models.TransactionFilter) ([]models.DailyTotal, error)
	CategoryTotals(ctx context.Context, t models.TransactionType, limit int) ([]models.CategoryTotal, error)
	Categories(ctx context.Context) ([]string, error)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Error: message})
}

// fail maps validation errors to 400 and everything else to a generic 500.
func fail(c *gin.Context, log zerolog.Logger, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		respondWithError(c, http.StatusBadRequest, ve.Message)
		return
	}
	log.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
	respondWithError(c, http.StatusInternalServerError, "internal error")
}

// bindFilter reads ?currency=&from=&to=. It writes the 400 itself and
// returns false when the query is unusable.
func bindFilter(c *gin.Context) (models.TransactionFilter, bool) {
	var f models.TransactionFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		respondWithError(c, http.StatusBadRequest, "from and to must be dates in YYYY-MM-DD form")
		return f, false
	}
	f = f.Normalize()
	if err := f.Validate(); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return f, false
	}
	return f, true
}
