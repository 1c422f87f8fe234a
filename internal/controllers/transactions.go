package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vanshajvr/FinTrack/internal/export"
	"github.com/vanshajvr/FinTrack/models"
)

type TransactionController struct {
	Store Ledger
	Log   zerolog.Logger
}

func (tc TransactionController) CreateOrList(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodPost:
		var body models.NewTransaction
		if err := c.ShouldBindJSON(&body); err != nil {
			respondWithError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		t, err := tc.Store.AddTransaction(c.Request.Context(), body)
		if err != nil {
			fail(c, tc.Log, err)
			return
		}
		tc.Log.Info().
			Uint64("id", t.ID).
			Str("type", string(t.Type)).
			Str("category", t.Category).
			Msg("transaction added")
		c.JSON(http.StatusCreated, t)
	case http.MethodGet:
		f, ok := bindFilter(c)
		if !ok {
			return
		}
		list, err := tc.list(c, f)
		if err != nil {
			fail(c, tc.Log, err)
			return
		}
		c.JSON(http.StatusOK, list)
	default:
		c.Status(http.StatusMethodNotAllowed)
	}
}

func (tc TransactionController) list(c *gin.Context, f models.TransactionFilter) ([]models.Transaction, error) {
	if f.IsZero() {
		return tc.Store.ListTransactions(c.Request.Context())
	}
	return tc.Store.FindTransactions(c.Request.Context(), f)
}

// Export streams the list as a file download. It takes the same filters as
// the list endpoint.
func (tc TransactionController) Export(c *gin.Context) {
	f, err := export.ForFormat(c.Query("format"))
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "format must be csv, json or yaml")
		return
	}
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	list, err := tc.list(c, filter)
	if err != nil {
		fail(c, tc.Log, err)
		return
	}
	b, err := f.Encoder.EncodeRows(list)
	if err != nil {
		fail(c, tc.Log, fmt.Errorf("encode %s export: %w", f.Name, err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transactions.%s"`, f.Ext))
	c.Data(http.StatusOK, f.ContentType, b)
}
