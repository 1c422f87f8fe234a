package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vanshajvr/FinTrack/models"
)

const defaultTopCategories = 8

type ReportsController struct {
	Store Ledger
	Log   zerolog.Logger
}

// GetSummary serves the totals of every row, or of the rows matching
// ?currency=&from=&to= when any of them is set.
func (rc ReportsController) GetSummary(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	var (
		s   models.Summary
		err error
	)
	if f.IsZero() {
		s, err = rc.Store.ComputeSummary(c.Request.Context())
	} else {
		s, err = rc.Store.FilteredSummary(c.Request.Context(), f)
	}
	if err != nil {
		fail(c, rc.Log, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (rc ReportsController) GetCurrencySummaries(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	list, err := rc.Store.CurrencySummaries(c.Request.Context(), f)
	if err != nil {
		fail(c, rc.Log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetDailyTotals serves the per-day trend, one row per day and currency.
func (rc ReportsController) GetDailyTotals(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	list, err := rc.Store.DailyTotals(c.Request.Context(), f)
	if err != nil {
		fail(c, rc.Log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetCategoryTotals serves the top categories for one type
// (?type=expense&limit=8). limit=0 returns all of them.
func (rc ReportsController) GetCategoryTotals(c *gin.Context) {
	t := models.TransactionType(c.DefaultQuery("type", string(models.Expense)))
	limit := defaultTopCategories
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondWithError(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	list, err := rc.Store.CategoryTotals(c.Request.Context(), t, limit)
	if err != nil {
		fail(c, rc.Log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
