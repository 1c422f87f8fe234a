package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DefaultCategories are offered by the UI picker before anything is recorded.
// They are suggestions only; any non-empty label is accepted.
var DefaultCategories = []string{"Food", "Transport", "Shopping", "Bills", "Salary", "Other"}

type CategoryController struct {
	Store Ledger
	Log   zerolog.Logger
}

func (cc CategoryController) List(c *gin.Context) {
	used, err := cc.Store.Categories(c.Request.Context())
	if err != nil {
		fail(c, cc.Log, err)
		return
	}
	c.JSON(http.StatusOK, mergeCategories(DefaultCategories, used))
}

func mergeCategories(defaults, used []string) []string {
	seen := make(map[string]bool, len(defaults)+len(used))
	out := make([]string, 0, len(defaults)+len(used))
	for _, list := range [][]string{defaults, used} {
		for _, name := range list {
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, name)
		}
	}
	return out
}
