package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vanshajvr/FinTrack/models"
)

// AddTransaction validates the input and appends one row. Invalid input
// returns a *models.ValidationError and writes nothing.
func (s *Store) AddTransaction(ctx context.Context, in models.NewTransaction) (*models.Transaction, error) {
	in = in.Normalize(s.defaultCurrency)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	tx := models.Transaction{
		Amount:   in.Amount,
		Type:     in.Type,
		Category: in.Category,
		Currency: in.Currency,
		Notes:    in.Notes,
		Date:     s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.db.WithContext(ctx).Create(&tx).Error; err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return &tx, nil
}

// ListTransactions returns every row in insertion order.
func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	list := make([]models.Transaction, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if list == nil {
		list = []models.Transaction{}
	}
	return list, nil
}

// ComputeSummary recomputes the totals from the full list on every call.
func (s *Store) ComputeSummary(ctx context.Context) (models.Summary, error) {
	list, err := s.ListTransactions(ctx)
	if err != nil {
		return models.Summary{}, err
	}
	return models.Summarize(list), nil
}

// FindTransactions returns the rows matching f in insertion order. A zero
// filter returns every row.
func (s *Store) FindTransactions(ctx context.Context, f models.TransactionFilter) ([]models.Transaction, error) {
	f = f.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	q := s.db.WithContext(ctx)
	if f.Currency != "" {
		q = q.Where("currency = ?", f.Currency)
	}
	if !f.From.IsZero() {
		q = q.Where("date >= ?", f.From)
	}
	if until := f.Until(); !until.IsZero() {
		q = q.Where("date < ?", until)
	}
	list := make([]models.Transaction, 0)
	if err := q.Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}
	return list, nil
}

// FilteredSummary summarizes the rows matching f.
func (s *Store) FilteredSummary(ctx context.Context, f models.TransactionFilter) (models.Summary, error) {
	list, err := s.FindTransactions(ctx, f)
	if err != nil {
		return models.Summary{}, err
	}
	return models.Summarize(list), nil
}

// CurrencySummaries summarizes the rows matching f once per currency.
func (s *Store) CurrencySummaries(ctx context.Context, f models.TransactionFilter) ([]models.CurrencySummary, error) {
	list, err := s.FindTransactions(ctx, f)
	if err != nil {
		return nil, err
	}
	return models.SummarizeByCurrency(list), nil
}

// DailyTotals buckets the rows matching f by day and currency.
func (s *Store) DailyTotals(ctx context.Context, f models.TransactionFilter) ([]models.DailyTotal, error) {
	list, err := s.FindTransactions(ctx, f)
	if err != nil {
		return nil, err
	}
	return models.DailyTotals(list), nil
}

// CategoryTotals sums amounts per category for one type, largest first.
// A limit <= 0 returns every category.
func (s *Store) CategoryTotals(ctx context.Context, t models.TransactionType, limit int) ([]models.CategoryTotal, error) {
	if !t.Valid() {
		return nil, &models.ValidationError{Field: "type", Message: "type must be 'income' or 'expense'"}
	}

	var rows []struct {
		Category string
		Total    decimal.Decimal
		Count    int64
	}
	q := s.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("category, SUM(amount) AS total, COUNT(*) AS count").
		Where("type = ?", string(t)).
		Group("category").
		Order("total DESC").
		Order("category ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to total categories: %w", err)
	}

	out := make([]models.CategoryTotal, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.CategoryTotal{
			Category: r.Category,
			Type:     t,
			Total:    r.Total.Round(2),
			Count:    r.Count,
		})
	}
	return out, nil
}

// Categories lists the distinct categories already in use.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	cats := make([]string, 0)
	if err := s.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Distinct().
		Order("category").
		Pluck("category", &cats).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return cats, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Transaction{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}
