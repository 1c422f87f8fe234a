package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// Summarize folds the full list into income/expense totals. Balance is
// income minus expenses and may be negative.
func Summarize(list []Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range list {
		if t.IsIncome() {
			income = income.Add(t.Amount)
		} else if t.IsExpense() {
			expense = expense.Add(t.Amount)
		}
	}
	return Summary{
		TotalIncome:   income,
		TotalExpenses: expense,
		Balance:       income.Sub(expense),
	}
}

// CurrencySummary is the summary of the rows in one currency.
type CurrencySummary struct {
	Currency string `json:"currency"`
	Summary
	Count int64 `json:"count"`
}

// SummarizeByCurrency splits the list per currency, ordered by currency code.
// Amounts of different currencies are never added together.
func SummarizeByCurrency(list []Transaction) []CurrencySummary {
	groups := map[string][]Transaction{}
	for _, t := range list {
		groups[t.Currency] = append(groups[t.Currency], t)
	}
	out := make([]CurrencySummary, 0, len(groups))
	for cur, rows := range groups {
		out = append(out, CurrencySummary{Currency: cur, Summary: Summarize(rows), Count: int64(len(rows))})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out
}

// DailyTotal is one UTC day of activity in one currency.
type DailyTotal struct {
	Day      string          `json:"day"`
	Currency string          `json:"currency"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// DailyTotals buckets the list by UTC day and currency, oldest day first.
func DailyTotals(list []Transaction) []DailyTotal {
	type key struct{ day, cur string }
	idx := map[key]int{}
	out := make([]DailyTotal, 0)
	for _, t := range list {
		k := key{t.Date.UTC().Format("2006-01-02"), t.Currency}
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, DailyTotal{Day: k.day, Currency: k.cur, Income: decimal.Zero, Expenses: decimal.Zero})
		}
		if t.IsIncome() {
			out[i].Income = out[i].Income.Add(t.Amount)
		} else if t.IsExpense() {
			out[i].Expenses = out[i].Expenses.Add(t.Amount)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Currency < out[j].Currency
	})
	return out
}
