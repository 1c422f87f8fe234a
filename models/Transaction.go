package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is an append-only ledger row. There are no UpdatedAt/DeletedAt
// columns because rows are never changed or removed once written.
type Transaction struct {
	ID       uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:decimal(15,2);not null;check:amount > 0"`
	Type     TransactionType `json:"type" gorm:"type:varchar(16);not null;index;check:type IN ('income','expense')"`
	Category string          `json:"category" gorm:"type:varchar(64);not null;index"`
	Currency string          `json:"currency" gorm:"type:varchar(3);not null"`
	Notes    string          `json:"notes" gorm:"type:text"`
	Date     time.Time       `json:"date" gorm:"column:date;not null"`
}

func (Transaction) TableName() string { return "transactions" }

func (t Transaction) IsIncome() bool  { return t.Type == Income }
func (t Transaction) IsExpense() bool { return t.Type == Expense }
