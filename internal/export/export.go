package export

import (
	"errors"
	"strings"
	"time"

	"github.com/vanshajvr/FinTrack/models"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Encoder turns the transaction list into a downloadable document.
type Encoder interface {
	EncodeRows(list []models.Transaction) ([]byte, error)
}

type Format struct {
	Name        string
	ContentType string
	Ext         string
	Encoder     Encoder
}

var formats = map[string]Format{
	"csv":  {Name: "csv", ContentType: "text/csv", Ext: "csv", Encoder: CSVEncoder{}},
	"json": {Name: "json", ContentType: "application/json", Ext: "json", Encoder: JSONEncoder{}},
	"yaml": {Name: "yaml", ContentType: "application/yaml", Ext: "yaml", Encoder: YAMLEncoder{}},
}

// ForFormat resolves a format name; empty means csv.
func ForFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		name = "csv"
	case "yml":
		name = "yaml"
	}
	f, ok := formats[name]
	if !ok {
		return Format{}, ErrUnknownFormat
	}
	return f, nil
}

// row is the flat shape shared by every format.
type row struct {
	ID       uint64 `json:"id" yaml:"id"`
	Date     string `json:"date" yaml:"date"`
	Type     string `json:"type" yaml:"type"`
	Category string `json:"category" yaml:"category"`
	Amount   string `json:"amount" yaml:"amount"`
	Currency string `json:"currency" yaml:"currency"`
	Notes    string `json:"notes" yaml:"notes"`
}

func toRows(list []models.Transaction) []row {
	out := make([]row, 0, len(list))
	for _, t := range list {
		out = append(out, row{
			ID:       t.ID,
			Date:     t.Date.UTC().Format(time.RFC3339),
			Type:     string(t.Type),
			Category: t.Category,
			Amount:   t.Amount.StringFixed(2),
			Currency: t.Currency,
			Notes:    t.Notes,
		})
	}
	return out
}
