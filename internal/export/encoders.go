package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/vanshajvr/FinTrack/models"
	"gopkg.in/yaml.v3"
)

var csvHeader = []string{"id", "date", "type", "category", "amount", "currency", "notes"}

type CSVEncoder struct{}

func (CSVEncoder) EncodeRows(list []models.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range toRows(list) {
		rec := []string{
			strconv.FormatUint(r.ID, 10),
			r.Date,
			r.Type,
			spreadsheetSafe(r.Category),
			r.Amount,
			r.Currency,
			spreadsheetSafe(r.Notes),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// spreadsheetSafe stops free text from being read as a formula when the
// CSV is opened in a spreadsheet.
func spreadsheetSafe(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

type JSONEncoder struct{}

func (JSONEncoder) EncodeRows(list []models.Transaction) ([]byte, error) {
	return json.MarshalIndent(toRows(list), "", "  ")
}

type YAMLEncoder struct{}

func (YAMLEncoder) EncodeRows(list []models.Transaction) ([]byte, error) {
	return yaml.Marshal(toRows(list))
}
