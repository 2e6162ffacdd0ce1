// Package ledgercsv implements the delimited text interchange format
// for expenses.
//
// The format is a CSV with the header "id,title,amount,date,category,note".
// Every field is wrapped in double quotes, embedded quotes are escaped by
// doubling. The id column is written on export but never read back on
// import: imported rows always get freshly minted IDs so they cannot
// collide with existing records.
package ledgercsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/household-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOrInvalid = errors.New("the file is empty or invalid, it must contain a header line and at least one expense")
	ErrNoExpenses     = errors.New("there are no expenses to export")
)

// DefaultTitle is used for imported rows that do not have a title.
const DefaultTitle = "Imported"

// Columns of the interchange format, in header order.
var columns = []string{"id", "title", "amount", "date", "category", "note"}

// Parse reads the interchange format and returns the expenses it
// contains.
//
// Rows are best-effort: unknown or unparseable fields fall back to
// defaults (DefaultTitle, a zero amount, the current instant, the
// default category) instead of rejecting the row.
func Parse(f io.Reader) ([]models.Expense, error) {
	reader := csv.NewReader(f)

	// Accept rows with missing trailing fields
	reader.FieldsPerRecord = -1

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, ErrEmptyOrInvalid
	}

	// Map the header to column indexes so that reordered or partial
	// files still import
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var expenses []models.Expense
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		expenses = append(expenses, models.Expense{
			Title:    fieldOr(record, index, "title", DefaultTitle),
			Amount:   parseAmount(field(record, index, "amount")),
			Date:     parseDate(field(record, index, "date")),
			Category: fieldOr(record, index, "category", models.DefaultCategory),
			Note:     field(record, index, "note"),
		})
	}

	if len(expenses) == 0 {
		return nil, ErrEmptyOrInvalid
	}

	return expenses, nil
}

// Serialize writes all expenses in the interchange format.
func Serialize(w io.Writer, expenses []models.Expense) error {
	if len(expenses) == 0 {
		return ErrNoExpenses
	}

	records := make([][]string, 0, len(expenses)+1)
	records = append(records, columns)

	for _, expense := range expenses {
		records = append(records, []string{
			expense.ID.String(),
			expense.Title,
			expense.Amount.String(),
			expense.Date.In(time.UTC).Format(time.RFC3339),
			expense.Category,
			expense.Note,
		})
	}

	for _, record := range records {
		quoted := make([]string, len(record))
		for i, value := range record {
			quoted[i] = `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
		}

		if _, err := io.WriteString(w, strings.Join(quoted, ",")+"\n"); err != nil {
			return err
		}
	}

	return nil
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}

	return record[i]
}

func fieldOr(record []string, index map[string]int, name, fallback string) string {
	value := strings.TrimSpace(field(record, index, name))
	if value == "" {
		return fallback
	}

	return value
}

func parseAmount(s string) decimal.Decimal {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}

	return amount
}

func parseDate(s string) time.Time {
	for _, pattern := range []string{time.RFC3339, "2006-01-02"} {
		if date, err := time.Parse(pattern, strings.TrimSpace(s)); err == nil {
			return date.In(time.UTC)
		}
	}

	return time.Now().In(time.UTC)
}

// csvReadError returns an error which includes the line of the input
// the error occurred in.
func csvReadError(r *csv.Reader, err error) error {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
