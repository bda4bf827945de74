// Package journalfile loads the daily P/L journal from a CSV file. It is
// caller-side plumbing: the engine itself never touches the filesystem.
package journalfile

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"smartrisk/internal/domain/journal"
	"smartrisk/pkg/errors"
)

// Expected header: date,pnl,has_traded,notes
const (
	colDate = iota
	colPnL
	colTraded
	colNotes
)

// Load reads a journal CSV from disk
func Load(path string) (journal.Journal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open journal %s", path)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads journal rows from r. The first row is treated as a header
// and skipped. Blank or non-numeric pnl values are recovered as zero per
// the engine's input taxonomy; a malformed date is a hard error because
// the date is the entry's identity.
func Parse(r io.Reader) (journal.Journal, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // notes column is optional

	j := journal.New()
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrJournalFormat, err.Error())
		}

		row++
		if row == 1 {
			continue // header
		}
		if len(record) <= colTraded {
			return nil, errors.Wrapf(errors.ErrJournalFormat, "row %d: expected at least 3 columns, got %d", row, len(record))
		}

		date, err := journal.ParseDate(strings.TrimSpace(record[colDate]))
		if err != nil {
			return nil, errors.Wrapf(errors.ErrJournalFormat, "row %d: bad date %q", row, record[colDate])
		}

		entry := journal.Entry{
			Date:      date,
			PnL:       parsePnL(record[colPnL]),
			HasTraded: parseBool(record[colTraded]),
		}
		if len(record) > colNotes {
			entry.Notes = strings.TrimSpace(record[colNotes])
		}

		j.Upsert(entry)
	}

	return j, nil
}

// parsePnL treats blank or garbled amounts as zero
func parsePnL(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "y":
		return true
	default:
		return false
	}
}
