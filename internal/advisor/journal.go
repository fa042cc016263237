package advisor

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Exchange is one prompt/response pair in the advisor journal.
type Exchange struct {
	Timestamp time.Time
	Kind      string
	Prompt    string
	Response  string
}

// Header is the CSV header for advisor-log.csv.
const Header = "timestamp,kind,prompt,response"

const (
	numFields   = 4
	journalDir  = "logs"
	journalFile = "logs/advisor-log.csv"
	colTime     = 0
	colKind     = 1
	colPrompt   = 2
	colResponse = 3
)

// Journal records advisor exchanges under the state directory.
type Journal struct {
	root string
}

// NewJournal creates a Journal rooted at the given state directory.
func NewJournal(stateDir string) *Journal {
	return &Journal{root: stateDir}
}

// MarshalExchange converts an Exchange to a CSV row.
func MarshalExchange(e Exchange) []string {
	row := make([]string, numFields)
	row[colTime] = e.Timestamp.Format(time.RFC3339)
	row[colKind] = e.Kind
	row[colPrompt] = e.Prompt
	row[colResponse] = e.Response
	return row
}

// UnmarshalExchange converts a CSV row to an Exchange.
func UnmarshalExchange(record []string) (Exchange, error) {
	if len(record) != numFields {
		return Exchange{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTime])
	if err != nil {
		return Exchange{}, fmt.Errorf("parsing timestamp %q: %w", record[colTime], err)
	}

	return Exchange{
		Timestamp: ts,
		Kind:      record[colKind],
		Prompt:    record[colPrompt],
		Response:  record[colResponse],
	}, nil
}

// Append writes an exchange to <stateDir>/logs/advisor-log.csv, creating
// the file and header if needed.
func (j *Journal) Append(e Exchange) error {
	dir := filepath.Join(j.root, journalDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(j.root, journalFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening advisor log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := cw.Write(MarshalExchange(e)); err != nil {
		return fmt.Errorf("writing exchange: %w", err)
	}

	return cw.Error()
}

// Read returns all exchanges from the journal. Returns an empty slice
// if the file does not exist.
func (j *Journal) Read() ([]Exchange, error) {
	f, err := os.Open(filepath.Join(j.root, journalFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening advisor log: %w", err)
	}
	defer f.Close()

	return readExchanges(f)
}

func readExchanges(r io.Reader) ([]Exchange, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading advisor log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var exchanges []Exchange
	for i, rec := range records[1:] {
		e, err := UnmarshalExchange(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		exchanges = append(exchanges, e)
	}
	return exchanges, nil
}
