// Package loader parses the datacenter and ticket CSV exports into typed
// records. Rows that do not parse are rejected with their line number.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

const (
	DatacentersFile = "datacenters.csv"
	TicketsFile     = "tickets.csv"
)

var (
	datacenterColumns = []string{"dc_id", "region", "area_sqft", "manager"}
	ticketColumns     = []string{"ticket_id", "dc_id", "doc_category", "created_at", "due_date", "owner", "status", "priority"}
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// RowError identifies a malformed CSV row.
type RowError struct {
	File   string
	Line   int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s:%d: %s: %v", e.File, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Dataset is the content of one data directory.
type Dataset struct {
	Datacenters []domain.Datacenter
	Tickets     []domain.Ticket
}

// LoadDir reads both CSV files from dir.
func LoadDir(dir string) (*Dataset, error) {
	dcs, err := readFile(filepath.Join(dir, DatacentersFile), ReadDatacenters)
	if err != nil {
		return nil, err
	}
	tickets, err := readFile(filepath.Join(dir, TicketsFile), ReadTickets)
	if err != nil {
		return nil, err
	}
	return &Dataset{Datacenters: dcs, Tickets: tickets}, nil
}

func readFile[T any](path string, read func(io.Reader, string) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return read(f, filepath.Base(path))
}

// ReadDatacenters parses datacenter rows. name is used in error messages.
func ReadDatacenters(r io.Reader, name string) ([]domain.Datacenter, error) {
	var out []domain.Datacenter
	seen := make(map[string]struct{})
	err := eachRow(r, name, datacenterColumns, func(line int, row map[string]string) error {
		area, err := strconv.Atoi(row["area_sqft"])
		if err != nil {
			return &RowError{File: name, Line: line, Column: "area_sqft", Err: err}
		}
		if area <= 0 {
			return &RowError{File: name, Line: line, Column: "area_sqft", Err: errors.New("must be positive")}
		}
		dc := domain.Datacenter{
			DcID:     row["dc_id"],
			Region:   row["region"],
			AreaSqft: area,
			Manager:  row["manager"],
		}
		if dc.DcID == "" {
			return &RowError{File: name, Line: line, Column: "dc_id", Err: errors.New("required")}
		}
		if _, dup := seen[dc.DcID]; dup {
			return &RowError{File: name, Line: line, Column: "dc_id", Err: fmt.Errorf("duplicate %q", dc.DcID)}
		}
		seen[dc.DcID] = struct{}{}
		out = append(out, dc)
		return nil
	})
	return out, err
}

// ReadTickets parses ticket rows. Timestamps without a zone are taken as UTC.
// A blank priority is kept as given.
func ReadTickets(r io.Reader, name string) ([]domain.Ticket, error) {
	var out []domain.Ticket
	seen := make(map[string]struct{})
	err := eachRow(r, name, ticketColumns, func(line int, row map[string]string) error {
		created, err := parseDate(row["created_at"])
		if err != nil {
			return &RowError{File: name, Line: line, Column: "created_at", Err: err}
		}
		due, err := parseDate(row["due_date"])
		if err != nil {
			return &RowError{File: name, Line: line, Column: "due_date", Err: err}
		}
		t := domain.Ticket{
			ID:          row["ticket_id"],
			DcID:        row["dc_id"],
			DocCategory: row["doc_category"],
			CreatedAt:   created,
			DueDate:     due,
			Owner:       row["owner"],
			Status:      domain.TicketStatus(row["status"]),
			Priority:    domain.TicketPriority(row["priority"]),
		}
		if t.ID == "" {
			return &RowError{File: name, Line: line, Column: "ticket_id", Err: errors.New("required")}
		}
		if t.DcID == "" {
			return &RowError{File: name, Line: line, Column: "dc_id", Err: errors.New("required")}
		}
		if _, dup := seen[t.ID]; dup {
			return &RowError{File: name, Line: line, Column: "ticket_id", Err: fmt.Errorf("duplicate %q", t.ID)}
		}
		if t.Status == "" {
			return &RowError{File: name, Line: line, Column: "status", Err: errors.New("required")}
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
		return nil
	})
	return out, err
}

func eachRow(r io.Reader, name string, required []string, fn func(line int, row map[string]string) error) error {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &RowError{File: name, Line: 1, Err: errors.New("missing header")}
		}
		return &RowError{File: name, Line: 1, Err: err}
	}
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")))] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return &RowError{File: name, Line: 1, Column: col, Err: errors.New("missing column")}
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return &RowError{File: name, Line: parseErr.Line, Err: parseErr.Err}
			}
			return &RowError{File: name, Err: err}
		}
		line, _ := reader.FieldPos(0)
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		row := make(map[string]string, len(required))
		for _, col := range required {
			i := index[col]
			if i >= len(record) {
				return &RowError{File: name, Line: line, Column: col, Err: errors.New("missing value")}
			}
			row[col] = strings.TrimSpace(record[i])
		}
		if err := fn(line, row); err != nil {
			return err
		}
	}
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
