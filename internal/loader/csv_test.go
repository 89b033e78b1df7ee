package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

const ticketsCSV = `ticket_id,dc_id,doc_category,created_at,due_date,owner,status,priority
T-1, DC-1 ,Fire Safety,2024-05-01,2024-06-08,alice,Open,High
T-2,DC-2,Electrical,2024-05-02T09:30:00Z,2024-06-09 17:00:00,bob,Closed,Low

T-3,DC-1,Cooling,2024-05-03T10:00:00+02:00,2024-07-01T00:00:00,carol,Open,
`

func TestReadTickets(t *testing.T) {
	tickets, err := ReadTickets(strings.NewReader(ticketsCSV), "tickets.csv")
	if err != nil {
		t.Fatalf("ReadTickets: %v", err)
	}
	if len(tickets) != 3 {
		t.Fatalf("got %d tickets", len(tickets))
	}

	first := tickets[0]
	if first.DcID != "DC-1" || first.Priority != domain.TicketPriorityHigh || !first.IsOpen() {
		t.Errorf("unexpected first ticket %+v", first)
	}
	if !first.DueDate.Equal(time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("due = %v", first.DueDate)
	}
	if want := time.Date(2024, 6, 9, 17, 0, 0, 0, time.UTC); !tickets[1].DueDate.Equal(want) {
		t.Errorf("due = %v, want %v", tickets[1].DueDate, want)
	}
	third := tickets[2]
	if third.CreatedAt.Location() != time.UTC || third.CreatedAt.Hour() != 8 {
		t.Errorf("created_at not normalized to UTC: %v", third.CreatedAt)
	}
	if !third.IsOpen() || third.Priority != "" {
		t.Errorf("blank priority should be kept as given: %+v", third)
	}
}

func TestReadTicketsRejectsMalformedRows(t *testing.T) {
	header := "ticket_id,dc_id,doc_category,created_at,due_date,owner,status,priority\n"
	tests := []struct {
		name   string
		body   string
		column string
		line   int
	}{
		{"bad due date", "T-1,DC-1,x,2024-05-01,soon,a,Open,Low\n", "due_date", 2},
		{"bad created", "T-1,DC-1,x,yesterday,2024-05-01,a,Open,Low\n", "created_at", 2},
		{"missing id", ",DC-1,x,2024-05-01,2024-05-01,a,Open,Low\n", "ticket_id", 2},
		{"duplicate id", "T-1,DC-1,x,2024-05-01,2024-05-01,a,Open,Low\nT-1,DC-1,x,2024-05-01,2024-05-01,a,Open,Low\n", "ticket_id", 3},
		{"short row", "T-1,DC-1,x\n", "created_at", 2},
		{"blank status", "T-1,DC-1,x,2024-01-01,2024-06-01,al,,\n", "status", 2},
		{"whitespace status", "T-1,DC-1,x,2024-01-01,2024-06-01,al, ,Low\n", "status", 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadTickets(strings.NewReader(header+tc.body), "tickets.csv")
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("expected RowError, got %v", err)
			}
			if rowErr.Column != tc.column || rowErr.Line != tc.line {
				t.Fatalf("got %s line %d, want %s line %d", rowErr.Column, rowErr.Line, tc.column, tc.line)
			}
		})
	}
}

func TestReadTicketsMissingColumn(t *testing.T) {
	_, err := ReadTickets(strings.NewReader("ticket_id,dc_id\nT-1,DC-1\n"), "tickets.csv")
	var rowErr *RowError
	if !errors.As(err, &rowErr) || rowErr.Column != "doc_category" {
		t.Fatalf("expected missing doc_category, got %v", err)
	}
	if _, err := ReadTickets(strings.NewReader(""), "tickets.csv"); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestReadDatacenters(t *testing.T) {
	body := "dc_id,region,area_sqft,manager\nDC-1,EMEA,12000,Dana\nDC-2,APAC, 8000 ,Eli\n"
	dcs, err := ReadDatacenters(strings.NewReader(body), "datacenters.csv")
	if err != nil {
		t.Fatalf("ReadDatacenters: %v", err)
	}
	want := []domain.Datacenter{
		{DcID: "DC-1", Region: "EMEA", AreaSqft: 12000, Manager: "Dana"},
		{DcID: "DC-2", Region: "APAC", AreaSqft: 8000, Manager: "Eli"},
	}
	if len(dcs) != len(want) {
		t.Fatalf("got %d datacenters", len(dcs))
	}
	for i := range want {
		if dcs[i] != want[i] {
			t.Errorf("dc %d = %+v, want %+v", i, dcs[i], want[i])
		}
	}

	for _, bad := range []string{"DC-1,EMEA,0,Dana\n", "DC-1,EMEA,big,Dana\n", "DC-1,EMEA,1,Dana\nDC-1,EMEA,1,Dana\n"} {
		if _, err := ReadDatacenters(strings.NewReader("dc_id,region,area_sqft,manager\n"+bad), "datacenters.csv"); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, DatacentersFile), "dc_id,region,area_sqft,manager\nDC-1,EMEA,100,Dana\n")
	writeFile(t, filepath.Join(dir, TicketsFile), ticketsCSV)

	ds, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(ds.Datacenters) != 1 || len(ds.Tickets) != 3 {
		t.Fatalf("unexpected dataset sizes %d/%d", len(ds.Datacenters), len(ds.Tickets))
	}

	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Fatal("expected error for missing files")
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}
