package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"agent-activity/domain/ticket"

	lo "github.com/samber/lo"
)

// TicketFile is a decoded export. Issues holds the soft per-row errors
// (*ticket.RecordError) that did not stop the load.
type TicketFile struct {
	Records []ticket.Record
	Issues  []error
}

// Layouts accepted for "Ticket solved - Date". Only the calendar day is kept.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04",
	"1/2/2006 15:04",
	"1/2/06",
	"1/2/06 15:04",
	"01-02-06",
	"01-02-06 15:04",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ReadTickets loads a CSV export from path.
func ReadTickets(path string) (*TicketFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTickets(f, filepath.Base(path))
}

// ParseTickets decodes a CSV export; name is used in error messages.
func ParseTickets(r io.Reader, name string) (*TicketFile, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, &ticket.SchemaError{File: name, Missing: ticket.RequiredColumns}
	}
	return DecodeTickets(name, rows[0], rows[1:])
}

// DecodeTickets maps a header row and data rows to records. Missing required
// columns fail with *ticket.SchemaError; bad dates and counts are soft issues.
func DecodeTickets(name string, header []string, rows [][]string) (*TicketFile, error) {
	idx := indexMap(header)
	missing := lo.Filter(ticket.RequiredColumns, func(col string, _ int) bool {
		_, ok := idx[strings.ToLower(col)]
		return !ok
	})
	if len(missing) > 0 {
		return nil, &ticket.SchemaError{File: name, Missing: missing}
	}

	out := &TicketFile{}
	for i, row := range rows {
		if blank(row) {
			continue
		}
		line := i + 2
		get := func(col string) string {
			j, ok := idx[strings.ToLower(col)]
			if !ok || j >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[j])
		}
		rec := ticket.Record{
			Line:        line,
			ID:          get(ticket.ColTicketID),
			Group:       get(ticket.ColGroup),
			Subject:     get(ticket.ColSubject),
			Product:     get(ticket.ColProduct),
			Assignee:    get(ticket.ColAssignee),
			ActionTaken: get(ticket.ColActionTaken),
		}
		if rec.Group == "" || rec.Subject == "" {
			out.Issues = append(out.Issues, &ticket.RecordError{Line: line, Field: ticket.ColGroup + "/" + ticket.ColSubject, Err: ticket.ErrMissingField})
		}

		raw := get(ticket.ColTicketsSolved)
		n, ok := parseCount(raw)
		if !ok {
			out.Issues = append(out.Issues, &ticket.RecordError{Line: line, Field: ticket.ColTicketsSolved, Value: raw, Err: ticket.ErrInvalidCount})
		}
		rec.TicketsSolved = n

		raw = get(ticket.ColSolvedDate)
		if d, ok := parseDate(raw); ok {
			rec.SolvedDate = &d
		} else {
			out.Issues = append(out.Issues, &ticket.RecordError{Line: line, Field: ticket.ColSolvedDate, Value: raw, Err: ticket.ErrInvalidDate})
		}

		out.Records = append(out.Records, rec)
	}
	return out, nil
}

func indexMap(headers []string) map[string]int {
	m := map[string]int{}
	for i, h := range headers {
		// exports sometimes start with a UTF-8 BOM
		h = strings.TrimPrefix(h, "\ufeff")
		m[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return m
}

func blank(row []string) bool {
	return lo.EveryBy(row, func(c string) bool { return strings.TrimSpace(c) == "" })
}

func parseCount(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// WriteTickets writes records in the normalized export layout read back by ReadTickets.
func WriteTickets(path string, records []ticket.Record) error {
	rows := lo.Map(records, func(r ticket.Record, _ int) []string {
		return []string{
			r.ID,
			r.Group,
			r.Subject,
			r.Product,
			r.Assignee,
			strconv.Itoa(r.TicketsSolved),
			r.ActionTaken,
			formatDate(r.SolvedDate),
		}
	})
	return writeCSV(path, ticket.Columns, rows)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func writeCSV(path string, headers []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}
