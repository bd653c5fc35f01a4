package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"

	"capitalRuns/domain"
)

// Table is one persisted ordered sequence of records sharing a schema. The
// backing CSV file is created lazily on first append; its column set is fixed
// by that first write. Delete and update are whole-table rewrites because CSV
// has no random-access addressing.
//
// The mutex serializes read-modify-write cycles within this process. That is
// an enhancement over the baseline single-writer assumption; nothing above
// this layer relies on cross-request transactional behavior.
type Table struct {
	path string
	mu   sync.Mutex
}

// Path returns the backing file path.
func (t *Table) Path() string {
	return t.path
}

// Exists reports whether the backing file has been created.
func (t *Table) Exists() bool {
	_, err := os.Stat(t.path)
	return err == nil
}

// Append writes one row. On first write the file is created with the given
// header; on later writes the stored header must have the same width, so a
// record whose field set drifted from the table schema is rejected instead of
// silently corrupting the file.
func (t *Table) Append(header, row []string) error {
	return t.AppendAll(header, [][]string{row})
}

// AppendAll writes rows under the same rules as Append.
func (t *Table) AppendAll(header []string, rows [][]string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("row has %d fields, schema has %d", len(row), len(header))
		}
	}

	stored, err := t.readHeader()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(t.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open table %s: %w", t.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if stored == nil {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	} else if len(stored) != len(header) {
		return fmt.Errorf("table %s has %d columns, record has %d", t.path, len(stored), len(header))
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush table %s: %w", t.path, err)
	}

	return nil
}

// ReadAll returns the header and every row in file order. A table that has
// never been written reads as (nil, nil, nil).
func (t *Table) ReadAll() ([]string, [][]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.readAll()
}

// Filter returns the rows whose named field equals value, exact match.
func (t *Table) Filter(field, value string) ([]string, [][]string, error) {
	header, rows, err := t.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if header == nil {
		return nil, nil, nil
	}

	idx, err := columnIndex(header, field)
	if err != nil {
		return nil, nil, err
	}

	var matched [][]string
	for _, row := range rows {
		if row[idx] == value {
			matched = append(matched, row)
		}
	}

	return header, matched, nil
}

// DeleteByID rewrites the table without the record whose id column equals
// id. Returns domain.ErrNotFound when the table or the id is absent.
func (t *Table) DeleteByID(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	header, rows, err := t.readAll()
	if err != nil {
		return err
	}
	if header == nil {
		return domain.ErrNotFound
	}

	idx, err := columnIndex(header, "id")
	if err != nil {
		return err
	}

	kept := make([][]string, 0, len(rows))
	found := false
	for _, row := range rows {
		if row[idx] == id {
			found = true
			continue
		}
		kept = append(kept, row)
	}
	if !found {
		return domain.ErrNotFound
	}

	return t.writeAll(header, kept)
}

// UpdateFieldByID rewrites the table with the named field of the matching
// record set to value. Returns domain.ErrNotFound when the table or the id
// is absent.
func (t *Table) UpdateFieldByID(id, field, value string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	header, rows, err := t.readAll()
	if err != nil {
		return err
	}
	if header == nil {
		return domain.ErrNotFound
	}

	idIdx, err := columnIndex(header, "id")
	if err != nil {
		return err
	}
	fieldIdx, err := columnIndex(header, field)
	if err != nil {
		return err
	}

	found := false
	for _, row := range rows {
		if row[idIdx] == id {
			row[fieldIdx] = value
			found = true
		}
	}
	if !found {
		return domain.ErrNotFound
	}

	return t.writeAll(header, rows)
}

// WriteAll replaces the table's entire content.
func (t *Table) WriteAll(header []string, rows [][]string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.writeAll(header, rows)
}

func (t *Table) readAll() ([]string, [][]string, error) {
	f, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to open table %s: %w", t.path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read table %s: %w", t.path, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	return records[0], records[1:], nil
}

func (t *Table) readHeader() ([]string, error) {
	f, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open table %s: %w", t.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read table header %s: %w", t.path, err)
	}

	return header, nil
}

// writeAll replaces the file through a temp file and rename so a subsequent
// non-concurrent reader never observes a half-written table.
func (t *Table) writeAll(header []string, rows [][]string) error {
	tmp := t.path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temp table file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write rows: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to flush table: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close temp table file: %w", err)
	}

	if err := os.Rename(tmp, t.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace table %s: %w", t.path, err)
	}

	return nil
}

func columnIndex(header []string, field string) (int, error) {
	for i, name := range header {
		if name == field {
			return i, nil
		}
	}

	return 0, fmt.Errorf("column %q not found", field)
}
