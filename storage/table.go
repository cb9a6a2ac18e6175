// Package storage persists each entity in a delimited file with a header
// row. The file is authoritative: callers reload before acting and every
// mutation rewrites or appends under the table lock.
package storage

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"foodtruck/apperr"
)

// Row is one decoded record keyed by column name. Columns absent from the
// on-disk header read as "".
type Row map[string]string

type Table[T any] struct {
	mu     sync.Mutex
	path   string
	header []string
	encode func(T) []string
	decode func(Row) T
}

func NewTable[T any](path string, header []string, encode func(T) []string, decode func(Row) T) *Table[T] {
	t := &Table[T]{path: path, header: header, encode: encode, decode: decode}
	if err := t.widen(); err != nil {
		log.Printf("storage: widen %s: %v", path, err)
	}
	return t
}

// widen upgrades an existing file whose header predates newer columns:
// rows are preserved and missing fields default to "". Columns on disk
// that the store does not know about are kept at the tail of the widened
// header rather than dropped. Nothing happens when the file is absent or
// already carries every expected column.
func (t *Table[T]) widen() error {
	rows, header, err := t.readRaw()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	complete := true
	for _, col := range t.header {
		if indexOf(header, col) < 0 {
			complete = false
			break
		}
	}
	if complete {
		return nil
	}
	widened := append([]string{}, t.header...)
	for _, col := range header {
		if indexOf(t.header, col) < 0 {
			widened = append(widened, col)
		}
	}
	out := make([][]string, 0, len(rows))
	for _, old := range rows {
		rec := make([]string, len(widened))
		for i, col := range widened {
			if j := indexOf(header, col); j >= 0 && j < len(old) {
				rec[i] = old[j]
			}
		}
		out = append(out, rec)
	}
	t.header = widened
	log.Printf("storage: widening %s to %d columns", t.path, len(widened))
	return t.writeAll(out)
}

// Load returns every record in file order. A missing or unreadable file
// degrades to an empty result with a log line; reads never fail a request.
func (t *Table[T]) Load() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadLocked()
}

func (t *Table[T]) loadLocked() []T {
	rows, header, err := t.readRaw()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("storage: %s not found, starting empty", t.path)
		} else {
			log.Printf("storage: read %s: %v", t.path, err)
		}
		return nil
	}
	recs := make([]T, 0, len(rows))
	for _, raw := range rows {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(raw) {
				row[col] = raw[i]
			}
		}
		recs = append(recs, t.decode(row))
	}
	return recs
}

func (t *Table[T]) readRaw() (rows [][]string, header []string, err error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, t.header, nil
	}
	return all[1:], all[0], nil
}

func (t *Table[T]) Append(rec T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.appendLocked(rec)
}

// AppendIf commits rec only if check accepts the current contents. The
// lock is held across the re-read and the write, so two racing callers
// cannot both pass the same check.
func (t *Table[T]) AppendIf(rec T, check func(existing []T) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := check(t.loadLocked()); err != nil {
		return err
	}
	return t.appendLocked(rec)
}

func (t *Table[T]) appendLocked(rec T) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return apperr.Storagef("append %s: %v", t.path, err)
	}
	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return apperr.Storagef("append %s: %v", t.path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return apperr.Storagef("append %s: %v", t.path, err)
	}
	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(t.header); err != nil {
			return apperr.Storagef("append %s: %v", t.path, err)
		}
	}
	if err := w.Write(t.encodeRow(rec)); err != nil {
		return apperr.Storagef("append %s: %v", t.path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return apperr.Storagef("append %s: %v", t.path, err)
	}
	return nil
}

func (t *Table[T]) RewriteAll(recs []T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rewriteLocked(recs)
}

// Mutate applies fn to the current records and rewrites the store with
// the result, all under the table lock. Returning an error from fn leaves
// the file untouched.
func (t *Table[T]) Mutate(fn func(recs []T) ([]T, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	recs, err := fn(t.loadLocked())
	if err != nil {
		return err
	}
	return t.rewriteLocked(recs)
}

func (t *Table[T]) rewriteLocked(recs []T) error {
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, t.encodeRow(rec))
	}
	if err := t.writeAll(rows); err != nil {
		return apperr.Storagef("rewrite %s: %v", t.path, err)
	}
	return nil
}

// writeAll replaces the file via a temp file and rename so a crash
// mid-write cannot leave a truncated store behind.
func (t *Table[T]) writeAll(rows [][]string) error {
	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(t.path)+".tmp-*")
	if err != nil {
		return err
	}
	// CreateTemp opens 0600; match the mode appends create the file with.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	w := csv.NewWriter(tmp)
	err = w.Write(t.header)
	for _, row := range rows {
		if err != nil {
			break
		}
		err = w.Write(row)
	}
	if err == nil {
		w.Flush()
		err = w.Error()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), t.path)
}

// encodeRow pads the encoded record out to the header width, which can
// exceed the known columns after widening kept unknown ones.
func (t *Table[T]) encodeRow(rec T) []string {
	row := t.encode(rec)
	for len(row) < len(t.header) {
		row = append(row, "")
	}
	return row
}

func indexOf(cols []string, name string) int {
	for i, col := range cols {
		if col == name {
			return i
		}
	}
	return -1
}
