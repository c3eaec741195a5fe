package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"tutorlog/internal/core"
	applog "tutorlog/internal/log"
)

// SchemaAction says what EnsureSchema did to the file.
type SchemaAction int

const (
	SchemaUpToDate SchemaAction = iota
	SchemaCreated
	SchemaHeaderWritten
	SchemaMigrated
)

func (a SchemaAction) String() string {
	switch a {
	case SchemaUpToDate:
		return "up-to-date"
	case SchemaCreated:
		return "created"
	case SchemaHeaderWritten:
		return "header-written"
	case SchemaMigrated:
		return "migrated"
	}
	return "unknown"
}

type SchemaResult struct {
	Action SchemaAction
	Rows   int // rows rewritten by a migration
}

// ErrRowTooLong aborts a migration.
var ErrRowTooLong = errors.New("row has more fields than the header")

// EnsureSchema brings the file to the canonical column set.
//
// A missing or empty file gets the header. A file whose header lacks the
// month column is rewritten once with the month derived from each row's
// date. The rewrite goes through a temporary file in the same directory and
// a rename, so a failure leaves the original untouched.
func (s *Store) EnsureSchema(ctx context.Context) (SchemaResult, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.replace(canonicalOnly(), 0644); err != nil {
			return SchemaResult{}, fmt.Errorf("create lesson file: %w", err)
		}
		s.logger.InfoContext(ctx, "Lesson file created", applog.FieldPath, s.path)
		return SchemaResult{Action: SchemaCreated}, nil
	}
	if err != nil {
		return SchemaResult{}, fmt.Errorf("read lesson file: %w", err)
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}

	h, err := readHeader(bytes.NewReader(data))
	if err != nil {
		return SchemaResult{}, err
	}
	if h == nil {
		if err := s.replace(canonicalOnly(), mode); err != nil {
			return SchemaResult{}, fmt.Errorf("write header: %w", err)
		}
		s.logger.InfoContext(ctx, "Header written to empty lesson file", applog.FieldPath, s.path)
		return SchemaResult{Action: SchemaHeaderWritten}, nil
	}
	if h.has(monthColumn) {
		return SchemaResult{Action: SchemaUpToDate}, nil
	}

	out, rows, err := migrate(data)
	if err != nil {
		s.logger.ErrorContext(ctx, "Lesson file migration aborted",
			applog.FieldOperation, applog.OpMigrate,
			applog.FieldPath, s.path,
			applog.FieldError, err)
		return SchemaResult{}, fmt.Errorf("migrate lesson file: %w", err)
	}
	if err := s.replace(out, mode); err != nil {
		s.logger.ErrorContext(ctx, "Lesson file migration failed",
			applog.FieldOperation, applog.OpMigrate,
			applog.FieldPath, s.path,
			applog.FieldError, err)
		return SchemaResult{}, fmt.Errorf("migrate lesson file: %w", err)
	}

	s.logger.InfoContext(ctx, "Lesson file migrated",
		applog.FieldOperation, applog.OpMigrate,
		applog.FieldPath, s.path,
		applog.FieldRows, rows)
	return SchemaResult{Action: SchemaMigrated, Rows: rows}, nil
}

func canonicalOnly() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(Columns)
	w.Flush()
	return buf.Bytes()
}

// migrate rewrites data under the canonical header. Short rows are padded;
// rows longer than the header or unparseable input abort the migration.
func migrate(data []byte) ([]byte, int, error) {
	r := newReader(bytes.NewReader(data))

	first, err := r.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	old := newHeader(first)
	canon := canonicalHeader()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(canon.names); err != nil {
		return nil, 0, err
	}

	rows := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rows, err
		}
		if len(rec) > len(old.names) {
			line, _ := r.FieldPos(0)
			return nil, rows, fmt.Errorf("line %d: %w", line, ErrRowTooLong)
		}
		for len(rec) < len(old.names) {
			rec = append(rec, "")
		}

		raw := old.raw(rec)
		raw.Month = core.DeriveMonth(raw.Date)
		if err := w.Write(canon.record(raw)); err != nil {
			return nil, rows, err
		}
		rows++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, rows, err
	}
	return buf.Bytes(), rows, nil
}

// replace atomically swaps the file contents for data.
func (s *Store) replace(data []byte, mode fs.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
