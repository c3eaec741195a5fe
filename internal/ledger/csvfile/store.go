// Package csvfile stores lessons in a flat CSV file.
//
// The file is the single source of truth: every write appends one row and
// every read scans the whole file. There is no cache and no locking, so two
// processes writing at once may interleave rows.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tutorlog/internal/core"
	"tutorlog/internal/ledger"
	applog "tutorlog/internal/log"
)

var _ ledger.Ledger = (*Store)(nil)

type Store struct {
	path       string
	now        func() time.Time
	logger     *slog.Logger
	skipSchema bool
}

type Option func(*Store)

// WithClock overrides the clock used for the "today" default of
// unreadable dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithoutSchemaCheck leaves the file alone in New so that the caller can
// run EnsureSchema itself and inspect the result.
func WithoutSchemaCheck() Option {
	return func(s *Store) { s.skipSchema = true }
}

// New opens the lesson file at path and runs the schema check. A failed
// check is logged, not returned: reads back-fill the month column and
// appends follow the file's existing header, so the store stays usable.
func New(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.New("lesson file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create lesson file directory: %w", err)
	}

	s := &Store{
		path:   path,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(applog.FieldComponent, applog.ComponentStore)

	if s.skipSchema {
		return s, nil
	}
	if _, err := s.EnsureSchema(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Lesson file schema check failed",
			applog.FieldPath, path,
			applog.FieldError, err)
	}
	return s, nil
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Append implements ledger.LessonWriter.
func (s *Store) Append(ctx context.Context, l core.Lesson) (core.Lesson, error) {
	l = l.Finalize()
	if err := s.appendRow(l.Raw()); err != nil {
		s.logger.ErrorContext(ctx, "Failed to append lesson",
			applog.FieldPath, s.path,
			applog.FieldStudentName, l.StudentName,
			applog.FieldError, err)
		return core.Lesson{}, fmt.Errorf("append lesson: %w", err)
	}

	s.logger.InfoContext(ctx, "Lesson appended",
		applog.FieldStudentName, l.StudentName,
		applog.FieldStudentID, l.StudentID,
		applog.FieldDate, l.Date.String(),
		applog.FieldIncome, core.FormatMoney(l.TotalIncome))
	return l, nil
}

func (s *Store) appendRow(raw core.RawLesson) (err error) {
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", s.path, cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}

	w := csv.NewWriter(f)
	h := canonicalHeader()
	if info.Size() == 0 {
		if err := w.Write(h.names); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	} else {
		existing, err := readHeader(io.NewSectionReader(f, 0, info.Size()))
		if err != nil {
			return err
		}
		if existing != nil {
			h = *existing
		}
		// A hand-edited file may lack its final newline.
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err != nil {
			return fmt.Errorf("read %s: %w", s.path, err)
		}
		if last[0] != '\n' {
			if _, err := f.Write([]byte("\n")); err != nil {
				return fmt.Errorf("write %s: %w", s.path, err)
			}
		}
	}

	if err := w.Write(h.record(raw)); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	w.Flush()
	return w.Error()
}

// newReader reads hand-edited files the way spreadsheet tools write them: a
// stray quote inside an unquoted field is kept as a literal character.
func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// readHeader returns nil when the input holds no record at all.
func readHeader(r io.Reader) (*header, error) {
	cr := newReader(r)
	rec, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	h := newHeader(rec)
	return &h, nil
}

// scan decodes every structurally sound row and hands it to fn until fn
// returns false. Unparseable and short rows are logged and skipped; fields
// past the header are dropped. A missing file is an empty ledger.
func (s *Store) scan(ctx context.Context, fn func(core.Lesson) bool) error {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := newReader(f)

	rec, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read header of %s: %w", s.path, err)
	}
	h := newHeader(rec)
	today := core.DateOf(s.now())

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				s.logger.WarnContext(ctx, "Skipping unreadable lesson row",
					applog.FieldPath, s.path,
					applog.FieldLine, pe.StartLine,
					applog.FieldError, pe.Err)
				continue
			}
			return fmt.Errorf("read %s: %w", s.path, err)
		}
		if len(rec) < len(h.names) {
			line, _ := r.FieldPos(0)
			s.logger.WarnContext(ctx, "Skipping short lesson row",
				applog.FieldPath, s.path,
				applog.FieldLine, line,
				"fields", len(rec),
				"expected", len(h.names))
			continue
		}
		if len(rec) > len(h.names) {
			line, _ := r.FieldPos(0)
			s.logger.WarnContext(ctx, "Ignoring extra fields in lesson row",
				applog.FieldPath, s.path,
				applog.FieldLine, line,
				"fields", len(rec),
				"expected", len(h.names))
			rec = rec[:len(h.names)]
		}

		lesson, issues := h.raw(rec).Decode(today)
		for _, is := range issues {
			line, _ := r.FieldPos(0)
			s.logger.DebugContext(ctx, "Field defaulted",
				applog.FieldLine, line,
				applog.FieldField, is.Field,
				applog.FieldRaw, is.Raw,
				applog.FieldError, is.Err)
		}
		if !fn(lesson) {
			return nil
		}
	}
}

func (s *Store) readFailed(ctx context.Context, op string, err error) {
	s.logger.ErrorContext(ctx, "Failed to read lesson file",
		applog.FieldOperation, op,
		applog.FieldPath, s.path,
		applog.FieldError, err)
}
