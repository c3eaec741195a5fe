package services

import (
	"context"
	"fmt"
	"log/slog"

	"tutorlog/internal/core"
	"tutorlog/internal/ledger"
	applog "tutorlog/internal/log"
)

// Replacer swaps the whole content of a ledger in one step.
type Replacer interface {
	ReplaceAll(ctx context.Context, lessons []core.Lesson) error
}

// Mirror copies every lesson of src, in order, into dst and returns how
// many were copied. dst ends up holding exactly the lessons of src.
func Mirror(ctx context.Context, src ledger.LessonQuerier, dst Replacer) (int, error) {
	lessons, err := src.Query(ctx, core.Filter{})
	if err != nil {
		return 0, fmt.Errorf("read source ledger: %w", err)
	}
	if err := dst.ReplaceAll(ctx, lessons); err != nil {
		return 0, fmt.Errorf("write mirror: %w", err)
	}

	slog.InfoContext(ctx, "Ledger mirrored",
		applog.FieldComponent, applog.ComponentService,
		applog.FieldOperation, applog.OpMirror,
		applog.FieldRows, len(lessons))
	return len(lessons), nil
}
