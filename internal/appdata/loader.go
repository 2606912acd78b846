package appdata

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Loader fetches the boot resources exactly once per instance.
type Loader struct {
	src    Source
	logger *zap.Logger

	once    sync.Once
	fetches atomic.Int32
	bundle  *Bundle
	err     error
}

// NewLoader creates a Loader reading from src.
func NewLoader(src Source, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{src: src, logger: logger.Named("appdata")}
}

// Load returns the boot bundle, fetching it on the first call. Later calls
// return the same bundle or the same *DataError without fetching again.
func (l *Loader) Load(ctx context.Context) (*Bundle, error) {
	l.once.Do(func() {
		l.bundle, l.err = l.load(ctx)
	})
	return l.bundle, l.err
}

// Fetches reports how many fetch pairs have been issued.
func (l *Loader) Fetches() int {
	return int(l.fetches.Load())
}

func (l *Loader) load(ctx context.Context) (*Bundle, error) {
	l.fetches.Add(1)

	var (
		fields []EducationField
		forms  FormStructure
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return l.fetchInto(gctx, EducationFieldsResource, educationFieldsSchema, &fields)
	})
	g.Go(func() error {
		return l.fetchInto(gctx, FormStructureResource, formStructureSchema, &forms)
	})
	if err := g.Wait(); err != nil {
		var de *DataError
		if !errors.As(err, &de) {
			de = &DataError{Err: err}
		}
		l.logger.Error("boot data unavailable", zap.String("resource", de.Resource), zap.Error(de.Err))
		return nil, de
	}

	quiz, err := EmbeddedQuiz()
	if err != nil {
		l.logger.Error("embedded quiz invalid", zap.Error(err))
		return nil, &DataError{Resource: "quiz", Err: err}
	}

	l.logger.Info("boot data loaded",
		zap.Int("education_fields", len(fields)),
		zap.Int("form_structures", len(forms)),
		zap.Int("quiz_fields", len(quiz)),
	)

	return &Bundle{
		Quiz:            quiz,
		EducationFields: fields,
		FormStructure:   forms,
	}, nil
}

func (l *Loader) fetchInto(ctx context.Context, name string, schema map[string]any, v any) error {
	raw, err := l.src.Fetch(ctx, name)
	if err != nil {
		return &DataError{Resource: name, Err: err}
	}
	if err := decodeValidated(name, schema, raw, v); err != nil {
		return &DataError{Resource: name, Err: err}
	}
	l.logger.Debug("resource fetched", zap.String("resource", name), zap.Int("bytes", len(raw)))
	return nil
}
