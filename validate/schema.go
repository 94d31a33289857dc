package validate

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ardnew/scenic/document"
)

var structValidator = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// schema applies the validate struct tags of the document model. Absent
// values fail "required" because an absent value.Value is the zero value.
func schema(ctx context.Context, doc *document.File) []Issue {
	err := structValidator().StructCtx(ctx, doc)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return []Issue{{Err: ErrSchema.Wrap(err)}}
	}

	issues := make([]Issue, 0, len(fields))

	for _, fe := range fields {
		path := schemaPath(fe.StructNamespace())

		err := ErrSchema.With(
			slog.String("path", path),
			slog.String("rule", fe.Tag()),
		)
		if fe.Param() != "" {
			err = err.With(slog.String("param", fe.Param()))
		}

		issues = append(issues, Issue{Path: path, Err: err})
	}

	return issues
}

// schemaPath drops the root type name. A choice holds its alternative in a
// field named Value, which is not part of the document path.
func schemaPath(ns string) string {
	_, path, _ := strings.Cut(ns, ".")

	return strings.ReplaceAll(path, ".Value.", ".")
}
