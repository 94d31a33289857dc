package validate

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/ardnew/scenic/pkg"
	"github.com/ardnew/scenic/registry"
)

// Issue is one validation failure.
type Issue struct {
	// Path locates the offending node or field, for example
	// "Storyboard.Init.Actions.Actions[0].Private.EntityRef". It is empty for
	// the document root.
	Path string
	Err  error
}

// String returns the issue as "path: error".
func (i Issue) String() string {
	if i.Path == "" {
		return i.Err.Error()
	}

	return i.Path + ": " + i.Err.Error()
}

// LogValue implements slog.LogValuer.
func (i Issue) LogValue() slog.Value {
	return slog.GroupValue(slog.String("path", i.Path), slog.Any("error", i.Err))
}

// Report is the outcome of validating one document.
type Report struct {
	// ID identifies the validation run in logs.
	ID     uuid.UUID
	Issues []Issue

	// Registries built from the document's own declarations.
	Entities   *registry.Entities
	Parameters *registry.Parameters
	Catalogs   *registry.Catalogs
}

// OK reports whether no issue was found.
func (r *Report) OK() bool { return len(r.Issues) == 0 }

// Err returns every issue as one [pkg.Errors], or nil when r is OK.
func (r *Report) Err() error {
	var errs pkg.Errors
	for _, i := range r.Issues {
		errs.Append(i.Err)
	}

	return errs.Err()
}

// Matching returns the issues whose error matches target.
func (r *Report) Matching(target error) []Issue {
	var out []Issue

	for _, i := range r.Issues {
		if errors.Is(i.Err, target) {
			out = append(out, i)
		}
	}

	return out
}

// LogValue implements slog.LogValuer.
func (r *Report) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(r.Issues)+2)
	attrs = append(attrs,
		slog.String("id", r.ID.String()),
		slog.Int("issues", len(r.Issues)),
	)

	for n, i := range r.Issues {
		attrs = append(attrs, slog.Any(strconv.Itoa(n), i))
	}

	return slog.GroupValue(attrs...)
}
