package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ardnew/scenic/catalog"
	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/log"
)

// Catalog groups the catalog subcommands.
type Catalog struct {
	List CatalogList `cmd:"" help:"List the catalogs of a directory and their entries."`
}

// CatalogList lists the catalog files of a directory.
type CatalogList struct {
	Category string `help:"Only list catalogs of this category, for example 'vehicle'." short:"c"`

	Dir string `arg:"" help:"Catalog directory." type:"existingdir"`
}

// Run executes the catalog list command. Files that fail to parse are
// reported after the others are listed.
func (c *CatalogList) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var want document.Category

	if c.Category != "" {
		if want, err = document.ParseCategory(c.Category); err != nil {
			return err
		}
	}

	infos, listErr := catalog.NewLoader(nil, catalog.WithLogger(log.Default())).List(c.Dir)

	tbl := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("CATALOG", "CATEGORY", "FILE", "ENTRIES")

	var shown int

	for _, info := range infos {
		if want.Valid() && info.Category != want {
			continue
		}

		shown++

		tbl.Row(
			info.Name,
			info.Category.String(),
			info.Path,
			strings.Join(info.Entries, ", "),
		)
	}

	if shown > 0 {
		if _, err := fmt.Fprintln(outputFrom(ctx), tbl.String()); err != nil {
			return err
		}
	}

	log.DebugContext(ctx, "listed catalogs",
		slog.String("dir", c.Dir),
		slog.Int("listed", shown),
		slog.Int("found", len(infos)),
	)

	if listErr != nil {
		return listErr
	}

	if shown == 0 && want.Valid() {
		return ErrCategory.With(
			slog.String("category", want.String()),
			slog.String("dir", c.Dir),
		)
	}

	return nil
}
