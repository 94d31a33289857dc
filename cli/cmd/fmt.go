package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/log"
)

// Fmt decodes a document and encodes it again, normalizing its layout or
// converting it to another format.
type Fmt struct {
	Format formatFlag `help:"Output format (default: the input's)." enum:",xml,yaml" default:""`
	Write  bool       `help:"Write the result back to the file instead of the output. The format must match the file's." short:"w"`

	File string `arg:"" help:"Document (.xosc, .xml, .yaml or .yml)." type:"existingfile"`
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	format, err := f.Format.of(f.File)
	if err != nil {
		return err
	}

	doc, err := document.ReadFile(f.File)
	if err != nil {
		return err
	}

	if !f.Write {
		return writeDocument(outputFrom(ctx), format, doc)
	}

	if own, err := document.FormatOf(f.File); err != nil || own != format {
		return document.ErrUnsupportedFormat.With(
			slog.String("path", f.File),
			slog.String("format", string(format)),
		)
	}

	var buf bytes.Buffer
	if err := writeDocument(&buf, format, doc); err != nil {
		return err
	}

	info, err := os.Stat(f.File)
	if err != nil {
		return err
	}

	if err := os.WriteFile(f.File, buf.Bytes(), info.Mode().Perm()); err != nil {
		return ErrWriteDocument.Wrap(err).With(slog.String("path", f.File))
	}

	log.DebugContext(ctx, "formatted document",
		slog.String("path", f.File),
		slog.String("format", string(format)),
	)

	return nil
}
