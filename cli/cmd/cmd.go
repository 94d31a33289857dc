package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/log"
)

type (
	kongContextKey struct{}
	outputKey      struct{}
	searchPathKey  struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, kongContextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, _ := ctx.Value(kongContextKey{}).(*kong.Context)

	return ktx
}

// WithOutput returns a new context.Context whose commands write their results
// to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// outputFrom returns the writer stored by WithOutput, or os.Stdout.
func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// WithSearchPath returns a new context.Context holding the catalog
// directories searched for every category.
//
// Directories that do not exist are dropped, as are repeats of one directory
// named through different paths or symlinks, compared by device and inode.
func WithSearchPath(ctx context.Context, dirs []string) context.Context {
	return context.WithValue(ctx, searchPathKey{}, uniqueDirs(dirs))
}

func searchPathFrom(ctx context.Context) []string {
	dirs, _ := ctx.Value(searchPathKey{}).([]string)

	return dirs
}

// fileKey uniquely identifies a file by its device and inode numbers.
type fileKey struct {
	dev uint64
	ino uint64
}

func uniqueDirs(dirs []string) []string {
	var out []string

	seen := make(map[fileKey]struct{})

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			log.Debug("skip catalog directory",
				slog.String("dir", dir),
				slog.Any("error", err),
			)

			continue
		}

		if key, ok := makeFileKey(info); ok {
			if _, dup := seen[key]; dup {
				continue
			}

			seen[key] = struct{}{}
		}

		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}

		out = append(out, dir)
	}

	return out
}

// makeFileKey returns false when info carries no *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}

// formatFlag selects a document format; empty keeps the input's format.
type formatFlag string

// of returns the output format for a document read from path.
func (f formatFlag) of(path string) (document.Format, error) {
	if f == "" {
		return document.FormatOf(path)
	}

	return document.ParseFormat(string(f))
}

// writeDocument encodes doc to w in format f.
func writeDocument(w io.Writer, f document.Format, doc *document.File) error {
	if err := document.Encode(w, f, doc); err != nil {
		return ErrWriteDocument.Wrap(err).With(slog.String("format", string(f)))
	}

	return nil
}
