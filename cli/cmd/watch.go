package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ardnew/scenic/log"
	"github.com/ardnew/scenic/validate"
)

// Watch validates a scenario and validates it again after every change until
// interrupted.
type Watch struct {
	FailFast bool          `help:"Stop at the first issue."                       short:"x"`
	Debounce time.Duration `help:"Quiet period after a change before validating." default:"200ms"`

	File string `arg:"" help:"Scenario document (.xosc, .xml, .yaml or .yml)." type:"existingfile"`
}

// Run executes the watch command. It returns nil when ctx is cancelled.
func (w *Watch) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	path, err := filepath.Abs(w.File)
	if err != nil {
		return ErrWatch.Wrap(err).With(slog.String("file", w.File))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return ErrWatch.Wrap(err)
	}
	defer watcher.Close()

	// Editors often replace the file instead of writing it, so watch the
	// directory and filter by name.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return ErrWatch.Wrap(err).With(slog.String("dir", filepath.Dir(path)))
	}

	out := outputFrom(ctx)
	opts := (&Validate{FailFast: w.FailFast}).options(ctx)

	w.check(ctx, out, opts)

	var quiet debounce
	defer quiet.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			log.TraceContext(ctx, "watch event", slog.String("event", ev.String()))

			quiet.reset(w.Debounce)

		case <-quiet.fire:
			quiet.fire = nil

			w.check(ctx, out, opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.WarnContext(ctx, "watch error", slog.Any("error", err))
		}
	}
}

// check validates the file once. Failures are printed, never returned.
func (w *Watch) check(ctx context.Context, out io.Writer, opts []validate.Option) {
	err := check(ctx, out, w.File, opts...)
	if err == nil || errors.Is(err, ErrInvalid) {
		return
	}

	fmt.Fprintf(out, "%s%s\n    %s\n", failStyle.Render("✘ "), fileStyle.Render(w.File), err)
}

// debounce delivers on fire once a quiet period passes without a reset.
// fire is nil while no period is pending.
type debounce struct {
	timer *time.Timer
	fire  <-chan time.Time
}

func (d *debounce) reset(wait time.Duration) {
	if d.timer == nil {
		d.timer = time.NewTimer(wait)
	} else {
		d.timer.Reset(wait)
	}

	d.fire = d.timer.C
}

func (d *debounce) stop() {
	if d.timer != nil {
		d.timer.Stop()
	}

	d.fire = nil
}
