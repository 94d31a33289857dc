package repl

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ardnew/scenic/document"
	"github.com/ardnew/scenic/log"
)

const defaultEditor = "vi"

// editCommand implements [tea.ExecCommand] for the edit-decode-retry loop.
// It copies the document to a temporary file, opens the user's editor and
// decodes the result. On a decode error the user is asked to edit again;
// declining fails with [ErrEditDeclined]. A decoded result is written back
// to the document's path.
type editCommand struct {
	path    string
	ctxFunc func() context.Context
	logger  log.Logger
	doc     *document.File // set on success
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit loop. An emptied file cancels the edit, leaving doc
// nil and the document untouched.
func (c *editCommand) Run() error {
	ctx := c.ctxFunc()

	format, err := document.FormatOf(c.path)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp("", "scenic-edit-*"+filepath.Ext(c.path))
	if err != nil {
		return err
	}

	tmp := f.Name()
	f.Close()

	defer os.Remove(tmp)

	for {
		if err := os.WriteFile(tmp, content, 0o600); err != nil {
			return err
		}

		if err := runEditor(ctx, c.stdin, c.stdout, c.stderr, tmp); err != nil {
			return err
		}

		if content, err = os.ReadFile(tmp); err != nil {
			return err
		}

		if len(bytes.TrimSpace(content)) == 0 {
			return nil
		}

		doc, decodeErr := document.Unmarshal(content, format)

		c.logger.TraceContext(ctx, "editor decode attempt",
			slog.Int("content_length", len(content)),
			slog.Bool("success", decodeErr == nil),
		)

		if decodeErr == nil {
			info, err := os.Stat(c.path)
			if err != nil {
				return err
			}

			if err := os.WriteFile(c.path, content, info.Mode().Perm()); err != nil {
				return err
			}

			c.doc = doc

			return nil
		}

		fmt.Fprintf(c.stderr, "\nDecode error: %s\n", decodeErr)
		fmt.Fprint(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "n", "no":
			return ErrEditDeclined
		}
	}
}

// runEditor runs $EDITOR, or vi, on path.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
	path string,
) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return cmd.Run()
}
