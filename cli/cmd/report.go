package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/scenic/pkg"
	"github.com/ardnew/scenic/validate"
)

// Styles of the validation report.
var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	fileStyle   = lipgloss.NewStyle().Bold(true)
)

// printReport writes a human-readable rendering of rep for file to w.
func printReport(w io.Writer, file string, rep *validate.Report) error {
	var b strings.Builder

	if rep.OK() {
		b.WriteString(okStyle.Render("✔ "))
		b.WriteString(fileStyle.Render(file))
		fmt.Fprintf(&b, " %s\n", detailStyle.Render(summary(rep)))

		_, err := io.WriteString(w, b.String())

		return err
	}

	b.WriteString(failStyle.Render("✘ "))
	b.WriteString(fileStyle.Render(file))
	fmt.Fprintf(&b, " %s\n", detailStyle.Render(plural(len(rep.Issues), "issue")))

	for _, i := range rep.Issues {
		path := i.Path
		if path == "" {
			path = "(document)"
		}

		fmt.Fprintf(&b, "  %s\n    %s\n", pathStyle.Render(path), i.Err)

		if s, ok := pkg.AttrOf(i.Err, "suggestions"); ok {
			fmt.Fprintf(&b, "    %s\n", detailStyle.Render("did you mean: "+s.String()))
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func summary(rep *validate.Report) string {
	var params int
	if rep.Parameters != nil {
		params = rep.Parameters.Len()
	}

	return strings.Join([]string{
		plural(rep.Entities.Len(), "entity"),
		plural(params, "parameter"),
		plural(rep.Catalogs.Len(), "catalog location"),
	}, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	if strings.HasSuffix(noun, "y") {
		return fmt.Sprintf("%d %sies", n, strings.TrimSuffix(noun, "y"))
	}

	return fmt.Sprintf("%d %ss", n, noun)
}
