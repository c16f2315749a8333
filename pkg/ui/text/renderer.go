// Package text provides plain text output, optionally styled
package text

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/wpconf/pkg/errors"
	"github.com/arthur-debert/wpconf/pkg/install"
)

// Styles decorates text fragments. The zero value leaves text unchanged.
type Styles struct {
	Title   func(string) string
	Success func(string) string
	Error   func(string) string
	Muted   func(string) string
	Path    func(string) string
	Added   func(string) string
	Removed func(string) string
}

func apply(f func(string) string, s string) string {
	if f == nil {
		return s
	}
	return f(s)
}

// Renderer writes human-readable output
type Renderer struct {
	output io.Writer
	styles Styles
}

// New creates a plain text renderer
func New(output io.Writer) *Renderer {
	return NewStyled(output, Styles{})
}

// NewStyled creates a renderer that decorates text with styles
func NewStyled(output io.Writer, styles Styles) *Renderer {
	return &Renderer{output: output, styles: styles}
}

// RenderResult renders reports and listings; other values are printed as is
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *install.Report:
		return r.renderReport(v)
	case *install.Listing:
		return r.renderListing(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error with its code and sorted details
func (r *Renderer) RenderError(err error) error {
	var b strings.Builder
	b.WriteString(apply(r.styles.Error, fmt.Sprintf("Error [%s]", errors.GetErrorCode(err))))
	b.WriteString(": ")
	b.WriteString(err.Error())
	b.WriteString("\n")

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(apply(r.styles.Muted, fmt.Sprintf("  %s: %v", k, details[k])))
		b.WriteString("\n")
	}

	_, werr := io.WriteString(r.output, b.String())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderReport(report *install.Report) error {
	var b strings.Builder

	b.WriteString(apply(r.styles.Title, report.Target))
	b.WriteString(apply(r.styles.Muted, " from "+report.Source))
	b.WriteString("\n")

	for _, s := range report.Steps {
		mark := apply(r.styles.Success, "✓")
		switch {
		case s.Skipped:
			mark = apply(r.styles.Muted, "-")
		case s.Status != "success":
			mark = apply(r.styles.Error, "✗")
		}
		fmt.Fprintf(&b, "  %s %s", mark, s.Name)
		if s.Message != "" {
			b.WriteString(apply(r.styles.Muted, "  "+s.Message))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "  inserted %d, skipped %d, deleted %d\n",
		report.Stats.Inserted, report.Stats.Skipped, report.Stats.Deleted)

	switch {
	case report.DryRun:
		if report.Diff.Empty() {
			b.WriteString(apply(r.styles.Muted, "  no changes"))
			b.WriteString("\n")
		} else {
			fmt.Fprintf(&b, "  dry run: +%d -%d\n", report.Diff.Added, report.Diff.Removed)
			r.writeDiff(&b, report.Diff.Text)
		}
	case report.Written:
		b.WriteString(apply(r.styles.Success, "  written "))
		b.WriteString(apply(r.styles.Path, report.Target))
		b.WriteString("\n")
	default:
		b.WriteString(apply(r.styles.Muted, "  up to date"))
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) writeDiff(b *strings.Builder, diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		switch line[0] {
		case '+':
			b.WriteString(apply(r.styles.Added, strings.TrimSuffix(line, "\n")))
			b.WriteString("\n")
		case '-':
			b.WriteString(apply(r.styles.Removed, strings.TrimSuffix(line, "\n")))
			b.WriteString("\n")
		default:
			b.WriteString(line)
		}
	}
}

func (r *Renderer) renderListing(listing *install.Listing) error {
	var b strings.Builder

	b.WriteString(apply(r.styles.Title, listing.Path))
	b.WriteString(apply(r.styles.Muted, " ("+listing.Syntax+")"))
	b.WriteString("\n")

	if len(listing.Sections) == 0 {
		b.WriteString(apply(r.styles.Muted, "  no sections"))
		b.WriteString("\n")
	}

	width := 0
	for _, s := range listing.Sections {
		if len(s.Name) > width {
			width = len(s.Name)
		}
	}
	for _, s := range listing.Sections {
		fmt.Fprintf(&b, "  %-*s  lines %d-%d", width, s.Name, s.StartLine, s.EndLine)
		if n := len(s.Fingerprints); n > 0 {
			b.WriteString(apply(r.styles.Muted, fmt.Sprintf("  %d managed block(s)", n)))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}
