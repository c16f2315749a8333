// Package sections edits named sections of a generated document.
//
// An Editor is loaded from text, receives append, prepend and delete
// operations in order and renders the resulting text. It never touches the
// disk. One Editor belongs to one installation run and is not safe for
// concurrent use.
package sections

import (
	"strings"

	"github.com/arthur-debert/wpconf/pkg/errors"
	"github.com/arthur-debert/wpconf/pkg/fingerprint"
	"github.com/arthur-debert/wpconf/pkg/logging"
	"github.com/arthur-debert/wpconf/pkg/markers"
	"github.com/rs/zerolog"
)

type section struct {
	name     string
	start    string
	end      string
	body     []string
	prepends []string
	appends  []string
	seen     fingerprint.Set
	deleted  bool
}

// segment is either a run of plain lines or a section
type segment struct {
	lines []string
	sec   *section
}

// Stats counts what the applied operations did
type Stats struct {
	Inserted int `json:"inserted" yaml:"inserted"`
	Skipped  int `json:"skipped" yaml:"skipped"`
	Deleted  int `json:"deleted" yaml:"deleted"`
}

// Editor applies section operations to a document in memory
type Editor struct {
	raw      string
	syntax   markers.Syntax
	eol      string
	segments []segment
	index    map[string]*section
	ops      []Operation
	stats    Stats
	logger   zerolog.Logger
}

// Load parses text and returns an editor over it
func Load(text string, syntax markers.Syntax) (*Editor, error) {
	layout, err := markers.Parse(text, syntax)
	if err != nil {
		return nil, err
	}

	e := &Editor{
		raw:    text,
		syntax: syntax,
		eol:    markers.LineEnding(layout.Lines),
		index:  make(map[string]*section, len(layout.Sections)),
		logger: logging.GetLogger("sections"),
	}

	cursor := 0
	for _, s := range layout.Sections {
		if s.Start > cursor {
			e.segments = append(e.segments, segment{lines: layout.Lines[cursor:s.Start]})
		}
		body := layout.Body(s)
		sec := &section{
			name:  s.Name,
			start: layout.Lines[s.Start],
			end:   layout.Lines[s.End],
			body:  body,
			seen:  fingerprint.Scan(body),
		}
		e.index[s.Name] = sec
		e.segments = append(e.segments, segment{sec: sec})
		cursor = s.End + 1
	}
	if cursor < len(layout.Lines) {
		e.segments = append(e.segments, segment{lines: layout.Lines[cursor:]})
	}

	e.logger.Debug().
		Int("sections", len(layout.Sections)).
		Int("lines", len(layout.Lines)).
		Msg("Document loaded")

	return e, nil
}

// Append inserts payload as the last content of the section body
func (e *Editor) Append(name, payload string) error {
	return e.insert(Append(name, payload))
}

// Prepend inserts payload right after the section start marker.
// Successive prepends keep issuance order, so the latest one sits closest
// to the existing body.
func (e *Editor) Prepend(name, payload string) error {
	return e.insert(Prepend(name, payload))
}

// Delete removes the section body and both markers
func (e *Editor) Delete(name string) error {
	sec, err := e.lookup(name)
	if err != nil {
		return err
	}
	e.remove(sec, Delete(name))
	return nil
}

// DeleteIfPresent deletes the section when the loaded document has it.
// A section the document never had is a no-op returning false; one already
// deleted in this run is still an unknown section.
func (e *Editor) DeleteIfPresent(name string) (bool, error) {
	if _, ok := e.index[name]; !ok {
		e.logger.Debug().Str("section", name).Msg("Section absent, nothing to delete")
		e.ops = append(e.ops, DeleteIfPresent(name))
		return false, nil
	}
	sec, err := e.lookup(name)
	if err != nil {
		return false, err
	}
	e.remove(sec, DeleteIfPresent(name))
	return true, nil
}

// Apply runs ops in order and stops at the first failure.
// The failing operation's position is recorded in the error details.
func (e *Editor) Apply(ops ...Operation) error {
	for i, op := range ops {
		var err error
		switch op.Kind {
		case KindAppend:
			err = e.Append(op.Section, op.Payload)
		case KindPrepend:
			err = e.Prepend(op.Section, op.Payload)
		case KindDelete:
			err = e.Delete(op.Section)
		case KindDeleteIfPresent:
			_, err = e.DeleteIfPresent(op.Section)
		default:
			err = errors.Newf(errors.ErrInvalidInput, "unknown operation kind %d", op.Kind)
		}
		if err != nil {
			if we, ok := err.(*errors.WpconfError); ok {
				return we.WithDetail("operation", i).WithDetail("op", op.String())
			}
			return err
		}
	}
	return nil
}

// Operations returns the applied operations in issuance order
func (e *Editor) Operations() []Operation {
	out := make([]Operation, len(e.ops))
	copy(out, e.ops)
	return out
}

// Sections returns the names of sections that are still present, in document order
func (e *Editor) Sections() []string {
	var names []string
	for _, seg := range e.segments {
		if seg.sec != nil && !seg.sec.deleted {
			names = append(names, seg.sec.name)
		}
	}
	return names
}

// Has reports whether a section is present and not deleted
func (e *Editor) Has(name string) bool {
	sec, ok := e.index[name]
	return ok && !sec.deleted
}

// Stats returns counters for the operations applied so far
func (e *Editor) Stats() Stats {
	return e.stats
}

// Changed reports whether rendering differs from the loaded text
func (e *Editor) Changed() bool {
	return e.stats.Inserted > 0 || e.stats.Deleted > 0
}

// Render returns the document with every applied operation
func (e *Editor) Render() string {
	if !e.Changed() {
		return e.raw
	}

	var b strings.Builder
	b.Grow(len(e.raw))
	for _, seg := range e.segments {
		if seg.sec == nil {
			writeLines(&b, seg.lines)
			continue
		}
		sec := seg.sec
		if sec.deleted {
			continue
		}
		b.WriteString(sec.start)
		writeLines(&b, sec.prepends)
		writeLines(&b, sec.body)
		writeLines(&b, sec.appends)
		b.WriteString(sec.end)
	}
	return b.String()
}

func (e *Editor) insert(op Operation) error {
	sec, err := e.lookup(op.Section)
	if err != nil {
		return err
	}

	lines, err := e.payloadLines(op)
	if err != nil {
		return err
	}

	fp := fingerprint.Of(op.Payload)
	logger := e.logger.With().
		Str("op", op.Kind.String()).
		Str("section", op.Section).
		Str("fingerprint", string(fp)).
		Logger()

	e.ops = append(e.ops, op)

	if sec.seen.Has(fp) {
		e.stats.Skipped++
		logger.Debug().Msg("Payload already present, skipping")
		return nil
	}

	block := append([]string{fingerprint.Line(fp, e.syntax.Comment, e.eol)}, lines...)
	if op.Kind == KindPrepend {
		sec.prepends = append(sec.prepends, block...)
	} else {
		sec.appends = append(sec.appends, block...)
	}
	sec.seen.Add(fp)
	e.stats.Inserted++

	logger.Debug().Int("lines", len(lines)).Msg("Payload inserted")
	return nil
}

func (e *Editor) remove(sec *section, op Operation) {
	sec.deleted = true
	e.ops = append(e.ops, op)
	e.stats.Deleted++
	e.logger.Debug().Str("op", op.Kind.String()).Str("section", sec.name).Msg("Section deleted")
}

func (e *Editor) lookup(name string) (*section, error) {
	sec, ok := e.index[name]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownSection, "section %q not found", name).
			WithDetail("section", name)
	}
	if sec.deleted {
		return nil, errors.Newf(errors.ErrUnknownSection, "section %q was deleted", name).
			WithDetail("section", name).
			WithDetail("deleted", true)
	}
	return sec, nil
}

// payloadLines splits payload into terminated lines using the document's line ending
func (e *Editor) payloadLines(op Operation) ([]string, error) {
	text := strings.ReplaceAll(op.Payload, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if strings.TrimSpace(text) == "" {
		return nil, errors.Newf(errors.ErrInvalidInput, "empty payload for section %q", op.Section).
			WithDetail("section", op.Section)
	}

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for i, l := range raw {
		if e.syntax.IsMarker(l) {
			return nil, errors.Newf(errors.ErrInvalidInput, "payload for section %q contains a section marker", op.Section).
				WithDetail("section", op.Section).
				WithDetail("payload_line", i+1)
		}
		lines = append(lines, l+e.eol)
	}
	return lines, nil
}

func writeLines(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString(l)
	}
}
