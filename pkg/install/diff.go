package install

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff is a line diff between the current target and the rendered output
type Diff struct {
	Added   int    `json:"added" yaml:"added"`
	Removed int    `json:"removed" yaml:"removed"`
	Text    string `json:"text" yaml:"text"`
}

// Empty reports whether the diff has no changes
func (d *Diff) Empty() bool {
	return d == nil || (d.Added == 0 && d.Removed == 0)
}

// LineDiff diffs before and after line by line. Every line of Text starts
// with "+", "-" or " ".
func LineDiff(before, after string) *Diff {
	d := &Diff{}
	if before == after {
		return d
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var out strings.Builder
	for _, chunk := range diffs {
		prefix := " "
		switch chunk.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range splitKeep(chunk.Text) {
			switch chunk.Type {
			case diffmatchpatch.DiffInsert:
				d.Added++
			case diffmatchpatch.DiffDelete:
				d.Removed++
			}
			out.WriteString(prefix)
			out.WriteString(strings.TrimRight(line, "\r\n"))
			out.WriteString("\n")
		}
	}
	d.Text = out.String()
	return d
}

func splitKeep(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
