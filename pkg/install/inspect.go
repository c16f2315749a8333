package install

import (
	"github.com/arthur-debert/wpconf/pkg/errors"
	"github.com/arthur-debert/wpconf/pkg/fingerprint"
	"github.com/arthur-debert/wpconf/pkg/markers"
)

// SectionInfo describes one section of a document. Lines are 1-based.
type SectionInfo struct {
	Name         string   `json:"name" yaml:"name"`
	StartLine    int      `json:"start_line" yaml:"start_line"`
	EndLine      int      `json:"end_line" yaml:"end_line"`
	BodyLines    int      `json:"body_lines" yaml:"body_lines"`
	Fingerprints []string `json:"fingerprints,omitempty" yaml:"fingerprints,omitempty"`
}

// Listing is the section layout of a file
type Listing struct {
	Path     string        `json:"path" yaml:"path"`
	Syntax   string        `json:"syntax" yaml:"syntax"`
	Sections []SectionInfo `json:"sections" yaml:"sections"`
}

// ListSections parses path and describes its sections
func (r *Runner) ListSections(path string, syntax markers.Syntax) (*Listing, error) {
	data, err := r.store.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplateRead, "cannot read file").WithDetail("path", path)
	}

	layout, err := markers.Parse(string(data), syntax)
	if err != nil {
		if we, ok := err.(*errors.WpconfError); ok {
			return nil, we.WithDetail("path", path)
		}
		return nil, err
	}

	listing := &Listing{Path: path, Syntax: syntax.Name, Sections: []SectionInfo{}}
	for _, s := range layout.Sections {
		body := layout.Body(s)
		info := SectionInfo{
			Name:      s.Name,
			StartLine: s.Start + 1,
			EndLine:   s.End + 1,
			BodyLines: len(body),
		}
		for _, line := range body {
			if fp, ok := fingerprint.Parse(line); ok {
				info.Fingerprints = append(info.Fingerprints, string(fp))
			}
		}
		listing.Sections = append(listing.Sections, info)
	}
	return listing, nil
}
