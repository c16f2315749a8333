package sections

import (
	"fmt"

	"github.com/arthur-debert/wpconf/pkg/errors"
)

// Kind is the type of an Operation
type Kind int

const (
	// KindAppend inserts a payload right before the end marker
	KindAppend Kind = iota
	// KindPrepend inserts a payload right after the start marker
	KindPrepend
	// KindDelete removes a section and its markers
	KindDelete
	// KindDeleteIfPresent is KindDelete that tolerates a section missing from the loaded document
	KindDeleteIfPresent
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindAppend:
		return "append"
	case KindPrepend:
		return "prepend"
	case KindDelete:
		return "delete"
	case KindDeleteIfPresent:
		return "delete-if-present"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name so logged plans stay readable
func (k Kind) MarshalText() ([]byte, error) {
	if k < KindAppend || k > KindDeleteIfPresent {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown operation kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name
func (k *Kind) UnmarshalText(text []byte) error {
	for c := KindAppend; c <= KindDeleteIfPresent; c++ {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return errors.Newf(errors.ErrInvalidInput, "unknown operation kind %q", string(text))
}

// Operation is one edit against a named section.
// A list of operations is a plan: it can be built, logged and replayed.
type Operation struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Section string `json:"section" yaml:"section"`
	Payload string `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Append builds an append operation
func Append(section, payload string) Operation {
	return Operation{Kind: KindAppend, Section: section, Payload: payload}
}

// Prepend builds a prepend operation
func Prepend(section, payload string) Operation {
	return Operation{Kind: KindPrepend, Section: section, Payload: payload}
}

// Delete builds a delete operation
func Delete(section string) Operation {
	return Operation{Kind: KindDelete, Section: section}
}

// DeleteIfPresent builds a delete operation that skips sections absent from the document
func DeleteIfPresent(section string) Operation {
	return Operation{Kind: KindDeleteIfPresent, Section: section}
}

func (o Operation) String() string {
	return fmt.Sprintf("%s(%s)", o.Kind, o.Section)
}
