// Package enum defines the typed values the Proxer API accepts and returns as strings.
//
// Every type keeps its wire table next to its constants. String yields the wire form,
// Parse* inverts it, and the text marshalling methods let payloads decode straight into the type.
package enum

import (
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ErrUnknown is wrapped by every parse failure.
var ErrUnknown = errors.New("unknown value")

// enumeration is the wire table of one enum type.
type enumeration[T ~int] struct {
	kind string
	wire []string
}

func (e enumeration[T]) name(v T) string {
	if int(v) < 0 || int(v) >= len(e.wire) {
		return fmt.Sprintf("%s(%d)", e.kind, int(v))
	}
	return e.wire[v]
}

func (e enumeration[T]) parse(s string) (T, error) {
	for i, n := range e.wire {
		if n == s {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknown, e.kind, s)
}

func (e enumeration[T]) marshal(v T) ([]byte, error) {
	if int(v) < 0 || int(v) >= len(e.wire) {
		return nil, fmt.Errorf("%w: %s %d", ErrUnknown, e.kind, int(v))
	}
	return []byte(e.wire[v]), nil
}

func (e enumeration[T]) unmarshal(dst *T, b []byte) error {
	v, err := e.parse(string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func (e enumeration[T]) values() []string {
	out := make([]string, len(e.wire))
	copy(out, e.wire)
	return out
}

func (e enumeration[T]) schema() *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "string", Title: e.kind}
	for _, n := range e.wire {
		s.Enum = append(s.Enum, n)
	}
	return s
}

// Kinds maps every enum kind to its wire values. The CLI uses it for completion and suggestions.
func Kinds() map[string][]string {
	return map[string][]string{
		categories.kind:     categories.values(),
		media.kind:          media.values(),
		sorts.kind:          sorts.values(),
		companies.kind:      companies.values(),
		languages.kind:      languages.values(),
		mangaLanguages.kind: mangaLanguages.values(),
		watchTypes.kind:     watchTypes.values(),
		searchSorts.kind:    searchSorts.values(),
		lengthLimits.kind:   lengthLimits.values(),
		tagSubTypes.kind:    tagSubTypes.values(),
		translations.kind:   translations.values(),
		conferences.kind:    conferences.values(),
	}
}
