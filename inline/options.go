package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Output formats.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
)

// Picker selects one element of a list result.
type Picker func(items []any) mo.Option[any]

type Options struct {
	Out    io.Writer
	Format string
	// Filter is an expr expression evaluated against every element of a list result.
	// Fields are addressed by their wire names, the element itself is "it".
	Filter mo.Option[string]
	Pick   mo.Option[Picker]
	// Path is a gjson path applied after filtering and picking.
	Path mo.Option[string]
	// Wrap is the width long texts are wrapped at in pretty output. 0 disables wrapping.
	Wrap int
}

// ParsePicker understands "first", "last" and an index such as "3".
func ParsePicker(description string) (Picker, error) {
	switch description {
	case "first":
		return func(items []any) mo.Option[any] {
			if len(items) == 0 {
				return mo.None[any]()
			}
			return mo.Some(items[0])
		}, nil
	case "last":
		return func(items []any) mo.Option[any] {
			if len(items) == 0 {
				return mo.None[any]()
			}
			return mo.Some(items[len(items)-1])
		}, nil
	}

	index, err := strconv.ParseUint(strings.TrimSpace(description), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid picker %q: expected first, last or an index", description)
	}

	return func(items []any) mo.Option[any] {
		if uint64(len(items)) <= index {
			return mo.None[any]()
		}
		return mo.Some(items[index])
	}, nil
}
