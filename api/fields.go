package api

import (
	"encoding/json"
	"strings"

	"github.com/samber/lo"
)

// SpaceList is a list the API sends as one space separated string, e.g. genres.
// A JSON array is accepted as well.
type SpaceList []string

func (l *SpaceList) UnmarshalJSON(b []byte) error {
	items, err := splitField(b, " ")
	if err != nil {
		return err
	}
	*l = items
	return nil
}

// CommaList is a list the API sends as one comma separated string, e.g. languages.
// A JSON array is accepted as well.
type CommaList []string

func (l *CommaList) UnmarshalJSON(b []byte) error {
	items, err := splitField(b, ",")
	if err != nil {
		return err
	}
	*l = items
	return nil
}

func splitField(b []byte, sep string) ([]string, error) {
	if string(b) == "null" {
		return nil, nil
	}

	var items []string
	if len(b) > 0 && b[0] == '[' {
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var joined string
	if err := json.Unmarshal(b, &joined); err != nil {
		return nil, err
	}

	items = lo.Map(strings.Split(joined, sep), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Compact(items), nil
}
