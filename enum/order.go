package enum

import "github.com/invopop/jsonschema"

// Sort orders comment and user lists.
type Sort int

const (
	NameAsc Sort = iota
	NameDesc
	StateNameAsc
	StateNameDesc
	ChangeDateAsc
	ChangeDateDesc
	StateChangeDateAsc
	StateChangeDateDesc
)

var sorts = enumeration[Sort]{
	kind: "sort",
	wire: []string{
		NameAsc:             "nameASC",
		NameDesc:            "nameDESC",
		StateNameAsc:        "stateNameASC",
		StateNameDesc:       "stateNameDESC",
		ChangeDateAsc:       "changeDateASC",
		ChangeDateDesc:      "changeDateDESC",
		StateChangeDateAsc:  "stateChangeDateASC",
		StateChangeDateDesc: "stateChangeDateDESC",
	},
}

func (s Sort) String() string { return sorts.name(s) }

func (s Sort) MarshalText() ([]byte, error) { return sorts.marshal(s) }

func (s *Sort) UnmarshalText(b []byte) error { return sorts.unmarshal(s, b) }

// JSONSchema describes Sort as a string enum.
func (Sort) JSONSchema() *jsonschema.Schema { return sorts.schema() }

// ParseSort converts a wire string into a Sort.
func ParseSort(s string) (Sort, error) { return sorts.parse(s) }

// SortValues lists the wire strings of Sort.
func SortValues() []string { return sorts.values() }

// SearchSort orders entry search results.
type SearchSort int

const (
	Relevance SearchSort = iota
	Clicks
	Count
	Name
	Rating
)

var searchSorts = enumeration[SearchSort]{
	kind: "search sort",
	wire: []string{
		Relevance: "relevance",
		Clicks:    "clicks",
		Count:     "count",
		Name:      "name",
		Rating:    "rating",
	},
}

func (s SearchSort) String() string { return searchSorts.name(s) }

func (s SearchSort) MarshalText() ([]byte, error) { return searchSorts.marshal(s) }

func (s *SearchSort) UnmarshalText(b []byte) error { return searchSorts.unmarshal(s, b) }

// JSONSchema describes SearchSort as a string enum.
func (SearchSort) JSONSchema() *jsonschema.Schema { return searchSorts.schema() }

// ParseSearchSort converts a wire string into a SearchSort.
func ParseSearchSort(s string) (SearchSort, error) { return searchSorts.parse(s) }

// SearchSortValues lists the wire strings of SearchSort.
func SearchSortValues() []string { return searchSorts.values() }

// LengthLimit tells the entry search whether the length filter is a lower or an upper bound.
type LengthLimit int

const (
	Up LengthLimit = iota
	Down
)

var lengthLimits = enumeration[LengthLimit]{
	kind: "length limit",
	wire: []string{
		Up:   "up",
		Down: "down",
	},
}

func (l LengthLimit) String() string { return lengthLimits.name(l) }

func (l LengthLimit) MarshalText() ([]byte, error) { return lengthLimits.marshal(l) }

func (l *LengthLimit) UnmarshalText(b []byte) error { return lengthLimits.unmarshal(l, b) }

// JSONSchema describes LengthLimit as a string enum.
func (LengthLimit) JSONSchema() *jsonschema.Schema { return lengthLimits.schema() }

// ParseLengthLimit converts a wire string into a LengthLimit.
func ParseLengthLimit(s string) (LengthLimit, error) { return lengthLimits.parse(s) }

// LengthLimitValues lists the wire strings of LengthLimit.
func LengthLimitValues() []string { return lengthLimits.values() }
