package enum

import "github.com/invopop/jsonschema"

// WatchType is the list an entry is put on by info/setuserinfo.
type WatchType int

const (
	Note WatchType = iota
	Favor
	Finish
)

var watchTypes = enumeration[WatchType]{
	kind: "watch type",
	wire: []string{
		Note:   "note",
		Favor:  "favor",
		Finish: "finish",
	},
}

func (w WatchType) String() string { return watchTypes.name(w) }

func (w WatchType) MarshalText() ([]byte, error) { return watchTypes.marshal(w) }

func (w *WatchType) UnmarshalText(b []byte) error { return watchTypes.unmarshal(w, b) }

// JSONSchema describes WatchType as a string enum.
func (WatchType) JSONSchema() *jsonschema.Schema { return watchTypes.schema() }

// ParseWatchType converts a wire string into a WatchType.
func ParseWatchType(s string) (WatchType, error) { return watchTypes.parse(s) }

// WatchTypeValues lists the wire strings of WatchType.
func WatchTypeValues() []string { return watchTypes.values() }

// ConferenceType filters messenger conferences.
type ConferenceType int

const (
	ConferenceFavor ConferenceType = iota
	ConferenceBlock
	ConferenceGroup
	ConferenceDefault
)

var conferences = enumeration[ConferenceType]{
	kind: "conference type",
	wire: []string{
		ConferenceFavor:   "favor",
		ConferenceBlock:   "block",
		ConferenceGroup:   "group",
		ConferenceDefault: "default",
	},
}

func (c ConferenceType) String() string { return conferences.name(c) }

func (c ConferenceType) MarshalText() ([]byte, error) { return conferences.marshal(c) }

func (c *ConferenceType) UnmarshalText(b []byte) error { return conferences.unmarshal(c, b) }

// JSONSchema describes ConferenceType as a string enum.
func (ConferenceType) JSONSchema() *jsonschema.Schema { return conferences.schema() }

// ParseConferenceType converts a wire string into a ConferenceType.
func ParseConferenceType(s string) (ConferenceType, error) { return conferences.parse(s) }

// ConferenceTypeValues lists the wire strings of ConferenceType.
func ConferenceTypeValues() []string { return conferences.values() }
