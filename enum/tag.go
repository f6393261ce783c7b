package enum

import "github.com/invopop/jsonschema"

// TagSubType groups tags into themes.
type TagSubType int

const (
	Misc TagSubType = iota
	Personalities
	Feelings
	Drawing
	Supernatural
	Sport
	People
	Future
	Story
	Protagonist
)

var tagSubTypes = enumeration[TagSubType]{
	kind: "tag subtype",
	wire: []string{
		Misc:          "misc",
		Personalities: "persoenlichkeiten",
		Feelings:      "gefuehle",
		Drawing:       "zeichnung",
		Supernatural:  "uebernatuerliches",
		Sport:         "sport",
		People:        "menschen",
		Future:        "zukunft",
		Story:         "story",
		Protagonist:   "prota",
	},
}

func (t TagSubType) String() string { return tagSubTypes.name(t) }

func (t TagSubType) MarshalText() ([]byte, error) { return tagSubTypes.marshal(t) }

func (t *TagSubType) UnmarshalText(b []byte) error { return tagSubTypes.unmarshal(t, b) }

// JSONSchema describes TagSubType as a string enum.
func (TagSubType) JSONSchema() *jsonschema.Schema { return tagSubTypes.schema() }

// ParseTagSubType converts a wire string into a TagSubType.
func ParseTagSubType(s string) (TagSubType, error) { return tagSubTypes.parse(s) }

// TagSubTypeValues lists the wire strings of TagSubType.
func TagSubTypeValues() []string { return tagSubTypes.values() }

// TranslationStatus is the progress of a translator group project.
type TranslationStatus int

const (
	StatusUndefined TranslationStatus = iota
	StatusFinished
	StatusOngoing
	StatusPlanned
	StatusCancelled
	StatusLicensed
)

var translations = enumeration[TranslationStatus]{
	kind: "translation status",
	wire: []string{
		StatusUndefined: "0",
		StatusFinished:  "1",
		StatusOngoing:   "2",
		StatusPlanned:   "3",
		StatusCancelled: "4",
		StatusLicensed:  "5",
	},
}

func (t TranslationStatus) String() string { return translations.name(t) }

func (t TranslationStatus) MarshalText() ([]byte, error) { return translations.marshal(t) }

func (t *TranslationStatus) UnmarshalText(b []byte) error { return translations.unmarshal(t, b) }

// JSONSchema describes TranslationStatus as a string enum.
func (TranslationStatus) JSONSchema() *jsonschema.Schema { return translations.schema() }

// ParseTranslationStatus converts a wire string into a TranslationStatus.
func ParseTranslationStatus(s string) (TranslationStatus, error) { return translations.parse(s) }

// TranslationStatusValues lists the wire strings of TranslationStatus.
func TranslationStatusValues() []string { return translations.values() }
