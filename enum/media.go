package enum

import "github.com/invopop/jsonschema"

// Category is the top-level kind of an entry.
type Category int

const (
	Anime Category = iota
	Manga
)

var categories = enumeration[Category]{
	kind: "category",
	wire: []string{
		Anime: "anime",
		Manga: "manga",
	},
}

func (c Category) String() string { return categories.name(c) }

func (c Category) MarshalText() ([]byte, error) { return categories.marshal(c) }

func (c *Category) UnmarshalText(b []byte) error { return categories.unmarshal(c, b) }

// JSONSchema describes Category as a string enum.
func (Category) JSONSchema() *jsonschema.Schema { return categories.schema() }

// ParseCategory converts a wire string into a Category.
func ParseCategory(s string) (Category, error) { return categories.parse(s) }

// CategoryValues lists the wire strings of Category.
func CategoryValues() []string { return categories.values() }

// Medium is the publication form of an entry.
type Medium int

const (
	AnimeSeries Medium = iota
	Movie
	OVA
	Hentai
	MangaSeries
	OneShot
	Doujin
	HManga
)

var media = enumeration[Medium]{
	kind: "medium",
	wire: []string{
		AnimeSeries: "animeseries",
		Movie:       "movie",
		OVA:         "ova",
		Hentai:      "hentai",
		MangaSeries: "mangaseries",
		OneShot:     "oneshot",
		Doujin:      "doujin",
		HManga:      "hmanga",
	},
}

func (m Medium) String() string { return media.name(m) }

func (m Medium) MarshalText() ([]byte, error) { return media.marshal(m) }

func (m *Medium) UnmarshalText(b []byte) error { return media.unmarshal(m, b) }

// JSONSchema describes Medium as a string enum.
func (Medium) JSONSchema() *jsonschema.Schema { return media.schema() }

// ParseMedium converts a wire string into a Medium.
func ParseMedium(s string) (Medium, error) { return media.parse(s) }

// MediumValues lists the wire strings of Medium.
func MediumValues() []string { return media.values() }

// Company is the role an industry member plays.
type Company int

const (
	Publisher Company = iota
	Studio
	Producer
	RecordLabel
	TalentAgent
	Streaming
)

var companies = enumeration[Company]{
	kind: "company",
	wire: []string{
		Publisher:   "publisher",
		Studio:      "studio",
		Producer:    "producer",
		RecordLabel: "record_label",
		TalentAgent: "talent_agent",
		Streaming:   "streaming",
	},
}

func (c Company) String() string { return companies.name(c) }

func (c Company) MarshalText() ([]byte, error) { return companies.marshal(c) }

func (c *Company) UnmarshalText(b []byte) error { return companies.unmarshal(c, b) }

// JSONSchema describes Company as a string enum.
func (Company) JSONSchema() *jsonschema.Schema { return companies.schema() }

// ParseCompany converts a wire string into a Company.
func ParseCompany(s string) (Company, error) { return companies.parse(s) }

// CompanyValues lists the wire strings of Company.
func CompanyValues() []string { return companies.values() }
