package enum

import "github.com/invopop/jsonschema"

// Language selects the audio and subtitle combination of an anime stream.
type Language int

const (
	GerSub Language = iota
	GerDub
	EngSub
	EngDub
)

var languages = enumeration[Language]{
	kind: "language",
	wire: []string{
		GerSub: "gersub",
		GerDub: "gerdub",
		EngSub: "engsub",
		EngDub: "engdub",
	},
}

func (l Language) String() string { return languages.name(l) }

func (l Language) MarshalText() ([]byte, error) { return languages.marshal(l) }

func (l *Language) UnmarshalText(b []byte) error { return languages.unmarshal(l, b) }

// JSONSchema describes Language as a string enum.
func (Language) JSONSchema() *jsonschema.Schema { return languages.schema() }

// ParseLanguage converts a wire string into a Language.
func ParseLanguage(s string) (Language, error) { return languages.parse(s) }

// LanguageValues lists the wire strings of Language.
func LanguageValues() []string { return languages.values() }

// MangaLanguage selects the translation of a manga chapter.
type MangaLanguage int

const (
	German MangaLanguage = iota
	English
)

var mangaLanguages = enumeration[MangaLanguage]{
	kind: "manga language",
	wire: []string{
		German:  "de",
		English: "en",
	},
}

func (m MangaLanguage) String() string { return mangaLanguages.name(m) }

func (m MangaLanguage) MarshalText() ([]byte, error) { return mangaLanguages.marshal(m) }

func (m *MangaLanguage) UnmarshalText(b []byte) error { return mangaLanguages.unmarshal(m, b) }

// JSONSchema describes MangaLanguage as a string enum.
func (MangaLanguage) JSONSchema() *jsonschema.Schema { return mangaLanguages.schema() }

// ParseMangaLanguage converts a wire string into a MangaLanguage.
func ParseMangaLanguage(s string) (MangaLanguage, error) { return mangaLanguages.parse(s) }

// MangaLanguageValues lists the wire strings of MangaLanguage.
func MangaLanguageValues() []string { return mangaLanguages.values() }
