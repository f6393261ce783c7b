package list

import (
	"fmt"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/enum"
)

// SearchEntry is one hit of the extended search. The same entry may appear once per matching name.
type SearchEntry struct {
	ID        uint64        `json:"id"`
	Name      string        `json:"name"`
	Genre     api.SpaceList `json:"genre"`
	Medium    enum.Medium   `json:"medium"`
	Count     uint64        `json:"count"`
	State     uint8         `json:"state"`
	RateSum   uint64        `json:"rate_sum"`
	RateCount uint64        `json:"rate_count"`
	Language  api.CommaList `json:"language"`
}

func (SearchEntry) RequiredKeys() []string {
	return []string{"id", "name"}
}

// ListEntry is one entry of a category listing.
type ListEntry struct {
	ID        uint64        `json:"id"`
	Name      string        `json:"name"`
	Genre     api.SpaceList `json:"genre"`
	Medium    enum.Medium   `json:"medium"`
	Count     uint64        `json:"count"`
	State     uint64        `json:"state"`
	RateSum   uint64        `json:"rate_sum"`
	RateCount uint64        `json:"rate_count"`
	Language  api.CommaList `json:"language"`
}

// TagIDs holds the tag ids found in a search string, split by whether they were negated with "-".
type TagIDs struct {
	Tags   []string `json:"tags"`
	NoTags []string `json:"notags"`
}

// Tag is a genre, entry or gallery tag.
type Tag struct {
	ID          uint64          `json:"id"`
	Type        string          `json:"type"`
	Tag         string          `json:"tag"`
	Description string          `json:"description"`
	Blacklist   uint8           `json:"blacklist"`
	Subtype     enum.TagSubType `json:"subtype"`
}

// TranslatorGroup is a sub or scanlation group.
type TranslatorGroup struct {
	ID      uint64  `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Image   *string `json:"image,omitempty"`
}

// Industry is a company listed by the industry directory.
type Industry struct {
	ID      uint64       `json:"id"`
	Type    enum.Company `json:"type"`
	Name    string       `json:"name"`
	Country string       `json:"country"`
	Link    string       `json:"link"`
}

// CoverURL returns the location of the company's cover image.
func (i Industry) CoverURL() string {
	return fmt.Sprintf("https://cdn.proxer.me/industry/%d.jpg", i.ID)
}

// TranslatorGroupProject is an entry a translator group works on.
type TranslatorGroupProject struct {
	ID        uint64                 `json:"id"`
	Name      string                 `json:"name"`
	Genre     api.SpaceList          `json:"genre"`
	FSK       api.SpaceList          `json:"fsk"`
	Medium    enum.Medium            `json:"medium"`
	Status    enum.TranslationStatus `json:"type"`
	State     uint8                  `json:"state"`
	RateSum   uint64                 `json:"rate_sum"`
	RateCount uint64                 `json:"rate_count"`
}

// IndustryProject is an entry a company was involved with.
type IndustryProject struct {
	ID        uint64        `json:"id"`
	Name      string        `json:"name"`
	Genre     api.SpaceList `json:"genre"`
	FSK       api.SpaceList `json:"fsk"`
	Medium    enum.Medium   `json:"medium"`
	Type      enum.Company  `json:"type"`
	State     uint8         `json:"state"`
	RateSum   uint64        `json:"rate_sum"`
	RateCount uint64        `json:"rate_count"`
}
