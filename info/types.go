package info

import (
	"fmt"

	"github.com/Ceeox/proxer-go/enum"
)

// FullEntry is an entry together with its names, languages, seasons, groups, publishers and tags.
type FullEntry struct {
	ID          uint64         `json:"id"`
	Name        string         `json:"name"`
	Genre       string         `json:"genre"`
	FSK         string         `json:"fsk"`
	Description string         `json:"description"`
	Medium      enum.Medium    `json:"medium"`
	Count       uint64         `json:"count"`
	State       uint8          `json:"state"`
	RateSum     uint64         `json:"rate_sum"`
	RateCount   uint64         `json:"rate_count"`
	Clicks      uint64         `json:"clicks"`
	Category    enum.Category  `json:"kat"`
	License     uint8          `json:"license"`
	Gate        bool           `json:"gate"`
	Names       []string       `json:"names"`
	Languages   []string       `json:"lang"`
	Seasons     []EntrySeason  `json:"seasons"`
	Groups      []Group        `json:"groups"`
	Publishers  []EntryCompany `json:"publisher"`
	Tags        []FullEntryTag `json:"tags"`
}

func (FullEntry) RequiredKeys() []string {
	return []string{"id", "name", "medium"}
}

// PageURL is the entry's page on proxer.me.
func (e FullEntry) PageURL() string {
	return PageURL(e.ID)
}

// EntrySeason is a season embedded in a FullEntry.
type EntrySeason struct {
	ID     uint64 `json:"id"`
	Type   string `json:"type"`
	Year   int32  `json:"year"`
	Season uint8  `json:"season"`
}

// EntryCompany is a publisher embedded in a FullEntry.
type EntryCompany struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Country string `json:"country"`
}

// Entry is the core data of an anime or manga.
type Entry struct {
	ID          uint64        `json:"id"`
	Name        string        `json:"name"`
	Genre       string        `json:"genre"`
	FSK         string        `json:"fsk"`
	Description string        `json:"description"`
	Medium      enum.Medium   `json:"medium"`
	Count       uint64        `json:"count"`
	State       uint64        `json:"state"`
	RateSum     uint64        `json:"rate_sum"`
	RateCount   uint64        `json:"rate_count"`
	Clicks      uint64        `json:"clicks"`
	Category    enum.Category `json:"kat"`
	License     uint8         `json:"license"`
}

func (Entry) RequiredKeys() []string {
	return []string{"id", "name", "medium"}
}

// Rating returns the average rating, or 0 for an unrated entry.
func (e Entry) Rating() float64 {
	if e.RateCount == 0 {
		return 0
	}
	return float64(e.RateSum) / float64(e.RateCount)
}

func (e Entry) PageURL() string {
	return PageURL(e.ID)
}

// PageURL is the page of the entry id on proxer.me.
func PageURL(id uint64) string {
	return fmt.Sprintf("https://proxer.me/info/%d", id)
}

// Name is an alternative title of an entry.
type Name struct {
	ID   uint64 `json:"id"`
	EID  uint64 `json:"eid"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// Season is the airing season of an entry.
type Season struct {
	ID     uint64 `json:"id"`
	EID    uint64 `json:"eid"`
	Type   string `json:"type"`
	Year   int32  `json:"year"`
	Season uint8  `json:"season"`
}

// Group is a translator group working on an entry.
type Group struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Publisher is an industry member involved with an entry.
type Publisher struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Country string `json:"country"`
}

// ListInfo is one page of the episode or chapter list of an entry.
type ListInfo struct {
	Start    uint64        `json:"start"`
	End      uint64        `json:"end"`
	Category enum.Category `json:"kat"`
	Language string        `json:"lang"`
	State    uint64        `json:"state"`
	Episodes []ListEpisode `json:"episodes"`
}

// ListEpisode is an episode or chapter and the stream types available for it.
type ListEpisode struct {
	No        uint64  `json:"no"`
	Title     *string `json:"title,omitempty"`
	Language  string  `json:"typ"`
	Types     *string `json:"types,omitempty"`
	TypeImage *string `json:"typeimg,omitempty"`
}

// Comment is a user review of an entry.
type Comment struct {
	ID        uint64  `json:"id"`
	TID       uint64  `json:"tid"`
	Type      string  `json:"type"`
	State     uint8   `json:"state"`
	Data      string  `json:"data"`
	Comment   string  `json:"comment"`
	Rating    float32 `json:"rating"`
	Episode   uint64  `json:"episode"`
	Positive  uint64  `json:"positive"`
	Timestamp int64   `json:"timestamp"`
	Username  string  `json:"username"`
	UID       uint64  `json:"uid"`
	Avatar    string  `json:"avatar"`
}

// Relation is an entry related to another one, e.g. a sequel.
type Relation struct {
	ID          uint64        `json:"id"`
	Name        string        `json:"name"`
	Genre       string        `json:"genre"`
	FSK         string        `json:"fsk"`
	Description string        `json:"description"`
	Medium      enum.Medium   `json:"medium"`
	Count       uint64        `json:"count"`
	State       uint64        `json:"state"`
	RateSum     uint64        `json:"rate_sum"`
	RateCount   uint64        `json:"rate_count"`
	Clicks      uint64        `json:"clicks"`
	Category    enum.Category `json:"kat"`
	License     uint8         `json:"license"`
	Language    string        `json:"language"`
	Year        int32         `json:"year"`
	Season      uint8         `json:"season"`
}

// FullEntryTag is a tag embedded in a FullEntry. Its timestamp is a formatted date.
type FullEntryTag struct {
	ID          uint64 `json:"id"`
	TID         uint64 `json:"tid"`
	Timestamp   string `json:"timestamp"`
	RateFlag    uint8  `json:"rate_flag"`
	SpoilerFlag uint8  `json:"spoiler_flag"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
}

// EntryTag is a tag attached to an entry.
type EntryTag struct {
	ID          uint64 `json:"id"`
	TID         uint64 `json:"tid"`
	Timestamp   int64  `json:"timestamp"`
	RateFlag    uint8  `json:"rate_flag"`
	SpoilerFlag uint8  `json:"spoiler_flag"`
	Tag         string `json:"tag"`
	Description string `json:"description"`
}

// TranslatorGroup is the profile of a translator group.
type TranslatorGroup struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Link        string  `json:"link"`
	Country     string  `json:"country"`
	Image       *string `json:"image,omitempty"`
	Description string  `json:"description"`
	Count       string  `json:"count"`
	CProjects   string  `json:"cprojects"`
}

// Industry is the profile of a company.
type Industry struct {
	ID          uint64       `json:"id"`
	Type        enum.Company `json:"type"`
	Name        string       `json:"name"`
	Country     string       `json:"country"`
	Link        string       `json:"link"`
	Description string       `json:"description"`
}

// CoverURL returns the location of the company's cover image.
func (i Industry) CoverURL() string {
	return fmt.Sprintf("https://cdn.proxer.me/industry/%d.jpg", i.ID)
}
