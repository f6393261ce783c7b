package list

import (
	"context"
	"testing"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/api/apitest"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSearchEntries(t *testing.T) {
	Convey("Given a server with search results", t, func() {
		server := apitest.NewServer(apitest.Routes{
			"list/entrysearch": `{"error":0,"message":"Ok","data":[
				{"id":53,"name":"Death Note","genre":"Mystery Psychological","medium":"animeseries","count":37,"state":2,"rate_sum":900,"rate_count":100,"language":"gersub,engsub"},
				{"id":53,"name":"デスノート","genre":"Mystery Psychological","medium":"animeseries","count":37,"state":2,"rate_sum":900,"rate_count":100,"language":"gersub,engsub"}]}`,
		})
		defer server.Close()

		Convey("the hits should be decoded with their lists split", func() {
			entries, err := SearchEntries(context.Background(), server.Session(), SearchOptions{
				Name:        mo.Some("death note"),
				Type:        mo.Some(enum.AnimeSeries),
				Sort:        mo.Some(enum.Rating),
				Length:      mo.Some(uint64(30)),
				LengthLimit: mo.Some(enum.Down),
			})
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 2)

			want := SearchEntry{
				ID:        53,
				Name:      "Death Note",
				Genre:     api.SpaceList{"Mystery", "Psychological"},
				Medium:    enum.AnimeSeries,
				Count:     37,
				State:     2,
				RateSum:   900,
				RateCount: 100,
				Language:  api.CommaList{"gersub", "engsub"},
			}
			So(cmp.Diff(want, entries[0]), ShouldBeEmpty)

			Convey("one entry may appear once per matching name", func() {
				So(entries[1].ID, ShouldEqual, entries[0].ID)
				So(entries[1].Name, ShouldNotEqual, entries[0].Name)
			})

			Convey("only the given filters should be sent, in order", func() {
				So(server.Last().Body, ShouldEqual, "name=death+note&type=animeseries&sort=rating&length=30&length-limit=down")
			})
		})

		Convey("a search without filters should send an empty body", func() {
			_, err := SearchEntries(context.Background(), server.Session(), SearchOptions{})
			So(err, ShouldBeNil)
			So(server.Last().Body, ShouldBeEmpty)
		})
	})
}

func TestDirectories(t *testing.T) {
	Convey("Given a server with the directories", t, func() {
		server := apitest.NewServer(apitest.Routes{
			"list/tagids":                  `{"error":0,"message":"Ok","data":{"tags":["12","7"],"notags":["3"]}}`,
			"list/tags":                    `{"error":0,"message":"Ok","data":[{"id":7,"type":"entry_tag","tag":"Zeitreise","description":"","blacklist":0,"subtype":"zukunft"}]}`,
			"list/industrys":               `{"error":0,"message":"Ok","data":[{"id":4,"type":"studio","name":"Madhouse","country":"jp","link":"http://madhouse.co.jp"}]}`,
			"list/translatorgroupprojects": `{"error":0,"message":"Ok","data":[{"id":1,"name":"Naruto","genre":"Action","fsk":"fsk12 bad_language","medium":"animeseries","type":"2","state":1,"rate_sum":0,"rate_count":0}]}`,
		})
		defer server.Close()

		s := server.Session()
		ctx := context.Background()

		Convey("tag ids should be split by negation", func() {
			ids, err := GetTagIDs(ctx, s, "Zeitreise -Harem")
			So(err, ShouldBeNil)
			So(ids, ShouldResemble, TagIDs{Tags: []string{"12", "7"}, NoTags: []string{"3"}})
			So(server.Last().Form.Get("search"), ShouldEqual, "Zeitreise -Harem")
		})

		Convey("tags should decode their sub-type", func() {
			tags, err := GetTags(ctx, s, TagOptions{Subtype: mo.Some(enum.Future)})
			So(err, ShouldBeNil)
			So(tags[0].Subtype, ShouldEqual, enum.Future)
			So(server.Last().Body, ShouldEqual, "subtype=zukunft")
		})

		Convey("industries should decode their role", func() {
			industries, err := GetIndustries(ctx, s, IndustryOptions{Type: mo.Some(enum.Studio)})
			So(err, ShouldBeNil)
			So(industries[0].Type, ShouldEqual, enum.Studio)
			So(industries[0].CoverURL(), ShouldEqual, "https://cdn.proxer.me/industry/4.jpg")
		})

		Convey("group projects should decode their translation status", func() {
			projects, err := GetTranslatorGroupProjects(ctx, s, 9, GroupProjectOptions{IsH: mo.Some(int8(-1))})
			So(err, ShouldBeNil)
			So(projects[0].Status, ShouldEqual, enum.StatusOngoing)
			So([]string(projects[0].FSK), ShouldResemble, []string{"fsk12", "bad_language"})
			So(server.Last().Body, ShouldEqual, "id=9&isH=-1")
		})
	})
}

func TestListings(t *testing.T) {
	Convey("Given a server with category listings", t, func() {
		server := apitest.NewServer(apitest.Routes{
			"list/entrylist":        `{"error":0,"message":"Ok","data":[{"id":1,"name":"Monster","genre":"Drama Mystery","medium":"mangaseries","count":162,"state":2,"rate_sum":450,"rate_count":50,"language":"de,en"}]}`,
			"list/translatorgroups": `{"error":0,"message":"Ok","data":[{"id":9,"name":"Subs","country":"de","image":"9.jpg"},{"id":10,"name":"Scans","country":"en"}]}`,
			"list/industryprojects": `{"error":0,"message":"Ok","data":[{"id":53,"name":"Death Note","genre":"Mystery Psychological","fsk":"fsk16","medium":"animeseries","type":"studio","state":2,"rate_sum":900,"rate_count":100}]}`,
		})
		defer server.Close()

		s := server.Session()
		ctx := context.Background()

		Convey("an entry list should be decoded", func() {
			entries, err := GetEntryList(ctx, s, EntryListOptions{
				Category: mo.Some(enum.Manga),
				Medium:   mo.Some(enum.MangaSeries),
				IsH:      mo.Some(false),
				Start:    mo.Some("M"),
				Limit:    mo.Some(uint64(1)),
			})
			So(err, ShouldBeNil)
			So(server.Last().Body, ShouldEqual, "kat=manga&medium=mangaseries&isH=false&start=M&limit=1")
			So(cmp.Diff([]ListEntry{{
				ID:        1,
				Name:      "Monster",
				Genre:     api.SpaceList{"Drama", "Mystery"},
				Medium:    enum.MangaSeries,
				Count:     162,
				State:     2,
				RateSum:   450,
				RateCount: 50,
				Language:  api.CommaList{"de", "en"},
			}}, entries), ShouldBeEmpty)
		})

		Convey("translator groups should be decoded with their optional image", func() {
			groups, err := GetTranslatorGroups(ctx, s, GroupOptions{Contains: mo.Some("s")})
			So(err, ShouldBeNil)
			So(server.Last().Body, ShouldEqual, "contains=s")
			So(cmp.Diff([]TranslatorGroup{
				{ID: 9, Name: "Subs", Country: "de", Image: lo.ToPtr("9.jpg")},
				{ID: 10, Name: "Scans", Country: "en"},
			}, groups), ShouldBeEmpty)
		})

		Convey("industry projects should be decoded", func() {
			projects, err := GetIndustryProjects(ctx, s, 4, IndustryProjectOptions{
				Type: mo.Some(enum.Studio),
				Page: mo.Some(uint64(2)),
			})
			So(err, ShouldBeNil)
			So(server.Last().Body, ShouldEqual, "id=4&type=studio&p=2")
			So(cmp.Diff([]IndustryProject{{
				ID:        53,
				Name:      "Death Note",
				Genre:     api.SpaceList{"Mystery", "Psychological"},
				FSK:       api.SpaceList{"fsk16"},
				Medium:    enum.AnimeSeries,
				Type:      enum.Studio,
				State:     2,
				RateSum:   900,
				RateCount: 100,
			}}, projects), ShouldBeEmpty)
		})
	})
}
