package info

import (
	"context"
	"errors"
	"testing"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/api/apitest"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

const entryBody = `{"error":0,"message":"Ok","data":{
	"id":1,"name":"Naruto","genre":"Action Comedy","fsk":"fsk12","description":"Ninja",
	"medium":"animeseries","count":220,"state":2,"rate_sum":1000,"rate_count":125,
	"clicks":42,"kat":"anime","license":1}}`

func TestGetEntry(t *testing.T) {
	Convey("Given a server with an entry", t, func() {
		server := apitest.NewServer(apitest.Routes{
			"info/entry": entryBody,
			"info/gate":  `{"error":0,"message":"Ok","data":true}`,
			"info/names": `{"error":1,"message":"Ungültige ID","code":3007}`,
		})
		defer server.Close()

		s := server.Session()
		ctx := context.Background()

		Convey("the entry should be decoded", func() {
			entry, err := GetEntry(ctx, s, 1)
			So(err, ShouldBeNil)

			want := Entry{
				ID:          1,
				Name:        "Naruto",
				Genre:       "Action Comedy",
				FSK:         "fsk12",
				Description: "Ninja",
				Medium:      enum.AnimeSeries,
				Count:       220,
				State:       2,
				RateSum:     1000,
				RateCount:   125,
				Clicks:      42,
				Category:    enum.Anime,
				License:     1,
			}
			So(cmp.Diff(want, entry), ShouldBeEmpty)
			So(entry.Rating(), ShouldEqual, 8.0)
			So(entry.PageURL(), ShouldEqual, "https://proxer.me/info/1")
			So(server.Last().Body, ShouldEqual, "id=1")
		})

		Convey("an entry without its members should be a decode error", func() {
			server.Set("info/entry", `{"error":0,"message":"Ok","data":{}}`)
			entry, err := GetEntry(ctx, s, 1)
			So(errors.Is(err, api.ErrMissingField), ShouldBeTrue)
			So(entry, ShouldResemble, Entry{})
		})

		Convey("a scalar payload should be decoded", func() {
			gate, err := GetGate(ctx, s, 1)
			So(err, ShouldBeNil)
			So(gate, ShouldBeTrue)
		})

		Convey("an invalid id should be reported", func() {
			_, err := GetNames(ctx, s, 0)
			So(api.IsAPIError(err, api.CodeInfoInvalidID), ShouldBeTrue)
		})
	})
}

func TestComments(t *testing.T) {
	Convey("Given a server with comments", t, func() {
		server := apitest.NewServer(apitest.Routes{
			"info/comments":    `{"error":0,"message":"Ok","data":[{"id":7,"tid":1,"type":"entry","state":1,"data":"{}","comment":"great","rating":9,"episode":12,"positive":3,"timestamp":1500000000,"username":"kai","uid":99,"avatar":"a.png"}]}`,
			"info/setuserinfo": `{"error":0,"message":"Ok"}`,
		})
		defer server.Close()

		s := server.Session()

		Convey("optional parameters should only be sent when present", func() {
			comments, err := GetComments(context.Background(), s, 1, CommentOptions{
				Limit: mo.Some(uint64(5)),
				Sort:  mo.Some(enum.NameDesc),
			})
			So(err, ShouldBeNil)
			So(comments, ShouldHaveLength, 1)
			So(comments[0].Comment, ShouldEqual, "great")
			So(server.Last().Body, ShouldEqual, "id=1&limit=5&sort=nameDESC")
		})

		Convey("setuserinfo should send the wire name of the list", func() {
			So(SetUserInfo(context.Background(), s, 3, enum.Finish), ShouldBeNil)
			So(server.Last().Body, ShouldEqual, "id=3&type=finish")
		})
	})
}

func TestRating(t *testing.T) {
	Convey("An unrated entry should have a zero rating", t, func() {
		So(Entry{}.Rating(), ShouldEqual, 0.0)
	})

	Convey("An industry should know its cover", t, func() {
		So(Industry{ID: 4}.CoverURL(), ShouldEqual, "https://cdn.proxer.me/industry/4.jpg")
	})
}

const fullEntryBody = `{"error":0,"message":"Ok","data":{
	"id":53,"name":"Death Note","genre":"Mystery Psychological","fsk":"fsk16","description":"Light",
	"medium":"animeseries","count":37,"state":2,"rate_sum":900,"rate_count":100,"clicks":7,
	"kat":"anime","license":2,"gate":false,
	"names":["Desu Noto"],"lang":["gersub","engsub"],
	"seasons":[{"id":5,"type":"start","year":2006,"season":4}],
	"groups":[{"id":9,"name":"Subs","country":"de"}],
	"publisher":[{"id":4,"name":"Madhouse","type":"studio","country":"jp"}],
	"tags":[{"id":1,"tid":30,"timestamp":"2016-01-01 10:00:00","rate_flag":1,"spoiler_flag":0,"tag":"Genie","description":"Kluge Figuren"}]}}`

func TestDetails(t *testing.T) {
	Convey("Given a server with the detail endpoints of an entry", t, func() {
		server := apitest.NewServer(apitest.Routes{
			"info/fullentry":       fullEntryBody,
			"info/lang":            `{"error":0,"message":"Ok","data":["gersub","engsub"]}`,
			"info/season":          `{"error":0,"message":"Ok","data":[{"id":5,"eid":53,"type":"start","year":2006,"season":4},{"id":6,"eid":53,"type":"end","year":2007,"season":2}]}`,
			"info/groups":          `{"error":0,"message":"Ok","data":[{"id":9,"name":"Subs","country":"de"}]}`,
			"info/publisher":       `{"error":0,"message":"Ok","data":[{"id":4,"name":"Madhouse","type":"studio","country":"jp"}]}`,
			"info/listinfo":        `{"error":0,"message":"Ok","data":{"start":1,"end":2,"kat":"anime","lang":"gersub","state":2,"episodes":[{"no":1,"title":"Rebirth","typ":"gersub","types":"mp4upload,proxer-stream","typeimg":"mp4upload.png,proxer.png"},{"no":2,"typ":"gersub"}]}}`,
			"info/relations":       `{"error":0,"message":"Ok","data":[{"id":54,"name":"Death Note: Relight","genre":"Mystery","fsk":"fsk16","description":"Recap","medium":"ova","count":2,"state":2,"rate_sum":80,"rate_count":10,"clicks":3,"kat":"anime","license":0,"language":"gersub","year":2007,"season":3}]}`,
			"info/entrytag":        `{"error":0,"message":"Ok","data":[{"id":1,"tid":30,"timestamp":1451642400,"rate_flag":1,"spoiler_flag":1,"tag":"Genie","description":"Kluge Figuren"}]}`,
			"info/translatorgroup": `{"error":0,"message":"Ok","data":{"id":9,"name":"Subs","link":"http://subs.de","country":"de","image":"9.jpg","description":"Wir","count":"12","cprojects":"3"}}`,
			"info/industry":        `{"error":0,"message":"Ok","data":{"id":4,"type":"studio","name":"Madhouse","country":"jp","link":"http://madhouse.co.jp","description":"Studio"}}`,
		})
		defer server.Close()

		s := server.Session()
		ctx := context.Background()

		Convey("a full entry should carry every attached list", func() {
			entry, err := GetFullEntry(ctx, s, 53)
			So(err, ShouldBeNil)

			want := FullEntry{
				ID:          53,
				Name:        "Death Note",
				Genre:       "Mystery Psychological",
				FSK:         "fsk16",
				Description: "Light",
				Medium:      enum.AnimeSeries,
				Count:       37,
				State:       2,
				RateSum:     900,
				RateCount:   100,
				Clicks:      7,
				Category:    enum.Anime,
				License:     2,
				Names:       []string{"Desu Noto"},
				Languages:   []string{"gersub", "engsub"},
				Seasons:     []EntrySeason{{ID: 5, Type: "start", Year: 2006, Season: 4}},
				Groups:      []Group{{ID: 9, Name: "Subs", Country: "de"}},
				Publishers:  []EntryCompany{{ID: 4, Name: "Madhouse", Type: "studio", Country: "jp"}},
				Tags: []FullEntryTag{{
					ID:          1,
					TID:         30,
					Timestamp:   "2016-01-01 10:00:00",
					RateFlag:    1,
					Tag:         "Genie",
					Description: "Kluge Figuren",
				}},
			}
			So(cmp.Diff(want, entry), ShouldBeEmpty)
			So(entry.PageURL(), ShouldEqual, "https://proxer.me/info/53")
			So(server.Last().Body, ShouldEqual, "id=53")
		})

		Convey("the languages should be decoded", func() {
			languages, err := GetLanguages(ctx, s, 53)
			So(err, ShouldBeNil)
			So(languages, ShouldResemble, []string{"gersub", "engsub"})
			So(server.Last().Route, ShouldEqual, "info/lang")
		})

		Convey("the seasons should be decoded", func() {
			seasons, err := GetSeasons(ctx, s, 53)
			So(err, ShouldBeNil)
			So(cmp.Diff([]Season{
				{ID: 5, EID: 53, Type: "start", Year: 2006, Season: 4},
				{ID: 6, EID: 53, Type: "end", Year: 2007, Season: 2},
			}, seasons), ShouldBeEmpty)
		})

		Convey("the groups and publishers should be decoded", func() {
			groups, err := GetGroups(ctx, s, 53)
			So(err, ShouldBeNil)
			So(cmp.Diff([]Group{{ID: 9, Name: "Subs", Country: "de"}}, groups), ShouldBeEmpty)

			publishers, err := GetPublishers(ctx, s, 53)
			So(err, ShouldBeNil)
			So(cmp.Diff([]Publisher{{ID: 4, Name: "Madhouse", Type: "studio", Country: "jp"}}, publishers), ShouldBeEmpty)
		})

		Convey("a page of the episode list should be decoded", func() {
			list, err := GetListInfo(ctx, s, 53, PageOptions{Page: mo.Some(uint64(0)), Limit: mo.Some(uint64(2))})
			So(err, ShouldBeNil)
			So(server.Last().Body, ShouldEqual, "id=53&p=0&limit=2")

			want := ListInfo{
				Start:    1,
				End:      2,
				Category: enum.Anime,
				Language: "gersub",
				State:    2,
				Episodes: []ListEpisode{
					{
						No:        1,
						Title:     lo.ToPtr("Rebirth"),
						Language:  "gersub",
						Types:     lo.ToPtr("mp4upload,proxer-stream"),
						TypeImage: lo.ToPtr("mp4upload.png,proxer.png"),
					},
					{No: 2, Language: "gersub"},
				},
			}
			So(cmp.Diff(want, list), ShouldBeEmpty)
		})

		Convey("the relations should be decoded", func() {
			relations, err := GetRelations(ctx, s, 53)
			So(err, ShouldBeNil)
			So(cmp.Diff([]Relation{{
				ID:          54,
				Name:        "Death Note: Relight",
				Genre:       "Mystery",
				FSK:         "fsk16",
				Description: "Recap",
				Medium:      enum.OVA,
				Count:       2,
				State:       2,
				RateSum:     80,
				RateCount:   10,
				Clicks:      3,
				Category:    enum.Anime,
				Language:    "gersub",
				Year:        2007,
				Season:      3,
			}}, relations), ShouldBeEmpty)
		})

		Convey("the tags should be decoded", func() {
			tags, err := GetEntryTags(ctx, s, 53)
			So(err, ShouldBeNil)
			So(cmp.Diff([]EntryTag{{
				ID:          1,
				TID:         30,
				Timestamp:   1451642400,
				RateFlag:    1,
				SpoilerFlag: 1,
				Tag:         "Genie",
				Description: "Kluge Figuren",
			}}, tags), ShouldBeEmpty)
			So(server.Last().Route, ShouldEqual, "info/entrytag")
		})

		Convey("a translator group should be decoded", func() {
			group, err := GetTranslatorGroup(ctx, s, 9)
			So(err, ShouldBeNil)
			So(cmp.Diff(TranslatorGroup{
				ID:          9,
				Name:        "Subs",
				Link:        "http://subs.de",
				Country:     "de",
				Image:       lo.ToPtr("9.jpg"),
				Description: "Wir",
				Count:       "12",
				CProjects:   "3",
			}, group), ShouldBeEmpty)
			So(server.Last().Body, ShouldEqual, "id=9")
		})

		Convey("an industry should be decoded", func() {
			industry, err := GetIndustry(ctx, s, 4)
			So(err, ShouldBeNil)
			So(cmp.Diff(Industry{
				ID:          4,
				Type:        enum.Studio,
				Name:        "Madhouse",
				Country:     "jp",
				Link:        "http://madhouse.co.jp",
				Description: "Studio",
			}, industry), ShouldBeEmpty)
		})
	})
}
