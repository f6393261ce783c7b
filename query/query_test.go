package query

import (
	"testing"

	"github.com/Ceeox/proxer-go/filesystem"
	"github.com/Ceeox/proxer-go/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuery(t *testing.T) {
	Convey("Given the search history", t, func() {
		viper.Set(key.SearchHistory, true)

		Convey("When remembering queries", func() {
			So(Remember("Steins;Gate", 1), ShouldBeNil)
			So(Remember("  steins;gate 0 ", 10), ShouldBeNil)

			Convey("Suggestions should be sorted by rank", func() {
				s := SuggestMany("stei")
				So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
				So(s[0], ShouldEqual, "steins;gate 0")
				So(Suggest("stei").MustGet(), ShouldEqual, "steins;gate 0")
			})

			Convey("Remembering again should raise the rank", func() {
				So(Remember("STEINS;GATE", 20), ShouldBeNil)
				So(Suggest("stei").MustGet(), ShouldEqual, "steins;gate")
			})
		})

		Convey("Blank queries should be ignored", func() {
			So(Remember("   ", 1), ShouldBeNil)
			So(SuggestMany(""), ShouldNotContain, "")
		})

		Convey("Nothing should be suggested when the history is off", func() {
			So(Remember("one piece", 1), ShouldBeNil)
			viper.Set(key.SearchHistory, false)
			So(SuggestMany("one"), ShouldBeEmpty)
			So(Suggest("one").IsAbsent(), ShouldBeTrue)
		})

		Convey("normalize should trim and lower the query", func() {
			So(normalize("  NARUTO  "), ShouldEqual, "naruto")
		})
	})
}
