package manga

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Ceeox/proxer-go/api/apitest"
	"github.com/Ceeox/proxer-go/enum"
	. "github.com/smartystreets/goconvey/convey"
)

const chapterBody = `{"error":0,"message":"Ok","data":{
	"cid":1234,"eid":42,"title":"Kapitel 1","uploader":5,"username":"up","timestamp":1500000000,
	"tid":3,"tname":"Scans","server":2,
	"pages":[["01.jpg",1200,800],["02 b.png","1200","800"]]}}`

func TestGetChapter(t *testing.T) {
	Convey("Given a server with a chapter", t, func() {
		server := apitest.NewServer(apitest.Routes{"manga/chapter": chapterBody})
		defer server.Close()

		chapter, err := GetChapter(context.Background(), server.Session(), 42, 1, enum.German)
		So(err, ShouldBeNil)

		Convey("the request should name the chapter", func() {
			So(server.Last().Body, ShouldEqual, "id=42&episode=1&language=de")
		})

		Convey("pages should decode from triples, quoted or not", func() {
			So(chapter.Pages, ShouldResemble, []Page{
				{Name: "01.jpg", Height: 1200, Width: 800},
				{Name: "02 b.png", Height: 1200, Width: 800},
			})
		})

		Convey("page links should point at the chapter's server", func() {
			link, err := chapter.PageURL(0)
			So(err, ShouldBeNil)
			So(link, ShouldEqual, "https://manga2.proxer.me/f/42/1234/01.jpg")

			So(chapter.PageURLs(), ShouldResemble, []string{
				"https://manga2.proxer.me/f/42/1234/01.jpg",
				"https://manga2.proxer.me/f/42/1234/02%20b.png",
			})
		})

		Convey("an index past the last page should fail", func() {
			_, err := chapter.PageURL(2)
			So(errors.Is(err, ErrPageOutOfRange), ShouldBeTrue)

			_, err = chapter.PageURL(-1)
			So(errors.Is(err, ErrPageOutOfRange), ShouldBeTrue)
		})
	})
}

func TestPage(t *testing.T) {
	Convey("A page should marshal back to its triple", t, func() {
		b, err := json.Marshal(Page{Name: "01.jpg", Height: 10, Width: 20})
		So(err, ShouldBeNil)
		So(string(b), ShouldEqual, `["01.jpg",10,20]`)
	})

	Convey("A malformed triple should be rejected", t, func() {
		var p Page
		So(json.Unmarshal([]byte(`["01.jpg",10]`), &p), ShouldNotBeNil)
		So(json.Unmarshal([]byte(`["01.jpg","tall",20]`), &p), ShouldNotBeNil)
		So(json.Unmarshal([]byte(`{"name":"01.jpg"}`), &p), ShouldNotBeNil)
	})
}
