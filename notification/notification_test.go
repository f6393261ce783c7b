package notification

import (
	"context"
	"testing"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/api/apitest"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNotifications(t *testing.T) {
	Convey("Given a logged-in session", t, func() {
		server := apitest.NewServer(apitest.Routes{
			"notifications/count":  `{"error":0,"message":"Ok","data":"0,0,2,1,0,0"}`,
			"notifications/news":   `{"error":0,"message":"Ok","data":[{"nid":100,"time":1500000000,"mid":3,"description":"Neu","image_id":"abc","image_style":"","subject":"Update","hits":10,"thread":77,"uid":1,"uname":"admin","posts":4,"catid":5,"catname":"News"}]}`,
			"notifications/delete": `{"error":0,"message":"Ok"}`,
		})
		defer server.Close()

		s := server.Session().WithLoginToken("tok")
		ctx := context.Background()

		Convey("the counters should be returned as sent", func() {
			count, err := GetCount(ctx, s)
			So(err, ShouldBeNil)
			So(count, ShouldEqual, "0,0,2,1,0,0")
		})

		Convey("news should link to the cdn and the forum", func() {
			news, err := GetNews(ctx, s, NewsOptions{Limit: mo.Some(uint64(1))})
			So(err, ShouldBeNil)
			So(news, ShouldHaveLength, 1)
			So(news[0].ImageURL(), ShouldEqual, "https://cdn.proxer.me/news/100_abc.png")
			So(news[0].ThreadURL(), ShouldEqual, "https://proxer.me/forum/5/77")
			So(server.Last().Body, ShouldEqual, "limit=1&token=tok")
		})

		Convey("delete without a nid should clear every read notification", func() {
			So(Delete(ctx, s, mo.None[uint64]()), ShouldBeNil)
			So(server.Last().Body, ShouldEqual, "token=tok")

			So(Delete(ctx, s, mo.Some(uint64(100))), ShouldBeNil)
			So(server.Last().Body, ShouldEqual, "nid=100&token=tok")
		})

		Convey("without a login the counters should be refused", func() {
			server.Set("notifications/count", `{"error":1,"message":"Nicht eingeloggt","code":3002}`)
			_, err := GetCount(ctx, server.Session())
			So(api.IsAPIError(err, api.CodeNotificationsNoLogin), ShouldBeTrue)
		})
	})
}
