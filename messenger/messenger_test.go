package messenger

import (
	"context"
	"testing"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/api/apitest"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/google/go-cmp/cmp"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMessenger(t *testing.T) {
	Convey("Given a logged-in session", t, func() {
		server := apitest.NewServer(apitest.Routes{
			"messenger/constants":          `{"error":0,"message":"Ok","data":{"textCount":65000,"conferenceLimit":48,"messagesLimit":30,"userLimit":200,"topicCount":32}}`,
			"messenger/conferences":        `{"error":0,"message":"Ok","data":[{"id":8,"topic":"kai","topic_custom":"","count":2,"group":false,"timestamp_end":"1500000000","read":true,"read_count":0,"read_mid":55,"image":""}]}`,
			"messenger/conferenceinfo":     `{"error":0,"message":"Ok","data":{"conference":{"topic":"Runde","count":3,"timestamp_end":1500000000,"leader":1},"users":[{"uid":1,"avatar":"","username":"kai","status":""}]}}`,
			"messenger/messages":           `{"error":0,"message":"Ok","data":[{"message_id":55,"conference_id":8,"user_id":1,"username":"kai","message":"hallo","action":"","timestamp":1500000000,"device":"default"}]}`,
			"messenger/newconferencegroup": `{"error":0,"message":"Ok","data":9}`,
			"messenger/setmessage":         `{"error":0,"message":"Ok","data":""}`,
			"messenger/setblock":           `{"error":0,"message":"Ok"}`,
			"messenger/userinfo":           `{"error":0,"message":"Ok","data":{"avatar":"1.png","username":"mia","status":"online"}}`,
			"messenger/newconference":      `{"error":0,"message":"Ok","data":12}`,
			"messenger/report":             `{"error":0,"message":"Ok"}`,
			"messenger/setread":            `{"error":0,"message":"Ok"}`,
			"messenger/setunread":          `{"error":0,"message":"Ok"}`,
			"messenger/setunblock":         `{"error":0,"message":"Ok"}`,
			"messenger/setfavour":          `{"error":0,"message":"Ok"}`,
			"messenger/setunfavour":        `{"error":0,"message":"Ok"}`,
		})
		defer server.Close()

		s := server.Session().WithLoginToken("tok")
		ctx := context.Background()

		Convey("the constants should decode as an object", func() {
			constants, err := GetConstants(ctx, s)
			So(err, ShouldBeNil)
			So(cmp.Diff(Constants{TextCount: 65000, ConferenceLimit: 48, MessagesLimit: 30, UserLimit: 200, TopicCount: 32}, constants), ShouldBeEmpty)
			So(server.Last().Body, ShouldEqual, "token=tok")
		})

		Convey("conferences should be filtered by folder", func() {
			conferences, err := GetConferences(ctx, s, ConferencesOptions{Type: mo.Some(enum.ConferenceFavor), Page: mo.Some(uint64(0))})
			So(err, ShouldBeNil)
			So(cmp.Diff([]Conference{{
				ID:           8,
				Topic:        "kai",
				Count:        2,
				TimestampEnd: "1500000000",
				Read:         true,
				ReadMID:      55,
			}}, conferences), ShouldBeEmpty)
			So(server.Last().Body, ShouldEqual, "type=favor&p=0&token=tok")
		})

		Convey("conference info should list the members", func() {
			info, err := GetConferenceInfo(ctx, s, 8)
			So(err, ShouldBeNil)
			So(cmp.Diff(ConferenceInfo{
				Conference: ConferenceDetail{Topic: "Runde", Count: 3, TimestampEnd: 1500000000, Leader: 1},
				Users:      []Member{{UID: 1, Username: "kai"}},
			}, info), ShouldBeEmpty)
		})

		Convey("messages should be paged by message id", func() {
			messages, err := GetMessages(ctx, s, MessagesOptions{
				ConferenceID: mo.Some(uint64(8)),
				MessageID:    mo.Some(uint64(60)),
			})
			So(err, ShouldBeNil)
			So(cmp.Diff([]Message{{
				MessageID:    55,
				ConferenceID: 8,
				UserID:       1,
				Username:     "kai",
				Message:      "hallo",
				Timestamp:    1500000000,
				Device:       "default",
			}}, messages), ShouldBeEmpty)
			So(server.Last().Body, ShouldEqual, "conference_id=8&message_id=60&token=tok")
		})

		Convey("a group should be created with a topic", func() {
			id, err := NewConferenceGroup(ctx, s, []string{"kai", "mia"}, "Runde", mo.None[string]())
			So(err, ShouldBeNil)
			So(id, ShouldEqual, 9)
			So(server.Last().Form.Get("users"), ShouldEqual, "kai,mia")
			So(server.Last().Form.Get("topic"), ShouldEqual, "Runde")
			So(server.Last().Form.Has("text"), ShouldBeFalse)
		})

		Convey("sending a plain message should answer with nothing", func() {
			answer, err := SetMessage(ctx, s, 8, "hallo & tschüss")
			So(err, ShouldBeNil)
			So(answer, ShouldBeEmpty)
			So(server.Last().Form.Get("text"), ShouldEqual, "hallo & tschüss")
		})

		Convey("a user's messenger profile should be decoded", func() {
			info, err := GetUserInfo(ctx, s, 2)
			So(err, ShouldBeNil)
			So(cmp.Diff(UserInfo{Avatar: "1.png", Username: "mia", Status: "online"}, info), ShouldBeEmpty)
			So(server.Last().Body, ShouldEqual, "user_id=2&token=tok")
		})

		Convey("a private conference should return its id", func() {
			id, err := NewConference(ctx, s, "mia", "hi")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, 12)
			So(server.Last().Body, ShouldEqual, "username=mia&text=hi&token=tok")
		})

		Convey("a report should carry its reason", func() {
			So(Report(ctx, s, 8, "spam"), ShouldBeNil)
			So(server.Last().Route, ShouldEqual, "messenger/report")
			So(server.Last().Body, ShouldEqual, "conference_id=8&text=spam&token=tok")
		})

		Convey("conference actions should only send the id", func() {
			actions := []struct {
				route string
				run   func(context.Context, *api.Session, uint64) error
			}{
				{"messenger/setread", SetRead},
				{"messenger/setunread", SetUnread},
				{"messenger/setblock", SetBlock},
				{"messenger/setunblock", SetUnblock},
				{"messenger/setfavour", SetFavour},
				{"messenger/setunfavour", SetUnfavour},
			}

			for _, action := range actions {
				So(action.run(ctx, s, 8), ShouldBeNil)
				So(server.Last().Route, ShouldEqual, action.route)
				So(server.Last().Body, ShouldEqual, "conference_id=8&token=tok")
			}
		})

		Convey("without a login the server should refuse", func() {
			server.Set("messenger/setblock", `{"error":1,"message":"Nicht eingeloggt","code":3023}`)
			err := SetBlock(ctx, server.Session(), 8)
			So(api.IsAPIError(err, api.CodeMessagesNoLogin), ShouldBeTrue)
		})
	})
}
