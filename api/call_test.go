package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/api/apitest"
	"github.com/Ceeox/proxer-go/constant"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type name struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type keyedName name

func (keyedName) RequiredKeys() []string {
	return []string{"id", "name"}
}

func TestCall(t *testing.T) {
	Convey("Given a server", t, func() {
		server := apitest.NewServer(apitest.Routes{
			"info/names":   `{"error":0,"message":"Ok","data":[{"id":1,"name":"Naruto"}]}`,
			"info/entry":   `{"error":1,"message":"Ungültige ID","code":3007}`,
			"info/gate":    `{"error":0,"message":"Ok"}`,
			"ucp/setvote":  `{"error":0,"message":"Ok"}`,
			"ucp/broken":   `{"error":0,`,
			"ucp/foreign":  `{"status":"ok"}`,
			"info/empty":   `{"error":0,"message":"Ok","data":{}}`,
			"user/logout":  `{"error":1,"message":"Fehler","code":9999}`,
			"list/comment": `{"error":0,"message":"Ok","data":"a&b=c"}`,
		})
		defer server.Close()

		ctx := context.Background()
		s := server.Session()

		Convey("a payload should be decoded", func() {
			names, err := api.Call[[]name](ctx, s, "info", "names", api.Params{api.Required("id", 1)})
			So(err, ShouldBeNil)
			So(names, ShouldResemble, []name{{ID: 1, Name: "Naruto"}})

			Convey("the request should carry the key, agent and form body", func() {
				req := server.Last()
				So(req.Method, ShouldEqual, http.MethodPost)
				So(req.Route, ShouldEqual, "info/names")
				So(req.Body, ShouldEqual, "id=1")
				So(req.Header.Get(api.HeaderAPIKey), ShouldEqual, apitest.Key)
				So(req.Header.Get("User-Agent"), ShouldEqual, constant.UserAgent)
				So(req.Header.Get("Content-Type"), ShouldEqual, "application/x-www-form-urlencoded")
				So(req.Form.Has(api.LoginTokenParam), ShouldBeFalse)
			})
		})

		Convey("a reported failure should be an api error", func() {
			_, err := api.Call[name](ctx, s, "info", "entry", api.Params{api.Required("id", 1)})
			So(api.IsAPIError(err, api.CodeInfoInvalidID), ShouldBeTrue)

			var apiErr *api.APIError
			So(errors.As(err, &apiErr), ShouldBeTrue)
			So(apiErr.Message, ShouldEqual, "Ungültige ID")
		})

		Convey("a missing payload should be ErrEmptyData", func() {
			_, err := api.Call[bool](ctx, s, "info", "gate", nil)
			So(errors.Is(err, api.ErrEmptyData), ShouldBeTrue)
		})

		Convey("a truncated body should be a decode error", func() {
			_, err := api.Call[name](ctx, s, "ucp", "broken", nil)
			var decodeErr *api.DecodeError
			So(errors.As(err, &decodeErr), ShouldBeTrue)
		})

		Convey("a foreign json body should not count as success", func() {
			err := api.Exec(ctx, s, "ucp", "foreign", nil)
			var decodeErr *api.DecodeError
			So(errors.As(err, &decodeErr), ShouldBeTrue)
			So(errors.Is(err, api.ErrMissingField), ShouldBeTrue)

			_, err = api.Call[name](ctx, s, "ucp", "foreign", nil)
			So(errors.Is(err, api.ErrMissingField), ShouldBeTrue)
		})

		Convey("an empty payload object should fail for a keyed type", func() {
			_, err := api.Call[keyedName](ctx, s, "info", "empty", nil)
			So(errors.Is(err, api.ErrMissingField), ShouldBeTrue)

			plain, err := api.Call[name](ctx, s, "info", "empty", nil)
			So(err, ShouldBeNil)
			So(plain, ShouldResemble, name{})
		})

		Convey("a mutation should succeed without a payload", func() {
			So(api.Exec(ctx, s, "ucp", "setvote", api.Params{api.Required("id", 3)}), ShouldBeNil)
		})

		Convey("an unknown code should still fail", func() {
			err := api.Exec(ctx, s, "user", "logout", nil)
			So(api.IsAPIError(err, 9999), ShouldBeTrue)
		})

		Convey("a 404 should be a transport error with the status", func() {
			_, err := api.Call[name](ctx, s, "nope", "nope", nil)
			var transportErr *api.TransportError
			So(errors.As(err, &transportErr), ShouldBeTrue)
			So(transportErr.Status, ShouldEqual, http.StatusNotFound)
		})

		Convey("Raw should return the body untouched", func() {
			raw, err := api.Raw(ctx, s, "info", "entry", nil)
			So(err, ShouldBeNil)
			So(string(raw), ShouldEqual, `{"error":1,"message":"Ungültige ID","code":3007}`)
		})

		Convey("an authenticated session should append the login token", func() {
			authed := s.WithLoginToken("tok")
			So(s.Authenticated(), ShouldBeFalse)
			So(authed.Authenticated(), ShouldBeTrue)

			So(api.Exec(ctx, authed, "ucp", "setvote", api.Params{
				api.Required("id", 3),
				api.Optional("kat", mo.None[string]()),
			}), ShouldBeNil)
			So(server.Last().Body, ShouldEqual, "id=3&token=tok")
		})

		Convey("raw params should be sent verbatim", func() {
			raw := server.Session(api.WithRawParams(true))
			So(raw.Escapes(), ShouldBeFalse)

			_, err := api.Raw(ctx, raw, "list", "comment", api.Params{api.Required("name", "a&b=c")})
			So(err, ShouldBeNil)
			So(server.Last().Body, ShouldEqual, "name=a&b=c")

			_, err = api.Raw(ctx, s, "list", "comment", api.Params{api.Required("name", "a&b=c")})
			So(err, ShouldBeNil)
			So(server.Last().Body, ShouldEqual, "name=a%26b%3Dc")
			So(server.Last().Form.Get("name"), ShouldEqual, "a&b=c")
		})

		Convey("a cancelled context should be a transport error", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := api.Call[name](cancelled, s, "info", "names", nil)
			var transportErr *api.TransportError
			So(errors.As(err, &transportErr), ShouldBeTrue)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestSession(t *testing.T) {
	Convey("Given a session with options", t, func() {
		s := api.New("key",
			api.WithBaseURL("http://localhost:1/api/"),
			api.WithVersion("/v2/"),
			api.WithUserAgent("agent"),
		)

		Convey("the endpoint url should be composed from its parts", func() {
			So(s.URL("info", "entry"), ShouldEqual, "http://localhost:1/api/v2/info/entry")
			So(s.UserAgent(), ShouldEqual, "agent")
		})

		Convey("defaults should point at proxer.me", func() {
			d := api.New("key")
			So(d.BaseURL(), ShouldEqual, api.DefaultBaseURL)
			So(d.Version(), ShouldEqual, api.DefaultVersion)
			So(d.NewsURL(), ShouldEqual, api.DefaultNewsURL)
			So(d.Escapes(), ShouldBeTrue)
		})

		Convey("deriving a login session should keep the original", func() {
			authed := s.WithLoginToken("t")
			So(authed.LoginToken(), ShouldEqual, "t")
			So(s.LoginToken(), ShouldBeEmpty)
			So(authed.URL("a", "b"), ShouldEqual, s.URL("a", "b"))
		})
	})
}
