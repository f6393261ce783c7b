package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/api/apitest"
	"github.com/Ceeox/proxer-go/auth"
	"github.com/Ceeox/proxer-go/config"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/Ceeox/proxer-go/filesystem"
	"github.com/Ceeox/proxer-go/key"
	"github.com/Ceeox/proxer-go/network"
	"github.com/Ceeox/proxer-go/query"
	"github.com/Ceeox/proxer-go/user"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

type exitCode int

func init() {
	filesystem.SetMemMapFs()
	keyring.MockInit()
	exit = func(code int) { panic(exitCode(code)) }
}

// run executes the command line args against server and returns what was printed.
func run(server *apitest.Server, args ...string) string {
	viper.Set(key.APIKey, apitest.Key)
	viper.Set(key.APIBaseURL, server.URL)
	viper.Set(key.APIVersion, api.DefaultVersion)
	viper.Set(key.NewsURL, server.URL+"/notifications")
	viper.Set(key.NetworkTransport, network.TransportStd)
	viper.Set(key.SearchHistory, true)

	for _, name := range []string{"filter", "pick", "path", "output"} {
		lo.Must0(rootCmd.PersistentFlags().Set(name, ""))
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	lo.Must0(rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestCommands(t *testing.T) {
	Convey("Given a server", t, func() {
		server := apitest.NewServer(apitest.Routes{
			"info/entry":       `{"error":0,"message":"Ok","data":{"id":1,"name":"Naruto","genre":"Action","fsk":"","description":"","medium":"animeseries","count":220,"state":2,"rate_sum":0,"rate_count":0,"clicks":0,"kat":"anime","license":0}}`,
			"info/names":       `{"error":1,"message":"Ungültige ID","code":3007}`,
			"list/entrysearch": `{"error":0,"message":"Ok","data":[{"id":53,"name":"Death Note","genre":"Mystery","medium":"animeseries","count":37,"state":2,"rate_sum":900,"rate_count":100,"language":"gersub"},{"id":1,"name":"Naruto","genre":"Action","medium":"animeseries","count":220,"state":2,"rate_sum":10,"rate_count":5,"language":"gersub"}]}`,
			"user/topten":      `{"error":0,"message":"Ok","data":[{"eid":1,"name":"Naruto","kat":"anime","medium":"animeseries"}]}`,
		})
		defer server.Close()

		Convey("an endpoint should print its payload as json", func() {
			out := run(server, "info", "entry", "1", "--format", "json")
			So(out, ShouldContainSubstring, `"name": "Naruto"`)
			So(out, ShouldContainSubstring, `"medium": "animeseries"`)
			So(server.Last().Header.Get(api.HeaderAPIKey), ShouldEqual, apitest.Key)
		})

		Convey("call should print the raw envelope at a path", func() {
			out := run(server, "call", "info", "entry", "id=1", "--format", "json", "--path", "data.name")
			So(out, ShouldContainSubstring, `"Naruto"`)
			So(server.Last().Body, ShouldEqual, "id=1")
		})

		Convey("call --check should fail on a reported error", func() {
			So(func() {
				run(server, "call", "info", "names", "id=0", "--check")
			}, ShouldPanicWith, exitCode(1))
		})

		Convey("a search should be filtered and remembered", func() {
			out := run(server, "list", "search", "Death", "--format", "json", "--filter", "rate_count > 50", "--path", "#.name")
			So(out, ShouldContainSubstring, "Death Note")
			So(out, ShouldNotContainSubstring, "Naruto")
			So(server.Last().Form.Get("name"), ShouldEqual, "Death")
			So(query.SuggestMany("dea"), ShouldContain, "death")
		})

		Convey("an invalid id should exit", func() {
			So(func() {
				run(server, "info", "entry", "abc")
			}, ShouldPanicWith, exitCode(1))
		})

		Convey("an action should print its message verbatim", func() {
			viper.Set(key.APIKey, apitest.Key)
			viper.Set(key.APIBaseURL, server.URL)
			viper.Set(key.APIVersion, api.DefaultVersion)
			viper.Set(key.NetworkTransport, network.TransportStd)

			noop := action("noop", "", "100% done", cobra.NoArgs, func(context.Context, *api.Session, *cobra.Command, []string) error {
				return nil
			})

			var out bytes.Buffer
			noop.SetOut(&out)
			noop.SetArgs([]string{})
			lo.Must0(noop.ExecuteContext(context.Background()))
			So(out.String(), ShouldContainSubstring, "100% done")
			So(out.String(), ShouldNotContainSubstring, "%!")
		})

		Convey("profile commands should use the stored login", func() {
			So(auth.SaveCredentials(user.Credentials{UID: 177, Token: "tok"}), ShouldBeNil)
			defer auth.DeleteCredentials()

			out := run(server, "user", "topten", "--format", "json")
			So(out, ShouldContainSubstring, "Naruto")
			So(server.Last().Body, ShouldEqual, "uid=177&token=tok")
		})
	})
}

func TestParseParams(t *testing.T) {
	Convey("Given name=value pairs", t, func() {
		params, err := parseParams([]string{"id=5", "name=a=b", "empty="})
		So(err, ShouldBeNil)

		Convey("they should keep their order and split at the first =", func() {
			So(params.Encode(true), ShouldEqual, "id=5&name=a%3Db&empty=")
		})
	})

	Convey("A pair without = should be rejected", t, func() {
		_, err := parseParams([]string{"id"})
		So(err, ShouldNotBeNil)

		_, err = parseParams([]string{"=5"})
		So(err, ShouldNotBeNil)
	})
}

func TestCheckEnvelope(t *testing.T) {
	Convey("Given raw envelopes", t, func() {
		So(checkEnvelope([]byte(`{"error":0,"message":"Ok","data":[]}`)), ShouldBeNil)

		err := checkEnvelope([]byte(`{"error":1,"message":"Ungültige ID","code":3007}`))
		So(api.IsAPIError(err, api.CodeInfoInvalidID), ShouldBeTrue)

		err = checkEnvelope([]byte(`{"error":1,"message":"?"}`))
		So(api.IsAPIError(err, 0), ShouldBeTrue)

		err = checkEnvelope([]byte(`{"status":"ok"}`))
		So(errors.Is(err, api.ErrMissingField), ShouldBeTrue)
	})
}

func TestParseValue(t *testing.T) {
	Convey("Given registered settings", t, func() {
		Convey("integers should be parsed", func() {
			v, err := parseValue(config.Default[key.LogsMaxSize], []string{"20"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 20)
		})

		Convey("booleans should be parsed", func() {
			v, err := parseValue(config.Default[key.LogsWrite], []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)
		})

		Convey("strings should be kept", func() {
			v, err := parseValue(config.Default[key.APIBaseURL], []string{"http://localhost"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "http://localhost")
		})

		Convey("a malformed integer should name the key", func() {
			_, err := parseValue(config.Default[key.LogsMaxSize], []string{"big"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.LogsMaxSize)
		})

		Convey("a missing value should fail", func() {
			_, err := parseValue(config.Default[key.APIBaseURL], nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestClosest(t *testing.T) {
	Convey("Given the languages", t, func() {
		values := enum.LanguageValues()

		Convey("a fuzzy match should win", func() {
			So(closest("gersu", values), ShouldEqual, "gersub")
		})

		Convey("a typo should fall back to the edit distance", func() {
			So(closest("engdib", values), ShouldEqual, "engdub")
		})

		Convey("the error should suggest the closest value", func() {
			_, err := parseEnum("language", "gerdup", enum.ParseLanguage, values)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `did you mean "gerdub"?`)
		})

		Convey("an unknown config key should be suggested", func() {
			So(errUnknownKey("api.bse_url").Error(), ShouldContainSubstring, "api.base_url")
		})

		Convey("nothing should be suggested without values", func() {
			So(closest("x", nil), ShouldBeEmpty)
		})
	})
}

func TestSchema(t *testing.T) {
	Convey("Every known type should have a schema", t, func() {
		for _, name := range schemaNames() {
			schema, err := generateSchema(name)
			So(err, ShouldBeNil)
			So(schema, ShouldNotBeNil)
		}
	})

	Convey("The entry schema should describe enums as strings", t, func() {
		schema, err := generateSchema("info.entry")
		So(err, ShouldBeNil)

		medium, ok := schema.Properties.Get("medium")
		So(ok, ShouldBeTrue)
		So(medium.Enum, ShouldContain, "animeseries")
	})

	Convey("An unknown type should be suggested", t, func() {
		_, err := generateSchema("info.entri")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "info.entry")
	})
}

func TestEnvNames(t *testing.T) {
	Convey("The env listing should include the config path override", t, func() {
		names := envNames()
		So(names, ShouldContain, "PROXER_CONFIG_PATH")
		So(names, ShouldContain, "PROXER_API_KEY")
	})
}
