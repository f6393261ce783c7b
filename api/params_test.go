package api

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type gersub struct{}

func (gersub) String() string { return "gersub" }

func TestParams(t *testing.T) {
	Convey("Given a parameter set with an absent entry", t, func() {
		params := Params{
			Required("id", uint64(5)),
			Optional("episode", mo.None[uint64]()),
			Required("language", gersub{}),
		}

		Convey("absent entries should be left out in order", func() {
			So(params.Encode(true), ShouldEqual, "id=5&language=gersub")
			So(params.Present(), ShouldResemble, []string{"id", "language"})
		})

		Convey("an empty set should encode to nothing", func() {
			So(Params{}.Encode(true), ShouldBeEmpty)
			So(Params{Optional("p", mo.None[int]())}.Encode(false), ShouldBeEmpty)
		})
	})

	Convey("Given a value with reserved characters", t, func() {
		params := Params{Required("name", "a&b=c")}

		Convey("it should be escaped by default", func() {
			So(params.Encode(true), ShouldEqual, "name=a%26b%3Dc")
		})

		Convey("it should be written verbatim in raw mode", func() {
			So(params.Encode(false), ShouldEqual, "name=a&b=c")
		})
	})

	Convey("Render should produce wire strings", t, func() {
		So(Render(true), ShouldEqual, "true")
		So(Render(int8(-1)), ShouldEqual, "-1")
		So(Render(uint64(18446744073709551615)), ShouldEqual, "18446744073709551615")
		So(Render(1.5), ShouldEqual, "1.5")
		So(Render([]string{"1", "2"}), ShouldEqual, "1,2")
		So(Render(gersub{}), ShouldEqual, "gersub")
	})
}

func TestClassify(t *testing.T) {
	Convey("Given an envelope error flag", t, func() {
		Convey("a zero flag should be a success", func() {
			So(Classify(0, mo.Some(3007), "ignored"), ShouldBeNil)
		})

		Convey("a known code should carry its description", func() {
			err := Classify(1, mo.Some(CodeInfoInvalidID), "Ungültige ID")
			So(err, ShouldNotBeNil)
			So(IsAPIError(err, 3007), ShouldBeTrue)

			apiErr := err.(*APIError)
			So(apiErr.Message, ShouldEqual, "Ungültige ID")
			So(apiErr.Description, ShouldEqual, "Info: Ungültige ID.")
		})

		Convey("code 1000 should be the missing version", func() {
			err := Classify(1, mo.Some(1000), "")
			So(err.(*APIError).Description, ShouldEqual, "API-Version existiert nicht.")
		})

		Convey("an unknown code should be described as such", func() {
			err := Classify(1, mo.Some(9999), "huh")
			So(err.(*APIError).Description, ShouldEqual, UnknownCode)
		})

		Convey("a missing code should classify as code 0", func() {
			err := Classify(1, mo.None[int](), "fail")
			So(IsAPIError(err, 0), ShouldBeTrue)
			So(err.(*APIError).Description, ShouldEqual, UnknownCode)
		})
	})

	Convey("Require should reject a missing payload", t, func() {
		_, err := Require[int](nil)
		So(err, ShouldEqual, ErrEmptyData)

		v := 4
		got, err := Require(&v)
		So(err, ShouldBeNil)
		So(got, ShouldEqual, 4)
	})

	Convey("Codes should be sorted and described", t, func() {
		codes := Codes()
		So(codes[0], ShouldEqual, CodeVersionMissing)
		So(codes[len(codes)-1], ShouldEqual, CodeListBadID)
		for _, c := range codes {
			So(Describe(c), ShouldNotEqual, UnknownCode)
		}
	})
}

type keyed struct {
	ID uint64 `json:"id"`
}

func (keyed) RequiredKeys() []string {
	return []string{"id"}
}

func TestDecode(t *testing.T) {
	Convey("Given envelope bodies", t, func() {
		Convey("a payload should decode with its code", func() {
			envelope, err := Decode[[]int]([]byte(`{"error":0,"message":"Ok","data":[1,2]}`))
			So(err, ShouldBeNil)
			So(envelope.Code.IsAbsent(), ShouldBeTrue)
			So(*envelope.Data, ShouldResemble, []int{1, 2})
		})

		Convey("a missing payload should decode to nil", func() {
			envelope, err := Decode[[]int]([]byte(`{"error":0,"message":"Ok"}`))
			So(err, ShouldBeNil)
			So(envelope.Data, ShouldBeNil)
		})

		Convey("a failure should carry its code", func() {
			envelope, err := DecodeEmpty([]byte(`{"error":1,"message":"Fehler","code":3007,"data":{"x":1}}`))
			So(err, ShouldBeNil)
			So(envelope.Code.MustGet(), ShouldEqual, 3007)
		})

		Convey("invalid json should be a decode error", func() {
			_, err := Decode[int]([]byte(`<html>`))
			var decodeErr *DecodeError
			So(err, ShouldHaveSameTypeAs, decodeErr)
			So(err.(*DecodeError).Size, ShouldEqual, 6)
		})

		Convey("a mismatching payload should fail as a whole", func() {
			_, err := Decode[[]int]([]byte(`{"error":0,"message":"Ok","data":{"id":1}}`))
			So(err, ShouldNotBeNil)
		})

		Convey("an envelope without its flag and message should be a decode error", func() {
			for _, body := range []string{`{}`, `{"status":"ok"}`, `{"error":0}`, `null`} {
				_, err := Decode[int]([]byte(body))
				var decodeErr *DecodeError
				So(errors.As(err, &decodeErr), ShouldBeTrue)

				_, err = DecodeEmpty([]byte(body))
				So(errors.As(err, &decodeErr), ShouldBeTrue)
			}

			_, err := DecodeEmpty([]byte(`{"status":"ok"}`))
			So(errors.Is(err, ErrMissingField), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `"error"`)
		})

		Convey("a payload object without its required keys should be a decode error", func() {
			_, err := Decode[keyed]([]byte(`{"error":0,"message":"Ok","data":{}}`))
			So(errors.Is(err, ErrMissingField), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `"id"`)

			_, err = Decode[[]keyed]([]byte(`{"error":0,"message":"Ok","data":[{"id":1},{"name":"x"}]}`))
			So(errors.Is(err, ErrMissingField), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "element 1")

			_, err = Decode[keyed]([]byte(`{"error":0,"message":"Ok","data":[]}`))
			So(err, ShouldNotBeNil)
		})

		Convey("complete payloads and absent data should pass the key check", func() {
			envelope, err := Decode[[]keyed]([]byte(`{"error":0,"message":"Ok","data":[{"id":1},{"id":2}]}`))
			So(err, ShouldBeNil)
			So(*envelope.Data, ShouldResemble, []keyed{{ID: 1}, {ID: 2}})

			envelope2, err := Decode[keyed]([]byte(`{"error":1,"message":"Fehler","code":3007,"data":null}`))
			So(err, ShouldBeNil)
			So(envelope2.Data, ShouldBeNil)
		})
	})
}

func TestFields(t *testing.T) {
	Convey("Given list fields", t, func() {
		var l struct {
			Genre    SpaceList `json:"genre"`
			Language CommaList `json:"language"`
		}

		Convey("separated strings should be split", func() {
			err := json.Unmarshal([]byte(`{"genre":"Action  Comedy","language":"gersub, engsub"}`), &l)
			So(err, ShouldBeNil)
			So([]string(l.Genre), ShouldResemble, []string{"Action", "Comedy"})
			So([]string(l.Language), ShouldResemble, []string{"gersub", "engsub"})
		})

		Convey("arrays and null should be accepted", func() {
			err := json.Unmarshal([]byte(`{"genre":["Drama"],"language":null}`), &l)
			So(err, ShouldBeNil)
			So([]string(l.Genre), ShouldResemble, []string{"Drama"})
			So(l.Language, ShouldBeNil)
		})

		Convey("an empty string should be an empty list", func() {
			So(json.Unmarshal([]byte(`{"genre":""}`), &l), ShouldBeNil)
			So(l.Genre, ShouldBeEmpty)
		})
	})
}
