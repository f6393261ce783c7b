package api

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/samber/mo"
	"github.com/tidwall/gjson"
)

// Envelope is the uniform wrapper of every API response.
// Error is 1 on failure; Data is nil when the payload is absent.
type Envelope[T any] struct {
	Error   int            `json:"error"`
	Message string         `json:"message"`
	Code    mo.Option[int] `json:"code"`
	Data    *T             `json:"data"`
}

// EmptyEnvelope is the payload-less variant returned by mutation endpoints.
type EmptyEnvelope struct {
	Error   int            `json:"error"`
	Message string         `json:"message"`
	Code    mo.Option[int] `json:"code"`
}

// Keyed is implemented by payloads whose objects must carry certain members.
// The check runs on every object of that type in the data member, including list elements.
type Keyed interface {
	RequiredKeys() []string
}

var (
	envelopeKeys = []string{"error", "message"}
	keyedType    = reflect.TypeOf((*Keyed)(nil)).Elem()
)

// Decode parses raw into an Envelope carrying a T payload.
// It fails as a unit: either the whole body matches or a DecodeError is returned.
func Decode[T any](raw []byte) (*Envelope[T], error) {
	var envelope Envelope[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &DecodeError{Size: len(raw), Err: err}
	}

	body := gjson.ParseBytes(raw)
	if err := requireKeys(body, envelopeKeys); err != nil {
		return nil, &DecodeError{Size: len(raw), Err: err}
	}

	if data := body.Get("data"); data.Exists() && data.Type != gjson.Null {
		if err := requirePayload(reflect.TypeOf((*T)(nil)).Elem(), data); err != nil {
			return nil, &DecodeError{Size: len(raw), Err: fmt.Errorf("data: %w", err)}
		}
	}

	return &envelope, nil
}

// DecodeEmpty parses raw into an EmptyEnvelope. A data member, if any, is ignored.
func DecodeEmpty(raw []byte) (*EmptyEnvelope, error) {
	var envelope EmptyEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &DecodeError{Size: len(raw), Err: err}
	}

	if err := requireKeys(gjson.ParseBytes(raw), envelopeKeys); err != nil {
		return nil, &DecodeError{Size: len(raw), Err: err}
	}

	return &envelope, nil
}

func requireKeys(object gjson.Result, keys []string) error {
	if !object.IsObject() {
		return fmt.Errorf("expected an object, got %s", object.Type)
	}

	for _, key := range keys {
		if !object.Get(key).Exists() {
			return fmt.Errorf("%w %q", ErrMissingField, key)
		}
	}

	return nil
}

func requirePayload(t reflect.Type, data gjson.Result) error {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Implements(keyedType) {
		return requireKeys(data, reflect.Zero(t).Interface().(Keyed).RequiredKeys())
	}

	if t.Kind() != reflect.Slice || !data.IsArray() {
		return nil
	}

	var (
		err   error
		index int
	)
	data.ForEach(func(_, element gjson.Result) bool {
		if e := requirePayload(t.Elem(), element); e != nil {
			err = fmt.Errorf("element %d: %w", index, e)
		}
		index++
		return err == nil
	})

	return err
}
