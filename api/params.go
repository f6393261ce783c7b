package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Param is a single form field. An absent Value is left out of the body.
type Param struct {
	Name  string
	Value mo.Option[string]
}

// Params is an ordered parameter set; the slice order is the encoded order.
type Params []Param

// Required creates a Param that is always present.
func Required(name string, v any) Param {
	return Param{Name: name, Value: mo.Some(Render(v))}
}

// Optional creates a Param that is present only when v is.
func Optional[T any](name string, v mo.Option[T]) Param {
	value, ok := v.Get()
	if !ok {
		return Param{Name: name, Value: mo.None[string]()}
	}
	return Param{Name: name, Value: mo.Some(Render(value))}
}

// Render converts a parameter value into its wire string.
func Render(v any) string {
	switch value := v.(type) {
	case fmt.Stringer:
		return value.String()
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", value)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", value)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case []string:
		return strings.Join(value, ",")
	default:
		return fmt.Sprint(value)
	}
}

// Encode joins the present entries as an application/x-www-form-urlencoded body.
// With escape unset names and values are written verbatim.
func (p Params) Encode(escape bool) string {
	var b strings.Builder

	for _, param := range p {
		value, ok := param.Value.Get()
		if !ok {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte('&')
		}

		if escape {
			b.WriteString(url.QueryEscape(param.Name))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(value))
		} else {
			b.WriteString(param.Name)
			b.WriteByte('=')
			b.WriteString(value)
		}
	}

	return b.String()
}

// Present returns the names of the entries that will be encoded.
func (p Params) Present() []string {
	names := make([]string, 0, len(p))
	for _, param := range p {
		if param.Value.IsPresent() {
			names = append(names, param.Name)
		}
	}
	return names
}
