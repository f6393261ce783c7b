package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/Ceeox/proxer-go/color"
	"github.com/Ceeox/proxer-go/style"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/tidwall/gjson"
)

const indentWidth = 2

var (
	keyStyle    = style.Fg(color.Purple)
	stringStyle = style.Fg(color.Yellow)
	numberStyle = style.Fg(color.Cyan)
	nullStyle   = style.Faint
)

func writePretty(options *Options, result gjson.Result) error {
	p := printer{out: options.Out, wrap: options.Wrap}
	p.value(result, 0, true)
	return p.err
}

type printer struct {
	out  io.Writer
	wrap int
	err  error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.out, format, args...)
}

func (p *printer) value(r gjson.Result, depth int, top bool) {
	switch {
	case r.IsArray():
		p.array(r, depth, top)
	case r.IsObject():
		p.object(r, depth)
	default:
		p.printf("%s%s\n", pad(depth), p.scalar(r, depth))
	}
}

func (p *printer) array(r gjson.Result, depth int, top bool) {
	items := r.Array()
	if len(items) == 0 {
		p.printf("%s%s\n", pad(depth), nullStyle("(empty)"))
		return
	}

	for i, item := range items {
		if item.IsObject() || item.IsArray() {
			if top && i > 0 {
				p.printf("\n")
			} else if !top {
				p.printf("%s-\n", pad(depth))
			}
			p.value(item, depth+1-boolInt(top), false)
			continue
		}
		p.printf("%s- %s\n", pad(depth), p.scalar(item, depth+1))
	}
}

func (p *printer) object(r gjson.Result, depth int) {
	r.ForEach(func(k, v gjson.Result) bool {
		name := keyStyle(k.String())

		if v.IsObject() || (v.IsArray() && len(v.Array()) > 0) {
			p.printf("%s%s:\n", pad(depth), name)
			p.value(v, depth+1, false)
			return p.err == nil
		}

		p.printf("%s%s: %s\n", pad(depth), name, p.scalar(v, depth+1))
		return p.err == nil
	})
}

func (p *printer) scalar(r gjson.Result, depth int) string {
	switch r.Type {
	case gjson.Null:
		return nullStyle("null")
	case gjson.Number:
		return numberStyle(r.Raw)
	case gjson.True, gjson.False:
		return numberStyle(r.Raw)
	case gjson.String:
		return styleLines(stringStyle, p.text(r.String(), depth))
	case gjson.JSON:
		if r.IsArray() {
			return nullStyle("[]")
		}
		return nullStyle("{}")
	default:
		return r.String()
	}
}

// text wraps long strings and indents their continuation lines below the key.
func (p *printer) text(s string, depth int) string {
	s = strings.TrimSpace(s)
	width := p.wrap - depth*indentWidth
	if p.wrap <= 0 || width <= 0 || len(s) <= width {
		return s
	}

	wrapped := wordwrap.String(s, width)
	first, rest, found := strings.Cut(wrapped, "\n")
	if !found {
		return first
	}

	return first + "\n" + indent.String(rest, uint(depth*indentWidth))
}

// styleLines styles every line on its own so lipgloss does not pad them to a common width.
func styleLines(f func(string) string, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = f(line)
	}
	return strings.Join(lines, "\n")
}

func pad(depth int) string {
	return strings.Repeat(" ", depth*indentWidth)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
