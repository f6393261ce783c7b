// Package inline renders command results for the terminal or for scripts.
package inline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
)

// Run renders value according to options. value may be any payload type or raw JSON bytes.
func Run(value any, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	data, err := toJSON(value)
	if err != nil {
		return err
	}

	if filter, ok := options.Filter.Get(); ok {
		if data, err = applyFilter(data, filter); err != nil {
			return err
		}
	}

	if pick, ok := options.Pick.Get(); ok {
		if data, err = applyPicker(data, pick); err != nil {
			return err
		}
	}

	result := gjson.ParseBytes(data)
	if path, ok := options.Path.Get(); ok {
		result = result.Get(path)
		if !result.Exists() {
			return fmt.Errorf("path %q matched nothing", path)
		}
		data = []byte(result.Raw)
	}

	switch options.Format {
	case FormatJSON:
		return writeJSON(options, data)
	case FormatYAML:
		return writeYAML(options, data)
	case FormatPretty, "":
		return writePretty(options, result)
	default:
		return fmt.Errorf("unknown output format %q", options.Format)
	}
}

func toJSON(value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		if !json.Valid(v) {
			return nil, fmt.Errorf("response is not valid JSON")
		}
		return v, nil
	case json.RawMessage:
		return toJSON([]byte(v))
	default:
		return json.Marshal(value)
	}
}

// applyFilter keeps the elements of a JSON array for which filter evaluates to true.
func applyFilter(data []byte, filter string) ([]byte, error) {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("filter needs a list result: %w", err)
	}

	program, err := expr.Compile(filter, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile filter: %w", err)
	}

	kept := make([]any, 0, len(items))
	for _, item := range items {
		env := map[string]any{"it": item}
		if fields, ok := item.(map[string]any); ok {
			for k, v := range fields {
				env[k] = v
			}
		}

		out, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("run filter: %w", err)
		}

		if out.(bool) {
			kept = append(kept, item)
		}
	}

	return json.Marshal(kept)
}

func applyPicker(data []byte, pick Picker) ([]byte, error) {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("picker needs a list result: %w", err)
	}

	item, ok := pick(items).Get()
	if !ok {
		return nil, fmt.Errorf("picker selected nothing out of %d items", len(items))
	}

	return json.Marshal(item)
}

func writeJSON(options *Options, data []byte) error {
	var b bytes.Buffer
	if err := json.Indent(&b, data, "", "  "); err != nil {
		return err
	}
	b.WriteByte('\n')

	_, err := options.Out.Write(b.Bytes())
	return err
}

func writeYAML(options *Options, data []byte) error {
	out, err := yaml.JSONToYAML(data)
	if err != nil {
		return err
	}

	_, err = options.Out.Write(out)
	return err
}
