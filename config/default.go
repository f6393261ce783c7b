package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/color"
	"github.com/Ceeox/proxer-go/constant"
	"github.com/Ceeox/proxer-go/key"
	"github.com/Ceeox/proxer-go/network"
	"github.com/Ceeox/proxer-go/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a registered setting. Values lists the accepted choices, if the setting has any.
type Field struct {
	Key         string
	Value       any
	Description string
	Values      []string
}

// Pretty renders the field for "proxer config info".
func (f Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable bound to the field.
func (f Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Proxer + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Values      []string `json:"values,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Values:      f.Values,
	})
}

func (f Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func register(k string, v any, desc string, values ...string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}

	Default[k] = Field{Key: k, Value: v, Description: desc, Values: values}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.APIKey, "", "API key sent with every request.\nLeave empty to use the key stored with \"proxer config key set\"")
	register(key.APIBaseURL, api.DefaultBaseURL, "Base URL of the API")
	register(key.APIVersion, api.DefaultVersion, "API version segment of every request path")
	register(key.APIRawParams, false, "Send form values without percent-encoding.\nOnly useful to replay recorded requests")
	register(key.NewsURL, api.DefaultNewsURL, "Location of the legacy news feed")
	register(key.NetworkTransport, network.TransportStd, "HTTP transport to use", network.Transports()...)
	register(key.OutputFormat, "pretty", "Output format of command results", "pretty", "json", "yaml")
	register(key.OutputWrap, 80, "Wrap long texts in pretty output at this width.\n0 uses the terminal width")
	register(key.SearchHistory, true, "Remember search queries and suggest them for completion")
	register(key.OpenBrowser, "", "Application that opens proxer.me pages.\nLeave empty to use the system default")
	register(key.IconsVariant, "plain", "Icons variant", "emoji", "kaomoji", "plain", "squares", "nerd")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)", "panic", "fatal", "error", "warn", "info", "debug", "trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.LogsMaxSize, 10, "Size in megabytes at which the log file is rotated")
	register(key.LogsMaxBackups, 3, "Number of rotated log files to keep")
	register(key.LogsMaxAge, 28, "Days to keep rotated log files")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

// ErrInvalidValue is returned by Validate for a value outside of a field's choices.
var ErrInvalidValue = errors.New("invalid value")

// Validate checks value against the choices of the field k, if it has any.
func Validate(k string, value any) error {
	field, ok := Default[k]
	if !ok || len(field.Values) == 0 {
		return nil
	}

	s := fmt.Sprint(value)
	if lo.Contains(field.Values, s) {
		return nil
	}

	return fmt.Errorf("%w %q for %s, expected one of: %s", ErrInvalidValue, s, k, strings.Join(field.Values, ", "))
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"join":     strings.Join,
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}{{ if .Values }}
{{ blue "Choices:" }} {{ join .Values ", " }}{{ end }}`))
