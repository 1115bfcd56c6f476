package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/flixstream/flixstream/color"
	"github.com/flixstream/flixstream/constant"
	"github.com/flixstream/flixstream/key"
	"github.com/flixstream/flixstream/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Flixstream + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case float64:
		return "float"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Parse converts command line values into the type of the field's default.
// Lists take every value, everything else takes exactly one.
func (f *Field) Parse(values []string) (any, error) {
	if _, ok := f.Value.([]string); ok {
		return values, nil
	}

	if len(values) != 1 {
		return nil, fmt.Errorf("%s takes a single value, got %d", f.Key, len(values))
	}

	raw := strings.TrimSpace(values[0])

	var (
		parsed any
		err    error
	)

	switch f.Value.(type) {
	case string:
		parsed = raw
	case int:
		parsed, err = strconv.Atoi(raw)
	case float64:
		parsed, err = strconv.ParseFloat(raw, 64)
	case bool:
		parsed, err = strconv.ParseBool(raw)
	default:
		return nil, fmt.Errorf("%s has an unsupported type %T", f.Key, f.Value)
	}

	if err != nil {
		return nil, fmt.Errorf("invalid %s value for %s: %q", f.typeName(), f.Key, raw)
	}
	return parsed, nil
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
	}

	register(key.DefaultSource, "rule34", "Source used when --source is not given.\nType \"flixstream sources list\" to show available sources")
	register(key.YouJizzEndpoint, constant.YouJizzEndpoint, "Endpoint of the youjizz worker")
	register(key.XAnimuEndpoint, constant.XAnimuEndpoint, "Endpoint of the xanimu worker")
	register(key.Rule34Endpoint, constant.Rule34Endpoint, "Endpoint of the rule34 worker")
	register(key.HamsterEndpoint, constant.HamsterEndpoint, "Endpoint of the hamster worker")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.SearchRememberQueries, true, "Remember search queries to suggest them later")
	register(key.NetworkTimeout, 60, "HTTP request timeout in seconds")
	register(key.NetworkRequestsPerSecond, 0.0, "Maximum requests per second sent to the workers.\n0 disables the limit")
	register(key.NetworkTLSFingerprint, false, "Present a Chrome TLS fingerprint to the workers")
	register(key.Player, "mpv", "Media player to use")
	register(key.PlayerRemote, true, "Show the terminal remote control while playing")
	register(key.PlayerPreferredQuality, "", "Quality label to play when available (e.g. 720p).\nEmpty means highest available")
	register(key.HistorySaveOnPlay, true, "Save history on play")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, false, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
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
{{ blue "Type:" }}    {{ typename .Value }}`))
