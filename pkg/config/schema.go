package config

import (
	"fmt"
	"sort"
	"strings"
)

// Schema is the typed view of a fully merged option tree. The nested
// map stays authoritative for merging; this struct is what the rest of
// the pipeline reads.
type Schema struct {
	Width     int    `koanf:"width"`
	AutoWidth bool   `koanf:"auto-width"`
	Color     bool   `koanf:"color"`
	Style     string `koanf:"style"`

	Tab struct {
		Expand bool `koanf:"expand"`
		Width  int  `koanf:"width"`
	} `koanf:"tab"`

	Indent struct {
		Width int `koanf:"width"`
	} `koanf:"indent"`

	Input struct {
		Zipper      bool `koanf:"zipper"`
		ParseString bool `koanf:"parse-string"`
	} `koanf:"input"`

	ColorMap map[string]string `koanf:"color-map"`
}

// optionDocs maps every recognized option path to its help text. The
// key set doubles as the validation schema.
var optionDocs = map[string]string{
	"width":                "target line width in columns",
	"auto-width":           "detect the terminal width when no explicit width is given",
	"color":                "emit ANSI-colorized output",
	"style":                "named style preset(s) to overlay, comma separated",
	"tab.expand":           "expand tabs to spaces before parsing",
	"tab.width":            "tab stop width used when expanding",
	"indent.width":         "indentation per nesting level",
	"input.zipper":         "require the input to already be a structural document",
	"input.parse-string":   "require the input to be source text",
	"color-map.symbol":     "color for symbols",
	"color-map.keyword":    "color for keywords",
	"color-map.string":     "color for strings",
	"color-map.number":     "color for numbers",
	"color-map.comment":    "color for comments",
	"color-map.paren":      "color for parentheses",
	"color-map.bracket":    "color for square brackets",
	"color-map.brace":      "color for curly braces",
	"color-map.quote":      "color for reader-macro markers",
	"color-map.whitespace": "color for whitespace runs",
}

// colorNames lists the color tags the ANSI encoder understands.
var colorNames = map[string]bool{
	"none": true, "black": true, "red": true, "green": true,
	"yellow": true, "blue": true, "magenta": true, "purple": true,
	"cyan": true, "white": true,
}

// KnownOption reports whether path names a recognized option.
func KnownOption(path string) bool {
	_, ok := optionDocs[path]
	return ok
}

// OptionPaths returns every recognized option path, sorted.
func OptionPaths() []string {
	paths := make([]string, 0, len(optionDocs))
	for p := range optionDocs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// OptionDoc returns the help text for a recognized option path.
func OptionDoc(path string) string { return optionDocs[path] }

// Validate checks a fully merged option tree against the recognized
// option schema and returns every problem found, in stable order.
func Validate(opts map[string]interface{}) []string {
	var errs []string
	walkOptions(opts, "", func(path string, val interface{}) {
		if !KnownOption(path) {
			errs = append(errs, fmt.Sprintf("unknown option %q", path))
			return
		}
		if msg := checkOptionValue(path, val); msg != "" {
			errs = append(errs, msg)
		}
	})
	sort.Strings(errs)
	return errs
}

// walkOptions visits every leaf of the option tree with its dotted
// path. Subtrees whose root is itself unknown are reported leaf by
// leaf, which gives the caller exact paths to fix.
func walkOptions(m map[string]interface{}, prefix string, visit func(path string, val interface{})) {
	for key, val := range m {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if sub, ok := val.(map[string]interface{}); ok {
			walkOptions(sub, path, visit)
			continue
		}
		visit(path, val)
	}
}

func checkOptionValue(path string, val interface{}) string {
	switch path {
	case "width", "tab.width":
		n, ok := asInt(val)
		if !ok || n <= 0 {
			return fmt.Sprintf("option %q wants a positive integer, got %v", path, val)
		}
	case "indent.width":
		n, ok := asInt(val)
		if !ok || n < 0 {
			return fmt.Sprintf("option %q wants a non-negative integer, got %v", path, val)
		}
	case "auto-width", "color", "tab.expand", "input.zipper", "input.parse-string":
		if _, ok := val.(bool); !ok {
			return fmt.Sprintf("option %q wants a boolean, got %v", path, val)
		}
	case "style":
		if !validStyleValue(val) {
			return fmt.Sprintf("option %q wants a style name or list of names, got %v", path, val)
		}
	default:
		if strings.HasPrefix(path, "color-map.") {
			name, ok := val.(string)
			if !ok || !colorNames[name] {
				return fmt.Sprintf("option %q wants a color name, got %v", path, val)
			}
		}
	}
	return ""
}

func validStyleValue(val interface{}) bool {
	switch v := val.(type) {
	case string:
		return true
	case []interface{}:
		for _, e := range v {
			if _, ok := e.(string); !ok {
				return false
			}
		}
		return true
	case []string:
		return true
	default:
		return false
	}
}

func asInt(val interface{}) (int, bool) {
	switch n := val.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}
