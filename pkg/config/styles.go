package config

import (
	"fmt"
	"strings"
)

// stylePresets maps named styles to option overlays. A preset is just
// another merge layer, applied after per-call options.
var stylePresets = map[string]map[string]interface{}{
	"community": {
		"indent": map[string]interface{}{"width": 1},
	},
	"compact": {
		"width": 120,
	},
	"narrow": {
		"width": 60,
	},
	"color": {
		"color": true,
	},
	"no-color": {
		"color": false,
	},
	"keep-tabs": {
		"tab": map[string]interface{}{"expand": false},
	},
}

// StyleNames returns the available preset names, unsorted.
func StyleNames() []string {
	names := make([]string, 0, len(stylePresets))
	for name := range stylePresets {
		names = append(names, name)
	}
	return names
}

// ApplyStyles overlays the presets requested by the merged tree's
// "style" value onto merged, in listed order. Unknown preset names are
// collected as errors; known ones still apply, so one typo does not
// discard the rest of the request. widthSet reports whether an applied
// preset supplied a width; a preset width is an explicit layer above
// the built-in defaults and gates the auto-width probe.
func ApplyStyles(merged map[string]interface{}) (widthSet bool, errs []string) {
	raw, ok := merged["style"]
	if !ok {
		return false, nil
	}

	var names []string
	switch v := raw.(type) {
	case string:
		if v == "" {
			return false, nil
		}
		for _, n := range strings.Split(v, ",") {
			names = append(names, strings.TrimSpace(n))
		}
	case []interface{}:
		for _, e := range v {
			if s, ok := e.(string); ok {
				names = append(names, s)
			}
		}
	case []string:
		names = v
	default:
		return false, []string{fmt.Sprintf("style wants a name or list of names, got %v", raw)}
	}

	for _, name := range names {
		preset, ok := stylePresets[name]
		if !ok {
			errs = append(errs, fmt.Sprintf("unknown style %q", name))
			continue
		}
		if _, ok := preset["width"]; ok {
			widthSet = true
		}
		MergeMaps(merged, preset)
	}
	return widthSet, errs
}
