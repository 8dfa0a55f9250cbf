package config

import (
	"fmt"
	"sort"
	"strings"
)

// Explain renders the diagnostic snapshot for a special flag. The
// output is a human-readable listing, not an error: special flags
// bypass normal resolution entirely.
func (s *Store) Explain(special Special) string {
	switch special {
	case SpecialHelp:
		return s.explainHelp()
	case SpecialExplainAll:
		return s.explain(true, true)
	case SpecialExplainJustified:
		return s.explain(false, true)
	default:
		return s.explain(false, false)
	}
}

// explain lists the currently committed options as dotted paths. With
// all set, every recognized option appears even when it still holds
// its default; with justified set, values are aligned in a column.
func (s *Store) explain(all, justified bool) string {
	flat := flatten(s.Snapshot())

	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	if all {
		for _, p := range OptionPaths() {
			if _, ok := flat[p]; !ok {
				paths = append(paths, p)
			}
		}
	}
	sort.Strings(paths)

	keyWidth := 0
	if justified {
		for _, p := range paths {
			if len(p) > keyWidth {
				keyWidth = len(p)
			}
		}
	}

	var sb strings.Builder
	for _, p := range paths {
		val, ok := flat[p]
		if !ok {
			val = "<unset>"
		}
		if justified {
			fmt.Fprintf(&sb, "%-*s  %v\n", keyWidth, p, val)
		} else {
			fmt.Fprintf(&sb, "%s = %v\n", p, val)
		}
	}
	return sb.String()
}

func (s *Store) explainHelp() string {
	var sb strings.Builder
	sb.WriteString("Recognized options:\n")
	for _, p := range OptionPaths() {
		fmt.Fprintf(&sb, "  %-22s %s\n", p, OptionDoc(p))
	}
	sb.WriteString("\nStyle presets: ")
	names := StyleNames()
	sort.Strings(names)
	sb.WriteString(strings.Join(names, ", "))
	sb.WriteString("\n")
	return sb.String()
}

// flatten converts a nested option tree to dotted-path leaves.
func flatten(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for k, v := range m {
			path := k
			if prefix != "" {
				path = prefix + "." + k
			}
			if sub, ok := v.(map[string]interface{}); ok {
				walk(path, sub)
				continue
			}
			out[path] = v
		}
	}
	walk("", m)
	return out
}
