package config

// MergeMaps deep-merges src into dest. Nested maps merge key by key;
// scalars and lists from later layers replace earlier values wholesale.
// Option lists are override points, not accumulators, so unlike
// file-pattern merging there is no slice appending here.
func MergeMaps(dest, src map[string]interface{}) {
	for key, srcVal := range src {
		destVal, destOk := dest[key]
		if !destOk {
			dest[key] = cloneValue(srcVal)
			continue
		}

		if srcMap, srcOk := srcVal.(map[string]interface{}); srcOk {
			if destMap, destOk := destVal.(map[string]interface{}); destOk {
				MergeMaps(destMap, srcMap)
				continue
			}
		}

		dest[key] = cloneValue(srcVal)
	}
}

// CloneMap returns a deep copy of an option tree. Layers are cloned
// before merging so callers never see their input maps mutated and the
// committed store never aliases a caller's map.
func CloneMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return CloneMap(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}
