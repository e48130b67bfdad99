// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

// serialize turns boolean values into "true" / "false" in place.
func serialize(values map[string]any) {
	for key, value := range values {
		if b, ok := value.(bool); ok {
			values[key] = boolString(b)
		}
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// truthy follows the host's loose truthiness: nil, false, zero numbers,
// "" and "0" are false, as are empty slices and maps.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0"
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}
