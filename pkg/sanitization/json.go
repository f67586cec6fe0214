package sanitization

import (
	"encoding/json"
	"fmt"
)

// SanitizeJSON recursively sanitizes JSON data for logging.
//
// Known sensitive fields are masked or redacted; structure is preserved.
func SanitizeJSON(jsonBytes []byte) string {
	if len(jsonBytes) == 0 {
		return "(empty)"
	}

	var data any
	if err := json.Unmarshal(jsonBytes, &data); err != nil {
		return fmt.Sprintf("(malformed JSON: %s)", err.Error())
	}

	sanitized := sanitizeJSONValue(data)
	out, err := json.MarshalIndent(sanitized, "", "  ")
	if err != nil {
		return "(error marshaling sanitized JSON)"
	}
	return string(out)
}

func sanitizeJSONValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return sanitizeJSONObject(v)
	case []any:
		return sanitizeJSONArray(v)
	default:
		return sanitizeValue(v)
	}
}

func sanitizeJSONObject(obj map[string]any) map[string]any {
	result := make(map[string]any, len(obj))
	for key, value := range obj {
		// ResourceProperties may arrive as a JSON string when events are relayed.
		if key == "ResourceProperties" || key == "OldResourceProperties" {
			if raw, ok := value.(string); ok {
				var props any
				if err := json.Unmarshal([]byte(raw), &props); err == nil {
					if encoded, err := json.Marshal(sanitizeJSONValue(props)); err == nil {
						result[key] = string(encoded)
						continue
					}
				}
			}
		}

		sanitizedValue := SanitizeFieldValue(key, value)
		switch sv := sanitizedValue.(type) {
		case map[string]any:
			result[key] = sanitizeJSONObject(sv)
		case []any:
			result[key] = sanitizeJSONArray(sv)
		default:
			result[key] = sanitizedValue
		}
	}
	return result
}

func sanitizeJSONArray(arr []any) []any {
	result := make([]any, len(arr))
	for i := range arr {
		result[i] = sanitizeJSONValue(arr[i])
	}
	return result
}
