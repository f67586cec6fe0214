package sanitization

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

const redactedValue = "[REDACTED]"

const (
	emptyMaskedValue = "(empty)"
	maskedValue      = "***masked***"
)

// AllowedFields are field names that should bypass sanitization.
var AllowedFields = map[string]bool{
	"hosted_zone_id":  true,
	"record_name":     true,
	"record_type":     true,
	"logical_id":      true,
	"session_name":    true,
	"assume_role_arn": true,
}

// SanitizationType defines how to sanitize a field.
type SanitizationType int

const (
	FullyRedact SanitizationType = iota
	PartialMask
	StripQuery
)

// SensitiveFields defines fields that require explicit sanitization behavior.
//
// This list is keyed by lowercased field name.
var SensitiveFields = map[string]SanitizationType{
	"secret_access_key":     FullyRedact,
	"secretaccesskey":       FullyRedact,
	"aws_secret_access_key": FullyRedact,
	"session_token":         FullyRedact,
	"sessiontoken":          FullyRedact,
	"aws_session_token":     FullyRedact,
	"authorization":         FullyRedact,
	"password":              FullyRedact,
	"private_key":           FullyRedact,

	"access_key_id":     PartialMask,
	"accesskeyid":       PartialMask,
	"aws_access_key_id": PartialMask,
	"account":           PartialMask,
	"account_id":        PartialMask,

	// Custom resource responses go to a presigned S3 URL; its query string is a credential.
	"responseurl":  StripQuery,
	"response_url": StripQuery,
}

// SanitizeLogString removes control characters that could enable log forging.
func SanitizeLogString(value string) string {
	if value == "" {
		return value
	}
	value = strings.ReplaceAll(value, "\r", "")
	value = strings.ReplaceAll(value, "\n", "")
	return value
}

// SanitizeFieldValue sanitizes a field value based on its key name.
func SanitizeFieldValue(key string, value any) any {
	keyLower := strings.ToLower(strings.TrimSpace(key))
	if keyLower == "" {
		return sanitizeValue(value)
	}
	if AllowedFields[keyLower] {
		return sanitizeValue(value)
	}

	if typ, ok := SensitiveFields[keyLower]; ok {
		switch typ {
		case PartialMask:
			return maskRestrictedValue(value)
		case StripQuery:
			if s, ok := value.(string); ok {
				return SanitizeURL(s)
			}
			return redactedValue
		default:
			return redactedValue
		}
	}

	blockedSubstrings := []string{
		"secret",
		"token",
		"password",
		"credential",
		"signature",
	}
	for _, substr := range blockedSubstrings {
		if strings.Contains(keyLower, substr) {
			return redactedValue
		}
	}

	return sanitizeValue(value)
}

// SanitizeURL drops the query string and fragment, which carry presigned credentials.
func SanitizeURL(raw string) string {
	raw = SanitizeLogString(strings.TrimSpace(raw))
	if raw == "" {
		return emptyMaskedValue
	}
	u, err := url.Parse(raw)
	if err != nil {
		return redactedValue
	}
	if u.RawQuery == "" && u.Fragment == "" {
		return u.String()
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String() + "?" + redactedValue
}

// MaskFirstLast keeps the first prefixLen and last suffixLen characters and masks the middle.
func MaskFirstLast(value string, prefixLen, suffixLen int) string {
	if value == "" {
		return emptyMaskedValue
	}
	if prefixLen < 0 || suffixLen < 0 {
		return maskedValue
	}
	if len(value) <= prefixLen+suffixLen {
		return maskedValue
	}
	return value[:prefixLen] + "***" + value[len(value)-suffixLen:]
}

// MaskFirstLast4 keeps the first and last 4 characters and masks the middle.
func MaskFirstLast4(value string) string {
	return MaskFirstLast(value, 4, 4)
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case nil:
		return nil
	case string:
		return SanitizeLogString(typed)
	case []byte:
		return SanitizeLogString(string(typed))
	case bool, int, int32, int64, float32, float64:
		return typed
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = SanitizeFieldValue(k, v)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i := range typed {
			out[i] = sanitizeValue(typed[i])
		}
		return out
	case []string:
		out := make([]any, len(typed))
		for i := range typed {
			out[i] = SanitizeLogString(typed[i])
		}
		return out
	case error:
		return SanitizeLogString(typed.Error())
	default:
		return SanitizeLogString(fmt.Sprintf("%v", typed))
	}
}

func maskRestrictedValue(value any) string {
	switch v := value.(type) {
	case string:
		return maskRestrictedString(v)
	case []byte:
		return maskRestrictedString(string(v))
	default:
		return redactedValue
	}
}

// maskRestrictedString keeps the last four characters of account ids and access keys.
func maskRestrictedString(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return redactedValue
	}

	cleaned := stripNonDigits(value)
	if len(cleaned) == len(value) && len(cleaned) > 4 {
		return strings.Repeat("*", len(cleaned)-4) + cleaned[len(cleaned)-4:]
	}
	if len(value) > 4 {
		return "..." + value[len(value)-4:]
	}
	return redactedValue
}

func stripNonDigits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
