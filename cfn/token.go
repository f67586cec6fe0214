package cfn

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Tokens are intrinsic values smuggled through string-typed properties.
//
// A token is rendered as `${Token[Kind:payload]}` and resolved back into an
// intrinsic function when the template is synthesized. List-valued attributes use
// a single-element list whose only element is `#{Token[Kind:payload]}`.
const (
	tokenRef    = "Ref"
	tokenGetAtt = "GetAtt"
	tokenRaw    = "Raw"

	// Logical id payloads start with this prefix; anything else is a construct path.
	logicalIDPrefix = "@"
)

// Pseudo parameters.
const (
	PseudoAccountID = "AWS::AccountId"
	PseudoPartition = "AWS::Partition"
	PseudoRegion    = "AWS::Region"
	PseudoStackName = "AWS::StackName"
	PseudoURLSuffix = "AWS::URLSuffix"
	PseudoNoValue   = "AWS::NoValue"
)

var (
	stringTokenPattern = regexp.MustCompile(`\$\{Token\[(Ref|GetAtt|Raw):([^\]|]+)(?:\|([A-Za-z0-9.]+))?\]\}`)
	listTokenPattern   = regexp.MustCompile(`^#\{Token\[(Ref|GetAtt|Raw):([^\]|]+)(?:\|([A-Za-z0-9.]+))?\]\}$`)
)

// RefPseudo returns a token for a pseudo parameter such as AWS::Region.
func RefPseudo(name string) string {
	return fmt.Sprintf("${Token[%s:%s]}", tokenRef, name)
}

// RefLogicalID returns a Ref token to a resource by logical id.
func RefLogicalID(logicalID string) string {
	return fmt.Sprintf("${Token[%s:%s%s]}", tokenRef, logicalIDPrefix, logicalID)
}

// GetAttLogicalID returns a Fn::GetAtt token to a resource by logical id.
func GetAttLogicalID(logicalID, attr string) string {
	return fmt.Sprintf("${Token[%s:%s%s|%s]}", tokenGetAtt, logicalIDPrefix, logicalID, attr)
}

// RawToken wraps an arbitrary intrinsic (for example Fn::Sub) as a string token.
func RawToken(intrinsic any) string {
	data, err := json.Marshal(intrinsic)
	if err != nil {
		panic(Errorf(CodeValidationFailed, "cannot encode intrinsic: %v", err))
	}
	return fmt.Sprintf("${Token[%s:%s]}", tokenRaw, base64.RawURLEncoding.EncodeToString(data))
}

func refToken(path string) string {
	return fmt.Sprintf("${Token[%s:%s]}", tokenRef, path)
}

func getAttToken(path, attr string) string {
	return fmt.Sprintf("${Token[%s:%s|%s]}", tokenGetAtt, path, attr)
}

func listGetAttToken(path, attr string) []*string {
	s := fmt.Sprintf("#{Token[%s:%s|%s]}", tokenGetAtt, path, attr)
	return []*string{&s}
}

// IsUnresolved reports whether s carries a token.
func IsUnresolved(s string) bool {
	return stringTokenPattern.MatchString(s) || listTokenPattern.MatchString(s)
}

// IsUnresolvedList reports whether list is an encoded list token.
func IsUnresolvedList(list []*string) bool {
	return len(list) == 1 && list[0] != nil && listTokenPattern.MatchString(*list[0])
}

type tokenResolver func(kind, target, attr string) (any, error)

// resolveValue replaces tokens inside a rendered property tree.
func resolveValue(v any, resolve tokenResolver) (any, error) {
	switch val := v.(type) {
	case string:
		return resolveString(val, resolve)
	case []any:
		if len(val) == 1 {
			if s, ok := val[0].(string); ok {
				if m := listTokenPattern.FindStringSubmatch(s); m != nil {
					return resolve(m[1], m[2], m[3])
				}
			}
		}
		out := make([]any, 0, len(val))
		for _, item := range val {
			r, err := resolveValue(item, resolve)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			r, err := resolveValue(item, resolve)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	default:
		return v, nil
	}
}

func resolveString(s string, resolve tokenResolver) (any, error) {
	matches := stringTokenPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	var parts []any
	last := 0
	for _, m := range matches {
		if m[0] > last {
			parts = append(parts, s[last:m[0]])
		}
		attr := ""
		if m[6] >= 0 {
			attr = s[m[6]:m[7]]
		}
		r, err := resolve(s[m[2]:m[3]], s[m[4]:m[5]], attr)
		if err != nil {
			return nil, err
		}
		parts = append(parts, r)
		last = m[1]
	}
	if last < len(s) {
		parts = append(parts, s[last:])
	}

	if len(parts) == 1 {
		return parts[0], nil
	}
	return map[string]any{"Fn::Join": []any{"", parts}}, nil
}

func decodeRawToken(payload string) (any, error) {
	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("cfn: decode raw token: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("cfn: decode raw token: %w", err)
	}
	return out, nil
}

// tokenize is the inverse of resolution, used when reading templates back in.
//
// Ref and Fn::GetAtt become logical-id tokens; other intrinsics become raw tokens.
func tokenize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		if len(val) == 1 {
			for k, inner := range val {
				switch {
				case k == "Ref":
					if target, ok := inner.(string); ok {
						if strings.HasPrefix(target, "AWS::") {
							return RefPseudo(target)
						}
						return RefLogicalID(target)
					}
				case k == "Fn::GetAtt":
					if logicalID, attr, ok := splitGetAtt(inner); ok {
						if listAttributes[attr] {
							return []any{fmt.Sprintf("#{Token[%s:%s%s|%s]}", tokenGetAtt, logicalIDPrefix, logicalID, attr)}
						}
						return GetAttLogicalID(logicalID, attr)
					}
				case listIntrinsics[k]:
					return []any{"#" + strings.TrimPrefix(RawToken(val), "$")}
				case strings.HasPrefix(k, "Fn::") || k == "Condition":
					return RawToken(val)
				}
			}
		}
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = tokenize(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = tokenize(inner)
		}
		return out
	default:
		return v
	}
}

// Attributes and intrinsics known to produce lists.
var (
	listAttributes = map[string]bool{"NameServers": true, "DnsEntries": true}
	listIntrinsics = map[string]bool{"Fn::Split": true, "Fn::GetAZs": true, "Fn::Cidr": true}
)

func splitGetAtt(v any) (string, string, bool) {
	switch val := v.(type) {
	case []any:
		if len(val) != 2 {
			return "", "", false
		}
		a, okA := val[0].(string)
		b, okB := val[1].(string)
		return a, b, okA && okB
	case string:
		a, b, ok := strings.Cut(val, ".")
		return a, b, ok
	default:
		return "", "", false
	}
}
