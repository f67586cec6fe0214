package cfn

import (
	"crypto/md5" //nolint:gosec // Used for stable id derivation, not security.
	"encoding/hex"
	"strings"
	"unicode"
)

const (
	hiddenID          = "Default"
	hiddenFromHumanID = "Resource"
	maxHumanLength    = 240
	maxIDLength       = 255
	hashLength        = 8
)

// MakeUniqueID derives a CloudFormation logical id from construct path components
// relative to the stack.
func MakeUniqueID(components []string) string {
	filtered := make([]string, 0, len(components))
	for _, c := range components {
		if c != hiddenID {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		panic(Errorf(CodeValidationFailed, "unable to calculate a unique id for an empty set of components"))
	}

	if len(filtered) == 1 {
		candidate := removeNonAlphanumeric(filtered[0])
		if candidate != "" && len(candidate) <= maxIDLength {
			return candidate
		}
	}

	hash := pathHash(filtered)
	var human strings.Builder
	prev := ""
	for _, c := range filtered {
		if c == prev {
			continue
		}
		prev = c
		if c == hiddenFromHumanID {
			continue
		}
		human.WriteString(removeNonAlphanumeric(c))
	}
	h := human.String()
	if len(h) > maxHumanLength {
		h = h[:maxHumanLength]
	}
	return h + hash
}

func pathHash(components []string) string {
	sum := md5.Sum([]byte(strings.Join(components, PathSeparator))) //nolint:gosec // Stable id derivation.
	return strings.ToUpper(hex.EncodeToString(sum[:]))[:hashLength]
}

func removeNonAlphanumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UniqueResourceName derives a physical resource name from the stack name and construct
// path, trimmed to maxLength while keeping the hash suffix.
func UniqueResourceName(c IConstruct, maxLength int) string {
	stack := StackOf(c)
	full := c.Node().Scopes()
	base := len(stack.Node().Scopes())
	components := append([]string{stack.StackName()}, full[base:]...)
	id := MakeUniqueID(components)
	if maxLength > hashLength && len(id) > maxLength {
		id = id[:maxLength-hashLength] + id[len(id)-hashLength:]
	}
	return id
}
