// Package naming derives deterministic stack names for zone files.
package naming

import (
	"regexp"
	"strings"
)

var (
	nonAlnum  = regexp.MustCompile(`[^a-z0-9-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// maxStackName is the CloudFormation stack name limit.
const maxStackName = 128

func sanitizePart(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	value = strings.NewReplacer("_", "-", " ", "-", ".", "-").Replace(value)
	value = nonAlnum.ReplaceAllString(value, "-")
	value = multiDash.ReplaceAllString(value, "-")
	return strings.Trim(value, "-")
}

// NormalizeStage maps stage aliases to canonical values.
func NormalizeStage(stage string) string {
	stage = strings.ToLower(strings.TrimSpace(stage))
	switch stage {
	case "prod", "production", "live":
		return "live"
	case "dev", "development":
		return "dev"
	case "stg", "stage", "staging":
		return "stage"
	case "test", "testing":
		return "test"
	case "local":
		return "local"
	default:
		return sanitizePart(stage)
	}
}

// StackName returns <project>-dns-<stage>, or <project>-dns without a stage.
//
// The result starts with a letter and is truncated to the CloudFormation limit.
func StackName(project, stage string) string {
	parts := []string{}
	if p := sanitizePart(project); p != "" {
		parts = append(parts, p)
	}
	parts = append(parts, "dns")
	if s := NormalizeStage(stage); s != "" {
		parts = append(parts, s)
	}

	name := strings.Join(parts, "-")
	if name[0] < 'a' || name[0] > 'z' {
		name = "z" + name
	}
	if len(name) > maxStackName {
		name = strings.TrimRight(name[:maxStackName], "-")
	}
	return name
}
