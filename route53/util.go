package route53

import (
	"regexp"
	"strings"

	"github.com/theory-cloud/zonetheory/cfn"
)

// renderTags merges tags inherited from enclosing scopes with explicit resource tags.
// Without inherited tags the explicit order is kept.
func renderTags(node *cfn.Node, explicit []cfn.Tag) []any {
	inherited := cfn.InheritedTags(node)
	tags := explicit
	if len(inherited) > 0 {
		tags = cfn.MergeTags(inherited, explicit)
	}
	if len(tags) == 0 {
		return nil
	}
	out := make([]any, 0, len(tags))
	for _, t := range tags {
		out = append(out, map[string]any{"Key": t.Key, "Value": t.Value})
	}
	return out
}

// determineFullyQualifiedDomainName returns the record name as an FQDN with a trailing dot.
//
// An empty name is the zone apex; names already ending in the zone name (with or without a
// trailing dot) are completed with the dot; anything else is made relative to the zone.
func determineFullyQualifiedDomainName(recordName *string, zone IHostedZone) string {
	zoneName := strings.TrimSuffix(*zone.ZoneName(), ".")
	if recordName == nil || *recordName == "" {
		return zoneName + "."
	}
	name := *recordName
	if cfn.IsUnresolved(name) {
		return name
	}
	if strings.HasSuffix(name, ".") {
		return name
	}
	if name == zoneName || strings.HasSuffix(name, "."+zoneName) {
		return name + "."
	}
	return name + "." + zoneName + "."
}

// validateZoneName rejects names Route 53 will not accept for a hosted zone.
func validateZoneName(name string) error {
	if cfn.IsUnresolved(name) {
		return nil
	}
	if strings.HasSuffix(name, ".") {
		return cfn.Errorf(cfn.CodeValidationFailed, "zone name must not end with a dot: %s", name)
	}
	if len(name) > 255 {
		return cfn.Errorf(cfn.CodeValidationFailed, "zone name cannot be more than 255 bytes long: %s", name)
	}
	for _, label := range strings.Split(name, ".") {
		if len(label) > 63 {
			return cfn.Errorf(cfn.CodeValidationFailed, "zone name labels cannot be more than 63 bytes long: %s", label)
		}
		for _, r := range label {
			if !isZoneNameRune(r) {
				return cfn.Errorf(cfn.CodeValidationFailed, "zone names can only contain a-z, 0-9, -, ! \" # $ %% & ' ( ) * + , / : ; < = > ? @ [ \\ ] ^ _ ` { | } . ~: %s", name)
			}
		}
	}
	return nil
}

func isZoneNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.' || r == '-':
		return true
	}
	return strings.ContainsRune("!\"#$%&'()*+,/:;<=>?@[\\]^_`{|}~", r)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

var cidrLocationNamePattern = regexp.MustCompile(`^[0-9A-Za-z_\-]{1,16}$`)
