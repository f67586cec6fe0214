package route53

import (
	"strconv"

	"github.com/theory-cloud/zonetheory/cfn"
)

func init() {
	registerInclude(CfnHostedZone_CFN_RESOURCE_TYPE_NAME, func(scope cfn.IConstruct, id *string, props *CfnHostedZoneProps) cfn.ICfnResource {
		return NewCfnHostedZone(scope, id, props)
	})
	registerInclude(CfnRecordSet_CFN_RESOURCE_TYPE_NAME, func(scope cfn.IConstruct, id *string, props *CfnRecordSetProps) cfn.ICfnResource {
		return NewCfnRecordSet(scope, id, props)
	})
	registerInclude(CfnRecordSetGroup_CFN_RESOURCE_TYPE_NAME, func(scope cfn.IConstruct, id *string, props *CfnRecordSetGroupProps) cfn.ICfnResource {
		return NewCfnRecordSetGroup(scope, id, props)
	})
	registerInclude(CfnHealthCheck_CFN_RESOURCE_TYPE_NAME, func(scope cfn.IConstruct, id *string, props *CfnHealthCheckProps) cfn.ICfnResource {
		return NewCfnHealthCheck(scope, id, props)
	})
	registerInclude(CfnKeySigningKey_CFN_RESOURCE_TYPE_NAME, func(scope cfn.IConstruct, id *string, props *CfnKeySigningKeyProps) cfn.ICfnResource {
		return NewCfnKeySigningKey(scope, id, props)
	})
	registerInclude(CfnDNSSEC_CFN_RESOURCE_TYPE_NAME, func(scope cfn.IConstruct, id *string, props *CfnDNSSECProps) cfn.ICfnResource {
		return NewCfnDNSSEC(scope, id, props)
	})
	registerInclude(CfnCidrCollection_CFN_RESOURCE_TYPE_NAME, func(scope cfn.IConstruct, id *string, props *CfnCidrCollectionProps) cfn.ICfnResource {
		return NewCfnCidrCollection(scope, id, props)
	})
}

// registerInclude decodes included properties into P before calling the typed constructor.
// Missing required properties surface as "Required property 'x' is missing" errors.
func registerInclude[P any](cfnType string, create func(cfn.IConstruct, *string, *P) cfn.ICfnResource) {
	cfn.RegisterIncludeFactory(cfnType, func(scope cfn.IConstruct, logicalID string, res *cfn.Resource) (cfn.ICfnResource, error) {
		props := new(P)
		if err := cfn.DecodeProperties(logicalID, includeFixups(res.Properties), props); err != nil {
			return nil, err
		}
		id := logicalID
		return create(scope, &id, props), nil
	})
}

// includeFixups converts fields CloudFormation accepts as numbers but the schema types as
// strings (TTL). Property name casing is matched case-insensitively by the decoder.
func includeFixups(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		switch k {
		case "TTL":
			out[k] = numberToString(v)
		case "RecordSets":
			if list, ok := v.([]any); ok {
				fixed := make([]any, len(list))
				for i, item := range list {
					if m, ok := item.(map[string]any); ok {
						fixed[i] = includeFixups(m)
					} else {
						fixed[i] = item
					}
				}
				out[k] = fixed
				continue
			}
			out[k] = v
		default:
			out[k] = v
		}
	}
	return out
}

func numberToString(v any) any {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return v
	}
}
