package route53

import (
	"github.com/theory-cloud/zonetheory/cfn"
)

// Custom resource types implemented by the route53 custom resource handler.
const (
	CrossAccountZoneDelegationResourceType = "Custom::CrossAccountZoneDelegation"
	DeleteExistingRecordSetResourceType    = "Custom::DeleteExistingRecordSet"
)

const (
	// CustomResourceServiceTokenContextKey holds the ARN of a deployed handler function.
	CustomResourceServiceTokenContextKey = "@zonetheory/route53:customResourceServiceToken"
	// CustomResourceServiceTokenParameter is the template parameter used when the context
	// key is not set.
	CustomResourceServiceTokenParameter = "Route53CustomResourceServiceToken"
)

// customResourceServiceToken returns the handler ARN from context, or a Ref to a template
// parameter the deployer fills in.
func customResourceServiceToken(scope cfn.IConstruct) string {
	if token, ok := scope.Node().TryGetContext(CustomResourceServiceTokenContextKey).(string); ok && token != "" {
		return token
	}
	return cfn.StackOf(scope).AddParameter(CustomResourceServiceTokenParameter, map[string]any{
		"Type":        "String",
		"Description": "ARN of the Lambda function that handles Custom::CrossAccountZoneDelegation and Custom::DeleteExistingRecordSet",
	})
}
