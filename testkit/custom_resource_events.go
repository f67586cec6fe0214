package testkit

import (
	"context"
	"strings"

	awscfn "github.com/aws/aws-lambda-go/cfn"
)

type CustomResourceEventOptions struct {
	RequestType           awscfn.RequestType
	ResourceType          string
	LogicalResourceID     string
	PhysicalResourceID    string
	StackID               string
	RequestID             string
	ResourceProperties    map[string]any
	OldResourceProperties map[string]any
}

// CustomResourceEvent builds a CloudFormation custom resource request with stable
// defaults. ServiceToken is added to the properties the way CloudFormation does.
func CustomResourceEvent(opts CustomResourceEventOptions) awscfn.Event {
	requestType := opts.RequestType
	if requestType == "" {
		requestType = awscfn.RequestCreate
	}
	logicalID := strings.TrimSpace(opts.LogicalResourceID)
	if logicalID == "" {
		logicalID = "Resource"
	}
	stackID := strings.TrimSpace(opts.StackID)
	if stackID == "" {
		stackID = "arn:aws:cloudformation:" + DefaultRegion + ":" + DefaultAccount + ":stack/test/00000000-0000-0000-0000-000000000000"
	}
	requestID := strings.TrimSpace(opts.RequestID)
	if requestID == "" {
		requestID = "req-1"
	}

	props := map[string]any{"ServiceToken": "arn:aws:lambda:" + DefaultRegion + ":" + DefaultAccount + ":function:handler"}
	for k, v := range opts.ResourceProperties {
		props[k] = v
	}

	return awscfn.Event{
		RequestType:           requestType,
		RequestID:             requestID,
		ResponseURL:           "https://cloudformation-custom-resource-response.s3.amazonaws.com/" + requestID + "?X-Amz-Signature=test",
		ResourceType:          opts.ResourceType,
		PhysicalResourceID:    opts.PhysicalResourceID,
		LogicalResourceID:     logicalID,
		StackID:               stackID,
		ResourceProperties:    props,
		OldResourceProperties: opts.OldResourceProperties,
	}
}

// CustomResourceFunc matches cfn.CustomResourceFunction.
type CustomResourceFunc func(ctx context.Context, event awscfn.Event) (string, map[string]any, error)

// InvokeCustomResource calls fn the way cfn.LambdaWrap would, minus the response upload.
func (e *Env) InvokeCustomResource(ctx context.Context, fn CustomResourceFunc, event awscfn.Event) (string, map[string]any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, event)
}
