package main

import (
	"context"
	"fmt"
	"os"

	awscfn "github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/theory-cloud/zonetheory/pkg/customresource"
	"github.com/theory-cloud/zonetheory/pkg/logger"
)

func buildHandler() *customresource.Handler {
	log, err := logger.InitFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "route53-custom-resource: logger: %v\n", err)
	}
	return customresource.NewHandler(customresource.WithLogger(log))
}

func main() {
	handler := buildHandler()
	lambda.Start(awscfn.LambdaWrap(func(ctx context.Context, event awscfn.Event) (string, map[string]any, error) {
		defer func() { _ = logger.Logger().Flush(ctx) }()
		return handler.Handle(ctx, event)
	}))
}
