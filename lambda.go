package cfncustomresource

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambdacontext"
)

// LambdaHandler adapts res for lambda.Start:
//
//	lambda.Start(cfncustomresource.LambdaHandler(res, logger))
//
// Failures are reported to CloudFormation and then swallowed, because
// returning an error would make Lambda retry the asynchronous
// invocation and answer the same request twice. Only a failure to
// deliver any response at all reaches the runtime.
func LambdaHandler(res Resource, logger *slog.Logger) func(context.Context, *Request) error {
	if logger == nil {
		logger = slog.Default()
	}
	h := Handler(res)
	return func(ctx context.Context, r *Request) error {
		log := logger
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			log = log.With("aws_request_id", lc.AwsRequestID)
		}
		r.Ctx = ctx
		r.Logger = log.With("stack_id", r.StackId, "resource_type", r.ResourceType)

		if err := r.Try(h); err != nil {
			r.Logger.Error("request failed", "error", err)
		}
		return nil
	}
}
