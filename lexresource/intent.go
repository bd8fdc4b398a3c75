package lexresource

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	lexmodel "github.com/aws/aws-sdk-go-v2/service/lexmodelbuildingservice"

	"github.com/MinneapolisStarTribune/cfn-lex-resource-go/props"
)

// IntentCoercer fixes up the intent properties PutIntent needs as
// numbers or booleans.
var IntentCoercer = props.NewCoercer(
	[]string{
		"confirmationPrompt.maxAttempts",
		"confirmationPrompt.messages.*.groupNumber",
		"followUpPrompt.prompt.maxAttempts",
		"followUpPrompt.prompt.messages.*.groupNumber",
		"followUpPrompt.rejectionStatement.messages.*.groupNumber",
		"rejectionStatement.messages.*.groupNumber",
		"conclusionStatement.messages.*.groupNumber",
		"slots.*.priority",
		"slots.*.valueElicitationPrompt.maxAttempts",
		"slots.*.valueElicitationPrompt.messages.*.groupNumber",
		"outputContexts.*.timeToLiveInSeconds",
		"outputContexts.*.turnsToLive",
	},
	[]string{
		"createVersion",
	},
)

// NewIntent returns the Custom::LexIntent resource.
func NewIntent(api IntentAPI, logger *slog.Logger) *Resource {
	return newResource("intent", IntentCoercer, intentOperations{api: api}, logger)
}

type intentOperations struct {
	api IntentAPI
}

func (o intentOperations) put(ctx context.Context, b props.Bag) (Attributes, error) {
	in := &lexmodel.PutIntentInput{}
	if err := b.Decode(in); err != nil {
		return Attributes{}, err
	}
	out, err := o.api.PutIntent(ctx, in)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{
		Version:  aws.ToString(out.Version),
		Checksum: aws.ToString(out.Checksum),
	}, nil
}

func (o intentOperations) get(ctx context.Context, name string) (Attributes, error) {
	out, err := o.api.GetIntent(ctx, &lexmodel.GetIntentInput{
		Name:    aws.String(name),
		Version: aws.String(LatestVersion),
	})
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{Checksum: aws.ToString(out.Checksum)}, nil
}

func (o intentOperations) remove(ctx context.Context, name string) error {
	_, err := o.api.DeleteIntent(ctx, &lexmodel.DeleteIntentInput{Name: aws.String(name)})
	return err
}
