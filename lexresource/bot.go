package lexresource

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	lexmodel "github.com/aws/aws-sdk-go-v2/service/lexmodelbuildingservice"

	"github.com/MinneapolisStarTribune/cfn-lex-resource-go/props"
)

// BotCoercer fixes up the bot properties PutBot needs as numbers or
// booleans.
var BotCoercer = props.NewCoercer(
	[]string{
		"clarificationPrompt.maxAttempts",
		"clarificationPrompt.messages.*.groupNumber",
		"abortStatement.messages.*.groupNumber",
		"idleSessionTTLInSeconds",
		"nluIntentConfidenceThreshold",
	},
	[]string{
		"childDirected",
		"createVersion",
		"detectSentiment",
		"enableModelImprovements",
	},
)

// NewBot returns the Custom::LexBot resource.
func NewBot(api BotAPI, logger *slog.Logger) *Resource {
	return newResource("bot", BotCoercer, botOperations{api: api}, logger)
}

type botOperations struct {
	api BotAPI
}

func (o botOperations) put(ctx context.Context, b props.Bag) (Attributes, error) {
	in := &lexmodel.PutBotInput{}
	if err := b.Decode(in); err != nil {
		return Attributes{}, err
	}
	out, err := o.api.PutBot(ctx, in)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{
		Version:  aws.ToString(out.Version),
		Checksum: aws.ToString(out.Checksum),
	}, nil
}

func (o botOperations) get(ctx context.Context, name string) (Attributes, error) {
	out, err := o.api.GetBot(ctx, &lexmodel.GetBotInput{
		Name:           aws.String(name),
		VersionOrAlias: aws.String(LatestVersion),
	})
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{Checksum: aws.ToString(out.Checksum)}, nil
}

func (o botOperations) remove(ctx context.Context, name string) error {
	_, err := o.api.DeleteBot(ctx, &lexmodel.DeleteBotInput{Name: aws.String(name)})
	return err
}
