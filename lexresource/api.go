// Package lexresource implements CloudFormation custom resources for
// Amazon Lex (V1) bots, intents and slot types on top of the Lex Model Building
// Service.
package lexresource

import (
	"context"

	lexmodel "github.com/aws/aws-sdk-go-v2/service/lexmodelbuildingservice"
)

// BotAPI is the part of the Lex model building client used for bots.
type BotAPI interface {
	PutBot(ctx context.Context, params *lexmodel.PutBotInput, optFns ...func(*lexmodel.Options)) (*lexmodel.PutBotOutput, error)
	GetBot(ctx context.Context, params *lexmodel.GetBotInput, optFns ...func(*lexmodel.Options)) (*lexmodel.GetBotOutput, error)
	DeleteBot(ctx context.Context, params *lexmodel.DeleteBotInput, optFns ...func(*lexmodel.Options)) (*lexmodel.DeleteBotOutput, error)
}

// IntentAPI is the part of the Lex model building client used for intents.
type IntentAPI interface {
	PutIntent(ctx context.Context, params *lexmodel.PutIntentInput, optFns ...func(*lexmodel.Options)) (*lexmodel.PutIntentOutput, error)
	GetIntent(ctx context.Context, params *lexmodel.GetIntentInput, optFns ...func(*lexmodel.Options)) (*lexmodel.GetIntentOutput, error)
	DeleteIntent(ctx context.Context, params *lexmodel.DeleteIntentInput, optFns ...func(*lexmodel.Options)) (*lexmodel.DeleteIntentOutput, error)
}

// SlotTypeAPI is the part of the Lex model building client used for
// custom slot types.
type SlotTypeAPI interface {
	PutSlotType(ctx context.Context, params *lexmodel.PutSlotTypeInput, optFns ...func(*lexmodel.Options)) (*lexmodel.PutSlotTypeOutput, error)
	GetSlotType(ctx context.Context, params *lexmodel.GetSlotTypeInput, optFns ...func(*lexmodel.Options)) (*lexmodel.GetSlotTypeOutput, error)
	DeleteSlotType(ctx context.Context, params *lexmodel.DeleteSlotTypeInput, optFns ...func(*lexmodel.Options)) (*lexmodel.DeleteSlotTypeOutput, error)
}

var (
	_ BotAPI      = (*lexmodel.Client)(nil)
	_ IntentAPI   = (*lexmodel.Client)(nil)
	_ SlotTypeAPI = (*lexmodel.Client)(nil)
)
