package lexresource

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	lexmodel "github.com/aws/aws-sdk-go-v2/service/lexmodelbuildingservice"

	"github.com/MinneapolisStarTribune/cfn-lex-resource-go/props"
)

// SlotTypeCoercer fixes up the slot type properties PutSlotType needs
// as booleans. Slot types have no numeric fields.
var SlotTypeCoercer = props.NewCoercer(nil, []string{"createVersion"})

// NewSlotType returns the Custom::LexSlotType resource.
func NewSlotType(api SlotTypeAPI, logger *slog.Logger) *Resource {
	return newResource("slot-type", SlotTypeCoercer, slotTypeOperations{api: api}, logger)
}

type slotTypeOperations struct {
	api SlotTypeAPI
}

func (o slotTypeOperations) put(ctx context.Context, b props.Bag) (Attributes, error) {
	in := &lexmodel.PutSlotTypeInput{}
	if err := b.Decode(in); err != nil {
		return Attributes{}, err
	}
	out, err := o.api.PutSlotType(ctx, in)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{
		Version:  aws.ToString(out.Version),
		Checksum: aws.ToString(out.Checksum),
	}, nil
}

func (o slotTypeOperations) get(ctx context.Context, name string) (Attributes, error) {
	out, err := o.api.GetSlotType(ctx, &lexmodel.GetSlotTypeInput{
		Name:    aws.String(name),
		Version: aws.String(LatestVersion),
	})
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{Checksum: aws.ToString(out.Checksum)}, nil
}

func (o slotTypeOperations) remove(ctx context.Context, name string) error {
	_, err := o.api.DeleteSlotType(ctx, &lexmodel.DeleteSlotTypeInput{Name: aws.String(name)})
	return err
}
