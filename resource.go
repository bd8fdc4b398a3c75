package cfncustomresource

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/cfn"

	"github.com/MinneapolisStarTribune/cfn-lex-resource-go/props"
)

// Result is what a Resource reports after a successful operation.
type Result struct {
	PhysicalResourceId string
	// Attributes become available to the stack through !GetAtt. May be nil.
	Attributes interface{}
}

// Resource is the set of lifecycle operations a custom resource type
// implements. Handler routes each CloudFormation request to one of them.
type Resource interface {
	// Create makes a new resource from desired.
	Create(ctx context.Context, desired props.Bag) (Result, error)
	// Update applies desired to the resource identified by physicalID,
	// which previously had old. Returning a different physical id
	// replaces the resource; CloudFormation then deletes the old one.
	Update(ctx context.Context, physicalID string, desired, old props.Bag) (Result, error)
	// Delete removes the resource. It must succeed if the resource is
	// already gone.
	Delete(ctx context.Context, physicalID string, current props.Bag) error
	// ReadCurrent reports the attributes of an unchanged resource. It
	// answers Updates whose properties did not change.
	ReadCurrent(ctx context.Context, physicalID string, current props.Bag) (Result, error)
}

// Handler returns a ReqHandler that dispatches requests to res and
// sends the matching response. An Update whose new properties equal
// the old ones is answered from ReadCurrent without changing anything.
func Handler(res Resource) ReqHandler {
	return func(r *Request) error {
		ctx := r.Ctx
		if ctx == nil {
			ctx = context.Background()
		}
		log := r.logger().With(
			"request_type", r.RequestType,
			"logical_resource_id", r.LogicalResourceId,
			"physical_resource_id", r.PhysicalResourceId,
		)

		p, err := r.Properties()
		if err != nil {
			return err
		}

		switch r.RequestType {
		case cfn.RequestCreate:
			log.Info("creating resource")
			result, err := res.Create(ctx, p)
			if err != nil {
				return err
			}
			return r.CreatedResponse(result.PhysicalResourceId, result.Attributes).Send()

		case cfn.RequestUpdate:
			old, err := r.OldProperties()
			if err != nil {
				return err
			}
			var result Result
			if p.Equal(old) {
				log.Info("properties unchanged, reading current state")
				result, err = res.ReadCurrent(ctx, r.PhysicalResourceId, p)
			} else {
				log.Info("updating resource")
				result, err = res.Update(ctx, r.PhysicalResourceId, p, old)
			}
			if err != nil {
				return err
			}
			if result.PhysicalResourceId != "" && result.PhysicalResourceId != r.PhysicalResourceId {
				log.Info("resource replaced", "new_physical_resource_id", result.PhysicalResourceId)
				return r.ReplacedResponse(result.PhysicalResourceId, result.Attributes).Send()
			}
			return r.UpdatedResponse(result.Attributes).Send()

		case cfn.RequestDelete:
			log.Info("deleting resource")
			if err := res.Delete(ctx, r.PhysicalResourceId, p); err != nil {
				return err
			}
			return r.DeletedResponse().Send()
		}
		return fmt.Errorf("unsupported request type %q", r.RequestType)
	}
}
