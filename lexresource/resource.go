package lexresource

import (
	"context"
	"log/slog"

	cfncustomresource "github.com/MinneapolisStarTribune/cfn-lex-resource-go"
	"github.com/MinneapolisStarTribune/cfn-lex-resource-go/props"
)

// LatestVersion names the mutable working copy of a bot or intent.
const LatestVersion = "$LATEST"

// Attributes are returned to the stack for both resource types.
type Attributes struct {
	Version  string `json:"version"`
	Checksum string `json:"checksum"`
}

// operations are the three remote calls a resource type is built on.
type operations interface {
	// put creates or updates from a coerced property bag.
	put(ctx context.Context, b props.Bag) (Attributes, error)
	// get reads the $LATEST version of name.
	get(ctx context.Context, name string) (Attributes, error)
	remove(ctx context.Context, name string) error
}

// Resource is a Lex bot, intent or slot type managed by CloudFormation. The
// resource's name is its physical id.
type Resource struct {
	kind    string
	coercer *props.Coercer
	ops     operations
	logger  *slog.Logger
}

var _ cfncustomresource.Resource = (*Resource)(nil)

func newResource(kind string, coercer *props.Coercer, ops operations, logger *slog.Logger) *Resource {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resource{
		kind:    kind,
		coercer: coercer,
		ops:     ops,
		logger:  logger.With("kind", kind),
	}
}

// Kind is "bot", "intent" or "slot-type".
func (r *Resource) Kind() string {
	return r.kind
}

func (r *Resource) Create(ctx context.Context, desired props.Bag) (cfncustomresource.Result, error) {
	return r.upsert(ctx, desired)
}

// Update puts the new properties. Lex refuses to update an existing
// bot or intent without its current checksum, so when the name is
// unchanged and the template gives no checksum, the checksum of the
// old name's $LATEST version is fetched first. A rename is put as
// given.
func (r *Resource) Update(ctx context.Context, physicalID string, desired, old props.Bag) (cfncustomresource.Result, error) {
	sameName := desired.Name() == old.Name()
	if desired.Checksum() != "" || !sameName {
		return r.upsert(ctx, desired)
	}

	current, err := r.snapshot(ctx, old.Name())
	if err != nil {
		return cfncustomresource.Result{}, err
	}
	r.logger.Info("fetched checksum", "name", old.Name(), "checksum", current.Checksum)

	next := desired.Clone()
	if current.Checksum != "" {
		next["checksum"] = current.Checksum
	}
	return r.upsert(ctx, next)
}

// Delete removes the resource named in current. Not found and conflict
// responses count as success.
//
// A physical id that differs from the name was never backed by this
// resource (a failed Create answers with a placeholder id), so nothing
// is deleted for it.
func (r *Resource) Delete(ctx context.Context, physicalID string, current props.Bag) error {
	name := current.Name()
	if name == "" {
		name = physicalID
	}
	if name == "" {
		return ErrMissingName
	}
	if physicalID != "" && physicalID != name {
		r.logger.Warn("physical id does not match name, skipping delete", "physical_resource_id", physicalID, "name", name)
		return nil
	}

	if err := r.ops.remove(ctx, name); err != nil {
		if toleratedDeleteError(err) {
			r.logger.Warn("ignoring delete error", "name", name, "error", err)
			return nil
		}
		return err
	}
	return nil
}

// ReadCurrent answers an Update that changes nothing with the
// $LATEST checksum and version.
func (r *Resource) ReadCurrent(ctx context.Context, physicalID string, current props.Bag) (cfncustomresource.Result, error) {
	attrs, err := r.snapshot(ctx, current.Name())
	if err != nil {
		return cfncustomresource.Result{}, err
	}
	r.logger.Debug("current attributes", "name", current.Name(), "version", attrs.Version, "checksum", attrs.Checksum)
	return cfncustomresource.Result{PhysicalResourceId: physicalID, Attributes: attrs}, nil
}

func (r *Resource) upsert(ctx context.Context, desired props.Bag) (cfncustomresource.Result, error) {
	name := desired.Name()
	if name == "" {
		return cfncustomresource.Result{}, ErrMissingName
	}
	coerced, err := r.coercer.Apply(desired)
	if err != nil {
		return cfncustomresource.Result{}, err
	}
	attrs, err := r.ops.put(ctx, coerced)
	if err != nil {
		return cfncustomresource.Result{}, err
	}
	return cfncustomresource.Result{PhysicalResourceId: name, Attributes: attrs}, nil
}

func (r *Resource) snapshot(ctx context.Context, name string) (Attributes, error) {
	if name == "" {
		return Attributes{}, ErrMissingName
	}
	attrs, err := r.ops.get(ctx, name)
	if err != nil {
		return Attributes{}, &ReadError{Kind: r.kind, Name: name, Err: err}
	}
	attrs.Version = LatestVersion
	return attrs, nil
}
