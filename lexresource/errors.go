package lexresource

import (
	"errors"
	"fmt"
	"net/http"
	"slices"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/lexmodelbuildingservice/types"
	"github.com/aws/smithy-go"
)

// ErrMissingName is returned when the properties have no "name", which
// every Lex resource needs as its physical id.
var ErrMissingName = errors.New("missing name property")

// Delete treats these statuses as done: the resource is already gone,
// or something else still references it and Lex will not let it go.
var toleratedDeleteStatus = []int{http.StatusNotFound, http.StatusConflict}

// ReadError is a failed read of a resource's $LATEST version. Its
// message is the service's "<code>: <message>" pair.
type ReadError struct {
	Kind string
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	return describe(e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// describe renders err as "<ErrorCode>: <message>" when it came from
// the service.
func describe(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return err.Error()
}

func toleratedDeleteError(err error) bool {
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		return slices.Contains(toleratedDeleteStatus, respErr.HTTPStatusCode())
	}
	var notFound *types.NotFoundException
	var conflict *types.ConflictException
	return errors.As(err, &notFound) || errors.As(err, &conflict)
}
