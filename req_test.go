package cfncustomresource

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSimulatedRequestRejectsUnknownType(t *testing.T) {
	assert.Panics(t, func() { SimulatedRequest("NoUpdate", nil) })
	assert.True(t, SimulatedRequest(cfn.RequestDelete, nil).Simulated())
}

func TestTry(t *testing.T) {
	t.Run("error becomes failure response", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := SimulatedRequest(cfn.RequestCreate, out)
		r.Logger = discardLogger()
		r.LogicalResourceId = "Intent"

		err := r.Try(func(*Request) error { return errors.New("bad request") })
		require.EqualError(t, err, "bad request")
		assert.Contains(t, out.String(), `"Status":"FAILED"`)
		assert.Contains(t, out.String(), `"Reason":"bad request"`)
	})

	t.Run("panic becomes failure response", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := SimulatedRequest(cfn.RequestDelete, out)
		r.Logger = discardLogger()

		err := r.Try(func(r *Request) error { return r.CreatedResponse("x", nil).Send() })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "created response on a non-create request")
		assert.Contains(t, out.String(), `"Status":"FAILED"`)
	})

	t.Run("no response is a failure", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := SimulatedRequest(cfn.RequestDelete, out)
		r.Logger = discardLogger()

		err := r.Try(func(*Request) error { return nil })
		require.Error(t, err)
		assert.Contains(t, out.String(), `"Status":"FAILED"`)
	})

	t.Run("error after response is not sent twice", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := SimulatedRequest(cfn.RequestDelete, out)
		r.Logger = discardLogger()

		err := r.Try(func(r *Request) error {
			if err := r.DeletedResponse().Send(); err != nil {
				return err
			}
			return errors.New("late")
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "response already sent")
		assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("\n")))
	})
}

func TestResponseConstructorsCheckRequestType(t *testing.T) {
	update := SimulatedRequest(cfn.RequestUpdate, nil)
	update.PhysicalResourceId = "MyBot"
	assert.Panics(t, func() { update.ReplacedResponse("MyBot", nil) })
	assert.Panics(t, func() { update.DeletedResponse() })
	assert.Equal(t, "MyBot", update.UpdatedResponse(nil).PhysicalResourceId)
	assert.Equal(t, "MyBotV2", update.ReplacedResponse("MyBotV2", nil).PhysicalResourceId)

	create := SimulatedRequest(cfn.RequestCreate, nil)
	assert.Panics(t, func() { create.CreatedResponse("", nil) })
}
