package cfncustomresource

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseSend(t *testing.T) {
	var got map[string]any
	var method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
	}))
	defer srv.Close()

	r := &Request{
		RequestType:       cfn.RequestCreate,
		ResponseURL:       srv.URL,
		StackId:           "stack",
		RequestId:         "req",
		LogicalResourceId: "Bot",
	}
	require.NoError(t, r.CreatedResponse("MyBot", map[string]string{"checksum": "abc"}).Send())

	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "SUCCESS", got["Status"])
	assert.Equal(t, "MyBot", got["PhysicalResourceId"])
	assert.True(t, r.responseSent)
}

func TestResponseSendErrors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		r := &Request{RequestType: cfn.RequestDelete, ResponseURL: srv.URL}
		err := r.DeletedResponse().Send()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
		assert.False(t, r.responseSent)
	})

	t.Run("oversized payload", func(t *testing.T) {
		r := SimulatedRequest(cfn.RequestUpdate, io.Discard)
		err := r.UpdatedResponse(map[string]string{"blob": strings.Repeat("x", MaxResponseSize)}).Send()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds max")
	})
}

func TestSensitive(t *testing.T) {
	r := SimulatedRequest(cfn.RequestDelete, nil)
	assert.True(t, r.DeletedResponse().Sensitive().NoEcho)
}
