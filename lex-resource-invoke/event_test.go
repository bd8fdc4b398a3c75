package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const updateEventYAML = `
RequestType: Update
ResponseURL: https://cloudformation-custom-resource-response-useast1.s3.amazonaws.com/example
StackId: arn:aws:cloudformation:us-east-1:123456789012:stack/lex/1
RequestId: 5d2d1b1c
LogicalResourceId: OrderFlowersBot
PhysicalResourceId: OrderFlowers
ResourceType: Custom::LexBot
ResourceProperties:
  ServiceToken: arn:aws:lambda:us-east-1:123456789012:function:lex-bot
  name: OrderFlowers
  locale: en-US
  childDirected: "false"
  idleSessionTTLInSeconds: 300
OldResourceProperties:
  name: OrderFlowers
  locale: en-GB
`

func TestParseEvent(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		out := &bytes.Buffer{}
		req, err := parseEvent([]byte(updateEventYAML), out)
		require.NoError(t, err)

		assert.True(t, req.Simulated())
		assert.Equal(t, cfn.RequestUpdate, req.RequestType)
		assert.Equal(t, "OrderFlowers", req.PhysicalResourceId)

		p, err := req.Properties()
		require.NoError(t, err)
		assert.Equal(t, "OrderFlowers", p.Name())
		assert.NotContains(t, p, "ServiceToken")
		assert.Equal(t, "false", p["childDirected"])

		old, err := req.OldProperties()
		require.NoError(t, err)
		assert.Equal(t, "en-GB", old["locale"])
	})

	t.Run("json", func(t *testing.T) {
		req, err := parseEvent([]byte(`{"RequestType":"Delete","PhysicalResourceId":"OrderFlowers","ResourceProperties":{"name":"OrderFlowers"}}`), nil)
		require.NoError(t, err)
		assert.Equal(t, cfn.RequestDelete, req.RequestType)
	})

	t.Run("unknown request type", func(t *testing.T) {
		_, err := parseEvent([]byte("RequestType: Replace\n"), nil)
		assert.Error(t, err)
	})

	t.Run("not yaml", func(t *testing.T) {
		_, err := parseEvent([]byte("RequestType: [Create"), nil)
		assert.Error(t, err)
	})
}

func TestLoadEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.yaml")
	require.NoError(t, os.WriteFile(path, []byte(updateEventYAML), 0o600))

	req, err := loadEvent(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "OrderFlowersBot", req.LogicalResourceId)

	_, err = loadEvent(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestRootCmdArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"bot"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
