package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-lambda-go/cfn"
	"gopkg.in/yaml.v3"

	cfncustomresource "github.com/MinneapolisStarTribune/cfn-lex-resource-go"
)

// loadEvent reads a CloudFormation event from a YAML or JSON file into a
// simulated request whose response is written to out.
func loadEvent(path string, out io.Writer) (*cfncustomresource.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read event: %w", err)
	}
	return parseEvent(data, out)
}

func parseEvent(data []byte, out io.Writer) (*cfncustomresource.Request, error) {
	// JSON is valid YAML, so one decoder handles both
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not parse event: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("event is not representable as JSON: %w", err)
	}

	var head struct {
		RequestType cfn.RequestType
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("could not read RequestType: %w", err)
	}
	switch head.RequestType {
	case cfn.RequestCreate, cfn.RequestUpdate, cfn.RequestDelete:
	default:
		return nil, fmt.Errorf("unsupported RequestType %q", head.RequestType)
	}

	req := cfncustomresource.SimulatedRequest(head.RequestType, out)
	if err := json.Unmarshal(raw, req); err != nil {
		return nil, fmt.Errorf("could not decode event: %w", err)
	}
	return req, nil
}
