package cfncustomresource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/cfn"
)

// MaxResponseSize is the largest payload CloudFormation accepts from a
// custom resource.
const MaxResponseSize = 4096

// Response represents the result of processing a Request.
//
// Responses are built from the Request they answer and sent with Send,
// usually chained:
//
//	return r.UpdatedResponse(attrs).Send()
type Response struct {
	Status             cfn.StatusType
	Reason             string `json:",omitempty"`
	PhysicalResourceId string
	StackId            string
	RequestId          string
	LogicalResourceId  string
	NoEcho             bool        `json:",omitempty"`
	Data               interface{} `json:",omitempty"`

	Ctx context.Context `json:"-"`

	respurl string
	sent    *bool

	simulate        bool
	simulatedOutput io.Writer
}

func baseResponse(req *Request) *Response {
	if req.Ctx == nil {
		// Send relies on Ctx being set; the Lambda wrapper normally
		// fills it with the invocation context.
		req.Ctx = context.Background()
	}
	return &Response{
		Status:             cfn.StatusSuccess,      // may be overridden
		PhysicalResourceId: req.PhysicalResourceId, // may be overridden
		StackId:            req.StackId,            // must be identical
		RequestId:          req.RequestId,          // must be identical
		LogicalResourceId:  req.LogicalResourceId,  // must be identical
		respurl:            req.ResponseURL,
		sent:               &req.responseSent,
		Ctx:                req.Ctx,
		simulate:           req.simulate,
		simulatedOutput:    req.simulatedOutput,
	}
}

// Sensitive marks this response as containing values that should not
// be shown in console or API output. This is advisory only; attribute
// values can still leak through the resources that consume them.
func (resp *Response) Sensitive() *Response {
	resp.NoEcho = true
	return resp
}

// Send encodes the Response as a JSON payload and PUTs it to the URL
// provided by CloudFormation in the Request. Payloads over
// MaxResponseSize are rejected before any network call. Responses to a
// simulated request are written to its output instead.
func (resp *Response) Send() error {
	body, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("could not marshal Response: %w", err)
	}
	if len(body) > MaxResponseSize {
		return fmt.Errorf("response to %q would include payload of %d bytes, exceeds max %d", resp.respurl, len(body), MaxResponseSize)
	}
	if resp.simulate {
		if resp.simulatedOutput != nil {
			if _, err := fmt.Fprintf(resp.simulatedOutput, "%s\n", body); err != nil {
				return fmt.Errorf("could not write simulated response: %w", err)
			}
		}
		*resp.sent = true
		return nil
	}
	hreq, err := http.NewRequestWithContext(resp.Ctx, http.MethodPut, resp.respurl, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not build request object for http callback to %q: %w", resp.respurl, err)
	}
	// the presigned S3 url is signed without a content type
	hreq.Header.Set("Content-Type", "")
	hreq.ContentLength = int64(len(body))
	result, err := http.DefaultClient.Do(hreq)
	if err != nil {
		return fmt.Errorf("http callback to cloudformation at %q failed: %w", resp.respurl, err)
	}
	defer result.Body.Close()
	if result.StatusCode < 200 || result.StatusCode > 299 {
		return fmt.Errorf("http callback to %q had unexpected http status code %03d", resp.respurl, result.StatusCode)
	}
	*resp.sent = true // indicate to Request.Try() and friends that we managed to send a Response
	return nil
}
