package pushwoosh

import (
	"bytes"
	"context"
	"io"

	"github.com/i9si-sistemas/nine"
	nineclient "github.com/i9si-sistemas/nine/pkg/client"
)

// post sends body to baseURL+path and returns the HTTP status and the full
// response body. Any failure before the body is read is a *TransportError.
//
// Every request carries "Connection: close", so net/http opens a new TLS
// connection per call and never returns it to the keep-alive pool.
func (c *Client) post(ctx context.Context, path string, body []byte) (int, []byte, error) {
	url := c.baseURL + path
	if err := ctx.Err(); err != nil {
		return 0, nil, &TransportError{URL: url, Err: err}
	}

	httpClient := c.httpClient
	if httpClient == nil {
		httpClient = nine.New(ctx)
	}
	resp, err := httpClient.Post(url, &nineclient.Options{
		Body: bytes.NewBuffer(body),
		Headers: []nineclient.Header{
			{Data: nineclient.Data{Key: "Content-Type", Value: "application/json"}},
			{Data: nineclient.Data{Key: "Connection", Value: "close"}},
		},
	})
	if err != nil {
		return 0, nil, &TransportError{URL: url, Err: err}
	}
	if resp.Body == nil {
		return resp.StatusCode, nil, nil
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &TransportError{URL: url, Err: err}
	}
	return resp.StatusCode, raw, nil
}
