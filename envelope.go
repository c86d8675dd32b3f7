package pushwoosh

import (
	"encoding/json"
	"fmt"
)

// Status codes Pushwoosh reports in the response envelope.
const (
	StatusOK         = 200
	StatusRegistered = 103
)

// Result is the status part of a response envelope.
type Result struct {
	StatusCode    int
	StatusMessage string
	// Response is the raw "response" object, if the API sent one.
	Response json.RawMessage
}

// encodeRequest wraps fields in {"request": {...}} together with the
// application id and account credentials.
func encodeRequest(creds Credentials, fields map[string]any) ([]byte, error) {
	request := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		request[k] = v
	}
	request["application"] = creds.ApplicationID
	request["username"] = creds.Username
	request["password"] = creds.Password

	body, err := json.Marshal(map[string]any{"request": request})
	if err != nil {
		return nil, fmt.Errorf("pushwoosh: encode request: %w", err)
	}
	return body, nil
}

func decodeResponse(body []byte) (Result, error) {
	var envelope struct {
		StatusCode    *int            `json:"status_code"`
		StatusMessage *string         `json:"status_message"`
		Response      json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Result{}, &ParseError{Body: body, Err: err}
	}
	if envelope.StatusCode == nil {
		return Result{}, &ParseError{Body: body, Err: fmt.Errorf("status_code: %w", ErrMissingField)}
	}
	if envelope.StatusMessage == nil {
		return Result{}, &ParseError{Body: body, Err: fmt.Errorf("status_message: %w", ErrMissingField)}
	}
	return Result{
		StatusCode:    *envelope.StatusCode,
		StatusMessage: *envelope.StatusMessage,
		Response:      envelope.Response,
	}, nil
}
