package pushwoosh

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/i9si-sistemas/nine"
)

const (
	// DefaultHost is the Pushwoosh control panel host serving the JSON API.
	DefaultHost = "cp.pushwoosh.com"
	// DefaultBaseURL is the JSON API 1.2 root every operation path is appended to.
	DefaultBaseURL = "https://" + DefaultHost + "/json/1.2"
)

const (
	pathCreateMessage    = "/createMessage"
	pathRegisterDevice   = "/registerDevice"
	pathUnregisterDevice = "/unregisterDevice"
)

// Credentials identify the account and application requests are made for.
type Credentials struct {
	Username      string
	Password      string
	ApplicationID string
}

type Client struct {
	httpClient nine.Client
	creds      Credentials
	baseURL    string
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at another API root, e.g. a mock server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// New returns a client bound to creds. httpClient may be nil, in which case a
// fresh nine client is created for every request.
func New(httpClient nine.Client, creds Credentials, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		creds:      creds,
		baseURL:    DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Credentials returns the credentials the client was built with.
func (c *Client) Credentials() Credentials {
	return c.creds
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Push calls PushWithContext with a background context.
func (c *Client) Push(notifications ...Notification) (Result, error) {
	return c.PushWithContext(context.Background(), notifications...)
}

// PushWithContext sends notifications in a single createMessage request.
// The payloads keep the order they were given in.
func (c *Client) PushWithContext(ctx context.Context, notifications ...Notification) (Result, error) {
	payloads := make([]json.RawMessage, 0, len(notifications))
	for _, n := range notifications {
		raw, err := n.MarshalJSON()
		if err != nil {
			return Result{}, err
		}
		payloads = append(payloads, raw)
	}
	return c.call(ctx, pathCreateMessage, map[string]any{
		"notifications": payloads,
	}, StatusOK)
}

// RegisterOptions are the optional parameters of a device registration.
type RegisterOptions struct {
	Language Optional[string] // defaults to "en"
	Timezone Optional[int]    // offset from UTC in seconds
}

// Register calls RegisterWithContext with a background context.
func (c *Client) Register(deviceType DeviceType, deviceID, hwID string, options *RegisterOptions) (Result, error) {
	return c.RegisterWithContext(context.Background(), deviceType, deviceID, hwID, options)
}

// RegisterWithContext registers a device push token with the application.
// Pushwoosh acknowledges a registration with status code 103; anything else,
// including 200, is reported as a *ServiceError.
func (c *Client) RegisterWithContext(
	ctx context.Context,
	deviceType DeviceType,
	deviceID,
	hwID string,
	options *RegisterOptions,
) (Result, error) {
	if options == nil {
		options = &RegisterOptions{}
	}
	fields := map[string]any{
		"device_id":   deviceID,
		"hw_id":       hwID,
		"language":    options.Language.Or(DefaultLanguage),
		"device_type": deviceType,
	}
	if tz, ok := options.Timezone.Get(); ok {
		fields["timezone"] = tz
	}
	return c.call(ctx, pathRegisterDevice, fields, StatusRegistered)
}

// Unregister calls UnregisterWithContext with a background context.
func (c *Client) Unregister(deviceType DeviceType, deviceID string) (Result, error) {
	return c.UnregisterWithContext(context.Background(), deviceType, deviceID)
}

// UnregisterWithContext removes a device push token from the application.
func (c *Client) UnregisterWithContext(ctx context.Context, deviceType DeviceType, deviceID string) (Result, error) {
	return c.call(ctx, pathUnregisterDevice, map[string]any{
		"device_id":   deviceID,
		"device_type": deviceType,
	}, StatusOK)
}

// call encodes fields into an envelope, posts it to path and checks the
// response status code against want.
func (c *Client) call(ctx context.Context, path string, fields map[string]any, want int) (Result, error) {
	body, err := encodeRequest(c.creds, fields)
	if err != nil {
		return Result{}, err
	}

	_, raw, err := c.post(ctx, path, body)
	if err != nil {
		return Result{}, err
	}

	res, err := decodeResponse(raw)
	if err != nil {
		return Result{}, err
	}
	if res.StatusCode != want {
		return res, &ServiceError{Code: res.StatusCode, Message: res.StatusMessage}
	}
	return res, nil
}
