// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"os"

	"github.com/stockparfait/fred/message"
	"github.com/stockparfait/logging"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

// APIKeyEnv is the environment variable conventionally holding the API key.
const APIKeyEnv = "FRED_API_KEY"

// URL is the default base URL of the server. It may be overwritten in tests
// before creating a new client.
var URL = "https://api.stlouisfed.org"

// Client for querying FRED endpoints.
type Client struct {
	baseURL   string    // the base URL of the server
	apiKey    string    // your very own secret key
	transport Transport // performs the GET requests
}

// NewClient creates a new client with the default base URL and transport.
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL:   URL,
		apiKey:    apiKey,
		transport: HTTPTransport{},
	}
}

// WithBaseURL returns a copy of the client using a different server.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c2 := *c
	c2.baseURL = baseURL
	return &c2
}

// WithTransport returns a copy of the client using a different transport.
func (c *Client) WithTransport(t Transport) *Client {
	c2 := *c
	c2.transport = t
	return &c2
}

// BaseURL of the server the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// UseClient creates a new client based on the API key and injects it into the
// context.
func UseClient(ctx context.Context, apiKey string) context.Context {
	return UseCustomClient(ctx, NewClient(apiKey))
}

// UseCustomClient injects an existing client into the context.
func UseCustomClient(ctx context.Context, c *Client) context.Context {
	return context.WithValue(ctx, clientContextKey, c)
}

// APIKeyFromEnv looks up the API key with the lookup function, normally
// os.LookupEnv.
func APIKeyFromEnv(lookup func(string) (string, bool)) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	key, ok := lookup(APIKeyEnv)
	if !ok || key == "" {
		return "", &ConfigurationError{Message: APIKeyEnv + " is not set"}
	}
	return key, nil
}

// UseClientFromEnv injects a new client with the API key from the environment.
func UseClientFromEnv(ctx context.Context, lookup func(string) (string, bool)) (context.Context, error) {
	key, err := APIKeyFromEnv(lookup)
	if err != nil {
		return ctx, err
	}
	return UseClient(ctx, key), nil
}

// fetch builds the URL for the request and returns the raw response body.
func (c *Client) fetch(ctx context.Context, r *Request) ([]byte, error) {
	uri, err := r.URL(c.baseURL, c.apiKey)
	if err != nil {
		return nil, err
	}
	logging.Debugf(ctx, "FRED: GET %s with %d parameters", r.Path, len(r.Params))
	body, err := c.transport.Get(ctx, uri)
	if err != nil {
		if te, ok := err.(*TransportError); ok {
			return nil, te
		}
		return nil, newTransportError(uri, c.apiKey, err)
	}
	return body, nil
}

// Do executes the request and decodes the response into v.
func (c *Client) Do(ctx context.Context, r *Request, v message.Message) error {
	body, err := c.fetch(ctx, r)
	if err != nil {
		return err
	}
	return Decode(body, v)
}

// Raw executes the request and returns the response body as a JSON string
// after checking that it is not an error report.
func (c *Client) Raw(ctx context.Context, r *Request) (string, error) {
	body, err := c.fetch(ctx, r)
	if err != nil {
		return "", err
	}
	if _, err := CheckBody(body); err != nil {
		return "", err
	}
	return string(body), nil
}
