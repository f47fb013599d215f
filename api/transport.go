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
	"io"
	"net/http"
	"strings"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
)

const redacted = "REDACTED"

// Transport performs a GET request and returns the response body.
type Transport interface {
	Get(ctx context.Context, uri string) ([]byte, error)
}

// HTTPTransport is the default Transport. It uses the HTTP client from the
// context (see fetch.UseClient), and retries 5xx responses with Params.
type HTTPTransport struct {
	Params *fetch.Params // default: fetch.NewParams()
}

var _ Transport = HTTPTransport{}

// getOnce performs a single GET. A 2xx body, or a non-2xx body carrying a FRED
// error object, is returned for decoding. Other 5xx responses are retriable.
func getOnce(ctx context.Context, client *http.Client, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", uri, nil)
	if err != nil {
		return nil, errors.Annotate(err, "failed to create HTTP request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Annotate(err, "failed to GET URL")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Annotate(err, "failed to read response body")
	}
	if fetch.ResponseOK(resp) {
		return body, nil
	}
	if _, ok := probeAPIError(body); ok {
		return body, nil
	}
	err = errors.Reason("HTTP status %s", resp.Status)
	if fetch.ResponseRetriable(resp) {
		return nil, fetch.NewRetriableError(err)
	}
	return nil, err
}

// Get implements Transport.
func (t HTTPTransport) Get(ctx context.Context, uri string) ([]byte, error) {
	client := http.DefaultClient
	if c := fetch.GetClient(ctx); c != nil {
		client = c
	}
	params := t.Params
	if params == nil {
		params = fetch.NewParams()
	}
	var body []byte
	err := fetch.Retry(ctx, params, func(int) error {
		var err error
		body, err = getOnce(ctx, client, uri)
		return err
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

// redactKey hides the API key in the URL for logs and error messages.
func redactKey(s, apiKey string) string {
	if apiKey == "" {
		return s
	}
	return strings.ReplaceAll(s, "api_key="+apiKey, "api_key="+redacted)
}
