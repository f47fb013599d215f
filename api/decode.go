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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/stockparfait/fred/message"
)

// errorObject is the body FRED sends instead of the requested data, e.g.
//
//   {"error_code":400,"error_message":"Bad Request. Variable api_key is not set."}
type errorObject struct {
	Code    int    `json:"error_code" required:"true"`
	Message string `json:"error_message"`
}

func (e *errorObject) InitMessage(js any) error {
	return message.InitWithOptions(e, js, message.Options{AllowUnknown: true})
}

var errorCodeKey = []byte(`"error_code"`)

func firstLine(body []byte) []byte {
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		return body[:i]
	}
	return body
}

// probeAPIError checks whether the first line of the body alone is a FRED
// error object.
func probeAPIError(body []byte) (*APIError, bool) {
	line := firstLine(body)
	if !bytes.Contains(line, errorCodeKey) {
		return nil, false
	}
	var js any
	if err := json.Unmarshal(line, &js); err != nil {
		return nil, false
	}
	return asAPIError(js, body)
}

// asAPIError converts a parsed top-level object with an "error_code" key into
// an APIError.
func asAPIError(js any, body []byte) (*APIError, bool) {
	m, ok := js.(map[string]any)
	if !ok {
		return nil, false
	}
	code, ok := m["error_code"]
	if !ok {
		return nil, false
	}
	var eo errorObject
	if err := eo.InitMessage(m); err != nil {
		// The key is there, but the object is malformed. It's still an error
		// report rather than data.
		return &APIError{Message: fmt.Sprintf("error_code=%v", code), Body: string(body)}, true
	}
	return &APIError{Code: eo.Code, Message: eo.Message, Body: string(body)}, true
}

// CheckBody parses the body as JSON and verifies it's not a FRED error object.
// It returns the generic JSON value.
func CheckBody(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &DecodeError{Message: "empty response body", Body: string(body)}
	}
	sniffed := bytes.Contains(firstLine(body), errorCodeKey)
	if sniffed {
		if ae, ok := probeAPIError(body); ok {
			return nil, ae
		}
	}
	var js any
	if err := json.Unmarshal(body, &js); err != nil {
		if sniffed {
			return nil, &APIError{Message: "malformed error response", Body: string(body)}
		}
		return nil, &DecodeError{Message: err.Error(), Body: string(body)}
	}
	if ae, ok := asAPIError(js, body); ok {
		return nil, ae
	}
	return js, nil
}

// Decode the response body into v, or return one of APIError or DecodeError.
// On error v may be partially initialized and must not be used.
func Decode(body []byte, v message.Message) error {
	js, err := CheckBody(body)
	if err != nil {
		return err
	}
	if err := v.InitMessage(js); err != nil {
		return &DecodeError{Message: err.Error(), Body: string(body)}
	}
	return nil
}
