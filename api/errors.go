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
	"fmt"

	"github.com/stockparfait/errors"
)

// ErrorKind classifies the failures of API calls.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConfiguration
	KindTransport
	KindAPI
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindTransport:
		return "transport"
	case KindAPI:
		return "api"
	case KindDecode:
		return "decode"
	}
	return "unknown"
}

// ConfigurationError means the request could not be built, e.g. the API key
// is missing. No network call is made in this case.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Message
}

// TransportError is a network or HTTP level failure. Both URL and Err have the
// API key redacted.
type TransportError struct {
	URL string
	Err error
}

func newTransportError(uri, apiKey string, err error) *TransportError {
	return &TransportError{
		URL: redactKey(uri, apiKey),
		Err: errors.Reason("%s", redactKey(err.Error(), apiKey)),
	}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error for %s: %s", e.URL, e.Err.Error())
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is an error reported by FRED in the response body.
type APIError struct {
	Code    int
	Message string
	Body    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("FRED API error %d: %s", e.Code, e.Message)
}

// DecodeError means the response body does not match the expected schema.
type DecodeError struct {
	Message string
	Body    string
}

func (e *DecodeError) Error() string {
	return "failed to decode response: " + e.Message
}

// KindOf returns the kind of err, looking through wrapped errors.
func KindOf(err error) ErrorKind {
	var cfg *ConfigurationError
	var tr *TransportError
	var ae *APIError
	var de *DecodeError
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &cfg):
		return KindConfiguration
	case errors.As(err, &tr):
		return KindTransport
	case errors.As(err, &ae):
		return KindAPI
	case errors.As(err, &de):
		return KindDecode
	}
	return KindUnknown
}
