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

// Package api is a client for the FRED (Federal Reserve Economic Data) REST
// API, https://fred.stlouisfed.org/docs/api/fred/ .
//
// Every endpoint has a function which builds the request URL, performs a
// single blocking GET and decodes the JSON response into a type from the
// schema package. The client carrying the API key is stored in the context:
//
//   ctx = api.UseClient(ctx, apiKey)
//   tags, err := api.SeriesTags(ctx, "JPNCPIALLMINMEI")
//
// Failures are reported as one of the four error types: ConfigurationError,
// TransportError, APIError or DecodeError.
package api
