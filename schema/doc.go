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

// Package schema defines the typed responses of the FRED API.
//
// Official documentation is at https://fred.stlouisfed.org/docs/api/fred/ .
//
// Every response is a JSON object. Most of them share the same envelope: the
// real-time period of the query, and for list endpoints the ordering and the
// count/offset/limit of the returned page. The envelope is modeled by the
// Realtime and Page structs, which are embedded in the specific responses.
//
// All the types implement message.Message and are initialized strictly: a
// missing required field or a value of the wrong type is an error, while
// fields unknown to this package are ignored so that additions to the API do
// not break existing clients.
//
// Values are created by decoding a single response and are never modified
// afterwards. Methods deriving new values, such as the SeriesItems filters,
// always return fresh copies.
package schema
