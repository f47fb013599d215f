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

package schema

import (
	"github.com/stockparfait/fred/message"
)

// initMessage initializes a response type from JSON, tolerating fields that
// are not declared in the Go struct.
func initMessage(m message.Message, js any) error {
	return message.InitWithOptions(m, js, message.Options{AllowUnknown: true})
}

// Realtime is the real-time period of a response or an item, as
// YYYY-MM-DD strings.
type Realtime struct {
	RealtimeStart string `json:"realtime_start" required:"true"`
	RealtimeEnd   string `json:"realtime_end" required:"true"`
}

// Page is the envelope shared by the list responses: the real-time period,
// the ordering and the position of the returned page in the full result.
type Page struct {
	Realtime
	OrderBy   string `json:"order_by" required:"true"`
	SortOrder string `json:"sort_order" required:"true"`
	Count     int    `json:"count" required:"true"`
	Offset    int    `json:"offset" required:"true"`
	Limit     int    `json:"limit" required:"true"`
}
