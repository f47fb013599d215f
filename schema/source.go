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
	"strconv"
)

// Source of economic data.
// See https://fred.stlouisfed.org/docs/api/fred/source.html .
type Source struct {
	ID int `json:"id" required:"true"`
	Realtime
	Name  string  `json:"name" required:"true"`
	Link  *string `json:"link,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

func (s *Source) InitMessage(js any) error { return initMessage(s, js) }

// SourceHeader is the table header matching Source.CSV().
func SourceHeader() []string {
	return []string{"ID", "Name", "Link"}
}

// CSV implements table.Row.
func (s Source) CSV() []string {
	return []string{strconv.Itoa(s.ID), s.Name, str(s.Link)}
}

// Sources is the response of the source and release/sources endpoints.
type Sources struct {
	Realtime
	Sources []Source `json:"sources" required:"true"`
}

func (s *Sources) InitMessage(js any) error { return initMessage(s, js) }

// SourcesPage is the response of the sources endpoint.
type SourcesPage struct {
	Page
	Sources []Source `json:"sources" required:"true"`
}

func (s *SourcesPage) InitMessage(js any) error { return initMessage(s, js) }
