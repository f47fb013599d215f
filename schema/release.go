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

// Release of economic data.
// See https://fred.stlouisfed.org/docs/api/fred/release.html .
type Release struct {
	ID int `json:"id" required:"true"`
	Realtime
	Name         string  `json:"name" required:"true"`
	PressRelease bool    `json:"press_release" required:"true"`
	Link         *string `json:"link,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *Release) InitMessage(js any) error { return initMessage(r, js) }

// ReleaseHeader is the table header matching Release.CSV().
func ReleaseHeader() []string {
	return []string{"ID", "Name", "Press Release", "Link"}
}

// CSV implements table.Row.
func (r Release) CSV() []string {
	press := "FALSE"
	if r.PressRelease {
		press = "TRUE"
	}
	return []string{strconv.Itoa(r.ID), r.Name, press, str(r.Link)}
}

// Releases is the response of the release and series/release endpoints.
type Releases struct {
	Realtime
	Releases []Release `json:"releases" required:"true"`
}

func (r *Releases) InitMessage(js any) error { return initMessage(r, js) }

// ReleasesPage is the response of the releases and source/releases endpoints.
type ReleasesPage struct {
	Page
	Releases []Release `json:"releases" required:"true"`
}

func (r *ReleasesPage) InitMessage(js any) error { return initMessage(r, js) }

// ReleaseDate is the date of a release. The release name is only present in
// the releases/dates response.
type ReleaseDate struct {
	ReleaseID   int     `json:"release_id" required:"true"`
	ReleaseName *string `json:"release_name,omitempty"`
	Date        string  `json:"date" required:"true"`
}

func (r *ReleaseDate) InitMessage(js any) error { return initMessage(r, js) }

// ReleaseDatesPage is the response of the releases/dates and release/dates
// endpoints.
type ReleaseDatesPage struct {
	Page
	ReleaseDates []ReleaseDate `json:"release_dates" required:"true"`
}

func (r *ReleaseDatesPage) InitMessage(js any) error { return initMessage(r, js) }

// ReleaseElement is a node in the tree of release tables. Sections have no
// series ID.
type ReleaseElement struct {
	ElementID int              `json:"element_id" required:"true"`
	ReleaseID ID               `json:"release_id" required:"true"`
	SeriesID  *string          `json:"series_id,omitempty"`
	ParentID  ID               `json:"parent_id" required:"true"`
	Line      string           `json:"line" required:"true"`
	Type      string           `json:"type" required:"true"`
	Name      string           `json:"name" required:"true"`
	Level     string           `json:"level" required:"true"`
	Children  []ReleaseElement `json:"children" required:"true"`
}

func (e *ReleaseElement) InitMessage(js any) error { return initMessage(e, js) }

// ReleaseTables is the response of the release/tables endpoint. Name and
// ElementID are set when the query requested a specific element.
// See https://fred.stlouisfed.org/docs/api/fred/release_tables.html .
type ReleaseTables struct {
	Name      *string                   `json:"name,omitempty"`
	ElementID *int                      `json:"element_id,omitempty"`
	ReleaseID ID                        `json:"release_id" required:"true"`
	Elements  map[string]ReleaseElement `json:"elements" required:"true"`
}

func (r *ReleaseTables) InitMessage(js any) error { return initMessage(r, js) }
