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
	"fmt"
	"strconv"
)

// str returns the optional string value, or "" if it is absent.
func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Category of economic data.
// See https://fred.stlouisfed.org/docs/api/fred/category.html .
type Category struct {
	ID       int     `json:"id" required:"true"`
	Name     string  `json:"name" required:"true"`
	ParentID int     `json:"parent_id" required:"true"`
	Notes    *string `json:"notes,omitempty"`
}

func (c *Category) InitMessage(js any) error { return initMessage(c, js) }

// CategoryHeader is the table header matching Category.CSV().
func CategoryHeader() []string {
	return []string{"ID", "Name", "Parent ID"}
}

// CSV implements table.Row.
func (c Category) CSV() []string {
	return []string{strconv.Itoa(c.ID), c.Name, strconv.Itoa(c.ParentID)}
}

// String prints a short description of the category.
func (c Category) String() string {
	return fmt.Sprintf("%d: %s (parent %d)", c.ID, c.Name, c.ParentID)
}

// Categories is the response of the category, category/children,
// category/related and series/categories endpoints.
type Categories struct {
	Categories []Category `json:"categories" required:"true"`
}

func (c *Categories) InitMessage(js any) error { return initMessage(c, js) }
