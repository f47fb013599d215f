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

// Package table prints lists of rows, such as series or observations, as CSV
// or as aligned text.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/stockparfait/errors"
)

// Row interface that a table row representation must implement.
type Row interface {
	CSV() []string // an encoding/csv compatible row representation
}

// Table container.
//
// A typical use:
//
//   t := table.FromRows(schema.SeriesItemHeader(), page.Seriess)
//   err := t.Write(os.Stdout, table.Params{CSV: true})
type Table struct {
	Header []string // optional, may be nil
	Rows   []Row
}

// NewTable creates a new Table instance with optional column headers. It is
// expected that, when present, the number of column headers is the same as the
// number of elements in each Row.
func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

// FromRows creates a Table from a slice of any Row type.
func FromRows[R Row](header []string, rows []R) *Table {
	t := NewTable(header...)
	for _, r := range rows {
		t.AddRow(r)
	}
	return t
}

// AddRow adds one or more rows to the table.
func (t *Table) AddRow(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// Params are parameters for pretty-printing or CSV export of Table data.
type Params struct {
	Rows        int  // max. number of rows to write; 0 = unlimited (default)
	NoHeader    bool // whether to print the header, default - yes
	CSV         bool // for Write: CSV instead of text
	MaxColWidth int  // for text only; 0 = unlimited, otherwise must be >= 4
	LeftAlign   bool // for text only; columns are right-aligned by default
}

// rows returns the rows to print, including the header.
func (t *Table) rows(p Params) [][]string {
	var res [][]string
	if !p.NoHeader && len(t.Header) > 0 {
		res = append(res, t.Header)
	}
	for i, r := range t.Rows {
		if p.Rows > 0 && i >= p.Rows {
			break
		}
		res = append(res, r.CSV())
	}
	return res
}

// Write the table to w in the format specified by p.
func (t *Table) Write(w io.Writer, p Params) error {
	if p.CSV {
		return t.WriteCSV(w, p)
	}
	return t.WriteText(w, p)
}

// WriteCSV writes the entire table to w in CSV format.
func (t *Table) WriteCSV(w io.Writer, p Params) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(t.rows(p)); err != nil {
		return errors.Annotate(err, "failed to write CSV")
	}
	return nil
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width-2]) + ".."
}

// WriteText writes the table as a text formatted for ease of reading.
func (t *Table) WriteText(w io.Writer, p Params) error {
	if p.MaxColWidth != 0 && p.MaxColWidth < 4 {
		return errors.Reason("MaxColWidth [%d] must be 0 or >= 4", p.MaxColWidth)
	}
	rows := t.rows(p)
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0]))
	for i, row := range rows {
		if len(row) != len(widths) {
			return errors.Reason("row %d size [%d] != expected size [%d]",
				i, len(row), len(widths))
		}
		for j, s := range row {
			if l := utf8.RuneCountInString(s); widths[j] < l {
				widths[j] = l
			}
		}
	}
	if p.MaxColWidth > 0 {
		for j := range widths {
			if widths[j] > p.MaxColWidth {
				widths[j] = p.MaxColWidth
			}
		}
	}
	format := "%[2]*[1]s"
	if p.LeftAlign {
		format = "%-[2]*[1]s"
	}
	write := func(row []string) error {
		cells := make([]string, len(row))
		for j, s := range row {
			cells[j] = fmt.Sprintf(format, truncate(s, widths[j]), widths[j])
		}
		line := strings.Join(cells, " | ")
		if p.LeftAlign {
			line = strings.TrimRight(line, " ")
		}
		_, err := fmt.Fprintln(w, line)
		return err
	}

	start := 0
	if !p.NoHeader && len(t.Header) > 0 {
		dashes := make([]string, len(widths))
		for j, n := range widths {
			dashes[j] = strings.Repeat("-", n)
		}
		if err := write(rows[0]); err != nil {
			return errors.Annotate(err, "failed to write header")
		}
		if err := write(dashes); err != nil {
			return errors.Annotate(err, "failed to write header separator")
		}
		start = 1
	}
	for _, row := range rows[start:] {
		if err := write(row); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	return nil
}
