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
	"encoding/json"
	"fmt"
	"time"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fred/message"
)

// parseTime accepts the date and timestamp formats used by FRED, such as
// "2013-08-14" for dates and "2013-07-31 09:26:16-05" for last updates.
func parseTime(s string) (time.Time, error) {
	if s == "" || s == "0000-00-00" {
		return time.Time{}, nil
	}
	formats := []string{
		"2006-01-02 15:04:05-07",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02",
	}
	var err error
	for _, f := range formats {
		var tm time.Time
		if tm, err = time.Parse(f, s); err == nil {
			return tm, nil
		}
	}
	return time.Time{}, err
}

// Date records a calendar date as year, month and day. The zero value is an
// unset date.
type Date struct {
	YearVal  uint16
	MonthVal uint8
	DayVal   uint8
}

var _ json.Marshaler = Date{}
var _ json.Unmarshaler = &Date{}
var _ message.Message = &Date{}

// NewDate is the constructor for Date.
func NewDate(year uint16, month, day uint8) Date {
	return Date{year, month, day}
}

// NewDateFromTime creates a Date instance from a time.Time value.
func NewDateFromTime(t time.Time) Date {
	return Date{
		YearVal:  uint16(t.Year()),
		MonthVal: uint8(t.Month()),
		DayVal:   uint8(t.Day()),
	}
}

// NewDateFromString creates a Date instance from a string representation.
func NewDateFromString(s string) (Date, error) {
	t, err := parseTime(s)
	if err != nil {
		return Date{}, errors.Annotate(err, "failed to parse a Date string: '%s'", s)
	}
	if t.IsZero() {
		return Date{}, nil
	}
	return NewDateFromTime(t), nil
}

func (d Date) Year() uint16 { return d.YearVal }
func (d Date) Month() uint8 { return d.MonthVal }
func (d Date) Day() uint8   { return d.DayVal }

// String representation of the value, as used in FRED queries.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Annotate(err, "Date JSON must be a string")
	}
	date, err := NewDateFromString(s)
	if err != nil {
		return errors.Annotate(err, "failed to parse Date string")
	}
	*d = date
	return nil
}

// InitMessage implements message.Message.
func (d *Date) InitMessage(js any) error {
	switch s := js.(type) {
	case string:
		date, err := NewDateFromString(s)
		if err != nil {
			return errors.Annotate(err, "failed to parse Date string")
		}
		*d = date
	case map[string]any:
		if len(s) != 0 {
			return errors.Reason("expected a string or {}, got %v", js)
		}
		*d = Date{}
	default:
		return errors.Reason("expected a string or {}, got %v", js)
	}
	return nil
}

// ToTime converts Date to Time in UTC.
func (d Date) ToTime() time.Time {
	return time.Date(int(d.Year()), time.Month(d.Month()), int(d.Day()), 0, 0, 0, 0, time.UTC)
}

// Before checks if d is strictly before d2.
func (d Date) Before(d2 Date) bool {
	return d.ToTime().Before(d2.ToTime())
}

// After checks if d is strictly after d2.
func (d Date) After(d2 Date) bool {
	return d.ToTime().After(d2.ToTime())
}

// IsZero checks if the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// InRange checks that d is within the inclusive range [start..end]. A zero
// start or end leaves the range unbounded on that side.
func (d Date) InRange(start, end Date) bool {
	if !start.IsZero() && d.Before(start) {
		return false
	}
	if !end.IsZero() && d.After(end) {
		return false
	}
	return true
}

// ID is an identifier which FRED sends either as a number or as a string,
// depending on the endpoint. It is kept in its string form.
type ID string

var _ message.Message = (*ID)(nil)

// InitMessage implements message.Message.
func (id *ID) InitMessage(js any) error {
	switch v := js.(type) {
	case string:
		*id = ID(v)
	case float64:
		*id = ID(fmt.Sprintf("%d", int64(v)))
	case map[string]any:
		if len(v) != 0 {
			return errors.Reason("expected a string or a number for ID, got %v", js)
		}
		*id = ""
	default:
		return errors.Reason("expected a string or a number for ID, got %v", js)
	}
	return nil
}
