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

// Package message initializes Go structs from generic JSON values with strict
// checks: required fields, default values, string choices and, optionally,
// rejection of unrecognized fields.
package message

import (
	"encoding/json"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/stockparfait/errors"
)

// Message is a JSON object represented by a Go struct, typically a response
// schema or a configuration.
//
// It is intended to be implemented by struct pointers, e.g.:
//
//   type Page struct {
//     Count  int `json:"count" required:"true"`
//     Offset int `json:"offset" default:"0"`
//   }
//
//   type Tags struct {
//     Page                    // embedded fields are flattened
//     Tags []Tag `json:"tags" required:"true"`
//     Note *string `json:"note"` // optional, nil when absent or null
//   }
//
//   func (t *Tags) InitMessage(js any) error {
//     return message.Init(t, js)
//   }
type Message interface {
	// InitMessage converts a generic JSON value read by the encoding/json
	// package into the specific message. It checks for required fields, sets
	// default values of optional fields, and validates value types.
	//
	// Nested Messages are initialized by calling their InitMessage method.
	InitMessage(js any) error
}

// Options modify the behavior of InitWithOptions.
type Options struct {
	// AllowUnknown accepts JSON keys that do not correspond to any struct field.
	// By default such keys are an error.
	AllowUnknown bool
}

// rMessage is the reflected Message type. Since it's an interface, we cannot
// obtain it directly, thus have to create a pointer to it.
var rMessage = reflect.TypeOf((*Message)(nil)).Elem()

func convertToMessage(jv any, t reflect.Type) (reflect.Value, error) {
	var Nil reflect.Value
	if t.Kind() != reflect.Ptr {
		return Nil, errors.Reason(
			"type %s implements Message but is not a pointer", t.Name())
	}
	ptr := reflect.New(t.Elem())
	m := ptr.Interface().(Message)
	if err := m.InitMessage(jv); err != nil {
		return Nil, errors.Annotate(err, "%s.InitMessage() failed", t.Elem().Name())
	}
	return ptr, nil
}

// convertToType recursively converts a raw JSON value to basic types, slices
// and map[string]* of the target type. Types implementing Message (directly or
// through a pointer) are initialized with their InitMessage() method. A nil jv
// yields the zero value, or the default Message value for non-pointer
// Messages.
func convertToType(jv any, t reflect.Type) (reflect.Value, error) {
	var Nil reflect.Value
	if t.Implements(rMessage) {
		if jv == nil {
			return reflect.Zero(t), nil
		}
		ptr, err := convertToMessage(jv, t)
		if err != nil {
			return Nil, errors.Annotate(err, "failed to parse Message %s", t.Name())
		}
		return ptr, nil
	}
	if ptrTp := reflect.PtrTo(t); ptrTp.Implements(rMessage) {
		if jv == nil {
			jv = make(map[string]any) // force default values for t
		}
		ptr, err := convertToMessage(jv, ptrTp)
		if err != nil {
			return Nil, errors.Annotate(err, "failed to parse Message %s", t.Name())
		}
		return reflect.Indirect(ptr), nil
	}
	if jv == nil {
		return reflect.Zero(t), nil
	}
	switch t.Kind() {
	case reflect.Ptr:
		v, err := convertToType(jv, t.Elem())
		if err != nil {
			return Nil, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(v)
		return ptr, nil

	case reflect.Bool:
		v2, ok := jv.(bool)
		if !ok {
			return Nil, errors.Reason("not a bool type: %v", jv)
		}
		return reflect.ValueOf(v2).Convert(t), nil

	case reflect.Int, reflect.Int64:
		v2, ok := jv.(float64)
		if !ok {
			return Nil, errors.Reason("not a numeric type: %v", jv)
		}
		if v2 != float64(int64(v2)) {
			return Nil, errors.Reason("not an integer: %v", jv)
		}
		return reflect.ValueOf(int64(v2)).Convert(t), nil

	case reflect.Float64:
		v2, ok := jv.(float64)
		if !ok {
			return Nil, errors.Reason("not a numeric type: %v", jv)
		}
		return reflect.ValueOf(v2).Convert(t), nil

	case reflect.String:
		v2, ok := jv.(string)
		if !ok {
			return Nil, errors.Reason("not a string type: %v", jv)
		}
		return reflect.ValueOf(v2).Convert(t), nil

	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return Nil, errors.Reason(
				"map[%s] is not supported", t.Key().Kind().String())
		}
		v2, ok := jv.(map[string]any)
		if !ok {
			return Nil, errors.Reason("not a map[string] type: %v", jv)
		}
		res := reflect.MakeMapWithSize(t, len(v2))
		for k, v := range v2 {
			el, err := convertToType(v, t.Elem())
			if err != nil {
				return Nil, errors.Annotate(err, "map key '%s'", k)
			}
			res.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), el)
		}
		return res, nil

	case reflect.Slice:
		v2, ok := jv.([]any)
		if !ok {
			return Nil, errors.Reason("not a slice type: %v", jv)
		}
		res := reflect.MakeSlice(t, len(v2), len(v2))
		for i, v := range v2 {
			el, err := convertToType(v, t.Elem())
			if err != nil {
				return Nil, errors.Annotate(err, "element %d", i)
			}
			res.Index(i).Set(el)
		}
		return res, nil

	case reflect.Interface:
		if t.NumMethod() == 0 {
			return reflect.ValueOf(&jv).Elem(), nil
		}
	}
	return Nil, errors.Reason("unsupported type: %s", t.String())
}

// fromString attempts to convert a string s to the type t. This is used to
// extract default values from struct tags.
func fromString(s string, t reflect.Type) (reflect.Value, error) {
	var Nil reflect.Value
	switch t.Kind() {
	case reflect.Ptr:
		v, err := fromString(s, t.Elem())
		if err != nil {
			return Nil, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(v)
		return ptr, nil
	case reflect.Bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return Nil, errors.Annotate(err, "invalid bool value: %s", s)
		}
		return reflect.ValueOf(v).Convert(t), nil
	case reflect.Int, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Nil, errors.Annotate(err, "invalid int value: %s", s)
		}
		return reflect.ValueOf(v).Convert(t), nil
	case reflect.Float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Nil, errors.Annotate(err, "invalid float64 value: %s", s)
		}
		return reflect.ValueOf(v).Convert(t), nil
	case reflect.String:
		return reflect.ValueOf(s).Convert(t), nil
	}
	return Nil, errors.Reason("type %s is not supported", t.Name())
}

// checkSet sets the value fv of a struct field f to the value v and checks that
// the value is valid.
func checkSet(f reflect.StructField, fv reflect.Value, v reflect.Value) error {
	if choices, ok := f.Tag.Lookup("choices"); ok {
		if f.Type.Kind() != reflect.String {
			return errors.Reason(
				"choices tag applied to a non-string field: %s", f.Name)
		}
		s := v.String()
		if !StringIn(s, strings.Split(choices, ",")...) {
			return errors.Reason(
				"value for %s is not in its choice list: '%s'", f.Name, s)
		}
	}
	fv.Set(v)
	return nil
}

// jsonName returns the JSON key for the struct field, and false if the field is
// not a part of the message.
func jsonName(f reflect.StructField) (string, bool) {
	firstChar, _ := utf8.DecodeRuneInString(f.Name)
	if !unicode.IsUpper(firstChar) {
		return "", false
	}
	name := f.Name
	if tag := f.Tag.Get("json"); tag != "" {
		parts := strings.Split(tag, ",")
		if parts[0] == "-" {
			return "", false
		}
		if parts[0] != "" {
			name = parts[0]
		}
	}
	return name, true
}

// isEmbedded checks if the field is an embedded struct whose fields are to be
// flattened into the parent message, as encoding/json does.
func isEmbedded(f reflect.StructField) bool {
	if !f.Anonymous || f.Type.Kind() != reflect.Struct {
		return false
	}
	tag := f.Tag.Get("json")
	return tag == "" || strings.HasPrefix(tag, ",")
}

// structInit accumulates the state of a single message initialization across
// embedded structs.
type structInit struct {
	jsMap           map[string]any
	found           map[string]struct{} // to check for unknown fields
	missingRequired []string
}

func (s *structInit) fill(rt reflect.Type, rv reflect.Value) error {
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		rfv := rv.Field(i)
		if isEmbedded(f) {
			if err := s.fill(f.Type, rfv); err != nil {
				return errors.Annotate(err, "in embedded %s", f.Name)
			}
			continue
		}
		name, ok := jsonName(f)
		if !ok {
			continue
		}
		if jv, ok := s.jsMap[name]; ok {
			s.found[name] = struct{}{}
			if jv == nil && f.Tag.Get("required") == "true" {
				return errors.Reason("required field %s is null", f.Name)
			}
			v, err := convertToType(jv, f.Type)
			if err != nil {
				return errors.Annotate(err, "error assigning field %s", f.Name)
			}
			if err := checkSet(f, rfv, v); err != nil {
				return err
			}
			continue
		}

		// No value in JSON, figure out what to do.
		if f.Tag.Get("required") == "true" {
			s.missingRequired = append(s.missingRequired, name)
			continue
		}
		if defaultVal, ok := f.Tag.Lookup("default"); ok {
			v, err := fromString(defaultVal, f.Type)
			if err != nil {
				return errors.Annotate(
					err, "error setting default value for %s", f.Name)
			}
			if err := checkSet(f, rfv, v); err != nil {
				return err
			}
			continue
		}
		// Not required and no default: still check its validity, e.g. in case
		// there is a `choices` tag.
		v, err := convertToType(nil, f.Type)
		if err != nil {
			return errors.Annotate(err, "error creating zero value for %s", f.Name)
		}
		if err := checkSet(f, rfv, v); err != nil {
			return errors.Annotate(err, "error setting zero value for %s", f.Name)
		}
	}
	return nil
}

// Init is the generic method to be used by most Message.InitMessage
// implementations. It expects m to be a struct pointer, and js to be a non-nil
// map[string]any. Unrecognized JSON keys are an error.
//
// Recognized struct tags:
// `json:"field_name" required:"true" default:"value" choices:"one,two,three"`
//
// The `json:` tag is compatible with the encoding/json package: only exported
// fields are considered part of a message, a missing json tag is equivalent to
// `json:"FieldName"`, qualifiers like `json:",omitempty"` are accepted but
// ignored, and fields of embedded structs are promoted to the parent. This
// allows the struct to be marshaled into a message-compatible JSON directly.
//
// The "choices" tag is currently supported only for string fields.
func Init(m Message, js any) error {
	return InitWithOptions(m, js, Options{})
}

// InitWithOptions is Init with explicit options.
func InitWithOptions(m Message, js any, opts Options) error {
	rt := reflect.TypeOf(m)
	if !(rt.Kind() == reflect.Ptr && rt.Elem().Kind() == reflect.Struct) {
		return errors.Reason(
			"expected Message instance to be a struct pointer, but got %s.",
			rt.String())
	}
	if js == nil {
		return errors.Reason("JSON object is nil")
	}
	jsMap, ok := js.(map[string]any)
	if !ok {
		return errors.Reason("JSON object is not a map: %v.", js)
	}
	s := structInit{jsMap: jsMap, found: make(map[string]struct{})}
	if err := s.fill(rt.Elem(), reflect.ValueOf(m).Elem()); err != nil {
		return err
	}
	if len(s.missingRequired) != 0 {
		return errors.Reason(
			"missing required fields for %s: %s",
			rt.Elem().Name(), strings.Join(s.missingRequired, ", "))
	}
	if opts.AllowUnknown {
		return nil
	}
	extraFields := []string{}
	for k := range jsMap {
		if _, ok := s.found[k]; ok {
			continue
		}
		extraFields = append(extraFields, k)
	}
	if len(extraFields) != 0 {
		return errors.Reason(
			"unsupported fields for %s: %s",
			rt.Elem().Name(), strings.Join(extraFields, ", "))
	}
	return nil
}

// FromFile reads a JSON file and initializes the message from it.
func FromFile(m Message, fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return errors.Annotate(err, "failed to read '%s'", fileName)
	}
	var js any
	if err := json.Unmarshal(data, &js); err != nil {
		return errors.Annotate(err, "failed to parse JSON in '%s'", fileName)
	}
	if err := m.InitMessage(js); err != nil {
		return errors.Annotate(err, "failed to init message from '%s'", fileName)
	}
	return nil
}

// StringIn checks that s equals one of the values.
func StringIn(s string, values ...string) bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}
