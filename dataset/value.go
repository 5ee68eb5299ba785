// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Kind identifies the JSON type of a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value *Value
}

// Value is a decoded JSON value. Objects keep their members in document
// order, which matters wherever findings depend on iteration order.
type Value struct {
	Kind    Kind
	Boolean bool
	Num     json.Number
	Text    string
	Items   []*Value
	Members []Member
}

// Decode parses a single JSON document. A key repeated inside one object
// keeps the position of its first occurrence and the value of its last.
func Decode(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, errors.New("invalid JSON: trailing data")
		}
		return nil, err
	}

	return v, nil
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", rune(t))
	case bool:
		return &Value{Kind: Bool, Boolean: t}, nil
	case json.Number:
		return &Value{Kind: Number, Num: t}, nil
	case string:
		return &Value{Kind: String, Text: t}, nil
	case nil:
		return &Value{Kind: Null}, nil
	}

	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (*Value, error) {
	v := &Value{Kind: Object}
	index := make(map[string]int)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}

		member, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		if i, seen := index[key]; seen {
			v.Members[i].Value = member
			continue
		}
		index[key] = len(v.Members)
		v.Members = append(v.Members, Member{Key: key, Value: member})
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return v, nil
}

func decodeArray(dec *json.Decoder) (*Value, error) {
	v := &Value{Kind: Array}

	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		v.Items = append(v.Items, item)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return v, nil
}

// Get returns the member value stored under key. It reports false when v
// is not an object or has no such member.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.Kind != Object {
		return nil, false
	}
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Has reports whether v is an object holding key.
func (v *Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Keys returns the member keys of an object in document order.
func (v *Value) Keys() []string {
	if v == nil || v.Kind != Object {
		return nil
	}
	keys := make([]string, 0, len(v.Members))
	for _, m := range v.Members {
		keys = append(keys, m.Key)
	}
	return keys
}

// IsObject reports whether v is a JSON object.
func (v *Value) IsObject() bool {
	return v != nil && v.Kind == Object
}

// IsString reports whether v is a JSON string.
func (v *Value) IsString() bool {
	return v != nil && v.Kind == String
}

// IsInteger reports whether v is a number literal with neither a
// fraction nor an exponent.
func (v *Value) IsInteger() bool {
	if v == nil || v.Kind != Number {
		return false
	}
	return !strings.ContainsAny(v.Num.String(), ".eE")
}
