package defaults

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Set assigns the values found in `default` struct tags to the fields of
// the struct pointed to by value. Nested structs are handled recursively,
// string slices take a comma separated list.
func Set(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("value should be a pointer")
	}
	if rv.Elem().Kind() != reflect.Struct {
		return errors.New("value should be struct type")
	}
	return structDefaults(rv.Elem())
}

func structDefaults(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := structDefaults(field); err != nil {
				return err
			}
			continue
		}

		tag, ok := t.Field(i).Tag.Lookup("default")
		if !ok {
			continue
		}

		def, err := parseDefault(field.Type(), tag)
		if err != nil {
			return fmt.Errorf("could not set default of %s: %w", t.Field(i).Name, err)
		}
		field.Set(def)
	}
	return nil
}

// parseDefault converts the tag text into a value assignable to a field of
// type t.
func parseDefault(t reflect.Type, data string) (reflect.Value, error) {
	data = strings.TrimSpace(data)
	v := reflect.New(t).Elem()

	switch t.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(data)
		if err != nil {
			return reflect.Zero(t), err
		}
		v.SetBool(b)
	case reflect.String:
		v.SetString(data)
	case reflect.Slice:
		if t.Elem().Kind() != reflect.String {
			return reflect.Zero(t), fmt.Errorf("unsupported slice type: %s", t)
		}
		var items []string
		if data != "" {
			for _, item := range strings.Split(data, ",") {
				items = append(items, strings.TrimSpace(item))
			}
		}
		s := reflect.MakeSlice(t, 0, len(items))
		for _, item := range items {
			s = reflect.Append(s, reflect.ValueOf(item).Convert(t.Elem()))
		}
		v.Set(s)
	default:
		return reflect.Zero(t), fmt.Errorf("unimplemented struct field type: %s", t.Kind())
	}

	return v, nil
}
