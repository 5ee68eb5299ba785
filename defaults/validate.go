package defaults

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
)

var (
	oneofRegex = regexp.MustCompile(`^oneof:\{(.*)\}$`)
	eachRegex  = regexp.MustCompile(`^each:(.+)$`)
)

// Validate checks each field of value against its `validate` struct tag and
// returns the first violation found.
func Validate(value any) error {
	v := reflect.Indirect(reflect.ValueOf(value))
	if v.Kind() != reflect.Struct {
		return nil
	}
	return validateStruct(v)
}

func validateStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		name := t.Field(i).Name

		if field.Kind() == reflect.Struct {
			if err := validateStruct(field); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			continue
		}

		tag, ok := t.Field(i).Tag.Lookup("validate")
		if !ok {
			continue
		}
		if err := validate(tag, name, field); err != nil {
			return err
		}
	}
	return nil
}

func validate(validation, fieldName string, v reflect.Value) error {
	switch validation {
	case "notempty":
		switch v.Kind() {
		case reflect.String, reflect.Slice, reflect.Map:
			if v.Len() == 0 {
				return fmt.Errorf("%s is empty", fieldName)
			}
		}
		return nil
	case "filename":
		s := v.String()
		if s == "" || s == "." || s == ".." || strings.ContainsAny(s, `/\`) || filepath.Base(s) != s {
			return fmt.Errorf("%s must be a plain file or directory name, got %q", fieldName, s)
		}
		return nil
	}

	if m := oneofRegex.FindStringSubmatch(validation); m != nil {
		var valids []string
		for _, s := range strings.Split(m[1], ",") {
			valids = append(valids, strings.TrimSpace(s))
		}
		if v.Kind() != reflect.String {
			return errors.New("unsupported field type for oneof validation")
		}
		for _, s := range valids {
			if v.String() == s {
				return nil
			}
		}
		return fmt.Errorf("%s is not valid: value is not one of valid values: %q", fieldName, valids)
	}

	if m := eachRegex.FindStringSubmatch(validation); m != nil {
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			return fmt.Errorf("validation 'each' can only be applied to slices or arrays, but the type of %s is %s", fieldName, v.Kind())
		}
		for i := 0; i < v.Len(); i++ {
			if err := validate(m[1], fmt.Sprintf("%s[%d]", fieldName, i), v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("validation type %q unknown", validation)
}
