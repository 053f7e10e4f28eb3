// Package schema decodes and validates request bodies for projects and proofs.
// Every failure is reported as a single *FieldError naming the first failing
// field; the same rules are used by the client to check server responses.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is the 400 response body.
type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonName)

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}

// decodeCreate unmarshals a creation body and validates every field.
func decodeCreate(data []byte, body any) error {
	present, err := objectKeys(data)
	if err != nil {
		return err
	}
	if err := decodeFields(present, body); err != nil {
		return err
	}
	return validateStruct(body)
}

// decodePatch unmarshals a partial body and validates only the keys that are
// present. A present key holding null is rejected: no field is nullable.
func decodePatch(data []byte, body any) error {
	present, err := objectKeys(data)
	if err != nil {
		return err
	}

	v := reflect.ValueOf(body).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := jsonName(t.Field(i))
		if raw, ok := present[name]; ok && string(raw) == "null" {
			return &FieldError{Field: name, Message: fmt.Sprintf("%s cannot be null", name)}
		}
	}
	if err := decodeFields(present, body); err != nil {
		return err
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if v.Field(i).IsNil() {
			continue
		}
		name := jsonName(sf)
		tag := sf.Tag.Get("validate")
		if tag == "" {
			continue
		}
		if err := validate.Var(v.Field(i).Interface(), tag); err != nil {
			return firstFieldError(err, name)
		}
	}
	return nil
}

// objectKeys returns the top-level keys of a JSON object body.
func objectKeys(data []byte) (map[string]json.RawMessage, error) {
	var keys map[string]json.RawMessage
	err := json.Unmarshal(data, &keys)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) || (err == nil && keys == nil) {
		return nil, &FieldError{Message: "request body must be a JSON object"}
	}
	if err != nil {
		return nil, jsonError(err)
	}
	return keys, nil
}

// decodeFields fills each field of body from the key that exactly matches its
// JSON name. Keys differing only in case are ignored like any unknown key.
func decodeFields(present map[string]json.RawMessage, body any) error {
	v := reflect.ValueOf(body).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := jsonName(t.Field(i))
		raw, ok := present[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, v.Field(i).Addr().Interface()); err != nil {
			fe := jsonError(err)
			fe.Field = name
			return fe
		}
	}
	return nil
}

func validateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		return firstFieldError(err, "")
	}
	return nil
}

// firstFieldError converts validator output into a FieldError. field overrides
// the reported name for single-value checks, which carry none.
func firstFieldError(err error, field string) *FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &FieldError{Field: field, Message: err.Error()}
	}

	fe := verrs[0]
	if field == "" {
		field = fieldPath(fe.Namespace())
	}
	return &FieldError{Field: field, Message: message(field, fe.Tag(), fe.Param())}
}

// fieldPath drops the root struct name from a validator namespace, leaving
// the dotted JSON path.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s must not be empty", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(param), ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func jsonError(err error) *FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &FieldError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("expected %s, received %s", kindName(typeErr.Type), typeErr.Value),
		}
	}
	return &FieldError{Message: "request body is not valid JSON"}
}

func kindName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.Kind().String()
	}
}
