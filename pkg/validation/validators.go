package validation

import (
	"encoding"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator turns raw request input into typed input structs.
//
// Fields are matched by their json tag. Nil, empty and whitespace-only values
// count as missing and leave the field nil. A value of the wrong type records a
// single message for the field and the field's validate tags are skipped.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	return &Validator{v: v}
}

// Bind coerces input into dst, which must be a pointer to a struct, and then
// runs the struct's validate tags.
func (v *Validator) Bind(input map[string]any, dst any) Errors {
	errs := Errors{}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		panic("validation: Bind requires a pointer to a struct")
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := jsonName(sf)
		if name == "" {
			continue
		}
		raw, ok := input[name]
		if !ok || isBlank(raw) {
			continue
		}
		if kind, ok := assign(rv.Field(i), raw); !ok {
			errs.Add(name, typeMessage(name, kind))
		}
	}

	for field, msgs := range v.Validate(dst) {
		if errs.Has(field) {
			continue
		}
		errs[field] = msgs
	}
	return errs
}

// Validate runs the validate tags of an already typed struct.
func (v *Validator) Validate(s any) Errors {
	if err := v.v.Struct(s); err != nil {
		return FormatValidationErrors(err)
	}
	return Errors{}
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func isBlank(raw any) bool {
	switch val := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	}
	return false
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// assign stores raw into field, allocating pointer fields as needed. It
// returns the expected kind name for the type message when coercion fails.
func assign(field reflect.Value, raw any) (string, bool) {
	target := field
	if field.Kind() == reflect.Ptr {
		target = reflect.New(field.Type().Elem()).Elem()
	}

	kind, ok := coerce(target, raw)
	if !ok {
		return kind, false
	}
	if field.Kind() == reflect.Ptr {
		field.Set(target.Addr())
	}
	return kind, true
}

func coerce(target reflect.Value, raw any) (string, bool) {
	if reflect.PointerTo(target.Type()).Implements(textUnmarshalerType) {
		s, ok := raw.(string)
		if !ok {
			return "date", false
		}
		u := target.Addr().Interface().(encoding.TextUnmarshaler)
		return "date", u.UnmarshalText([]byte(strings.TrimSpace(s))) == nil
	}

	switch target.Kind() {
	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return "string", false
		}
		target.SetString(strings.TrimSpace(s))
		return "string", true
	case reflect.Float32, reflect.Float64:
		f, ok := toFloat(raw)
		if !ok {
			return "number", false
		}
		target.SetFloat(f)
		return "number", true
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, ok := toInt(raw)
		if !ok {
			return "integer", false
		}
		target.SetInt(n)
		return "integer", true
	case reflect.Bool:
		b, ok := toBool(raw)
		if !ok {
			return "boolean", false
		}
		target.SetBool(b)
		return "boolean", true
	}
	return "", false
}

func toFloat(raw any) (float64, bool) {
	var f float64
	switch val := raw.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toInt(raw any) (int64, bool) {
	switch val := raw.(type) {
	case int:
		return int64(val), true
	case int64:
		return val, true
	case float64:
		if val != math.Trunc(val) || math.Abs(val) > math.MaxInt64 {
			return 0, false
		}
		return int64(val), true
	case json.Number:
		n, err := val.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		return n, err == nil
	}
	return 0, false
}

func toBool(raw any) (bool, bool) {
	switch val := raw.(type) {
	case bool:
		return val, true
	case float64:
		return val == 1, val == 0 || val == 1
	case int:
		return val == 1, val == 0 || val == 1
	case json.Number:
		return toBool(val.String())
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "1", "true", "on":
			return true, true
		case "0", "false", "off":
			return false, true
		}
	}
	return false, false
}
