package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps an input field name to its violation messages.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

// Merge appends every message of other into e.
func (e Errors) Merge(other Errors) {
	for field, msgs := range other {
		e[field] = append(e[field], msgs...)
	}
}

// First returns the first message of the first field in name order.
func (e Errors) First() string {
	if len(e) == 0 {
		return ""
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return e[fields[0]][0]
}

// Label turns a field name into the form used inside messages.
func Label(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func Required(field string) string {
	return fmt.Sprintf("The %s field is required.", Label(field))
}

func Taken(field string) string {
	return fmt.Sprintf("The %s has already been taken.", Label(field))
}

func Invalid(field string) string {
	return fmt.Sprintf("The selected %s is invalid.", Label(field))
}

// FormatValidationErrors converts validator.ValidationErrors into field messages.
func FormatValidationErrors(err error) Errors {
	out := Errors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.Add("input", err.Error())
		return out
	}
	for _, fe := range verrs {
		out.Add(fe.Field(), formatSingleError(fe))
	}
	return out
}

func formatSingleError(e validator.FieldError) string {
	label := Label(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "max", "lte":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", label, param)
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", label, param)
	case "min", "gte":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must be at least %s characters.", label, param)
		}
		return fmt.Sprintf("The %s field must be at least %s.", label, param)
	case "gt":
		return fmt.Sprintf("The %s field must be greater than %s.", label, param)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", label)
	case "eqfield":
		return fmt.Sprintf("The %s field confirmation does not match.", label)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}

func typeMessage(field string, kind string) string {
	label := Label(field)
	switch kind {
	case "string":
		return fmt.Sprintf("The %s field must be a string.", label)
	case "number":
		return fmt.Sprintf("The %s field must be a number.", label)
	case "integer":
		return fmt.Sprintf("The %s field must be an integer.", label)
	case "boolean":
		return fmt.Sprintf("The %s field must be true or false.", label)
	case "date":
		return fmt.Sprintf("The %s field must be a valid date.", label)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}
