package handlers

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldErrors flattens a ShouldBindJSON failure into the field-level message
// map the product endpoints answer with. Type mismatches (a string where a
// number belongs, a float where an integer belongs) come out of the JSON
// decoder; everything else comes out of the validator.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	var jerr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			out[strings.ToLower(fe.Field())] = validationMessage(fe)
		}
	case errors.As(err, &jerr):
		field := jerr.Field
		if field == "" {
			field = "body"
		}
		out[field] = "must be " + expectedType(jerr.Type)
	default:
		out["body"] = "invalid request body"
	}

	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be " + fe.Param() + " or greater"
	default:
		return "is invalid"
	}
}

func expectedType(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	default:
		return "a " + t.Kind().String()
	}
}
