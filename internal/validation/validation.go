package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/appdotbuilder/influencer-sponsor-connect/internal/errors"
	"github.com/appdotbuilder/influencer-sponsor-connect/internal/model"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// report json names so messages match the wire contract
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterCustomTypeFunc(nullableValue[string], model.Nullable[string]{})
	validate.RegisterCustomTypeFunc(nullableValue[int64], model.Nullable[int64]{})
	validate.RegisterCustomTypeFunc(nullableValue[float64], model.Nullable[float64]{})
	validate.RegisterCustomTypeFunc(nullableValue[time.Time], model.Nullable[time.Time]{})
}

// nullableValue unwraps a Nullable so tags apply to the inner value; absent
// and null both validate as missing.
func nullableValue[T any](field reflect.Value) interface{} {
	n, ok := field.Interface().(model.Nullable[T])
	if !ok || !n.Valid {
		return nil
	}
	return n.Value
}

// Struct validates an input and returns the first failure as a ValidationError.
func Struct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		first := vErrs[0]
		return &appErrors.ValidationError{Field: first.Field(), Rule: first.Tag()}
	}
	return &appErrors.ValidationError{Msg: err.Error()}
}
