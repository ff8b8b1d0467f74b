package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgRequired    = "This field is required."
	MsgPhone       = "Please enter a valid phone number."
	MsgURL         = "Invalid URL."
	MsgInvalidTime = "Invalid date/time format."
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their form name so messages line up with inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "us_state", func(fl validator.FieldLevel) bool {
		return IsState(fl.Field().String())
	})
	mustRegister(v, "genres", func(fl validator.FieldLevel) bool {
		values, ok := fl.Field().Interface().([]string)
		if !ok {
			return false
		}
		for _, g := range values {
			if !IsGenre(g) {
				return false
			}
		}
		return true
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("form: register %q validation: %v", tag, err))
	}
}

// FieldError holds the messages for one rejected form field.
type FieldError struct {
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// ValidationErrors is returned when submitted form input is rejected. Nothing
// has been persisted when a caller receives it.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, strings.Join(fe.Messages, " ")))
	}
	return "invalid form input: " + strings.Join(parts, "; ")
}

// Fields maps each rejected field to its messages.
func (e ValidationErrors) Fields() map[string][]string {
	fields := make(map[string][]string, len(e))
	for _, fe := range e {
		fields[fe.Field] = append(fields[fe.Field], fe.Messages...)
	}
	return fields
}

// Has reports whether field was rejected.
func (e ValidationErrors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Flashes renders one line per field, suitable for flash messages.
func (e ValidationErrors) Flashes() []string {
	lines := make([]string, 0, len(e))
	for _, fe := range e {
		lines = append(lines, fmt.Sprintf("Error in field %s: %s", fe.Field, strings.Join(fe.Messages, " ")))
	}
	return lines
}

func (e *ValidationErrors) add(field, message string) {
	for i := range *e {
		if (*e)[i].Field == field {
			(*e)[i].Messages = append((*e)[i].Messages, message)
			return
		}
	}
	*e = append(*e, FieldError{Field: field, Messages: []string{message}})
}

// AsValidationErrors unwraps err into ValidationErrors.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

// check runs the struct rules on s and collects the failures in field order.
func check(s interface{}, errs *ValidationErrors) {
	err := validate.Struct(s)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.add("form", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		errs.add(fe.Field(), messageFor(fe))
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return MsgRequired
	case "us_state":
		return invalidChoiceMessage(States)
	case "genres":
		return invalidChoiceMessage(Genres)
	case "phone":
		return MsgPhone
	case "http_url":
		return MsgURL
	}
	return fmt.Sprintf("Invalid value for %s.", fe.Field())
}

// Checked reports whether a checkbox value means "on".
func Checked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}

// cleanGenres trims every submitted genre, drops blanks and duplicates, and
// keeps the submitted order.
func cleanGenres(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// trimAll trims every exported string field of the struct p points to.
func trimAll(p interface{}) {
	rv := reflect.ValueOf(p).Elem()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}
