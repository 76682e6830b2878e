// Package validation checks a patient draft before it is submitted.
//
// Only name and website are ever required; avatar and description are free
// form. Validate is pure: it reads the draft and returns the field errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/dmitrijs2005/patientkeeper/internal/client/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldName    = "name"
	FieldWebsite = "website"
)

const (
	MsgNameRequired    = "Name is required"
	MsgWebsiteRequired = "Website is required"
	MsgWebsiteScheme   = "Website must start with http:// or https://"
)

// Errors maps a field name to its error message.
type Errors map[string]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Fields returns the failing field names in a stable order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// lenientForm and strictForm are the validated views of a draft. Values
// are trimmed before they are placed here.
type lenientForm struct {
	Name    string `json:"name" validate:"required"`
	Website string `json:"website" validate:"required"`
}

type strictForm struct {
	Name    string `json:"name" validate:"required"`
	Website string `json:"website" validate:"required,httpscheme"`
}

// messages is keyed by "<field>.<tag>".
var messages = map[string]string{
	FieldName + ".required":      MsgNameRequired,
	FieldWebsite + ".required":   MsgWebsiteRequired,
	FieldWebsite + ".httpscheme": MsgWebsiteScheme,
}

var formValidate *validator.Validate

func init() {
	v, err := newFormValidator()
	if err != nil {
		panic(fmt.Sprintf("validation: %v", err))
	}
	formValidate = v
}

func newFormValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	if err := v.RegisterValidation("httpscheme", validateHTTPScheme); err != nil {
		return nil, fmt.Errorf("register httpscheme: %w", err)
	}
	return v, nil
}

// validateHTTPScheme accepts strings starting with http:// or https://,
// ignoring case.
func validateHTTPScheme(fl validator.FieldLevel) bool {
	s := strings.ToLower(fl.Field().String())
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Validate checks d. With strict set the website must also carry an
// http:// or https:// prefix.
func Validate(d models.Draft, strict bool) Errors {
	name := strings.TrimSpace(d.Name)
	website := strings.TrimSpace(d.Website)

	var err error
	if strict {
		err = formValidate.Struct(strictForm{Name: name, Website: website})
	} else {
		err = formValidate.Struct(lenientForm{Name: name, Website: website})
	}

	out := Errors{}
	if err == nil {
		return out
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// only reachable on a programming error such as an unknown tag
		out[FieldName] = err.Error()
		return out
	}
	for _, fe := range fieldErrs {
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			out[fe.Field()] = msg
		}
	}
	return out
}
