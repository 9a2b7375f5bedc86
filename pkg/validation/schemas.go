// Package validation implements the login, registration and shipping address
// form schemas. Validation is pure: a form either passes or yields a map of
// field name to the first failing rule's message, ready for inline display.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LoginForm is the login page form
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterForm is the account registration form
type RegisterForm struct {
	Name            string `json:"name" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Phone           string `json:"phone" validate:"required,number,len=10"`
}

// AddressForm is the shipping address form captured at checkout
type AddressForm struct {
	FullName     string `json:"fullName" validate:"required,min=3"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,number,len=10"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Pincode      string `json:"pincode" validate:"required,number,len=6"`
}

// Errors maps a field's JSON name to its first failing rule's message
type Errors map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields under their JSON names so messages line up with the
	// form fields users actually see.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// labels maps field names to the wording used in messages
var labels = map[string]string{
	"email":           "Email",
	"password":        "Password",
	"name":            "Name",
	"confirmPassword": "Confirm password",
	"phone":           "Phone",
	"fullName":        "Full name",
	"addressLine1":    "Address line 1",
	"addressLine2":    "Address line 2",
	"city":            "City",
	"state":           "State",
	"pincode":         "Pincode",
}

// digitRules records the expected digit count for exact-length fields
var digitRules = map[string]string{
	"phone":   "10",
	"pincode": "6",
}

// Check validates any of the form structs above. It returns nil when the
// form is valid and never mutates its input.
func Check(form interface{}) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		// Only reachable when a non-struct sneaks in; treat it as a
		// single opaque failure.
		return Errors{"form": err.Error()}
	}

	errs := make(Errors, len(invalid))
	for _, fe := range invalid {
		if _, seen := errs[fe.Field()]; seen {
			continue // Keep the first failing rule per field
		}
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	label := labels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "eqfield":
		return "Passwords must match"
	case "len":
		return fmt.Sprintf("%s must be %s digits", label, fe.Param())
	case "number":
		// The number tag carries no length param, so look it up
		if n, ok := digitRules[fe.Field()]; ok {
			return fmt.Sprintf("%s must be %s digits", label, n)
		}
		return fmt.Sprintf("%s must contain only digits", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
