// Package forms declares the input schemas of every screen and turns
// validator failures into the inline messages shown next to each field.
package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type SignupForm struct {
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

type ForgotPasswordForm struct {
	Email string `form:"email" validate:"required,email"`
}

// LeadForm is the lead-capture form. ApplicationValue is only required
// when Application is "Other".
type LeadForm struct {
	Name             string `form:"name" validate:"required"`
	CompanyName      string `form:"companyName" validate:"required"`
	Country          string `form:"country" validate:"required,country"`
	Email            string `form:"email" validate:"required,email"`
	MobileNumber     string `form:"mobileNumber" validate:"required,number"`
	Application      string `form:"application" validate:"required,application"`
	ApplicationValue string `form:"applicationValue" validate:"required_if=Application Other"`
	BusinessCase     string `form:"businessCase" validate:"required"`
}

// messages maps "<field>.<tag>" to the inline message.
var messages = map[string]string{
	"email.required":               "Email is required",
	"email.email":                  "Invalid email",
	"password.required":            "Password is required",
	"password.min":                 "Password must be at least 6 characters",
	"confirmPassword.required":     "Confirm Password is required",
	"confirmPassword.eqfield":      "Passwords must match",
	"name.required":                "Name is required",
	"companyName.required":         "Company Name is required",
	"country.required":             "Country is required",
	"country.country":              "Please select a valid Country",
	"mobileNumber.required":        "Mobile Number is required",
	"mobileNumber.number":          "Must be a valid phone number",
	"application.required":         "Application is required",
	"application.application":      "Please select a valid application",
	"applicationValue.required_if": "Other Application is required",
	"businessCase.required":        "Business Case is required",
}

// FieldError is one inline validation message.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors lists the failing fields in declaration order, at most
// one message per field.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Get returns the message for field, or "" if it passed.
func (v ValidationErrors) Get(field string) string {
	for _, fe := range v {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	must(v.RegisterValidation("country", func(fl validator.FieldLevel) bool {
		return fl.Field().String() != CountryPlaceholder
	}))
	must(v.RegisterValidation("application", func(fl validator.FieldLevel) bool {
		return IsApplication(fl.Field().String())
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate checks form against its schema. It returns nil or
// ValidationErrors.
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
