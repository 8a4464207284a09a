package forms

import (
	"testing"

	"github.com/psptechhub/leadcap/internal/client/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()
	require.Error(t, err)
	verrs, ok := err.(ValidationErrors)
	require.True(t, ok, "expected ValidationErrors, got %T", err)
	return verrs
}

func validLead() LeadForm {
	return LeadForm{
		Name:         "Ann",
		CompanyName:  "Acme",
		Country:      "India",
		Email:        "ann@acme.io",
		MobileNumber: "9876543210",
		Application:  "CWC",
		BusinessCase: "Automate",
	}
}

func TestValidate_Login(t *testing.T) {
	assert.NoError(t, Validate(LoginForm{Email: "a@b.com", Password: "secret1"}))

	verrs := validationErrors(t, Validate(LoginForm{Email: "a@b.com", Password: "12345"}))
	assert.Equal(t, ValidationErrors{{Field: "password", Message: "Password must be at least 6 characters"}}, verrs)

	verrs = validationErrors(t, Validate(LoginForm{}))
	assert.Equal(t, "Email is required", verrs.Get("email"))
	assert.Equal(t, "Password is required", verrs.Get("password"))

	verrs = validationErrors(t, Validate(LoginForm{Email: "nope", Password: "secret1"}))
	assert.Equal(t, "Invalid email", verrs.Get("email"))
	assert.Empty(t, verrs.Get("password"))
}

func TestValidate_Signup(t *testing.T) {
	assert.NoError(t, Validate(SignupForm{Email: "a@b.com", Password: "secret1", ConfirmPassword: "secret1"}))

	verrs := validationErrors(t, Validate(SignupForm{Email: "a@b.com", Password: "secret1", ConfirmPassword: "secret2"}))
	assert.Equal(t, "Passwords must match", verrs.Get("confirmPassword"))

	verrs = validationErrors(t, Validate(SignupForm{Email: "a@b.com", Password: "secret1"}))
	assert.Equal(t, "Confirm Password is required", verrs.Get("confirmPassword"))
}

func TestValidate_ForgotPassword(t *testing.T) {
	assert.NoError(t, Validate(ForgotPasswordForm{Email: "a@b.com"}))
	verrs := validationErrors(t, Validate(ForgotPasswordForm{}))
	assert.Equal(t, "Email is required", verrs.Get("email"))
}

func TestValidate_Lead(t *testing.T) {
	assert.NoError(t, Validate(validLead()))

	tests := []struct {
		name   string
		mutate func(*LeadForm)
		field  string
		msg    string
	}{
		{"placeholder country", func(f *LeadForm) { f.Country = CountryPlaceholder }, "country", "Please select a valid Country"},
		{"empty country", func(f *LeadForm) { f.Country = "" }, "country", "Country is required"},
		{"letters in mobile", func(f *LeadForm) { f.MobileNumber = "98a7" }, "mobileNumber", "Must be a valid phone number"},
		{"plus in mobile", func(f *LeadForm) { f.MobileNumber = "+9198" }, "mobileNumber", "Must be a valid phone number"},
		{"empty mobile", func(f *LeadForm) { f.MobileNumber = "" }, "mobileNumber", "Mobile Number is required"},
		{"placeholder application", func(f *LeadForm) { f.Application = ApplicationPlaceholder }, "application", "Please select a valid application"},
		{"unknown application", func(f *LeadForm) { f.Application = "Excel" }, "application", "Please select a valid application"},
		{"other without value", func(f *LeadForm) { f.Application = ApplicationOther }, "applicationValue", "Other Application is required"},
		{"empty name", func(f *LeadForm) { f.Name = "" }, "name", "Name is required"},
		{"empty company", func(f *LeadForm) { f.CompanyName = "" }, "companyName", "Company Name is required"},
		{"empty business case", func(f *LeadForm) { f.BusinessCase = "" }, "businessCase", "Business Case is required"},
		{"bad email", func(f *LeadForm) { f.Email = "ann@" }, "email", "Invalid email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validLead()
			tt.mutate(&f)
			verrs := validationErrors(t, Validate(f))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
			assert.Equal(t, tt.msg, verrs[0].Message)
		})
	}
}

func TestValidate_LeadOtherWithValue(t *testing.T) {
	f := validLead()
	f.Application = ApplicationOther
	f.ApplicationValue = "Custom"
	assert.NoError(t, Validate(f))
}

func TestValidate_LeadAllFieldsOrdered(t *testing.T) {
	verrs := validationErrors(t, Validate(LeadForm{}))
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"name", "companyName", "country", "email", "mobileNumber", "application", "businessCase"}, fields)
	assert.Contains(t, verrs.Error(), "name: Name is required")
}

func TestFailureMessages(t *testing.T) {
	assert.Equal(t, "Invalid email address format.", LoginFailureMessage(identity.CodeInvalidEmail))
	assert.Equal(t, "User account is disabled.", LoginFailureMessage(identity.CodeUserDisabled))
	assert.Equal(t, "User account not found.", LoginFailureMessage(identity.CodeUserNotFound))
	assert.Equal(t, "Invalid password.", LoginFailureMessage(identity.CodeWrongPassword))
	assert.Equal(t, "Login failed. Please try again later.", LoginFailureMessage(identity.CodeInvalidCredential))
	assert.Equal(t, "Login failed. Please try again later.", LoginFailureMessage(""))

	assert.Equal(t, "Email address already in use.", SignupFailureMessage(identity.CodeEmailAlreadyInUse))
	assert.Equal(t, "Error creating account. Please try again later.", SignupFailureMessage(identity.CodeWeakPassword))

	assert.Equal(t, "User account not found.", ResetFailureMessage(identity.CodeUserNotFound))
	assert.Equal(t, "Error sending email. Please try again later.", ResetFailureMessage(identity.CodeNetworkRequestFailed))
}

func TestOptions(t *testing.T) {
	assert.Equal(t, CountryPlaceholder, Countries[0])
	assert.Equal(t, []string{"Select Application", "CWC", "DPM", "ThingWorx", "Other"}, Applications)
	assert.True(t, IsApplication("DPM"))
	assert.False(t, IsApplication(ApplicationPlaceholder))
}

func TestLeadForm_Lead(t *testing.T) {
	f := validLead()
	l := f.Lead()
	assert.Equal(t, f.Name, l.Name)
	assert.Equal(t, f.MobileNumber, l.MobileNumber)
	assert.Equal(t, f.BusinessCase, l.BusinessCase)
	assert.Empty(t, l.ApplicationValue)
}
