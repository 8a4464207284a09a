package forms

import "github.com/psptechhub/leadcap/internal/client/identity"

const (
	MsgInvalidEmailFormat = "Invalid email address format."
	MsgUserDisabled       = "User account is disabled."
	MsgUserNotFound       = "User account not found."
	MsgInvalidPassword    = "Invalid password."
	MsgLoginFailed        = "Login failed. Please try again later."

	MsgEmailInUse    = "Email address already in use."
	MsgSignupFailed  = "Error creating account. Please try again later."
	MsgResetFailed   = "Error sending email. Please try again later."
	MsgResetSent     = "Password reset email sent. Please check your inbox."
	MsgLeadSubmitted = "Form submitted successfully."
	MsgLeadFailed    = "Form submission failed. Please try again."
)

// LoginFailureMessage maps a sign-in failure code to the message shown on
// the login screen.
func LoginFailureMessage(code identity.Code) string {
	switch code {
	case identity.CodeInvalidEmail:
		return MsgInvalidEmailFormat
	case identity.CodeUserDisabled:
		return MsgUserDisabled
	case identity.CodeUserNotFound:
		return MsgUserNotFound
	case identity.CodeWrongPassword:
		return MsgInvalidPassword
	default:
		return MsgLoginFailed
	}
}

func SignupFailureMessage(code identity.Code) string {
	if code == identity.CodeEmailAlreadyInUse {
		return MsgEmailInUse
	}
	return MsgSignupFailed
}

func ResetFailureMessage(code identity.Code) string {
	if code == identity.CodeUserNotFound {
		return MsgUserNotFound
	}
	return MsgResetFailed
}
