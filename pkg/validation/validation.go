// Package validation implements the form checks and password scoring
// used by the sign-up, sign-in and password-reset flows. All functions
// are pure: they take the raw field values and return per-field error
// messages plus an overall verdict.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SignUpForm holds the raw sign-up fields. Values are kept exactly as
// typed; trimming is applied only inside the checks.
type SignUpForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// SignUpErrors carries one message per sign-up field. An empty string
// means the field passed.
type SignUpErrors struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// SignInForm holds the raw sign-in fields.
type SignInForm struct {
	Email    string
	Password string
}

// SignInErrors carries one message per sign-in field.
type SignInErrors struct {
	Email    string
	Password string
}

// ResetForm holds the password-reset fields: the emailed code plus the
// new password pair.
type ResetForm struct {
	Code            string
	Password        string
	ConfirmPassword string
}

// ResetErrors carries one message per reset field.
type ResetErrors struct {
	Code            string
	Password        string
	ConfirmPassword string
}

// ValidateSignUpForm checks every field (no short-circuit across
// fields) so the caller can surface all problems at once. Within a
// field, only the first failing check's message is kept.
func ValidateSignUpForm(form SignUpForm) (SignUpErrors, bool) {
	var errs SignUpErrors

	name := strings.TrimSpace(form.Name)
	if name == "" {
		errs.Name = "We'd love to know your name!"
	} else if utf8.RuneCountInString(name) < 2 {
		errs.Name = "Please enter your full name (at least 2 characters)"
	}

	if strings.TrimSpace(form.Email) == "" {
		errs.Email = "Your email address is required"
	} else if !emailRegex.MatchString(form.Email) {
		errs.Email = "Please double-check your email format"
	}

	switch {
	case form.Password == "":
		errs.Password = "Please create a secure password"
	case utf8.RuneCountInString(form.Password) < 8:
		errs.Password = "Your password needs at least 8 characters for security"
	case !hasComposition(form.Password):
		errs.Password = "Include uppercase, lowercase, and a number for better security"
	}

	if form.ConfirmPassword == "" {
		errs.ConfirmPassword = "Please confirm your password"
	} else if form.Password != form.ConfirmPassword {
		errs.ConfirmPassword = "Passwords don't match - please try again"
	}

	return errs, errs == SignUpErrors{}
}

// ValidateSignInForm checks shape only: sign-in never re-applies the
// composition rules an existing password may predate.
func ValidateSignInForm(form SignInForm) (SignInErrors, bool) {
	var errs SignInErrors

	if strings.TrimSpace(form.Email) == "" {
		errs.Email = "Please enter your email address"
	} else if !emailRegex.MatchString(form.Email) {
		errs.Email = "Please check your email format"
	}

	if form.Password == "" {
		errs.Password = "Please enter your password"
	} else if utf8.RuneCountInString(form.Password) < 8 {
		errs.Password = "Password should be at least 8 characters"
	}

	return errs, errs == SignInErrors{}
}

// ValidateForgotPasswordEmail checks the single email slot of the
// forgot-password request step.
func ValidateForgotPasswordEmail(email string) (string, bool) {
	if strings.TrimSpace(email) == "" {
		return "Please enter your email address", false
	}
	if !emailRegex.MatchString(email) {
		return "Please enter a valid email address", false
	}
	return "", true
}

// ValidateResetPasswordForm checks the emailed code and the new
// password pair. The new password follows the sign-up composition rule
// (length, mixed case, digit; no special character required).
func ValidateResetPasswordForm(form ResetForm) (ResetErrors, bool) {
	var errs ResetErrors

	if strings.TrimSpace(form.Code) == "" {
		errs.Code = "Please enter the verification code"
	} else if utf8.RuneCountInString(form.Code) != 6 {
		errs.Code = "Please enter the complete 6-digit code"
	}

	switch {
	case form.Password == "":
		errs.Password = "Please enter your new password"
	case utf8.RuneCountInString(form.Password) < 8:
		errs.Password = "Password must be at least 8 characters"
	case !hasComposition(form.Password):
		errs.Password = "Include uppercase, lowercase, and a number"
	}

	if form.ConfirmPassword == "" {
		errs.ConfirmPassword = "Please confirm your new password"
	} else if form.Password != form.ConfirmPassword {
		errs.ConfirmPassword = "Passwords don't match"
	}

	return errs, errs == ResetErrors{}
}

// hasComposition reports whether the password contains at least one
// lowercase letter, one uppercase letter and one digit.
func hasComposition(password string) bool {
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}
