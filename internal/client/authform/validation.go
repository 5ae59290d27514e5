package authform

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\-]{10,13}$`)
)

const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// Validate runs the client-side rules for the current mode and returns
// per-field messages. An empty map means the form may be submitted.
func (c *Controller) Validate(form FormData) map[string]string {
	errs := make(map[string]string)

	validateEmailField(form.Email, errs)
	c.validatePasswordField(form.Password, errs)

	if c.mode == ModeSignUp {
		if form.ConfirmPassword == "" {
			errs["confirmPassword"] = "Please confirm your password"
		} else if form.Password != form.ConfirmPassword {
			errs["confirmPassword"] = "Passwords do not match"
		}

		validateNameField("firstName", "First name", form.FirstName, errs)
		validateNameField("lastName", "Last name", form.LastName, errs)

		if form.Phone != "" {
			compact := strings.ReplaceAll(form.Phone, " ", "")
			if !phonePattern.MatchString(compact) {
				errs["phone"] = "Please enter a valid phone number"
			}
		}
	}

	return errs
}

func validateEmailField(email string, errs map[string]string) {
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Please enter a valid email address"
	case strings.Contains(email, "..") || strings.HasPrefix(email, ".") || strings.HasSuffix(email, "."):
		errs["email"] = "Email format is invalid"
	case !isAlphanumeric(rune(email[0])):
		errs["email"] = "Email must start with a letter or number"
	}
}

func (c *Controller) validatePasswordField(password string, errs map[string]string) {
	if c.mode == ModeForgot {
		return
	}
	switch {
	case password == "":
		errs["password"] = "Password is required"
	case len(password) < 8:
		errs["password"] = "Password must be at least 8 characters long"
	case c.mode == ModeSignUp && !hasMixedClasses(password):
		errs["password"] = "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	case c.mode == ModeSignUp && !strings.ContainsAny(password, passwordSymbols):
		errs["password"] = "Password must contain at least one special character"
	}
}

func validateNameField(field, label, value string, errs map[string]string) {
	trimmed := strings.TrimSpace(value)
	switch {
	case trimmed == "":
		errs[field] = label + " is required"
	case len(trimmed) < 2:
		errs[field] = label + " must be at least 2 characters"
	case !namePattern.MatchString(trimmed):
		errs[field] = label + " can only contain letters"
	}
}

func hasMixedClasses(password string) bool {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
