package authform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSignUpForm() FormData {
	return FormData{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Password:        "Abcdef1!",
		ConfirmPassword: "Abcdef1!",
		Phone:           "+1234567890",
	}
}

func TestValidateSignInAcceptsBasicCredentials(t *testing.T) {
	c := NewController(nil, nil)
	c.SwitchMode(ModeSignIn)

	errs := c.Validate(FormData{Email: "jane@example.com", Password: "longenough"})
	assert.Empty(t, errs)
}

func TestValidateSignInPasswordRules(t *testing.T) {
	c := NewController(nil, nil)
	c.SwitchMode(ModeSignIn)

	errs := c.Validate(FormData{Email: "jane@example.com", Password: ""})
	assert.Equal(t, "Password is required", errs["password"])

	errs = c.Validate(FormData{Email: "jane@example.com", Password: "short"})
	assert.Equal(t, "Password must be at least 8 characters long", errs["password"])

	// Sign-in does not enforce the composition rules.
	errs = c.Validate(FormData{Email: "jane@example.com", Password: "alllowercase"})
	assert.Empty(t, errs)
}

func TestValidateEmailRules(t *testing.T) {
	c := NewController(nil, nil)
	c.SwitchMode(ModeSignIn)

	cases := []struct {
		email string
		want  string
	}{
		{"", "Email is required"},
		{"not-an-email", "Please enter a valid email address"},
		{"jane@nodot", "Please enter a valid email address"},
		{"jane..doe@example.com", "Email format is invalid"},
		{".jane@example.com", "Email format is invalid"},
		{"_jane@example.com", "Email must start with a letter or number"},
		{"jane@example.com", ""},
		{"jane.doe+tag@sub.example.co", ""},
	}
	for _, tc := range cases {
		errs := c.Validate(FormData{Email: tc.email, Password: "longenough"})
		assert.Equal(t, tc.want, errs["email"], "email %q", tc.email)
	}
}

func TestValidateSignUpPasswordComposition(t *testing.T) {
	c := NewController(nil, nil)
	c.SwitchMode(ModeSignUp)

	mixedMsg := "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	cases := []struct {
		password string
		want     string
	}{
		{"Abcdef1!", ""},
		{"abcdefg1!", mixedMsg},
		{"ABCDEFG1!", mixedMsg},
		{"Abcdefgh!", mixedMsg},
		{"Abcdefg1", "Password must contain at least one special character"},
	}
	for _, tc := range cases {
		form := validSignUpForm()
		form.Password = tc.password
		form.ConfirmPassword = tc.password
		errs := c.Validate(form)
		assert.Equal(t, tc.want, errs["password"], "password %q", tc.password)
	}
}

func TestValidateSignUpConfirmPassword(t *testing.T) {
	c := NewController(nil, nil)
	c.SwitchMode(ModeSignUp)

	form := validSignUpForm()
	form.ConfirmPassword = ""
	errs := c.Validate(form)
	assert.Equal(t, "Please confirm your password", errs["confirmPassword"])

	form.ConfirmPassword = "Different1!"
	errs = c.Validate(form)
	assert.Equal(t, "Passwords do not match", errs["confirmPassword"])
}

func TestValidateSignUpNames(t *testing.T) {
	c := NewController(nil, nil)
	c.SwitchMode(ModeSignUp)

	form := validSignUpForm()
	form.FirstName = ""
	errs := c.Validate(form)
	assert.Equal(t, "First name is required", errs["firstName"])

	form.FirstName = "J"
	errs = c.Validate(form)
	assert.Equal(t, "First name must be at least 2 characters", errs["firstName"])

	form.FirstName = "Jane42"
	errs = c.Validate(form)
	assert.Equal(t, "First name can only contain letters", errs["firstName"])

	form.FirstName = "Mary Jane"
	form.LastName = "Ann3"
	errs = c.Validate(form)
	assert.Empty(t, errs["firstName"])
	assert.Equal(t, "Last name can only contain letters", errs["lastName"])
}

func TestValidateSignUpPhone(t *testing.T) {
	c := NewController(nil, nil)
	c.SwitchMode(ModeSignUp)

	// Phone is optional.
	form := validSignUpForm()
	form.Phone = ""
	assert.Empty(t, c.Validate(form))

	// Spaces are stripped before matching.
	form.Phone = "+12 345 678 90"
	assert.Empty(t, c.Validate(form))

	form.Phone = "12345"
	errs := c.Validate(form)
	assert.Equal(t, "Please enter a valid phone number", errs["phone"])

	form.Phone = "123-456-7890"
	assert.Empty(t, c.Validate(form))
}

func TestValidateForgotOnlyNeedsEmail(t *testing.T) {
	c := NewController(nil, nil)
	c.SwitchMode(ModeForgot)

	errs := c.Validate(FormData{Email: "jane@example.com"})
	assert.Empty(t, errs)

	errs = c.Validate(FormData{})
	assert.Equal(t, "Email is required", errs["email"])
	assert.NotContains(t, errs, "password")
}
