// Package authform is the sign-in / sign-up / forgot-password controller.
// It validates input before any network call, reconciles API results into
// the session store, and classifies server failures into the four
// user-facing categories the UI shows.
package authform

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ianishdubey/FitZoneBack/internal/client/api"
)

type Mode string

const (
	ModeSignIn Mode = "signin"
	ModeSignUp Mode = "signup"
	ModeForgot Mode = "forgot"
)

type ErrorCategory string

const (
	CategoryAlreadyExists      ErrorCategory = "already-exists"
	CategoryInvalidCredentials ErrorCategory = "invalid-credentials"
	CategoryNotFound           ErrorCategory = "not-found"
	CategoryGeneric            ErrorCategory = "generic"
)

var categoryMessages = map[ErrorCategory]string{
	CategoryAlreadyExists:      "An account with this email already exists. Please sign in instead.",
	CategoryInvalidCredentials: "Invalid email or password. Please check your credentials.",
	CategoryNotFound:           "No account found with this email. Please sign up first.",
	CategoryGeneric:            "Something went wrong. Please try again later.",
}

// ErrValidation is returned by Submit when client-side validation failed and
// no network call was made. Field details are in FieldErrors.
var ErrValidation = errors.New("form validation failed")

type FormData struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
}

type authAPI interface {
	Register(ctx context.Context, input api.RegisterInput) (*api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
}

type sessionStore interface {
	SetSession(token string, user *api.UserSummary) error
}

// successWindow is how long the transient success state is shown before the
// form closes, matching the web client's 2-second timeout.
const successWindow = 2 * time.Second

type Controller struct {
	api     authAPI
	session sessionStore
	now     func() time.Time

	mode         Mode
	fieldErrors  map[string]string
	apiError     string
	apiCategory  ErrorCategory
	successUntil time.Time
}

func NewController(apiClient authAPI, session sessionStore) *Controller {
	return &Controller{
		api:     apiClient,
		session: session,
		now:     time.Now,
		mode:    ModeSignIn,
	}
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// SwitchMode changes the form mode and resets all transient state.
func (c *Controller) SwitchMode(mode Mode) {
	c.mode = mode
	c.reset()
}

func (c *Controller) FieldErrors() map[string]string {
	return c.fieldErrors
}

// APIError returns the user-facing message for the last server failure.
func (c *Controller) APIError() string {
	return c.apiError
}

func (c *Controller) APIErrorCategory() ErrorCategory {
	return c.apiCategory
}

// ShowingSuccess reports whether the transient success state is still
// visible.
func (c *Controller) ShowingSuccess() bool {
	return c.now().Before(c.successUntil)
}

// Submit validates the form, performs the mode's action, and stores the
// resulting session. Forgot-password is a dead end: it shows success without
// calling the server.
func (c *Controller) Submit(ctx context.Context, form FormData) error {
	c.fieldErrors = nil
	c.apiError = ""
	c.apiCategory = ""

	if errs := c.Validate(form); len(errs) > 0 {
		c.fieldErrors = errs
		return ErrValidation
	}

	switch c.mode {
	case ModeSignUp:
		resp, err := c.api.Register(ctx, api.RegisterInput{
			FirstName: strings.TrimSpace(form.FirstName),
			LastName:  strings.TrimSpace(form.LastName),
			Email:     strings.ToLower(strings.TrimSpace(form.Email)),
			Password:  form.Password,
			Phone:     strings.TrimSpace(form.Phone),
		})
		if err != nil {
			return c.recordAPIError(err)
		}
		if err := c.session.SetSession(resp.Token, &resp.User); err != nil {
			return err
		}
	case ModeSignIn:
		resp, err := c.api.Login(ctx, strings.ToLower(strings.TrimSpace(form.Email)), form.Password)
		if err != nil {
			return c.recordAPIError(err)
		}
		if err := c.session.SetSession(resp.Token, &resp.User); err != nil {
			return err
		}
	case ModeForgot:
		// Simulated: no reset delivery exists.
	}

	c.successUntil = c.now().Add(successWindow)
	return nil
}

func (c *Controller) recordAPIError(err error) error {
	c.apiCategory = Classify(err)
	c.apiError = categoryMessages[c.apiCategory]
	return err
}

// Classify maps a server failure to a display category: by structured code
// when the server sent one, by substring on the message text otherwise.
func Classify(err error) ErrorCategory {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case "USER_EXISTS":
			return CategoryAlreadyExists
		case "INVALID_CREDENTIALS":
			return CategoryInvalidCredentials
		case "USER_NOT_FOUND":
			return CategoryNotFound
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "already exists"):
		return CategoryAlreadyExists
	case strings.Contains(msg, "Invalid email or password"):
		return CategoryInvalidCredentials
	case strings.Contains(msg, "User not found"):
		return CategoryNotFound
	default:
		return CategoryGeneric
	}
}

func (c *Controller) reset() {
	c.fieldErrors = nil
	c.apiError = ""
	c.apiCategory = ""
	c.successUntil = time.Time{}
}
