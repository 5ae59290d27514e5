package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var errNoIdentity = errors.New("no authenticated identity on request")

// currentUserID reads the identity the auth middleware attached to the
// request context.
func currentUserID(c *fiber.Ctx) (int64, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return 0, errNoIdentity
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return 0, errNoIdentity
	}
	return userID, nil
}
