package handler

import "github.com/labstack/echo/v4"

// ctxUserID extracts the user id injected by the OptionalAuth middleware.
// The second return value is false when the request carried no token.
func ctxUserID(c echo.Context) (string, bool) {
	userID, _ := c.Get("user_id").(string)
	return userID, userID != ""
}
