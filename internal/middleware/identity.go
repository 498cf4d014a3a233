package middleware

// identity.go holds small helpers shared by the middleware in this
// package. currentUserID turns whatever JWTAuth stored under
// "user_id" into a stable string for rate-limit keys; unauthenticated
// requests fold into the shared "anon" bucket.

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

func currentUserID(c echo.Context) string {
	v := c.Get("user_id")
	if v == nil {
		return "anon"
	}
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		// MapClaims decodes numeric subjects as float64.
		return fmt.Sprintf("%.0f", t)
	case uint64:
		return fmt.Sprintf("%d", t)
	}
	return "anon"
}
