package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Listing defaults applied when count/page are absent from the query.
const (
	defaultPageSize = 10
	defaultPage     = 0
)

// parseIDParam parses the :id path parameter. A malformed UUID never reaches
// the service layer.
func parseIDParam(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// checkQueryKeys reports whether the request's query string only uses keys
// from the allowed set. Unknown filter keys are rejected instead of being
// silently ignored, so a typo like "usernme" cannot return the full listing.
func checkQueryKeys(c echo.Context, allowed ...string) (string, bool) {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, key := range allowed {
		allowedSet[key] = struct{}{}
	}

	for key := range c.QueryParams() {
		if _, ok := allowedSet[key]; !ok {
			return key, false
		}
	}

	return "", true
}
