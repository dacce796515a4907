package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clientdesk/crm-api/internal/core/domain"
	"github.com/clientdesk/crm-api/internal/core/ports"
)

// ctxIdentity extracts the session identity injected by the Auth middleware
// and performs a fast-fail check before any service call: a non-empty role
// proves the middleware ran.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication claims")
	}

	id, _ := c.Get("user_id").(int64)
	username, _ := c.Get("username").(string)
	return domain.Identity{ID: id, Username: username, Role: role}, nil
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid id parameter")
	}
	return id, nil
}

// pageRequest reads the page/limit query parameters. Out-of-range values
// are clamped later by PageRequest.Normalize, not rejected.
func pageRequest(c echo.Context) ports.PageRequest {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return ports.PageRequest{Page: page, Limit: limit}
}

// messageResponse is the envelope for plain informational responses.
type messageResponse struct {
	Message string `json:"message"`
}
