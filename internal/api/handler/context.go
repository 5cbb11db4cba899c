package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// operatorID extracts the acting principal's employee id injected by the Auth
// middleware. Its presence proves the middleware ran; a zero id means the
// request never passed authentication and is rejected before any service call.
func operatorID(c echo.Context) (int64, error) {
	id, _ := c.Get("emp_id").(int64)
	if id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
