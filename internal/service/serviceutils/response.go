package serviceutils

import (
	"github.com/labstack/echo/v4"

	"github.com/locvowork/decant_storefront/internal/logger"
)

// APIResponse is the JSON envelope of every API reply.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ResponseSuccess writes a successful envelope.
func ResponseSuccess(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// ResponseError logs err and writes a failed envelope. Server errors keep the
// cause out of the response body.
func ResponseError(c echo.Context, status int, message string, err error) error {
	ctx := c.Request().Context()
	resp := APIResponse{Success: false, Message: message}

	if err != nil {
		if status >= 500 {
			logger.ErrorLog(ctx, "%s: %v", message, err)
		} else {
			logger.WarnLog(ctx, "%s: %v", message, err)
			resp.Error = err.Error()
		}
	}
	if resp.Error == "" {
		resp.Error = message
	}
	return c.JSON(status, resp)
}
