package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/errs"
)

// ErrorResponse is the envelope of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var defaultMessages = map[int]string{
	http.StatusBadRequest:          errs.MsgBadRequest,
	http.StatusNotFound:            errs.MsgNotFound,
	http.StatusMethodNotAllowed:    errs.MsgMethodNotAllowed,
	http.StatusUnprocessableEntity: errs.MsgUnprocessable,
	http.StatusTooManyRequests:     errs.MsgTooManyRequests,
	http.StatusInternalServerError: errs.MsgInternal,
}

// GlobalErrorHandler renders every error returned by a handler or
// middleware in the error envelope. Classified errors keep their message;
// echo errors and unknown errors get the default message for their status.
func GlobalErrorHandler(err error, c echo.Context) {
	status, message := classify(err)

	logger := GetLogger(c)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if c.Response().Committed {
		return
	}

	resp := ErrorResponse{Success: false, Error: status, Message: message}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, resp)
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to write error response")
	}
}

func classify(err error) (int, string) {
	var appErr *errs.Error
	if errors.As(err, &appErr) {
		return appErr.Status(), appErr.Message
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return echoErr.Code, defaultMessage(echoErr.Code)
	}

	return http.StatusInternalServerError, errs.MsgInternal
}

func defaultMessage(status int) string {
	if msg, ok := defaultMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}
