package api

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// maxLoggedBodySize bounds how much of a request body is parsed for logging.
const maxLoggedBodySize = 1000

// RequestLogger logs every request with method, path and status. For small
// JSON bodies the payload is logged too, with the signer email masked.
// Credentials and sensitive headers are never logged.
func RequestLogger(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			entry := logger.WithFields(logrus.Fields{
				"method": ctx.Request().Method,
				"path":   ctx.Request().URL.Path,
			})

			if body := sanitizedBody(ctx); body != "" {
				entry = entry.WithField("body", body)
			}

			err := next(ctx)
			entry.WithField("status", ctx.Response().Status).Info("request handled")
			return err
		}
	}
}

// sanitizedBody reads a small JSON request body, masks the email field and
// restores the body so handlers can still bind it.
func sanitizedBody(ctx echo.Context) string {
	request := ctx.Request()
	if request.Body == nil || request.ContentLength <= 0 || request.ContentLength >= maxLoggedBodySize {
		return ""
	}

	raw, err := io.ReadAll(request.Body)
	request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return ""
	}

	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "[parse error]"
	}
	if email, ok := body["email"].(string); ok {
		body["email"] = maskEmail(email)
	}

	sanitized, err := json.Marshal(body)
	if err != nil {
		return ""
	}
	return string(sanitized)
}

func maskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 2 {
		return "***"
	}
	return email[:2] + "***" + email[at:]
}
