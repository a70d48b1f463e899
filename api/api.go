package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/signrelay/signrelay/logging"
	"github.com/signrelay/signrelay/pkg"
	"github.com/signrelay/signrelay/pkg/services"
)

// Wrapper bridges the api types and http logic to the internal types and
// logic. It checks parameters and message bodies, passes internal formats to
// the SigningClient and converts results back to api types. It handles errors
// and returns the correct http response. It does not perform any business
// logic.
type Wrapper struct {
	Auth pkg.SigningClient
}

// EchoRouter is the subset of the echo router the api mounts its routes on.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts all api routes on the given router.
func RegisterHandlers(router EchoRouter, wrapper *Wrapper) {
	router.POST("/api/sessions", wrapper.CreateSigningSession)
	router.POST("/api/sessions/:id/signing-url", wrapper.GetSigningURL)
	router.GET("/api/sessions/:id/status", wrapper.GetSessionStatus)
	router.GET("/api/documents/:file", wrapper.GetSignedDocument)
	router.GET("/api/sessions", wrapper.ListSessions)
}

// CreateSigningSession translates the http body to the internal signer format,
// creates a signing session and returns the new session ID.
func (w *Wrapper) CreateSigningSession(ctx echo.Context) error {
	params := new(CreateSessionRequest)
	if err := ctx.Bind(params); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "could not parse request body"})
	}

	sessionID, err := w.Auth.CreateSession(services.SignerDetails{
		Name:  params.Name,
		Email: params.Email,
		Phone: params.Phone,
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CreateSessionResult{SessionID: sessionID})
}

// GetSigningURL returns the embedded signing page URL for a session.
// If the session is not found it returns a 404.
func (w *Wrapper) GetSigningURL(ctx echo.Context) error {
	signURL, err := w.Auth.SigningURL(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, SigningURLResult{SignURL: signURL})
}

// GetSessionStatus polls the provider for the current signing status and
// returns the normalized result.
func (w *Wrapper) GetSessionStatus(ctx echo.Context) error {
	status, err := w.Auth.SessionStatus(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, SessionStatusResult{Status: string(status)})
}

// GetSignedDocument streams the signed document as a PDF attachment. The path
// parameter is the session ID with a .pdf suffix.
func (w *Wrapper) GetSignedDocument(ctx echo.Context) error {
	sessionID := strings.TrimSuffix(ctx.Param("file"), ".pdf")

	document, err := w.Auth.SignedDocument(sessionID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="signed_document.pdf"`)
	return ctx.Blob(http.StatusOK, "application/pdf", document)
}

// ListSessions returns a snapshot of all sessions. Diagnostic only.
func (w *Wrapper) ListSessions(ctx echo.Context) error {
	sessions := w.Auth.ListSessions()

	summaries := make([]SessionSummary, 0, len(sessions))
	for _, s := range sessions {
		summaries = append(summaries, SessionSummary{
			ID:     s.ID,
			Status: string(s.Status),
			Signer: SignerSummary{
				Name:  s.Signer.Name,
				Email: s.Signer.Email,
				Phone: s.Signer.Phone,
			},
			CreatedAt: s.CreatedAt,
		})
	}
	return ctx.JSON(http.StatusOK, summaries)
}

// errorResponse maps the internal error taxonomy onto http statuses. The
// underlying cause is kept in the payload for diagnosability.
func errorResponse(ctx echo.Context, err error) error {
	var validationErr services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrSessionNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		logging.Log().WithError(err).Error("request failed")
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
