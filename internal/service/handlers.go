package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"rewear/internal/app"
	"rewear/internal/models"
	"rewear/internal/pkg/auth"
	"rewear/internal/pkg/logger"
)

const requestTimeout = 10 * time.Second

// handlers aggregates dependencies needed by HTTP handlers,
// including the application business logic and logger.
type handlers struct {
	app *app.App
	log *logger.Logger
}

// newHandlers initializes a new handlers instance with the provided app and logger dependencies.
func newHandlers(app *app.App, l *logger.Logger) *handlers {
	return &handlers{app: app, log: l}
}

// claimFromRequest extracts the verified caller claim stored by the JWT
// middleware.
func claimFromRequest(req *http.Request) (models.Claim, bool) {
	return auth.ClaimFromContext(req.Context())
}

// itemIDFromRequest parses the {id} URL parameter.
func itemIDFromRequest(req *http.Request) (int32, error) {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

// writeBusinessError maps an engine error to its HTTP status and writes the
// JSON error payload. Unrecognized errors surface as an internal error.
func writeBusinessError(res http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrNotFound):
		writeErrorResponse(res, err.Error(), http.StatusNotFound)
	case errors.Is(err, app.ErrForbidden):
		writeErrorResponse(res, err.Error(), http.StatusForbidden)
	case errors.Is(err, app.ErrUnauthorized), errors.Is(err, app.ErrInvalidCredentials):
		writeErrorResponse(res, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, app.ErrInvalidState), errors.Is(err, app.ErrDuplicateRequest), errors.Is(err, app.ErrEmailTaken):
		writeErrorResponse(res, err.Error(), http.StatusConflict)
	case errors.Is(err, app.ErrSelfReference), errors.Is(err, app.ErrInsufficientPoints), errors.Is(err, app.ErrValidation):
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
	default:
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
	}
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}

func writeJSONResponse(res http.ResponseWriter, payload interface{}) {
	result, err := json.Marshal(payload)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)
	res.Write(result)
}
