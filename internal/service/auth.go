package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"rewear/internal/models"
)

// registerHandler handles new user registration.
// It reads the request body, unmarshals it into a RegisterRequest and
// invokes the registration process.
func (handlers *handlers) registerHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var registerRequest models.RegisterRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = json.Unmarshal(requestBody, &registerRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = handlers.app.ProcessRegister(ctx, registerRequest); err != nil {
		writeBusinessError(res, err)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// loginHandler handles user authentication.
// On success it returns a JSON response with the signed token and the
// authenticated user's public fields.
func (handlers *handlers) loginHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var loginRequest models.LoginRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = json.Unmarshal(requestBody, &loginRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	loginResponse, err := handlers.app.ProcessLogin(ctx, loginRequest)
	if err != nil {
		writeBusinessError(res, err)
		return
	}

	writeJSONResponse(res, loginResponse)
}

// profileHandler returns the authenticated caller's account information.
func (handlers *handlers) profileHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	claim, ok := claimFromRequest(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := handlers.app.ProcessProfile(ctx, claim)
	if err != nil {
		writeBusinessError(res, err)
		return
	}

	writeJSONResponse(res, profile)
}
