package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"rewear/internal/models"
)

// swapRequestHandler files a swap request by the authenticated caller
// against the item in the URL.
func (handlers *handlers) swapRequestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	claim, ok := claimFromRequest(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	itemID, err := itemIDFromRequest(req)
	if err != nil {
		writeErrorResponse(res, "invalid item id", http.StatusBadRequest)
		return
	}

	if err := handlers.app.ProcessSwapRequest(ctx, claim, itemID); err != nil {
		writeBusinessError(res, err)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// swapResponseHandler lets the item owner approve or reject a pending swap
// request.
func (handlers *handlers) swapResponseHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	claim, ok := claimFromRequest(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	itemID, err := itemIDFromRequest(req)
	if err != nil {
		writeErrorResponse(res, "invalid item id", http.StatusBadRequest)
		return
	}

	var swapResponse models.SwapResponseRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = json.Unmarshal(requestBody, &swapResponse); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handlers.app.ProcessSwapResponse(ctx, claim, itemID, swapResponse); err != nil {
		writeBusinessError(res, err)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// redeemHandler redeems the item in the URL for the authenticated caller's
// points.
func (handlers *handlers) redeemHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	claim, ok := claimFromRequest(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	itemID, err := itemIDFromRequest(req)
	if err != nil {
		writeErrorResponse(res, "invalid item id", http.StatusBadRequest)
		return
	}

	if err := handlers.app.ProcessRedeem(ctx, claim, itemID); err != nil {
		writeBusinessError(res, err)
		return
	}

	res.WriteHeader(http.StatusOK)
}
