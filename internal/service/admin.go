package service

import (
	"context"
	"net/http"
)

// pendingItemsHandler lists listings awaiting moderation.
func (handlers *handlers) pendingItemsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	claim, ok := claimFromRequest(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := handlers.app.ProcessPendingItems(ctx, claim)
	if err != nil {
		writeBusinessError(res, err)
		return
	}

	writeJSONResponse(res, items)
}

// approveItemHandler approves a pending listing and credits the listing
// bonus to its uploader.
func (handlers *handlers) approveItemHandler(res http.ResponseWriter, req *http.Request) {
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

	if err := handlers.app.ProcessApproveItem(ctx, claim, itemID); err != nil {
		writeBusinessError(res, err)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// rejectItemHandler rejects a listing, removing it permanently.
func (handlers *handlers) rejectItemHandler(res http.ResponseWriter, req *http.Request) {
	handlers.removeItem(res, req)
}

// deleteItemHandler removes any listing permanently.
func (handlers *handlers) deleteItemHandler(res http.ResponseWriter, req *http.Request) {
	handlers.removeItem(res, req)
}

func (handlers *handlers) removeItem(res http.ResponseWriter, req *http.Request) {
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

	if err := handlers.app.ProcessRejectItem(ctx, claim, itemID); err != nil {
		writeBusinessError(res, err)
		return
	}

	res.WriteHeader(http.StatusOK)
}
