package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"rewear/internal/models"
)

// createItemHandler processes a new listing upload by the authenticated
// caller.
func (handlers *handlers) createItemHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	claim, ok := claimFromRequest(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	var createRequest models.CreateItemRequest

	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err = json.Unmarshal(requestBody, &createRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := handlers.app.ProcessUpload(ctx, claim, createRequest)
	if err != nil {
		writeBusinessError(res, err)
		return
	}

	writeJSONResponse(res, item)
}

// browseItemsHandler lists approved items. The facet filters are read from
// the query string; tags accepts a comma separated any-of list.
func (handlers *handlers) browseItemsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	query := req.URL.Query()
	filter := models.ListingFilter{
		Category:  query.Get("category"),
		Size:      query.Get("size"),
		Type:      query.Get("type"),
		Condition: query.Get("condition"),
	}
	if tags := query.Get("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}

	items, err := handlers.app.ProcessBrowse(ctx, filter)
	if err != nil {
		writeBusinessError(res, err)
		return
	}

	writeJSONResponse(res, items)
}

// myItemsHandler lists the caller's own uploads regardless of moderation
// state.
func (handlers *handlers) myItemsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	claim, ok := claimFromRequest(req)
	if !ok {
		writeErrorResponse(res, "unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := handlers.app.ProcessMyItems(ctx, claim)
	if err != nil {
		writeBusinessError(res, err)
		return
	}

	writeJSONResponse(res, items)
}

// itemDetailHandler returns one item with its swap requests and history.
func (handlers *handlers) itemDetailHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	itemID, err := itemIDFromRequest(req)
	if err != nil {
		writeErrorResponse(res, "invalid item id", http.StatusBadRequest)
		return
	}

	item, err := handlers.app.ProcessItemDetail(ctx, itemID)
	if err != nil {
		writeBusinessError(res, err)
		return
	}

	writeJSONResponse(res, item)
}
