package app

import (
	"context"
	"database/sql"
	"errors"

	"rewear/internal/models"
)

// ProcessUpload creates a new item listing owned by the caller. The item
// starts available; whether it is immediately visible depends on the
// auto-approve moderation policy.
func (app *App) ProcessUpload(ctx context.Context, claim models.Claim, req models.CreateItemRequest) (*models.Item, error) {
	if err := authorize(claim, nil); err != nil {
		return nil, err
	}
	if req.Title == "" {
		return nil, ErrValidation
	}

	item := &models.Item{
		OwnerID:     claim.UserID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		Size:        req.Size,
		Condition:   req.Condition,
		Tags:        req.Tags,
		Images:      req.Images,
		Status:      models.StatusAvailable,
		Approved:    app.cfg.AutoApproveItems,
	}

	item, err := app.db.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// ProcessBrowse lists approved items matching the facet filter, in insertion
// order. It is a pure read and requires no caller identity.
func (app *App) ProcessBrowse(ctx context.Context, filter models.ListingFilter) ([]models.Item, error) {
	return app.db.ApprovedItems(ctx, filter)
}

// ProcessMyItems lists the caller's own uploads regardless of moderation
// state.
func (app *App) ProcessMyItems(ctx context.Context, claim models.Claim) ([]models.Item, error) {
	if err := authorize(claim, nil); err != nil {
		return nil, err
	}
	return app.db.ItemsByOwner(ctx, claim.UserID)
}

// ProcessItemDetail returns a single item with its swap requests and history
// log.
func (app *App) ProcessItemDetail(ctx context.Context, itemID int32) (*models.Item, error) {
	item, err := app.db.ItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}
