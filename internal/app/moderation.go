package app

import (
	"context"
	"database/sql"
	"errors"

	"rewear/internal/models"
)

// ProcessPendingItems lists listings awaiting moderation. Admin only.
func (app *App) ProcessPendingItems(ctx context.Context, claim models.Claim) ([]models.Item, error) {
	if err := authorize(claim, asAdmin); err != nil {
		return nil, err
	}
	return app.db.PendingItems(ctx)
}

// ProcessApproveItem marks a pending listing approved, making it visible and
// transactable, and credits the listing bonus to the uploader. Approving an
// already approved item fails so the bonus is paid at most once.
func (app *App) ProcessApproveItem(ctx context.Context, claim models.Claim, itemID int32) error {
	if err := authorize(claim, asAdmin); err != nil {
		return err
	}

	return app.db.InTx(ctx, func(tx *sql.Tx) error {
		item, err := app.db.ItemForUpdate(ctx, tx, itemID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		approved, err := app.db.MarkItemApproved(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if !approved {
			return ErrInvalidState
		}

		return app.db.AdjustPoints(ctx, tx, item.OwnerID, app.cfg.ListingBonus)
	})
}

// ProcessRejectItem deletes a listing permanently. No history entry is kept
// and no points move. Admin only. The same operation backs both moderation
// rejection and the admin hard delete.
func (app *App) ProcessRejectItem(ctx context.Context, claim models.Claim, itemID int32) error {
	if err := authorize(claim, asAdmin); err != nil {
		return err
	}

	deleted, err := app.db.DeleteItem(ctx, itemID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
