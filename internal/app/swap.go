package app

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"

	"rewear/internal/models"
)

// ProcessSwapRequest appends a pending swap request from the caller to an
// available, approved item. No points move at this stage. The item row is
// locked for the duration of the check so a concurrent terminal transition
// cannot slip between the status read and the insert.
func (app *App) ProcessSwapRequest(ctx context.Context, claim models.Claim, itemID int32) error {
	if err := authorize(claim, nil); err != nil {
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

		if !item.Approved || item.Status != models.StatusAvailable {
			return ErrInvalidState
		}
		if item.OwnerID == claim.UserID {
			return ErrSelfReference
		}

		pending, err := app.db.HasPendingRequest(ctx, tx, itemID, claim.UserID)
		if err != nil {
			return err
		}
		if pending {
			return ErrDuplicateRequest
		}

		if err := app.db.InsertSwapRequest(ctx, tx, itemID, claim.UserID); err != nil {
			// Backstop for a race the pre-check cannot see; the partial
			// unique index on pending requests rejects the second insert.
			if isPgError(err, pgerrcode.UniqueViolation) {
				return ErrDuplicateRequest
			}
			return err
		}

		return nil
	})
}

// ProcessSwapResponse lets the item owner approve or reject a pending swap
// request. Rejection only resolves that request. Approval moves the item to
// its swapped terminal state, credits the swap bonus to both parties,
// records history entries for both, and rejects every other pending request
// on the item, all within one transaction.
func (app *App) ProcessSwapResponse(ctx context.Context, claim models.Claim, itemID int32, req models.SwapResponseRequest) error {
	if err := authorize(claim, nil); err != nil {
		return err
	}
	if req.RequesterID == 0 {
		return ErrValidation
	}
	if req.Action != models.SwapActionApprove && req.Action != models.SwapActionReject {
		return ErrValidation
	}

	return app.db.InTx(ctx, func(tx *sql.Tx) error {
		item, err := app.db.ItemForUpdate(ctx, tx, itemID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		if err := authorize(claim, asOwner(item.OwnerID)); err != nil {
			return err
		}

		if req.Action == models.SwapActionReject {
			resolved, err := app.db.SetRequestStatus(ctx, tx, itemID, req.RequesterID, models.RequestRejected)
			if err != nil {
				return err
			}
			if !resolved {
				return ErrNotFound
			}
			return nil
		}

		if item.Status != models.StatusAvailable {
			return ErrInvalidState
		}

		resolved, err := app.db.SetRequestStatus(ctx, tx, itemID, req.RequesterID, models.RequestApproved)
		if err != nil {
			return err
		}
		if !resolved {
			return ErrNotFound
		}

		moved, err := app.db.SetItemStatus(ctx, tx, itemID, models.StatusAvailable, models.StatusSwapped, 0)
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidState
		}

		if err := app.db.RejectPendingExcept(ctx, tx, itemID, req.RequesterID); err != nil {
			return err
		}

		if err := app.db.AppendHistory(ctx, tx, itemID, req.RequesterID, models.ActionSwapped); err != nil {
			return err
		}
		if err := app.db.AppendHistory(ctx, tx, itemID, item.OwnerID, models.ActionSwapped); err != nil {
			return err
		}

		if err := app.db.AdjustPoints(ctx, tx, req.RequesterID, app.cfg.SwapBonus); err != nil {
			return err
		}
		return app.db.AdjustPoints(ctx, tx, item.OwnerID, app.cfg.SwapBonus)
	})
}

// ProcessRedeem acquires an available item by spending points. The
// redemption cost moves from the redeemer to the owner, the item enters its
// redeemed terminal state reserved for the redeemer, and a history entry is
// recorded, all within one transaction.
func (app *App) ProcessRedeem(ctx context.Context, claim models.Claim, itemID int32) error {
	if err := authorize(claim, nil); err != nil {
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

		if !item.Approved || item.Status != models.StatusAvailable {
			return ErrInvalidState
		}
		if item.OwnerID == claim.UserID {
			return ErrSelfReference
		}

		points, err := app.db.UserPoints(ctx, tx, claim.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if points < app.cfg.RedemptionCost {
			return ErrInsufficientPoints
		}

		if err := app.db.AdjustPoints(ctx, tx, claim.UserID, -app.cfg.RedemptionCost); err != nil {
			if isPgError(err, pgerrcode.CheckViolation) {
				return ErrInsufficientPoints
			}
			return err
		}
		if err := app.db.AdjustPoints(ctx, tx, item.OwnerID, app.cfg.RedemptionCost); err != nil {
			return err
		}

		moved, err := app.db.SetItemStatus(ctx, tx, itemID, models.StatusAvailable, models.StatusRedeemed, claim.UserID)
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidState
		}

		return app.db.AppendHistory(ctx, tx, itemID, claim.UserID, models.ActionRedeemed)
	})
}
