// Package app provides the core business logic for the clothing exchange.
// It owns the item state machine (available, swapped, redeemed), the swap
// request and redemption workflows, the points ledger movements they cause,
// and the moderation gate. All mutations go through the storage layer inside
// per-item transactions so that concurrent operations on one item cannot
// both succeed.
package app

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"rewear/internal/config"
	"rewear/internal/models"
	"rewear/internal/pkg/auth"
	"rewear/internal/pkg/logger"
	"rewear/internal/pkg/security"
	"rewear/internal/storage"
)

// App encapsulates the application logic and dependencies required to process requests.
// It interacts with the storage layer through the repository interfaces and
// uses an injected configuration for the points policy.
type App struct {
	db     storage.Storage
	tokens *auth.TokenManager
	cfg    *config.Config
	log    *logger.Logger
}

// NewApp creates and returns a new instance of App with the provided dependencies.
func NewApp(db storage.Storage, tokens *auth.TokenManager, cfg *config.Config, log *logger.Logger) *App {
	return &App{db: db, tokens: tokens, cfg: cfg, log: log}
}

// authorize is the single capability check applied by every operation that
// requires a caller identity. The allow predicate, when non-nil, additionally
// restricts the operation to callers with a given role or ownership.
func authorize(claim models.Claim, allow func(models.Claim) bool) error {
	if claim.UserID == 0 {
		return ErrUnauthorized
	}
	if allow != nil && !allow(claim) {
		return ErrForbidden
	}
	return nil
}

func asAdmin(claim models.Claim) bool {
	return claim.Role == models.RoleAdmin
}

func asOwner(ownerID int32) func(models.Claim) bool {
	return func(claim models.Claim) bool {
		return claim.UserID == ownerID
	}
}

// isPgError reports whether err is a PostgreSQL error with the given code.
func isPgError(err error, code string) bool {
	var pgError *pgconn.PgError
	return errors.As(err, &pgError) && pgError.Code == code
}

// ProcessRegister creates a new user account with the configured starting
// points balance and the regular user role.
func (app *App) ProcessRegister(ctx context.Context, req models.RegisterRequest) error {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return ErrValidation
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: passwordHash,
		Role:     models.RoleUser,
		Points:   app.cfg.StartingPoints,
	}

	if _, err := app.db.CreateUser(ctx, user); err != nil {
		if isPgError(err, pgerrcode.UniqueViolation) {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

// ProcessLogin verifies the credentials and issues a signed token carrying
// the user's identity and role.
func (app *App) ProcessLogin(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrValidation
	}

	user, err := app.db.UserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := security.CheckPassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := app.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User: models.UserInfo{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Points: user.Points,
			Role:   user.Role,
		},
	}, nil
}

// ProcessProfile returns the caller's account information together with the
// item ids they have swapped and redeemed, derived from the history log.
func (app *App) ProcessProfile(ctx context.Context, claim models.Claim) (*models.ProfileResponse, error) {
	if err := authorize(claim, nil); err != nil {
		return nil, err
	}

	user, err := app.db.UserByID(ctx, claim.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	swapped, redeemed, err := app.db.UserActions(ctx, claim.UserID)
	if err != nil {
		return nil, err
	}

	return &models.ProfileResponse{
		UserInfo: models.UserInfo{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Points: user.Points,
			Role:   user.Role,
		},
		Swapped:  swapped,
		Redeemed: redeemed,
	}, nil
}
