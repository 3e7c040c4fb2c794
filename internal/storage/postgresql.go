// Package storage provides primitives for connecting to and interacting with data storage systems.
// It defines the repository interfaces the business logic depends on, along with a PostgreSQL
// implementation that manages users, item listings, swap requests and history records.
// The storage layer persists and retrieves state; business invariants are enforced above it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"rewear/internal/models"
	"rewear/internal/pkg/logger"
)

const (
	createUserQuery  = `INSERT INTO content.users (email, name, password_hash, role, points) VALUES ($1, $2, $3, $4, $5) RETURNING id;`
	userByEmailQuery = `SELECT id, name, password_hash, role, points FROM content.users WHERE email = $1;`
	userByIDQuery    = `SELECT email, name, role, points FROM content.users WHERE id = $1;`
	userActionsQuery = `SELECT item_id, action FROM content.item_history WHERE user_id = $1 ORDER BY id;`
	userPointsQuery  = `SELECT points FROM content.users WHERE id = $1;`
	adjustPointsQuery = `UPDATE content.users SET points = points + $1, updated_at = NOW() WHERE id = $2;`

	createItemQuery = `INSERT INTO content.items (owner_id, title, description, category, type, size, condition, tags, images, status, approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE(string_to_array(NULLIF($8, ''), ','), '{}'), COALESCE(string_to_array(NULLIF($9, ''), ','), '{}'), 'available', $10)
		RETURNING id, created_at;`

	selectItemsPrefix = `SELECT i.id, i.owner_id, u.name, i.title, i.description, i.category, i.type, i.size, i.condition,
		array_to_string(i.tags, ','), array_to_string(i.images, ','), i.status, i.approved, COALESCE(i.reserved_for, 0), i.created_at
		FROM content.items i JOIN content.users u ON i.owner_id = u.id`

	itemByIDQuery      = selectItemsPrefix + ` WHERE i.id = $1;`
	itemsByOwnerQuery  = selectItemsPrefix + ` WHERE i.owner_id = $1 ORDER BY i.id;`
	pendingItemsQuery  = selectItemsPrefix + ` WHERE NOT i.approved ORDER BY i.id;`
	deleteItemQuery    = `DELETE FROM content.items WHERE id = $1;`
	itemForUpdateQuery = `SELECT owner_id, status, approved FROM content.items WHERE id = $1 FOR UPDATE;`
	setItemStatusQuery = `UPDATE content.items SET status = $1, reserved_for = NULLIF($2, 0), updated_at = NOW() WHERE id = $3 AND status = $4;`
	approveItemQuery   = `UPDATE content.items SET approved = TRUE, updated_at = NOW() WHERE id = $1 AND NOT approved;`

	insertSwapRequestQuery   = `INSERT INTO content.swap_requests (item_id, requester_id) VALUES ($1, $2);`
	hasPendingRequestQuery   = `SELECT EXISTS (SELECT 1 FROM content.swap_requests WHERE item_id = $1 AND requester_id = $2 AND status = 'pending');`
	setRequestStatusQuery    = `UPDATE content.swap_requests SET status = $1 WHERE item_id = $2 AND requester_id = $3 AND status = 'pending';`
	rejectPendingExceptQuery = `UPDATE content.swap_requests SET status = 'rejected' WHERE item_id = $1 AND requester_id <> $2 AND status = 'pending';`
	itemRequestsQuery        = `SELECT sr.id, sr.requester_id, u.name, sr.status, sr.created_at FROM content.swap_requests sr JOIN content.users u ON sr.requester_id = u.id WHERE sr.item_id = $1 ORDER BY sr.id;`

	appendHistoryQuery = `INSERT INTO content.item_history (item_id, user_id, action) VALUES ($1, $2, $3);`
	itemHistoryQuery   = `SELECT user_id, action, created_at FROM content.item_history WHERE item_id = $1 ORDER BY id;`
)

// UserRepository defines the persistence operations on user accounts and
// their points balances. The tx-scoped methods participate in a transaction
// opened via InTx.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, userID int32) (*models.User, error)
	// UserActions returns the ids of items the user has swapped and redeemed,
	// derived from the history log.
	UserActions(ctx context.Context, userID int32) (swapped, redeemed []int32, err error)
	UserPoints(ctx context.Context, tx *sql.Tx, userID int32) (int, error)
	AdjustPoints(ctx context.Context, tx *sql.Tx, userID int32, delta int) error
}

// ItemRepository defines the persistence operations on item listings, their
// swap-request queues and history logs.
type ItemRepository interface {
	CreateItem(ctx context.Context, item *models.Item) (*models.Item, error)
	ItemByID(ctx context.Context, itemID int32) (*models.Item, error)
	ItemsByOwner(ctx context.Context, ownerID int32) ([]models.Item, error)
	ApprovedItems(ctx context.Context, filter models.ListingFilter) ([]models.Item, error)
	PendingItems(ctx context.Context) ([]models.Item, error)
	DeleteItem(ctx context.Context, itemID int32) (bool, error)

	// ItemForUpdate loads the mutable core of an item and locks its row for
	// the duration of the transaction.
	ItemForUpdate(ctx context.Context, tx *sql.Tx, itemID int32) (*models.Item, error)
	// SetItemStatus transitions the item from one status to another as a
	// compare-and-set. It reports whether a row was updated.
	SetItemStatus(ctx context.Context, tx *sql.Tx, itemID int32, from, to string, reservedFor int32) (bool, error)
	// MarkItemApproved flips the moderation flag. It reports false when the
	// item was already approved.
	MarkItemApproved(ctx context.Context, tx *sql.Tx, itemID int32) (bool, error)

	InsertSwapRequest(ctx context.Context, tx *sql.Tx, itemID, requesterID int32) error
	HasPendingRequest(ctx context.Context, tx *sql.Tx, itemID, requesterID int32) (bool, error)
	// SetRequestStatus resolves the requester's pending request. It reports
	// false when no pending request from that requester exists.
	SetRequestStatus(ctx context.Context, tx *sql.Tx, itemID, requesterID int32, status string) (bool, error)
	// RejectPendingExcept rejects every pending request on the item other
	// than the given requester's.
	RejectPendingExcept(ctx context.Context, tx *sql.Tx, itemID, requesterID int32) error

	AppendHistory(ctx context.Context, tx *sql.Tx, itemID, userID int32, action string) error
}

// Storage combines the repositories with transaction control.
type Storage interface {
	UserRepository
	ItemRepository

	// InTx runs fn inside a database transaction, committing on success and
	// rolling back on error.
	InTx(ctx context.Context, fn func(tx *sql.Tx) error) error

	// Close closes the database connection.
	Close()
}

// PostgreSQL implements the Storage interface using a PostgreSQL database.
type PostgreSQL struct {
	db  *sql.DB
	log *logger.Logger
}

// NewPostgreSQL creates a new PostgreSQL instance with the provided connection string and logger.
// It opens the connection and pings the database to ensure connectivity.
func NewPostgreSQL(configDBString string, l *logger.Logger) (*PostgreSQL, error) {
	db, err := sql.Open("pgx", configDBString)
	if err != nil {
		l.Sugar().Errorf("Failed to open a database: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	const defaultTimeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		l.Sugar().Errorf("Database ping failed: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	return &PostgreSQL{db: db, log: l}, nil
}

// Close closes the database connection if it is open.
func (postgresql *PostgreSQL) Close() {
	if postgresql.db != nil {
		postgresql.db.Close()
	}
}

// InTx runs fn inside a transaction. The transaction is rolled back unless
// fn returns nil and the commit succeeds.
func (postgresql *PostgreSQL) InTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

// CreateUser inserts a new user record. The Password field must already
// contain the bcrypt hash.
func (postgresql *PostgreSQL) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	err := postgresql.db.QueryRowContext(ctx, createUserQuery,
		user.Email, user.Name, user.Password, user.Role, user.Points).Scan(&user.ID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createUserQuery: %s", err)
		return user, err
	}
	return user, nil
}

// UserByEmail retrieves a user by email, including the stored password hash.
func (postgresql *PostgreSQL) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{Email: email}

	err := postgresql.db.QueryRowContext(ctx, userByEmailQuery, email).
		Scan(&user.ID, &user.Name, &user.Password, &user.Role, &user.Points)
	if err != nil {
		if err != sql.ErrNoRows {
			postgresql.log.Sugar().Errorf("Failed to execute a query userByEmailQuery: %s", err)
		}
		return user, err
	}

	return user, nil
}

// UserByID retrieves a user by id. The password hash is not loaded.
func (postgresql *PostgreSQL) UserByID(ctx context.Context, userID int32) (*models.User, error) {
	user := &models.User{ID: userID}

	err := postgresql.db.QueryRowContext(ctx, userByIDQuery, userID).
		Scan(&user.Email, &user.Name, &user.Role, &user.Points)
	if err != nil {
		if err != sql.ErrNoRows {
			postgresql.log.Sugar().Errorf("Failed to execute a query userByIDQuery: %s", err)
		}
		return user, err
	}

	return user, nil
}

// UserActions collects the item ids the user has swapped and redeemed from
// the history log.
func (postgresql *PostgreSQL) UserActions(ctx context.Context, userID int32) (swapped, redeemed []int32, err error) {
	rows, err := postgresql.db.QueryContext(ctx, userActionsQuery, userID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query userActionsQuery: %s", err)
		return nil, nil, err
	}
	defer rows.Close()

	swapped = make([]int32, 0)
	redeemed = make([]int32, 0)
	for rows.Next() {
		var itemID int32
		var action string
		if err := rows.Scan(&itemID, &action); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan history record in UserActions method: %s", err)
			return nil, nil, err
		}
		switch action {
		case models.ActionSwapped:
			swapped = append(swapped, itemID)
		case models.ActionRedeemed:
			redeemed = append(redeemed, itemID)
		}
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in UserActions method: %s", err)
		return swapped, redeemed, err
	}

	return swapped, redeemed, nil
}

// UserPoints reads the user's current points balance inside a transaction.
func (postgresql *PostgreSQL) UserPoints(ctx context.Context, tx *sql.Tx, userID int32) (int, error) {
	var points int
	err := tx.QueryRowContext(ctx, userPointsQuery, userID).Scan(&points)
	if err != nil {
		if err != sql.ErrNoRows {
			postgresql.log.Sugar().Errorf("Failed to execute a query userPointsQuery: %s", err)
		}
		return 0, err
	}
	return points, nil
}

// AdjustPoints adds delta to the user's points balance inside a transaction.
// A negative delta that would push the balance below zero violates the
// users_points_check constraint and fails the transaction.
func (postgresql *PostgreSQL) AdjustPoints(ctx context.Context, tx *sql.Tx, userID int32, delta int) error {
	if _, err := tx.ExecContext(ctx, adjustPointsQuery, delta, userID); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query adjustPointsQuery: %s", err)
		return err
	}
	return nil
}

// CreateItem inserts a new item listing and fills in its generated id and
// creation time.
func (postgresql *PostgreSQL) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	err := postgresql.db.QueryRowContext(ctx, createItemQuery,
		item.OwnerID, item.Title, item.Description, item.Category, item.Type, item.Size, item.Condition,
		strings.Join(item.Tags, ","), strings.Join(item.Images, ","), item.Approved).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createItemQuery: %s", err)
		return item, err
	}
	item.Status = models.StatusAvailable
	return item, nil
}

// ItemByID retrieves a single item together with its swap requests and
// history log.
func (postgresql *PostgreSQL) ItemByID(ctx context.Context, itemID int32) (*models.Item, error) {
	item, err := postgresql.scanItemRow(postgresql.db.QueryRowContext(ctx, itemByIDQuery, itemID))
	if err != nil {
		return nil, err
	}

	if item.SwapRequests, err = postgresql.itemRequests(ctx, itemID); err != nil {
		return nil, err
	}
	if item.History, err = postgresql.itemHistory(ctx, itemID); err != nil {
		return nil, err
	}

	return item, nil
}

// ItemsByOwner retrieves all items uploaded by the given user, in insertion
// order, regardless of moderation state.
func (postgresql *PostgreSQL) ItemsByOwner(ctx context.Context, ownerID int32) ([]models.Item, error) {
	return postgresql.queryItems(ctx, itemsByOwnerQuery, ownerID)
}

// ApprovedItems retrieves approved items matching the filter, in insertion
// order. Unset filter fields impose no constraint; tags match any-of.
func (postgresql *PostgreSQL) ApprovedItems(ctx context.Context, filter models.ListingFilter) ([]models.Item, error) {
	query, args := buildApprovedItemsQuery(filter)
	return postgresql.queryItems(ctx, query, args...)
}

// PendingItems retrieves items awaiting moderation, in insertion order.
func (postgresql *PostgreSQL) PendingItems(ctx context.Context) ([]models.Item, error) {
	return postgresql.queryItems(ctx, pendingItemsQuery)
}

// DeleteItem removes an item permanently. Swap requests and history go with
// it via the schema's cascade rules. It reports whether an item was deleted.
func (postgresql *PostgreSQL) DeleteItem(ctx context.Context, itemID int32) (bool, error) {
	result, err := postgresql.db.ExecContext(ctx, deleteItemQuery, itemID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query deleteItemQuery: %s", err)
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in deleteItemQuery: %s", err)
		return false, err
	}
	return rows > 0, nil
}

// ItemForUpdate loads the item's owner, status and moderation flag and locks
// the row until the surrounding transaction finishes.
func (postgresql *PostgreSQL) ItemForUpdate(ctx context.Context, tx *sql.Tx, itemID int32) (*models.Item, error) {
	item := &models.Item{ID: itemID}

	err := tx.QueryRowContext(ctx, itemForUpdateQuery, itemID).
		Scan(&item.OwnerID, &item.Status, &item.Approved)
	if err != nil {
		if err != sql.ErrNoRows {
			postgresql.log.Sugar().Errorf("Failed to execute a query itemForUpdateQuery: %s", err)
		}
		return item, err
	}

	return item, nil
}

// SetItemStatus performs the compare-and-set status transition. Pass zero
// for reservedFor to leave the item unreserved.
func (postgresql *PostgreSQL) SetItemStatus(ctx context.Context, tx *sql.Tx, itemID int32, from, to string, reservedFor int32) (bool, error) {
	result, err := tx.ExecContext(ctx, setItemStatusQuery, to, reservedFor, itemID, from)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query setItemStatusQuery: %s", err)
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in setItemStatusQuery: %s", err)
		return false, err
	}
	return rows > 0, nil
}

// MarkItemApproved flips the item's moderation flag to approved.
func (postgresql *PostgreSQL) MarkItemApproved(ctx context.Context, tx *sql.Tx, itemID int32) (bool, error) {
	result, err := tx.ExecContext(ctx, approveItemQuery, itemID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query approveItemQuery: %s", err)
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in approveItemQuery: %s", err)
		return false, err
	}
	return rows > 0, nil
}

// InsertSwapRequest appends a pending swap request. A second pending request
// from the same requester violates the uniq_pending_request index.
func (postgresql *PostgreSQL) InsertSwapRequest(ctx context.Context, tx *sql.Tx, itemID, requesterID int32) error {
	if _, err := tx.ExecContext(ctx, insertSwapRequestQuery, itemID, requesterID); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query insertSwapRequestQuery: %s", err)
		return err
	}
	return nil
}

// HasPendingRequest reports whether the requester already has a pending
// request on the item.
func (postgresql *PostgreSQL) HasPendingRequest(ctx context.Context, tx *sql.Tx, itemID, requesterID int32) (bool, error) {
	var exists bool
	if err := tx.QueryRowContext(ctx, hasPendingRequestQuery, itemID, requesterID).Scan(&exists); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query hasPendingRequestQuery: %s", err)
		return false, err
	}
	return exists, nil
}

// SetRequestStatus resolves the requester's pending request to the given
// status. It reports false when there was no pending request to resolve.
func (postgresql *PostgreSQL) SetRequestStatus(ctx context.Context, tx *sql.Tx, itemID, requesterID int32, status string) (bool, error) {
	result, err := tx.ExecContext(ctx, setRequestStatusQuery, status, itemID, requesterID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query setRequestStatusQuery: %s", err)
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in setRequestStatusQuery: %s", err)
		return false, err
	}
	return rows > 0, nil
}

// RejectPendingExcept rejects every pending request on the item except the
// given requester's.
func (postgresql *PostgreSQL) RejectPendingExcept(ctx context.Context, tx *sql.Tx, itemID, requesterID int32) error {
	if _, err := tx.ExecContext(ctx, rejectPendingExceptQuery, itemID, requesterID); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query rejectPendingExceptQuery: %s", err)
		return err
	}
	return nil
}

// AppendHistory records a completed action on the item's audit log.
func (postgresql *PostgreSQL) AppendHistory(ctx context.Context, tx *sql.Tx, itemID, userID int32, action string) error {
	if _, err := tx.ExecContext(ctx, appendHistoryQuery, itemID, userID, action); err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query appendHistoryQuery: %s", err)
		return err
	}
	return nil
}

// rowScanner abstracts sql.Row and sql.Rows for the shared item scan.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (postgresql *PostgreSQL) scanItemRow(row rowScanner) (*models.Item, error) {
	item := &models.Item{}
	var tags, images string

	err := row.Scan(&item.ID, &item.OwnerID, &item.OwnerName, &item.Title, &item.Description,
		&item.Category, &item.Type, &item.Size, &item.Condition, &tags, &images,
		&item.Status, &item.Approved, &item.ReservedFor, &item.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			postgresql.log.Sugar().Errorf("Failed to scan item row: %s", err)
		}
		return nil, err
	}

	item.Tags = splitList(tags)
	item.Images = splitList(images)
	return item, nil
}

func (postgresql *PostgreSQL) queryItems(ctx context.Context, query string, args ...interface{}) ([]models.Item, error) {
	rows, err := postgresql.db.QueryContext(ctx, query, args...)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute an item listing query: %s", err)
		return nil, err
	}
	defer rows.Close()

	const initialListingCapacity = 10
	items := make([]models.Item, 0, initialListingCapacity)

	for rows.Next() {
		item, err := postgresql.scanItemRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in queryItems method: %s", err)
		return items, err
	}

	return items, nil
}

func (postgresql *PostgreSQL) itemRequests(ctx context.Context, itemID int32) ([]models.SwapRequest, error) {
	rows, err := postgresql.db.QueryContext(ctx, itemRequestsQuery, itemID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query itemRequestsQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	requests := make([]models.SwapRequest, 0)
	for rows.Next() {
		request := models.SwapRequest{}
		if err := rows.Scan(&request.ID, &request.RequesterID, &request.RequesterName, &request.Status, &request.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan swap request in itemRequests method: %s", err)
			return nil, err
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in itemRequests method: %s", err)
		return requests, err
	}

	return requests, nil
}

func (postgresql *PostgreSQL) itemHistory(ctx context.Context, itemID int32) ([]models.HistoryEntry, error) {
	rows, err := postgresql.db.QueryContext(ctx, itemHistoryQuery, itemID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query itemHistoryQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	history := make([]models.HistoryEntry, 0)
	for rows.Next() {
		entry := models.HistoryEntry{}
		if err := rows.Scan(&entry.UserID, &entry.Action, &entry.CreatedAt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan history entry in itemHistory method: %s", err)
			return nil, err
		}
		history = append(history, entry)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in itemHistory method: %s", err)
		return history, err
	}

	return history, nil
}

// buildApprovedItemsQuery appends the facet constraints from the filter to
// the approved-items listing query. Facets combine with AND; the tags facet
// matches items carrying any of the requested tags.
func buildApprovedItemsQuery(filter models.ListingFilter) (string, []interface{}) {
	conditions := []string{"i.approved"}
	args := make([]interface{}, 0, 5)

	addFacet := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("i.%s = $%d", column, len(args)))
	}

	addFacet("category", filter.Category)
	addFacet("size", filter.Size)
	addFacet("type", filter.Type)
	addFacet("condition", filter.Condition)

	if len(filter.Tags) > 0 {
		args = append(args, strings.Join(filter.Tags, ","))
		conditions = append(conditions, fmt.Sprintf("i.tags && string_to_array($%d, ',')", len(args)))
	}

	return selectItemsPrefix + " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY i.id;", args
}

func splitList(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ",")
}
