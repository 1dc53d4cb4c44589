package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"hathor-chatbot/pkg"
)

// FreeSubscriptionThreshold is the total item count in a single purchase
// that earns a free subscription.
const FreeSubscriptionThreshold = 3

// FreeSubscriptionDays is the length of the earned subscription.
const FreeSubscriptionDays = 90

// Repository wraps database operations for purchases and subscriptions
// over a single postgres database.
type Repository struct {
	DB *sql.DB
}

// NewRepository constructs a new Repository from an existing sql.DB.
// The caller is responsible for managing the DB connection lifecycle.
func NewRepository(db *sql.DB) *Repository { return &Repository{DB: db} }

// CreatePurchase records a purchase and its line items in one transaction.
// It returns the stored purchase with its generated ID and timestamp.
func (r *Repository) CreatePurchase(ctx context.Context, userID string, items []pkg.PurchaseItem) (*pkg.Purchase, error) {
	if len(items) == 0 {
		return nil, errors.New("purchase requires at least one item")
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	p := &pkg.Purchase{ID: uuid.New().String(), UserID: userID, Items: items, TotalItems: TotalItems(items)}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO purchases (id, user_id, total_items)
         VALUES ($1, $2, $3)
         RETURNING created_at`,
		p.ID, userID, p.TotalItems,
	).Scan(&p.CreatedAt)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO purchase_items (purchase_id, oil_id, quantity)
             VALUES ($1, $2, $3)`,
			p.ID, item.OilID, item.Quantity,
		); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return p, nil
}

// ActivateFreeSubscription grants the user a free subscription running
// from now for FreeSubscriptionDays.  An existing row for the user is
// replaced so a repeat qualifying purchase restarts the clock.
func (r *Repository) ActivateFreeSubscription(ctx context.Context, userID string) (*pkg.Subscription, error) {
	start := time.Now().UTC()
	end := start.AddDate(0, 0, FreeSubscriptionDays)
	s := &pkg.Subscription{UserID: userID, IsActive: true, IsFree: true, StartDate: &start, EndDate: &end}
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO subscriptions (user_id, is_active, is_free, start_date, end_date)
         VALUES ($1, TRUE, TRUE, $2, $3)
         ON CONFLICT (user_id)
         DO UPDATE SET is_active = TRUE, is_free = TRUE, start_date = $2, end_date = $3`,
		userID, start, end,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetSubscription returns the user's subscription, or nil when none exists.
func (r *Repository) GetSubscription(ctx context.Context, userID string) (*pkg.Subscription, error) {
	var s pkg.Subscription
	err := r.DB.QueryRowContext(ctx,
		`SELECT user_id, is_active, is_free, start_date, end_date
         FROM subscriptions
         WHERE user_id = $1`,
		userID,
	).Scan(&s.UserID, &s.IsActive, &s.IsFree, &s.StartDate, &s.EndDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// TotalItems sums the quantities across all lines of a purchase.
func TotalItems(items []pkg.PurchaseItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// QualifiesForFreeSubscription reports whether a purchase earns the free
// subscription.  Total quantity counts, not distinct oils.
func QualifiesForFreeSubscription(items []pkg.PurchaseItem) bool {
	return TotalItems(items) >= FreeSubscriptionThreshold
}
