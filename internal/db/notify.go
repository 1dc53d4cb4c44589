package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// DefaultNotifyChannel announces subscription activations to interested
// listeners (admin dashboards, mailers).
const DefaultNotifyChannel = "subscription_activated"

// Notifier wraps postgres LISTEN/NOTIFY for subscription activation events.
type Notifier struct {
	ConnInfo string
	Channel  string
	DB       *sql.DB
}

// NewNotifier constructs a Notifier.  connInfo is the postgres DSN used to
// open the dedicated listener connection; channel defaults to
// DefaultNotifyChannel when empty.
func NewNotifier(db *sql.DB, connInfo, channel string) *Notifier {
	if channel == "" {
		channel = DefaultNotifyChannel
	}
	return &Notifier{ConnInfo: connInfo, Channel: channel, DB: db}
}

// Notify announces a subscription activation for userID on the channel.
func (n *Notifier) Notify(ctx context.Context, userID string) error {
	_, err := n.DB.ExecContext(ctx, "SELECT pg_notify($1, $2)", n.Channel, userID)
	if err != nil {
		return fmt.Errorf("notify %s: %w", pq.QuoteIdentifier(n.Channel), err)
	}
	return nil
}

// Listen yields user IDs as activations arrive on the channel.  The
// returned channel closes when ctx is cancelled.
func (n *Notifier) Listen(ctx context.Context) (<-chan string, error) {
	listener := pq.NewListener(n.ConnInfo, 10*time.Second, time.Minute, nil)
	if err := listener.Listen(n.Channel); err != nil {
		_ = listener.Close()
		return nil, err
	}
	ch := make(chan string)
	go func() {
		defer func() {
			_ = listener.Close()
			close(ch)
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-listener.Notify:
				if ev == nil {
					// Connection reset; the listener reconnects on its own.
					continue
				}
				select {
				case ch <- ev.Extra:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch, nil
}
