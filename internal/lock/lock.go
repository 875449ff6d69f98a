package lock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Advisory is a MySQL named lock. GET_LOCK is session scoped, so it lives on
// the pinned connection it was taken on; work that must run under the lock
// goes through that same connection.
type Advisory struct {
	conn *sqlx.Conn
	name string
}

// ReviewKey names the lock guarding the one-review-per-user-per-business rule.
func ReviewKey(businessID, userID int64) string {
	return fmt.Sprintf("reviews:%d:%d", businessID, userID)
}

// Acquire waits up to timeoutSeconds for the named lock on conn. The caller
// keeps ownership of conn and closes it after Release.
func Acquire(ctx context.Context, conn *sqlx.Conn, name string, timeoutSeconds int) (*Advisory, error) {
	if timeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSeconds)*time.Second+500*time.Millisecond)
		defer cancel()
	}

	var got sql.NullInt64
	if err := conn.GetContext(ctx, &got, "SELECT GET_LOCK(?, ?)", name, timeoutSeconds); err != nil {
		return nil, err
	}
	if !got.Valid || got.Int64 != 1 {
		return nil, fmt.Errorf("lock %q not acquired (result=%v)", name, got)
	}
	return &Advisory{conn: conn, name: name}, nil
}

// Release drops the lock. It uses a fresh context so a cancelled request
// still frees the lock before its connection returns to the pool.
func (a *Advisory) Release() {
	if a == nil {
		return
	}
	_, _ = a.conn.ExecContext(context.Background(), "SELECT RELEASE_LOCK(?)", a.name)
}
