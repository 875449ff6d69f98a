package db

import (
	"context"
	"database/sql"

	"github.com/Jeomhps/business-reviews/internal/lock"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const reviewCols = "review_id, user_id, business_id, stars, review_text"

// CreateReview inserts r after checking that the business exists and that the
// user has not reviewed it yet. The checks and the insert run under a named
// lock for the (business, user) pair so concurrent creates cannot both pass.
// Lock and transaction share one pinned connection, so a create never holds
// more than one connection from the pool.
func (d *DB) CreateReview(ctx context.Context, r Review) (int64, error) {
	conn, err := d.Connx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "review conn")
	}
	defer conn.Close()

	l, err := lock.Acquire(ctx, conn, lock.ReviewKey(r.BusinessID, r.UserID), d.lockTimeout)
	if err != nil {
		return 0, errors.Wrap(err, "review lock")
	}
	defer l.Release()

	var id int64
	err = inTx(ctx, conn, func(tx *sqlx.Tx) error {
		var one int
		err := tx.GetContext(ctx, &one, "SELECT 1 FROM businesses WHERE business_id=?", r.BusinessID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBusinessNotFound
		}
		if err != nil {
			return errors.Wrap(err, "find business")
		}

		err = tx.GetContext(ctx, &one, "SELECT 1 FROM reviews WHERE business_id=? AND user_id=?", r.BusinessID, r.UserID)
		if err == nil {
			return ErrReviewExists
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return errors.Wrap(err, "find review")
		}

		res, err := tx.ExecContext(ctx,
			"INSERT INTO reviews (user_id, business_id, stars, review_text) VALUES (?,?,?,?)",
			r.UserID, r.BusinessID, r.Stars, r.ReviewText)
		if err != nil {
			return errors.Wrap(err, "insert review")
		}
		id, err = res.LastInsertId()
		return errors.Wrap(err, "review id")
	})
	return id, err
}

func (d *DB) GetReview(ctx context.Context, id int64) (Review, error) {
	var r Review
	err := d.GetContext(ctx, &r, "SELECT "+reviewCols+" FROM reviews WHERE review_id=?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return r, ErrReviewNotFound
	}
	return r, errors.Wrap(err, "get review")
}

// UpdateReview applies u to review id and returns the stored row.
func (d *DB) UpdateReview(ctx context.Context, id int64, u ReviewUpdate) (Review, error) {
	var r Review
	err := d.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &r, "SELECT "+reviewCols+" FROM reviews WHERE review_id=?", id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReviewNotFound
		}
		if err != nil {
			return errors.Wrap(err, "find review")
		}
		r.Stars = u.Stars
		if u.SetText {
			r.ReviewText = u.ReviewText
		}
		_, err = tx.ExecContext(ctx, "UPDATE reviews SET stars=?, review_text=? WHERE review_id=?", r.Stars, r.ReviewText, id)
		return errors.Wrap(err, "update review")
	})
	return r, err
}

func (d *DB) DeleteReview(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := d.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM reviews WHERE review_id=?", id)
		if err != nil {
			return errors.Wrap(err, "delete review")
		}
		n, err = res.RowsAffected()
		return errors.Wrap(err, "rows affected")
	})
	return n == 1, err
}

func (d *DB) ListReviewsByUser(ctx context.Context, userID int64) ([]Review, error) {
	out := []Review{}
	err := d.SelectContext(ctx, &out,
		"SELECT "+reviewCols+" FROM reviews WHERE user_id=? ORDER BY review_id", userID)
	return out, errors.Wrap(err, "list reviews by user")
}
