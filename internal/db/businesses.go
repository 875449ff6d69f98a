package db

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const businessCols = "business_id, owner_id, name, street_address, city, state, zip_code"

// CreateBusiness inserts b and returns the generated id.
func (d *DB) CreateBusiness(ctx context.Context, b Business) (int64, error) {
	var id int64
	err := d.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO businesses (owner_id, name, street_address, city, state, zip_code) VALUES (?,?,?,?,?,?)`,
			b.OwnerID, b.Name, b.StreetAddress, b.City, b.State, b.ZipCode)
		if err != nil {
			return errors.Wrap(err, "insert business")
		}
		if id, err = res.LastInsertId(); err != nil {
			return errors.Wrap(err, "business id")
		}
		return nil
	})
	return id, err
}

func (d *DB) GetBusiness(ctx context.Context, id int64) (Business, error) {
	var b Business
	err := d.GetContext(ctx, &b, "SELECT "+businessCols+" FROM businesses WHERE business_id=?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return b, ErrBusinessNotFound
	}
	return b, errors.Wrap(err, "get business")
}

// ListBusinesses returns one page of businesses in ascending id order.
func (d *DB) ListBusinesses(ctx context.Context, limit, offset int) ([]Business, error) {
	out := []Business{}
	err := d.SelectContext(ctx, &out,
		"SELECT "+businessCols+" FROM businesses ORDER BY business_id LIMIT ? OFFSET ?", limit, offset)
	return out, errors.Wrap(err, "list businesses")
}

func (d *DB) ListBusinessesByOwner(ctx context.Context, ownerID int64) ([]Business, error) {
	out := []Business{}
	err := d.SelectContext(ctx, &out,
		"SELECT "+businessCols+" FROM businesses WHERE owner_id=? ORDER BY business_id", ownerID)
	return out, errors.Wrap(err, "list businesses by owner")
}

// UpdateBusiness overwrites every mutable field of the business with b.ID.
func (d *DB) UpdateBusiness(ctx context.Context, b Business) error {
	return d.withTx(ctx, func(tx *sqlx.Tx) error {
		var one int
		if err := tx.GetContext(ctx, &one, "SELECT 1 FROM businesses WHERE business_id=?", b.ID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBusinessNotFound
			}
			return errors.Wrap(err, "find business")
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE businesses SET owner_id=?, name=?, street_address=?, city=?, state=?, zip_code=? WHERE business_id=?`,
			b.OwnerID, b.Name, b.StreetAddress, b.City, b.State, b.ZipCode, b.ID)
		return errors.Wrap(err, "update business")
	})
}

// DeleteBusiness reports whether a row was removed. Reviews go with it via
// the foreign key cascade.
func (d *DB) DeleteBusiness(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := d.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM businesses WHERE business_id=?", id)
		if err != nil {
			return errors.Wrap(err, "delete business")
		}
		n, err = res.RowsAffected()
		return errors.Wrap(err, "rows affected")
	})
	return n == 1, err
}
