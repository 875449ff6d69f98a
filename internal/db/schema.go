package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Table DDL, in creation order. reviews references businesses.
var schema = []struct {
	table string
	ddl   string
}{
	{"businesses", `CREATE TABLE IF NOT EXISTS businesses (
		business_id INT UNSIGNED AUTO_INCREMENT NOT NULL,
		owner_id INT NOT NULL,
		name VARCHAR(50) NOT NULL,
		street_address VARCHAR(100) NOT NULL,
		city VARCHAR(50) NOT NULL,
		state VARCHAR(2) NOT NULL,
		zip_code INTEGER NOT NULL,
		PRIMARY KEY (business_id)
	)`},

	// business_id is unsigned to match businesses.business_id
	{"reviews", `CREATE TABLE IF NOT EXISTS reviews (
		review_id INT UNSIGNED AUTO_INCREMENT NOT NULL,
		user_id INT NOT NULL,
		business_id INT UNSIGNED NOT NULL,
		stars SMALLINT NOT NULL,
		review_text VARCHAR(1000),
		PRIMARY KEY (review_id),
		FOREIGN KEY (business_id) REFERENCES businesses(business_id) ON DELETE CASCADE
	)`},
}

// EnsureSchema creates both tables if they do not exist yet, each in its own
// committed transaction. Safe to call on every start.
func EnsureSchema(ctx context.Context, d *DB) error {
	for _, s := range schema {
		ddl := s.ddl
		if err := d.withTx(ctx, func(tx *sqlx.Tx) error {
			_, err := tx.ExecContext(ctx, ddl)
			return err
		}); err != nil {
			return errors.Wrapf(err, "schema: create %s", s.table)
		}
	}
	return nil
}
