package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL,
	seed          BIGINT NOT NULL,
	revision      INT NOT NULL,
	group1_label  TEXT NOT NULL DEFAULT '',
	group2_label  TEXT NOT NULL DEFAULT '',
	g1_successes  INT NOT NULL,
	g1_trials     INT NOT NULL,
	g2_successes  INT NOT NULL,
	g2_trials     INT NOT NULL,
	prior_alpha1  DOUBLE PRECISION NOT NULL,
	prior_beta1   DOUBLE PRECISION NOT NULL,
	prior_alpha2  DOUBLE PRECISION NOT NULL,
	prior_beta2   DOUBLE PRECISION NOT NULL,
	post_alpha1   DOUBLE PRECISION NOT NULL,
	post_beta1    DOUBLE PRECISION NOT NULL,
	post_alpha2   DOUBLE PRECISION NOT NULL,
	post_beta2    DOUBLE PRECISION NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses (created_at DESC);
`

// EnsureSchema creates the analyses table when it does not exist
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
