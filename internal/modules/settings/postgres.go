package settings

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// The settings table holds exactly one row with id=1, seeded by the schema.

func (r *postgresRepo) Get(ctx context.Context) (*Settings, error) {
	s := &Settings{}
	err := r.db.QueryRowContext(ctx, `
		SELECT store_name, address, phone, email, logo_path, delivery_fee, updated_at
		FROM settings WHERE id=1`).Scan(
		&s.StoreName, &s.Address, &s.Phone, &s.Email, &s.LogoPath, &s.DeliveryFee, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) Update(ctx context.Context, s *Settings) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE settings
		SET store_name=$1, address=$2, phone=$3, email=$4, logo_path=$5,
		    delivery_fee=$6, updated_at=NOW()
		WHERE id=1`,
		s.StoreName, s.Address, s.Phone, s.Email, s.LogoPath, s.DeliveryFee)
	return err
}
