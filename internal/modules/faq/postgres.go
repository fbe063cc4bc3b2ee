package faq

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, f *FAQ) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO faqs (id, question, answer, display_order) VALUES ($1,$2,$3,$4)`,
		f.ID, f.Question, f.Answer, f.DisplayOrder)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*FAQ, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	f := &FAQ{}
	err = r.db.QueryRowContext(ctx,
		`SELECT id, question, answer, display_order, created_at FROM faqs WHERE id=$1`, uid).
		Scan(&f.ID, &f.Question, &f.Answer, &f.DisplayOrder, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]FAQ, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, question, answer, display_order, created_at
		 FROM faqs ORDER BY display_order ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faqs []FAQ
	for rows.Next() {
		var f FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.DisplayOrder, &f.CreatedAt); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, f *FAQ) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE faqs SET question=$1, answer=$2, display_order=$3 WHERE id=$4`,
		f.Question, f.Answer, f.DisplayOrder, f.ID)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM faqs WHERE id=$1`, uid)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("faq %s not found", id)
	}
	return err
}
