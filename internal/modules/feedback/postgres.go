package feedback

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRepo struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) Create(ctx context.Context, f *Feedback) error {
	query := `
		INSERT INTO feedback_submissions (id, customer_name, rating, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, f.ID, f.CustomerName, f.Rating, f.Message, f.Status, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Feedback, error) {
	query := `
		SELECT id, customer_name, rating, message, status, created_at
		FROM feedback_submissions WHERE id = $1`
	var f Feedback
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&f.ID, &f.CustomerName, &f.Rating, &f.Message, &f.Status, &f.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("feedback not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return &f, nil
}

func (r *postgresRepo) ListByStatus(ctx context.Context, status Status) ([]Feedback, error) {
	query := `
		SELECT id, customer_name, rating, message, status, created_at
		FROM feedback_submissions WHERE status = $1
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var out []Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.CustomerName, &f.Rating, &f.Message, &f.Status, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	res, err := r.db.ExecContext(ctx, `UPDATE feedback_submissions SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("feedback not found")
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM feedback_submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("feedback not found")
	}
	return nil
}
