package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/psptechhub/leadcap/internal/common"
	"github.com/psptechhub/leadcap/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, u *User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, salt, verifier, disabled, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.ID, u.Email, u.Salt, u.Verifier, u.Disabled, u.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", u.Email, err)
	}
	return nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, salt, verifier, disabled, created_at FROM users WHERE email = ?
	`, email)
	return scanUser(row, "email="+email)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, salt, verifier, disabled, created_at FROM users WHERE id = ?
	`, id)
	return scanUser(row, "id="+id)
}

func scanUser(row *sql.Row, what string) (*User, error) {
	var (
		u       User
		created int64
	)
	err := row.Scan(&u.ID, &u.Email, &u.Salt, &u.Verifier, &u.Disabled, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", what, err)
	}
	u.CreatedAt = time.Unix(created, 0).UTC()
	return &u, nil
}

func (r *SQLiteRepository) SetDisabled(ctx context.Context, id string, disabled bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET disabled = ? WHERE id = ?`, disabled, id)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", id, err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) RecordPasswordReset(ctx context.Context, pr *PasswordReset) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO password_resets (id, user_id, email, requested_at) VALUES (?, ?, ?, ?)
	`, pr.ID, pr.UserID, pr.Email, pr.RequestedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to record password reset for %s: %w", pr.Email, err)
	}
	return nil
}

func (r *SQLiteRepository) ListPasswordResets(ctx context.Context, email string) ([]PasswordReset, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, email, requested_at FROM password_resets
		WHERE email = ? ORDER BY requested_at, id
	`, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list password resets: %w", err)
	}
	defer rows.Close()

	var out []PasswordReset
	for rows.Next() {
		var (
			pr        PasswordReset
			requested int64
		)
		if err := rows.Scan(&pr.ID, &pr.UserID, &pr.Email, &requested); err != nil {
			return nil, fmt.Errorf("failed to scan password reset row: %w", err)
		}
		pr.RequestedAt = time.Unix(requested, 0).UTC()
		out = append(out, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate password reset rows: %w", err)
	}
	return out, nil
}
