package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

var userColumns = []string{
	"id", "name", "email", "password_hash", "user_type", "verified", "created_at", "last_sign_in_at",
}

// userRepo implements UserRepo on the ent SQL driver.
type userRepo struct {
	drv *entsql.Driver
}

func (r *userRepo) Create(ctx context.Context, u *UserRecord) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	q, args := builder().Insert(usersTable).
		Columns(userColumns...).
		Values(u.ID, u.Name, u.Email, u.PasswordHash, u.UserType,
			boolInt(u.Verified), toMillis(u.CreatedAt), toMillis(u.LastSignInAt)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, q, args, &res); err != nil {
		if sqlgraph.IsUniqueConstraintError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepo) ByEmail(ctx context.Context, email string) (*UserRecord, error) {
	q, args := builder().Select(userColumns...).
		From(entsql.Table(usersTable)).
		Where(entsql.EQ("email", email)).
		Limit(1).
		Query()

	users, err := r.query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return &users[0], nil
}

func (r *userRepo) List(ctx context.Context) ([]UserRecord, error) {
	q, args := builder().Select(userColumns...).
		From(entsql.Table(usersTable)).
		OrderBy("created_at", "email").
		Query()
	return r.query(ctx, q, args)
}

func (r *userRepo) TouchSignIn(ctx context.Context, id string, at time.Time) error {
	q, args := builder().Update(usersTable).
		Set("last_sign_in_at", at.UnixMilli()).
		Where(entsql.EQ("id", id)).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, q, args, &res); err != nil {
		return fmt.Errorf("update sign-in time: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepo) query(ctx context.Context, q string, args []any) ([]UserRecord, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var out []UserRecord
	for rows.Next() {
		var (
			u                  UserRecord
			created, lastLogin int64
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.UserType,
			&u.Verified, &created, &lastLogin); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.CreatedAt = fromMillis(created)
		u.LastSignInAt = fromMillis(lastLogin)
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}
