package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
)

const userColumns = `id, name, email, password_hash, role, status, invited_at, created_at, updated_at`

type usersRepo struct {
	db DBTX
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u         domain.User
		invitedAt sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status,
		&invitedAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.InvitedAt = mapNullTimePtr(invitedAt)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.Status,
		mapOptionalTime(u.InvitedAt), u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func userFilter(f domain.UserFilter) *where {
	w := &where{}
	if f.Search != "" {
		p := likePattern(f.Search)
		w.add(`(name LIKE ? ESCAPE '\' OR email LIKE ? ESCAPE '\')`, p, p)
	}
	if f.Role != "" {
		w.add(`role = ?`, f.Role)
	}
	if f.Status != "" {
		w.add(`status = ?`, f.Status)
	}
	return w
}

func (r *usersRepo) ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error) {
	page, limit := domain.NormalizePaging(f.Page, f.Limit)
	w := userFilter(f)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args := append(append([]any{}, w.args...), limit, domain.Offset(page, limit))
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users`+w.String()+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]domain.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *usersRepo) UpdateUserRole(ctx context.Context, id string, role domain.Role, now time.Time) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users SET role = ?, updated_at = ? WHERE id = ?`, role, now.UTC(), id,
	))
}

func (r *usersRepo) UpdateUserStatus(ctx context.Context, id string, status domain.UserStatus, now time.Time) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users SET status = ?, updated_at = ? WHERE id = ?`, status, now.UTC(), id,
	))
}

func (r *usersRepo) CountUsers(ctx context.Context, status domain.UserStatus) (int, error) {
	w := &where{}
	if status != "" {
		w.add(`status = ?`, status)
	}
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`+w.String(), w.args...).Scan(&n)
	return n, err
}

func (r *usersRepo) CountUsersByRole(ctx context.Context) ([]domain.RoleCount, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role ORDER BY role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RoleCount
	for rows.Next() {
		var rc domain.RoleCount
		if err := rows.Scan(&rc.Role, &rc.Count); err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}
