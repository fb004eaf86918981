package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
)

type usersRepo struct {
	db *gorm.DB
}

func (r *usersRepo) get(ctx context.Context, query string, arg any) (domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where(query, arg).Take(&m).Error; err != nil {
		return domain.User{}, mapError(err)
	}
	return m.toDomain(), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.get(ctx, "id = ?", id)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.get(ctx, "email = ?", email)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	m := toUserModel(u)
	return mapError(r.db.WithContext(ctx).Create(&m).Error)
}

func userScope(f domain.UserFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Search != "" {
			p := likePattern(f.Search)
			db = db.Where("(name ILIKE ? OR email ILIKE ?)", p, p)
		}
		if f.Role != "" {
			db = db.Where("role = ?", f.Role.String())
		}
		if f.Status != "" {
			db = db.Where("status = ?", f.Status.String())
		}
		return db
	}
}

func (r *usersRepo) ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error) {
	page, limit := domain.NormalizePaging(f.Page, f.Limit)
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&userModel{}).Scopes(userScope(f)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []userModel
	err := db.Scopes(userScope(f)).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(domain.Offset(page, limit)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		users = append(users, m.toDomain())
	}
	return users, int(total), nil
}

func (r *usersRepo) UpdateUserRole(ctx context.Context, id string, role domain.Role, now time.Time) error {
	return expectOne(r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).
		Updates(map[string]any{"role": role.String(), "updated_at": now.UTC()}))
}

func (r *usersRepo) UpdateUserStatus(ctx context.Context, id string, status domain.UserStatus, now time.Time) error {
	return expectOne(r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", id).
		Updates(map[string]any{"status": status.String(), "updated_at": now.UTC()}))
}

func (r *usersRepo) CountUsers(ctx context.Context, status domain.UserStatus) (int, error) {
	db := r.db.WithContext(ctx).Model(&userModel{})
	if status != "" {
		db = db.Where("status = ?", status.String())
	}
	var n int64
	err := db.Count(&n).Error
	return int(n), err
}

func (r *usersRepo) CountUsersByRole(ctx context.Context) ([]domain.RoleCount, error) {
	var rows []struct {
		Role  string
		Count int
	}
	err := r.db.WithContext(ctx).Model(&userModel{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Order("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.RoleCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.RoleCount{Role: domain.Role(row.Role), Count: row.Count})
	}
	return out, nil
}
