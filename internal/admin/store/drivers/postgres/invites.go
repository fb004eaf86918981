package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
)

type invitesRepo struct {
	db *gorm.DB
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	m := toInviteModel(inv)
	return mapError(r.db.WithContext(ctx).Omit("Inviter").Create(&m).Error)
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	var m inviteModel
	if err := r.db.WithContext(ctx).Where("token_hash = ?", hash).Take(&m).Error; err != nil {
		return domain.Invite{}, mapError(err)
	}
	return m.toDomain(), nil
}

func (r *invitesRepo) ListUnacceptedInvites(ctx context.Context, email string) ([]domain.Invite, error) {
	var rows []inviteModel
	err := r.db.WithContext(ctx).
		Where("email = ? AND accepted_at IS NULL", email).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Invite, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *invitesRepo) MarkInviteAccepted(ctx context.Context, id string, at time.Time) error {
	return expectOne(r.db.WithContext(ctx).Model(&inviteModel{}).
		Where("id = ? AND accepted_at IS NULL", id).
		Updates(map[string]any{"accepted_at": at.UTC(), "updated_at": at.UTC()}))
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("accepted_at IS NULL AND expires_at < ?", cutoff.UTC()).
		Delete(&inviteModel{})
	return res.RowsAffected, res.Error
}
