package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
)

const inviteColumns = `id, email, role, token_hash, invited_by, expires_at, accepted_at, created_at, updated_at`

type invitesRepo struct {
	db DBTX
}

func scanInvite(row rowScanner) (domain.Invite, error) {
	var (
		inv        domain.Invite
		acceptedAt sql.NullTime
	)
	err := row.Scan(
		&inv.ID, &inv.Email, &inv.Role, &inv.TokenHash, &inv.InvitedBy,
		&inv.ExpiresAt, &acceptedAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invite{}, err
	}
	inv.AcceptedAt = mapNullTimePtr(acceptedAt)
	inv.ExpiresAt = inv.ExpiresAt.UTC()
	inv.CreatedAt = inv.CreatedAt.UTC()
	inv.UpdatedAt = inv.UpdatedAt.UTC()
	return inv, nil
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invites (`+inviteColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, inv.Role, inv.TokenHash, inv.InvitedBy,
		inv.ExpiresAt.UTC(), mapOptionalTime(inv.AcceptedAt), inv.CreatedAt.UTC(), inv.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+inviteColumns+` FROM invites WHERE token_hash = ?`, hash)
	inv, err := scanInvite(row)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) ListUnacceptedInvites(ctx context.Context, email string) ([]domain.Invite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE email = ? AND accepted_at IS NULL ORDER BY created_at DESC`,
		email,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitesRepo) MarkInviteAccepted(ctx context.Context, id string, at time.Time) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE invites SET accepted_at = ?, updated_at = ? WHERE id = ? AND accepted_at IS NULL`,
		at.UTC(), at.UTC(), id,
	))
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM invites WHERE accepted_at IS NULL AND expires_at < ?`,
		cutoff.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
