package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/nexusadmin/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewSessionClaims(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	c := jwtx.NewSessionClaims("user-1", "ADMIN", "nexusadmin", time.Hour, now)

	require.Equal(t, "user-1", c.UserID())
	require.Equal(t, "ADMIN", c.Role)
	require.Equal(t, "nexusadmin", c.Issuer)
	require.Equal(t, now, c.IssuedAt.Time)
	require.Equal(t, now.Add(time.Hour), c.ExpiresAt.Time)
}
