package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/nexusadmin/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "https://admin.example.com"

func newTestCodec(now *time.Time) *jwtx.Codec {
	c := jwtx.NewCodec("test-secret-with-enough-entropy", time.Hour, exampleIssuer)
	c.Now = func() time.Time { return *now }
	return c
}

func TestCodecIssueAndVerify(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	codec := newTestCodec(&now)

	token, issued, err := codec.Issue("user-123", "MANAGER")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, now.Add(time.Hour), issued.ExpiresAt.Time)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID())
	require.Equal(t, "MANAGER", claims.Role)
	require.Equal(t, exampleIssuer, claims.Issuer)
}

func TestNewCodecDefaultsTTL(t *testing.T) {
	c := jwtx.NewCodec("secret", 0, "")
	require.Equal(t, jwtx.DefaultSessionTTL, c.TTL)
}

func TestCodecIssueRequiresSecret(t *testing.T) {
	c := jwtx.NewCodec("", time.Hour, "")
	_, _, err := c.Issue("user-1", "STAFF")
	require.Error(t, err)
}

func TestCodecVerifyExpired(t *testing.T) {
	now := time.Now().UTC()
	codec := newTestCodec(&now)

	token, _, err := codec.Issue("user-123", "STAFF")
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = codec.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
	require.NotErrorIs(t, err, jwtx.ErrMalformed)
}

func TestCodecVerifyMalformed(t *testing.T) {
	now := time.Now().UTC()
	codec := newTestCodec(&now)

	valid, _, err := codec.Issue("user-123", "STAFF")
	require.NoError(t, err)

	other := jwtx.NewCodec("a-different-secret", time.Hour, exampleIssuer)
	foreign, _, err := other.Issue("user-123", "ADMIN")
	require.NoError(t, err)

	wrongIssuer := jwtx.NewCodec("test-secret-with-enough-entropy", time.Hour, "someone-else")
	wrongIss, _, err := wrongIssuer.Issue("user-123", "ADMIN")
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone,
		jwtx.NewSessionClaims("user-123", "ADMIN", exampleIssuer, time.Hour, now),
	).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwtx.NewSessionClaims("user-123", "", exampleIssuer, time.Hour, now),
	).SignedString(codec.Secret)
	require.NoError(t, err)

	noExp := jwtx.NewSessionClaims("user-123", "ADMIN", exampleIssuer, time.Hour, now)
	noExp.ExpiresAt = nil
	noExpToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, noExp).SignedString(codec.Secret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"empty", ""},
		{"tampered", valid + "x"},
		{"wrong secret", foreign},
		{"wrong issuer", wrongIss},
		{"none algorithm", noneAlg},
		{"missing role", noRole},
		{"missing expiry", noExpToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Verify(tt.token)
			require.ErrorIs(t, err, jwtx.ErrMalformed)
		})
	}
}
