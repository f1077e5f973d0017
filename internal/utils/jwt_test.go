package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   int64
		duration time.Duration
		signKey  string
		wantErr  bool
	}{
		{name: "valid params", issuer: "task-sync", userID: 42, duration: time.Hour, signKey: "secret"},
		{name: "empty issuer", issuer: "", userID: 42, duration: time.Hour, signKey: "secret", wantErr: true},
		{name: "zero duration", issuer: "task-sync", userID: 42, duration: 0, signKey: "secret", wantErr: true},
		{name: "empty sign key", issuer: "task-sync", userID: 42, duration: time.Hour, signKey: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.signKey)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token.SignedString)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	const (
		issuer  = "task-sync"
		signKey = "secret"
	)

	t.Run("round trip", func(t *testing.T) {
		issued, err := GenerateJWTToken(issuer, 42, time.Hour, signKey)
		require.NoError(t, err)

		parsed, err := ValidateAndParseJWTToken(issued.SignedString, signKey, issuer)

		require.NoError(t, err)
		assert.Equal(t, int64(42), parsed.UserID)
	})

	t.Run("wrong sign key", func(t *testing.T) {
		issued, err := GenerateJWTToken(issuer, 42, time.Hour, signKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(issued.SignedString, "other-secret", issuer)

		require.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		issued, err := GenerateJWTToken("someone-else", 42, time.Hour, signKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(issued.SignedString, signKey, issuer)

		require.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		issued, err := GenerateJWTToken(issuer, 42, -time.Minute, signKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(issued.SignedString, signKey, issuer)

		require.Error(t, err)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not-a-token", signKey, issuer)

		require.Error(t, err)
	})
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "leading whitespace", header: "  Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "empty token", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
