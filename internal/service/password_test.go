package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("secret12")
	require.NoError(t, err)
	require.NotEqual(t, "secret12", hash)
	require.NoError(t, ComparePassword(hash, "secret12"))
	require.Error(t, ComparePassword(hash, "wrong"))
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid", "abcdef12", true},
		{"too short", "ab1", false},
		{"no digit", "abcdefgh", false},
		{"no letter", "12345678", false},
		{"symbol", "abcdef1!", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}
