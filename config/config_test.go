package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdminEmailList(t *testing.T) {
	c := Config{AdminEmails: " Ops@Example.com ,admin@example.com,,"}
	require.Equal(t, []string{"ops@example.com", "admin@example.com"}, c.AdminEmailList())

	require.Empty(t, Config{}.AdminEmailList())
}

func TestIsAdminEmail(t *testing.T) {
	c := Config{AdminEmails: "admin@example.com"}

	require.True(t, c.IsAdminEmail("admin@example.com"))
	require.True(t, c.IsAdminEmail("ADMIN@example.com"))
	require.False(t, c.IsAdminEmail("user@example.com"))
	require.False(t, Config{}.IsAdminEmail("admin@example.com"))
}
