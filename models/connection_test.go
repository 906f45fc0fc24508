package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairKeyFor_OrderIndependent(t *testing.T) {
	require.Equal(t, PairKeyFor("alice", "bob"), PairKeyFor("bob", "alice"))
	require.Equal(t, "alice:bob", PairKeyFor("bob", "alice"))
}

func TestConnectionParties(t *testing.T) {
	c := Connection{Requester: "alice", Recipient: "bob"}

	require.True(t, c.Involves("alice"))
	require.True(t, c.Involves("bob"))
	require.False(t, c.Involves("mallory"))

	require.Equal(t, "bob", c.OtherParty("alice"))
	require.Equal(t, "alice", c.OtherParty("bob"))
}

func TestValidConnectionType(t *testing.T) {
	require.True(t, ValidConnectionType(ConnectionSkillSwap))
	require.True(t, ValidConnectionType(ConnectionMentorship))
	require.True(t, ValidConnectionType(ConnectionCollaboration))
	require.False(t, ValidConnectionType("penpal"))
	require.False(t, ValidConnectionType(""))
}
