package session

import (
	"testing"

	"github.com/poken-app/poken/internal/profile"
	"github.com/stretchr/testify/require"
)

func TestNew_AppliesDefaults(t *testing.T) {
	s := New(profile.Profile{Name: "Jane"})

	require.False(t, s.Authenticated())
	require.Empty(t, s.CurrentUserID)
	require.Equal(t, ViewLogin, s.ActiveView)
	require.Equal(t, DefaultTab, s.ActiveTab)
	require.Equal(t, "Jane", s.Profile.Name)
	require.Equal(t, profile.DefaultStatus, s.Profile.Status)
	require.Equal(t, profile.DefaultAvatarRef, s.Profile.AvatarData)
}

func TestSetUser_Trims(t *testing.T) {
	s := New(profile.Default())
	s.SetUser("  alice \n")
	require.Equal(t, "alice", s.CurrentUserID)
}

func TestReset(t *testing.T) {
	s := New(profile.Default())
	s.SetToken("tok")
	s.SetUser("alice")
	s.Profile.Name = "Alice"
	s.ActiveView = ViewApp
	s.InterviewID = "iv-1"
	s.HistoryFilter = "passed"

	s.Reset()

	require.False(t, s.Authenticated())
	require.Empty(t, s.Token())
	require.Empty(t, s.CurrentUserID)
	require.Equal(t, profile.Default(), s.Profile)
	require.Equal(t, ViewLogin, s.ActiveView)
	require.Empty(t, s.InterviewID)
	require.Equal(t, "all", s.HistoryFilter)
}
