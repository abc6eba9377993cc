package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimoire-dev/grimoire/pkg/types"
)

func TestSettings(t *testing.T) {
	s := setupStore(t)

	_, err := s.GetSetting("editor")
	assert.ErrorIs(t, err, types.ErrNotFound)

	require.NoError(t, s.SetSetting("editor", "vim"))
	value, err := s.GetSetting("editor")
	require.NoError(t, err)
	assert.Equal(t, "vim", value)

	// Last write wins, no history.
	require.NoError(t, s.SetSetting("editor", "emacs"))
	value, err = s.GetSetting("editor")
	require.NoError(t, err)
	assert.Equal(t, "emacs", value)

	require.NoError(t, s.DeleteSetting("editor"))
	_, err = s.GetSetting("editor")
	assert.ErrorIs(t, err, types.ErrNotFound)

	require.NoError(t, s.DeleteSetting("editor"), "delete is idempotent")
}
