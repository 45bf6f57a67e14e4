package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("GYRA_CONFIG_DIR", t.TempDir())

	s := &Settings{ServerAddress: "play.example.com:25565", Username: "Steve"}
	require.NoError(t, s.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, s.ServerAddress, loaded.ServerAddress)
	assert.Equal(t, s.Username, loaded.Username)
}

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	t.Setenv("GYRA_CONFIG_DIR", t.TempDir())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, loaded)
}
