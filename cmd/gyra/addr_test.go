package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitHostPort(t *testing.T) {
	host, port, err := splitHostPort("play.example.com:25566")
	require.NoError(t, err)
	assert.Equal(t, "play.example.com", host)
	assert.Equal(t, uint16(25566), port)
}

func TestSplitHostPortRejectsMissingPort(t *testing.T) {
	_, _, err := splitHostPort("play.example.com")
	assert.Error(t, err)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", "", ""))
}
