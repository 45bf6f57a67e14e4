package netio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAddressKeepsExplicitPort(t *testing.T) {
	assert.Equal(t, "example.com:12345", ResolveAddress("example.com:12345"))
}

func TestResolveAddressFallsBackToDefaultPort(t *testing.T) {
	// "nonexistent.invalid" won't resolve via SRV in a sandboxed test
	// environment, so this exercises the direct-address fallback path.
	got := ResolveAddress("nonexistent.invalid")
	assert.Equal(t, "nonexistent.invalid:25565", got)
}
