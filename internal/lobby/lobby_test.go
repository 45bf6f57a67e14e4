package lobby

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisconnectedShowsReason(t *testing.T) {
	m := New("play.example.com:25565")
	updated, _ := m.Update(DisconnectedMsg{Reason: "kicked: flying is not enabled"})
	m = updated.(Model)

	assert.Equal(t, StatusDisconnected, m.CurrentStatus())
	assert.True(t, strings.Contains(m.View(), "kicked: flying is not enabled"))
}

func TestDisconnectedWithEmptyReasonShowsGenericText(t *testing.T) {
	m := New("play.example.com:25565")
	updated, _ := m.Update(DisconnectedMsg{Reason: ""})
	m = updated.(Model)

	assert.Equal(t, StatusDisconnected, m.CurrentStatus())
	assert.True(t, strings.Contains(m.View(), genericReconnectText))
}

func TestConnectingResetsReason(t *testing.T) {
	m := New("play.example.com:25565")
	updated, _ := m.Update(DisconnectedMsg{Reason: "boom"})
	m = updated.(Model)

	updated, _ = m.Update(ConnectingMsg{Address: "other.example.com:25565"})
	m = updated.(Model)

	assert.Equal(t, StatusConnecting, m.CurrentStatus())
	assert.Equal(t, "", m.Reason())
}
