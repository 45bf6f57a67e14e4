package handler

import (
	"net"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ry-diffusion/gyra-go/pkg/codec"
	"github.com/ry-diffusion/gyra-go/pkg/netio"
	"github.com/ry-diffusion/gyra-go/pkg/proto"
	"github.com/ry-diffusion/gyra-go/pkg/proto/packets"
)

func newPipeHandler(t *testing.T) (*Handler, net.Conn) {
	t.Helper()
	client, server := net.Pipe()
	t.Cleanup(func() { client.Close(); server.Close() })

	conn := netio.Wrap(client, proto.PhasePlay)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return New(conn, log.WithField("test", true)), server
}

func writeFrame(t *testing.T, conn net.Conn, id int32, p proto.Packet) {
	t.Helper()
	w := codec.NewWriter()
	p.Encode(w)
	f := &proto.Framer{}
	require.NoError(t, f.WriteFrame(conn, id, w.Bytes()))
}

func TestTickEchoesKeepAlive(t *testing.T) {
	h, server := newPipeHandler(t)

	// KeepAlive surfaces no Event; the echo is written back on the pipe,
	// so the server side must read it while the handler ticks.
	type echo struct {
		id   int32
		body *codec.Reader
		err  error
	}
	echoes := make(chan echo, 1)
	go func() {
		writeFrame(t, server, packets.PlayKeepAliveID, &packets.KeepAlive{ID: 42})
		f := &proto.Framer{}
		id, body, err := f.ReadFrame(codec.NewReader(server))
		echoes <- echo{id: id, body: body, err: err}
	}()

	var got echo
	for waiting := true; waiting; {
		_, err := h.Tick()
		require.NoError(t, err)
		select {
		case got = <-echoes:
			waiting = false
		default:
		}
	}

	id, body, err := got.id, got.body, got.err
	require.NoError(t, err)
	assert.Equal(t, packets.PlayKeepAliveID, id)
	var echoed packets.KeepAlive
	require.NoError(t, echoed.Decode(body))
	assert.Equal(t, int32(42), echoed.ID)
}

func TestTickFirstPositionAlwaysHonored(t *testing.T) {
	h, server := newPipeHandler(t)
	go writeFrame(t, server, packets.PlayPlayerPositionAndLookID, &packets.PlayerPositionAndLook{X: 1, Y: 64, Z: 1})

	var events []Event
	for len(events) == 0 {
		got, err := h.Tick()
		require.NoError(t, err)
		events = append(events, got...)
	}
	require.NotNil(t, events[0].Position)
	assert.Equal(t, 1.0, events[0].Position.X)
}

func TestTickSmallPositionDeltaSuppressed(t *testing.T) {
	h, server := newPipeHandler(t)
	go writeFrame(t, server, packets.PlayPlayerPositionAndLookID, &packets.PlayerPositionAndLook{X: 0, Y: 64, Z: 0})
	first, err := drainUntilOne(t, h)
	require.NoError(t, err)
	require.NotNil(t, first.Position)

	written := make(chan struct{})
	go func() {
		writeFrame(t, server, packets.PlayPlayerPositionAndLookID, &packets.PlayerPositionAndLook{X: 1, Y: 64, Z: 0})
		close(written)
	}()

	// small delta (<5 units): should produce no Position event at all.
	for {
		got, err := h.Tick()
		require.NoError(t, err)
		for _, ev := range got {
			assert.Nil(t, ev.Position)
		}
		select {
		case <-written:
			return
		default:
		}
	}
}

func drainUntilOne(t *testing.T, h *Handler) (Event, error) {
	t.Helper()
	for {
		events, err := h.Tick()
		if err != nil {
			return Event{}, err
		}
		if len(events) > 0 {
			return events[0], nil
		}
	}
}

func TestTickMidPlaySetCompressionSurfacesNoEvent(t *testing.T) {
	h, server := newPipeHandler(t)
	go writeFrame(t, server, packets.SetCompressionID, &packets.SetCompression{Threshold: 128})

	for i := 0; i < 50; i++ {
		events, err := h.Tick()
		require.NoError(t, err)
		for _, ev := range events {
			t.Fatalf("SetCompression should not surface an Event, got %+v", ev)
		}
	}
}

func TestTickDropsUnregisteredPacketWithoutAborting(t *testing.T) {
	h, server := newPipeHandler(t)

	go func() {
		writeFrame(t, server, 0x7F, &packets.Disconnect{Reason: "unused, id is what's unregistered"})
		writeFrame(t, server, packets.PlayPlayerPositionAndLookID, &packets.PlayerPositionAndLook{X: 1, Y: 64, Z: 1})
	}()

	var events []Event
	for i := 0; i < 50 && len(events) == 0; i++ {
		got, err := h.Tick()
		require.NoError(t, err)
		events = append(events, got...)
	}
	require.NotEmpty(t, events, "handler should keep processing after dropping the unregistered packet")
	require.NotNil(t, events[0].Position)
}

func TestEntityRelativeMoveDroppedForUnknownEntity(t *testing.T) {
	h, server := newPipeHandler(t)
	written := make(chan struct{})
	go func() {
		writeFrame(t, server, packets.PlayEntityRelativeMoveID, &packets.EntityRelativeMove{EntityID: 99, DX: 1})
		close(written)
	}()

	// no Entity spawn preceded this, so no event should ever surface for
	// it; poll until the write completes, asserting on every batch along
	// the way.
	for {
		events, err := h.Tick()
		require.NoError(t, err)
		for _, ev := range events {
			assert.Nil(t, ev.Entity)
		}
		select {
		case <-written:
			return
		default:
		}
	}
}
