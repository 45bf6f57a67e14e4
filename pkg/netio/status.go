package netio

import (
	"fmt"

	"github.com/ry-diffusion/gyra-go/pkg/codec"
	"github.com/ry-diffusion/gyra-go/pkg/proto"
	"github.com/ry-diffusion/gyra-go/pkg/proto/packets"
)

// StatusResult is what the one-shot status probe ("gyra status") reports
// back to the caller.
type StatusResult struct {
	Description  string
	PingRoundTrip int64
}

// Probe drives the read-once Status phase described in spec.md §6's
// Phase definition: Handshake with next_state=1, StatusRequest,
// StatusResponse, then a ping/pong exchange; a missing or unexpected pong
// is an error. It never feeds
// the main tick loop; conn is closed by the caller afterward.
func Probe(conn *Connection, host string, port uint16, pingPayload int64) (*StatusResult, error) {
	if err := conn.SetStatusDeadline(); err != nil {
		return nil, fmt.Errorf("netio: status deadline: %w", err)
	}

	handshake := &packets.Handshake{
		ProtocolVersion: ProtocolVersion,
		ServerAddress:   host,
		ServerPort:      port,
		NextState:       packets.NextStateStatus,
	}
	if err := sendPacket(conn, packets.HandshakeID, handshake); err != nil {
		return nil, fmt.Errorf("netio: send handshake: %w", err)
	}
	conn.SetPhase(proto.PhaseStatus)

	if err := sendPacket(conn, packets.StatusRequestID, &packets.StatusRequest{}); err != nil {
		return nil, fmt.Errorf("netio: send status request: %w", err)
	}

	respPacket, err := conn.ReadPacket()
	if err != nil {
		return nil, fmt.Errorf("netio: read status response: %w", err)
	}
	resp, ok := respPacket.(*packets.StatusResponse)
	if !ok {
		return nil, fmt.Errorf("netio: status response: unexpected packet %T", respPacket)
	}

	if err := sendPacket(conn, packets.StatusPingID, &packets.StatusPing{Payload: pingPayload}); err != nil {
		return nil, fmt.Errorf("netio: send ping: %w", err)
	}

	pongPacket, err := conn.ReadPacket()
	if err != nil {
		return nil, fmt.Errorf("netio: read pong: %w", err)
	}
	pong, ok := pongPacket.(*packets.StatusPing)
	if !ok {
		return nil, fmt.Errorf("netio: pong: unexpected packet %T", pongPacket)
	}

	return &StatusResult{Description: resp.JSON, PingRoundTrip: pong.Payload - pingPayload}, nil
}
