package netio

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ry-diffusion/gyra-go/pkg/codec"
	"github.com/ry-diffusion/gyra-go/pkg/proto"
	"github.com/ry-diffusion/gyra-go/pkg/proto/packets"
)

// ProtocolVersion is the wire protocol version this module speaks.
const ProtocolVersion int32 = 47

// LoginResult carries what the play phase needs once login succeeds.
type LoginResult struct {
	UUID                 string
	Username             string
	CompressionThreshold int
}

// Login drives the Handshake -> Login exchange to completion, blocking
// throughout (see SPEC_FULL.md §5: login is the one phase that runs
// blocking I/O by design). Returns the server's assigned compression
// threshold, if any, already applied to conn. Any packet id the login
// phase doesn't recognize is logged and ignored rather than treated as
// fatal (§4.4) — only LoginDisconnect and LoginSuccess end the loop;
// SetCompression updates the threshold and reading continues.
func Login(conn *Connection, host string, port uint16, username string, log *logrus.Entry) (*LoginResult, error) {
	handshake := &packets.Handshake{
		ProtocolVersion: ProtocolVersion,
		ServerAddress:   host,
		ServerPort:      port,
		NextState:       packets.NextStateLogin,
	}
	if err := sendPacket(conn, packets.HandshakeID, handshake); err != nil {
		return nil, fmt.Errorf("netio: send handshake: %w", err)
	}
	conn.SetPhase(proto.PhaseLogin)

	loginStart := &packets.LoginStart{Name: username}
	if err := sendPacket(conn, packets.LoginStartID, loginStart); err != nil {
		return nil, fmt.Errorf("netio: send login start: %w", err)
	}

	threshold := -1
	for {
		p, err := conn.ReadPacket()
		if err != nil {
			var illegal *proto.IllegalPacketError
			if errors.As(err, &illegal) {
				if log != nil {
					log.WithError(err).Debug("ignoring unrecognized login packet")
				}
				continue
			}
			return nil, fmt.Errorf("netio: read login response: %w", err)
		}

		switch pkt := p.(type) {
		case *packets.LoginDisconnect:
			return nil, &proto.DisconnectedError{Reason: pkt.Reason}

		case *packets.SetCompression:
			threshold = int(pkt.Threshold)
			conn.SetCompressionThreshold(threshold)

		case *packets.LoginSuccess:
			conn.SetPhase(proto.PhasePlay)
			return &LoginResult{UUID: pkt.UUID, Username: pkt.Username, CompressionThreshold: threshold}, nil
		}
	}
}

func sendPacket(conn *Connection, id int32, p proto.Packet) error {
	w := codec.NewWriter()
	p.Encode(w)
	return conn.Send(id, w.Bytes())
}
