// Package netio owns the TCP connection, phase transitions, and framing
// for a single server session: blocking reads during login, non-blocking
// polling during play.
package netio

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ry-diffusion/gyra-go/pkg/codec"
	"github.com/ry-diffusion/gyra-go/pkg/proto"
	"github.com/ry-diffusion/gyra-go/pkg/proto/packets"
)

const (
	connectTimeout   = 1500 * time.Millisecond
	statusIOTimeout  = 200 * time.Millisecond
	pollReadDeadline = 1 * time.Millisecond
)

// ErrWouldBlock signals that a non-blocking PollPacket found nothing
// waiting. Callers must not treat it as a connection error.
var ErrWouldBlock = errors.New("netio: would block")

// Connection owns the socket, current protocol phase, and compression
// state for one server session. It is exclusively written by the tick
// loop (see SPEC_FULL.md §5).
type Connection struct {
	conn     net.Conn
	reader   *bufio.Reader
	framer   *proto.Framer
	registry *proto.Registry
	phase    proto.Phase

	blocking bool
}

// clientRegistry builds the (id, phase, direction) decoder table every
// Connection dispatches incoming frames through. A fresh table per
// Connection keeps tests free to build their own with only the packets
// they need.
func clientRegistry() *proto.Registry {
	reg := proto.NewRegistry()
	packets.RegisterAll(reg)
	return reg
}

// Connect dials addr (already resolved via ResolveAddress) with the
// protocol-mandated connect timeout and starts in the Handshake phase.
func Connect(addr string) (*Connection, error) {
	conn, err := net.DialTimeout("tcp", addr, connectTimeout)
	if err != nil {
		return nil, fmt.Errorf("netio: dial %s: %w", addr, err)
	}
	return &Connection{
		conn:     conn,
		reader:   bufio.NewReader(conn),
		framer:   &proto.Framer{},
		registry: clientRegistry(),
		phase:    proto.PhaseHandshake,
		blocking: true,
	}, nil
}

// Wrap adapts an already-established net.Conn (e.g. a net.Pipe in tests,
// or a connection handed off by some other dialer) into a Connection
// starting in the given phase.
func Wrap(conn net.Conn, phase proto.Phase) *Connection {
	return &Connection{
		conn:     conn,
		reader:   bufio.NewReader(conn),
		framer:   &proto.Framer{},
		registry: clientRegistry(),
		phase:    phase,
		blocking: phase != proto.PhasePlay,
	}
}

// Close tears down the underlying socket.
func (c *Connection) Close() error { return c.conn.Close() }

// Phase reports the connection's current protocol phase.
func (c *Connection) Phase() proto.Phase { return c.phase }

// SetPhase transitions the connection to a new phase. Entering Play also
// switches the socket into non-blocking polling mode.
func (c *Connection) SetPhase(p proto.Phase) {
	c.phase = p
	if p == proto.PhasePlay {
		c.blocking = false
	}
}

// SetCompressionThreshold configures the frame codec's compression
// threshold for every subsequent frame in both directions.
func (c *Connection) SetCompressionThreshold(threshold int) {
	c.framer.SetCompression(threshold)
}

// Send encodes and writes one packet as a complete frame.
func (c *Connection) Send(id int32, body []byte) error {
	return c.framer.WriteFrame(c.conn, id, body)
}

// decode looks id up in the registry for the connection's current phase
// and the ToClient direction, then decodes body into the resulting
// packet. An unregistered id surfaces as *proto.IllegalPacketError —
// callers log it and keep going rather than treating it as fatal.
func (c *Connection) decode(id int32, body *codec.Reader) (proto.Packet, error) {
	p, err := c.registry.New(id, c.phase, proto.ToClient)
	if err != nil {
		return nil, err
	}
	if err := p.Decode(body); err != nil {
		return nil, err
	}
	return p, nil
}

// ReadPacket blocks until one complete frame arrives, then decodes it
// via the packet registry. Used during login, where the client has
// nothing else useful to do but wait.
func (c *Connection) ReadPacket() (proto.Packet, error) {
	id, body, err := c.framer.ReadFrame(codec.NewReader(c.reader))
	if err != nil {
		return nil, err
	}
	return c.decode(id, body)
}

// PollPacket attempts to read one frame without blocking the caller for
// longer than a token deadline. It returns ErrWouldBlock, not a hard
// error, when no complete frame is available yet — this is the expected
// outcome on most ticks once the connection has entered Play.
func (c *Connection) PollPacket() (proto.Packet, error) {
	if c.blocking {
		return c.ReadPacket()
	}

	if c.reader.Buffered() == 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(pollReadDeadline)); err != nil {
			return nil, fmt.Errorf("netio: set read deadline: %w", err)
		}

		_, peekErr := c.reader.Peek(1)
		// Clear the deadline the moment the availability check is done —
		// it must not still be armed once the full-frame read below
		// starts, or a frame whose body straddles the deadline gets
		// mistaken for a hard I/O error mid-read.
		if err := c.conn.SetReadDeadline(time.Time{}); err != nil {
			return nil, fmt.Errorf("netio: clear read deadline: %w", err)
		}
		if peekErr != nil {
			if errors.Is(peekErr, os.ErrDeadlineExceeded) {
				return nil, ErrWouldBlock
			}
			return nil, fmt.Errorf("netio: poll: %w", peekErr)
		}
	}

	id, body, err := c.framer.ReadFrame(codec.NewReader(c.reader))
	if err != nil {
		return nil, fmt.Errorf("netio: poll: %w", err)
	}
	return c.decode(id, body)
}

// SetStatusDeadline applies the 200ms status-probe read/write timeout.
func (c *Connection) SetStatusDeadline() error {
	return c.conn.SetDeadline(time.Now().Add(statusIOTimeout))
}
