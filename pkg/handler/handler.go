package handler

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/ry-diffusion/gyra-go/pkg/chat"
	"github.com/ry-diffusion/gyra-go/pkg/chunk"
	"github.com/ry-diffusion/gyra-go/pkg/codec"
	"github.com/ry-diffusion/gyra-go/pkg/netio"
	"github.com/ry-diffusion/gyra-go/pkg/proto"
	"github.com/ry-diffusion/gyra-go/pkg/proto/packets"
)

// MaxPacketsPerTick caps inbound processing per tick; hitting it is a
// back-pressure signal, not an error.
const MaxPacketsPerTick = 200

// teleportThreshold is the minimum per-axis delta (in blocks) at which an
// authoritative PlayerPositionAndLook is honored outright rather than left
// to local prediction to reconcile. See SPEC_FULL.md §9: this is a tuned
// smoothing heuristic, not a protocol constant.
const teleportThreshold = 5.0

// Handler drives one tick's worth of inbound packet processing against a
// Connection, translating wire packets into Events.
type Handler struct {
	conn     *netio.Connection
	log      *logrus.Entry
	entities *EntityTracker

	hasPosition bool
	lastX       float64
	lastY       float64
	lastZ       float64
}

func New(conn *netio.Connection, log *logrus.Entry) *Handler {
	return &Handler{conn: conn, log: log, entities: NewEntityTracker(log)}
}

// Tick drains up to MaxPacketsPerTick inbound frames, translating each
// into zero or more Events. A netio.ErrWouldBlock return from the
// connection ends the tick early without error — there was simply nothing
// more to read.
func (h *Handler) Tick() ([]Event, error) {
	var events []Event

	for processed := 0; processed < MaxPacketsPerTick; processed++ {
		p, err := h.conn.PollPacket()
		if err != nil {
			if errors.Is(err, netio.ErrWouldBlock) {
				return events, nil
			}
			var illegal *proto.IllegalPacketError
			if errors.As(err, &illegal) {
				h.log.WithError(err).Debug("dropping unregistered play packet")
				continue
			}
			return events, fmt.Errorf("handler: poll: %w", err)
		}

		ev, handled, err := h.dispatch(p)
		if err != nil {
			var disc *proto.DisconnectedError
			if errors.As(err, &disc) {
				return append(events, Event{Disconnect: &DisconnectEvent{Reason: disc.Reason}}), nil
			}
			return events, err
		}
		if handled {
			events = append(events, ev)
		}

		if processed == MaxPacketsPerTick-1 {
			h.log.Warn("tick packet burst cap reached, deferring remaining packets to next tick")
		}
	}

	return events, nil
}

// dispatch turns one already-decoded packet (produced by the connection's
// registry lookup) into zero or one Event. Packet ids with no registry
// entry never reach here — netio.Connection.PollPacket already turned
// those into *proto.IllegalPacketError before returning.
func (h *Handler) dispatch(p proto.Packet) (Event, bool, error) {
	switch pkt := p.(type) {
	case *packets.KeepAlive:
		return Event{}, false, h.echoKeepAlive(pkt.ID)

	case *packets.JoinGame:
		return Event{GameReady: &GameReadyEvent{
			EntityID:   pkt.EntityID,
			Gamemode:   pkt.Gamemode,
			Dimension:  pkt.Dimension,
			Difficulty: pkt.Difficulty,
		}}, true, nil

	case *packets.ChatMessage:
		component, err := chat.Parse(pkt.Content)
		if err != nil {
			h.log.WithError(err).Warn("dropping chat message with invalid JSON")
			return Event{}, false, nil
		}
		return Event{Chat: &ChatEvent{
			Raw:      pkt.Content,
			Text:     chat.Render(component),
			Spans:    chat.Spans(component),
			Position: pkt.Position,
		}}, true, nil

	case *packets.PlayerPositionAndLook:
		ev, ok := h.handlePositionAndLook(*pkt)
		return ev, ok, nil

	case *packets.Entity:
		h.entities.Spawn(pkt.EntityID)
		return Event{Entity: &EntityEvent{Kind: EntitySpawn, EntityID: pkt.EntityID}}, true, nil

	case *packets.EntityRelativeMove:
		ev, ok := h.entities.Move(pkt.EntityID, pkt.DX, pkt.DY, pkt.DZ)
		if !ok {
			return Event{}, false, nil
		}
		return Event{Entity: &ev}, true, nil

	case *packets.ChunkData:
		col, err := chunk.DecodeChunkData(pkt, h.log)
		if err != nil {
			return Event{}, false, err
		}
		return Event{Column: col}, true, nil

	case *packets.MapChunkBulk:
		cols, err := chunk.DecodeMapChunkBulk(pkt, h.log)
		if err != nil {
			return Event{}, false, err
		}
		return Event{Columns: cols}, true, nil

	case *packets.SetCompression:
		h.conn.SetCompressionThreshold(int(pkt.Threshold))
		return Event{}, false, nil

	case *packets.Disconnect:
		return Event{}, false, &proto.DisconnectedError{Reason: pkt.Reason}

	default:
		if h.log != nil {
			h.log.WithField("packet_type", fmt.Sprintf("%T", pkt)).Debug("ignoring unhandled play packet")
		}
		return Event{}, false, nil
	}
}

// handlePositionAndLook applies the teleport threshold: the first position
// ever received, or one whose delta on any axis is at least
// teleportThreshold blocks, is honored outright.
func (h *Handler) handlePositionAndLook(p packets.PlayerPositionAndLook) (Event, bool) {
	honor := !h.hasPosition ||
		math.Abs(p.X-h.lastX) >= teleportThreshold ||
		math.Abs(p.Y-h.lastY) >= teleportThreshold ||
		math.Abs(p.Z-h.lastZ) >= teleportThreshold

	h.hasPosition = true
	h.lastX, h.lastY, h.lastZ = p.X, p.Y, p.Z

	if !honor {
		return Event{}, false
	}
	return Event{Position: &PositionEvent{X: p.X, Y: p.Y, Z: p.Z, Yaw: p.Yaw, Pitch: p.Pitch}}, true
}

func (h *Handler) echoKeepAlive(id int32) error {
	w := codec.NewWriter()
	(&packets.KeepAlive{ID: id}).Encode(w)
	return h.conn.Send(packets.PlayKeepAliveID, w.Bytes())
}

// SendChat truncates msg to the 100-character wire limit and submits it.
func (h *Handler) SendChat(msg string) error {
	w := codec.NewWriter()
	(&packets.SendChatMessage{Message: chat.TruncateUTF8(msg, 100)}).Encode(w)
	return h.conn.Send(packets.PlaySendChatMessageID, w.Bytes())
}

// SendPosition submits a PlayerPosition update.
func (h *Handler) SendPosition(x, y, z float64, onGround bool) error {
	w := codec.NewWriter()
	(&packets.PlayerPosition{X: x, Y: y, Z: z, OnGround: onGround}).Encode(w)
	return h.conn.Send(packets.PlayPlayerPositionID, w.Bytes())
}
