// Package handler implements the tick-loop protocol handler: keep-alive
// echo, compression setup, teleport-threshold position updates, entity
// tracking, chat and disconnect events, and chunk forwarding.
package handler

import (
	"github.com/ry-diffusion/gyra-go/pkg/chat"
	"github.com/ry-diffusion/gyra-go/pkg/chunk"
)

// Event is the union of domain events the handler emits for consumption
// by the rest of the client (TUI, world store, renderer bridge). Exactly
// one concrete type below is set per Event.
type Event struct {
	GameReady  *GameReadyEvent
	Chat       *ChatEvent
	Position   *PositionEvent
	Disconnect *DisconnectEvent
	Column     *chunk.Column
	Columns    []*chunk.Column
	Entity     *EntityEvent
}

type GameReadyEvent struct {
	EntityID   int32
	Gamemode   byte
	Dimension  int8
	Difficulty byte
}

type ChatEvent struct {
	Raw      string
	Text     string
	Spans    []chat.Span
	Position int8
}

type PositionEvent struct {
	X, Y, Z    float64
	Yaw, Pitch float32
}

type DisconnectEvent struct {
	Reason string
}

type EntityKind int

const (
	EntitySpawn EntityKind = iota
	EntityMove
)

type EntityEvent struct {
	Kind       EntityKind
	EntityID   int32
	DX, DY, DZ float64
}
