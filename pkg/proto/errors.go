package proto

import "fmt"

// IllegalPacketError means (id, phase, direction) has no registered decoder.
// The caller should log and drop the packet; the connection continues.
type IllegalPacketError struct {
	ID        int32
	Phase     Phase
	Direction Direction
}

func (e *IllegalPacketError) Error() string {
	return fmt.Sprintf("proto: illegal packet id=0x%02X phase=%s direction=%s", e.ID, e.Phase, e.Direction)
}

// CantParseFieldError wraps a decode failure with the struct field name that
// was being read, for diagnostics.
type CantParseFieldError struct {
	Field string
	Cause error
}

func (e *CantParseFieldError) Error() string {
	return fmt.Sprintf("proto: can't parse field %q: %v", e.Field, e.Cause)
}

func (e *CantParseFieldError) Unwrap() error { return e.Cause }

// DisconnectedError is surfaced when the server tears down the connection,
// either via a protocol Disconnect/LoginDisconnect packet or a transport
// failure. Reason is empty for transport failures without a server message.
type DisconnectedError struct {
	Reason string
	Cause  error
}

func (e *DisconnectedError) Error() string {
	if e.Reason != "" {
		return "proto: disconnected: " + e.Reason
	}
	if e.Cause != nil {
		return "proto: disconnected: " + e.Cause.Error()
	}
	return "proto: disconnected"
}

func (e *DisconnectedError) Unwrap() error { return e.Cause }
