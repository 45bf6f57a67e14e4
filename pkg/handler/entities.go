package handler

import "github.com/sirupsen/logrus"

// fixedPointScale converts the 1/32-block, times-128 fixed-point delta
// EntityRelativeMove carries into float blocks.
const fixedPointScale = 1.0 / 32.0 / 128.0

// EntityTracker maintains the set of entity ids the server has told the
// client about via Entity, so EntityRelativeMove deltas for unknown ids
// can be identified and dropped rather than silently misapplied.
type EntityTracker struct {
	known map[int32]struct{}
	log   *logrus.Entry
}

func NewEntityTracker(log *logrus.Entry) *EntityTracker {
	return &EntityTracker{known: make(map[int32]struct{}), log: log}
}

// Spawn records entityID as known.
func (t *EntityTracker) Spawn(entityID int32) {
	t.known[entityID] = struct{}{}
}

// Move converts a raw EntityRelativeMove delta to an EntityEvent, or
// returns false if entityID was never spawned — the move is dropped and
// logged at debug level rather than applied to an unknown entity.
func (t *EntityTracker) Move(entityID int32, dx, dy, dz int8) (EntityEvent, bool) {
	if _, ok := t.known[entityID]; !ok {
		if t.log != nil {
			t.log.WithField("entity_id", entityID).Debug("dropping relative move for unknown entity")
		}
		return EntityEvent{}, false
	}
	return EntityEvent{
		Kind:     EntityMove,
		EntityID: entityID,
		DX:       float64(dx) * fixedPointScale,
		DY:       float64(dy) * fixedPointScale,
		DZ:       float64(dz) * fixedPointScale,
	}, true
}
