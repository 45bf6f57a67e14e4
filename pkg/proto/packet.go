package proto

import "github.com/ry-diffusion/gyra-go/pkg/codec"

// Packet is implemented by every registered wire packet. Decode is called on
// a fresh zero-value instance produced by the registry's factory; it must
// read fields in the wire-declared order.
type Packet interface {
	Encode(w *codec.Writer)
	Decode(r *codec.Reader) error
}

// Identity is the (id, phase, direction) triple that uniquely names a
// packet's wire slot. The same id occurs in multiple phases.
type Identity struct {
	ID        int32
	Phase     Phase
	Direction Direction
}

// Registry maps a packet Identity to a factory that produces a fresh,
// empty Packet ready for Decode. A flat match-style dispatch (rather than
// virtual dispatch over a packet class hierarchy) keeps lookup explicit and
// fast.
type Registry struct {
	factories map[Identity]func() Packet
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[Identity]func() Packet)}
}

// Register associates id+phase+direction with a packet factory. Registering
// the same Identity twice overwrites the previous factory.
func (r *Registry) Register(id Identity, factory func() Packet) {
	r.factories[id] = factory
}

// New looks up and instantiates the packet registered for id. It returns
// *IllegalPacketError if no factory is registered.
func (r *Registry) New(id int32, phase Phase, dir Direction) (Packet, error) {
	key := Identity{ID: id, Phase: phase, Direction: dir}
	factory, ok := r.factories[key]
	if !ok {
		return nil, &IllegalPacketError{ID: id, Phase: phase, Direction: dir}
	}
	return factory(), nil
}
