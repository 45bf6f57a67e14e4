package packets

import "github.com/ry-diffusion/gyra-go/pkg/proto"

// RegisterAll wires every packet type this client needs into reg. It is
// called once per connection, from netio's clientRegistry, rather than
// via package-level init() so tests can build a registry with only the
// subset they need.
func RegisterAll(reg *proto.Registry) {
	reg.Register(proto.Identity{ID: HandshakeID, Phase: proto.PhaseHandshake, Direction: proto.ToServer},
		func() proto.Packet { return &Handshake{} })

	reg.Register(proto.Identity{ID: StatusRequestID, Phase: proto.PhaseStatus, Direction: proto.ToServer},
		func() proto.Packet { return &StatusRequest{} })
	reg.Register(proto.Identity{ID: StatusResponseID, Phase: proto.PhaseStatus, Direction: proto.ToClient},
		func() proto.Packet { return &StatusResponse{} })
	reg.Register(proto.Identity{ID: StatusPingID, Phase: proto.PhaseStatus, Direction: proto.ToServer},
		func() proto.Packet { return &StatusPing{} })
	reg.Register(proto.Identity{ID: StatusPingID, Phase: proto.PhaseStatus, Direction: proto.ToClient},
		func() proto.Packet { return &StatusPing{} })

	reg.Register(proto.Identity{ID: LoginStartID, Phase: proto.PhaseLogin, Direction: proto.ToServer},
		func() proto.Packet { return &LoginStart{} })
	reg.Register(proto.Identity{ID: LoginDisconnectID, Phase: proto.PhaseLogin, Direction: proto.ToClient},
		func() proto.Packet { return &LoginDisconnect{} })
	reg.Register(proto.Identity{ID: LoginSuccessID, Phase: proto.PhaseLogin, Direction: proto.ToClient},
		func() proto.Packet { return &LoginSuccess{} })
	reg.Register(proto.Identity{ID: SetCompressionID, Phase: proto.PhaseLogin, Direction: proto.ToClient},
		func() proto.Packet { return &SetCompression{} })

	reg.Register(proto.Identity{ID: PlayKeepAliveID, Phase: proto.PhasePlay, Direction: proto.ToClient},
		func() proto.Packet { return &KeepAlive{} })
	reg.Register(proto.Identity{ID: PlayKeepAliveID, Phase: proto.PhasePlay, Direction: proto.ToServer},
		func() proto.Packet { return &KeepAlive{} })
	reg.Register(proto.Identity{ID: PlayJoinGameID, Phase: proto.PhasePlay, Direction: proto.ToClient},
		func() proto.Packet { return &JoinGame{} })
	reg.Register(proto.Identity{ID: PlayChatMessageID, Phase: proto.PhasePlay, Direction: proto.ToClient},
		func() proto.Packet { return &ChatMessage{} })
	reg.Register(proto.Identity{ID: PlaySendChatMessageID, Phase: proto.PhasePlay, Direction: proto.ToServer},
		func() proto.Packet { return &SendChatMessage{} })
	reg.Register(proto.Identity{ID: PlayPlayerPositionID, Phase: proto.PhasePlay, Direction: proto.ToServer},
		func() proto.Packet { return &PlayerPosition{} })
	reg.Register(proto.Identity{ID: PlayPlayerLookID, Phase: proto.PhasePlay, Direction: proto.ToServer},
		func() proto.Packet { return &PlayerLook{} })
	reg.Register(proto.Identity{ID: PlayPlayerPositionAndLookID, Phase: proto.PhasePlay, Direction: proto.ToClient},
		func() proto.Packet { return &PlayerPositionAndLook{} })
	reg.Register(proto.Identity{ID: PlayEntityID, Phase: proto.PhasePlay, Direction: proto.ToClient},
		func() proto.Packet { return &Entity{} })
	reg.Register(proto.Identity{ID: PlayEntityRelativeMoveID, Phase: proto.PhasePlay, Direction: proto.ToClient},
		func() proto.Packet { return &EntityRelativeMove{} })
	reg.Register(proto.Identity{ID: PlayChunkDataID, Phase: proto.PhasePlay, Direction: proto.ToClient},
		func() proto.Packet { return &ChunkData{} })
	reg.Register(proto.Identity{ID: PlayMapChunkBulkID, Phase: proto.PhasePlay, Direction: proto.ToClient},
		func() proto.Packet { return &MapChunkBulk{} })
	reg.Register(proto.Identity{ID: PlayDisconnectID, Phase: proto.PhasePlay, Direction: proto.ToClient},
		func() proto.Packet { return &Disconnect{} })
	reg.Register(proto.Identity{ID: SetCompressionID, Phase: proto.PhasePlay, Direction: proto.ToClient},
		func() proto.Packet { return &SetCompression{} })
}
