package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ry-diffusion/gyra-go/internal/lobby"
	"github.com/ry-diffusion/gyra-go/pkg/config"
	"github.com/ry-diffusion/gyra-go/pkg/debugbridge"
	"github.com/ry-diffusion/gyra-go/pkg/handler"
	"github.com/ry-diffusion/gyra-go/pkg/logging"
	"github.com/ry-diffusion/gyra-go/pkg/netio"
	"github.com/ry-diffusion/gyra-go/pkg/proto"
	"github.com/ry-diffusion/gyra-go/pkg/renderer"
	"github.com/ry-diffusion/gyra-go/pkg/settings"
	"github.com/ry-diffusion/gyra-go/pkg/world"
)

// tickInterval is the protocol-mandated tick frequency: 20 Hz.
const tickInterval = time.Second / 20

var (
	connectServer   string
	connectUsername string
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to a server and run the client",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConnect(cmd.Context())
	},
}

func init() {
	connectCmd.Flags().StringVar(&connectServer, "server", "", "server address (host:port), overrides saved settings")
	connectCmd.Flags().StringVar(&connectUsername, "username", "", "username, overrides saved settings")
}

type noopRenderer struct{}

func (noopRenderer) SpawnMesh(renderer.SpawnMesh)       {}
func (noopRenderer) DespawnChunk(renderer.DespawnChunk) {}

func runConnect(ctx context.Context) error {
	cfg, err := config.Load(configFile, rootCmd.PersistentFlags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	entry := log.WithField("component", "gyra")

	saved, err := settings.Load()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	server := firstNonEmpty(connectServer, saved.ServerAddress, cfg.Server.Address)
	username := firstNonEmpty(connectUsername, saved.Username, cfg.Server.Username)
	if server == "" {
		return errors.New("no server address: pass --server or run once with one saved")
	}
	if username == "" {
		return errors.New("no username: pass --username or run once with one saved")
	}

	var target renderer.Renderer = noopRenderer{}
	if cfg.Debug.BridgeEnabled {
		bridge := debugbridge.New(entry.WithField("component", "debugbridge"))
		target = debugbridge.NewRendererAdapter(bridge)

		bridgeCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := debugbridge.Serve(bridgeCtx, cfg.Debug.BridgeAddr, bridge); err != nil {
				entry.WithError(err).Warn("debug bridge stopped")
			}
		}()
	}

	var opts []tea.ProgramOption
	if term.IsTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, tea.WithAltScreen())
	} else {
		entry.Info("stdout is not a terminal, running lobby screen without the alt-screen buffer")
	}
	program := tea.NewProgram(lobby.New(server), opts...)

	go func() {
		if err := runSession(entry, cfg, server, username, target, program); err != nil {
			entry.WithError(err).Error("session ended")
			program.Send(lobby.DisconnectedMsg{Reason: err.Error()})
		}
	}()

	_, runErr := program.Run()

	saved.ServerAddress = server
	saved.Username = username
	if saveErr := saved.Save(); saveErr != nil {
		entry.WithError(saveErr).Warn("failed to persist settings")
	}

	return runErr
}

// runSession owns the connection end to end: login, the 20Hz tick loop,
// and handing world/entity/chat events off to the world store, frame
// scheduler, and lobby TUI. It returns once the connection ends, with a
// non-nil error only for an abnormal (non-server-initiated) termination.
func runSession(entry *logrus.Entry, cfg *config.Config, server, username string, target renderer.Renderer, program *tea.Program) error {
	addr := netio.ResolveAddress(server)
	host, port, err := splitHostPort(addr)
	if err != nil {
		return err
	}

	conn, err := netio.Connect(addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	result, err := netio.Login(conn, host, port, username, entry)
	if err != nil {
		var disc *proto.DisconnectedError
		if errors.As(err, &disc) {
			program.Send(lobby.DisconnectedMsg{Reason: disc.Reason})
			return nil
		}
		return fmt.Errorf("login: %w", err)
	}
	entry.WithField("uuid", result.UUID).Info("logged in")

	store := world.NewStore()
	active := world.NewActiveSetScheduler(store)
	active.ViewDistance = int32(cfg.Render.ViewDistance)
	rendered := world.NewRenderedSetScheduler(store)
	frames := renderer.NewFrameScheduler(target, entry.WithField("component", "renderer"))

	h := handler.New(conn, entry)
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	var camera world.Camera
	camera.FovRadians = cfg.Render.FovDegrees * (math.Pi / 180)
	camera.Forward = world.Vec3{X: 0, Y: 0, Z: 1}

	for range ticker.C {
		events, err := h.Tick()
		if err != nil {
			return fmt.Errorf("tick: %w", err)
		}

		for _, ev := range events {
			switch {
			case ev.Disconnect != nil:
				program.Send(lobby.DisconnectedMsg{Reason: ev.Disconnect.Reason})
				return nil

			case ev.Column != nil:
				store.Put(ev.Column)
				active.Recompute()

			case ev.Columns != nil:
				for _, col := range ev.Columns {
					store.Put(col)
				}
				active.Recompute()
				entry.WithField("loaded_columns", humanize.Comma(int64(store.Len()))).Debug("chunk bulk applied")

			case ev.Position != nil:
				camera.Position = world.Vec3{X: ev.Position.X, Y: ev.Position.Y, Z: ev.Position.Z}
				if active.SetPlayerPosition(int32(ev.Position.X), int32(ev.Position.Z)) {
					active.Recompute()
				}
			}
		}

		delta := rendered.Update(camera, active.Active())
		frames.ApplyRenderedSetEvents(store, delta.Render, delta.Unrender)
		frames.DrainMeshResults()
	}

	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
