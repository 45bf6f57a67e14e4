package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ry-diffusion/gyra-go/pkg/netio"
)

var statusServer string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe a server's Status phase without entering Play",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(statusServer)
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusServer, "server", "127.0.0.1:25565", "server address (host:port)")
}

func runStatus(server string) error {
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

	result, err := netio.Probe(conn, host, port, 42)
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}

	fmt.Printf("description: %s\n", result.Description)
	fmt.Printf("round trip:  %dms\n", result.PingRoundTrip)
	return nil
}
