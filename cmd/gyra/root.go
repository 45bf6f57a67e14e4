// Command gyra is the CLI entry point: connect to a server and run the
// client, or probe a server's Status phase without entering Play.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "gyra",
	Short: "A headless block-world sandbox game client",
	Long: `Gyra speaks protocol version 47 (1.8-era) well enough to join a
server, track its world and entities, and hand mesh data to a renderer
or a debug viewer. It never draws anything itself.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (no config file is read when empty)")
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
