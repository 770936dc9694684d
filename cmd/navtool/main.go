package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "navtool",
		Short: "Scene navigation toolbox: validate, inspect, and export scene files",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(pathCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(schemaCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var configPath string

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scene.yaml]",
		Short: "Check a scene file and report every problem found",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [scene.yaml]",
		Short: "Rasterize the scene and print grid and hotspot statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runStats(args[0])
		},
	}
}

func pathCmd() *cobra.Command {
	var from, to []float64

	cmd := &cobra.Command{
		Use:   "path [scene.yaml]",
		Short: "Find a walking path between two points",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPath(args[0], from, to)
		},
	}
	cmd.Flags().Float64SliceVar(&from, "from", nil, "start point as x,y")
	cmd.Flags().Float64SliceVar(&to, "to", nil, "goal point as x,y")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}

func exportCmd() *cobra.Command {
	var out string
	var hotspots bool

	cmd := &cobra.Command{
		Use:   "export [scene.yaml]",
		Short: "Export the rasterized grid (or the hotspots) as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0], out, hotspots)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&hotspots, "hotspots", false, "export hotspot records instead of the grid")
	return cmd
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the scene file format",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSchema()
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [scene.yaml]",
		Short: "Serve navigation queries for a scene over a websocket",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runServe(args[0], addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "bind address (default from config)")
	return cmd
}
