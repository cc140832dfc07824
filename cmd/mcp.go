package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/tomato/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI assistants.
The server exposes tools to read and drive the timer. Completion alerts are
delivered while the server is running.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{longRunning: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol.
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, "🚀 Starting MCP server...")
		fmt.Fprintln(errOut, "   The server will communicate via stdio")
		fmt.Fprintln(errOut, "   Press Ctrl+C to stop")

		ctx := setupSignalHandler()

		server := mcp.NewServer(app.timer, Version)
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}
