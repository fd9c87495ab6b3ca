package cli

import (
	mcpadapter "github.com/lintgate/lintgate/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the lintgate MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start lintgate MCP server (stdio)",
		Long:  "Start the lintgate MCP server using stdio transport. This lets coding assistants evaluate violations and read the gate history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				projectPath = "."
			}
			// stdout belongs to the protocol, logs go to stderr.
			logger, err := opts.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return &ExitError{Code: ExitUsageOrInput, Err: err}
			}
			defer func() { _ = logger.Sync() }()

			s := mcpadapter.NewLintgateMCPServer(projectPath, logger)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
