// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mcp-file-server/mcp-file-server/pkg/config"
	"github.com/mcp-file-server/mcp-file-server/pkg/fsop"
	"github.com/mcp-file-server/mcp-file-server/pkg/logrusutil"
	"github.com/mcp-file-server/mcp-file-server/pkg/mcp/serve"
	"github.com/mcp-file-server/mcp-file-server/pkg/mcp/toolset"
	"github.com/mcp-file-server/mcp-file-server/pkg/version"
)

func main() {
	if err := newApp().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp-file-server",
		Short: "Model Context Protocol server for file operations in a sandboxed directory",
		Long: `Model Context Protocol server for file operations in a sandboxed directory.

Without a subcommand, the server is started as with "mcp-file-server serve".`,
		Version:           strings.TrimPrefix(version.Version, "v"),
		Args:              cobra.NoArgs,
		RunE:              serveAction,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	config.AddFlags(cmd.PersistentFlags())
	cmd.AddCommand(
		newServeCommand(),
		newInfoCommand(),
		newGenDocCommand(),
	)
	return cmd
}

func newServer() *mcp.Server {
	impl := &mcp.Implementation{
		Name:    "mcp-file-server",
		Title:   "File operations confined to a base directory",
		Version: version.Version,
	}
	serverOpts := &mcp.ServerOptions{
		Instructions: `This MCP server provides tools for listing, reading, creating and deleting
files and directories inside a single base directory.

Paths are relative to the base directory; "/" denotes the base directory itself.
Existing files are never overwritten, and only empty directories can be deleted.
`,
	}
	if runtime.GOOS != "linux" {
		serverOpts.Instructions += fmt.Sprintf(`
NOTE: the host OS is %s.
`, cases.Title(language.English).String(runtime.GOOS))
	}
	return mcp.NewServer(impl, serverOpts)
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over streamable HTTP or stdio",
		Long: `Serve MCP over streamable HTTP (default) or stdio.

Every flag can also be set with the environment variable shown in its description.`,
		Args: cobra.NoArgs,
		RunE: serveAction,
	}
	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags(), os.LookupEnv)
	if err != nil {
		return nil, err
	}
	// Logs go to stderr, stdout is reserved for the stdio transport.
	if err := logrusutil.Configure(logrus.StandardLogger(), cfg.LogLevel, cfg.LogFormat, os.Stderr); err != nil {
		return nil, err
	}
	return cfg, nil
}

func serveAction(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gw, err := fsop.New(cfg.BasePath)
	if err != nil {
		return err
	}
	logrus.Infof("Using base path: %s", gw.Base())

	ts, err := toolset.New()
	if err != nil {
		return err
	}
	if err = ts.RegisterGateway(gw); err != nil {
		return err
	}
	server := newServer()
	if err = ts.RegisterServer(server); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, cfg, server)
}

func run(ctx context.Context, cfg *config.Config, server *mcp.Server) error {
	switch cfg.Transport {
	case config.TransportStdio:
		return serve.Stdio(ctx, server)
	case config.TransportStreamableHTTP:
		return serve.HTTP(ctx, server, cfg.Addr())
	default:
		return fmt.Errorf("unsupported transport %q", cfg.Transport)
	}
}
