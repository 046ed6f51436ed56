package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"

	"github.com/ironsheep/framecraft-mcp/internal/catalog"
	"github.com/ironsheep/framecraft-mcp/internal/compose"
	"github.com/ironsheep/framecraft-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("framecraft-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("framecraft-mcp - MCP server for App Store marketing frames")
			fmt.Println()
			fmt.Println("Usage: framecraft-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  FRAMECRAFT_LOG_LEVEL=debug|info|warn|error    Log to stderr")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// stdout is for MCP protocol, so logs go to stderr or nowhere.
	logger := newLogger(os.Getenv("FRAMECRAFT_LOG_LEVEL"))
	gg.SetLogger(logger)
	logger.Info("starting", "server", "framecraft-mcp", "version", Version, "built", BuildTime, "commit", GitCommit)

	engine, err := compose.New(catalog.Builtin(), compose.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "framecraft-mcp: %v\n", err)
		os.Exit(1)
	}

	srv := server.New(engine, server.WithLogger(logger), server.WithVersion(version()))
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		fmt.Fprintf(os.Stderr, "framecraft-mcp: server error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// version strips the leading "v" that git tags carry. Development builds
// report the server's own default.
func version() string {
	if Version == "dev" {
		return ""
	}
	return strings.TrimPrefix(Version, "v")
}
