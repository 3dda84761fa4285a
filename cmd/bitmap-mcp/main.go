package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ironsheep/bitmap-tools-mcp/internal/config"
	"github.com/ironsheep/bitmap-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var configPath string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version", "-v", "version":
			fmt.Printf("bitmap-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "--config", "-c":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--config requires a path")
				os.Exit(2)
			}
			i++
			configPath = args[i]
		default:
			if strings.HasPrefix(args[i], "--config=") {
				configPath = strings.TrimPrefix(args[i], "--config=")
				continue
			}
			fmt.Fprintf(os.Stderr, "unknown option: %s\n", args[i])
			os.Exit(2)
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("Bitmap MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Display %dx%d at %d dpi, decode %s/%s, cache %t",
			cfg.Display.WidthPixels, cfg.Display.HeightPixels, cfg.Display.DensityDPI,
			cfg.Decode.PixelFormat, cfg.Decode.Filter, cfg.Decode.CacheBitmaps)
	}

	server.Version = Version
	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("bitmap-tools-mcp - MCP server for sampled bitmap decoding and string helpers")
	fmt.Println()
	fmt.Println("Usage: bitmap-tools-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v        Print version information")
	fmt.Println("  --help, -h           Print this help message")
	fmt.Println("  --config, -c PATH    Load configuration from a JSON file")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  BITMAP_MCP_CONFIG=PATH       Configuration file when --config is not given")
	fmt.Println("  BITMAP_MCP_LOG_LEVEL=debug   Enable debug logging")
	fmt.Println("  BITMAP_MCP_DENSITY=480       Display density in dpi for dp/px conversion")
	fmt.Println()
	fmt.Printf("Default configuration path: %s\n", config.GetConfigPath())
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
