package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"SlideBox/pkg/config"
	"SlideBox/pkg/logger"
	"SlideBox/pkg/tui"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	showVersion := flag.Bool("version", false, "Show version")
	showHelp := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *showHelp {
		printHelp()
		return
	}

	if *showVersion {
		fmt.Printf("SlideBox v%s\n", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := tui.Run(cfg); err != nil {
		logger.Sync()
		log.Fatalf("TUI error: %v", err)
	}
	os.Exit(0)
}

func printHelp() {
	fmt.Printf("SlideBox v%s - gesture-interruptible transition demo\n\n", version)
	fmt.Println("Usage: slidebox [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -config string")
	fmt.Println("        Path to configuration file")
	fmt.Println("  -version")
	fmt.Println("        Show version")
	fmt.Println("  -help")
	fmt.Println("        Show this help")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  SLIDEBOX_DURATION_MS   Transition duration in milliseconds")
	fmt.Println("  SLIDEBOX_MIN_FRACTION  Release threshold in [0,1]")
	fmt.Println("  SLIDEBOX_CURVE         Timing curve (linear, ease-in, ease-out, ease-in-out)")
	fmt.Println("  SLIDEBOX_LOG_LEVEL     DEBUG, INFO, WARN, ERROR")
	fmt.Println("  SLIDEBOX_LOG_FILE      Log file path (empty disables logging)")
	fmt.Println()
	fmt.Println("Controls:")
	fmt.Println("  drag    scrub the transition with the mouse")
	fmt.Println("  space   run the transition to the other state")
	fmt.Println("  s       snap to the other state without animating")
	fmt.Println("  q       quit")
}
