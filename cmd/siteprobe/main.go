package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/siteprobe/siteprobe/internal/config"
	"github.com/siteprobe/siteprobe/internal/logger"
	"github.com/siteprobe/siteprobe/internal/reporter"
	"github.com/siteprobe/siteprobe/internal/scanner"
	"github.com/siteprobe/siteprobe/internal/urlhandler"
)

func main() {
	flags := parseFlags()

	bootstrapLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.LoadGlobalConfig(flags.configFile, bootstrapLogger)
	if err != nil {
		bootstrapLogger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	applyFlagOverrides(cfg, flags)

	appLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		bootstrapLogger.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	probeScanner, err := scanner.NewScanner(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("Failed to initialize scanner")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		fmt.Fprintf(os.Stderr, "\n[!] Received signal %s, shutting down\n", sig)
		cancel()
	}()

	consoleReporter := reporter.NewConsoleReporter(cfg.ReporterConfig, os.Stdout)

	if flags.targetURL != "" {
		if ok := runScan(ctx, probeScanner, consoleReporter, cfg, appLogger, flags.targetURL); !ok {
			os.Exit(1)
		}
		return
	}

	runInteractive(ctx, probeScanner, consoleReporter, cfg, appLogger)
}

func applyFlagOverrides(cfg *config.GlobalConfig, flags cliFlags) {
	if flags.logLevel != "" {
		cfg.LogConfig.LogLevel = flags.logLevel
	}
	if flags.jsonOutput != "" {
		cfg.ReporterConfig.JSONOutputFile = flags.jsonOutput
	}
	if flags.htmlOutput != "" {
		cfg.ReporterConfig.HTMLOutputFile = flags.htmlOutput
	}
	if flags.noColor {
		cfg.ReporterConfig.NoColor = true
	}
}

// runInteractive prompts for targets until the user types exit or the
// context is cancelled.
func runInteractive(ctx context.Context, probeScanner *scanner.Scanner, consoleReporter *reporter.ConsoleReporter, cfg *config.GlobalConfig, log zerolog.Logger) {
	fmt.Println("siteprobe - lightweight website reconnaissance")
	fmt.Println("Reports basic indicators only; this is not a vulnerability scanner.")

	stdin := bufio.NewScanner(os.Stdin)
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Print("\nEnter the URL to scan (e.g., https://example.com) or 'exit' to quit: ")
		if !stdin.Scan() {
			return
		}
		input := strings.TrimSpace(stdin.Text())
		if strings.EqualFold(input, "exit") {
			return
		}
		if input == "" {
			fmt.Println("Please enter a URL.")
			continue
		}

		if withScheme, added := urlhandler.EnsureScheme(input); added {
			fmt.Println("Warning: URL missing scheme, attempting with https://")
			input = withScheme
		}

		runScan(ctx, probeScanner, consoleReporter, cfg, log, input)
	}
}

func runScan(ctx context.Context, probeScanner *scanner.Scanner, consoleReporter *reporter.ConsoleReporter, cfg *config.GlobalConfig, log zerolog.Logger, target string) bool {
	report, err := probeScanner.Scan(ctx, target)
	if err != nil {
		var invalidTarget *urlhandler.InvalidTargetError
		if errors.As(err, &invalidTarget) {
			fmt.Fprintf(os.Stderr, "Rejected: %s\n", invalidTarget.Error())
		} else {
			log.Error().Err(err).Msg("Scan failed")
		}
		return false
	}

	consoleReporter.Print(report)

	if path := cfg.ReporterConfig.JSONOutputFile; path != "" {
		if err := reporter.WriteJSON(report, cfg.ReporterConfig, path); err != nil {
			log.Error().Err(err).Msg("Failed to write JSON report")
		} else {
			fmt.Printf("JSON report saved: %s\n", path)
		}
	}
	if path := cfg.ReporterConfig.HTMLOutputFile; path != "" {
		if err := reporter.WriteHTML(report, path); err != nil {
			log.Error().Err(err).Msg("Failed to write HTML report")
		} else {
			fmt.Printf("HTML report saved: %s\n", path)
		}
	}
	return true
}
