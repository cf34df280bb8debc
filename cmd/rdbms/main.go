package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Adnangad/RDBMS/internal/config"
	"github.com/Adnangad/RDBMS/internal/engine"
	"github.com/Adnangad/RDBMS/internal/logging"
	"github.com/Adnangad/RDBMS/internal/network"
	"github.com/Adnangad/RDBMS/internal/repl"
	"github.com/Adnangad/RDBMS/internal/server"
	"github.com/Adnangad/RDBMS/internal/session"
	"github.com/Adnangad/RDBMS/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	mode := flag.String("mode", "repl", "run mode: repl, serve (TCP) or http")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closeFn := logging.SetupLogger(cfg.Logging.SeqURL)
	defer closeFn()
	slog.SetDefault(logger)

	logger.Info("Starting application...", "app", cfg.AppName, "mode", *mode)

	store := storage.NewStore(cfg.Snapshot.Path, logger)
	eng := engine.New(store)
	eng.AddObserver(engine.NewLoggingObserver())

	switch *mode {
	case "repl":
		repl.Start(eng)
	case "serve":
		network.Start(cfg.Server.TCPPort, eng)
	case "http":
		sessions := session.NewStore()
		srv := server.New(eng, sessions, cfg.HTTP.PasswordSalt, cfg.HTTP.AllowOrigins, logger)
		if err := srv.InitSchema(); err != nil {
			logger.Error("schema init failed", "error", err)
			closeFn()
			os.Exit(1)
		}
		if err := srv.Run(cfg.Server.HTTPAddr); err != nil {
			logger.Error("http server failed", "error", err)
			closeFn()
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(1)
	}
}
