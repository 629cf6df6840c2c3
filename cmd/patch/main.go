// Command patch is the UCI entrypoint: it wires stdin/stdout to the UCI
// loop and the UCI loop to the search engine.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/go-logr/stdr"

	"github.com/sixfold-origami/patch/engine"
	"github.com/sixfold-origami/patch/uci"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (optional)")
	flag.Parse()

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		loaded, err := engine.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("patch: %v", err)
		}
		cfg = loaded
	}

	logOutput := os.Stderr
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("patch: opening log file: %v", err)
		}
		defer f.Close()
		logOutput = f
	}
	logger := stdr.New(log.New(logOutput, "", log.LstdFlags))
	asyncLogger := engine.NewAsyncLogger(logger)

	os.Exit(uci.Loop(os.Stdin, os.Stdout, logger, asyncLogger, cfg))
}
