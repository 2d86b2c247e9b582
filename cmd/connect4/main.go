package main

import (
	"flag"
	"log"
	"os"

	"connect4/internal/app"
)

func main() {
	cfg := app.DefaultConfig()
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level (debug, info, warn, error)")
	flag.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "write diagnostics as JSON lines")
	flag.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "shell prompt")
	flag.Parse()

	sh, err := app.Boot(cfg, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if err := sh.Run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
