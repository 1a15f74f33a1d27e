package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/beatport-downloader/internal/config"
	"github.com/handiism/beatport-downloader/internal/tui"
	"github.com/joho/godotenv"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	_ = godotenv.Load()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	username := os.Getenv("BEATPORT_USERNAME")
	password := os.Getenv("BEATPORT_PASSWORD")

	if err := tui.Run(settings, username, password); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
