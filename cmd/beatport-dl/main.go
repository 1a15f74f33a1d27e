package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/handiism/beatport-downloader/internal/config"
	"github.com/handiism/beatport-downloader/internal/download"
	"github.com/joho/godotenv"
)

func main() {
	var (
		urlsFlag      = flag.String("url", "", "Beatport URL(s) to download (comma-separated or newline-separated)")
		qualityFlag   = flag.String("quality", "", "Quality tier: minimum, low, medium, high, lossless, hifi (overrides config)")
		outputFlag    = flag.String("output", "", "Output directory (overrides config)")
		configFlag    = flag.String("config", "", "Path to config file")
		coverSizeFlag = flag.Int("cover-size", 0, "Cover art edge length in pixels (overrides config)")
		playlistFlag  = flag.Bool("playlist", false, "Create playlist file")
		searchFlag    = flag.String("search", "", "Search the catalog instead of downloading")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
		debugFlag     = flag.Bool("debug", false, "Trace API traffic to the debug log")
		dryRunFlag    = flag.Bool("dry-run", false, "Resolve URLs without downloading")
	)

	flag.Parse()

	if *urlsFlag == "" && *searchFlag == "" && flag.NArg() == 0 {
		fmt.Println("Beatport Downloader - Download music from Beatport")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  beatport-dl -url <URL> [options]")
		fmt.Println("  beatport-dl <URL> [options]")
		fmt.Println("  beatport-dl -search <query>")
		fmt.Println()
		fmt.Println("Credentials are read from BEATPORT_USERNAME and BEATPORT_PASSWORD")
		fmt.Println("(a .env file next to the binary works too).")
		fmt.Println()
		fmt.Println("For interactive mode, use: beatport-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// A missing .env file is fine; the variables may be set directly.
	_ = godotenv.Load()
	username := os.Getenv("BEATPORT_USERNAME")
	password := os.Getenv("BEATPORT_PASSWORD")

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	if *qualityFlag != "" {
		settings.Quality = *qualityFlag
	}
	if *outputFlag != "" {
		settings.DownloadsPath = filepath.Join(*outputFlag, "{artist}", "{album}")
	}
	if *coverSizeFlag > 0 {
		settings.CoverSize = *coverSizeFlag
	}
	if *playlistFlag {
		settings.CreatePlaylist = true
	}
	if *debugFlag {
		settings.Debug = true
	}

	urls := *urlsFlag
	if urls == "" && flag.NArg() > 0 {
		urls = flag.Arg(0)
	}
	urls = strings.ReplaceAll(urls, ",", "\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	manager, err := download.NewManager(settings, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := "   "
		switch event.Level {
		case download.LevelError:
			prefix = " x "
		case download.LevelWarning:
			prefix = " ! "
		case download.LevelSuccess:
			prefix = " + "
		case download.LevelInfo:
			prefix = " > "
		}
		fmt.Println(prefix + event.Message)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := manager.Authenticate(ctx, username, password); err != nil {
		fmt.Fprintf(os.Stderr, "Error signing in: %v\n", err)
		os.Exit(1)
	}

	if *searchFlag != "" {
		runSearch(ctx, manager, *searchFlag)
		return
	}

	if err := manager.Initialize(ctx, urls); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		os.Exit(1)
	}

	if *dryRunFlag {
		fmt.Println("\n[Dry run - not downloading]")
		return
	}

	fmt.Println("\nStarting downloads...")
	fmt.Println()

	if err := manager.StartDownloads(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nDownload cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error during download: %v\n", err)
		os.Exit(1)
	}

	filesReceived, filesTotal := manager.GetProgress()
	fmt.Println()
	fmt.Printf("Complete! Downloaded %d/%d files\n", filesReceived, filesTotal)
}

func runSearch(ctx context.Context, manager *download.Manager, query string) {
	results, err := manager.Provider().Client().Search(ctx, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching: %v\n", err)
		os.Exit(1)
	}

	for _, track := range results.Tracks {
		artists := make([]string, 0, len(track.Artists))
		for _, artist := range track.Artists {
			artists = append(artists, artist.Name)
		}
		name := track.Name
		if track.MixName != "" {
			name = fmt.Sprintf("%s (%s)", track.Name, track.MixName)
		}
		fmt.Printf("track    %9d  %s - %s\n", track.ID, strings.Join(artists, ", "), name)
	}
	for _, release := range results.Releases {
		artist := ""
		if len(release.Artists) > 0 {
			artist = release.Artists[0].Name
		}
		fmt.Printf("release  %9d  %s - %s\n", release.ID, artist, release.Name)
	}
	for _, artist := range results.Artists {
		fmt.Printf("artist   %9d  %s\n", artist.ID, artist.Name)
	}

	if len(results.Tracks)+len(results.Releases)+len(results.Artists) == 0 {
		fmt.Println("No results.")
	}
}
