package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/heyojules/folio/internal/hero"
	"github.com/heyojules/folio/internal/site"
	"github.com/heyojules/folio/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var startPage string
	var reducedMotion bool
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/folio/config.yml)")
	flag.StringVar(&startPage, "page", "", "page to open first (home or work)")
	flag.BoolVar(&reducedMotion, "reduced-motion", false, "disable animations")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Folio - Terminal Portfolio\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if reducedMotion {
		cfg.ReducedMotion = true
	}
	if startPage != "" {
		cfg.StartPage = startPage
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg appConfig) error {
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "folio")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		// The alt screen owns the terminal.
		log.SetOutput(io.Discard)
	}

	if err := tui.InitializeSkin(cfg.Skin, cfg.ConfigDir); err != nil {
		log.Printf("folio: failed to load skin %q: %v (using default)", cfg.Skin, err)
	}

	content, err := site.Load(cfg.SiteFile)
	if err != nil {
		return err
	}

	app := buildApp(cfg, content)
	log.Printf("folio: starting on %s page (reduced motion: %v)", app.Active(), cfg.ReducedMotion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		if _, err := p.Run(); err != nil {
			if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
				return fmt.Errorf("TUI requires a real terminal")
			}
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		p.Quit()
		return nil
	})

	return g.Wait()
}

func buildApp(cfg appConfig, content *site.Site) *tui.App {
	var heroOpts []hero.Option
	if cfg.Hero.Seed != 0 {
		heroOpts = append(heroOpts, hero.WithRand(rand.New(rand.NewPCG(cfg.Hero.Seed, cfg.Hero.Seed))))
	}

	opts := cfg.pageOptions()
	app := tui.NewApp(
		tui.NewHomePage(content, cfg.heroSettings(), opts, heroOpts...),
		tui.NewWorkPage(content, opts),
	)
	app.SetActive(cfg.StartPage)
	return app
}
