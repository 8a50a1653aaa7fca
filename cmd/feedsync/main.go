package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/feedsync/pkg/config"
	"github.com/umputun/feedsync/pkg/content"
	"github.com/umputun/feedsync/pkg/domain"
	"github.com/umputun/feedsync/pkg/events"
	"github.com/umputun/feedsync/pkg/feed"
	"github.com/umputun/feedsync/pkg/filter"
	"github.com/umputun/feedsync/pkg/images"
	"github.com/umputun/feedsync/pkg/proxy"
	"github.com/umputun/feedsync/pkg/repository"
	"github.com/umputun/feedsync/pkg/scheduler"
	"github.com/umputun/feedsync/pkg/service"
	"github.com/umputun/feedsync/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"config file, defaults are used if not set"`
	Once   bool   `long:"once" description:"refresh all sources once and exit"`
	Sync   bool   `long:"sync" env:"SYNC" description:"pull everything pending on the proxy server on each refresh"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	SetupLog(opts.Debug, opts.NoColor)
	lgr.Printf("[INFO] starting feedsync version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	lgr.Print("[INFO] shutdown complete")
}

// app holds wired components
type app struct {
	repos     *repository.Repositories
	svc       *service.Service
	orch      *scheduler.Orchestrator
	bus       *events.Bus
	proxyMode bool
}

func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if cfg.Proxy.Token != "" {
		SetupLog(opts.Debug, opts.NoColor, cfg.Proxy.Token)
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	fullSync := opts.Sync && a.proxyMode
	if opts.Once {
		res := a.orch.RefreshAll(ctx, scheduler.RefreshOptions{FullProxySync: fullSync})
		logResult(res)
		if err := a.svc.MarkRefreshed(ctx, time.Now()); err != nil {
			lgr.Printf("[WARN] failed to store refresh time: %v", err)
		}
		return nil
	}

	sched := scheduler.NewScheduler(scheduler.Params{
		Refresher:      a.orch,
		UpdateInterval: cfg.Schedule.UpdateInterval,
		MaxConcurrent:  cfg.Fetch.MaxConcurrent,
		ProxySync:      fullSync,
		OnComplete: func(res domain.BatchResult) {
			logResult(res)
			if err := a.svc.MarkRefreshed(context.WithoutCancel(ctx), time.Now()); err != nil {
				lgr.Printf("[WARN] failed to store refresh time: %v", err)
			}
		},
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, a.svc, a.orch, a.bus, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// newApp opens the store and wires the ingestion pipeline
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	bus := events.Default()
	fetcher := feed.NewFetcher(feed.FetcherParams{
		Timeout:   cfg.Fetch.Timeout,
		UserAgent: cfg.Fetch.UserAgent,
		Relay:     feed.RelayConfig{URL: cfg.Fetch.CORSRelay.URL, Domains: cfg.Fetch.CORSRelay.Domains},
	})
	extractor := content.NewExtractor(content.Params{
		Timeout:          cfg.Extraction.Timeout,
		UserAgent:        cfg.Extraction.UserAgent,
		MinExcerptLength: cfg.Extraction.MinExcerptLength,
		RateLimit:        cfg.Extraction.RateLimit,
	})
	var validator *images.Validator
	if cfg.Images.Validate {
		validator = images.NewValidator(nil, cfg.Images.HeadTimeout, cfg.Images.AntiHotlinkDomains)
	}
	pipeline := images.NewPipeline(validator)

	svcParams := service.Params{Repos: repos, Events: bus, Extractor: extractor, Images: pipeline}
	var proxyClient *proxy.Client
	if cfg.Proxy.Enabled {
		proxyClient = proxy.NewClient(proxy.ClientParams{
			BaseURL: cfg.Proxy.URL,
			Token:   proxy.StaticToken(cfg.Proxy.Token),
			Timeout: cfg.Proxy.Timeout,
		})
		svcParams.Proxy = proxyClient
	}
	svc := service.NewService(svcParams)
	rules := filter.New(svc)

	orchParams := scheduler.OrchestratorParams{
		Sources:       svc,
		Articles:      svc,
		Fetcher:       fetcher,
		Extractor:     extractor,
		Images:        pipeline,
		Filter:        rules,
		Events:        bus,
		MaxConcurrent: cfg.Fetch.MaxConcurrent,
		FetchTimeout:  cfg.Fetch.Timeout,
		RetryAttempts: cfg.Fetch.Retries,
		RetryDelay:    cfg.Fetch.RetryDelay,
	}
	if proxyClient != nil {
		orchParams.Proxy = proxy.NewSyncer(proxy.SyncerParams{
			Client:           proxyClient,
			Store:            svc,
			Filter:           rules,
			ImageCompression: cfg.Proxy.ImageCompression,
			Limit:            cfg.Proxy.Limit,
		})
		lgr.Printf("[INFO] proxy sync enabled, server %s", cfg.Proxy.URL)
	}

	return &app{repos: repos, svc: svc, orch: scheduler.NewOrchestrator(orchParams), bus: bus,
		proxyMode: proxyClient != nil}, nil
}

func logResult(res domain.BatchResult) {
	lgr.Printf("[INFO] refresh completed, %d sources ok, %d failed, %d new articles",
		res.SuccessCount, res.FailedCount, res.TotalArticles)
	for _, e := range res.Errors {
		lgr.Printf("[WARN] source %s failed: %s", e.SourceName, e.Message)
	}
}

// SetupLog configures lgr and the standard logger, secrets are masked in the output
func SetupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
