package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/render"
	"github.com/lguibr/brickbreaker/render/window"
	"github.com/lguibr/brickbreaker/server"
	"github.com/lguibr/brickbreaker/utils"
	"golang.org/x/sync/errgroup"
)

const (
	ModeTerminal = "terminal"
	ModeWindow   = "window"
	ModeHeadless = "headless"

	engineShutdownTimeout = 2 * time.Second
)

type options struct {
	mode       string
	addr       string
	configPath string
	logPath    string
	seed       int64
	frames     int
	every      int
	autopilot  bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("brickbreaker", flag.ContinueOnError)
	fs.StringVar(&opts.mode, "mode", ModeTerminal, "host: terminal, window or headless")
	fs.StringVar(&opts.addr, "addr", "", "serve HTTP/websocket clients on this address (e.g. :3001); empty disables")
	fs.StringVar(&opts.configPath, "config", "", "JSON config file overriding the defaults")
	fs.StringVar(&opts.logPath, "log", "", "log file (terminal mode discards logs by default)")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed for bonus drops; 0 uses the clock")
	fs.IntVar(&opts.frames, "frames", 0, "headless: stop after this many printed frames; 0 runs until game over")
	fs.IntVar(&opts.every, "every", 50, "headless: print a frame every N ticks")
	fs.BoolVar(&opts.autopilot, "autopilot", false, "headless: steer the paddle automatically")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	switch opts.mode {
	case ModeTerminal, ModeWindow, ModeHeadless:
	default:
		return opts, fmt.Errorf("unknown mode %q", opts.mode)
	}
	return opts, nil
}

// setupLogging routes the standard logger. The returned closer is never nil.
func setupLogging(opts options) (io.Closer, error) {
	if opts.logPath != "" {
		file, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(file)
		return file, nil
	}
	if opts.mode == ModeTerminal {
		// Log lines would corrupt the tcell screen.
		log.SetOutput(io.Discard)
	}
	return io.NopCloser(nil), nil
}

func loadConfig(path string) (utils.Config, error) {
	if path == "" {
		return utils.DefaultConfig(), nil
	}
	return utils.LoadConfig(path)
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logCloser, err := setupLogging(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		log.Printf("brickbreaker: %v", err)
		fmt.Fprintln(os.Stderr, "brickbreaker:", err)
		stop()
		logCloser.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if opts.seed != 0 {
		rng = rand.New(rand.NewSource(opts.seed))
	}

	engine := bollywood.NewEngine()
	defer engine.Shutdown(engineShutdownTimeout)

	gamePID := engine.Spawn(bollywood.NewProps(game.NewGameActorProducer(cfg, rng)))
	if gamePID == nil {
		return errors.New("failed to spawn game actor")
	}
	log.Printf("Main: game actor %s started (mode %s)", gamePID, opts.mode)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if opts.addr != "" {
		srv := server.New(engine, gamePID)
		g.Go(func() error { return srv.ListenAndServe(gctx, opts.addr) })
	}

	switch opts.mode {
	case ModeTerminal:
		host, err := render.NewTerminalHost(engine, gamePID, nil)
		if err != nil {
			cancel()
			_ = g.Wait()
			return err
		}
		g.Go(func() error {
			defer cancel()
			return host.Run(gctx)
		})

	case ModeHeadless:
		headless := render.NewHeadless(engine, gamePID, os.Stdout, render.HeadlessOptions{
			Cols:      80,
			Rows:      30,
			Every:     opts.every,
			MaxFrames: opts.frames,
			Autopilot: opts.autopilot,
		})
		g.Go(func() error {
			defer cancel()
			_, err := headless.Run(gctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})

	case ModeWindow:
		// ebiten must own the main goroutine.
		err := window.NewHost(gctx, engine, gamePID, cfg).Run()
		cancel()
		return errors.Join(err, g.Wait())
	}

	return g.Wait()
}
