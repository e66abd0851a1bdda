package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"git.lost.host/meutraa/firewall/internal/clock"
	"git.lost.host/meutraa/firewall/internal/config"
	"git.lost.host/meutraa/firewall/internal/game"
	"git.lost.host/meutraa/firewall/internal/input"
	"git.lost.host/meutraa/firewall/internal/logging"
	"git.lost.host/meutraa/firewall/internal/metrics"
	"git.lost.host/meutraa/firewall/internal/parser"
	"git.lost.host/meutraa/firewall/internal/render"
	"git.lost.host/meutraa/firewall/internal/scene"
	"git.lost.host/meutraa/firewall/internal/score"
	"git.lost.host/meutraa/firewall/internal/theme"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	wishlog "github.com/charmbracelet/wish/logging"
)

// host serves one independent session per connection. History and
// metrics are shared.
type host struct {
	cfg      *config.Config
	schedule *game.Schedule
	scorer   score.Scorer
	metrics  *metrics.Recorder
	log      *log.Logger
}

func main() {
	app := config.NewServeApp()
	_, cfg, err := app.Parse(os.Args[1:])
	if nil != err {
		app.Usage(err)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)
	if err := run(cfg, logger); nil != err {
		logger.Fatal(err)
	}
}

func run(cfg *config.Config, logger *log.Logger) error {
	schedule, err := parser.Load(&parser.DefaultParser{}, cfg.BeatMap)
	if nil != err {
		return err
	}
	scorer := &score.DefaultScorer{Path: cfg.Database}
	if err := scorer.Init(); nil != err {
		return err
	}
	defer scorer.Deinit()

	h := &host{
		cfg:      cfg,
		schedule: schedule,
		scorer:   scorer,
		metrics:  metrics.NewRecorder(),
		log:      logger,
	}
	if cfg.MetricsAddr != "" {
		srv := metrics.Serve(cfg.MetricsAddr, h.metrics, logger)
		defer srv.Close()
	}

	s, err := wish.NewServer(
		wish.WithAddress(cfg.SSHAddr),
		wish.WithHostKeyPath(cfg.HostKey),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			wishlog.MiddlewareWithLogger(logger),
		),
	)
	if nil != err {
		return fmt.Errorf("unable to create server: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", cfg.SSHAddr)
	go func() {
		if err := s.ListenAndServe(); nil != err && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			done <- syscall.SIGTERM
		}
	}()

	<-done
	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); nil != err && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("unable to shut down: %w", err)
	}
	return nil
}

func (h *host) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "a terminal is required, connect with ssh -t")
			next(sess)
			return
		}
		logger := h.log.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("session opened", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		size := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				size.update(win.Width, win.Height)
			}
		}()

		if err := h.play(sess, size, logger); nil != err && !errors.Is(err, context.Canceled) {
			logger.Error("session failed", "err", err)
		}
		logger.Info("session closed")
		next(sess)
	}
}

func (h *host) play(sess ssh.Session, size *sizeTracker, logger *log.Logger) error {
	clk := clock.New(h.cfg.StartDelay)
	src := input.StartStream(sess, clk.Now)
	defer src.Close()

	r := &render.DefaultRenderer{Out: sess, SizeFunc: size.get, Mouse: true}
	if err := r.Init(); nil != err {
		return err
	}
	defer r.Deinit()

	p := &scene.Program{
		Schedule:      h.schedule,
		Renderer:      r,
		Theme:         &theme.DefaultTheme{},
		Clock:         clk,
		Scorer:        h.scorer,
		Notifier:      h.metrics,
		Log:           logger,
		ReducedMotion: h.cfg.ReducedMotion,
	}
	if err := p.Init(); nil != err {
		return err
	}
	err := p.Run(sess.Context(), src, h.cfg.FramePeriod)
	if p.Abandoned() {
		h.metrics.Abandon()
	}
	return err
}

// sizeTracker follows window changes of a session.
type sizeTracker struct {
	mu            sync.RWMutex
	width, height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
}

func (s *sizeTracker) get() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ render.SizeFunc = (*sizeTracker)(nil).get
