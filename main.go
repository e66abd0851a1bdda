package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.lost.host/meutraa/firewall/internal/audio"
	"git.lost.host/meutraa/firewall/internal/clock"
	"git.lost.host/meutraa/firewall/internal/config"
	"git.lost.host/meutraa/firewall/internal/engine"
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
	"golang.org/x/term"
)

func main() {
	app := config.NewApp()
	command, cfg, err := app.Parse(os.Args[1:])
	if nil != err {
		app.Usage(err)
	}
	if err := run(command, cfg); nil != err {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(command config.Command, cfg *config.Config) error {
	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if nil != err {
		return err
	}
	defer closer.Close()

	schedule, err := parser.Load(&parser.DefaultParser{}, cfg.BeatMap)
	if nil != err {
		return err
	}

	// Ensure our Default implementations are used as interfaces
	var scorer score.Scorer = &score.DefaultScorer{Path: cfg.Database}
	if err := scorer.Init(); nil != err {
		return err
	}
	defer scorer.Deinit()

	if command == config.CommandHistory {
		return history(os.Stdout, scorer, schedule, cfg.HistoryLimit)
	}
	return play(cfg, logger, scorer, schedule)
}

func play(cfg *config.Config, logger *log.Logger, scorer score.Scorer, schedule *game.Schedule) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("firewall needs a terminal")
	}

	player := audio.NewPlayer(cfg.Mute, cfg.StartDelay, logger)
	if !cfg.Mute && cfg.Track != "" {
		if err := player.LoadTrack(cfg.Track); nil != err {
			return err
		}
	}
	if err := player.Open(); nil != err {
		logger.Warn("playing without audio", "err", err)
		player = audio.NewPlayer(true, 0, logger)
	}
	defer player.Close()
	notifiers := engine.Notifiers{player}

	var recorder *metrics.Recorder
	if cfg.MetricsAddr != "" {
		recorder = metrics.NewRecorder()
		notifiers = append(notifiers, recorder)
		srv := metrics.Serve(cfg.MetricsAddr, recorder, logger)
		defer srv.Close()
	}

	clk := clock.New(cfg.StartDelay)
	keys, err := input.OpenKeyboard(clk.Now)
	if nil != err {
		return err
	}
	defer func() {
		if err := keys.Close(); nil != err {
			logger.Error("unable to close keyboard", "err", err)
		}
	}()

	var r render.Renderer = &render.DefaultRenderer{
		Out: os.Stdout,
		SizeFunc: func() (int, int, error) {
			return term.GetSize(fd)
		},
	}
	// Clear the screen and hide the cursor
	if err := r.Init(); nil != err {
		return fmt.Errorf("unable to initialise terminal: %w", err)
	}
	defer func() {
		// Restore the terminal state
		r.Deinit()
	}()

	p := &scene.Program{
		Schedule:      schedule,
		Renderer:      r,
		Theme:         &theme.DefaultTheme{},
		Clock:         clk,
		Scorer:        scorer,
		Notifier:      notifiers,
		Log:           logger,
		ReducedMotion: cfg.ReducedMotion,
	}
	if err := p.Init(); nil != err {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = p.Run(ctx, keys, cfg.FramePeriod)
	if p.Abandoned() && nil != recorder {
		recorder.Abandon()
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func history(w io.Writer, scorer score.Scorer, schedule *game.Schedule, limit int) error {
	runs, err := scorer.Load(schedule)
	if nil != err {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "no runs recorded for this beat map")
		return nil
	}
	if len(runs) > limit {
		runs = runs[:limit]
	}
	fmt.Fprintf(w, "%-36s  %-16s  %6s  %6s  %6s  %8s  %8s  %s\n", "run", "played", "hits", "misses", "assist", "error", "mean", "replay")
	for i := range runs {
		h := &runs[i]
		s, err := scorer.Score(schedule, h)
		if nil != err {
			return fmt.Errorf("unable to replay run %v: %w", h.ID, err)
		}
		assist := ""
		if s.Assisted {
			assist = "yes"
		}
		// Stored counts are what the player saw; flag runs whose replay disagrees.
		replay := "ok"
		if s.Hits != h.Hits || s.Misses != h.Misses {
			replay = fmt.Sprintf("%d/%d", s.Hits, s.Misses)
		}
		fmt.Fprintf(w, "%-36s  %-16s  %6v  %6v  %6s  %8v  %8v  %s\n",
			h.ID, h.PlayedAt.Format("2006-01-02 15:04"), h.Hits, h.Misses, assist,
			s.TotalError.Round(time.Millisecond), s.Mean.Round(time.Millisecond), replay)
	}
	return nil
}
