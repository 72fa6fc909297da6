package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/conorfennell/learntrack/internal/catalog"
	"github.com/conorfennell/learntrack/internal/config"
	"github.com/conorfennell/learntrack/internal/domain"
	"github.com/conorfennell/learntrack/internal/progress"
	"github.com/conorfennell/learntrack/internal/session"
	"github.com/conorfennell/learntrack/internal/storage"
	"github.com/conorfennell/learntrack/internal/web"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	// 1. Load configuration and set up logging
	cfg, err := config.Load(config.NewFlagSet("learntrack"), args)
	if err != nil {
		return err
	}
	slog.SetDefault(cfg.Logger())

	// 2. Load the day's items
	res, err := catalog.Load(cfg.ItemsDir)
	if err != nil {
		return err
	}

	state := session.NewState(res.Items)
	state.Profile = cfg.StartProfile()
	state.Schedule = cfg.StartSchedule()

	if cfg.Report {
		printReport(stdout, state)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the session's completion log
	db, err := storage.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	// 4. Serve the UI until interrupted
	ctrl := session.NewController(state, session.WithRecorder(db))
	srv, err := web.NewServer(ctrl, db, slog.Default())
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Listening", "addr", cfg.Addr, "items", len(state.Items), "sample_items", res.FromSeed)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	rating := ctrl.Snapshot().Performance()
	slog.Info("Session ended", "stars", rating.Stars, "percent", rating.Percent())
	return nil
}

// printReport writes the status of every item and the day's rating.
func printReport(w io.Writer, state session.State) {
	name := state.Profile.Name
	if name == "" {
		name = "Today"
	}
	fmt.Fprintf(w, "%s's learning items:\n", name)
	for _, item := range state.Items {
		fmt.Fprintf(w, "- [%-9s] %s (%s, %s)\n",
			progress.DeriveStatus(item), item.Title, item.Category.Label(), slotText(state.Schedule, item.TimeSlot))
	}

	rating := state.Performance()
	fmt.Fprintf(w, "\nPerformance: %d/5 stars, %s (%d%% complete)\n", rating.Stars, rating.Message, rating.Percent())
	fmt.Fprintln(w, progress.EncouragementFor(rating.Stars))
}

func slotText(schedule domain.Schedule, slot domain.TimeSlot) string {
	if label := schedule[slot]; label != "" {
		return slot.Label() + " " + label
	}
	return slot.Label()
}
