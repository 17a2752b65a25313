package main

import (
	"context"
	"log"
	"os"

	"signsnake/internal/app"
	"signsnake/internal/config"
	"signsnake/internal/interrupt"
	"signsnake/internal/metrics"
	"signsnake/internal/store"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := interrupt.Notify(context.Background())
	defer stop()

	scores, err := store.Open(cfg.StorePath())
	if err != nil {
		// A bad file reads as an empty store; the best score restarts at 0.
		log.Printf("store: %v", err)
	}

	rec := metrics.NewRecorder()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := rec.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.Printf("metrics: %v", err)
			}
		}()
	}

	g, err := app.New(app.Options{
		Config:  cfg,
		Best:    scores.BestScore(),
		Scores:  scores,
		Metrics: rec,
		Log:     log.New(os.Stderr, "play ", log.LstdFlags),
		Done:    ctx.Done(),
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("signsnake: difficulty=%s store=%s", cfg.Difficulty, scores.Path())
	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
}
