package metrics

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts gameplay events into its own registry.
type Recorder struct {
	reg *prometheus.Registry

	ticks     prometheus.Counter
	collected prometheus.Counter
	games     *prometheus.CounterVec
	lastScore prometheus.Gauge
	bestScore prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "signsnake_ticks_total",
			Help: "Simulation ticks run.",
		}),
		collected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "signsnake_items_collected_total",
			Help: "Items collected by the snake.",
		}),
		games: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "signsnake_games_total",
			Help: "Finished games by outcome.",
		}, []string{"outcome"}),
		lastScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "signsnake_last_score",
			Help: "Final score of the last finished game.",
		}),
		bestScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "signsnake_best_score",
			Help: "Best score seen so far.",
		}),
	}
	r.reg.MustRegister(r.ticks, r.collected, r.games, r.lastScore, r.bestScore)
	return r
}

func (r *Recorder) Tick()          { r.ticks.Inc() }
func (r *Recorder) Collected()     { r.collected.Inc() }
func (r *Recorder) Best(score int) { r.bestScore.Set(float64(score)) }

// GameOver records a finished game.
func (r *Recorder) GameOver(outcome string, score int) {
	r.games.WithLabelValues(outcome).Inc()
	r.lastScore.Set(float64(score))
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done or the listener fails.
func (r *Recorder) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	log.Printf("metrics listening on %s", addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
