package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/fonts"
	"github.com/automoto/metroidvania/scenes"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(level string) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}
	scene, err := scenes.NewSandboxScene(level)
	if err != nil {
		return nil, err
	}
	return &Game{scene: scene}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Window.Width, config.Window.Height
}

// serveMetrics exposes Prometheus metrics on a debug-only router.
func serveMetrics(addr string) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("Metrics available at http://%s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("Warning: metrics server stopped: %v", err)
	}
}

func main() {
	level := flag.String("level", "sandbox", "embedded level to load")
	tuning := flag.String("tuning", config.TuningFile, "behavior tuning YAML; watched for changes")
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address, e.g. localhost:9090")
	flag.Parse()

	b, err := config.LoadTuning(*tuning)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	config.SetBehaviors(b)

	if watcher, err := config.WatchTuning(*tuning); err != nil {
		log.Printf("Warning: tuning hot reload disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr)
	}

	game, err := NewGame(*level)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetTPS(config.Window.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
