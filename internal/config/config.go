package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the presets in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Preset fixes grid resolution, tick rate and surface size.
type Preset struct {
	GridSize     int
	TickInterval time.Duration
	SurfaceSize  int
}

var presets = map[Difficulty]Preset{
	Easy:   {GridSize: 40, TickInterval: 120 * time.Millisecond, SurfaceSize: 600},
	Medium: {GridSize: 30, TickInterval: 80 * time.Millisecond, SurfaceSize: 600},
	Hard:   {GridSize: 20, TickInterval: 50 * time.Millisecond, SurfaceSize: 600},
}

// CellSize is the pixel side of one grid cell.
func (p Preset) CellSize() float64 {
	return float64(p.SurfaceSize) / float64(p.GridSize)
}

// PresetFor returns the preset of d, falling back to medium.
func PresetFor(d Difficulty) Preset {
	if p, ok := presets[d]; ok {
		return p
	}
	return presets[Medium]
}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presets[d]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
	return d, nil
}

const (
	DefaultShareURL = "https://signsnake.vercel.app"
	// StoreFile is the name of the key-value file inside DataDir.
	StoreFile = "signsnake.json"
)

type Config struct {
	Difficulty  Difficulty
	Muted       bool
	DataDir     string
	MetricsAddr string
	ShareURL    string
	Seed        int64
}

// StorePath is the full path of the persisted key-value file.
func (c Config) StorePath() string {
	return filepath.Join(c.DataDir, StoreFile)
}

func (c Config) Preset() Preset {
	return PresetFor(c.Difficulty)
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	dir := "."
	if d, err := os.UserConfigDir(); err == nil {
		dir = filepath.Join(d, "signsnake")
	}
	return Config{
		Difficulty: Medium,
		DataDir:    dir,
		ShareURL:   DefaultShareURL,
	}
}

// Load builds the configuration from defaults, an optional .env file, the
// environment and finally command line flags, each overriding the last.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	fset := flag.NewFlagSet("signsnake", flag.ContinueOnError)
	difficulty := fset.String("difficulty", string(cfg.Difficulty), "easy, medium or hard")
	fset.BoolVar(&cfg.Muted, "muted", cfg.Muted, "start with sound muted")
	fset.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory holding the best score file")
	fset.StringVar(&cfg.MetricsAddr, "metrics", cfg.MetricsAddr, "address for the prometheus /metrics endpoint, empty to disable")
	fset.StringVar(&cfg.ShareURL, "share-url", cfg.ShareURL, "game URL embedded in shared posts")
	fset.Int64Var(&cfg.Seed, "seed", cfg.Seed, "item placement seed, 0 for random")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	d, err := ParseDifficulty(*difficulty)
	if err != nil {
		return Config{}, err
	}
	cfg.Difficulty = d
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("SNAKE_DIFFICULTY"); ok {
		d, err := ParseDifficulty(v)
		if err != nil {
			return fmt.Errorf("SNAKE_DIFFICULTY: %w", err)
		}
		c.Difficulty = d
	}
	if v, ok := os.LookupEnv("SNAKE_MUTED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SNAKE_MUTED: %w", err)
		}
		c.Muted = b
	}
	if v := os.Getenv("SNAKE_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v, ok := os.LookupEnv("SNAKE_METRICS_ADDR"); ok {
		c.MetricsAddr = v
	}
	if v := os.Getenv("SNAKE_SHARE_URL"); v != "" {
		c.ShareURL = v
	}
	if v := os.Getenv("SNAKE_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SNAKE_SEED: %w", err)
		}
		c.Seed = n
	}
	return nil
}
