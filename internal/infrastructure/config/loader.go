package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// TuningFile is the configuration file name inside the asset root.
const TuningFile = "tuning.yaml"

// LevelDir is the directory holding level description files.
const LevelDir = "levels"

// Loader loads game configuration and level files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created with.
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadTuning decodes tuning.yaml over Default. A missing file yields Default.
func (l *Loader) LoadTuning() (*GameConfig, error) {
	cfg := Default()

	data, err := fs.ReadFile(l.fsys, TuningFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", TuningFile, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", TuningFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", TuningFile, err)
	}

	return cfg, nil
}

// OpenLevel opens a level description file from the levels directory.
func (l *Loader) OpenLevel(file string) (fs.File, error) {
	f, err := l.fsys.Open(path.Join(LevelDir, file))
	if err != nil {
		return nil, fmt.Errorf("failed to open level %s: %w", file, err)
	}
	return f, nil
}

// LoadAll loads all base configurations
func (l *Loader) LoadAll() (*GameConfig, error) {
	return l.LoadTuning()
}

// Validate rejects values the simulation cannot run with.
func (c *GameConfig) Validate() error {
	if c.Display.TickRate <= 0 {
		return errors.New("display.tickRate must be positive")
	}
	if c.Combat.SummonHitbox.WidthDivisor <= 0 || c.Combat.SummonHitbox.HeightDivisor <= 0 {
		return errors.New("combat.summonHitbox divisors must be positive")
	}
	if c.Combat.Reinforcement.MaxX < c.Combat.Reinforcement.MinX {
		return errors.New("combat.reinforcement.maxX must not be below minX")
	}
	if c.Player.MaxHP <= 0 {
		return errors.New("player.maxHP must be positive")
	}
	return nil
}
