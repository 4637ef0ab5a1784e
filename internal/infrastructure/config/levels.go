package config

import "slices"

// LevelEntry maps a level number to its description file.
type LevelEntry struct {
	Number int    `yaml:"number"`
	File   string `yaml:"file"`
	Width  int    `yaml:"width"`
}

// LevelsConfig is the level catalog.
type LevelsConfig struct {
	Height int `yaml:"height"`
	// Fallback is the entry used for numbers missing from the catalog.
	Fallback int `yaml:"fallback"`
	// LoadingAfter lists levels whose exit shows the loading screen.
	LoadingAfter []int        `yaml:"loadingAfter"`
	Catalog      []LevelEntry `yaml:"catalog"`
}

// DefaultLevels returns the stock catalog.
func DefaultLevels() LevelsConfig {
	return LevelsConfig{
		Height:       720,
		Fallback:     1,
		LoadingAfter: []int{2, 4},
		Catalog: []LevelEntry{
			{Number: 0, File: "level0.txt", Width: 3840},
			{Number: 1, File: "level1.txt"},
			{Number: 2, File: "boss1.txt", Width: 1280},
			{Number: 3, File: "level2.txt"},
			{Number: 4, File: "boss2.txt", Width: 1280},
			{Number: 5, File: "level3.txt"},
			{Number: 6, File: "boss3.txt", Width: 1280},
		},
	}
}

// Lookup returns the entry for number. Unknown numbers resolve to the
// fallback file while keeping the requested number.
func (c LevelsConfig) Lookup(number int) LevelEntry {
	for _, e := range c.Catalog {
		if e.Number == number {
			return e
		}
	}
	for _, e := range c.Catalog {
		if e.Number == c.Fallback {
			return LevelEntry{Number: number, File: e.File, Width: e.Width}
		}
	}
	return LevelEntry{Number: number}
}

// ShowsLoading reports whether leaving number shows the loading screen.
func (c LevelsConfig) ShowsLoading(number int) bool {
	return slices.Contains(c.LoadingAfter, number)
}

// Files returns every distinct description file in catalog order.
func (c LevelsConfig) Files() []string {
	var files []string
	for _, e := range c.Catalog {
		if e.File != "" && !slices.Contains(files, e.File) {
			files = append(files, e.File)
		}
	}
	return files
}
