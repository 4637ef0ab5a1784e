package system

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/younwookim/nova/internal/domain/entity"
	"github.com/younwookim/nova/internal/infrastructure/config"
)

// ParseIssue describes a level description line that was skipped.
type ParseIssue struct {
	Line   int
	Text   string
	Reason string
}

func (i ParseIssue) String() string {
	return fmt.Sprintf("line %d: %s (%q)", i.Line, i.Reason, i.Text)
}

// StageLoader builds levels from their text descriptions
type StageLoader struct {
	loader *config.Loader
	config *config.GameConfig
	rng    *rand.Rand
	log    *log.Logger
}

// NewStageLoader creates a stage loader reading files through loader.
// Bosses created by the loader draw randomness from rng.
func NewStageLoader(loader *config.Loader, cfg *config.GameConfig, rng *rand.Rand, logger *log.Logger) *StageLoader {
	if logger == nil {
		logger = log.Default()
	}
	return &StageLoader{loader: loader, config: cfg, rng: rng, log: logger}
}

// Load builds the level with the given number. It never fails: a missing
// file yields an empty level with default actors.
func (s *StageLoader) Load(number int) *entity.Level {
	entry := s.config.Levels.Lookup(number)

	f, err := s.loader.OpenLevel(entry.File)
	if err != nil {
		s.log.Warn("level file unavailable, loading empty level", "level", number, "file", entry.File, "err", err)
		l := s.newLevel(entry)
		s.finalize(l)
		return l
	}
	defer f.Close()

	l, issues := s.Parse(f, entry)
	for _, issue := range issues {
		s.log.Warn("skipping level line", "file", entry.File, "line", issue.Line, "reason", issue.Reason, "text", issue.Text)
	}
	s.log.Info("level loaded",
		"level", number,
		"file", entry.File,
		"obstacles", len(l.Obstacles),
		"enemies", len(l.Enemies),
		"flashbacks", len(l.Flashbacks),
	)
	return l
}

// Parse reads a level description. Malformed lines are skipped and
// returned as issues.
func (s *StageLoader) Parse(r io.Reader, entry config.LevelEntry) (*entity.Level, []ParseIssue) {
	l := s.newLevel(entry)
	var issues []ParseIssue

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if reason := s.parseLine(l, line); reason != "" {
			issues = append(issues, ParseIssue{Line: n, Text: line, Reason: reason})
		}
	}
	if err := scanner.Err(); err != nil {
		issues = append(issues, ParseIssue{Line: n + 1, Reason: "read error: " + err.Error()})
	}

	s.finalize(l)
	return l, issues
}

func (s *StageLoader) newLevel(entry config.LevelEntry) *entity.Level {
	return entity.NewLevel(entry.Number, entry.Width, s.config.Levels.Height)
}

// parseLine applies one record to l and returns a reason when it is skipped.
func (s *StageLoader) parseLine(l *entity.Level, line string) string {
	fields := strings.SplitN(line, ",", 7)
	tag := strings.TrimSpace(fields[0])

	if len(fields) == 1 {
		if p, ok := entity.ParsePalette(tag); ok {
			l.Palette = p
			return ""
		}
		return "unknown record"
	}

	want, ok := recordFields[tag]
	if !ok {
		return "unknown record"
	}
	if len(fields) < want {
		return fmt.Sprintf("%s needs %d fields, got %d", tag, want, len(fields))
	}

	r, err := parseRect(fields[1:5])
	if err != nil {
		return err.Error()
	}

	switch tag {
	case "MainCharacter":
		if l.Player != nil {
			return "duplicate MainCharacter"
		}
		l.Player = s.newPlayer(r)
	case "Companion":
		if l.Companion != nil {
			return "duplicate Companion"
		}
		l.Companion = entity.NewCompanion(r)
	case "Obstacle":
		l.Obstacles = append(l.Obstacles, entity.NewObstacle(r))
	case "Enemy":
		typ, err := strconv.Atoi(strings.TrimSpace(fields[5]))
		if err != nil {
			return "invalid enemy type"
		}
		l.Enemies = append(l.Enemies, entity.NewShortScope(r, typ))
	case "Piece":
		l.Pieces = append(l.Pieces, entity.Piece{Rect: r})
	case "Door":
		if l.Door != nil {
			return "duplicate Door"
		}
		l.Door = &entity.Door{Rect: r}
	case "FlashbackObject":
		l.Flashbacks = append(l.Flashbacks, entity.FlashbackObject{
			Rect: r,
			Nb:   strings.TrimSpace(fields[5]),
			Text: strings.TrimSpace(fields[6]),
		})
	case "ClassicBoss":
		if l.Boss != nil {
			return "duplicate ClassicBoss"
		}
		l.Boss = entity.NewClassicBoss(r, s.rng)
	case "FinalBoss":
		if l.FinalBoss != nil {
			return "duplicate FinalBoss"
		}
		l.FinalBoss = entity.NewFinalBoss(r, entity.TypeDefault)
	}
	return ""
}

// recordFields is the minimum field count per record tag.
var recordFields = map[string]int{
	"MainCharacter":   5,
	"Companion":       5,
	"Obstacle":        5,
	"Enemy":           6,
	"Piece":           5,
	"Door":            5,
	"FlashbackObject": 7,
	"ClassicBoss":     5,
	"FinalBoss":       5,
}

// finalize gives a level without a MainCharacter a configured default player.
func (s *StageLoader) finalize(l *entity.Level) {
	if l.Player == nil {
		l.Player = s.newPlayer(entity.DefaultPlayerRect)
	}
	l.Finalize()
}

func (s *StageLoader) newPlayer(r entity.Rect) *entity.Player {
	pc := s.config.Player
	p := entity.NewPlayer(r)
	p.HP = pc.HP
	p.MaxHP = pc.MaxHP
	p.Movement = entity.Movement{
		SpeedFactor:  pc.SpeedFactor,
		Gravity:      pc.Gravity,
		MaxFallSpeed: pc.MaxFallSpeed,
		JumpImpulse:  pc.JumpImpulse,
	}
	return p
}

func parseRect(fields []string) (entity.Rect, error) {
	var v [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return entity.Rect{}, fmt.Errorf("invalid number %q", f)
		}
		v[i] = n
	}
	if v[2] < 0 || v[3] < 0 {
		return entity.Rect{}, fmt.Errorf("negative size %dx%d", v[2], v[3])
	}
	return entity.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
}
