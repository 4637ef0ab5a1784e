package system

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/nova/internal/domain/entity"
	"github.com/younwookim/nova/internal/infrastructure/config"
)

const testLevelText = `cs
MainCharacter,120,480,60,100
Companion,60,430,50,50
Obstacle,0,620,1400,100
Obstacle, 0, 0, 20, 720
Enemy,1600,505,100,115,2
Piece,400,580,30,30
FlashbackObject,1250,420,40,40,1,It started, as always, with a watch.
ClassicBoss,540,120,200,220
FinalBoss,500,400,180,220
Door,3650,470,120,150
`

func createTestStageLoader(files map[string]string) *StageLoader {
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys["levels/"+name] = &fstest.MapFile{Data: []byte(data)}
	}
	cfg := config.Default()
	return NewStageLoader(config.NewFSLoader(fsys, "."), cfg, testRNG(), testLogger())
}

func TestStageLoader_Parse(t *testing.T) {
	s := createTestStageLoader(nil)

	l, issues := s.Parse(strings.NewReader(testLevelText), config.LevelEntry{Number: 3, Width: 3840})

	require.Empty(t, issues)
	assert.Equal(t, 3, l.Number)
	assert.Equal(t, 3840, l.Width)
	assert.Equal(t, 720, l.Height)
	assert.Equal(t, entity.PaletteCS, l.Palette)
	assert.Equal(t, entity.Rect{X: 120, Y: 480, W: 60, H: 100}, l.Player.Rect)
	assert.Equal(t, entity.Rect{X: 60, Y: 430, W: 50, H: 50}, l.Companion.Rect)
	require.Len(t, l.Obstacles, 2)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 20, H: 720}, l.Obstacles[1].Rect())
	require.Len(t, l.Enemies, 1)
	assert.Equal(t, 2, l.Enemies[0].Base().Type)
	assert.Len(t, l.Pieces, 1)
	require.Len(t, l.Flashbacks, 1)
	assert.Equal(t, "1", l.Flashbacks[0].Nb)
	assert.Equal(t, "It started, as always, with a watch.", l.Flashbacks[0].Text)
	assert.Equal(t, 1, l.RequiredFlashbacks)
	require.NotNil(t, l.Boss)
	assert.Equal(t, entity.ClassicBossHP, l.Boss.HP)
	require.NotNil(t, l.FinalBoss)
	require.NotNil(t, l.Door)
}

func TestStageLoader_SkipsMalformedLines(t *testing.T) {
	s := createTestStageLoader(nil)
	text := strings.Join([]string{
		"MainCharacter,120,480,60,100",
		"Obstacle,1,2,x,4",
		"Enemy,1,2,3,4",
		"Bogus,1,2,3,4",
		"zz",
		"",
		"Obstacle,1,2,-3,4",
		"MainCharacter,0,0,10,10",
		"Obstacle,10,20,30,40",
		"Enemy,1,2,3,4,x",
	}, "\n")

	l, issues := s.Parse(strings.NewReader(text), config.LevelEntry{Number: 1})

	lines := make([]int, len(issues))
	for i, issue := range issues {
		lines[i] = issue.Line
	}
	assert.Equal(t, []int{2, 3, 4, 5, 7, 8, 10}, lines)
	require.Len(t, l.Obstacles, 1)
	assert.Equal(t, entity.Rect{X: 10, Y: 20, W: 30, H: 40}, l.Obstacles[0].Rect())
	assert.Equal(t, 120, l.Player.Rect.X, "first MainCharacter wins")
	assert.Empty(t, l.Enemies)
	assert.Contains(t, issues[0].String(), "line 2")
}

func TestStageLoader_DefaultsWithoutActors(t *testing.T) {
	s := createTestStageLoader(nil)
	s.config.Player.HP = 4

	l, issues := s.Parse(strings.NewReader("Obstacle,0,600,100,10\n"), config.LevelEntry{Number: 1})

	require.Empty(t, issues)
	assert.Equal(t, entity.DefaultPlayerRect, l.Player.Rect)
	assert.Equal(t, 4, l.Player.HP)
	assert.Equal(t, entity.DefaultCompanionRect, l.Companion.Rect)
}

func TestStageLoader_AppliesPlayerConfig(t *testing.T) {
	s := createTestStageLoader(nil)
	s.config.Player.JumpImpulse = 20
	s.config.Player.MaxHP = 8

	l, _ := s.Parse(strings.NewReader("MainCharacter,0,0,10,10\n"), config.LevelEntry{})

	assert.Equal(t, 20, l.Player.Movement.JumpImpulse)
	assert.Equal(t, 8, l.Player.MaxHP)
}

func TestStageLoader_Load(t *testing.T) {
	s := createTestStageLoader(map[string]string{
		"level1.txt": "MainCharacter,120,480,60,100\nObstacle,0,620,8000,100\n",
		"boss1.txt":  "ClassicBoss,540,120,200,220\n",
	})

	l := s.Load(2)
	assert.Equal(t, 2, l.Number)
	assert.Equal(t, 1280, l.Width)
	assert.NotNil(t, l.Boss)

	l = s.Load(42)
	assert.Equal(t, 42, l.Number)
	assert.Equal(t, entity.DefaultLevelWidth, l.Width)
	assert.Len(t, l.Obstacles, 1, "unknown numbers use the fallback file")
}

func TestStageLoader_MissingFileGivesEmptyLevel(t *testing.T) {
	s := createTestStageLoader(nil)

	l := s.Load(0)

	require.NotNil(t, l)
	require.NotNil(t, l.Player)
	require.NotNil(t, l.Companion)
	assert.Equal(t, 3840, l.Width)
	assert.Empty(t, l.Obstacles)
	assert.Empty(t, l.Enemies)
	assert.Nil(t, l.Boss)
	assert.Nil(t, l.Door)
}

func TestStageLoader_BundledLevelsParseCleanly(t *testing.T) {
	cfg := config.Default()
	loader := config.NewLoader("../../../cmd/nova/configs")
	s := NewStageLoader(loader, cfg, testRNG(), testLogger())

	for _, entry := range cfg.Levels.Catalog {
		f, err := loader.OpenLevel(entry.File)
		require.NoError(t, err, entry.File)

		l, issues := s.Parse(f, entry)
		f.Close()

		assert.Empty(t, issues, entry.File)
		assert.NotNil(t, l.Door, entry.File)
		assert.NotEmpty(t, l.Obstacles, entry.File)
		for _, o := range l.Obstacles {
			assert.False(t, l.Player.Rect.Intersects(o.Rect()), "%s: player spawns inside an obstacle", entry.File)
		}
	}
}
