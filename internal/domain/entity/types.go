package entity

// Level dimensions used when the catalog does not override them.
const (
	DefaultLevelWidth  = 8000
	DefaultLevelHeight = 720
)

// Fallback rects for a level description without actor lines.
var (
	DefaultPlayerRect    = Rect{X: 100, Y: 500, W: 60, H: 100}
	DefaultCompanionRect = Rect{X: 40, Y: 440, W: 50, H: 50}
)

// Obstacle is a static collision rectangle.
type Obstacle struct {
	rect Rect
}

// NewObstacle creates an obstacle. Obstacles never change after creation.
func NewObstacle(r Rect) Obstacle {
	return Obstacle{rect: r}
}

// Rect returns the obstacle bounds.
func (o Obstacle) Rect() Rect { return o.rect }

// Piece is a collectible that feeds the player's piece counter.
type Piece struct {
	Rect Rect
}

// FlashbackObject is a narrative collectible.
type FlashbackObject struct {
	Rect Rect
	Nb   string
	Text string
}

// Door gates the transition to the next level.
type Door struct {
	Rect Rect
}

// Palette selects the enemy sprite set of a level.
type Palette string

const (
	PaletteWS Palette = "ws"
	PaletteCS Palette = "cs"
	PaletteNT Palette = "nt"
)

// ParsePalette returns the palette for a bare tag line.
func ParsePalette(tag string) (Palette, bool) {
	switch p := Palette(tag); p {
	case PaletteWS, PaletteCS, PaletteNT:
		return p, true
	}
	return "", false
}

// Level owns every entity of the current stage.
type Level struct {
	Number  int
	Width   int
	Height  int
	Palette Palette

	Player    *Player
	Companion *Companion

	Obstacles  []Obstacle
	Enemies    []Character
	Pieces     []Piece
	Flashbacks []FlashbackObject
	Boss       *ClassicBoss
	FinalBoss  *FinalBoss
	Door       *Door

	// RequiredFlashbacks is the flashback count present at load.
	RequiredFlashbacks int

	NearDoor bool
	// Over is set once the player has died; the level no longer ticks.
	Over bool
}

// NewLevel creates an empty level.
func NewLevel(number, width, height int) *Level {
	if width <= 0 {
		width = DefaultLevelWidth
	}
	if height <= 0 {
		height = DefaultLevelHeight
	}
	return &Level{Number: number, Width: width, Height: height}
}

// Finalize fills missing actors with defaults and records the flashback
// requirement. It is called once loading is complete.
func (l *Level) Finalize() {
	if l.Player == nil {
		l.Player = NewPlayer(DefaultPlayerRect)
	}
	if l.Companion == nil {
		l.Companion = NewCompanion(DefaultCompanionRect)
	}
	l.RequiredFlashbacks = len(l.Flashbacks)
}

// Chapter is the number shown on the HUD.
func (l *Level) Chapter() int {
	return (l.Number + 1) / 2
}

// DoorUnlocked reports whether the door would let the player through.
func (l *Level) DoorUnlocked() bool {
	if l.Player.Flashbacks < l.RequiredFlashbacks {
		return false
	}
	if l.FinalBoss != nil && l.FinalBoss.HP > 0 {
		return false
	}
	return l.Boss == nil || l.Boss.HP <= 0
}

// Characters returns the player followed by every enemy and boss present.
func (l *Level) Characters() []Character {
	out := make([]Character, 0, len(l.Enemies)+3)
	out = append(out, l.Player)
	out = append(out, l.Enemies...)
	if l.Boss != nil {
		out = append(out, l.Boss)
	}
	if l.FinalBoss != nil {
		out = append(out, l.FinalBoss)
	}
	return out
}
