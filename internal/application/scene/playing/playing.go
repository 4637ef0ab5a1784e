// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/nova/internal/application/replay"
	"github.com/younwookim/nova/internal/application/scene"
	"github.com/younwookim/nova/internal/application/session"
	"github.com/younwookim/nova/internal/application/state"
	"github.com/younwookim/nova/internal/application/system"
	"github.com/younwookim/nova/internal/domain/entity"
	"github.com/younwookim/nova/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorObstacle  = color.RGBA{80, 80, 100, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorFlash     = color.RGBA{255, 255, 255, 200}
	colorCompanion = color.RGBA{120, 180, 255, 200}
	colorPiece     = color.RGBA{255, 215, 0, 255}
	colorMemory    = color.RGBA{200, 140, 255, 255}
	colorDoor      = color.RGBA{150, 100, 60, 255}
	colorDoorOpen  = color.RGBA{230, 190, 90, 255}
	colorBoss      = color.RGBA{160, 40, 40, 255}
	colorSummon    = color.RGBA{255, 120, 60, 255}
	colorFinalBoss = color.RGBA{90, 20, 90, 255}
	colorHitbox    = color.RGBA{255, 255, 0, 96}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
	colorText      = color.RGBA{235, 235, 235, 255}
)

// Backgrounds and enemy tints per level palette
var (
	paletteBG = map[entity.Palette]color.RGBA{
		entity.PaletteWS: {26, 26, 46, 255},
		entity.PaletteCS: {40, 30, 30, 255},
		entity.PaletteNT: {10, 10, 20, 255},
	}
	enemyTints = [...]color.RGBA{
		entity.TypeDefault: {200, 100, 100, 255},
		entity.TypeVariant: {220, 150, 80, 255},
		entity.TypeAlt:     {170, 90, 200, 255},
	}
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// InputSource supplies one tick of input.
type InputSource interface {
	GetInput() system.InputState
}

// Options configures the scene
type Options struct {
	Session *session.Session
	Config  *config.GameConfig
	// Input defaults to the keyboard.
	Input InputSource
	// RecordPath enables input recording when not empty.
	RecordPath string
	Logger     *log.Logger
	// Debug draws hitboxes.
	Debug bool
}

// Playing is the main gameplay scene
type Playing struct {
	session *session.Session
	config  *config.GameConfig
	input   InputSource
	tracker system.IntentTracker
	log     *log.Logger
	debug   bool
	screenW int
	screenH int

	// flash is set while the player's invulnerable flag is raised
	flash bool

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
	savedOnOver    bool
}

// New creates a new Playing scene.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(opts Options) *Playing {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	input := opts.Input
	if input == nil {
		input = system.NewInputSystem()
	}

	p := &Playing{
		session:        opts.Session,
		config:         cfg,
		input:          input,
		log:            logger,
		debug:          opts.Debug,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		recordFilename: opts.RecordPath,
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" {
		s := opts.Session
		p.recorder = replay.NewRecorder(s.Seed(), s.Level().Number)
		logger.Info("recording enabled", "file", opts.RecordPath, "seed", s.Seed())
	}

	return p
}

// Update advances the session by one tick (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	input := p.input.GetInput()

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.session.Update(p.tracker.Intents(input))
	p.flash = p.session.Level().Player.CheckInvulnerability(p.session.Now())

	switch p.session.State() {
	case state.StateGameOver:
		// Auto-save recording on game over
		if !p.savedOnOver {
			p.savedOnOver = true
			p.saveRecording()
		}
	case state.StatePlaying:
		p.savedOnOver = false
	}

	return nil, nil // nil = stay on this scene
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Error("failed to save recording", "file", filename, "err", err)
		return
	}
	p.log.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

// camera returns the horizontal scroll offset: the player is kept centered
// and the view is clamped to the level.
func (p *Playing) camera() int {
	l := p.session.Level()
	camX := l.Player.Rect.X + l.Player.Rect.W/2 - p.screenW/2
	maxCamX := l.Width - p.screenW
	if camX > maxCamX {
		camX = maxCamX
	}
	if camX < 0 {
		camX = 0
	}
	return camX
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	l := p.session.Level()

	bg, ok := paletteBG[l.Palette]
	if !ok {
		bg = paletteBG[entity.PaletteWS]
	}
	screen.Fill(bg)

	if p.session.State() == state.StateLoading {
		p.drawLoading(screen)
		return
	}

	camX := p.camera()

	// Draw world
	for _, o := range l.Obstacles {
		drawRect(screen, o.Rect(), camX, colorObstacle)
	}
	if l.Door != nil {
		c := colorDoor
		if l.DoorUnlocked() {
			c = colorDoorOpen
		}
		drawRect(screen, l.Door.Rect, camX, c)
	}
	for _, pc := range l.Pieces {
		drawRect(screen, pc.Rect, camX, colorPiece)
	}
	for _, fo := range l.Flashbacks {
		drawRect(screen, fo.Rect, camX, colorMemory)
	}
	for _, e := range l.Enemies {
		b := e.Base()
		drawRect(screen, b.Rect, camX, enemyTint(b.Type))
	}
	p.drawBosses(screen, l, camX)
	drawRect(screen, l.Companion.Rect, camX, colorCompanion)
	p.drawPlayer(screen, l, camX)

	// Draw UI (HP bar, counters, banner) - always on top
	p.drawUI(screen, l)

	// Draw state overlays
	switch p.session.State() {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen, l)
	}
}

func (p *Playing) drawBosses(screen *ebiten.Image, l *entity.Level, camX int) {
	hb := p.config.Combat.SummonHitbox
	if b := l.Boss; b != nil {
		drawRect(screen, b.Rect, camX, colorBoss)
		for _, sm := range b.Summons {
			drawRect(screen, sm.Rect, camX, colorSummon)
			if p.showHitboxes() {
				drawRect(screen, sm.HitBox(hb.WidthDivisor, hb.HeightDivisor, hb.Inset), camX, colorHitbox)
			}
		}
	}
	if fb := l.FinalBoss; fb != nil {
		drawRect(screen, fb.Rect, camX, colorFinalBoss)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, l *entity.Level, camX int) {
	pl := l.Player

	// Flash when invulnerable
	c := colorPlayer
	if p.flash && (p.session.Ticks()/10)%2 == 0 {
		c = colorFlash
	}
	drawRect(screen, pl.Rect, camX, c)

	// Draw hitbox debug
	if p.showHitboxes() {
		drawRect(screen, pl.AttackBox(p.config.Combat.AttackScale), camX, colorHitbox)
	}
}

func (p *Playing) showHitboxes() bool {
	return p.debug || ebiten.IsKeyPressed(ebiten.KeyTab)
}

func (p *Playing) drawUI(screen *ebiten.Image, l *entity.Level) {
	pl := l.Player

	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	healthRatio := float64(pl.VisibleHP()) / float64(max(pl.MaxHP, 1))
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio, barH, colorHealthFG)

	status := fmt.Sprintf("Chapter %d  Level %d  HP %d/%d  Pieces %d  Memories %d/%d",
		l.Chapter(), l.Number, pl.VisibleHP(), pl.MaxHP, pl.Pieces, pl.Flashbacks, l.RequiredFlashbacks)
	drawText(screen, status, 10, float64(p.screenH-40), colorText)

	if l.NearDoor {
		drawText(screen, "Press DOWN to go through the door", float64(p.screenW/2-120), 40, colorText)
	}

	if b := p.session.Banner(); b.Visible {
		overlay := color.RGBA{0, 0, 0, 160}
		ebitenutil.DrawRect(screen, 0, 60, float64(p.screenW), 60, overlay)
		drawText(screen, fmt.Sprintf("Memory %s\n%s", b.Nb, b.Text), 20, 70, colorText)
	}

	// Controls
	ebitenutil.DebugPrint(screen, "A/D: Move | W: Jump | Space: Attack | S: Door | ESC: Pause | F5: Save replay")
}

func (p *Playing) drawLoading(screen *ebiten.Image) {
	dots := strings.Repeat(".", p.session.LoadingFrame()%4)
	drawText(screen, "Loading"+dots, float64(p.screenW/2-30), float64(p.screenH/2), colorText)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	drawText(screen, "PAUSED\n\nPress ESC to resume", float64(p.screenW/2-70), float64(p.screenH/2-20), colorText)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image, l *entity.Level) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	msg := fmt.Sprintf("GAME OVER\n\nMemories collected: %d\n\nPress R to restart", l.Player.Flashbacks)
	drawText(screen, msg, float64(p.screenW/2-70), float64(p.screenH/2-30), colorText)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.tracker.Reset()
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

func enemyTint(typ int) color.RGBA {
	if typ < 0 || typ >= len(enemyTints) {
		return enemyTints[entity.TypeDefault]
	}
	return enemyTints[typ]
}

func drawRect(screen *ebiten.Image, r entity.Rect, camX int, c color.Color) {
	ebitenutil.DrawRect(screen, float64(r.X-camX), float64(r.Y), float64(r.W), float64(r.H), c)
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = 16
	text.Draw(screen, s, hudFace, op)
}
