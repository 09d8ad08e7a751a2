// Package ebiten provides an Ebiten-based 2D graphical renderer for the
// orientation.
package ebiten

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "lifeguard/pkg/engine/input"
	"lifeguard/pkg/game/gameplay"
	"lifeguard/pkg/game/renderer"
	"lifeguard/pkg/game/text"
)

// EbitenRenderer is the Ebiten-based graphical renderer. The session is only
// touched from Update, which Ebiten calls on a single goroutine.
type EbitenRenderer struct {
	windowWidth  int
	windowHeight int

	session   *gameplay.Session
	snapshot  gameplay.Snapshot
	debouncer *engineinput.Debouncer
	log       *slog.Logger

	windowOpenedLogged bool
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)

// New creates a new Ebiten renderer
func New(logger *slog.Logger) *EbitenRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		debouncer:    engineinput.NewDebouncer(150 * time.Millisecond),
		log:          logger,
	}
}

// Init sets up the window
func (e *EbitenRenderer) Init() error {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(text.T("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes or the
// player quits.
func (e *EbitenRenderer) Run(s *gameplay.Session) error {
	e.session = s
	e.snapshot = s.Snapshot()
	return ebiten.RunGame(e)
}

// Update gathers this frame's intents and applies them as one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.Info("Main window opened", "width", w, "height", h)
	}

	if intents := e.collectIntents(time.Now()); len(intents) > 0 {
		e.session.Tick(intents)
	}
	e.snapshot = e.session.Snapshot()

	if e.session.Quit() {
		return ebiten.Termination
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
