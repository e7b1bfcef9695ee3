package reach

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// Draw renders the frame after the PreRender phase completes.
	// Nil leaves the screen untouched.
	Draw func(screen *ebiten.Image)

	// Tick, when set, runs once per tick after the manager's LateUpdate.
	Tick func(dt float64)
}

// Run creates a window and drives the manager's phase sequence from the
// Ebitengine game loop: each tick runs FixedUpdate, Update, then LateUpdate;
// each draw runs PreRender before RunConfig.Draw. Blocks until the window
// closes.
//
// Ebitengine exposes a single tick callback, so FixedUpdate runs exactly once
// per Update here. Hosts that need a real physics sub-step cadence should
// implement ebiten.Game themselves and call the phase methods directly.
func Run(m *Manager, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&managerGame{m: m, cfg: cfg})
}

type managerGame struct {
	m   *Manager
	cfg RunConfig
}

func (g *managerGame) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.m.FixedUpdate(dt)
	g.m.Update(dt)
	g.m.LateUpdate(dt)
	if g.cfg.Tick != nil {
		g.cfg.Tick(dt)
	}
	return nil
}

func (g *managerGame) Draw(screen *ebiten.Image) {
	g.m.PreRender(1.0 / float64(ebiten.TPS()))
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
}

func (g *managerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
