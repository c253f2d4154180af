// Command darkmaze runs the interactive maze demo: the maze itself is
// invisible, and the player steers a circle toward the mouse cursor seeing
// only what a 360-degree ray fan reveals. Reaching the goal lights up the
// maze, the traveled path, and a New Game button.
package main

import (
	"flag"
	"image/color"
	"log"

	"chosenoffset.com/darkmaze/game"
	"chosenoffset.com/darkmaze/hud"
	"chosenoffset.com/darkmaze/raycast"
	"chosenoffset.com/darkmaze/render"
	ebitenrender "chosenoffset.com/darkmaze/render/ebiten"
)

var (
	// width is the maze width in cells.
	width = flag.Int("width", 40, "maze width in cells")
	// height is the maze height in cells.
	height = flag.Int("height", 20, "maze height in cells")
	// cellSize is the cell edge length in pixels.
	cellSize = flag.Float64("cell-size", 30, "cell size in pixels")
	// rays is the number of rays in the visibility fan.
	rays = flag.Int("rays", 120, "number of visibility rays")
	// seed fixes the maze RNG; 0 seeds from the clock.
	seed = flag.Int64("seed", 0, "maze RNG seed (0 = random)")
	// showWalls draws the maze from the start instead of only after winning.
	showWalls = flag.Bool("show-walls", false, "always draw the maze walls")
)

var (
	backgroundColor = color.Black
	playerColor     = color.White
	goalColor       = color.RGBA{0, 255, 0, 255}
	rayColor        = color.RGBA{150, 150, 150, 255}
	wallColor       = color.White
	traceColor      = color.RGBA{255, 0, 0, 255}
	collisionColor  = color.RGBA{255, 0, 0, 255}
)

// scene drives one session through the engine's update/draw loop.
type scene struct {
	session   *game.Session
	hud       *hud.HUD
	renderer  render.Renderer
	inputMgr  render.InputManager
	engine    render.Engine
	showWalls bool

	screenWidth  int
	screenHeight int
}

// Update advances the session toward the cursor and handles restart clicks.
func (s *scene) Update() error {
	cx, cy := s.inputMgr.GetCursorPosition()

	if s.session.Won() && s.inputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) &&
		s.hud.HitsNewGameButton(cx, cy) {
		if err := s.session.Reset(); err != nil {
			return err
		}
		log.Printf("New round %s", s.session.ID())
		return nil
	}

	s.session.Advance(raycast.Vec2{X: float64(cx), Y: float64(cy)})
	return nil
}

// Draw renders the ray fan, the player and goal, and (after a win or with
// -show-walls) the maze and the traveled trace.
func (s *scene) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	pos := s.session.Position()
	radius := float32(s.session.Radius())

	for _, hit := range s.session.Rays() {
		if !hit.OK {
			continue
		}
		s.renderer.StrokeLine(screen,
			float32(pos.X), float32(pos.Y),
			float32(hit.Point.X), float32(hit.Point.Y), 1, rayColor)
	}

	cx, cy := s.inputMgr.GetCursorPosition()
	if hit := s.session.Collision(raycast.Vec2{X: float64(cx), Y: float64(cy)}); hit.OK {
		s.renderer.FillCircle(screen, float32(hit.Point.X), float32(hit.Point.Y), 2, collisionColor)
	}

	goal := s.session.Goal()
	s.renderer.FillCircle(screen, float32(goal.X), float32(goal.Y), radius, goalColor)
	s.renderer.FillCircle(screen, float32(pos.X), float32(pos.Y), radius, playerColor)

	if s.session.Won() || s.showWalls {
		for _, wall := range s.session.Walls() {
			s.renderer.StrokeLine(screen,
				float32(wall.A.X), float32(wall.A.Y),
				float32(wall.B.X), float32(wall.B.Y), 2, wallColor)
		}
	}
	if s.session.Won() {
		trace := s.session.Trace()
		for i := 1; i < len(trace); i++ {
			s.renderer.StrokeLine(screen,
				float32(trace[i-1].X), float32(trace[i-1].Y),
				float32(trace[i].X), float32(trace[i].Y), 2, traceColor)
		}
	}

	s.hud.Draw(screen, s.engine.ActualFPS(), s.session.Won())
}

// Layout returns the fixed logical screen size.
func (s *scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.screenWidth, s.screenHeight
}

func main() {
	flag.Parse()

	cfg := game.Config{
		Width:    *width,
		Height:   *height,
		CellSize: *cellSize,
		Rays:     *rays,
		Seed:     *seed,
	}
	screenWidth, screenHeight := cfg.ScreenSize()

	session, err := game.NewSession(cfg)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	log.Printf("Starting %dx%d maze with %d rays, round %s", cfg.Width, cfg.Height, cfg.Rays, session.ID())

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	s := &scene{
		session:      session,
		hud:          hud.New(hud.DefaultConfig(), renderer, screenWidth, screenHeight),
		renderer:     renderer,
		inputMgr:     inputMgr,
		engine:       engine,
		showWalls:    *showWalls,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}

	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle("Dark Maze")

	if err := engine.RunGame(s); err != nil {
		log.Fatal(err)
	}
}
