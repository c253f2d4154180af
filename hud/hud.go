// Package hud draws the overlay for the maze demo: an FPS counter, the win
// banner, and the New Game button shown once the goal is reached.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/darkmaze/render"
)

// winText is the banner shown when the player reaches the goal.
const winText = "You reached the Goal!"

// buttonText is the label of the restart button.
const buttonText = "New Game"

// buttonPadding is the clickable margin around the button label, in pixels.
const buttonPadding = 8

// Config defines what to display in the HUD.
type Config struct {
	ShowFPS bool `json:"show_fps"` // Show FPS counter top-left
}

// DefaultConfig returns a sensible default HUD configuration.
func DefaultConfig() *Config {
	return &Config{ShowFPS: true}
}

// HUD manages the heads-up display.
type HUD struct {
	config       *Config
	renderer     render.Renderer
	screenWidth  int
	screenHeight int
}

// New creates a new HUD with the given configuration.
func New(config *Config, renderer render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     renderer,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// Draw renders the HUD on top of the scene. The win banner and button are
// only drawn after the goal is reached.
func (h *HUD) Draw(screen render.Image, fps float64, won bool) {
	if h.config.ShowFPS {
		h.renderer.DrawText(screen, fmt.Sprintf("%d FPS", int(fps)), 0, 0, color.White)
	}

	if !won {
		return
	}

	tw, th := h.renderer.MeasureText(winText)
	h.renderer.DrawText(screen, winText, (h.screenWidth-tw)/2, (h.screenHeight-th)/2, color.White)

	bx, by, bw, bh := h.NewGameButton()
	h.drawRect(screen, bx, by, bw, bh)
	h.renderer.DrawText(screen, buttonText, bx+buttonPadding, by+buttonPadding, color.White)
}

// drawRect strokes the outline of a rectangle.
func (h *HUD) drawRect(screen render.Image, x, y, w, hh int) {
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+hh)
	h.renderer.StrokeLine(screen, x0, y0, x1, y0, 1, color.White)
	h.renderer.StrokeLine(screen, x1, y0, x1, y1, 1, color.White)
	h.renderer.StrokeLine(screen, x1, y1, x0, y1, 1, color.White)
	h.renderer.StrokeLine(screen, x0, y1, x0, y0, 1, color.White)
}

// NewGameButton returns the button rectangle for hit-testing clicks. The
// button sits a little below the screen center, under the win banner.
func (h *HUD) NewGameButton() (x, y, w, height int) {
	tw, th := h.renderer.MeasureText(buttonText)
	w = tw + 2*buttonPadding
	height = th + 2*buttonPadding
	x = (h.screenWidth - w) / 2
	y = h.screenHeight/2 + 40 - height/2
	return x, y, w, height
}

// HitsNewGameButton reports whether the given cursor position lands on the
// New Game button.
func (h *HUD) HitsNewGameButton(cx, cy int) bool {
	x, y, w, hh := h.NewGameButton()
	return cx >= x && cx < x+w && cy >= y && cy < y+hh
}
