package phaseswap

import (
	"github.com/gekko3d/phaseswap/character"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// PlatformWindowModule ensures a single shared glfw window (WindowState) is
// available as a resource, applies the CursorOptions resource to it every
// tick and exits the app once the window is closed.
// If a WindowState resource already exists it is reused.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string

	// Window, when set, is used instead of opening a new one.
	Window *WindowState
}

// NewPlatformWindow creates a module that provides a shared WindowState resource.
// If Width/Height are zero, sensible defaults are used.
func NewPlatformWindow(width, height int, title string) *PlatformWindowModule {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "PhaseSwap"
	}
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	switch {
	case app.hasResource(&WindowState{}):
	case m.Window != nil:
		app.addResources(m.Window)
	default:
		ws, err := NewWindowState(m.Width, m.Height, m.Title)
		if err != nil {
			app.Logger().Errorf("%v", err)
			panic(err)
		}
		app.addResources(ws)
	}

	if !app.hasResource(&character.CursorOptions{}) {
		app.addResources(&character.CursorOptions{Visible: true})
	}

	app.UseSystem(
		System(cursorSystem).
			InStage(PostUpdate).
			RunAlways(),
	)
	app.UseSystem(
		System(windowCloseSystem).
			InStage(Finale).
			RunAlways(),
	)
}

// cursorSystem re-applies the cursor options every tick, changed or not.
func cursorSystem(s *WindowState, cursor *character.CursorOptions) {
	s.windowGlfw.SetInputMode(glfw.CursorMode, glfwCursorMode(*cursor))
}

func windowCloseSystem(s *WindowState, cmd *Commands) {
	if s.ShouldClose() {
		cmd.Logger().Infof("window %q closed", s.windowTitle)
		cmd.Exit()
	}
}
