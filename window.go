package phaseswap

import (
	"fmt"
	"runtime"

	"github.com/gekko3d/phaseswap/character"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

// NewWindowState initialises glfw and opens the window. It must be called from
// the main goroutine; the calling OS thread stays locked.
func NewWindowState(windowWidth int, windowHeight int, windowTitle string) (*WindowState, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// No renderer is attached; skip creating a GL context.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}, nil
}

func (s *WindowState) Title() string {
	return s.windowTitle
}

func (s *WindowState) ShouldClose() bool {
	return s.windowGlfw.ShouldClose()
}

// Close destroys the window and shuts glfw down.
func (s *WindowState) Close() {
	s.windowGlfw.Destroy()
	glfw.Terminate()
}

// glfwCursorMode maps cursor options onto glfw's cursor modes. glfw 3.3 cannot
// confine a visible cursor, so any locked grab disables the cursor.
func glfwCursorMode(c character.CursorOptions) int {
	switch {
	case c.GrabMode == character.CursorGrabLocked:
		return glfw.CursorDisabled
	case c.Visible:
		return glfw.CursorNormal
	default:
		return glfw.CursorHidden
	}
}
