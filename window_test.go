package phaseswap

import (
	"testing"

	"github.com/gekko3d/phaseswap/character"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestGlfwCursorMode(t *testing.T) {
	tests := []struct {
		cursor character.CursorOptions
		want   int
	}{
		{character.CursorOptions{Visible: false, GrabMode: character.CursorGrabLocked}, glfw.CursorDisabled},
		{character.CursorOptions{Visible: true, GrabMode: character.CursorGrabNone}, glfw.CursorNormal},
		{character.CursorOptions{Visible: false, GrabMode: character.CursorGrabNone}, glfw.CursorHidden},
		{character.CursorOptions{Visible: true, GrabMode: character.CursorGrabLocked}, glfw.CursorDisabled},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, glfwCursorMode(tt.cursor), "%+v", tt.cursor)
	}
}

func TestPlatformWindowModule_ReusesWindow(t *testing.T) {
	ws := &WindowState{WindowWidth: 640, WindowHeight: 480, windowTitle: "test"}
	app := NewApp().UseModules(PlatformWindowModule{Window: ws})

	got, ok := Resource[WindowState](app)
	assert.True(t, ok)
	assert.Same(t, ws, got)

	cursor, ok := Resource[character.CursorOptions](app)
	assert.True(t, ok)
	assert.True(t, cursor.Visible)
}

func TestNewPlatformWindow_Defaults(t *testing.T) {
	m := NewPlatformWindow(0, 0, "")
	assert.Equal(t, 1280, m.Width)
	assert.Equal(t, 720, m.Height)
	assert.Equal(t, "PhaseSwap", m.Title)
}
