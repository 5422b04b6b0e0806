package phaseswap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gekko3d/phaseswap/character"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Log      LogConfig      `yaml:"log"`
	Player   PlayerConfig   `yaml:"player"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type LogConfig struct {
	Prefix string `yaml:"prefix"`
	Debug  bool   `yaml:"debug"`
}

type PlayerConfig struct {
	Speed         float32 `yaml:"speed"`
	RotationSpeed float32 `yaml:"rotation_speed"`
	SpawnHeight   float32 `yaml:"spawn_height"`
}

// CameraConfig uses degrees for angles; OrbitCamera converts them.
type CameraConfig struct {
	Radius             float32 `yaml:"radius"`
	PitchDeg           float32 `yaml:"pitch_deg"`
	Sensitivity        float32 `yaml:"sensitivity"`
	GamepadSensitivity float32 `yaml:"gamepad_sensitivity"`
	MinPitchDeg        float32 `yaml:"min_pitch_deg"`
	MaxPitchDeg        float32 `yaml:"max_pitch_deg"`
	MinRadius          float32 `yaml:"min_radius"`
	MaxRadius          float32 `yaml:"max_radius"`
	ZoomSpeed          float32 `yaml:"zoom_speed"`
	StartLocked        bool    `yaml:"start_locked"`
}

type ControlsConfig struct {
	// LockToggle is "held" or "press".
	LockToggle string `yaml:"lock_toggle"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "PhaseSwap",
		},
		Log: LogConfig{
			Prefix: "phaseswap",
		},
		Player: PlayerConfig{
			Speed:         5.0,
			RotationSpeed: 10.0,
			SpawnHeight:   0.5,
		},
		Camera: CameraConfig{
			Radius:             8.0,
			PitchDeg:           20,
			Sensitivity:        0.002,
			GamepadSensitivity: 2.0,
			MinPitchDeg:        -80,
			MaxPitchDeg:        80,
			MinRadius:          5.0,
			MaxRadius:          20.0,
			ZoomSpeed:          1.0,
			StartLocked:        true,
		},
		Controls: ControlsConfig{
			LockToggle: LockToggleHeld.String(),
		},
	}
}

// ParseConfig reads YAML over the defaults, so absent keys keep their default.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := ParseConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player.speed must be positive, got %v", ErrInvalidConfig, c.Player.Speed)
	case c.Player.RotationSpeed <= 0:
		return fmt.Errorf("%w: player.rotation_speed must be positive, got %v", ErrInvalidConfig, c.Player.RotationSpeed)
	case c.Camera.Radius <= 0:
		return fmt.Errorf("%w: camera.radius must be positive, got %v", ErrInvalidConfig, c.Camera.Radius)
	case c.Camera.MinPitchDeg > c.Camera.MaxPitchDeg:
		return fmt.Errorf("%w: camera.min_pitch_deg %v is above max_pitch_deg %v", ErrInvalidConfig, c.Camera.MinPitchDeg, c.Camera.MaxPitchDeg)
	case c.Camera.MinPitchDeg <= -90 || c.Camera.MaxPitchDeg >= 90:
		return fmt.Errorf("%w: camera pitch limits must stay inside (-90, 90)", ErrInvalidConfig)
	case c.Camera.MinRadius > c.Camera.MaxRadius:
		return fmt.Errorf("%w: camera.min_radius %v is above max_radius %v", ErrInvalidConfig, c.Camera.MinRadius, c.Camera.MaxRadius)
	}
	if _, err := ParseLockToggleMode(c.Controls.LockToggle); err != nil {
		return err
	}
	return nil
}

func (c PlayerConfig) Player() character.Player {
	return character.Player{
		Speed:         c.Speed,
		RotationSpeed: c.RotationSpeed,
	}
}

func (c CameraConfig) OrbitCamera() character.OrbitCamera {
	minPitch := mgl32.DegToRad(c.MinPitchDeg)
	maxPitch := mgl32.DegToRad(c.MaxPitchDeg)
	return character.OrbitCamera{
		Radius:             c.Radius,
		Pitch:              mgl32.Clamp(mgl32.DegToRad(c.PitchDeg), minPitch, maxPitch),
		Sensitivity:        c.Sensitivity,
		GamepadSensitivity: c.GamepadSensitivity,
		MinPitch:           minPitch,
		MaxPitch:           maxPitch,
		MinRadius:          c.MinRadius,
		MaxRadius:          c.MaxRadius,
		ZoomSpeed:          c.ZoomSpeed,
		IsLocked:           c.StartLocked,
	}
}

// Controls returns the controls resource. The config must have been validated.
func (c ControlsConfig) Controls() Controls {
	mode, _ := ParseLockToggleMode(c.LockToggle)
	return Controls{LockToggle: mode}
}
