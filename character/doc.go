// Package character holds the third-person controller math: camera-relative
// locomotion for a single player and the orbit camera that follows it.
//
// Nothing here touches the engine. Each stage receives the state it reads and
// writes as explicit parameters and is expected to run once per tick, with
// Locomote before Orbit.
package character
