package phaseswap

type LightType uint32

const (
	LightTypePoint       LightType = 0
	LightTypeDirectional LightType = 1
	LightTypeSpot        LightType = 2
)

// LightComponent describes a light for whatever renderer is attached.
type LightComponent struct {
	Type           LightType
	Color          [3]float32 // RGB
	Intensity      float32
	Range          float32 // point/spot
	ShadowsEnabled bool
}
