// Package object holds the entity records of the simulation and the per-kind
// step functions that advance them. Records never reference each other.
package object

// Kind tags each entity record. The set is closed: renderers and the
// simulation switch on it instead of dispatching through an interface.
type Kind uint8

const (
	KindStar Kind = iota
	KindPlayer
	KindBullet
	KindEnemy
	KindParticle
)

// String returns the kind name for logs and test output.
func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// Rand is the random source the simulation draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Screen is the logical size of the render surface. The simulation reads it
// every tick for clamping, culling and wrapping.
type Screen struct {
	Width  float64
	Height float64
}
