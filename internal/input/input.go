package input

import "math"

// NodeID identifies a scene-graph node. The input core stores and compares
// node identifiers but never interprets their structure; the scene graph
// owns their meaning.
type NodeID uint64

// NodeNone indicates no node.
const NodeNone NodeID = 0

// IsNone returns true if the id does not name a node.
func (n NodeID) IsNone() bool {
	return n == NodeNone
}

// TouchID identifies one physical finger for the lifetime of its contact.
// All touch events carrying the same id belong to the same finger.
type TouchID int64

// Well-known source device names reported by the platform layer.
const (
	DeviceKeyboard = "keyboard"
	DeviceMouse    = "mouse"
	DeviceTouchpad = "touchpad"
	DeviceTablet   = "tablet"
)

// Position represents a point in screen coordinates.
type Position struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance to another position.
func (p Position) Distance(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Hypot(dx, dy)
}

// Delta returns the vector from other to p.
func (p Position) Delta(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Midpoint returns the point halfway between p and other.
func (p Position) Midpoint(other Position) Position {
	return Position{X: (p.X + other.X) / 2, Y: (p.Y + other.Y) / 2}
}

// Length returns the magnitude of p treated as a vector.
func (p Position) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Direction represents an 8-way movement direction.
type Direction uint8

const (
	// DirNone indicates no direction.
	DirNone Direction = iota
	// DirUp indicates upward movement.
	DirUp
	// DirDown indicates downward movement.
	DirDown
	// DirLeft indicates leftward movement.
	DirLeft
	// DirRight indicates rightward movement.
	DirRight
	// DirUpLeft indicates diagonal up-left movement.
	DirUpLeft
	// DirUpRight indicates diagonal up-right movement.
	DirUpRight
	// DirDownLeft indicates diagonal down-left movement.
	DirDownLeft
	// DirDownRight indicates diagonal down-right movement.
	DirDownRight
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUpLeft:
		return "up-left"
	case DirUpRight:
		return "up-right"
	case DirDownLeft:
		return "down-left"
	case DirDownRight:
		return "down-right"
	default:
		return "none"
	}
}

// IsDiagonal returns true for the four diagonal directions.
func (d Direction) IsDiagonal() bool {
	switch d {
	case DirUpLeft, DirUpRight, DirDownLeft, DirDownRight:
		return true
	}
	return false
}

// IsHorizontal returns true for left or right.
func (d Direction) IsHorizontal() bool {
	return d == DirLeft || d == DirRight
}

// IsVertical returns true for up or down.
func (d Direction) IsVertical() bool {
	return d == DirUp || d == DirDown
}

// DirectionOf classifies a movement vector into an 8-way direction.
// A cardinal direction is used when one axis dominates the other by more
// than 2:1; otherwise the diagonal combining both signs is used. Screen
// coordinates grow downward, so positive dy is down.
func DirectionOf(dx, dy float64) Direction {
	if dx == 0 && dy == 0 {
		return DirNone
	}

	adx := math.Abs(dx)
	ady := math.Abs(dy)

	switch {
	case adx > 2*ady:
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	case ady > 2*adx:
		if dy > 0 {
			return DirDown
		}
		return DirUp
	}

	// Both axes significant: diagonal.
	if dy > 0 {
		if dx > 0 {
			return DirDownRight
		}
		return DirDownLeft
	}
	if dx > 0 {
		return DirUpRight
	}
	return DirUpLeft
}
