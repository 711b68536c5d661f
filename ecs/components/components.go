package components

// Transform stores world-space position, size, and display rotation. The
// axis-aligned bounding box is [X, X+W] x [Y, Y+H]; Angle affects rendering
// only and never collision geometry.
type Transform struct {
	X, Y  float64
	W, H  float64
	Angle float64
}

// Center returns the AABB center point.
func (t *Transform) Center() (float64, float64) {
	return t.X + t.W/2, t.Y + t.H/2
}

// Contains reports whether the world point lies inside the AABB, edges
// inclusive.
func (t *Transform) Contains(x, y float64) bool {
	if t == nil {
		return false
	}
	return x >= t.X && x <= t.X+t.W && y >= t.Y && y <= t.Y+t.H
}

// Overlaps reports AABB overlap using closed intervals, so boxes touching
// along exactly one edge count as overlapping.
func (t *Transform) Overlaps(o *Transform) bool {
	if t == nil || o == nil {
		return false
	}
	return !(t.X+t.W < o.X || t.X > o.X+o.W || t.Y+t.H < o.Y || t.Y > o.Y+o.H)
}

// Sprite references a cached image by source path. An empty key, or a key
// whose load failed, renders as a placeholder rectangle sized by the
// entity's Transform. Scale multiplies the drawn size uniformly; the image
// and transform sizes stay independent.
type Sprite struct {
	ImageKey string
	Scale    float64
}

// Velocity stores linear velocity in world units per second. Consumed only
// by the physics system.
type Velocity struct {
	VX, VY float64
}

// RoleKind tags an entity's gameplay role explicitly at creation time, so
// systems never infer intent from geometry.
type RoleKind int

const (
	RoleNone RoleKind = iota
	RolePlayer
	RoleHazard
	RoleCollectible
)

// Role is the role tag component.
type Role struct {
	Kind RoleKind
}

// Behavior attaches a script that drives per-frame motion. BaseX/BaseY
// anchor the script's output so relocations re-base the motion; Disabled is
// latched after the first script error.
type Behavior struct {
	ScriptPath string
	BaseX      float64
	BaseY      float64
	Age        float64
	Disabled   bool
}
