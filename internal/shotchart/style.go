package shotchart

import "github.com/preston-bernstein/nhl-shot-chart-service/internal/domain/games"

// Marker glyphs.
const (
	MarkerGoal = "x"
	MarkerShot = "o"
)

// Marker sizes in points.
const (
	SizeGoal       = 10
	SizeShotOnGoal = 6
	SizeMissed     = 4
	SizeBlocked    = 4
)

// Team colors; the light variants mark attempts that did not reach the net.
const (
	ColorAway      = "red"
	ColorAwayLight = "lightcoral"
	ColorHome      = "blue"
	ColorHomeLight = "lightskyblue"
)

// Annotation text is placed this far from its marker, in rink feet.
const (
	AnnotationOffsetX = -1.2
	AnnotationOffsetY = -1.0
)

// Detail line anchor below the rink.
const (
	DetailX = 0.0
	DetailY = -53.0
)

// Marker is the visual style of one shot.
type Marker struct {
	Type  string
	Color string
	Size  float64
}

// StyleFor returns the marker of a shot event. It is a pure function of the
// event type and the shooting side.
func StyleFor(typeDescKey string, side games.Side) Marker {
	strong, light := ColorHome, ColorHomeLight
	if side == games.SideAway {
		strong, light = ColorAway, ColorAwayLight
	}

	switch typeDescKey {
	case games.PlayGoal:
		return Marker{Type: MarkerGoal, Color: strong, Size: SizeGoal}
	case games.PlayShotOnGoal:
		return Marker{Type: MarkerShot, Color: strong, Size: SizeShotOnGoal}
	case games.PlayMissedShot:
		return Marker{Type: MarkerShot, Color: light, Size: SizeMissed}
	default:
		return Marker{Type: MarkerShot, Color: light, Size: SizeBlocked}
	}
}
