// Package directions renders a domain.Route as human-readable,
// newline-terminated turn-by-turn instructions.
package directions

import (
	"math"
	"route-directions-service/internal/domain"
	"strings"
)

// Turn phrases produced by TurnPhrase.
const (
	Continue        = "Continue"
	TurnSlightRight = "Turn slight right"
	TurnRight       = "Turn right"
	TurnSharpRight  = "Turn sharp right"
	TurnSlightLeft  = "Turn slight left"
	TurnLeft        = "Turn left"
	TurnSharpLeft   = "Turn sharp left"
	UTurn           = "U-turn"
)

// LineFormatter describes how to traverse a single Feature.
// ComputeLine returns one newline-terminated instruction for f, given the
// heading the traveler faces on arrival at f's start.
type LineFormatter interface {
	ComputeLine(f domain.Feature, originHeading float64) string
}

// ComputeDirections walks the Features of r in order and concatenates one
// line per Feature. initialHeading is the traveler's heading before the
// first Feature; each later Feature is turned onto from the previous
// Feature's end heading.
func ComputeDirections(lf LineFormatter, r domain.Route, initialHeading float64) string {
	var b strings.Builder
	heading := initialHeading
	for f := range r.AllFeatures() {
		b.WriteString(lf.ComputeLine(f, heading))
		heading = f.EndHeading()
	}
	return b.String()
}

// TurnPhrase classifies the raw heading change a = newHeading - originHeading.
//
//	-10 < a < 10      Continue
//	 10 <= a < 60     Turn slight right
//	 60 <= a < 120    Turn right
//	120 <= a < 179    Turn sharp right
//	179 <= a          U-turn
//	-60 <= a < -10    Turn slight left
//	-120 <= a < -60   Turn left
//	-179 < a < -120   Turn sharp left
//	a <= -179         U-turn
//
// a is not wrapped first, so a change from 350 to 10 reads as a U-turn.
// a == -10 matches no row and yields "".
func TurnPhrase(originHeading, newHeading float64) string {
	return classify(newHeading - originHeading)
}

// NormalizedTurnPhrase is like TurnPhrase but first wraps the heading
// change into (-180, 180], so 350 -> 10 reads as a slight right.
func NormalizedTurnPhrase(originHeading, newHeading float64) string {
	return classify(normalize(newHeading - originHeading))
}

func classify(a float64) string {
	switch {
	case a > -10 && a < 10:
		return Continue
	case a >= 10 && a < 60:
		return TurnSlightRight
	case a >= 60 && a < 120:
		return TurnRight
	case a >= 120 && a < 179:
		return TurnSharpRight
	case a >= 179:
		return UTurn
	case a <= -179:
		return UTurn
	case a >= -60 && a < -10:
		return TurnSlightLeft
	case a >= -120 && a < -60:
		return TurnLeft
	case a > -179 && a < -120:
		return TurnSharpLeft
	}
	return ""
}

func normalize(a float64) float64 {
	a = math.Mod(a, 360)
	if a <= -180 {
		a += 360
	} else if a > 180 {
		a -= 360
	}
	return a
}

// turn picks the raw or normalized classification.
func turn(normalized bool, originHeading, newHeading float64) string {
	if normalized {
		return NormalizedTurnPhrase(originHeading, newHeading)
	}
	return TurnPhrase(originHeading, newHeading)
}
