package directions

import (
	"fmt"
	"math"
	"route-directions-service/internal/domain"
)

const (
	MinutesPerMile = 20
	kmPerMile      = 1.609344
)

// WalkingFormatter gives directions in whole minutes of walking, e.g.
//
//	Turn left onto Oak Ave and walk for 16 minutes.
type WalkingFormatter struct {
	Normalize bool
}

func (w WalkingFormatter) ComputeLine(f domain.Feature, originHeading float64) string {
	return fmt.Sprintf("%s onto %s and walk for %d minutes.\n",
		turn(w.Normalize, originHeading, f.StartHeading()), f.Name(), WalkingMinutes(f.Length()))
}

// WalkingMinutes converts a distance in kilometers to rounded walking minutes.
func WalkingMinutes(km float64) int {
	return int(math.Round(km / kmPerMile * MinutesPerMile))
}
