package directions

import (
	"fmt"
	"route-directions-service/internal/domain"
)

// DrivingFormatter gives directions in kilometers, e.g.
//
//	Turn left onto Oak Ave and go 1.3 kilometers.
type DrivingFormatter struct {
	Normalize bool
}

func (d DrivingFormatter) ComputeLine(f domain.Feature, originHeading float64) string {
	return fmt.Sprintf("%s onto %s and go %.1f kilometers.\n",
		turn(d.Normalize, originHeading, f.StartHeading()), f.Name(), f.Length())
}
