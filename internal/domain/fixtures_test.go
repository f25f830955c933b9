package domain

import (
	"math"
	"route-directions-service/internal/geo"
)

var (
	ptA = geo.MustPoint(32000000, 35000000)
	ptB = geo.MustPoint(32001000, 35000000)
	ptC = geo.MustPoint(32002000, 35000000)
	ptD = geo.MustPoint(32002000, 35001000)
	ptE = geo.MustPoint(32003000, 35001000)
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
