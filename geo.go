package turngraph

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	earthR = 20037508.34
)

func epsg3857To4326(lat, lng float64) (float64, float64) {
	newLat := lat * 180 / earthR
	newLong := math.Atan(math.Exp(lng*math.Pi/earthR))*360/math.Pi - 90
	return newLat, newLong
}

func epsg4326To3857(lon, lat float64) (float64, float64) {
	x := lon * earthR / 180
	y := math.Log(math.Tan((90+lat)*math.Pi/360)) / (math.Pi / 180)
	y = y * earthR / 180
	return x, y
}

func pointToEuclidean(pt orb.Point) orb.Point {
	euclideanX, euclideanY := epsg4326To3857(pt.Lon(), pt.Lat())
	return orb.Point{euclideanX, euclideanY}
}

func lineToEuclidean(line orb.LineString) orb.LineString {
	newLine := make(orb.LineString, len(line))
	for i, pt := range line {
		newLine[i] = pointToEuclidean(pt)
	}
	return newLine
}

// bearing returns the compass bearing (degrees, [0, 360)) from p to q.
func bearing(p, q GeoPoint) float64 {
	lat1 := degreesToRadians(p.Lat)
	lat2 := degreesToRadians(q.Lat)
	dLon := degreesToRadians(q.Lon - p.Lon)
	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	theta := math.Atan2(y, x)
	deg := radiansTodegrees(theta)
	return math.Mod(deg+360, 360)
}

// normalizeAngle folds a degree value into [0, 360).
func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// computeTurnAngle returns the angle a traveler turns through when arriving
// on a road with incoming bearing bearingIn and leaving on outgoing bearing
// bearingOut. 0 means a full u-turn, 180 means continuing straight.
func computeTurnAngle(bearingIn, bearingOut float64) float64 {
	return normalizeAngle(180 - (bearingOut - bearingIn))
}

// angularDeviation returns how far a turn angle deviates from going
// straight (180 degrees), always non-negative.
func angularDeviation(angle float64) float64 {
	deviation := math.Abs(angle - 180)
	return deviation
}

// angleBetween returns the absolute angular distance between two bearings,
// taking the shorter way around the compass.
func angleBetween(a, b float64) float64 {
	diff := math.Mod(math.Abs(a-b), 360)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// midpointBearing returns the bearing bisecting the shorter arc from a to
// b. When the two bearings are exactly opposite (180 degrees apart) the
// clockwise bisector from a is returned, matching the tie-break a road
// merge needs to stay deterministic.
func midpointBearing(a, b float64) float64 {
	diff := normalizeAngle(b - a)
	if diff == 180 {
		return normalizeAngle(a + 90)
	}
	if diff > 180 {
		return normalizeAngle(a + diff/2 - 180)
	}
	return normalizeAngle(a + diff/2)
}

// angleBetweenLines returs angle between two lines
//
// Note: panics if number of points in any line is less than 2
func angleBetweenLines(l1 orb.LineString, l2 orb.LineString) float64 {
	angle1 := math.Atan2(l1[len(l1)-1].Y()-l1[0].Y(), l1[len(l1)-1].X()-l1[0].X())
	angle2 := math.Atan2(l2[len(l2)-1].Y()-l2[0].Y(), l2[len(l2)-1].X()-l2[0].X())
	angle := angle2 - angle1
	if angle < -1*math.Pi {
		angle += 2 * math.Pi
	}
	if angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}
