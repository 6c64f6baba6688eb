package turngraph

import "math"

// mergeAngleThreshold is the maximum angular distance between two exits
// for them to be considered the same physical carriageway split in two.
const mergeAngleThreshold = 60.0

// haveSameDirectionStride and haveSameDirectionSampleCount sample up to
// 100m of each candidate at a 5m stride.
const (
	haveSameDirectionStride      = 5.0
	haveSameDirectionSampleCount = 20
	haveSameDirectionMinSamples  = 8
)

// laneCountFloor is the minimum lane count the lateral-deviation tolerance
// assumes. Turn-lane counts are not tracked by this package (see
// CoordinateExtractor's anchor-distance comment), so every pair is judged
// against this floor rather than an actual per-way lane count.
const laneCountFloor = 2.0

// haveCompatibleRoadData checks the road-class/travel-mode/reversed-flag
// compatibility heuristic: two carriageways of the same physical road
// carry the same class and mode, neither is a roundabout segment, and
// neither can itself be a reversed
// placeholder (a placeholder never merges with anything, it exists only
// for its u-turn slot).
func haveCompatibleRoadData(graph Graph, a, b EdgeID) bool {
	da, db := graph.Data(a), graph.Data(b)
	if da.OnewayBackside || db.OnewayBackside {
		return false
	}
	if da.Classification.RoadClass != db.Classification.RoadClass {
		return false
	}
	if da.Classification.TravelMode != db.Classification.TravelMode {
		return false
	}
	if da.Reversed != db.Reversed {
		return false
	}
	if da.Classification.Roundabout || db.Classification.Roundabout {
		return false
	}
	return true
}

// haveSameName reports whether both exits announce the same road name, or
// are both unnamed (which OSRM also treats as a mergeable pair, e.g. an
// unnamed slip road splitting from an unnamed side street).
func haveSameName(names NameTable, graph Graph, a, b EdgeID) bool {
	da, db := graph.Data(a), graph.Data(b)
	if da.NameID == 0 && db.NameID == 0 {
		return true
	}
	return names.SameName(da.NameID, db.NameID)
}

// isNarrowTriangle would detect the case where two roads diverge sharply
// and reconverge within a short distance (a narrow traffic island), which
// OSRM also treats as mergeable. It is implemented but not dispatched by
// canMergeRoad: the upstream heuristic is guarded by a compile-time flag
// in the C++ that was never enabled, and there is no way to tell from the
// distilled spec alone what threshold made it safe to turn on.
func isNarrowTriangle(ce *CoordinateExtractor, via NodeID, a, b ConnectedRoad) bool {
	samplesA := ce.SampleCoordinates(via, a.Edge, 5, 4)
	samplesB := ce.SampleCoordinates(via, b.Edge, 5, 4)
	if len(samplesA) == 0 || len(samplesB) == 0 {
		return false
	}
	last := len(samplesA)
	if len(samplesB) < last {
		last = len(samplesB)
	}
	closing := greatCircleDistance(samplesA[last-1], samplesB[last-1])
	opening := greatCircleDistance(samplesA[0], samplesB[0])
	return closing < opening*0.5
}

// connectAgain would detect two roads that both lead to the same next
// intersection a short distance away (a divided road rejoining), another
// heuristic OSRM keeps behind a disabled flag for the same reason as
// isNarrowTriangle above.
func connectAgain(graph Graph, a, b ConnectedRoad) bool {
	return a.Target == b.Target
}

// haveSameDirection is the sampled-parallelism heuristic: it walks up to
// 100m down both roads at a 5m stride and requires the mean distance
// between same-index samples of the two polylines to stay within
// 4*sqrt(laneCountFloor) meters, so the comparison covers the whole sampled
// stretch, not just the intersection itself. This is the only heuristic
// canMergeRoad actually dispatches by default.
func haveSameDirection(ce *CoordinateExtractor, via NodeID, a, b EdgeID) bool {
	samplesA := ce.SampleCoordinates(via, a, haveSameDirectionStride, haveSameDirectionSampleCount)
	samplesB := ce.SampleCoordinates(via, b, haveSameDirectionStride, haveSameDirectionSampleCount)
	if len(samplesA) < haveSameDirectionMinSamples || len(samplesB) < haveSameDirectionMinSamples {
		return false
	}
	count := len(samplesA)
	if len(samplesB) < count {
		count = len(samplesB)
	}
	deviationSum := 0.0
	for i := 0; i < count; i++ {
		deviationSum += greatCircleDistance(samplesA[i], samplesB[i]) * 1000.0
	}
	meanDeviation := deviationSum / float64(count)
	tolerance := 4.0 * math.Sqrt(laneCountFloor)
	return meanDeviation <= tolerance
}

// canMergeRoad is the entry point the segregated-road merger calls to
// decide whether two adjacent exits at an intersection are really the same
// physical carriageway. isNarrowTriangle and connectAgain are deliberately
// not part of this dispatch, see their doc comments.
func canMergeRoad(ig *IntersectionGenerator, via NodeID, a, b ConnectedRoad) bool {
	if !haveCompatibleRoadData(ig.Graph, a.Edge, b.Edge) {
		return false
	}
	if !haveSameName(ig.Names, ig.Graph, a.Edge, b.Edge) {
		return false
	}
	// Refusing to hide a legitimate fork: if both exits are independently
	// enterable, they are two real choices, not a digitization artefact.
	if a.Entry && b.Entry {
		return false
	}
	if angleBetween(a.Angle, b.Angle) > mergeAngleThreshold {
		return false
	}
	// An exit whose target is the intersection node itself is the
	// synthetic u-turn slot ConnectedRoads appends when no real reverse
	// edge exists; it is never part of a segregated pair.
	if a.Target == via || b.Target == via {
		return false
	}
	return haveSameDirection(ig.Coordinates, via, a.Edge, b.Edge)
}
