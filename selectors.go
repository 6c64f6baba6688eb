package turngraph

import "math"

// StraightNameSelector follows the exit that keeps the same road name and
// deviates least from straight ahead, falling back to the straightest
// enterable exit if none share the incoming name. It always excludes
// intersection.Roads[0]: by the u-turn-at-slot-0 invariant that entry is
// never a real forward choice.
type StraightNameSelector struct{}

func (StraightNameSelector) Select(ig *IntersectionGenerator, from EdgeID, intersection Intersection) (ConnectedRoad, bool) {
	if len(intersection.Roads) < 2 {
		return ConnectedRoad{}, false
	}
	fromName := ig.Graph.Data(from).NameID

	bestAny, bestAnyDeviation := -1, math.MaxFloat64
	bestNamed, bestNamedDeviation := -1, math.MaxFloat64

	for i := 1; i < len(intersection.Roads); i++ {
		road := intersection.Roads[i]
		if !road.Entry {
			continue
		}
		deviation := angularDeviation(road.Angle)
		if deviation < bestAnyDeviation {
			bestAnyDeviation = deviation
			bestAny = i
		}
		if ig.Names.SameName(fromName, ig.Graph.Data(road.Edge).NameID) && deviation < bestNamedDeviation {
			bestNamedDeviation = deviation
			bestNamed = i
		}
	}

	if bestNamed >= 0 {
		return intersection.Roads[bestNamed], true
	}
	if bestAny >= 0 {
		return intersection.Roads[bestAny], true
	}
	return ConnectedRoad{}, false
}

// AnyEnterableSelector follows any enterable exit other than the u-turn,
// preferring the one nearest straight ahead. Unlike StraightNameSelector
// it never insists on name continuity, useful for probing connectivity
// rather than following a named road.
type AnyEnterableSelector struct{}

func (AnyEnterableSelector) Select(ig *IntersectionGenerator, from EdgeID, intersection Intersection) (ConnectedRoad, bool) {
	best, bestDeviation := -1, math.MaxFloat64
	for i := 1; i < len(intersection.Roads); i++ {
		road := intersection.Roads[i]
		if !road.Entry {
			continue
		}
		deviation := angularDeviation(road.Angle)
		if deviation < bestDeviation {
			bestDeviation = deviation
			best = i
		}
	}
	if best < 0 {
		return ConnectedRoad{}, false
	}
	return intersection.Roads[best], true
}
