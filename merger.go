package turngraph

import "sort"

// mergeSegregatedRoads collapses adjacent exits that are really the same
// physical carriageway split by a median or a slip lane into one
// ConnectedRoad, so a driver isn't told to pick between two "different"
// roads that are actually the same street. Intersections with fewer than
// three roads are returned unchanged.
//
// Phase 1 looks for a u-turn merge on either side of slot 0 first, since
// folding slot 0 shifts the angular reference every other entry was
// measured against and must happen before anything else is compared.
// Phase 2 then sweeps the remaining entries looking for ordinary adjacent
// merges, never touching slot 0 again.
func (ig *IntersectionGenerator) mergeSegregatedRoads(from EdgeID, intersection Intersection) Intersection {
	roads := intersection.Roads
	if len(roads) < 3 {
		return intersection
	}

	uturnMerged := false
	last := len(roads) - 1
	switch {
	case last > 0 && canMergeRoad(ig, intersection.Via, roads[0], roads[last]):
		correction := (360.0 - roads[last].Angle) / 2.0
		merged := mergeConnectedRoad(roads[0], roads[last])
		merged.Angle = 0
		for i := 1; i < last; i++ {
			roads[i].Angle = normalizeAngle(roads[i].Angle + correction)
		}
		roads[0] = merged
		roads = roads[:last]
		uturnMerged = true
	case len(roads) > 1 && canMergeRoad(ig, intersection.Via, roads[0], roads[1]):
		correction := roads[1].Angle / 2.0
		merged := mergeConnectedRoad(roads[0], roads[1])
		merged.Angle = 0
		for i := 2; i < len(roads); i++ {
			roads[i].Angle = normalizeAngle(roads[i].Angle - correction)
		}
		roads[0] = merged
		roads = append(roads[:1], roads[2:]...)
		uturnMerged = true
	}

	if uturnMerged {
		for _, road := range roads {
			if ig.Graph.Data(road.Edge).Classification.Roundabout {
				roads[0].Entry = false
				break
			}
		}
	}

	// Sweep the remaining entries, excluding slot 0: it was either already
	// folded above or must stay exactly as computed.
	dead := make([]bool, len(roads))
	lastLive := 1
	for i := 2; i < len(roads); i++ {
		if canMergeRoad(ig, intersection.Via, roads[i], roads[lastLive]) {
			roads[lastLive] = mergeConnectedRoad(roads[lastLive], roads[i])
			dead[i] = true
			continue
		}
		lastLive = i
	}

	uturnEdge := roads[0].Edge
	result := make([]ConnectedRoad, 0, len(roads))
	for i, road := range roads {
		if !dead[i] {
			result = append(result, road)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Angle < result[j].Angle })
	for i, road := range result {
		if road.Edge == uturnEdge && i != 0 {
			result = append(result[:i], result[i+1:]...)
			result = append([]ConnectedRoad{road}, result...)
			break
		}
	}

	intersection.Roads = result
	return intersection
}

// mergeConnectedRoad folds b into a: the surviving identity (edge id and
// entry_allowed) is whichever of the two is already enterable, defaulting
// to a if neither or both are; angle and bearing each become the midpoint
// on the shorter arc between the two.
func mergeConnectedRoad(a, b ConnectedRoad) ConnectedRoad {
	merged := a
	if !a.Entry && b.Entry {
		merged = b
	}
	merged.Angle = midpointBearing(a.Angle, b.Angle)
	merged.Bearing = midpointBearing(a.Bearing, b.Bearing)
	merged.Turn = classifyTurnAngle(merged.Angle)
	merged.Instream = true
	return merged
}
