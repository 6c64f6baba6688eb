package turngraph

// joiningLookaheadMeters bounds how far down a road its downstream
// intersection may sit for a joining-road correction to apply at all; any
// further and whatever happens there is too remote to be digitization
// noise at this junction.
const joiningLookaheadMeters = 30.0

// joiningAdjusterBuffer keeps a shift from ever closing the gap to a
// neighbouring exit entirely, so two distinct exits can never be nudged
// into reporting the exact same angle.
const joiningAdjusterBuffer = 5.0

// adjustForJoiningRoads corrects for a segregated-carriageway split that is
// about to happen one hop further down a road: if the intersection just
// past `r` is itself a u-turn-mergeable split, `r`'s reported angle here is
// shifted partway toward straightening that split out, the way a driver
// perceives the road continuing rather than forking immediately.
func (ig *IntersectionGenerator) adjustForJoiningRoads(from EdgeID, intersection Intersection) Intersection {
	roads := intersection.Roads
	n := len(roads)
	for i := 1; i < n; i++ {
		road := &roads[i]
		if ig.Graph.Data(road.Edge).Distance > joiningLookaheadMeters {
			continue
		}
		if len(ig.Graph.EdgesFrom(road.Target)) <= 1 {
			continue
		}
		downstream := ig.ConnectedRoads(road.Target, road.Edge)
		if len(downstream) <= 1 {
			continue
		}
		last := len(downstream) - 1

		if canMergeRoad(ig, road.Target, downstream[0], downstream[1]) {
			shiftJoiningRoad(road, roads[(i+1)%n], angleBetween(downstream[0].Angle, downstream[1].Angle), 1)
		}
		if canMergeRoad(ig, road.Target, downstream[0], downstream[last]) {
			shiftJoiningRoad(road, roads[(i-1+n)%n], angleBetween(downstream[0].Angle, downstream[last].Angle), -1)
		}
	}
	intersection.Roads = roads
	return intersection
}

// shiftJoiningRoad nudges road's angle/bearing by half of downstreamGap in
// the given sign, clamped so it never closes more than half the gap to
// neighbor (minus a small buffer).
func shiftJoiningRoad(road *ConnectedRoad, neighbor ConnectedRoad, downstreamGap float64, sign float64) {
	offset := 0.5 * downstreamGap
	maxOffset := 0.5*angleBetween(road.Angle, neighbor.Angle) - joiningAdjusterBuffer
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	road.Angle = normalizeAngle(road.Angle + sign*offset)
	road.Bearing = normalizeAngle(road.Bearing + sign*offset)
	road.Turn = classifyTurnAngle(road.Angle)
}
