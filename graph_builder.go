package turngraph

import "github.com/paulmach/osm"

// newGraphFromOSMData turns the classified way/node data into a RoutingGraph.
// Ways are split into segments at every "crossing" node (an intersection,
// dead end or traffic signal) the way prepareNodes marks; the intermediate
// vertices of each segment are kept only as geometry. Each segment
// contributes a forward edge, and either a genuine reverse edge (two-way
// roads) or a non-enterable reversed placeholder edge (oneway roads) so
// every node still gets a u-turn slot.
func newGraphFromOSMData(data *OSMDataRaw, verbose bool) (*RoutingGraph, error) {
	graph := newInMemoryGraph()
	names := newNameTable()

	for nodeID, node := range data.nodes {
		lon, lat := node.node.Lon, node.node.Lat
		graph.coords[nodeID] = GeoPoint{Lon: lon, Lat: lat}
	}

	for _, way := range data.waysMedium {
		nameID := names.intern(way.name)
		classification := RoadClassification{
			RoadClass:  way.linkType,
			LinkClass:  way.linkConnectionType,
			Roundabout: way.junction == "circular" || way.junction == "roundabout",
		}
		for _, agentType := range way.allowedAgentTypes {
			classification.TravelMode = agentType
			break
		}

		segments := splitAtCrossings(way.Nodes, data.nodes)
		for _, segment := range segments {
			if len(segment) < 2 {
				continue
			}
			source := segment[0]
			target := segment[len(segment)-1]
			geom := make([]GeoPoint, 0, len(segment))
			for _, nodeID := range segment {
				geom = append(geom, graph.coords[nodeID])
			}
			distance := getSphericalLength(geom) * 1000.0

			forwardData := EdgeData{
				NameID:         nameID,
				Classification: classification,
				Oneway:         way.Oneway,
				Distance:       distance,
				WayID:          way.ID,
			}
			backwardData := forwardData
			backwardData.Reversed = true

			if way.Oneway {
				forwardSource, forwardTarget := source, target
				if way.IsReversed {
					forwardSource, forwardTarget = target, source
					reverseGeom(geom)
				}
				graph.addEdge(forwardSource, forwardTarget, geom, forwardData)
				backwardData.OnewayBackside = true
				graph.addEdge(forwardTarget, forwardSource, reversedCopy(geom), backwardData)
				continue
			}

			graph.addEdge(source, target, geom, forwardData)
			graph.addEdge(target, source, reversedCopy(geom), backwardData)
		}
	}

	rg := &RoutingGraph{
		InMemoryGraph: graph,
		Names:         names,
		Barriers:      newBarrierNodes(data),
	}
	rg.Restrictions = newRestrictionMap(data, graph.wayOfEdge, graph.edgeFromWay)
	return rg, nil
}

// splitAtCrossings breaks a way's node list into segments wherever an
// interior node is a crossing (intersection, dead end, or signal). The
// first and last nodes always start/end a segment regardless of their own
// crossing status.
func splitAtCrossings(wayNodes []osm.NodeID, nodes map[osm.NodeID]*Node) [][]osm.NodeID {
	if len(wayNodes) < 2 {
		return nil
	}
	segments := [][]osm.NodeID{}
	current := []osm.NodeID{wayNodes[0]}
	for i := 1; i < len(wayNodes); i++ {
		current = append(current, wayNodes[i])
		isLast := i == len(wayNodes)-1
		if isLast {
			segments = append(segments, current)
			break
		}
		if node, ok := nodes[wayNodes[i]]; ok && node.isCrossing {
			segments = append(segments, current)
			current = []osm.NodeID{wayNodes[i]}
		}
	}
	return segments
}

func reversedCopy(geom []GeoPoint) []GeoPoint {
	out := make([]GeoPoint, len(geom))
	for i, pt := range geom {
		out[len(geom)-1-i] = pt
	}
	return out
}

func reverseGeom(geom []GeoPoint) {
	for i, j := 0, len(geom)-1; i < j; i, j = i+1, j-1 {
		geom[i], geom[j] = geom[j], geom[i]
	}
}
