package turngraph

import "github.com/paulmach/osm"

// forbiddingRestrictionTags are the restriction=* values that outlaw a
// specific from/via/to maneuver.
var forbiddingRestrictionTags = map[string]struct{}{
	"no_left_turn":   {},
	"no_right_turn":  {},
	"no_u_turn":      {},
	"no_straight_on": {},
	"no_entry":       {},
	"no_exit":        {},
}

// mandatoryRestrictionTags are the restriction=* values that make a
// from/via maneuver the only legal one.
var mandatoryRestrictionTags = map[string]struct{}{
	"only_right_turn":  {},
	"only_left_turn":   {},
	"only_straight_on": {},
}

// restrictionMap is the default RestrictionMap, built once from the parsed
// OSM turn-restriction relations and keyed by way IDs since that is how
// OSM expresses "from"/"to" members; edges are resolved to way IDs through
// the graph at query time.
type restrictionMap struct {
	forbidden   map[osm.NodeID]map[osm.WayID]map[osm.WayID]struct{}
	mandatory   map[osm.NodeID]map[osm.WayID]osm.WayID
	wayOfEdge   func(EdgeID) osm.WayID
	edgeFromWay func(via NodeID, way osm.WayID) (EdgeID, bool)
}

func newRestrictionMap(data *OSMDataRaw, wayOfEdge func(EdgeID) osm.WayID, edgeFromWay func(NodeID, osm.WayID) (EdgeID, bool)) *restrictionMap {
	rm := &restrictionMap{
		forbidden:   make(map[osm.NodeID]map[osm.WayID]map[osm.WayID]struct{}),
		mandatory:   make(map[osm.NodeID]map[osm.WayID]osm.WayID),
		wayOfEdge:   wayOfEdge,
		edgeFromWay: edgeFromWay,
	}
	for tag, fromMap := range data.restrictions {
		_, forbids := forbiddingRestrictionTags[tag]
		_, mandates := mandatoryRestrictionTags[tag]
		if !forbids && !mandates {
			continue
		}
		for from, toMap := range fromMap {
			if from.Type != "way" {
				continue
			}
			for to, via := range toMap {
				if to.Type != "way" || via.Type != "node" {
					continue
				}
				viaNode := osm.NodeID(via.ID)
				fromWay := osm.WayID(from.ID)
				toWay := osm.WayID(to.ID)
				if forbids {
					if rm.forbidden[viaNode] == nil {
						rm.forbidden[viaNode] = make(map[osm.WayID]map[osm.WayID]struct{})
					}
					if rm.forbidden[viaNode][fromWay] == nil {
						rm.forbidden[viaNode][fromWay] = make(map[osm.WayID]struct{})
					}
					rm.forbidden[viaNode][fromWay][toWay] = struct{}{}
				} else {
					if rm.mandatory[viaNode] == nil {
						rm.mandatory[viaNode] = make(map[osm.WayID]osm.WayID)
					}
					rm.mandatory[viaNode][fromWay] = toWay
				}
			}
		}
	}
	return rm
}

// IsTurnForbidden reports only explicit restriction=no_* prohibitions.
// Only-turn (mandatory) restrictions are handled separately by
// MandatoryTurn, whose caller is responsible for the fail-open rule when
// the mandated target turns out not to be reachable: this method must
// never fold that dangling-restriction case into an unconditional
// "everything else is forbidden", or a mandatory restriction that names
// an unreachable target would silently block every legal turn.
func (rm *restrictionMap) IsTurnForbidden(via NodeID, from, to EdgeID) bool {
	fromWay := rm.wayOfEdge(from)
	toWay := rm.wayOfEdge(to)
	if toMap, ok := rm.forbidden[via][fromWay]; ok {
		if _, forbidden := toMap[toWay]; forbidden {
			return true
		}
	}
	return false
}

func (rm *restrictionMap) MandatoryTurn(via NodeID, from EdgeID) (EdgeID, bool) {
	fromWay := rm.wayOfEdge(from)
	toWay, ok := rm.mandatory[via][fromWay]
	if !ok {
		return 0, false
	}
	return rm.edgeFromWay(via, toWay)
}
