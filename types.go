package turngraph

import "github.com/paulmach/osm"

// NodeID identifies a graph node. It is the OSM node ID directly since this
// builder never introduces synthetic nodes of its own.
type NodeID = osm.NodeID

// NameID indexes into the name table; zero means "no name" (used for
// unnamed segments and roundabout links).
type NameID int64

// TurnType classifies the maneuver represented by a ConnectedRoad relative
// to the road the traveler is arriving from.
type TurnType uint16

const (
	TURN_INVALID = TurnType(iota)
	TURN_UTURN
	TURN_STRAIGHT
	TURN_SLIGHT_LEFT
	TURN_LEFT
	TURN_SHARP_LEFT
	TURN_SLIGHT_RIGHT
	TURN_RIGHT
	TURN_SHARP_RIGHT
)

func (t TurnType) String() string {
	return [...]string{
		"invalid", "uturn", "straight",
		"slight_left", "left", "sharp_left",
		"slight_right", "right", "sharp_right",
	}[t]
}

// classifyTurnAngle buckets a turn angle in [0, 360) into a TurnType. This
// mirrors the coarse sectoring guidance systems use before lane data and
// instruction text refine it further; lane assignment itself is out of scope.
func classifyTurnAngle(angle float64) TurnType {
	switch {
	case angle < 10 || angle > 350:
		return TURN_UTURN
	case angle < 40:
		return TURN_SHARP_RIGHT
	case angle < 80:
		return TURN_RIGHT
	case angle < 105:
		return TURN_SLIGHT_RIGHT
	case angle < 165:
		return TURN_STRAIGHT
	case angle < 195:
		return TURN_STRAIGHT
	case angle < 255:
		return TURN_SLIGHT_LEFT
	case angle < 280:
		return TURN_LEFT
	case angle < 320:
		return TURN_SHARP_LEFT
	default:
		return TURN_SHARP_LEFT
	}
}

// LaneDataID is a placeholder handle for the turn-lane data left unassigned
// by this builder; turn-lane assignment is not implemented here.
type LaneDataID int64

const LaneDataInvalid = LaneDataID(-1)

// RoadClassification captures the routing-relevant attributes of a road
// segment that mergeability and turn classification reason about.
type RoadClassification struct {
	RoadClass      LinkType
	TravelMode     AgentType
	Roundabout     bool
	LinkClass      LinkConnectionType
	LowPriorityFor map[AgentType]struct{}
}

// EdgeData is the routing-graph-facing payload attached to a directed edge:
// everything the intersection generator needs to know about a road segment
// without re-deriving it from OSM tags every time.
type EdgeData struct {
	NameID         NameID
	Classification RoadClassification
	// Reversed marks this directed edge as the geometric backside of its
	// way (its Source/Target are swapped relative to the way's digitized
	// direction): the reverse edge of a two-way pair, or a oneway's
	// OnewayBackside placeholder.
	Reversed bool
	// OnewayBackside marks a reversed placeholder edge synthesized for a
	// oneway way: it exists purely so the intersection at either endpoint
	// still has a u-turn slot and continuous angle bookkeeping, but it is
	// never enterable.
	OnewayBackside bool
	// Oneway reports whether the underlying way was digitized as oneway,
	// independent of which direction this particular edge represents.
	Oneway   bool
	Distance float64
	WayID    osm.WayID
}

// TurnOperation describes one exit out of an intersection, before or after
// merging/adjustment passes run over it.
type TurnOperation struct {
	Edge     EdgeID
	Angle    float64 // relative to the incoming road, degrees in [0, 360)
	Bearing  float64 // compass bearing of the exit itself, degrees in [0, 360)
	Turn     TurnType
	Lane     LaneDataID
	Entry    bool // whether this exit is enterable given restrictions/access
	Instream bool // whether the corresponding way segment is a mergeable duplicate carriageway
}

// ConnectedRoad pairs a TurnOperation with the node the
// exit leads to, which the graph walker needs to keep traversing.
type ConnectedRoad struct {
	TurnOperation
	Target NodeID
}

// Intersection is the angle-sorted list of roads meeting at a node. By
// convention slot 0 is always the u-turn back along the incoming road,
// even when that road is oneway and the u-turn is not actually enterable.
type Intersection struct {
	Via   NodeID
	Roads []ConnectedRoad
}

func (in *Intersection) findEdge(id EdgeID) int {
	for i := range in.Roads {
		if in.Roads[i].Edge == id {
			return i
		}
	}
	return -1
}

// bearings returns the exit bearings in the same order as Roads.
func (in *Intersection) bearings() []float64 {
	out := make([]float64, len(in.Roads))
	for i, road := range in.Roads {
		out[i] = road.Bearing
	}
	return out
}
