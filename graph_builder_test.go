package turngraph

import (
	"testing"

	"github.com/paulmach/osm"
)

func TestSplitAtCrossingsNoInteriorCrossing(t *testing.T) {
	wayNodes := []osm.NodeID{1, 2, 3}
	nodes := map[osm.NodeID]*Node{
		1: {isCrossing: false},
		2: {isCrossing: false},
		3: {isCrossing: false},
	}
	segments := splitAtCrossings(wayNodes, nodes)
	if len(segments) != 1 {
		t.Fatalf("expected a single segment when there is no interior crossing, got %d", len(segments))
	}
	if len(segments[0]) != 3 {
		t.Errorf("the single segment should keep all 3 nodes, got %d", len(segments[0]))
	}
}

func TestSplitAtCrossingsSplitsAtInteriorNode(t *testing.T) {
	wayNodes := []osm.NodeID{1, 2, 3, 4}
	nodes := map[osm.NodeID]*Node{
		1: {isCrossing: false},
		2: {isCrossing: true},
		3: {isCrossing: false},
		4: {isCrossing: false},
	}
	segments := splitAtCrossings(wayNodes, nodes)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments split at the interior crossing node, got %d", len(segments))
	}
	if segments[0][len(segments[0])-1] != 2 || segments[1][0] != 2 {
		t.Errorf("the crossing node should end the first segment and start the second, got %v / %v", segments[0], segments[1])
	}
}

func TestSplitAtCrossingsIgnoresEndpointCrossingFlag(t *testing.T) {
	wayNodes := []osm.NodeID{1, 2}
	nodes := map[osm.NodeID]*Node{
		1: {isCrossing: true},
		2: {isCrossing: true},
	}
	segments := splitAtCrossings(wayNodes, nodes)
	if len(segments) != 1 {
		t.Errorf("a way's own endpoints being crossings should not fragment it, got %d segments", len(segments))
	}
}

func TestNewGraphFromOSMDataOnewayGetsBacksidePlaceholder(t *testing.T) {
	nodeA := osm.NodeID(1)
	nodeB := osm.NodeID(2)
	data := &OSMDataRaw{
		nodes: map[osm.NodeID]*Node{
			nodeA: {node: osm.Node{Lat: 0, Lon: 0}},
			nodeB: {node: osm.Node{Lat: 0.001, Lon: 0}},
		},
		waysMedium: []*WayData{
			{
				ID:                10,
				name:              "One Way Street",
				Nodes:             []osm.NodeID{nodeA, nodeB},
				Oneway:            true,
				allowedAgentTypes: []AgentType{AGENT_AUTO},
			},
		},
		barrierNodes: map[osm.NodeID]struct{}{},
	}

	rg, err := newGraphFromOSMData(data, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	forwardEdges := rg.EdgesFrom(nodeA)
	if len(forwardEdges) != 1 {
		t.Fatalf("expected exactly one forward edge out of node A, got %d", len(forwardEdges))
	}
	if rg.Data(forwardEdges[0]).OnewayBackside {
		t.Errorf("the genuine forward edge must not be marked as a oneway backside placeholder")
	}

	backEdges := rg.EdgesFrom(nodeB)
	if len(backEdges) != 1 {
		t.Fatalf("expected exactly one placeholder edge out of node B, got %d", len(backEdges))
	}
	if !rg.Data(backEdges[0]).OnewayBackside {
		t.Errorf("the synthetic reverse of a oneway way must be marked as a non-enterable backside placeholder")
	}
	if rg.Target(backEdges[0]) != nodeA {
		t.Errorf("the backside placeholder should still lead back to node A so it has a coherent u-turn target")
	}
}

func TestNewGraphFromOSMDataTwoWayGetsRealReverse(t *testing.T) {
	nodeA := osm.NodeID(1)
	nodeB := osm.NodeID(2)
	data := &OSMDataRaw{
		nodes: map[osm.NodeID]*Node{
			nodeA: {node: osm.Node{Lat: 0, Lon: 0}},
			nodeB: {node: osm.Node{Lat: 0.001, Lon: 0}},
		},
		waysMedium: []*WayData{
			{
				ID:                11,
				name:              "Two Way Street",
				Nodes:             []osm.NodeID{nodeA, nodeB},
				Oneway:            false,
				allowedAgentTypes: []AgentType{AGENT_AUTO},
			},
		},
		barrierNodes: map[osm.NodeID]struct{}{},
	}

	rg, err := newGraphFromOSMData(data, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rg.Data(rg.EdgesFrom(nodeB)[0]).OnewayBackside {
		t.Errorf("a two-way street's reverse edge must be a real, enterable edge, not a backside placeholder")
	}
}
