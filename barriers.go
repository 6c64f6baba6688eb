package turngraph

import "github.com/paulmach/osm"

// osmBarrierNodes is the default BarrierNodes, backed by the barrier-tag
// classification computed while scanning nodes (see readOSM).
type osmBarrierNodes struct {
	nodes map[osm.NodeID]struct{}
}

func newBarrierNodes(data *OSMDataRaw) *osmBarrierNodes {
	return &osmBarrierNodes{nodes: data.barrierNodes}
}

func (b *osmBarrierNodes) IsBarrier(node NodeID) bool {
	_, ok := b.nodes[node]
	return ok
}
