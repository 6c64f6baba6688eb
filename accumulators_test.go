package turngraph

import "testing"

func TestLengthLimitedCoordinateAccumulatorStopsAtDistance(t *testing.T) {
	g, edges := newChainGraph()
	ig := newTestIntersectionGenerator(g)

	acc := NewLengthLimitedCoordinateAccumulator(1.0)
	road := ig.Intersection(2, edges["a->b"]).Roads[1]
	acc.Accumulate(ig, 2, road)

	if !acc.Done() {
		t.Errorf("accumulating a road far longer than the 1 meter budget should report Done")
	}
	if len(acc.Coordinates) == 0 {
		t.Errorf("expected the traversed road's geometry to be recorded")
	}
}

func TestLengthLimitedCoordinateAccumulatorNotDoneInitially(t *testing.T) {
	acc := NewLengthLimitedCoordinateAccumulator(1000000.0)
	if acc.Done() {
		t.Errorf("a freshly created accumulator with nothing traveled must not report Done")
	}
}

func TestIntersectionFinderAccumulatorUnboundedNeverDone(t *testing.T) {
	acc := NewIntersectionFinderAccumulator(0)
	if acc.Done() {
		t.Errorf("MaxCount 0 means unbounded, Done should never report true")
	}
}
