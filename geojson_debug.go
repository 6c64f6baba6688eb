package turngraph

import (
	"fmt"
	"os"
	"sync"

	geojson "github.com/paulmach/go.geojson"
)

// DebugSink writes every generated Intersection out as GeoJSON features,
// one feature per exit and one feature per line, for visual inspection. It
// is the only mutable side channel the builder has: writes are best-effort
// and a failure here never propagates to the caller; it is logged only in
// verbose mode.
type DebugSink struct {
	mu      sync.Mutex
	file    *os.File
	verbose bool
}

// NewDebugSink opens (truncating) path for writing intersection debug
// features. If path cannot be opened the sink is nil and the caller should
// simply not attach it to an IntersectionGenerator.
func NewDebugSink(path string, verbose bool) (*DebugSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &DebugSink{file: file, verbose: verbose}, nil
}

func (d *DebugSink) Close() error {
	if d == nil || d.file == nil {
		return nil
	}
	return d.file.Close()
}

// Record appends one feature per exit of intersection to the debug file.
// Errors are swallowed (printed first when verbose), matching the best-effort
// contract of PrepareGeoJSONLinestring/PrepareGeoJSONPoint elsewhere in
// this package.
func (d *DebugSink) Record(graph Graph, intersection Intersection) {
	if d == nil || d.file == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, road := range intersection.Roads {
		geom := graph.Geometry(road.Edge)
		pts := make([][]float64, len(geom))
		for i, pt := range geom {
			pts[i] = []float64{pt.Lon, pt.Lat}
		}
		feature := geojson.NewLineStringFeature(pts)
		feature.SetProperty("edge_id", int64(road.Edge))
		feature.SetProperty("angle", road.Angle)
		feature.SetProperty("bearing", road.Bearing)
		feature.SetProperty("turn", road.Turn.String())
		feature.SetProperty("entry", road.Entry)

		b, err := feature.MarshalJSON()
		if err != nil {
			if d.verbose {
				fmt.Printf("Warning. Can not write intersection debug feature: %s\n", err.Error())
			}
			continue
		}
		if _, err := d.file.Write(append(b, '\n')); err != nil {
			if d.verbose {
				fmt.Printf("Warning. Can not append to intersection debug file: %s\n", err.Error())
			}
		}
	}
}
