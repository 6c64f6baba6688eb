package turngraph

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/LdDl/ch"
	"github.com/pkg/errors"
)

// BuildExpandedGraph turns the routable graph into its edge-expanded form:
// every directed road segment becomes a vertex, and every legal turn
// between two segments (as decided by the intersection generator, which
// already accounts for restrictions, barriers and merged carriageways)
// becomes an edge. This is the representation contraction hierarchies are
// built over; the resulting graph is exported for some other process to
// query, it is never queried here.
func BuildExpandedGraph(rg *RoutingGraph, costConfig *OsmConfiguration, debug *DebugSink) ([]*ExpandedEdge, error) {
	ig := NewIntersectionGenerator(rg)
	ig.Debug = debug
	expanded := make([]*ExpandedEdge, 0)
	var nextID int64

	for from := range allEdges(rg.InMemoryGraph) {
		fromData := rg.Data(from)
		if fromData.OnewayBackside {
			continue
		}
		via := rg.Target(from)
		intersection := ig.Intersection(via, from)
		for i, road := range intersection.Roads {
			if i == 0 {
				continue // the u-turn slot is never a CH turn edge
			}
			if !road.Entry {
				continue
			}
			toData := rg.Data(road.Edge)
			cost := edgeCostMeters(rg, road.Edge, costConfig)
			geom := rg.Geometry(road.Edge)
			expanded = append(expanded, &ExpandedEdge{
				ID:             nextID,
				Source:         from,
				Target:         road.Edge,
				SourceOSMWayID: fromData.WayID,
				TargetOSMWayID: toData.WayID,
				SourceComponent: expandedEdgeComponent{
					SourceNodeID: rg.Source(from),
					TargetNodeID: rg.Target(from),
				},
				TargeComponent: expandedEdgeComponent{
					SourceNodeID: rg.Source(road.Edge),
					TargetNodeID: rg.Target(road.Edge),
				},
				WasOneway:  fromData.Oneway,
				CostMeters: cost,
				Geom:       geom,
			})
			nextID++
		}
	}
	return expanded, nil
}

// edgeCostMeters resolves the travel cost of an edge per costConfig: plain
// distance in meters, or a travel time at VLim.Default km/h for the hours
// and seconds cost types.
func edgeCostMeters(rg *RoutingGraph, edge EdgeID, costConfig *OsmConfiguration) float64 {
	distance := rg.Data(edge).Distance
	if costConfig == nil || costConfig.VLim == nil {
		return distance
	}
	speedKMH := costConfig.VLim.Default
	switch costConfig.CostType {
	case "hours":
		return (distance / 1000.0) / speedKMH
	case "seconds":
		return distance / (speedKMH * 1000.0 / 3600.0)
	default:
		return distance
	}
}

func allEdges(g *InMemoryGraph) map[EdgeID]struct{} {
	ids := make(map[EdgeID]struct{}, len(g.edgeData))
	for id := range g.edgeData {
		ids[id] = struct{}{}
	}
	return ids
}

// ExportCH builds the contraction-hierarchies graph from the expanded edge
// list and writes it out as vertices and shortcuts CSV files
// (<outPrefix>_vertices.csv, <outPrefix>_shortcuts.csv); the edges CSV is
// written separately by the CLI.
func ExportCH(expanded []*ExpandedEdge, outPrefix string, geomFormat string, units string, contract bool, verbose bool) error {
	graph := ch.Graph{}
	vertexGeoms := make(map[int64]GeoPoint)
	for _, edge := range expanded {
		source := int64(edge.Source)
		target := int64(edge.Target)
		if err := graph.CreateVertex(source); err != nil {
			return errors.Wrap(err, "Can not create source vertex")
		}
		if err := graph.CreateVertex(target); err != nil {
			return errors.Wrap(err, "Can not create target vertex")
		}
		cost := edge.CostMeters
		if strings.ToLower(units) == "km" {
			cost /= 1000.0
		}
		if err := graph.AddEdge(source, target, cost); err != nil {
			return errors.Wrap(err, "Can not add turn edge")
		}
		if len(edge.Geom) < 2 {
			continue
		}
		if _, ok := vertexGeoms[source]; !ok {
			vertexGeoms[source] = edge.Geom[0]
		}
		if _, ok := vertexGeoms[target]; !ok {
			vertexGeoms[target] = edge.Geom[len(edge.Geom)-1]
		}
	}

	if contract {
		if verbose {
			fmt.Println("Starting contraction process....")
		}
		st := time.Now()
		graph.PrepareContractionHierarchies()
		if verbose {
			fmt.Printf("Done contraction process in %v\n", time.Since(st))
		}
	}

	if err := writeVerticesCSV(&graph, vertexGeoms, outPrefix+"_vertices.csv", geomFormat); err != nil {
		return errors.Wrap(err, "Can not write vertices")
	}

	if contract {
		if err := graph.ExportShortcutsToFile(outPrefix + "_shortcuts.csv"); err != nil {
			return errors.Wrap(err, "Can not export shortcuts")
		}
	}
	return nil
}

func writeVerticesCSV(graph *ch.Graph, vertexGeoms map[int64]GeoPoint, path, geomFormat string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	if err := writer.Write([]string{"vertex_id", "order_pos", "importance", "geom"}); err != nil {
		return err
	}
	for i := range graph.Vertices {
		label := graph.Vertices[i].Label
		pt := vertexGeoms[label]
		geomStr := PrepareWKTPoint(pt)
		if strings.ToLower(geomFormat) == "geojson" {
			geomStr = PrepareGeoJSONPoint(pt)
		}
		row := []string{
			fmt.Sprintf("%d", label),
			fmt.Sprintf("%d", graph.Vertices[i].OrderPos()),
			fmt.Sprintf("%d", graph.Vertices[i].Importance()),
			geomStr,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}
