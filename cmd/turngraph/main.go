package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	turngraph "github.com/routegraph/turngraph"
)

var (
	osmFileName   = flag.String("file", "my_graph.osm.pbf", "Filename of *.osm.pbf or *.osm/*.xml file")
	agentsStr     = flag.String("agents", "auto", "Set of needed travel modes (separated by commas): auto, bike, walk")
	costType      = flag.String("cost_type", "meters->static", "Edge cost: kilometers / meters / hours->{static|maxspeed}[->default] / seconds->{static|maxspeed}[->default]")
	out           = flag.String("out", "my_graph.csv", "Filename prefix for 'Comma-Separated Values' (CSV) output. Produces '<out>.csv' (edges), '<out>_vertices.csv', and, if -contract, '<out>_shortcuts.csv'")
	geomFormat    = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	units         = flag.String("units", "km", "Units of output weights. Expected values: km for kilometers / m for meters")
	doContraction = flag.Bool("contract", true, "Prepare contraction hierarchies?")
	debugGeoJSON  = flag.String("debug_geojson", "", "If set, append every generated intersection to this file as GeoJSON features")
	verbose       = flag.Bool("verbose", true, "Print progress to stdout")
)

func main() {
	flag.Parse()

	agentTypes := parseAgentTypes(*agentsStr)

	cfg := &turngraph.OsmConfiguration{EntityName: "highway"}
	if err := cfg.ParseCostType(costType); err != nil {
		fmt.Println(err)
		return
	}
	// -units converts distances only; time-based costs are written as computed.
	if cfg.CostType == "hours" || cfg.CostType == "seconds" {
		*units = "m"
	}

	parser := turngraph.NewParser(
		*osmFileName,
		turngraph.WithAgentTypes(agentTypes),
		turngraph.WithVerbose(*verbose),
		turngraph.WithCostConfiguration(cfg),
	)
	if *verbose {
		fmt.Println(parser)
	}

	graph, err := parser.Parse()
	if err != nil {
		fmt.Println(err)
		return
	}

	var debug *turngraph.DebugSink
	if *debugGeoJSON != "" {
		debug, err = turngraph.NewDebugSink(*debugGeoJSON, *verbose)
		if err != nil {
			fmt.Println(err)
			return
		}
		defer debug.Close()
	}

	st := time.Now()
	expanded, err := turngraph.BuildExpandedGraph(graph, cfg, debug)
	if err != nil {
		fmt.Println(err)
		return
	}
	if *verbose {
		fmt.Printf("Built edge-expanded graph (%d turn edges) in %v\n", len(expanded), time.Since(st))
	}

	fnamePart := strings.Split(*out, ".csv")
	outPrefix := fnamePart[0]

	if err := writeExpandedCSV(expanded, outPrefix, *geomFormat); err != nil {
		fmt.Println(err)
		return
	}

	if err := turngraph.ExportCH(expanded, outPrefix, *geomFormat, *units, *doContraction, *verbose); err != nil {
		fmt.Println(err)
		return
	}
}

func parseAgentTypes(raw string) []turngraph.AgentType {
	tokens := strings.Split(raw, ",")
	agents := make([]turngraph.AgentType, 0, len(tokens))
	for _, token := range tokens {
		switch strings.TrimSpace(token) {
		case "auto":
			agents = append(agents, turngraph.AGENT_AUTO)
		case "bike":
			agents = append(agents, turngraph.AGENT_BIKE)
		case "walk":
			agents = append(agents, turngraph.AGENT_WALK)
		}
	}
	if len(agents) == 0 {
		agents = append(agents, turngraph.AGENT_AUTO)
	}
	return agents
}

func writeExpandedCSV(expanded []*turngraph.ExpandedEdge, outPrefix, geomFormat string) error {
	file, err := os.Create(outPrefix + ".csv")
	if err != nil {
		return err
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	header := []string{
		"from_vertex_id", "to_vertex_id", "weight", "geom", "was_one_way", "edge_id",
		"osm_way_from", "osm_way_to",
		"osm_way_from_source_node", "osm_way_from_target_node",
		"osm_way_to_source_node", "osm_way_to_target_node",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, edge := range expanded {
		if len(edge.Geom) < 2 {
			continue
		}
		geomStr := turngraph.PrepareWKTLinestring(edge.Geom)
		if strings.ToLower(geomFormat) == "geojson" {
			geomStr = turngraph.PrepareGeoJSONLinestring(edge.Geom)
		}
		weight := edge.CostMeters
		if strings.ToLower(*units) == "km" {
			weight /= 1000.0
		}
		row := []string{
			fmt.Sprintf("%d", edge.Source),
			fmt.Sprintf("%d", edge.Target),
			fmt.Sprintf("%f", weight),
			geomStr,
			fmt.Sprintf("%t", edge.WasOneway),
			fmt.Sprintf("%d", edge.ID),
			fmt.Sprintf("%d", edge.SourceOSMWayID),
			fmt.Sprintf("%d", edge.TargetOSMWayID),
			fmt.Sprintf("%d", edge.SourceComponent.SourceNodeID), fmt.Sprintf("%d", edge.SourceComponent.TargetNodeID),
			fmt.Sprintf("%d", edge.TargeComponent.SourceNodeID), fmt.Sprintf("%d", edge.TargeComponent.TargetNodeID),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}
