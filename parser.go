package turngraph

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Parser drives the OSM ingestion pipeline and produces a routable Graph
// together with the intersection metadata guidance needs.
type Parser struct {
	filename         string
	agentTypes       []AgentType
	preparePOI       bool
	poiSamplingRatio float64
	strictMode       bool
	verbose          bool
	costConfig       *OsmConfiguration
}

func (parser *Parser) String() string {
	agents := make([]string, 0, len(parser.agentTypes))
	for _, agentType := range parser.agentTypes {
		agents = append(agents, agentType.String())
	}
	return fmt.Sprintf(`
Network parser parameters:
	filename: '%s'
	agent_types: '%s'
	prepare POI?: %t
	POI_sampling_ratio: %f
	strict_mode enabled?: %t
	verbose: %t
	`,
		parser.filename,
		strings.Join(agents, ","),
		parser.preparePOI,
		parser.poiSamplingRatio,
		parser.strictMode,
		parser.verbose,
	)
}

func NewParser(fileName string, options ...func(*Parser)) *Parser {
	parser := &Parser{
		filename:   fileName,
		agentTypes: []AgentType{AGENT_AUTO},
		preparePOI: false,
		strictMode: false,
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

func WithAgentTypes(agentTypes []AgentType) func(*Parser) {
	return func(parser *Parser) {
		parser.agentTypes = agentTypes
	}
}

func WithPreparePOI(preparePOI bool) func(*Parser) {
	return func(parser *Parser) {
		parser.preparePOI = preparePOI
	}
}

func WithPOISamplingRatio(poiSamplingRatio float64) func(*Parser) {
	return func(parser *Parser) {
		parser.poiSamplingRatio = poiSamplingRatio
	}
}

func WithStrictMode(strictMode bool) func(*Parser) {
	return func(parser *Parser) {
		parser.strictMode = strictMode
	}
}

func WithVerbose(verbose bool) func(*Parser) {
	return func(parser *Parser) {
		parser.verbose = verbose
	}
}

func WithCostConfiguration(cfg *OsmConfiguration) func(*Parser) {
	return func(parser *Parser) {
		parser.costConfig = cfg
	}
}

// Parse reads the OSM extract, runs the classification pipeline and builds
// the in-memory Graph ready for intersection generation.
func (parser *Parser) Parse() (*RoutingGraph, error) {
	if len(parser.agentTypes) == 0 {
		parser.agentTypes = []AgentType{AGENT_AUTO}
	}
	data, err := readOSM(parser.filename, parser.verbose)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read OSM file")
	}
	data.allowedAgentTypes = parser.agentTypes
	if err := data.prepare(parser.verbose); err != nil {
		return nil, errors.Wrap(err, "Can't prepare OSM data")
	}
	graph, err := newGraphFromOSMData(data, parser.verbose)
	if err != nil {
		return nil, errors.Wrap(err, "Can't build graph")
	}
	return graph, nil
}
