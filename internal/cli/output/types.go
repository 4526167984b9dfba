package output

import "github.com/leapstack-labs/arcana/pkg/core"

// PortraitOutput is the JSON output of the calc command.
type PortraitOutput struct {
	Date     string        `json:"date"`
	Portrait core.Portrait `json:"portrait"`
}

// PositionEntry is one computed position.
type PositionEntry struct {
	Key     core.PositionKey `json:"position"`
	Value   int              `json:"value"`
	Numeral int              `json:"numeral"`
	Formula string           `json:"formula"`
}

// PositionsOutput is the JSON output of the positions command.
type PositionsOutput struct {
	Date      string          `json:"date"`
	Positions []PositionEntry `json:"positions"`
}

// GraphNode is one position in the dependency graph.
type GraphNode struct {
	Key       core.PositionKey   `json:"position"`
	Formula   string             `json:"formula"`
	DependsOn []core.PositionKey `json:"depends_on"`
	UsedBy    []core.PositionKey `json:"used_by"`
}

// GraphLevel groups positions at the same depth.
type GraphLevel struct {
	Level     int         `json:"level"`
	Positions []GraphNode `json:"positions"`
}

// GraphOutput is the JSON output of the graph command.
type GraphOutput struct {
	Levels     []GraphLevel `json:"levels"`
	TotalNodes int          `json:"total_positions"`
	TotalEdges int          `json:"total_edges"`
}

// SpreadOutput describes one spread layout.
type SpreadOutput struct {
	Spread    core.SpreadType    `json:"spread"`
	Title     string             `json:"title"`
	Positions []core.PositionKey `json:"positions"`
}

// CardOutput is the JSON output of the card command.
type CardOutput struct {
	ID       int                                   `json:"id"`
	Numeral  int                                   `json:"numeral"`
	Name     string                                `json:"name"`
	Meanings map[core.SpreadType]map[string]string `json:"meanings"`
}

// BatchRow is one line of batch output.
type BatchRow struct {
	Line     int            `json:"line"`
	Input    string         `json:"input"`
	Portrait *core.Portrait `json:"portrait,omitempty"`
	Error    string         `json:"error,omitempty"`
}
