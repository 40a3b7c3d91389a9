package domain

// DiagramType describes one entry of the diagram type catalog
type DiagramType struct {
	AISupport   string // How well the generation service handles this type
	Description string
	Difficulty  string
	Example     string
	ID          string // Identifier sent to the generation service as diagram_type
	Label       string
}

// DiagramTypes is the fixed catalog of supported diagram kinds.
// The first entry is the session default.
var DiagramTypes = []DiagramType{
	{
		AISupport:   "High",
		Description: "Visualize object-oriented system structure with classes, attributes, and relationships",
		Difficulty:  "Intermediate",
		Example:     "Define relationships between classes in a software system",
		ID:          "classDiagram",
		Label:       "Class Diagram",
	},
	{
		AISupport:   "Medium",
		Description: "Show interactions between objects in a specific time sequence",
		Difficulty:  "Advanced",
		Example:     "Model communication between system components over time",
		ID:          "sequenceDiagram",
		Label:       "Sequence Diagram",
	},
	{
		AISupport:   "High",
		Description: "Illustrate processes, decision points, and workflow steps",
		Difficulty:  "Beginner",
		Example:     "Visualize steps involved in a business workflow",
		ID:          "flowchart",
		Label:       "Flowchart",
	},
	{
		AISupport:   "Medium",
		Description: "Define system interactions from a user's perspective",
		Difficulty:  "Intermediate",
		Example:     "Represent how users interact with system features",
		ID:          "useCase",
		Label:       "Use Case Diagram",
	},
	{
		AISupport:   "Low",
		Description: "Represent different states of a system or object",
		Difficulty:  "Advanced",
		Example:     "Show the lifecycle states of a user account",
		ID:          "stateDiagram",
		Label:       "State Diagram",
	},
}

// DefaultDiagramType returns the catalog default
func DefaultDiagramType() DiagramType {
	return DiagramTypes[0]
}

// GetDiagramType returns the catalog entry for id, or nil if id is not in the catalog.
func GetDiagramType(id string) *DiagramType {
	for i := range DiagramTypes {
		if DiagramTypes[i].ID == id {
			return &DiagramTypes[i]
		}
	}
	return nil
}

// IsValidDiagramType reports whether id names a catalog entry
func IsValidDiagramType(id string) bool {
	return GetDiagramType(id) != nil
}

// DiagramTypeIDs returns the catalog identifiers in catalog order
func DiagramTypeIDs() []string {
	ids := make([]string, len(DiagramTypes))
	for i, t := range DiagramTypes {
		ids[i] = t.ID
	}
	return ids
}
