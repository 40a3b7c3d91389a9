package domain

// Suggestion is a canned starting point offered to the user.
// Selecting one fills the description and type; it never submits.
type Suggestion struct {
	Description string
	DiagramType string
	Title       string
}

// Suggestions is static placeholder content shown in the suggestions panel
var Suggestions = []Suggestion{
	{
		Description: "Create a class diagram for an online shopping platform",
		DiagramType: "classDiagram",
		Title:       "E-Commerce System",
	},
	{
		Description: "Design a sequence diagram for user login process",
		DiagramType: "sequenceDiagram",
		Title:       "User Authentication Flow",
	},
	{
		Description: "Develop a flowchart for order management system",
		DiagramType: "flowchart",
		Title:       "Order Processing",
	},
}
