package model

// PlaceType identifies the administrative level of a place in the hierarchy
type PlaceType string

const (
	PlaceState        PlaceType = "state"
	PlaceCounty       PlaceType = "county"
	PlaceCity         PlaceType = "city"
	PlaceMunicipality PlaceType = "municipality"
	PlaceNeighborhood PlaceType = "neighborhood"
	PlaceUnknown      PlaceType = "unknown"
)

// SyntacticRole describes how a mention participates in its sentence.
// Values outside the named constants carry the recognizer's raw
// dependency label unchanged.
type SyntacticRole string

const (
	RoleSubject  SyntacticRole = "subject"
	RoleObject   SyntacticRole = "object"
	RoleModifier SyntacticRole = "modifier"
	RoleUnknown  SyntacticRole = "unknown"
)

// SemanticLabel classifies how a mention is used in its document
type SemanticLabel string

const (
	LabelGeographic    SemanticLabel = "geographic"     // reads as a place reference
	LabelNonGeographic SemanticLabel = "non_geographic" // organizational/sports/institutional usage
	LabelUnknown       SemanticLabel = "unknown"        // not yet validated
)

// Mention is one detected occurrence of a place reference in a document
type Mention struct {
	Surface    string        `json:"surface"`             // raw text as it appeared
	Canonical  string        `json:"canonical"`           // resolved canonical place name
	Type       PlaceType     `json:"type"`                // administrative level of the canonical place
	Confidence float64       `json:"confidence"`          // belief in [0,1] that this is an in-scope place reference
	Position   int           `json:"position"`            // byte offset in the source text
	Context    string        `json:"context,omitempty"`   // bounded window of surrounding text
	Role       SyntacticRole `json:"role"`                // syntactic role in the sentence
	Label      SemanticLabel `json:"label"`               // semantic usage label
	Ancestors  []string      `json:"ancestors,omitempty"` // canonical names of all hierarchy ancestors
}
