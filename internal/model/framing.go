package model

// Stance classifies a political outreach recipient's expected disposition
type Stance string

const (
	StanceNone      Stance = ""          // Non-political formats carry no framing
	StanceReceptive Stance = "receptive" // Already sympathetic to expansion
	StanceSkeptical Stance = "skeptical" // Persuadable but wary of cost
	StanceHostile   Stance = "hostile"   // Opposed to new taxes or new programs
)

// PoliticalFraming holds the persuasion metadata for one stance: what to
// lead with, what to avoid, and who typically receives it. Immutable
// reference data, populated once at startup.
type PoliticalFraming struct {
	Stance     Stance   `json:"stance" yaml:"stance"`
	Framing    string   `json:"framing" yaml:"framing"`       // Framing title the letter opens under
	LeadWith   []string `json:"lead_with" yaml:"lead_with"`   // Talking points to open with, in order
	Avoid      []string `json:"avoid" yaml:"avoid"`           // Points that lose this audience, in order
	Arguments  []string `json:"arguments" yaml:"arguments"`   // Key arguments for the body
	Recipients []string `json:"recipients" yaml:"recipients"` // Typical recipients
}
