package domain

// JurisdictionEndpoint describes the online submission channel of one
// federal state. Static reference data, keyed by Region.
type JurisdictionEndpoint struct {
	Region string `json:"region"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Email  string `json:"email,omitempty"`
}
