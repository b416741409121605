package models

// CaseRecord is one region of the upstream snapshot. Region is the upstream's
// own spelling and is not guaranteed to be canonical.
type CaseRecord struct {
	Region        string `json:"region"`
	InfectedCount int    `json:"infectedCount"`
}
