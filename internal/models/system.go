// Package models contains domain types for the Scansector save viewer.
package models

// Position is a pair of coordinates in save-file units.
type Position struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

// Object represents a single in-system entity extracted from a save.
type Object struct {
	Name    string   `json:"name" msgpack:"name"`
	Planet  bool     `json:"planet" msgpack:"planet"`
	Pos     Position `json:"pos" msgpack:"pos"`
	Mission bool     `json:"mission" msgpack:"mission"`
}

// System represents one star system and the objects it contains.
// Objects are ordered planets-first, each group in document order.
type System struct {
	Name    string   `json:"name" msgpack:"name"`
	Objects []Object `json:"objects" msgpack:"objects"`
}

// SystemSummary is the lightweight listing entry used by the selection UI.
// Index is the position in the sorted system list; duplicate names are
// possible, so the index is the selection key.
type SystemSummary struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	ObjectCount int    `json:"objectCount"`
}
