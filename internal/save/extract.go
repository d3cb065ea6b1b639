package save

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/scansector/backend/internal/models"
)

// Tag and attribute names used by the save format.
const (
	tagSystem      = "Sstm"  // system container node
	attrSystemName = "bN"    // display name attribute on a system
	tagPlanet      = "Plnt"  // planet record
	tagEntity      = "CCEnt" // generic entity record (stations, derelicts, ...)
	tagLocation    = "loc"   // location leaf, "x|y"
	tagMission     = "MReq"  // mission requirement marker, presence-only
	tagPayload     = "j0"    // embedded JSON payload leaf
	payloadNameKey = "f0"    // display name key inside the payload
)

// Stats counts the records the extractor skipped. Skipping is the normal
// handling for records that fail a required decoding step; it is never
// surfaced as an error.
type Stats struct {
	SystemsSkipped int `json:"systemsSkipped"`
	ObjectsSkipped int `json:"objectsSkipped"`
}

// Extract walks a parsed save document and assembles the sorted system
// list. Systems missing the name attribute and objects failing location or
// name decoding are dropped; everything else survives, including systems
// with zero extractable objects.
func Extract(doc *Document) ([]models.System, Stats) {
	var stats Stats
	systems := []models.System{}

	for sys := range doc.Root().DescendantsByTag(tagSystem) {
		name, ok := sys.Attr(attrSystemName)
		if !ok {
			stats.SystemsSkipped++
			continue
		}

		system := models.System{Name: name, Objects: []models.Object{}}

		// Planets always come before other entities, regardless of
		// their relative document order.
		for planet := range sys.DescendantsByTag(tagPlanet) {
			obj, ok := extractObject(planet)
			if !ok {
				stats.ObjectsSkipped++
				continue
			}
			obj.Planet = true
			system.Objects = append(system.Objects, obj)
		}

		for ent := range sys.DescendantsByTag(tagEntity) {
			obj, ok := extractObject(ent)
			if !ok {
				stats.ObjectsSkipped++
				continue
			}
			system.Objects = append(system.Objects, obj)
		}

		systems = append(systems, system)
	}

	sort.SliceStable(systems, func(i, j int) bool {
		return systems[i].Name < systems[j].Name
	})

	return systems, stats
}

// extractObject decodes one planet or generic entity record. All fields
// are required except the mission marker; a record missing any of them
// does not qualify and is skipped by the caller.
func extractObject(node *Node) (models.Object, bool) {
	loc, ok := node.FirstByTag(tagLocation)
	if !ok {
		return models.Object{}, false
	}
	pos, ok := parseVector(loc.Text)
	if !ok {
		return models.Object{}, false
	}

	mission := node.HasDescendant(tagMission)

	payload, ok := node.FirstByTag(tagPayload)
	if !ok {
		return models.Object{}, false
	}
	name, ok := decodeName(payload.Text)
	if !ok {
		return models.Object{}, false
	}

	return models.Object{
		Name:    name,
		Pos:     pos,
		Mission: mission,
	}, true
}

// parseVector parses a "x|y" location string. Fields beyond the second
// are ignored; a missing or non-numeric field fails the parse.
func parseVector(s string) (models.Position, bool) {
	parts := strings.Split(s, "|")
	if len(parts) < 2 {
		return models.Position{}, false
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return models.Position{}, false
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return models.Position{}, false
	}
	return models.Position{X: x, Y: y}, true
}

// decodeName pulls the display name out of the embedded JSON payload.
// The payload must be valid JSON carrying a string value under the name
// key; anything else fails the lookup.
func decodeName(payload string) (string, bool) {
	if !gjson.Valid(payload) {
		return "", false
	}
	v := gjson.Get(payload, payloadNameKey)
	if v.Type != gjson.String {
		return "", false
	}
	return v.String(), true
}
