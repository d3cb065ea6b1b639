package save

import "github.com/scansector/backend/internal/models"

// Load runs the whole pipeline for one save file: read, parse, extract.
// Only document-level failures (*IOError, *ParseError) are returned as
// errors; per-record decoding failures are absorbed into Stats.
func Load(path string) ([]models.System, Stats, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, Stats{}, err
	}
	systems, stats := Extract(doc)
	return systems, stats, nil
}
