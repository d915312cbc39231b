package report

import (
	"encoding/json"
	"io"

	"platter/internal/disc"
)

// Track is one entry of the output document. DataType is present only for
// data tracks with a recognized submode. Number and HasISO9660 feed the
// human-readable rendering and stay out of the JSON contract.
type Track struct {
	TrackType   string `json:"track_type"`
	FirstSector int    `json:"first_sector"`
	SectorCount int    `json:"sector_count"`
	DataType    string `json:"data_type,omitempty"`

	Number     int  `json:"-"`
	HasISO9660 bool `json:"-"`
}

// Document is the complete probe report. It is only ever produced whole; a
// failed pass yields no document at all.
type Document struct {
	TrackCount int     `json:"track_count"`
	Tracks     []Track `json:"tracks"`
}

// Build assembles the document from a TOC and the per-track classifications
// keyed by track number.
func Build(toc *disc.TOC, classifications map[int]disc.Classification) Document {
	doc := Document{
		TrackCount: toc.TotalTracks(),
		Tracks:     make([]Track, 0, len(toc.Tracks)),
	}
	for _, track := range toc.Tracks {
		entry := Track{
			TrackType:   track.Mode.String(),
			FirstSector: track.StartSector,
			SectorCount: track.SectorCount,
			Number:      track.Number,
		}
		if track.Mode == disc.TrackData {
			if c, ok := classifications[track.Number]; ok {
				entry.HasISO9660 = c.HasISO9660
				if c.Submode != disc.SubmodeUnknown {
					entry.DataType = c.Submode.String()
				}
			}
		}
		doc.Tracks = append(doc.Tracks, entry)
	}
	return doc
}

// Encode writes the document as indented JSON.
func (d Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
