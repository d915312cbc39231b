package disc

import "fmt"

// TrackMode distinguishes audio tracks from data tracks.
type TrackMode int

const (
	TrackAudio TrackMode = iota
	TrackData
)

// String returns the report label for the mode.
func (m TrackMode) String() string {
	if m == TrackData {
		return "data"
	}
	return "audio"
}

// ctrlDataTrack is the control-flags bit marking a data track
// (CDROM_DATA_TRACK in linux/cdrom.h).
const ctrlDataTrack = 0x04

// LeadoutTrack is the sentinel track number addressing the leadout entry
// (CDROM_LEADOUT).
const LeadoutTrack = 0xAA

// RawTOCEntry is one entry as the transport returns it: the control flags
// and the track's start position in MSF addressing.
type RawTOCEntry struct {
	Control byte
	Start   MSF
}

// Mode derives the track mode from the control flags.
func (e RawTOCEntry) Mode() TrackMode {
	if e.Control&ctrlDataTrack != 0 {
		return TrackData
	}
	return TrackAudio
}

// TrackEntry describes one track. SectorCount is resolved from the next
// track's start address (the leadout for the final track); ReadTOC never
// returns an entry with an unresolved count.
type TrackEntry struct {
	Number      int
	Mode        TrackMode
	Start       MSF
	StartSector int
	SectorCount int
}

// TOC is the disc's table of contents: the ordered run of real tracks plus
// the leadout sentinel bounding the final track's length.
type TOC struct {
	FirstTrack int
	LastTrack  int
	Tracks     []TrackEntry
	Leadout    TrackEntry
}

// TotalTracks returns the number of real tracks.
func (t *TOC) TotalTracks() int { return t.LastTrack - t.FirstTrack + 1 }

// Querier issues TOC control transactions against an open drive handle.
// *Device implements it; tests substitute fakes.
type Querier interface {
	TOCHeader() (first, last int, err error)
	TOCEntry(track int) (RawTOCEntry, error)
}

// ReadTOC reads the full table of contents: the header, every track entry in
// MSF addressing, and the leadout. Track lengths are computed afterwards as
// differences between consecutive start addresses, so no entry is
// back-patched while queries are still in flight. Any failed query aborts
// the whole pass; a partially populated table is never returned.
func ReadTOC(q Querier) (*TOC, error) {
	first, last, err := q.TOCHeader()
	if err != nil {
		return nil, err
	}
	if first <= 0 || last < first {
		return nil, fmt.Errorf("%w: implausible toc header: first=%d last=%d", ErrDeviceQuery, first, last)
	}

	toc := &TOC{
		FirstTrack: first,
		LastTrack:  last,
		Tracks:     make([]TrackEntry, 0, last-first+1),
	}
	for number := first; number <= last; number++ {
		entry, err := q.TOCEntry(number)
		if err != nil {
			return nil, err
		}
		toc.Tracks = append(toc.Tracks, TrackEntry{
			Number:      number,
			Mode:        entry.Mode(),
			Start:       entry.Start,
			StartSector: entry.Start.Sector(),
		})
	}

	// A single-track disc still needs this query: the last real track's
	// length is bounded by the leadout.
	leadout, err := q.TOCEntry(LeadoutTrack)
	if err != nil {
		return nil, err
	}
	toc.Leadout = TrackEntry{
		Number:      LeadoutTrack,
		Mode:        leadout.Mode(),
		Start:       leadout.Start,
		StartSector: leadout.Start.Sector(),
	}

	for i := range toc.Tracks {
		next := toc.Leadout.StartSector
		if i+1 < len(toc.Tracks) {
			next = toc.Tracks[i+1].StartSector
		}
		toc.Tracks[i].SectorCount = next - toc.Tracks[i].StartSector
	}
	return toc, nil
}
