package probe

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"platter/internal/disc"
)

// fakeTransport serves a synthetic disc: TOC entries keyed by track number
// (the leadout under disc.LeadoutTrack) and raw frames keyed by sector.
type fakeTransport struct {
	first, last int
	headerErr   error
	entries     map[int]disc.RawTOCEntry
	entryFail   map[int]bool
	frames      map[int]*disc.RawFrame
}

func (t *fakeTransport) TOCHeader() (int, int, error) {
	if t.headerErr != nil {
		return 0, 0, t.headerErr
	}
	return t.first, t.last, nil
}

func (t *fakeTransport) TOCEntry(track int) (disc.RawTOCEntry, error) {
	if t.entryFail[track] {
		return disc.RawTOCEntry{}, fmt.Errorf("%w: toc entry %d", disc.ErrDeviceQuery, track)
	}
	entry, ok := t.entries[track]
	if !ok {
		return disc.RawTOCEntry{}, fmt.Errorf("%w: no such track %d", disc.ErrDeviceQuery, track)
	}
	return entry, nil
}

func (t *fakeTransport) ReadFrame(sector int) (*disc.RawFrame, error) {
	frame, ok := t.frames[sector]
	if !ok {
		return nil, fmt.Errorf("%w: sector %d", disc.ErrRead, sector)
	}
	return frame, nil
}

func dataFrame(submode, xaFlags byte, payloadOffset int, signature string) *disc.RawFrame {
	f := new(disc.RawFrame)
	f[0x0F] = submode
	f[0x12] = xaFlags
	if payloadOffset >= 0 {
		copy(f[payloadOffset+1:], signature)
	}
	return f
}

func TestRunSingleAudioTrack(t *testing.T) {
	transport := &fakeTransport{
		first: 1,
		last:  1,
		entries: map[int]disc.RawTOCEntry{
			1:                 {Control: 0x00, Start: disc.MSF{Minute: 0, Second: 2, Frame: 0}},
			disc.LeadoutTrack: {Control: 0x00, Start: disc.MSF{Minute: 0, Second: 32, Frame: 0}},
		},
	}

	doc, err := New(nil).Run(context.Background(), transport)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if doc.TrackCount != 1 || len(doc.Tracks) != 1 {
		t.Fatalf("doc = %+v, want one track", doc)
	}
	track := doc.Tracks[0]
	if track.TrackType != "audio" || track.FirstSector != 150 || track.SectorCount != 2250 {
		t.Errorf("track = %+v, want audio/150/2250", track)
	}
	if track.DataType != "" {
		t.Errorf("audio track carries data_type %q", track.DataType)
	}
}

func TestRunClassifiesDataTracks(t *testing.T) {
	transport := &fakeTransport{
		first: 1,
		last:  2,
		entries: map[int]disc.RawTOCEntry{
			1:                 {Control: 0x04, Start: disc.MSF{Minute: 0, Second: 2, Frame: 0}},  // 150
			2:                 {Control: 0x00, Start: disc.MSF{Minute: 5, Second: 0, Frame: 0}},  // 22500
			disc.LeadoutTrack: {Control: 0x00, Start: disc.MSF{Minute: 10, Second: 0, Frame: 0}}, // 45000
		},
		frames: map[int]*disc.RawFrame{
			166: dataFrame(0x01, 0x00, 0x10, "CD001"),
		},
	}

	doc, err := New(nil).Run(context.Background(), transport)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(doc.Tracks) != 2 {
		t.Fatalf("len(Tracks) = %d, want 2", len(doc.Tracks))
	}

	data := doc.Tracks[0]
	if data.TrackType != "data" || data.DataType != "mode 1" || !data.HasISO9660 {
		t.Errorf("data track = %+v, want mode 1 with signature", data)
	}
	audio := doc.Tracks[1]
	if audio.TrackType != "audio" || audio.DataType != "" {
		t.Errorf("audio track = %+v", audio)
	}
}

func TestRunUnknownSubmodeOmitsDataType(t *testing.T) {
	transport := &fakeTransport{
		first: 1,
		last:  1,
		entries: map[int]disc.RawTOCEntry{
			1:                 {Control: 0x04, Start: disc.MSF{Minute: 0, Second: 2, Frame: 0}},
			disc.LeadoutTrack: {Control: 0x00, Start: disc.MSF{Minute: 0, Second: 32, Frame: 0}},
		},
		frames: map[int]*disc.RawFrame{
			166: dataFrame(0x00, 0x00, 0x10, "CD001"),
		},
	}

	doc, err := New(nil).Run(context.Background(), transport)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	track := doc.Tracks[0]
	if track.DataType != "" {
		t.Errorf("unknown submode produced data_type %q", track.DataType)
	}
	if track.HasISO9660 {
		t.Error("unknown submode reported a filesystem signature")
	}
}

func TestRunLeadoutFailureYieldsNoDocument(t *testing.T) {
	transport := &fakeTransport{
		first: 1,
		last:  1,
		entries: map[int]disc.RawTOCEntry{
			1: {Control: 0x00, Start: disc.MSF{Minute: 0, Second: 2, Frame: 0}},
		},
		entryFail: map[int]bool{disc.LeadoutTrack: true},
	}

	doc, err := New(nil).Run(context.Background(), transport)
	if err == nil {
		t.Fatal("expected error")
	}
	if doc != nil {
		t.Fatalf("got document %+v after failed pass, want nil", doc)
	}
	if !errors.Is(err, disc.ErrDeviceQuery) {
		t.Errorf("error = %v, want ErrDeviceQuery", err)
	}
}

func TestRunProbeReadFailurePropagates(t *testing.T) {
	transport := &fakeTransport{
		first: 1,
		last:  1,
		entries: map[int]disc.RawTOCEntry{
			1:                 {Control: 0x04, Start: disc.MSF{Minute: 0, Second: 2, Frame: 0}},
			disc.LeadoutTrack: {Control: 0x00, Start: disc.MSF{Minute: 0, Second: 32, Frame: 0}},
		},
		// no frames: every read fails
	}

	doc, err := New(nil).Run(context.Background(), transport)
	if doc != nil {
		t.Fatal("expected no document")
	}
	if !errors.Is(err, disc.ErrRead) {
		t.Fatalf("error = %v, want ErrRead", err)
	}
}

func TestRunCancelledContext(t *testing.T) {
	transport := &fakeTransport{
		first: 1,
		last:  1,
		entries: map[int]disc.RawTOCEntry{
			1:                 {Control: 0x04, Start: disc.MSF{Minute: 0, Second: 2, Frame: 0}},
			disc.LeadoutTrack: {Control: 0x00, Start: disc.MSF{Minute: 0, Second: 32, Frame: 0}},
		},
		frames: map[int]*disc.RawFrame{
			166: dataFrame(0x01, 0x00, 0x10, "CD001"),
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(nil).Run(ctx, transport); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
