package disc

import "bytes"

// Submode identifies the on-disc sector layout of a data track.
type Submode int

const (
	SubmodeUnknown Submode = iota
	SubmodeMode1
	SubmodeMode2Form1
	SubmodeMode2Form2
)

// String returns the report label for the submode.
func (s Submode) String() string {
	switch s {
	case SubmodeMode1:
		return "mode 1"
	case SubmodeMode2Form1:
		return "mode 2/form 1"
	case SubmodeMode2Form2:
		return "mode 2/form 2"
	default:
		return "unknown"
	}
}

// Classification is the result of probing a data track.
type Classification struct {
	Submode Submode
	// HasISO9660 reports whether the primary volume descriptor signature was
	// found in the probe sector. Always false for SubmodeUnknown, where no
	// payload offset is defined and no scan is attempted.
	HasISO9660 bool
}

// pvdSectorOffset is the track-relative sector conventionally holding the
// ISO 9660 primary volume descriptor.
const pvdSectorOffset = 16

// iso9660Magic is the standard identifier field of a primary volume
// descriptor, one byte after the descriptor type byte.
var iso9660Magic = []byte("CD001")

// FrameReader fetches one raw sector at an absolute disc position.
// *Device implements it; tests substitute fakes.
type FrameReader interface {
	ReadFrame(sector int) (*RawFrame, error)
}

// ClassifyDataTrack probes the track's 17th sector and classifies its
// submode and filesystem signature. A missing or mismatched signature is a
// normal outcome, never an error; a failed sector read propagates.
func ClassifyDataTrack(r FrameReader, track TrackEntry) (Classification, error) {
	frame, err := r.ReadFrame(track.StartSector + pvdSectorOffset)
	if err != nil {
		return Classification{}, err
	}
	return classifyFrame(frame), nil
}

// classifyFrame decides the submode from the header mode byte and, for
// mode 2, the XA form bit. A zero mode byte is terminal: the submode stays
// unknown and the signature window is never read.
func classifyFrame(f *RawFrame) Classification {
	var c Classification
	var payload int
	switch indicator := f.SubmodeIndicator(); {
	case indicator == 1:
		c.Submode = SubmodeMode1
		payload = mode1PayloadStart
	case indicator != 0:
		if f.XAFlags()&xaForm2Bit != 0 {
			c.Submode = SubmodeMode2Form2
		} else {
			c.Submode = SubmodeMode2Form1
		}
		payload = mode2PayloadStart
	default:
		return c
	}
	c.HasISO9660 = bytes.Equal(f.Window(payload+1, len(iso9660Magic)), iso9660Magic)
	return c
}
