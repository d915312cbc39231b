package disc

// RawFrameSize is the byte length of one raw sector as returned by
// CDROMREADRAW: 2048 bytes of user data plus sync, header, subheader, and
// error-correction overhead.
const RawFrameSize = 2352

// Byte offsets and flags within a raw data sector.
const (
	submodeByteOffset = 0x0F // mode byte at the end of the sector header
	xaFlagsByteOffset = 0x12 // submode flags in the XA subheader
	mode1PayloadStart = 0x10 // user data offset for mode 1 sectors
	mode2PayloadStart = 0x18 // user data offset for mode 2 sectors
	xaForm2Bit        = 0x20 // form 2 bit within the XA submode flags
)

// RawFrame is a single raw sector. The accessors expose the handful of
// fields the classifier reads so nothing else indexes the buffer directly.
type RawFrame [RawFrameSize]byte

// SubmodeIndicator returns the header mode byte.
func (f *RawFrame) SubmodeIndicator() byte { return f[submodeByteOffset] }

// XAFlags returns the XA subheader submode flag byte. It is meaningful only
// for mode 2 sectors.
func (f *RawFrame) XAFlags() byte { return f[xaFlagsByteOffset] }

// Window returns length bytes starting at off, or nil when the range does
// not fit inside the frame.
func (f *RawFrame) Window(off, length int) []byte {
	if off < 0 || length < 0 || off+length > RawFrameSize {
		return nil
	}
	return f[off : off+length]
}
