package disc

import (
	"fmt"
	"path/filepath"
	"strings"
	"unsafe"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"
)

// Linux CDROM ioctl numbers from linux/cdrom.h.
const (
	ioctlReadTOCHeader = 0x5305 // CDROMREADTOCHDR
	ioctlReadTOCEntry  = 0x5306 // CDROMREADTOCENTRY
	ioctlEject         = 0x5309 // CDROMEJECT
	ioctlReadRaw       = 0x5314 // CDROMREADRAW
	ioctlDriveStatus   = 0x5326 // CDROM_DRIVE_STATUS
)

// addressFormatMSF selects minute:second:frame addressing in TOC entry
// queries (CDROM_MSF).
const addressFormatMSF = 0x02

// tocHeader mirrors struct cdrom_tochdr.
type tocHeader struct {
	First uint8
	Last  uint8
}

// tocEntry mirrors struct cdrom_tocentry, padding included. AdrCtrl packs
// the adr field in the low nibble and the control flags in the high nibble.
// Addr is union cdrom_addr; in MSF format its first three bytes are minute,
// second, frame.
type tocEntry struct {
	Track    uint8
	AdrCtrl  uint8
	Format   uint8
	_        uint8
	Addr     [4]uint8
	DataMode uint8
	_        [3]uint8
}

// msfRange mirrors struct cdrom_msf: a half-open [start, end) sector range
// in MSF components, the request convention of CDROMREADRAW.
type msfRange struct {
	StartMinute uint8
	StartSecond uint8
	StartFrame  uint8
	EndMinute   uint8
	EndSecond   uint8
	EndFrame    uint8
}

// Device is an open read-only handle to an optical drive. It implements
// Querier and FrameReader. The handle is acquired once and must be released
// exactly once with Close, on every exit path.
type Device struct {
	path string
	fd   int
	lock *flock.Flock
}

// Open opens the named device read-only and non-blocking.
func Open(path string) (*Device, error) {
	return openDevice(path, "")
}

// OpenLocked opens the device and additionally holds an advisory file lock
// under lockDir so concurrent platter invocations never interleave
// transactions against the same drive.
func OpenLocked(path, lockDir string) (*Device, error) {
	if strings.TrimSpace(lockDir) == "" {
		return nil, fmt.Errorf("%w: empty lock directory", ErrDeviceOpen)
	}
	return openDevice(path, lockDir)
}

func openDevice(path, lockDir string) (*Device, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: empty device path", ErrDeviceOpen)
	}

	var lock *flock.Flock
	if lockDir != "" {
		lock = flock.New(lockPath(lockDir, path))
		ok, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("%w: lock %s: %w", ErrDeviceOpen, lock.Path(), err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s is in use by another platter process", ErrDeviceOpen, path)
		}
	}

	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		if lock != nil {
			_ = lock.Unlock()
		}
		return nil, fmt.Errorf("%w: open %s: %w", ErrDeviceOpen, path, err)
	}
	return &Device{path: path, fd: fd, lock: lock}, nil
}

func lockPath(dir, device string) string {
	name := strings.ReplaceAll(strings.TrimPrefix(device, "/"), "/", "-")
	return filepath.Join(dir, "platter-"+name+".lock")
}

// Path returns the device path the handle was opened with.
func (d *Device) Path() string { return d.path }

// Close releases the handle and any advisory lock. Further calls after the
// first are no-ops.
func (d *Device) Close() error {
	if d.fd < 0 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	if d.lock != nil {
		if uerr := d.lock.Unlock(); uerr != nil && err == nil {
			err = uerr
		}
		d.lock = nil
	}
	if err != nil {
		return fmt.Errorf("close %s: %w", d.path, err)
	}
	return nil
}

func (d *Device) ioctl(req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// TOCHeader queries the first and last track numbers.
func (d *Device) TOCHeader() (int, int, error) {
	var hdr tocHeader
	if err := d.ioctl(ioctlReadTOCHeader, unsafe.Pointer(&hdr)); err != nil {
		return 0, 0, fmt.Errorf("%w: toc header on %s: %w", ErrDeviceQuery, d.path, err)
	}
	return int(hdr.First), int(hdr.Last), nil
}

// TOCEntry queries one track's TOC entry in MSF addressing. Track may be
// LeadoutTrack.
func (d *Device) TOCEntry(track int) (RawTOCEntry, error) {
	entry := tocEntry{Track: uint8(track), Format: addressFormatMSF}
	if err := d.ioctl(ioctlReadTOCEntry, unsafe.Pointer(&entry)); err != nil {
		return RawTOCEntry{}, fmt.Errorf("%w: toc entry %d on %s: %w", ErrDeviceQuery, track, d.path, err)
	}
	return RawTOCEntry{
		Control: entry.AdrCtrl >> 4,
		Start:   MSF{Minute: entry.Addr[0], Second: entry.Addr[1], Frame: entry.Addr[2]},
	}, nil
}

// ReadFrame fetches the raw sector at the given absolute address. The
// transport takes a half-open MSF range even for a single sector, so the
// request covers exactly [sector, sector+1). One call is one device
// transaction; there is no retry and no caching.
func (d *Device) ReadFrame(sector int) (*RawFrame, error) {
	start := SectorToMSF(sector)
	end := SectorToMSF(sector + 1)

	// CDROMREADRAW reads the range request from the head of the buffer and
	// writes the sector back over it.
	frame := new(RawFrame)
	*(*msfRange)(unsafe.Pointer(frame)) = msfRange{
		StartMinute: start.Minute, StartSecond: start.Second, StartFrame: start.Frame,
		EndMinute: end.Minute, EndSecond: end.Second, EndFrame: end.Frame,
	}
	if err := d.ioctl(ioctlReadRaw, unsafe.Pointer(frame)); err != nil {
		return nil, fmt.Errorf("%w: sector %d on %s: %w", ErrRead, sector, d.path, err)
	}
	return frame, nil
}

// Eject ejects the tray through the open handle.
func (d *Device) Eject() error {
	if err := d.ioctl(ioctlEject, nil); err != nil {
		return fmt.Errorf("eject %s: %w", d.path, err)
	}
	return nil
}
