// Package disc reads structural metadata from an optical disc through the
// Linux CDROM ioctl interface.
//
// It owns the hardware-adjacent concerns of platter: querying the table of
// contents, fetching single raw 2352-byte sectors, classifying a data track's
// sector submode (including ISO 9660 signature detection), and the drive
// housekeeping around them (status polling, media wait, eject, discovery).
// The Device type is the only code in the repository that talks to the drive;
// everything above it consumes plain Go values.
//
// A Device is not safe for concurrent use. The CDROM addressing protocol is
// stateless per call, but the kernel handle is a single shared resource, so
// callers must issue one transaction at a time.
package disc
