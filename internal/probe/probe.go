package probe

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"platter/internal/disc"
	"platter/internal/logging"
	"platter/internal/report"
)

// Transport is the device capability a pass needs: TOC queries plus raw
// sector reads. *disc.Device implements it; tests substitute fakes.
type Transport interface {
	disc.Querier
	disc.FrameReader
}

// Prober runs structural scans of optical discs.
type Prober struct {
	logger *slog.Logger
}

// New constructs a Prober. A nil logger disables logging.
func New(logger *slog.Logger) *Prober {
	return &Prober{logger: logging.NewComponentLogger(logger, "prober")}
}

// Run executes one pass over an already open transport: read the table of
// contents, then classify each data track from its probe sector. The context
// is consulted between device transactions; an individual transaction is not
// cancellable mid-flight.
func (p *Prober) Run(ctx context.Context, t Transport) (*report.Document, error) {
	logger := p.logger.With(logging.String(logging.FieldCorrelationID, uuid.NewString()))

	toc, err := disc.ReadTOC(t)
	if err != nil {
		return nil, err
	}
	logger.Info("table of contents read",
		logging.Int("first_track", toc.FirstTrack),
		logging.Int("last_track", toc.LastTrack),
		logging.Int("leadout_sector", toc.Leadout.StartSector),
	)

	classifications := make(map[int]disc.Classification)
	for _, track := range toc.Tracks {
		if track.Mode != disc.TrackData {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := disc.ClassifyDataTrack(t, track)
		if err != nil {
			return nil, err
		}
		classifications[track.Number] = c
		logger.Info("data track classified",
			logging.Int("track", track.Number),
			logging.String("submode", c.Submode.String()),
			logging.Bool("iso9660_signature", c.HasISO9660),
		)
	}

	doc := report.Build(toc, classifications)
	return &doc, nil
}

// ProbeDevice opens the device, runs one pass, and releases the handle on
// every exit path. An empty lockDir skips the advisory lock.
func (p *Prober) ProbeDevice(ctx context.Context, path, lockDir string) (*report.Document, error) {
	var (
		dev *disc.Device
		err error
	)
	if lockDir != "" {
		dev, err = disc.OpenLocked(path, lockDir)
	} else {
		dev, err = disc.Open(path)
	}
	if err != nil {
		return nil, err
	}
	defer dev.Close()

	return p.Run(ctx, dev)
}
