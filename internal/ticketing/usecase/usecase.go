package usecase

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"time"

	"github.com/shandysiswandi/gotix/internal/pkg/clock"
	"github.com/shandysiswandi/gotix/internal/pkg/config"
	"github.com/shandysiswandi/gotix/internal/pkg/instrument"
	"github.com/shandysiswandi/gotix/internal/pkg/storage"
	"github.com/shandysiswandi/gotix/internal/pkg/uid"
	"github.com/shandysiswandi/gotix/internal/pkg/validator"
	"github.com/shandysiswandi/gotix/internal/ticketing/entity"
	"go.opentelemetry.io/otel/trace"
)

const defaultTicketImage = "https://source.unsplash.com/random/100x100/?ticket"

type repoDB interface {
	CreateTicket(ctx context.Context, in entity.NewTicket) (*entity.Ticket, error)
	ListTicketsByUser(ctx context.Context, userID int64) ([]entity.Ticket, error)
}

type Usecase struct {
	repoDB    repoDB
	storage   storage.Storage
	validator validator.Validator
	cfg       config.Config
	uid       uid.NumberID
	clock     clock.Clocker
	ins       instrument.Instrumentation

	qrPlaceholder []byte
}

type Dependency struct {
	RepoDB     repoDB
	Storage    storage.Storage
	Validator  validator.Validator
	Config     config.Config
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		storage:       dep.Storage,
		validator:     dep.Validator,
		cfg:           dep.Config,
		uid:           dep.UID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		qrPlaceholder: encodeQRPlaceholder(),
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("ticketing.usecase").Start(ctx, name)
}

func (s *Usecase) bucket() string {
	if b := s.cfg.GetString("storage.bucket"); b != "" {
		return b
	}
	return "gotix"
}

func (s *Usecase) ticketImage() string {
	if img := s.cfg.GetString("modules.ticketing.image_url"); img != "" {
		return img
	}
	return defaultTicketImage
}

func (s *Usecase) presignTTL() time.Duration {
	ttl := s.cfg.GetMinute("storage.presign_ttl_minutes")
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return ttl
}

// qrURL resolves the stored object key to a signed download URL. The raw key
// is returned as a fallback when signing fails so listings still render.
func (s *Usecase) qrURL(ctx context.Context, key string) string {
	url, err := s.storage.PresignGet(ctx, s.bucket(), key, s.presignTTL())
	if err != nil {
		slog.WarnContext(ctx, "failed to presign qr object", "key", key, "error", err)
		return key
	}
	return url
}

// encodeQRPlaceholder renders the stand-in QR image uploaded for each ticket
// until a real code generator is hooked up.
func encodeQRPlaceholder() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}
