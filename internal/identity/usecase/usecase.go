package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/gotix/internal/identity/entity"
	"github.com/shandysiswandi/gotix/internal/pkg/clock"
	"github.com/shandysiswandi/gotix/internal/pkg/config"
	"github.com/shandysiswandi/gotix/internal/pkg/goroutine"
	"github.com/shandysiswandi/gotix/internal/pkg/hash"
	"github.com/shandysiswandi/gotix/internal/pkg/instrument"
	"github.com/shandysiswandi/gotix/internal/pkg/jwt"
	"github.com/shandysiswandi/gotix/internal/pkg/otp"
	"github.com/shandysiswandi/gotix/internal/pkg/session"
	"github.com/shandysiswandi/gotix/internal/pkg/uid"
	"github.com/shandysiswandi/gotix/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// OTPIssuedEvent announces a freshly issued OTP for out-of-band delivery.
type OTPIssuedEvent struct {
	UserID   int64
	Email    string
	Username string
	Code     string
	TTL      time.Duration
}

type repoMessaging interface {
	PublishOTPIssued(ctx context.Context, msg OTPIssuedEvent) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	CreateUser(ctx context.Context, in entity.NewUser) error
}

type otpCache interface {
	SaveOTP(ctx context.Context, email, code string, ttl time.Duration) error
	GetOTP(ctx context.Context, email string) (string, error)
	DeleteOTP(ctx context.Context, email string) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	otpCache      otpCache
	sessions      session.Store
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	uid           uid.NumberID
	uuid          uid.StringID
	otpGen        otp.Generator
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	OTPCache      otpCache
	Sessions      session.Store
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	UID           uid.NumberID
	UUID          uid.StringID
	OTP           otp.Generator
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		otpCache:      dep.OTPCache,
		sessions:      dep.Sessions,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		uid:           dep.UID,
		uuid:          dep.UUID,
		otpGen:        dep.OTP,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) otpTTL() time.Duration {
	ttl := s.cfg.GetSecond("modules.identity.otp_ttl_seconds")
	if ttl <= 0 {
		ttl = time.Minute
	}
	return ttl
}

func (s *Usecase) sessionTTL() time.Duration {
	ttl := s.cfg.GetSecond("session.ttl_seconds")
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return ttl
}
