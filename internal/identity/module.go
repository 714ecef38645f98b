// Package identity wires the account registration and OTP login workflow.
package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gotix/internal/identity/inbound"
	"github.com/shandysiswandi/gotix/internal/identity/outbound/cache"
	"github.com/shandysiswandi/gotix/internal/identity/outbound/db"
	"github.com/shandysiswandi/gotix/internal/identity/outbound/mq"
	"github.com/shandysiswandi/gotix/internal/identity/usecase"
	"github.com/shandysiswandi/gotix/internal/pkg/clock"
	"github.com/shandysiswandi/gotix/internal/pkg/config"
	"github.com/shandysiswandi/gotix/internal/pkg/goroutine"
	"github.com/shandysiswandi/gotix/internal/pkg/hash"
	"github.com/shandysiswandi/gotix/internal/pkg/instrument"
	"github.com/shandysiswandi/gotix/internal/pkg/jwt"
	"github.com/shandysiswandi/gotix/internal/pkg/messaging"
	"github.com/shandysiswandi/gotix/internal/pkg/otp"
	"github.com/shandysiswandi/gotix/internal/pkg/router"
	"github.com/shandysiswandi/gotix/internal/pkg/session"
	"github.com/shandysiswandi/gotix/internal/pkg/uid"
	"github.com/shandysiswandi/gotix/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	CacheConn  *redis.Client              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Sessions   session.Store              `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoCache := cache.NewCache(dep.CacheConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        repoDB,
		RepoMessaging: repoMsg,
		OTPCache:      repoCache,
		Sessions:      dep.Sessions,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		UID:           dep.UID,
		UUID:          dep.UUID,
		OTP:           dep.OTP,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Config)

	return nil
}
