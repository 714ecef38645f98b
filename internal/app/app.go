// Package app wires configuration, resources and modules into a runnable
// service.
package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gotix/internal/pkg/clock"
	"github.com/shandysiswandi/gotix/internal/pkg/config"
	"github.com/shandysiswandi/gotix/internal/pkg/goroutine"
	"github.com/shandysiswandi/gotix/internal/pkg/hash"
	"github.com/shandysiswandi/gotix/internal/pkg/instrument"
	"github.com/shandysiswandi/gotix/internal/pkg/jwt"
	"github.com/shandysiswandi/gotix/internal/pkg/mail"
	"github.com/shandysiswandi/gotix/internal/pkg/messaging"
	"github.com/shandysiswandi/gotix/internal/pkg/otp"
	"github.com/shandysiswandi/gotix/internal/pkg/router"
	"github.com/shandysiswandi/gotix/internal/pkg/session"
	"github.com/shandysiswandi/gotix/internal/pkg/storage"
	"github.com/shandysiswandi/gotix/internal/pkg/uid"
	"github.com/shandysiswandi/gotix/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	otp       otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	sessions  session.Store
	mail      mail.Mail
	messaging messaging.Messaging
	storage   storage.Storage

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
