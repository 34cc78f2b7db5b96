package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/eatelite/internal/pkg/clock"
	"github.com/shandysiswandi/eatelite/internal/pkg/config"
	"github.com/shandysiswandi/eatelite/internal/pkg/goroutine"
	"github.com/shandysiswandi/eatelite/internal/pkg/hash"
	"github.com/shandysiswandi/eatelite/internal/pkg/instrument"
	"github.com/shandysiswandi/eatelite/internal/pkg/jwt"
	"github.com/shandysiswandi/eatelite/internal/pkg/lock"
	"github.com/shandysiswandi/eatelite/internal/pkg/mail"
	"github.com/shandysiswandi/eatelite/internal/pkg/messaging"
	"github.com/shandysiswandi/eatelite/internal/pkg/otp"
	"github.com/shandysiswandi/eatelite/internal/pkg/router"
	"github.com/shandysiswandi/eatelite/internal/pkg/uid"
	"github.com/shandysiswandi/eatelite/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine  *goroutine.Manager
	validator  validator.Validator
	clock      clock.Clocker
	hmac       hash.Hash
	credential hash.Hash
	uid        uid.NumberID
	oid        uid.StringID
	uuid       uid.StringID
	otp        otp.OTP
	jwt        jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	locker    lock.Locker
	mail      mail.Mail
	messaging messaging.Publisher

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
	app.initMigration()
	app.initCache()
	app.initMail()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
