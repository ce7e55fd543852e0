package appcontext

import (
	"context"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/bookshop/internal/api/response"
	"github.com/RoyceAzure/lab/bookshop/internal/config"
	"github.com/RoyceAzure/lab/bookshop/internal/constants"
	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/bookshop/internal/infra/seed"
	"github.com/RoyceAzure/lab/bookshop/internal/infra/session"
	"github.com/RoyceAzure/lab/bookshop/internal/pkg/crypt"
	"github.com/RoyceAzure/lab/bookshop/internal/pkg/limiter"
	"github.com/RoyceAzure/lab/bookshop/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	DbConn         *gorm.DB
	DbDao          db.IStore
	Cf             *config.Config
	PasswordHasher crypt.IPasswordHasher
	Sessions       session.ISessionManager
	AuthLimiter    *limiter.KeyedLimiter
	BookService    service.IBookService
	CartService    service.ICartService
	OrderService   service.IOrderService
	UserService    service.IUserService
	AuthService    service.IAuthService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	// 密碼與 session secret 不印出
	log.Info().
		Str("env", string(cf.Env)).
		Str("version", cf.AppVersion).
		Str("http_server_address", cf.HttpServerAddress).
		Str("db_host", cf.DbHost).
		Str("db_port", cf.DbPort).
		Str("db_name", cf.DbName).
		Int("rate_limit_capacity", cf.RateLimitCapacity).
		Int("rate_limit_refill_per_sec", cf.RateLimitRefillPerSec).
		Msg("load config")

	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	response.SetVerbose(app.Cf.Env.IsVerbose())

	err := app.setUpdbConn()
	if err != nil {
		return err
	}
	err = app.setUpdbDao()
	if err != nil {
		return err
	}
	err = app.dbInit()
	if err != nil {
		return err
	}
	err = app.setUpPasswordHasher()
	if err != nil {
		return err
	}
	err = app.setUpSessions()
	if err != nil {
		return err
	}
	err = app.setUpRateLimiter()
	if err != nil {
		return err
	}

	app.setUpServices()
	return nil
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Info().Msg("Start setup database connection")
	conn, err := db.GetDbConn(db.ConnConfig{
		DbName:       app.Cf.DbName,
		Host:         app.Cf.DbHost,
		Port:         app.Cf.DbPort,
		User:         app.Cf.DbUser,
		Pas:          app.Cf.DbPas,
		SSLMode:      app.Cf.DbSSLMode,
		MaxOpenConns: app.Cf.DbMaxOpenConns,
		MaxIdleConns: app.Cf.DbMaxIdleConns,
		Verbose:      app.Cf.Env == constants.Debug,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	app.DbConn = conn
	log.Info().Msg("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpdbDao() error {
	log.Info().Msg("Start setup database DAO")
	app.DbDao = db.NewStore(app.DbConn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.DbDao.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	log.Info().Msg("Finish setup database DAO")
	return nil
}

// db migration and db seed data
func (app *ApplicationContext) dbInit() error {
	log.Info().Msg("Start setup db init")

	if err := seed.RunDBMigration(app.Cf.DbSource()); err != nil {
		return fmt.Errorf("db migration: %w", err)
	}

	if app.Cf.CatalogSeedFile != "" {
		catalog, err := config.LoadCatalogSeed(app.Cf.CatalogSeedFile)
		if err != nil {
			return fmt.Errorf("load catalog seed: %w", err)
		}
		if _, err := seed.SeedCatalog(context.Background(), app.DbDao, catalog); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	log.Info().Msg("Finish setup db init")
	return nil
}

func (app *ApplicationContext) setUpPasswordHasher() error {
	log.Info().Msg("Start setup password hasher")
	app.PasswordHasher = crypt.NewBcryptHasher(crypt.DefaultCost)
	log.Info().Msg("Finish setup password hasher")
	return nil
}

func (app *ApplicationContext) setUpSessions() error {
	log.Info().Msg("Start setup session store")
	if app.Cf.SessionSecret == "" {
		if app.Cf.Env == constants.Prod {
			return fmt.Errorf("SESSION_SECRET is required in %s", constants.Prod)
		}
		log.Warn().Msg("SESSION_SECRET not set, sessions will not survive restart")
	}
	app.Sessions = session.NewCookieSessionManager(
		app.Cf.SessionSecret,
		app.Cf.SessionMaxAgeDuration(),
		app.Cf.Env == constants.Prod,
	)
	log.Info().Msg("Finish setup session store")
	return nil
}

func (app *ApplicationContext) setUpRateLimiter() error {
	log.Info().Msg("Start setup rate limiter")
	cf := limiter.GetDefaultLimiterConfig()
	if app.Cf.RateLimitCapacity > 0 {
		cf.Capacity = app.Cf.RateLimitCapacity
	}
	if app.Cf.RateLimitRefillPerSec > 0 {
		cf.RatePS = app.Cf.RateLimitRefillPerSec
	}
	app.AuthLimiter = limiter.NewKeyedLimiter(cf, 10*time.Minute)
	log.Info().Msg("Finish setup rate limiter")
	return nil
}

func (app *ApplicationContext) setUpServices() {
	log.Info().Msg("Start setup services")
	app.BookService = service.NewBookService(app.DbDao)
	app.CartService = service.NewCartService(app.DbDao)
	app.OrderService = service.NewOrderService(app.DbDao)
	app.UserService = service.NewUserService(app.DbDao, app.PasswordHasher)
	app.AuthService = service.NewAuthService(app.DbDao, app.PasswordHasher)
	log.Info().Msg("Finish setup services")
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Info().Msg("Start application shutdown")

	done := make(chan error, 1)
	go func() {
		defer close(done)

		if app.AuthLimiter != nil {
			log.Info().Msg("Stopping rate limiter...")
			app.AuthLimiter.Stop()
		}

		// 關閉 DB
		if app.DbConn != nil {
			log.Info().Msg("Closing database connection...")
			sqlDB, err := app.DbConn.DB()
			if err == nil {
				err = sqlDB.Close()
			}
			if err != nil {
				done <- err
				return
			}
		}

		log.Info().Msg("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
