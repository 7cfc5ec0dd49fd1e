package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/khanghh/authportal/internal/authapi"
	"github.com/khanghh/authportal/internal/config"
	"github.com/khanghh/authportal/internal/forms"
	"github.com/khanghh/authportal/internal/handlers"
	"github.com/khanghh/authportal/internal/middlewares"
	"github.com/khanghh/authportal/internal/middlewares/csrf"
	"github.com/khanghh/authportal/internal/middlewares/sessions"
	"github.com/khanghh/authportal/internal/render"
	"github.com/khanghh/authportal/internal/store"
	"github.com/khanghh/authportal/params"
	"github.com/natefinch/lumberjack"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

var (
	app       *cli.App
	gitCommit string
	gitDate   string
	gitTag    string
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "YAML config file",
		Value: "config.yaml",
	}
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Enable debug logging",
	}
)

func init() {
	app = cli.NewApp()
	app.EnableBashCompletion = true
	app.Usage = "Login and signup pages for the auth API"
	app.Flags = []cli.Flag{
		configFileFlag,
		debugFlag,
	}
	app.Commands = []*cli.Command{
		{
			Name:  "version",
			Usage: "Print version information",
			Action: func(ctx *cli.Context) error {
				fmt.Println(params.VersionWithCommit(gitCommit, gitDate))
				return nil
			},
		},
		checkCommand,
	}
	app.Action = run
}

func initLogger(debug bool, logConfig config.LogConfig) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level),
	}
	if logConfig.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   logConfig.File,
			MaxSize:    logConfig.MaxSize,
			MaxBackups: logConfig.MaxBackups,
			MaxAge:     logConfig.MaxAge,
			Compress:   true,
		}
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(rotator), level))
	}

	handler := zapslog.NewHandler(zapcore.NewTee(cores...))
	slog.SetDefault(slog.New(handler))
}

func newSessionStore(storage *store.KVStorage, sessionConfig config.SessionConfig) *session.Store {
	return session.New(session.Config{
		Storage:        storage,
		Expiration:     sessionConfig.SessionMaxAge,
		KeyLookup:      "cookie:" + sessionConfig.CookieName,
		CookieHTTPOnly: sessionConfig.CookieHttpOnly,
		CookieSecure:   sessionConfig.CookieSecure,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}

func run(ctx *cli.Context) error {
	config, err := config.LoadConfig(ctx.String(configFileFlag.Name))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not load config file:", err)
		return err
	}
	initLogger(config.Debug || ctx.IsSet(debugFlag.Name), config.Log)

	storage, locker := store.NewStorage(config.RedisURL)
	defer storage.Close()

	sessionStore := newSessionStore(store.NewKVStorage(storage, params.SessionKeyPrefix), config.Session)
	clientStorage := store.NewClientStorage(storage, config.Session.SessionMaxAge)
	authClient := authapi.NewClient(config.AuthAPI.BaseURL, config.AuthAPI.Timeout)
	submitter := forms.NewSubmitter(authClient, locker, config.LockTTL)

	render.InitValues(fiber.Map{
		"siteName": config.SiteName,
	})

	router := fiber.New(fiber.Config{
		AppName:               config.SiteName,
		Views:                 render.NewHtmlEngine(config.TemplateDir),
		ErrorHandler:          middlewares.ErrorHandler,
		BodyLimit:             params.ServerBodyLimit,
		IdleTimeout:           params.ServerIdleTimeout,
		ReadTimeout:           params.ServerReadTimeout,
		WriteTimeout:          params.ServerWriteTimeout,
		DisableStartupMessage: true,
	})
	router.Use(recover.New())
	router.Use(sessions.SessionMiddleware(sessionStore))
	router.Use(csrf.New())
	handlers.SetupRoutes(router, submitter, clientStorage)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting authportal", "address", config.ListenAddr, "authAPI", config.AuthAPI.BaseURL, "version", params.VersionWithCommit(gitCommit, gitDate))
		errCh <- router.Listen(config.ListenAddr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-sigCtx.Done():
	}

	slog.Info("Shutting down")
	return router.ShutdownWithTimeout(params.ShutdownTimeout)
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
