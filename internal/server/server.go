// Package server exposes the hexcrypto operations as a JSON API for hosts
// that cannot link Go code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/smallyu/hash-storage-go/pkg/hexcrypto"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	svc    hexcrypto.Service
	echo   *echo.Echo
	httpd  *http.Server
	logger logrus.FieldLogger
}

type Config struct {
	Logger    logrus.FieldLogger
	Service   hexcrypto.Service
	Bind      string
	BodyLimit string
	Debug     bool
}

func New(config Config) (*Server, error) {
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	svc := config.Service
	if svc == nil {
		svc = hexcrypto.Default()
	}
	bodyLimit := config.BodyLimit
	if bodyLimit == "" {
		bodyLimit = "1M"
	}

	e := echo.New()

	// httpd
	var (
		httpTimeout        = 1 * time.Minute
		httpMaxHeaderBytes = 1 * (1024 * 1024)
	)

	srv := &Server{
		svc:    svc,
		echo:   e,
		logger: logger,
	}
	srv.httpd = &http.Server{
		Handler:        srv,
		Addr:           config.Bind,
		WriteTimeout:   httpTimeout,
		ReadTimeout:    httpTimeout,
		MaxHeaderBytes: httpMaxHeaderBytes,
	}

	e.HideBanner = true
	e.HidePort = true
	e.Debug = config.Debug
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency,
			}).Info("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
	}))

	e.GET("/_health", srv.HandleHealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.POST("/private-key", srv.handle("get_private_key", srv.getPrivateKey))
	v1.POST("/public-key", srv.handle("get_public_key", srv.getPublicKey))
	v1.POST("/check-keys", srv.handle("check_keys", srv.checkKeys))
	v1.POST("/encrypt", srv.handle("encrypt", srv.encrypt))
	v1.POST("/decrypt", srv.handle("decrypt", srv.decrypt))
	v1.POST("/signature", srv.handle("build_signature", srv.buildSignature))
	v1.POST("/signature/check", srv.handle("check_signature", srv.checkSignature))
	v1.POST("/secret-signature", srv.handle("build_secret_signature", srv.buildSecretSignature))
	v1.POST("/secret-signature/check", srv.handle("check_secret_signature", srv.checkSecretSignature))

	return srv, nil
}

func (srv *Server) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	srv.echo.ServeHTTP(rw, req)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv *Server) Run(ctx context.Context) error {
	srv.logger.WithField("bind", srv.httpd.Addr).Info("starting server")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.httpd.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		srv.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.httpd.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	srv.logger.Info("graceful shutdown complete")
	return nil
}
