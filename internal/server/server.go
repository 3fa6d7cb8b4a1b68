package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cornerstore/internal/config"
	"cornerstore/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// RouteRegistrar は各ハンドラが実装する
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

type Server struct {
	Echo *echo.Echo
	cfg  config.Config
	log  zerolog.Logger
}

// New はミドルウェアとルートを設定したサーバを返す（まだListenしない）
func New(cfg config.Config, log zerolog.Logger, registrars ...RouteRegistrar) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(log)

	e.Pre(echomw.RemoveTrailingSlash())
	if cfg.HTTPSRedirect {
		e.Pre(echomw.HTTPSRedirect())
	}

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())

	for _, r := range registrars {
		r.RegisterRoutes(e)
	}

	return &Server{Echo: e, cfg: cfg, log: log}
}

func (s *Server) Start() error {
	s.log.Info().Str("addr", s.cfg.Addr()).Str("env", s.cfg.Env).Msg("starting server")
	if err := s.Echo.Start(s.cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout())
	defer cancel()
	return s.Echo.Shutdown(ctx)
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.cfg.ShutdownTimeout) * time.Second
}
