package middleware

import (
	"net/http"

	"cornerstore/internal/usecase"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// RequestLogger は1リクエスト1行でアクセスログを出す。
// 5xxはError、4xxはWarn、それ以外はInfo。
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogMethod:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			status := statusOf(v.Status, v.Error)

			var e *zerolog.Event
			switch {
			case status >= http.StatusInternalServerError:
				e = log.Error().Err(v.Error)
			case status >= http.StatusBadRequest:
				e = log.Warn()
			default:
				e = log.Info()
			}

			if id := GetRequestID(c); id != "" {
				e = e.Str("request_id", id)
			}

			e.Dur("latency", v.Latency).
				Int("status", status).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("ip", c.RealIP()).
				Msg("API")
			return nil
		},
	})
}

// エラーが返った場合はまだステータスが書かれていないので、エラーから決める
func statusOf(written int, err error) int {
	if err == nil {
		return written
	}
	var he *usecase.HTTPError
	if errors.As(err, &he) {
		return he.Status
	}
	var ee *echo.HTTPError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return http.StatusInternalServerError
}
