package middleware

import (
	"net/http"

	"cornerstore/internal/usecase"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrorHandler はハンドラから返ってきたエラーの最終的な出口。
// クライアントには本文なしのステータスだけ返し、詳細はログに残す。
func ErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		status := statusOf(0, err)

		e := log.Warn()
		if status >= http.StatusInternalServerError {
			e = log.Error()
		}
		e = e.Err(err).Int("status", status)

		if id := GetRequestID(c); id != "" {
			e = e.Str("request_id", id)
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			e = e.Str("sqlstate", pgErr.Code).
				Str("constraint", pgErr.ConstraintName)
		}

		var he *usecase.HTTPError
		if errors.As(err, &he) {
			e = e.Str("reason", he.Message)
		}

		e.Msg("request failed")

		if c.Response().Committed {
			return
		}
		_ = c.NoContent(status)
	}
}
