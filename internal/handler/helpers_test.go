package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"cornerstore/internal/config"
	"cornerstore/internal/handler"
	infraRepo "cornerstore/internal/infra/repository"
	"cornerstore/internal/server"
	"cornerstore/internal/testutil"
	"cornerstore/internal/usecase"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	srv *server.Server
	db  *gorm.DB
}

// 本番と同じ組み立てで、DBだけインメモリsqliteにしたサーバ
func newTestServer(t *testing.T, env string) *testServer {
	t.Helper()

	gdb := testutil.NewSeededDB(t)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Env = env

	txm := infraRepo.NewTxManagerGorm(gdb)
	productUC := usecase.NewProductUsecase(infraRepo.NewProductGormRepository(gdb), txm)
	orderUC := usecase.NewOrderUsecase(infraRepo.NewOrderGormRepository(gdb), txm)
	cashierUC := usecase.NewCashierUsecase(infraRepo.NewCashierGormRepository(gdb))

	srv := server.New(cfg, zerolog.Nop(),
		handler.NewDocsHandler(cfg.IsDevelopment()),
		handler.NewHealthHandler(sqlDB),
		handler.NewCashierHandler(cashierUC),
		handler.NewProductHandler(productUC),
		handler.NewOrderHandler(orderUC),
	)
	return &testServer{srv: srv, db: gdb}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.srv.Echo.ServeHTTP(rec, req)

	return rec, rec.Body.Bytes()
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int, body []byte) {
	t.Helper()
	require.Equalf(t, want, rec.Code, "body=%s", string(body))
}

func mustDecode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoErrorf(t, json.Unmarshal(body, &v), "body=%s", string(body))
	return v
}

func (s *testServer) count(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Table(table).Count(&n).Error)
	return n
}
