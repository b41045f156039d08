package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"honorsinventory/internal/config"
	"honorsinventory/internal/database"
	"honorsinventory/internal/domain/events"
	"honorsinventory/internal/domain/inventory"
)

func setupRouter(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	_, err = database.Seed(context.Background(), db)
	require.NoError(t, err)

	cfg := &config.Config{AppEnv: "test", CORSAllowedOrigins: []string{"http://localhost:5173"}}
	hub := events.NewHub(nil)
	store := inventory.NewGormStore(db)
	r := newRouter(routerDeps{
		cfg:       cfg,
		log:       zap.NewNop(),
		db:        db,
		inventory: inventory.NewHandler(inventory.NewService(store, hub), inventory.NewLocationService(store.Locations(), nil, time.Minute, nil)),
		events:    events.NewHandler(hub, cfg.CORSAllowedOrigins),
	})

	closeDB := func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	}
	return r, closeDB
}

func TestHealthz(t *testing.T) {
	r, closeDB := setupRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	closeDB()
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestRouterWiring(t *testing.T) {
	r, closeDB := setupRouter(t)
	defer closeDB()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/equipment", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/ws/equipment", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_FOUND")
}
