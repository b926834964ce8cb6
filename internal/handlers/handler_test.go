package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/digitalloto/loto-backend/api/routes"
	"github.com/digitalloto/loto-backend/internal/config"
	"github.com/digitalloto/loto-backend/internal/handlers"
	"github.com/digitalloto/loto-backend/internal/repositories/jsonstore"
	"github.com/digitalloto/loto-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", AllowedHosts: []string{"localhost"}},
		Wallet: config.WalletConfig{DefaultBalance: 1500},
	}

	store := jsonstore.NewStore(t.TempDir())
	drawRepo := jsonstore.NewDrawRepository(store)
	ticketRepo := jsonstore.NewTicketRepository(store)
	balanceRepo := jsonstore.NewBalanceRepository(store, cfg.Wallet.DefaultBalance)
	packageRepo := jsonstore.NewPackageRepository(store)
	bannerRepo := jsonstore.NewBannerRepository(store)

	wallet := services.NewWalletService(balanceRepo)
	deps := routes.HandlerDependencies{
		DrawHandler:    handlers.NewDrawHandler(services.NewDrawService(drawRepo, ticketRepo, nil)),
		TicketHandler:  handlers.NewTicketHandler(services.NewTicketService(ticketRepo, drawRepo, wallet)),
		PackageHandler: handlers.NewPackageHandler(services.NewPackageService(packageRepo, drawRepo, ticketRepo, wallet, nil)),
		WalletHandler:  handlers.NewWalletHandler(wallet),
		StatsHandler:   handlers.NewStatsHandler(services.NewStatsService(drawRepo, ticketRepo, packageRepo, wallet)),
		BannerHandler:  handlers.NewBannerHandler(services.NewBannerService(bannerRepo)),
	}
	return routes.SetupRouter(cfg, deps)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var parsed map[string]interface{}
	if len(rec.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	}
	return rec, parsed
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)
	rec, body := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestBuyTicketFlow(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/api/admin/draws", gin.H{
		"title":    "Express Loto #1",
		"category": "express",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, true, body["success"])

	rec, body = doJSON(t, router, http.MethodPost, "/api/buy_ticket", gin.H{
		"draw_id": 1,
		"numbers": []int{1, 2, 3, 4, 5, 6},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, 1495.0, data["new_balance"])

	rec, body = doJSON(t, router, http.MethodGet, "/api/balance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, 1495.0, data["balance"])
}

func TestBuyTicketErrorEnvelope(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/api/buy_ticket", gin.H{
		"draw_id": 42,
		"numbers": []int{1, 2, 3, 4, 5, 6},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "DRAW_NOT_FOUND", body["code"])

	rec, body = doJSON(t, router, http.MethodPost, "/api/admin/draws", gin.H{
		"title":    "Express Loto #1",
		"category": "express",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body = doJSON(t, router, http.MethodPost, "/api/buy_ticket", gin.H{
		"draw_id": 1,
		"numbers": []int{1, 1, 2, 3, 4, 5},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_NUMBERS", body["code"])

	// An empty numbers list is a domain validation error, not a binding error
	rec, body = doJSON(t, router, http.MethodPost, "/api/buy_ticket", gin.H{
		"draw_id": 1,
		"numbers": []int{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_NUMBERS", body["code"])
}

func TestConductDrawEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/admin/draws", gin.H{
		"title":    "Express Loto #1",
		"category": "express",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := doJSON(t, router, http.MethodPost, "/api/admin/conduct_draw", gin.H{"draw_id": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["winning_numbers"], 6)

	// A second conduct is refused
	rec, body = doJSON(t, router, http.MethodPost, "/api/admin/conduct_draw", gin.H{"draw_id": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DRAW_COMPLETED", body["code"])
}

func TestUpdateBalanceEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/api/admin/update_balance", gin.H{"balance": 2000})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, body["success"])

	rec, body = doJSON(t, router, http.MethodGet, "/api/balance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, 2000.0, data["balance"])

	rec, body = doJSON(t, router, http.MethodPost, "/api/admin/update_balance", gin.H{"balance": -5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NEGATIVE_BALANCE", body["code"])
}
