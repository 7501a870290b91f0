package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/codevance-sas/Nodal-API/pkg/conf"
	"github.com/codevance-sas/Nodal-API/pkg/logger"
	"github.com/codevance-sas/Nodal-API/service"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Logger = zap.NewNop().Sugar()
	conf.InitConf("nodal-test.yaml") // missing file falls back to defaults
	os.Exit(m.Run())
}

func testRouter() *gin.Engine {
	h := NewHandler(service.NewService(nil))
	r := gin.New()
	r.GET("/v1/hydraulics/methods", h.ListMethods)
	r.GET("/v1/hydraulics/example-input", h.ExampleInput)
	r.POST("/v1/hydraulics/calculate", h.Calculate)
	r.POST("/v1/hydraulics/recommend", h.RecommendMethod)
	r.GET("/v1/gas/correlations", h.ListGasEquations)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestListMethodsRoute(t *testing.T) {
	r := testRouter()
	w, resp := doJSON(t, r, http.MethodGet, "/v1/hydraulics/methods", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, errcode(0), resp.Code)
	methods, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, methods, 10)
}

func TestGasCorrelationsRoute(t *testing.T) {
	r := testRouter()
	w, resp := doJSON(t, r, http.MethodGet, "/v1/gas/correlations", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	eqs, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, eqs, 3)
}

func TestCalculateRoute(t *testing.T) {
	r := testRouter()
	svc := service.NewService(nil)

	w, resp := doJSON(t, r, http.MethodPost, "/v1/hydraulics/calculate", svc.ExampleTraverseInput())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, errcode(0), resp.Code)
	assert.NotNil(t, resp.Data)
}

func TestCalculateRouteRejectsBadBody(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/hydraulics/calculate", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errBadRequest, resp.Code)
}

func TestRecommendRoute(t *testing.T) {
	r := testRouter()
	w, resp := doJSON(t, r, http.MethodPost, "/v1/hydraulics/recommend", service.RecommendRequest{
		Deviation: 60, OilRate: 100, GasRate: 1000,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	rec, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "mukherjee-brill", rec["method"])
}
