package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ratecard/core/types"
	"ratecard/internal/config"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testServer() *Server {
	return NewServer("test", config.Default())
}

func mustDate(s string) time.Time {
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return parsed
}

func quoteBody(t *testing.T, req QuoteRequest) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func testRequest() QuoteRequest {
	campaign := mustDate("2026-03-10")
	return QuoteRequest{
		Profile: &types.CreatorProfile{
			Platforms: []types.PlatformMetrics{
				{Platform: types.PlatformInstagram, Followers: 35_000, EngagementRate: 2.0},
			},
			Niche:    "lifestyle",
			Region:   "united_states",
			Currency: "USD",
		},
		Brief: &types.ParsedBrief{
			DealType: types.DealSponsored,
			Content: types.ContentRequirements{
				Platform: types.PlatformInstagram,
				Format:   types.FormatStatic,
				Quantity: 1,
			},
			CampaignDate: &campaign,
		},
	}
}

func TestQuoteEndpoint(t *testing.T) {
	require := require.New(t)
	server := testServer()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/quote", quoteBody(t, testRequest()))
	server.Handler().ServeHTTP(w, r)

	require.Equal(http.StatusOK, w.Code)

	var env QuoteEnvelope
	require.NoError(json.Unmarshal(w.Body.Bytes(), &env))
	require.NotEqual("00000000-0000-0000-0000-000000000000", env.QuoteID.String())
	require.True(env.ValidUntil.After(env.GeneratedAt))
	require.NotNil(env.Result)
	require.True(env.Result.PricePerDeliverable.Equal(decimal.NewFromInt(400)))
}

func TestQuoteRejectsMalformedJSON(t *testing.T) {
	require := require.New(t)
	server := testServer()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/quote", bytes.NewBufferString("{not json"))
	server.Handler().ServeHTTP(w, r)

	require.Equal(http.StatusBadRequest, w.Code)

	var body ErrorResponse
	require.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal("INVALID_JSON", body.Code)
}

func TestQuoteRequiresProfileAndBrief(t *testing.T) {
	require := require.New(t)
	server := testServer()

	req := testRequest()
	req.Profile = nil

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/quote", quoteBody(t, req))
	server.Handler().ServeHTTP(w, r)

	require.Equal(http.StatusBadRequest, w.Code)
}

func TestAffiliateQuoteWithoutConfigIs422(t *testing.T) {
	require := require.New(t)
	server := testServer()

	req := testRequest()
	req.Brief.PricingModel = types.ModelAffiliate

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/quote/affiliate", quoteBody(t, req))
	server.Handler().ServeHTTP(w, r)

	require.Equal(http.StatusUnprocessableEntity, w.Code)

	var body ErrorResponse
	require.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal("CONFIG_ERROR", body.Code)
}

func TestUGCQuoteEndpoint(t *testing.T) {
	require := require.New(t)
	server := testServer()

	req := testRequest()
	req.Brief.DealType = types.DealUGC
	req.Brief.Content.Format = types.FormatVideo
	req.Brief.Content.Quantity = 3

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/quote/ugc", quoteBody(t, req))
	server.Handler().ServeHTTP(w, r)

	require.Equal(http.StatusOK, w.Code)

	var env QuoteEnvelope
	require.NoError(json.Unmarshal(w.Body.Bytes(), &env))
	require.True(env.Result.PricePerDeliverable.Equal(decimal.NewFromInt(200)))
	require.True(env.Result.TotalPrice.Equal(decimal.NewFromInt(600)))
}

func TestRateCardEndpoint(t *testing.T) {
	require := require.New(t)
	server := testServer()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/rate-card", quoteBody(t, testRequest()))
	server.Handler().ServeHTTP(w, r)

	require.Equal(http.StatusOK, w.Code)

	var resp RateCardResponse
	require.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(resp.Entries, 6)
}

func TestHealthAndVersion(t *testing.T) {
	require := require.New(t)
	server := testServer()

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))
	require.Equal(http.StatusOK, w.Code)
	require.Contains(w.Body.String(), "test")
}
