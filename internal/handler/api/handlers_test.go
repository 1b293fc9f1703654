package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CapitolPulse/internal/dataset"
	"CapitolPulse/internal/loader"
	"CapitolPulse/internal/perfcache"
	xhttp "CapitolPulse/pkg/http"
	xlogger "CapitolPulse/pkg/logger"
)

var upstream = map[string]string{
	"/politician.full.json": `[
		{"_politicianId":"P001","_stateId":"ca","party":"democrat","firstName":"Alice","lastName":"Andrews","chamber":"house",
		 "stats":{"countTrades":5,"countFilings":2,"countIssuers":3,"dateFirstTraded":"2020-01-10","dateLastTraded":"2025-02-01","volume":400000}}
	]`,
	"/transaction.full.json": `[
		{"_txId":1,"_politicianId":"P001","_issuerId":10,"pubDate":"2025-01-20T10:00:00Z","txDate":"2025-01-05","txType":"buy","owner":"spouse","value":20000,"reportingGap":40,
		 "issuer":{"issuerName":"Acme Corp","issuerTicker":"ACME:US"},
		 "politician":{"_stateId":"ca","chamber":"house","firstName":"Alice","lastName":"Andrews","party":"democrat"}}
	]`,
	"/issuer.full.json": `[
		{"_issuerId":10,"issuerName":"Acme Corp","issuerTicker":"ACME:US","sector":"information-technology","country":"us",
		 "stats":{"countTrades":1,"countPoliticians":1,"volume":20000}}
	]`,
	"/committee.full.json": `[]`,
	"/state.full.json":     `[]`,
	"/issuer-performance.full.json": `[
		{"_issuerId":10,"eodPrices":[["2024-01-02",187.15]]}
	]`,
	"/special-price.full.json": `[
		{"_issuerId":111111,"eodPrices":[["2024-01-02",4742.83]]}
	]`,
}

func newTestHandler(t *testing.T, load bool) (*Handler, *echo.Echo) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := upstream[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	res := loader.Resources{
		Politicians:  "politician.full.json",
		Transactions: "transaction.full.json",
		Issuers:      "issuer.full.json",
		Committees:   "committee.full.json",
		States:       "state.full.json",
		Performance:  "issuer-performance.full.json",
		Benchmark:    "special-price.full.json",
	}
	l := loader.New(xhttp.NewClient(), srv.URL, res, nil)
	store := dataset.New(l, nil)
	if load {
		require.NoError(t, store.Load(context.Background()))
	}

	h := NewHandler(xlogger.Nop(), store, perfcache.New(l, nil, "111111"))
	e := echo.New()
	h.RegisterRoutes(e)
	return h, e
}

func doRequest(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestDatasetRoutesUnavailableWhileLoading(t *testing.T) {
	_, e := newTestHandler(t, false)

	rec := doRequest(e, "/api/politicians")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doRequest(e, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "loading")
}

func TestListPoliticians(t *testing.T) {
	_, e := newTestHandler(t, true)

	rec := doRequest(e, "/api/politicians")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Rows  []map[string]interface{} `json:"rows"`
			Total int64                    `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Rows, 1)
	assert.Equal(t, int64(1), resp.Data.Total)
	assert.Equal(t, "Alice Andrews", resp.Data.Rows[0]["name"])
}

func TestGetPoliticianNotFound(t *testing.T) {
	_, e := newTestHandler(t, true)

	rec := doRequest(e, "/api/politicians/NOPE")
	require.Equal(t, http.StatusOK, rec.Code, "errors ride the envelope")
	assert.Contains(t, rec.Body.String(), `"status":404`)
}

func TestListTradesCarriesLabels(t *testing.T) {
	_, e := newTestHandler(t, true)

	rec := doRequest(e, "/api/trades")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "spouse-trade")
	assert.Contains(t, body, "late-disclosure")
	assert.Contains(t, body, "micro-trade")
}

func TestListTradesRejectsBadDate(t *testing.T) {
	_, e := newTestHandler(t, true)

	rec := doRequest(e, "/api/trades?from=January")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":400`)
}

func TestGetIssuerPerformance(t *testing.T) {
	_, e := newTestHandler(t, true)

	rec := doRequest(e, "/api/issuers/10/performance")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2024-01-02")

	rec = doRequest(e, "/api/issuers/10")
	assert.Contains(t, rec.Body.String(), "Acme Corp")
}

func TestGetBenchmark(t *testing.T) {
	_, e := newTestHandler(t, true)

	rec := doRequest(e, "/api/benchmark")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "111111")
}

func TestListTraitsCatalog(t *testing.T) {
	_, e := newTestHandler(t, true)

	rec := doRequest(e, "/api/traits")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "high-volume")

	rec = doRequest(e, "/api/trade-labels")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "whale-trade")
}
