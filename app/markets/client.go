package markets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stakehouse/parlay/models"
)

const gammaPlatform = "polymarket"

// GammaClient is the REST client for the Polymarket Gamma API, which
// provides market discovery and current outcome prices.
type GammaClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGammaClient creates a new Gamma API client.
//
// baseURL is the Gamma API root, e.g. "https://gamma-api.polymarket.com".
func NewGammaClient(baseURL string) *GammaClient {
	return &GammaClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// apiMarket is a market as returned by the Gamma API. Outcome prices
// arrive JSON-encoded inside a string, e.g. "[\"0.62\",\"0.38\"]".
type apiMarket struct {
	ID            string `json:"id"`
	Question      string `json:"question"`
	Active        bool   `json:"active"`
	Closed        bool   `json:"closed"`
	OutcomePrices string `json:"outcomePrices"`
}

// FetchMarkets returns currently tradable binary markets.
func (g *GammaClient) FetchMarkets(ctx context.Context, limit int) ([]models.Market, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("active", "true")
	params.Set("closed", "false")

	body, err := g.doGet(ctx, "/markets?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("markets/gamma: fetch markets: %w", err)
	}

	var apiMarkets []apiMarket
	if err := json.Unmarshal(body, &apiMarkets); err != nil {
		return nil, fmt.Errorf("markets/gamma: decode markets: %w", err)
	}

	out := make([]models.Market, 0, len(apiMarkets))
	for i := range apiMarkets {
		m, err := apiMarkets[i].toMarket()
		if err != nil {
			// Skip malformed records rather than failing the batch.
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (m *apiMarket) toMarket() (models.Market, error) {
	var prices []string
	if err := json.Unmarshal([]byte(m.OutcomePrices), &prices); err != nil {
		return models.Market{}, fmt.Errorf("markets/gamma: decode outcome prices: %w", err)
	}
	if len(prices) < 2 {
		return models.Market{}, fmt.Errorf("markets/gamma: market %s has %d outcome prices", m.ID, len(prices))
	}

	yes, err := decimal.NewFromString(prices[0])
	if err != nil {
		return models.Market{}, fmt.Errorf("markets/gamma: parse yes price: %w", err)
	}
	no, err := decimal.NewFromString(prices[1])
	if err != nil {
		return models.Market{}, fmt.Errorf("markets/gamma: parse no price: %w", err)
	}

	market := models.Market{
		ID:       m.ID,
		Question: m.Question,
		YesPrice: yes,
		NoPrice:  no,
		Platform: gammaPlatform,
	}
	if err := market.Validate(); err != nil {
		return models.Market{}, err
	}
	return market, nil
}

func (g *GammaClient) doGet(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
