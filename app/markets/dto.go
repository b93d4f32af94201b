package markets

import (
	"time"

	"github.com/stakehouse/parlay/models"
)

// MarketListResponse represents the current market list
// @Description The tradable markets and whether they came from a live source.
// Live is false when the list is the built-in fallback set; it is never
// silently indistinguishable from real data.
type MarketListResponse struct {
	Markets   []models.Market `json:"markets"`                                   // Tradable markets
	Live      bool            `json:"live" example:"true"`                       // False when serving the fallback set
	Source    string          `json:"source" example:"polymarket"`               // Supplying venue or "fallback"
	FetchedAt time.Time       `json:"fetched_at" example:"2024-01-15T10:30:00Z"` // When the list was fetched
}
