package models

import "errors"

var (
	ErrInvalidMarketID       = errors.New("invalid market id")
	ErrInvalidMarketQuestion = errors.New("invalid market question")
	ErrInvalidMarketPlatform = errors.New("invalid market platform")
	ErrInvalidOutcomePrice   = errors.New("outcome price must be between 0 and 1")
	ErrInvalidOutcome        = errors.New("outcome must be yes or no")

	ErrParlayFull         = errors.New("parlay already holds the maximum number of legs")
	ErrTooFewLegs         = errors.New("a parlay needs at least two legs")
	ErrInvalidStake       = errors.New("stake must be greater than zero")
	ErrDegenerateParlay   = errors.New("parlay has zero combined probability")
	ErrPlacementInFlight  = errors.New("a placement is already in flight for this session")
	ErrPlacementFailed    = errors.New("placement was rejected by the adapter")
	ErrSessionNotFound    = errors.New("builder session not found")
	ErrUnboundedOddsValue = errors.New("odds are unbounded")

	ErrInvalidLegCap              = errors.New("invalid leg cap")
	ErrInvalidMinLegs             = errors.New("invalid minimum legs for submission")
	ErrInvalidRiskThresholds      = errors.New("risk thresholds must be strictly decreasing within (0,1)")
	ErrInvalidRecommendationBands = errors.New("invalid recommendation bands")
	ErrInvalidCacheTTL            = errors.New("invalid market cache TTL")
	ErrNoFallbackMarkets          = errors.New("fallback market set cannot be empty")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")

	ErrRecordNotFound = errors.New("record not found")
)
