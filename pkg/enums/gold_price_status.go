package enums

// GoldPriceStatus reflects the outcome of an upstream gold quote fetch.
type GoldPriceStatus string

const (
	GoldPriceStatusSuccess       GoldPriceStatus = "success"
	GoldPriceStatusMissingKey    GoldPriceStatus = "missing_key"
	GoldPriceStatusAPIError      GoldPriceStatus = "api_error"
	GoldPriceStatusEmptyResponse GoldPriceStatus = "empty_response"
	GoldPriceStatusParseError    GoldPriceStatus = "parse_error"
	GoldPriceStatusPending       GoldPriceStatus = "pending"
)

var validGoldPriceStatuses = []GoldPriceStatus{
	GoldPriceStatusSuccess,
	GoldPriceStatusMissingKey,
	GoldPriceStatusAPIError,
	GoldPriceStatusEmptyResponse,
	GoldPriceStatusParseError,
	GoldPriceStatusPending,
}

// IsValid reports whether the value matches the canonical status enum.
func (s GoldPriceStatus) IsValid() bool {
	for _, candidate := range validGoldPriceStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}
