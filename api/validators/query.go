package validators

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQueryDecimal reads an optional decimal query parameter. Absent or
// malformed values yield nil so listing filters degrade instead of failing.
func ParseQueryDecimal(r *http.Request, key string) *decimal.Decimal {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &value
}
