package portfolio

import "fmt"

// AssetClass is the category of a tradable instrument.
type AssetClass int

const (
	// Equity is an exchange-listed stock.
	Equity AssetClass = iota
	// Crypto is a cryptocurrency pair quoted in USD (e.g. BTC-USD).
	Crypto
)

func (c AssetClass) String() string {
	switch c {
	case Equity:
		return "equity"
	case Crypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// ParseAssetClass parses a string into an AssetClass.
func ParseAssetClass(s string) (AssetClass, error) {
	switch s {
	case "equity":
		return Equity, nil
	case "crypto":
		return Crypto, nil
	default:
		return 0, fmt.Errorf("unknown asset class: %q", s)
	}
}
