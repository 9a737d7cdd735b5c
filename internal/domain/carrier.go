package domain

import "strings"

// Carrier represents a third-party shipping provider
type Carrier string

// Recognized carriers
const (
	CarrierGHTK          Carrier = "GHTK"
	CarrierGHN           Carrier = "GHN"
	CarrierJTExpress     Carrier = "J&T Express"
	CarrierViettelPost   Carrier = "Viettel Post"
	CarrierNinjaVan      Carrier = "Ninja Van"
	CarrierShopeeExpress Carrier = "Shopee Express"
)

// NormalizeCarrier canonicalizes a raw carrier value from an upload row.
// Matching is case-insensitive against the recognized carrier set; values
// that match nothing are kept verbatim so a misconfigured carrier surfaces
// as an "unknown" SLA level instead of being silently rewritten.
func NormalizeCarrier(raw string) Carrier {
	trimmed := strings.TrimSpace(raw)
	for _, c := range []Carrier{
		CarrierGHTK,
		CarrierGHN,
		CarrierJTExpress,
		CarrierViettelPost,
		CarrierNinjaVan,
		CarrierShopeeExpress,
	} {
		if strings.EqualFold(trimmed, string(c)) {
			return c
		}
	}
	return Carrier(trimmed)
}

// String returns the string representation of the carrier
func (c Carrier) String() string {
	return string(c)
}
