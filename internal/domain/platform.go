package domain

import "strings"

// Platform represents the sales channel an order originated from.
// Unrecognized values are carried through rather than rejected: unknown
// platforms fall into the default carrier suggestion branch and the
// "unknown" SLA level when no matrix rule exists for them.
type Platform string

// Recognized platforms
const (
	PlatformShopee  Platform = "shopee"
	PlatformTikTok  Platform = "tiktok"
	PlatformWebsite Platform = "website"
	PlatformLazada  Platform = "lazada"
)

// NormalizePlatform canonicalizes a raw platform value from an upload row
func NormalizePlatform(raw string) Platform {
	return Platform(strings.ToLower(strings.TrimSpace(raw)))
}

// Known returns true if the platform is one of the recognized channels
func (p Platform) Known() bool {
	switch p {
	case PlatformShopee, PlatformTikTok, PlatformWebsite, PlatformLazada:
		return true
	}
	return false
}

// Weight returns the platform component of the priority score.
// TikTok orders carry the tightest marketplace SLAs, website orders are
// owned-channel commitments, everything else weighs the same as Shopee.
func (p Platform) Weight() float64 {
	switch p {
	case PlatformTikTok:
		return 3
	case PlatformWebsite:
		return 2
	default:
		return 1
	}
}

// String returns the string representation of the platform
func (p Platform) String() string {
	return string(p)
}
