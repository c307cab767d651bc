package settlement

import "math"

// BpsDenominator is the number of basis points in a whole (100%).
const BpsDenominator = 10000

// FeeSplit is the exact integer division of a gross sale amount between the
// platform, the hosting venue and the artist. All amounts are expressed in
// the minor unit of the order currency (cents).
type FeeSplit struct {
	PlatformFee  int64 `json:"platform_fee"`
	VenuePayout  int64 `json:"venue_payout"`
	ArtistPayout int64 `json:"artist_payout"`
}

// Total returns the sum of the three components.
func (f FeeSplit) Total() int64 {
	return f.PlatformFee + f.VenuePayout + f.ArtistPayout
}

// Split computes the fee split for a gross amount in minor units.
//
// Platform and venue shares are floored, so the rounding remainder always
// lands on the artist side. The venue share is additionally capped at
// whatever the platform share left over, which keeps the three components
// summing exactly to gross even when the two rates together exceed 100%.
//
// The same function computes the buyer-side markup at checkout and the
// seller-side split at settlement, so the rounding policy lives in exactly
// one place.
func Split(gross int64, platformFeeBps, venueFeeBps int) FeeSplit {
	if gross < 0 {
		gross = 0
	}
	pBps := clampBps(platformFeeBps)
	vBps := clampBps(venueFeeBps)

	platformFee := gross * int64(pBps) / BpsDenominator
	venuePayout := gross * int64(vBps) / BpsDenominator
	if platformFee+venuePayout > gross {
		venuePayout = gross - platformFee
	}

	return FeeSplit{
		PlatformFee:  platformFee,
		VenuePayout:  venuePayout,
		ArtistPayout: gross - platformFee - venuePayout,
	}
}

// SanitizeAmount converts an externally supplied amount to minor units.
// Non-finite and negative values collapse to 0; fractional values round to
// the nearest integer.
func SanitizeAmount(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return int64(math.Round(v))
}

func clampBps(bps int) int {
	if bps < 0 {
		return 0
	}
	if bps > BpsDenominator {
		return BpsDenominator
	}
	return bps
}
