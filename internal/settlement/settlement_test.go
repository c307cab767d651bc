package settlement_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zachweston123/artwalls-payments/internal/settlement"
)

func TestSplit_TypicalRates(t *testing.T) {
	split := settlement.Split(10000, 1500, 1000)

	assert.Equal(t, int64(1500), split.PlatformFee)
	assert.Equal(t, int64(1000), split.VenuePayout)
	assert.Equal(t, int64(7500), split.ArtistPayout)
	assert.Equal(t, int64(10000), split.Total())
}

func TestSplit_RemainderGoesToArtist(t *testing.T) {
	split := settlement.Split(1999, 3333, 3333)

	assert.Equal(t, int64(666), split.PlatformFee)
	assert.Equal(t, int64(666), split.VenuePayout)
	assert.Equal(t, int64(667), split.ArtistPayout)
	assert.Equal(t, int64(1999), split.Total())
}

func TestSplit_ZeroGross(t *testing.T) {
	split := settlement.Split(0, 1500, 1000)

	assert.Equal(t, settlement.FeeSplit{}, split)
}

func TestSplit_NegativeInputsClampToZero(t *testing.T) {
	split := settlement.Split(-500, -100, -100)

	assert.Equal(t, settlement.FeeSplit{}, split)
}

func TestSplit_AdversarialRatesStillConserve(t *testing.T) {
	// Rates summing past 100% must never mint money or push the artist
	// share negative.
	split := settlement.Split(1000, 10000, 10000)

	assert.Equal(t, int64(1000), split.PlatformFee)
	assert.Equal(t, int64(0), split.VenuePayout)
	assert.Equal(t, int64(0), split.ArtistPayout)
	assert.Equal(t, int64(1000), split.Total())
}

func TestSplit_RatesAboveDenominatorClamp(t *testing.T) {
	split := settlement.Split(1000, 25000, 3000)

	assert.Equal(t, int64(1000), split.PlatformFee)
	assert.Equal(t, int64(0), split.VenuePayout)
	assert.Equal(t, int64(0), split.ArtistPayout)
}

func TestSplit_Conservation(t *testing.T) {
	grosses := []int64{0, 1, 7, 99, 1999, 10000, 123456789}
	rates := []int{0, 1, 250, 1500, 3333, 5000, 9999, 10000}

	for _, gross := range grosses {
		for _, pBps := range rates {
			for _, vBps := range rates {
				split := settlement.Split(gross, pBps, vBps)

				assert.Equal(t, gross, split.Total(),
					"gross=%d platform=%d venue=%d", gross, pBps, vBps)
				assert.GreaterOrEqual(t, split.PlatformFee, int64(0))
				assert.GreaterOrEqual(t, split.VenuePayout, int64(0))
				assert.GreaterOrEqual(t, split.ArtistPayout, int64(0))
			}
		}
	}
}

func TestSanitizeAmount(t *testing.T) {
	assert.Equal(t, int64(0), settlement.SanitizeAmount(math.NaN()))
	assert.Equal(t, int64(0), settlement.SanitizeAmount(math.Inf(1)))
	assert.Equal(t, int64(0), settlement.SanitizeAmount(math.Inf(-1)))
	assert.Equal(t, int64(0), settlement.SanitizeAmount(-10))
	assert.Equal(t, int64(100), settlement.SanitizeAmount(99.5))
	assert.Equal(t, int64(99), settlement.SanitizeAmount(99.4))
	assert.Equal(t, int64(2500), settlement.SanitizeAmount(2500))
}
