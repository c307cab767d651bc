package dto

import (
	"strings"

	"github.com/zachweston123/artwalls-payments/internal/models"
	"github.com/zachweston123/artwalls-payments/internal/settlement"
)

// Checkout is the inbound body for checkout initiation. ListPrice is what
// the artist set for the artwork, in minor units; the buyer-side markup is
// computed server-side.
type Checkout struct {
	ArtworkID string  `json:"artwork_id"`
	ArtistID  string  `json:"artist_id"`
	VenueID   string  `json:"venue_id"`
	BuyerID   string  `json:"buyer_id"`
	ListPrice float64 `json:"list_price"`
	Currency  string  `json:"currency"`
}

func (c *Checkout) Sanitize() {
	c.ArtworkID = strings.TrimSpace(c.ArtworkID)
	c.ArtistID = strings.TrimSpace(c.ArtistID)
	c.VenueID = strings.TrimSpace(c.VenueID)
	c.BuyerID = strings.TrimSpace(c.BuyerID)

	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
}

func (c *Checkout) ToEntity() *models.Order {
	return &models.Order{
		ArtworkID:   c.ArtworkID,
		ArtistID:    c.ArtistID,
		VenueID:     c.VenueID,
		BuyerID:     c.BuyerID,
		GrossAmount: settlement.SanitizeAmount(c.ListPrice),
		Currency:    models.Currency(c.Currency),
		Status:      models.StatusPending,
	}
}
