package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zachweston123/artwalls-payments/internal/settlement"
	"gorm.io/gorm"
)

type OrderStatus string
type Currency string

const (
	StatusPending  OrderStatus = "PENDING"
	StatusPaid     OrderStatus = "PAID"
	StatusCanceled OrderStatus = "CANCELED"

	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"

	// Payout recipient roles used as TransferRecords keys.
	RoleArtist = "artist"
	RoleVenue  = "venue"
)

// Order is a single artwork sale. Created at checkout initiation with
// status PENDING; moves to PAID exactly once, driven only by a verified,
// non-duplicate gateway event. It never regresses from PAID.
type Order struct {
	ID             string          `json:"id"`
	ArtworkID      string          `json:"artwork_id"`
	ArtistID       string          `json:"artist_id"`
	VenueID        string          `json:"venue_id"`
	BuyerID        string          `json:"buyer_id"`
	Status         OrderStatus     `json:"status"`
	Currency       Currency        `json:"currency"`
	GrossAmount    int64           `json:"gross_amount"`
	PlatformFeeBps int             `json:"platform_fee_bps"`
	VenueFeeBps    int             `json:"venue_fee_bps"`
	PlatformFee    int64           `json:"platform_fee"`
	VenuePayout    int64           `json:"venue_payout"`
	ArtistPayout   int64           `json:"artist_payout"`
	TransferRecord TransferRecords `json:"transfer_record" gorm:"type:jsonb"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	return
}

func (o *Order) Validate() error {
	if !o.Currency.IsValid() {
		return fmt.Errorf("invalid currency: %s", o.Currency)
	}
	if o.GrossAmount <= 0 {
		return fmt.Errorf("gross amount must be greater than zero")
	}
	if o.ArtistID == "" {
		return fmt.Errorf("artist ID is required")
	}
	if o.VenueID == "" {
		return fmt.Errorf("venue ID is required")
	}

	return nil
}

// ApplySplit stamps the fee split onto the order.
func (o *Order) ApplySplit(split settlement.FeeSplit) {
	o.PlatformFee = split.PlatformFee
	o.VenuePayout = split.VenuePayout
	o.ArtistPayout = split.ArtistPayout
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	default:
		return false
	}
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCanceled:
		return true
	default:
		return false
	}
}

// TransferRecords is the merged role-to-transfer-id mapping persisted on an
// order. Stored as a single jsonb document, never as a growing log.
type TransferRecords []map[string]string

// Scan tolerates historical storage drift: null columns, bare objects and
// lists with non-object members all normalize to a clean merged record.
func (t *TransferRecords) Scan(value interface{}) error {
	if value == nil {
		*t = TransferRecords{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported transfer record column type %T", value)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*t = TransferRecords{}
		return nil
	}

	*t = settlement.MergeTransferRecords(raw, nil)
	return nil
}

func (t TransferRecords) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal([]map[string]string(t))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
