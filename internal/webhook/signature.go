package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zachweston123/artwalls-payments/internal/models"
)

// DefaultMaxAge bounds how old a signed timestamp may be. A captured,
// still-validly-signed request can otherwise be replayed at will; the
// idempotency ledger would absorb it, but there is no reason to accept it
// at all.
const DefaultMaxAge = 5 * time.Minute

// Verifier authenticates raw gateway notification bodies against the
// shared signing secrets.
//
// The signature header has the form `t=<unix-seconds>,v1=<hex-hmac>` with
// any number of v1 entries. Rotation works from both ends: the gateway may
// sign with the old and new secret, and the config may carry both as a
// comma-separated list; any secret matching any signature is sufficient.
// The signed payload is `{ts}.{rawBody}` over the byte-exact body as
// received. Re-serializing parsed JSON can change the byte layout and
// invalidate the signature, so callers must hand over the raw bytes.
type Verifier struct {
	secrets []string
	maxAge  time.Duration
	now     func() time.Time
}

// NewVerifier takes the configured secret list (comma-separated, blanks
// dropped) and fails closed when it is empty: a verifier that cannot
// authenticate anything must not exist.
func NewVerifier(secretList string, maxAge time.Duration) (*Verifier, error) {
	var secrets []string
	for _, s := range strings.Split(secretList, ",") {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) == 0 {
		return nil, ErrConfigMissing
	}
	return &Verifier{
		secrets: secrets,
		maxAge:  maxAge,
		now:     time.Now,
	}, nil
}

// Verify authenticates rawBody against the signature header and, on
// success, parses it into a typed gateway event. Every failure path
// returns ErrSignatureInvalid or ErrPayloadInvalid; no event is ever
// returned unauthenticated.
func (v *Verifier) Verify(rawBody []byte, header string) (*models.GatewayEvent, error) {
	ts, signatures, err := parseSignatureHeader(header)
	if err != nil {
		return nil, err
	}

	if v.maxAge > 0 {
		age := v.now().Sub(time.Unix(ts, 0))
		if age > v.maxAge {
			return nil, fmt.Errorf("%w: timestamp older than %s", ErrSignatureInvalid, v.maxAge)
		}
	}

	matched := false
	for _, secret := range v.secrets {
		expected := Sign(secret, ts, rawBody)
		for _, sig := range signatures {
			// hmac.Equal is constant-time over equal-length inputs; the
			// length pre-check it performs is an accepted minor leak.
			if hmac.Equal([]byte(expected), []byte(sig)) {
				matched = true
			}
		}
	}
	if !matched {
		return nil, fmt.Errorf("%w: no matching signature", ErrSignatureInvalid)
	}

	var event models.GatewayEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadInvalid, err)
	}
	if event.ID == "" || event.Type == "" {
		return nil, fmt.Errorf("%w: missing event id or type", ErrPayloadInvalid)
	}

	return &event, nil
}

// SetClock overrides the time source. Tests only.
func (v *Verifier) SetClock(now func() time.Time) {
	v.now = now
}

func parseSignatureHeader(header string) (ts int64, signatures []string, err error) {
	if header == "" {
		return 0, nil, fmt.Errorf("%w: missing signature header", ErrSignatureInvalid)
	}

	sawTimestamp := false
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			parsed, parseErr := strconv.ParseInt(value, 10, 64)
			if parseErr != nil {
				return 0, nil, fmt.Errorf("%w: bad timestamp", ErrSignatureInvalid)
			}
			ts = parsed
			sawTimestamp = true
		case "v1":
			if value != "" {
				signatures = append(signatures, value)
			}
		}
	}

	if !sawTimestamp {
		return 0, nil, fmt.Errorf("%w: no timestamp in header", ErrSignatureInvalid)
	}
	if len(signatures) == 0 {
		return 0, nil, fmt.Errorf("%w: no signatures in header", ErrSignatureInvalid)
	}

	return ts, signatures, nil
}

// Sign computes the header value for a timestamp and body. Shared with
// tests and local tooling that needs to fabricate gateway notifications.
func Sign(secret string, ts int64, rawBody []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts)
	mac.Write(rawBody)
	return hex.EncodeToString(mac.Sum(nil))
}
