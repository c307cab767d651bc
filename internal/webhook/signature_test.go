package webhook_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zachweston123/artwalls-payments/internal/webhook"
)

const testSecret = "whsec_test_secret"

func signedHeader(t *testing.T, secret string, ts int64, body []byte) string {
	t.Helper()
	return fmt.Sprintf("t=%d,v1=%s", ts, webhook.Sign(secret, ts, body))
}

func newVerifier(t *testing.T, ts int64) *webhook.Verifier {
	t.Helper()
	verifier, err := webhook.NewVerifier(testSecret, webhook.DefaultMaxAge)
	require.NoError(t, err)
	verifier.SetClock(func() time.Time { return time.Unix(ts, 0) })
	return verifier
}

func TestVerify_ValidSignature(t *testing.T) {
	body := []byte(`{"id":"evt_1","type":"checkout.completed","data":{"order_id":"ord_1"}}`)
	ts := int64(1_700_000_000)
	verifier := newVerifier(t, ts)

	event, err := verifier.Verify(body, signedHeader(t, testSecret, ts, body))

	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, "checkout.completed", event.Type)
}

func TestVerify_SecretRotationAnyMatchSuffices(t *testing.T) {
	body := []byte(`{"id":"evt_2","type":"checkout.completed","data":{}}`)
	ts := int64(1_700_000_000)
	verifier := newVerifier(t, ts)

	// During rotation the gateway signs with the retiring secret too; our
	// current secret only matches the second signature.
	header := fmt.Sprintf("t=%d,v1=%s,v1=%s",
		ts,
		webhook.Sign("whsec_retired", ts, body),
		webhook.Sign(testSecret, ts, body),
	)

	event, err := verifier.Verify(body, header)

	require.NoError(t, err)
	assert.Equal(t, "evt_2", event.ID)
}

func TestVerify_TamperedBodyFailsEverySignature(t *testing.T) {
	body := []byte(`{"id":"evt_3","type":"checkout.completed","data":{"gross_amount":1000}}`)
	ts := int64(1_700_000_000)
	verifier := newVerifier(t, ts)
	header := fmt.Sprintf("t=%d,v1=%s,v1=%s",
		ts,
		webhook.Sign(testSecret, ts, body),
		webhook.Sign("whsec_other", ts, body),
	)

	tampered := []byte(`{"id":"evt_3","type":"checkout.completed","data":{"gross_amount":9000}}`)
	_, err := verifier.Verify(tampered, header)

	assert.ErrorIs(t, err, webhook.ErrSignatureInvalid)
}

func TestVerify_MissingHeader(t *testing.T) {
	verifier := newVerifier(t, 1_700_000_000)

	_, err := verifier.Verify([]byte(`{}`), "")

	assert.ErrorIs(t, err, webhook.ErrSignatureInvalid)
}

func TestVerify_HeaderWithoutTimestamp(t *testing.T) {
	body := []byte(`{"id":"evt_4","type":"x"}`)
	verifier := newVerifier(t, 1_700_000_000)

	_, err := verifier.Verify(body, "v1=deadbeef")

	assert.ErrorIs(t, err, webhook.ErrSignatureInvalid)
}

func TestVerify_HeaderWithoutSignatures(t *testing.T) {
	verifier := newVerifier(t, 1_700_000_000)

	_, err := verifier.Verify([]byte(`{}`), "t=1700000000")

	assert.ErrorIs(t, err, webhook.ErrSignatureInvalid)
}

func TestVerify_GarbledTimestamp(t *testing.T) {
	verifier := newVerifier(t, 1_700_000_000)

	_, err := verifier.Verify([]byte(`{}`), "t=notanumber,v1=deadbeef")

	assert.ErrorIs(t, err, webhook.ErrSignatureInvalid)
}

func TestVerify_StaleTimestampRejected(t *testing.T) {
	body := []byte(`{"id":"evt_5","type":"checkout.completed"}`)
	signedAt := int64(1_700_000_000)
	verifier := newVerifier(t, signedAt+600)

	_, err := verifier.Verify(body, signedHeader(t, testSecret, signedAt, body))

	assert.ErrorIs(t, err, webhook.ErrSignatureInvalid)
}

func TestVerify_MaxAgeZeroDisablesStalenessCheck(t *testing.T) {
	body := []byte(`{"id":"evt_6","type":"checkout.completed"}`)
	signedAt := int64(1_700_000_000)
	verifier, err := webhook.NewVerifier(testSecret, 0)
	require.NoError(t, err)
	verifier.SetClock(func() time.Time { return time.Unix(signedAt+3600, 0) })

	_, err = verifier.Verify(body, signedHeader(t, testSecret, signedAt, body))

	assert.NoError(t, err)
}

func TestVerify_ValidSignatureUnparsableBody(t *testing.T) {
	body := []byte(`this is not json`)
	ts := int64(1_700_000_000)
	verifier := newVerifier(t, ts)

	_, err := verifier.Verify(body, signedHeader(t, testSecret, ts, body))

	assert.ErrorIs(t, err, webhook.ErrPayloadInvalid)
}

func TestVerify_EventWithoutIDRejected(t *testing.T) {
	body := []byte(`{"type":"checkout.completed","data":{}}`)
	ts := int64(1_700_000_000)
	verifier := newVerifier(t, ts)

	_, err := verifier.Verify(body, signedHeader(t, testSecret, ts, body))

	assert.ErrorIs(t, err, webhook.ErrPayloadInvalid)
}

func TestVerify_CommaSeparatedSecretListAnySecretMatches(t *testing.T) {
	body := []byte(`{"id":"evt_7","type":"checkout.completed","data":{}}`)
	ts := int64(1_700_000_000)

	// Mid-rotation config: new secret first, retiring secret still listed.
	verifier, err := webhook.NewVerifier("whsec_new, whsec_old", webhook.DefaultMaxAge)
	require.NoError(t, err)
	verifier.SetClock(func() time.Time { return time.Unix(ts, 0) })

	event, err := verifier.Verify(body, signedHeader(t, "whsec_old", ts, body))
	require.NoError(t, err)
	assert.Equal(t, "evt_7", event.ID)

	event, err = verifier.Verify(body, signedHeader(t, "whsec_new", ts, body))
	require.NoError(t, err)
	assert.Equal(t, "evt_7", event.ID)

	_, err = verifier.Verify(body, signedHeader(t, "whsec_unknown", ts, body))
	assert.ErrorIs(t, err, webhook.ErrSignatureInvalid)
}

func TestNewVerifier_EmptySecretFailsClosed(t *testing.T) {
	_, err := webhook.NewVerifier("", webhook.DefaultMaxAge)
	assert.ErrorIs(t, err, webhook.ErrConfigMissing)

	// Only separators and blanks is still no secret at all.
	_, err = webhook.NewVerifier(" , ,", webhook.DefaultMaxAge)
	assert.ErrorIs(t, err, webhook.ErrConfigMissing)
}
