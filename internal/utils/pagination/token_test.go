package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeDateBasedToken(t *testing.T) {
	// Standard timestamp
	submittedAt := time.Date(2025, 3, 10, 14, 30, 45, 123456789, time.UTC)

	token := EncodeDateBasedToken(submittedAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeDateBasedToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, submittedAt, decoded, "Timestamp should match after decode")

	// Zero time value
	zeroTime := time.Time{}
	zeroToken := EncodeDateBasedToken(zeroTime)
	decodedZero, err := DecodeDateBasedToken(zeroToken)
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zeroTime, decodedZero, "Zero time should match after decode")

	// Current time
	now := time.Now().UTC()
	nowToken := EncodeDateBasedToken(now)
	decodedNow, err := DecodeDateBasedToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedNow), "Current time should match after decode")
}

func TestDecodeDateBasedTokenError(t *testing.T) {
	// Invalid base64
	_, err := DecodeDateBasedToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Valid base64 but not a timestamp
	_, err = DecodeDateBasedToken("bm90YWRhdGU=") // "notadate"
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "date parse", "Error should mention date parsing issue")
}

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	fields := []string{"2025-03-10T00:00:00Z", "payment-123"}

	token := EncodeMultiFieldToken(fields...)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, fields, decoded, "Fields should match after decode")

	// Invalid base64
	_, err = DecodeMultiFieldToken("%%%")
	assert.Error(t, err, "Should return an error for invalid base64")
}
