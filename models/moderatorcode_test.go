package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNewModeratorCode(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.FixedZone("MYT", 8*60*60))
	mc := NewModeratorCode("ABC12345", "mod@example.com", now)

	assert.Equal(t, "ABC12345", mc.ID)
	assert.Equal(t, "ABC12345", mc.Code)
	assert.Equal(t, "mod@example.com", mc.Email)
	assert.False(t, mc.Used)
	assert.Equal(t, time.UTC, mc.CreatedAt.Location())
	assert.True(t, mc.CreatedAt.Equal(now.Truncate(time.Millisecond)))
	require.NotNil(t, mc.ExpiresAt)
	assert.Equal(t, 7*24*time.Hour, mc.ExpiresAt.Sub(mc.CreatedAt))
}

func TestModeratorCodeDocumentShape(t *testing.T) {
	mc := NewModeratorCode("ABC12345", "mod@example.com", time.Now())

	raw, err := bson.Marshal(mc)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, "ABC12345", doc["_id"])
	assert.Equal(t, "ABC12345", doc["code"])
	assert.Equal(t, "mod@example.com", doc["email"])
	assert.Equal(t, false, doc["used"])
	assert.Contains(t, doc, "createdAt")
	assert.Contains(t, doc, "expiresAt")

	// expiry survives the millisecond precision of BSON dates
	var back ModeratorCode
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.Equal(t, CodeTTL, back.ExpiresAt.Sub(back.CreatedAt))
}
