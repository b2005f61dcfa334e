package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRecordAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewActivityService(db)

	svc.Record(1, "BOOKING", "Booking BK-TEST created", map[string]interface{}{"booking_id": 7})
	svc.Record(1, "PAYMENT", "Received 1000", nil)
	svc.Record(2, "BOOKING", "Other tenant", nil)

	entries, err := svc.List(1, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, uint(1), e.OwnerID)
	}

	// bad limits fall back to the default
	entries, err = svc.List(1, -5)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
