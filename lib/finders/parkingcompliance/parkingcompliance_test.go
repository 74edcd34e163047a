package parkingcompliance

import (
	"encoding/json"
	"testing"

	"huur-backend/lib/finders"

	"github.com/stretchr/testify/require"
)

const responseFixture = `[
  {
    "_id": "abc",
    "noticeNumber": "CPM-1001",
    "plateNumber": "AB123CD",
    "lot": {"address": "321 Ocean Dr"},
    "entryTime": "2025-06-15T10:30:00Z",
    "exitTime": "2025-06-15T14:00:00Z",
    "fine": 75,
    "status": "UNPAID"
  },
  {
    "noticeNumber": "CPM-1002",
    "plateNumber": "AB123CD",
    "lot": {"address": "321 Ocean Dr"},
    "entryTime": "2025-05-01T08:00:00Z",
    "fine": 60,
    "status": "RESOLVED"
  }
]`

func TestMapViolation(t *testing.T) {
	var entries []Violation
	require.NoError(t, json.Unmarshal([]byte(responseFixture), &entries))
	require.Len(t, entries, 2)

	query := finders.Query{Plate: "AB123CD", State: "FL"}

	first := MapViolation(entries[0], query)
	require.Equal(t, "CPM-1001", first.NoticeNumber)
	require.Equal(t, "Parking Compliance", first.Agency)
	require.Equal(t, "321 Ocean Dr", first.Address)
	require.Equal(t, "AB123CD", first.Tag)
	require.Equal(t, "FL", first.State)
	require.Equal(t, 75.0, first.Amount)
	require.Equal(t, finders.StatusNew, first.PaymentStatus)
	require.True(t, first.IsActive)
	require.Equal(t, first.IssueDate, first.StartDate)
	require.Equal(t, 14, first.EndDate.Hour())

	second := MapViolation(entries[1], query)
	require.False(t, second.IsActive)
	require.Equal(t, finders.StatusNew, second.PaymentStatus)
	require.True(t, second.EndDate.IsZero())
}

func TestMapViolationPaid(t *testing.T) {
	entry := Violation{NoticeNumber: "CPM-2", Status: "PAID"}
	mapped := MapViolation(entry, finders.Query{Plate: "X", State: "FL"})
	require.Equal(t, finders.StatusPaid, mapped.PaymentStatus)
	require.True(t, mapped.IsActive)
}
