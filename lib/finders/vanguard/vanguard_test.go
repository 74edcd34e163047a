package vanguard

import (
	"encoding/json"
	"testing"
	"time"

	"huur-backend/lib/finders"

	"github.com/stretchr/testify/require"
)

const lookupFixture = `{
  "recordsFound": 2,
  "notices": [
    {
      "notice": "VG-3001",
      "noticeDate": {"ts": 1750010900000, "isLuxonDateTime": true},
      "entryTime": "2025-06-15 10:00:00",
      "exitTime": "2025-06-15 12:30:00",
      "ticketStatus": "Open",
      "lpn": "AB123CD",
      "lpnState": "NJ",
      "lotAddress": "88 River Rd",
      "amountDue": "55.00"
    },
    {
      "notice": "VG-3002",
      "noticeDate": null,
      "entryTime": "",
      "exitTime": "",
      "ticketStatus": "PAID",
      "lpn": "AB123CD",
      "lpnState": "NJ",
      "lotAddress": "88 River Rd",
      "amountDue": "0"
    }
  ]
}`

func TestMapNotice(t *testing.T) {
	var response Response
	require.NoError(t, json.Unmarshal([]byte(lookupFixture), &response))
	require.Equal(t, 2, response.RecordsFound)
	require.Len(t, response.Notices, 2)

	open := MapNotice(response.Notices[0])
	require.Equal(t, "VG-3001", open.NoticeNumber)
	require.Equal(t, "VanGuard", open.Agency)
	require.Equal(t, "88 River Rd", open.Address)
	require.Equal(t, "AB123CD", open.Tag)
	require.Equal(t, "NJ", open.State)
	require.Equal(t, 55.0, open.Amount)
	require.Equal(t, finders.StatusNew, open.PaymentStatus)
	require.True(t, open.IsActive)
	require.Equal(t, time.UnixMilli(1750010900000), open.IssueDate)
	require.False(t, open.StartDate.IsZero())
	require.True(t, open.EndDate.After(open.StartDate))

	paid := MapNotice(response.Notices[1])
	require.Equal(t, finders.StatusPaid, paid.PaymentStatus)
	require.False(t, paid.IsActive)
	// a null notice date must not panic, it just stays zero
	require.True(t, paid.IssueDate.IsZero())
	require.True(t, paid.StartDate.IsZero())
}
