package metropolis

import (
	"encoding/json"
	"testing"
	"time"

	"huur-backend/lib/finders"

	"github.com/stretchr/testify/require"
)

const responseFixture = `{
  "success": true,
  "data": {
    "violations": [
      {
        "extId": "MTP-9001",
        "violationItemView": {
          "siteAddressInfo": {
            "street": "600 Congress Ave",
            "city": "Austin",
            "stateCode": "TX",
            "zip": "78701"
          },
          "licensePlate": "AB123CD",
          "licensePlateState": "TX",
          "visitStart": 1750000000000,
          "visitEnd": 1750010800000,
          "violationIssued": 1750010900000,
          "totalAmount": 95.5
        }
      }
    ]
  }
}`

func TestMapViolation(t *testing.T) {
	var response Response
	require.NoError(t, json.Unmarshal([]byte(responseFixture), &response))
	require.True(t, response.Success)
	require.Len(t, response.Data.Violations, 1)

	mapped := MapViolation(response.Data.Violations[0])
	require.Equal(t, "MTP-9001", mapped.NoticeNumber)
	require.Equal(t, "Metropolis", mapped.Agency)
	require.Equal(t, "600 Congress Ave, Austin, TX 78701", mapped.Address)
	require.Equal(t, "AB123CD", mapped.Tag)
	require.Equal(t, "TX", mapped.State)
	require.Equal(t, 95.5, mapped.Amount)
	require.Equal(t, finders.StatusNew, mapped.PaymentStatus)
	require.True(t, mapped.IsActive)

	require.Equal(t, time.UnixMilli(1750010900000), mapped.IssueDate)
	require.Equal(t, time.UnixMilli(1750000000000), mapped.StartDate)
	require.Equal(t, time.UnixMilli(1750010800000), mapped.EndDate)
	require.True(t, mapped.EndDate.After(mapped.StartDate))
}

func TestUnsuccessfulEnvelope(t *testing.T) {
	var response Response
	require.NoError(t, json.Unmarshal([]byte(`{"success": false, "message": "not found"}`), &response))
	require.False(t, response.Success)
	require.Empty(t, response.Data.Violations)
}
