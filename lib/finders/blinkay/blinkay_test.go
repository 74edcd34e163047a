package blinkay

import (
	"testing"

	"huur-backend/lib/finders"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const twoRowFixture = `
<html><body>
<div class="multiticket_row ">
  <div class="multiticket_col1">
    <input type="checkbox" name="CheckedTickets" value="12345" data-amount="5000" />
  </div>
  <div class="multiticket_col3">AB123CD</div>
  <div class="multiticket_col4">08/14/2025</div>
  <div class="clear"></div>
</div>
<div class="multiticket_row ">
  <div class="multiticket_col1">
    <input type="checkbox" name="CheckedTickets" value="67890" data-amount="2500" />
  </div>
  <div class="multiticket_col3">AB123CD</div>
  <div class="multiticket_col4">09/01/2025</div>
  <div class="clear"></div>
</div>
</body></html>`

func TestParseViolationsTwoRows(t *testing.T) {
	query := finders.Query{Plate: "AB123CD", State: "FL"}
	violations := ParseViolations(twoRowFixture, query)
	require.Len(t, violations, 2)

	require.Equal(t, "12345", violations[0].NoticeNumber)
	require.Equal(t, 50.0, violations[0].Amount)
	require.Equal(t, "67890", violations[1].NoticeNumber)
	require.Equal(t, 25.0, violations[1].Amount)

	for _, v := range violations {
		require.Equal(t, "https://webapp-usa.blinkay.app", v.Link)
		require.Equal(t, "FL", v.State)
		require.Equal(t, "AB123CD", v.Tag)
		require.Equal(t, finders.StatusNew, v.PaymentStatus)
	}
	require.Equal(t, 2025, violations[0].IssueDate.Year())
}

func TestParseViolationsNoRecords(t *testing.T) {
	query := finders.Query{Plate: "ZZZ999", State: "FL"}
	require.Empty(t, ParseViolations("<html>No records found</html>", query))
	require.Empty(t, ParseViolations("", query))
	require.Empty(t, ParseViolations("<html><body>nothing relevant</body></html>", query))
}

func TestParseViolationsCheckedRowIsPaid(t *testing.T) {
	fixture := `
<div class="multiticket_row ">
  <div class="multiticket_col1">
    <input type="checkbox" name="CheckedTickets" value="555" data-amount="1000" checked />
  </div>
  <div class="multiticket_col3">XYZ111</div>
  <div class="multiticket_col4">07/01/2025</div>
  <div class="clear"></div>
</div>`
	violations := ParseViolations(fixture, finders.Query{Plate: "XYZ111", State: "TX"})
	require.Len(t, violations, 1)
	require.Equal(t, finders.StatusPaid, violations[0].PaymentStatus)
	require.False(t, violations[0].IsActive)
}

func TestParseViolationsIdempotent(t *testing.T) {
	query := finders.Query{Plate: "AB123CD", State: "FL"}
	first := ParseViolations(twoRowFixture, query)
	second := ParseViolations(twoRowFixture, query)
	require.Empty(t, cmp.Diff(first, second))
}
