package citationportal

import (
	"testing"

	"huur-backend/lib/finders"

	"github.com/stretchr/testify/require"
)

func TestExtractToken(t *testing.T) {
	require.Equal(t, "abc123",
		extractToken(`<input name="__RequestVerificationToken" type="hidden" value="abc123" />`))
	require.Equal(t, "xyz789",
		extractToken(`<input value="xyz789" name="__RequestVerificationToken" />`))
	require.Equal(t, "", extractToken(`<input name="Other" value="nope" />`))
}

const gridFixture = `
<html><body>
<table>
<tbody class="k-table-tbody">
  <tr class="k-table-row">
    <td><a href="/Citation/Detail/555">WPB-555</a></td>
    <td>500 Clematis St</td>
    <td>FL</td>
    <td>AB123CD</td>
    <td>Sedan</td>
    <td>06/15/2025</td>
    <td>07/15/2025</td>
    <td>Unpaid</td>
    <td>$65.00</td>
  </tr>
  <tr class="k-table-row">
    <td>too</td><td>few</td><td>cells</td>
  </tr>
</tbody>
</table>
</body></html>`

func TestParseCitations(t *testing.T) {
	violations := ParseCitations(gridFixture)
	require.Len(t, violations, 1)

	v := violations[0]
	require.Equal(t, "WPB-555", v.CitationNumber)
	require.Equal(t, "https://wpb.citationportal.com/Citation/Detail/555", v.Link)
	require.Equal(t, "500 Clematis St", v.Address)
	require.Equal(t, "FL", v.State)
	require.Equal(t, "AB123CD", v.Tag)
	require.Equal(t, finders.StatusNew, v.PaymentStatus)
	require.Equal(t, "Unpaid", v.Note)
	require.Equal(t, 65.0, v.Amount)
	require.Equal(t, 2025, v.IssueDate.Year())
	require.Equal(t, v.IssueDate, v.StartDate)
	require.Equal(t, 2025, v.EndDate.Year())
	require.Equal(t, 1, v.Provider)
}

func TestParseCitationsNoResults(t *testing.T) {
	require.Empty(t, ParseCitations("<html>No citations found for that plate</html>"))
	require.Empty(t, ParseCitations("<html>no results</html>"))
	require.Empty(t, ParseCitations(""))
	require.Empty(t, ParseCitations("<html><body>no grid at all</body></html>"))
}
