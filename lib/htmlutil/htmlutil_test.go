package htmlutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripTags(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{`<td><a href="/x">C-100</a></td>`, "C-100"},
		{`<script>var a = 1;</script>plain`, "plain"},
		{`<style>td { color: red }</style> $50.00 `, "$50.00"},
		{`A&amp;B   C`, "A&B C"},
		{``, ""},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, StripTags(test.in))
	}
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "NW 1st Ave & Broward", CleanText("  NW 1st Ave &amp; Broward\n"))
	require.Equal(t, "", CleanText(""))
}

func TestHiddenInputValue(t *testing.T) {
	html := `<input type="hidden" name="InstallationList" value="110010,110011" />`
	require.Equal(t, "110010,110011", HiddenInputValue(html, "InstallationList"))
	require.Equal(t, "", HiddenInputValue(html, "Missing"))
}
