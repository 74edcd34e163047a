package finders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	testCases := []struct {
		status   string
		expected int
	}{
		{"OPEN", StatusNew},
		{"UNPAID", StatusNew},
		{"OVERDUE", StatusNew},
		{"PAID", StatusPaid},
		{"paid", StatusPaid},
		{"Void", StatusPaid},
		{"PENDING", StatusPaid},
		{"CLOSED VOID", StatusPaid},
		{"CLOSED WARNING", StatusPaid},
		{"CLOSED PAID", StatusPaid},
		{"  open ", StatusNew},
		{"", StatusNew},
		{"SOMETHING ELSE", StatusNew},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeStatus(test.status), "status %q", test.status)
	}
}

func TestParseTime(t *testing.T) {
	parsed := ParseTime("08/14/2025")
	require.Equal(t, 2025, parsed.Year())
	require.Equal(t, time.August, parsed.Month())
	require.Equal(t, 14, parsed.Day())

	require.True(t, ParseTime("not a date").IsZero())
	require.True(t, ParseTime("").IsZero())
}

func TestCentsAmount(t *testing.T) {
	require.Equal(t, 50.0, CentsAmount(5000))
	require.Equal(t, 25.0, CentsAmount(2500))
	require.Equal(t, 0.01, CentsAmount(1))
}

func TestParseCents(t *testing.T) {
	require.Equal(t, 15.0, ParseCents("1500"))
	require.Equal(t, 0.0, ParseCents("garbage"))
	require.Equal(t, 0.0, ParseCents(""))
}

func TestParseAmount(t *testing.T) {
	require.Equal(t, 1234.56, ParseAmount("$1,234.56"))
	require.Equal(t, 75.0, ParseAmount(" 75.00 "))
	require.Equal(t, 0.0, ParseAmount("n/a"))
}

func TestIdentifier(t *testing.T) {
	require.Equal(t, "C1", ParkingViolation{CitationNumber: "C1", NoticeNumber: "N1"}.Identifier())
	require.Equal(t, "N1", ParkingViolation{NoticeNumber: "N1"}.Identifier())
	require.Equal(t, "", ParkingViolation{}.Identifier())
}
