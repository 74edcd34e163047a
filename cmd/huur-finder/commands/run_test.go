package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	query, err := parseQuery("AB123CD,FL")
	require.NoError(t, err)
	require.Equal(t, "AB123CD", query.Plate)
	require.Equal(t, "FL", query.State)

	query, err = parseQuery(" ab123cd , tx ")
	require.NoError(t, err)
	require.Equal(t, "ab123cd", query.Plate)
	require.Equal(t, "tx", query.State)

	_, err = parseQuery("AB123CD")
	require.Error(t, err)
	_, err = parseQuery(",FL")
	require.Error(t, err)
}

func TestCollectQueries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.txt")
	require.NoError(t, os.WriteFile(path, []byte(`
# fleet plates
AB123CD,FL

XYZ999,TX
`), 0o644))

	batchFile = path
	defer func() { batchFile = "" }()

	queries, err := collectQueries([]string{"QQQ111,NJ"})
	require.NoError(t, err)
	require.Len(t, queries, 3)
	require.Equal(t, "QQQ111", queries[0].Plate)
	require.Equal(t, "AB123CD", queries[1].Plate)
	require.Equal(t, "TX", queries[2].State)
}

func TestCollectQueriesBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.txt")
	require.NoError(t, os.WriteFile(path, []byte("notapair\n"), 0o644))

	batchFile = path
	defer func() { batchFile = "" }()

	_, err := collectQueries(nil)
	require.Error(t, err)
}
