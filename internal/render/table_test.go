package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idNameColumns = []Column{
	{Key: "id", Label: "ID"},
	{Key: "name", Label: "Name"},
}

func TestTableEmptyPrintsNoticeOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Table(&buf, idNameColumns, nil)

	assert.Equal(t, "No results found.\n", buf.String())
}

func TestTableLayout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Table(&buf, idNameColumns, []map[string]interface{}{
		{"id": "f1", "name": "North Field"},
		{"id": "f2", "name": "South"},
	})

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 7) // header, rule, 2 rows, blank, count, trailing empty

	assert.Equal(t, "ID  Name       ", lines[0])
	assert.Equal(t, strings.Repeat("-", len(lines[0])), lines[1])
	assert.Equal(t, "f1  North Field", lines[2])
	assert.Equal(t, "f2  South      ", lines[3])
	assert.Equal(t, "", lines[4])
	assert.Equal(t, "2 result(s)", lines[5])
}

func TestTableColumnWidthCapAndTruncation(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 60)
	var buf bytes.Buffer
	Table(&buf, []Column{{Key: "name", Label: "Name"}}, []map[string]interface{}{
		{"name": long},
	})

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "Name"+strings.Repeat(" ", 36), lines[0])
	assert.Equal(t, long[:40], lines[2])
	assert.Len(t, lines[2], 40)
}

func TestTableWidthIsMaxOfLabelAndValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Table(&buf, []Column{{Key: "n", Label: "A Long Header"}}, []map[string]interface{}{
		{"n": "x"},
	})

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "A Long Header", lines[0])
	assert.Equal(t, "x            ", lines[2])
}

func TestTableMissingValuesAndFormatter(t *testing.T) {
	t.Parallel()

	upper := func(v interface{}) string { return strings.ToUpper(v.(string)) }
	var buf bytes.Buffer
	Table(&buf, []Column{
		{Key: "crop", Label: "Crop", Format: upper},
		{Key: "area", Label: "Area"},
	}, []map[string]interface{}{
		{"crop": "corn"},
		{"area": nil},
	})

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "CORN  N/A ", lines[2])
	assert.Equal(t, "N/A   N/A ", lines[3])
}

func TestDetail(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Detail(&buf, []Column{
		{Key: "id", Label: "ID"},
		{Key: "acres", Label: "Acres"},
	}, map[string]interface{}{"id": "f1"})

	assert.Equal(t, "ID:    f1\nAcres: N/A\n", buf.String())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := JSON(&buf, []map[string]interface{}{{"id": "a1", "name": "Farm A"}})
	require.NoError(t, err)

	assert.Equal(t, "[\n  {\n    \"id\": \"a1\",\n    \"name\": \"Farm A\"\n  }\n]\n", buf.String())
}
