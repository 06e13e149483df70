package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	table := Table{
		Headers: []string{"Student", "Phone"},
		Rows:    [][]string{{"Alice", "111"}, {"Bob", "222"}},
	}

	out, err := NewCSVExporter().Render(table)
	require.NoError(t, err)
	assert.Equal(t, "Student,Phone\nAlice,111\nBob,222\n", string(out))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Table{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	table := Table{
		Headers: []string{"Time", "Course"},
		Rows:    [][]string{{"9:00 AM - 10:30 AM", "IELTS Preparation"}},
	}

	out, err := NewPDFExporter().Render(table, "Monday Schedule")
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}
