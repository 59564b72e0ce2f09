package dialect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowsParser_MaterializeDirectory(t *testing.T) {
	parser := NewWindowsParser()

	file := parser.Materialize("12-03-96  06:38AM       <DIR>          games")
	require.NotNil(t, file)
	assert.Equal(t, "games", file.Name)
	assert.Equal(t, TypeDirectory, file.Type)
	assert.Equal(t, int64(0), file.Size)
	assert.Equal(t, time.Date(1996, time.December, 3, 6, 38, 0, 0, time.UTC), file.ModTime)
}

func TestWindowsParser_MaterializeFile(t *testing.T) {
	parser := NewWindowsParser()

	file := parser.Materialize("05-22-97  08:08AM               828 AUTOEXEC.BAK")
	require.NotNil(t, file)
	assert.Equal(t, "AUTOEXEC.BAK", file.Name)
	assert.Equal(t, TypeFile, file.Type)
	assert.Equal(t, int64(828), file.Size)
	assert.Equal(t, time.Date(1997, time.May, 22, 8, 8, 0, 0, time.UTC), file.ModTime)
}

func TestWindowsParser_TwoDigitYearPivot(t *testing.T) {
	parser := NewWindowsParser()

	file := parser.Materialize("01-15-24  11:39PM            512000 report.pdf")
	require.NotNil(t, file)
	assert.Equal(t, time.Date(2024, time.January, 15, 23, 39, 0, 0, time.UTC), file.ModTime)
}

func TestWindowsParser_MidnightAndNoon(t *testing.T) {
	parser := NewWindowsParser()

	file := parser.Materialize("03-01-05  12:05AM               100 early.txt")
	require.NotNil(t, file)
	assert.Equal(t, 0, file.ModTime.Hour())

	file = parser.Materialize("03-01-05  12:05PM               100 noon.txt")
	require.NotNil(t, file)
	assert.Equal(t, 12, file.ModTime.Hour())
}

func TestWindowsParser_MaterializeNonEntry(t *testing.T) {
	parser := NewWindowsParser()

	assert.Nil(t, parser.Materialize(" Volume in drive C has no label"))
	assert.Nil(t, parser.Materialize("              4 File(s)        523,456 bytes"))
}

func TestWindowsParser_CleanupDropsBlankLines(t *testing.T) {
	parser := NewWindowsParser()

	cleaned := parser.Cleanup([]string{
		"",
		"05-22-97  08:08AM               828 AUTOEXEC.BAK",
		"   ",
	})
	require.Len(t, cleaned, 1)
}
