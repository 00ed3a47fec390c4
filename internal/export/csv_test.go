package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVEmptyIsRejected(t *testing.T) {
	body, err := CSV(nil)
	assert.ErrorIs(t, err, ErrEmptyExport)
	assert.Nil(t, body)

	body, err = CSV([]Record{})
	assert.ErrorIs(t, err, ErrEmptyExport)
	assert.Nil(t, body)
}

func TestCSVRoundTrip(t *testing.T) {
	records := []Record{
		{{"SKU", "HP-001"}, {"Name", "Aurora Headphones"}, {"In Stock", "42"}},
		{{"SKU", "SP-002"}, {"Name", `Speaker, "Mini"`}, {"In Stock", "7"}},
	}

	body, err := CSV(records)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"SKU", "Name", "In Stock"}, rows[0])
	assert.Equal(t, []string{"HP-001", "Aurora Headphones", "42"}, rows[1])
	// commas and quotes in values survive the trip
	assert.Equal(t, []string{"SP-002", `Speaker, "Mini"`, "7"}, rows[2])
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "inventory.csv", Filename("inventory"))
}
