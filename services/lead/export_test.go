package lead_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	svc, _, _ := newSeededService(t)

	data, err := svc.ExportXLSX()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Al-Barkah"}, f.GetSheetList())

	rows, err := f.GetRows("Al-Barkah")
	require.NoError(t, err)
	// Header plus one row per seed lead.
	require.Len(t, rows, 6)

	assert.Equal(t, "Kode Booking", rows[0][0])
	assert.Equal(t, "Status Pembayaran", rows[0][6])

	// Seeds are stored newest first.
	assert.Equal(t, "ALB-K9X2P1", rows[1][0])
	assert.Equal(t, "Ahmad Subarjo", rows[1][1])
	assert.Equal(t, "2", rows[1][4])
	assert.Equal(t, "PAID", rows[1][6])
	assert.Equal(t, "DOUBLE", rows[1][9])
}
