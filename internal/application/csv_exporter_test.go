package application

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	service := newTestService(t)
	ingestFixture(t, service)

	var buf bytes.Buffer
	err := service.ExportCSV(context.Background(), &buf, ListQuery{})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, csvHeader, records[0])

	// rows arrive priority-sorted, expired TikTok order first
	first := records[1]
	assert.Equal(t, "ORD-EXPIRED", first[0])
	assert.Equal(t, "Le Hoang Cuong", first[1])
	assert.Equal(t, "tiktok", first[2])
	assert.Equal(t, "J&T Express", first[3])
	assert.Equal(t, "800000", first[4])
	assert.Equal(t, "0 phút", first[5])
}

func TestExportCSVHonorsFilters(t *testing.T) {
	service := newTestService(t)
	ingestFixture(t, service)

	var buf bytes.Buffer
	err := service.ExportCSV(context.Background(), &buf, ListQuery{Platform: "shopee"})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ORD-SAFE", records[1][0])
}
