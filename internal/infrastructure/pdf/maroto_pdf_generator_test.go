package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain/maintenance"
)

func TestLostTimeRenderer_Render(t *testing.T) {
	r := NewLostTimeRenderer("Planta Norte")
	assert.Equal(t, "pdf", r.Format())
	assert.Equal(t, "application/pdf", r.ContentType())

	report := &dto.LostTimeReport{
		Floors:            []string{"floor-1"},
		TotalLostTime:     maintenance.Duration(45 * time.Minute),
		TotalMachineCount: 3,
		SummaryByMachineID: []dto.MachineSummary{
			{ID: dto.NullString("m-1"), MachineID: dto.NullString("M-01"), Status: dto.NullString("broken"), BreakdownsCount: 2,
				LostTime: maintenance.Duration(45 * time.Minute)},
		},
		SummaryByDay: []dto.DaySummary{
			{Date: "2026-10-01", BreakdownsCount: 2, LostTime: maintenance.Duration(45 * time.Minute)},
		},
	}

	data, err := r.Render(report, time.Date(2026, 10, 2, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestSummaryTables_ColumnasSuman12(t *testing.T) {
	for _, tb := range summaryTables(&dto.LostTimeReport{}) {
		total := 0
		for _, s := range tb.sizes {
			total += s
		}
		assert.Equal(t, 12, total, tb.title)
		assert.Len(t, tb.sizes, len(tb.headers), tb.title)
	}
}

func TestJoinOrAll(t *testing.T) {
	assert.Equal(t, "todos", joinOrAll(nil))
	assert.Equal(t, "a, b", joinOrAll([]string{"a", "b"}))
}
