package summary

import (
	"testing"

	"github.com/spendwell/spendwell/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvRendererImpl_Render(t *testing.T) {
	// given
	renderer := NewCsvRenderer()
	summary := Summary{
		TotalAmount:       3500,
		TotalCount:        3,
		AveragePerExpense: 11.666666666666666,
		CategoryBreakdown: map[string]money.Amount{
			"Transport": 500,
			"Food":      3000,
		},
		MonthlyBreakdown: map[string]money.Amount{
			"2024-02": 500,
			"2024-01": 3000,
		},
	}

	// when
	csv, err := renderer.Render(summary)

	// then
	require.NoError(t, err)
	expected := "Total,35.00\n" +
		"Count,3\n" +
		"Average,11.67\n" +
		"Category,Amount\n" +
		"Food,30.00\n" +
		"Transport,5.00\n" +
		"Month,Amount\n" +
		"2024-01,30.00\n" +
		"2024-02,5.00\n"
	assert.Equal(t, expected, csv)
}

func TestCsvRendererImpl_Render_Empty(t *testing.T) {
	// given
	renderer := NewCsvRenderer()

	// when
	csv, err := renderer.Render(Summary{})

	// then
	require.NoError(t, err)
	expected := "Total,0.00\n" +
		"Count,0\n" +
		"Average,0.00\n" +
		"Category,Amount\n" +
		"Month,Amount\n"
	assert.Equal(t, expected, csv)
}
