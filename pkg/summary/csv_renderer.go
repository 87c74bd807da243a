package summary

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
)

type Renderer interface {
	Render(summary Summary) (string, error)
}

type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

// Render writes the summary as CSV: the three headline figures first, then
// the category breakdown sorted by name, then the monthly breakdown in
// chronological order.
func (r *CsvRendererImpl) Render(summary Summary) (string, error) {
	data := make([][]string, 0, 5+len(summary.CategoryBreakdown)+len(summary.MonthlyBreakdown))
	data = append(data,
		[]string{"Total", summary.TotalAmount.String()},
		[]string{"Count", fmt.Sprintf("%d", summary.TotalCount)},
		[]string{"Average", fmt.Sprintf("%.2f", summary.AveragePerExpense)},
	)

	categories := make([]string, 0, len(summary.CategoryBreakdown))
	for name := range summary.CategoryBreakdown {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	data = append(data, []string{"Category", "Amount"})
	for _, name := range categories {
		data = append(data, []string{name, summary.CategoryBreakdown[name].String()})
	}

	// "YYYY-MM" keys sort chronologically as strings
	months := make([]string, 0, len(summary.MonthlyBreakdown))
	for key := range summary.MonthlyBreakdown {
		months = append(months, key)
	}
	sort.Strings(months)
	data = append(data, []string{"Month", "Amount"})
	for _, key := range months {
		data = append(data, []string{key, summary.MonthlyBreakdown[key].String()})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
