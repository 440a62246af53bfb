package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwhitfield/billscan/constants"
	"github.com/cwhitfield/billscan/internal/bill"
)

func strp(s string) *string { return &s }

func TestSortByPeriodStart(t *testing.T) {
	t.Run("most recent first, unparseable and absent last", func(t *testing.T) {
		records := []bill.Record{
			{Filename: "old.jpg", StartDate: strp("12th May 2025")},
			{Filename: "none.jpg"},
			{Filename: "new.jpg", StartDate: strp("24th May 2025")},
			{Filename: "garbled.jpg", StartDate: strp("??th Smarch")},
		}

		sorted := SortByPeriodStart(records)
		require.Len(t, sorted, 4)
		assert.Equal(t, "new.jpg", sorted[0].Filename)
		assert.Equal(t, "old.jpg", sorted[1].Filename)
		// unparseable/absent keep their input order at the back
		assert.Equal(t, "none.jpg", sorted[2].Filename)
		assert.Equal(t, "garbled.jpg", sorted[3].Filename)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		records := []bill.Record{
			{Filename: "a.jpg", StartDate: strp("1st Jan 2025")},
			{Filename: "b.jpg", StartDate: strp("1st Feb 2025")},
		}

		_ = SortByPeriodStart(records)
		assert.Equal(t, "a.jpg", records[0].Filename)
	})
}

func TestSummaryRows(t *testing.T) {
	t.Run("total and fifty percent split", func(t *testing.T) {
		records := []bill.Record{
			{Filename: "a.jpg", Amount: strp("10.00")},
			{Filename: "b.jpg", Amount: strp("20.00")},
			{Filename: "c.jpg", Amount: strp("30.00")},
		}

		rows := SummaryRows(records)
		require.Len(t, rows, 2)
		assert.Equal(t, TotalLabel, rows[0].Filename)
		require.NotNil(t, rows[0].Amount)
		assert.Equal(t, "60.00", *rows[0].Amount)
		assert.Equal(t, SplitLabel, rows[1].Filename)
		require.NotNil(t, rows[1].Amount)
		assert.Equal(t, "30.00", *rows[1].Amount)
	})

	t.Run("absence never coerces to zero", func(t *testing.T) {
		records := []bill.Record{
			{Filename: "a.jpg", Amount: strp("10.50")},
			{Filename: "b.jpg"}, // no amount extracted
		}

		rows := SummaryRows(records)
		require.Len(t, rows, 2)
		assert.Equal(t, "10.50", *rows[0].Amount)
		assert.Equal(t, "5.25", *rows[1].Amount)
	})

	t.Run("unparseable amounts are skipped", func(t *testing.T) {
		records := []bill.Record{
			{Filename: "a.jpg", Amount: strp("10.00")},
			{Filename: "b.jpg", Amount: strp("not-a-number")},
		}

		rows := SummaryRows(records)
		require.Len(t, rows, 2)
		assert.Equal(t, "10.00", *rows[0].Amount)
		assert.Equal(t, "5.00", *rows[1].Amount)
	})

	t.Run("no numeric amounts means no summary", func(t *testing.T) {
		records := []bill.Record{
			{Filename: "a.jpg"},
			{Filename: "b.jpg"},
		}
		assert.Nil(t, SummaryRows(records))
	})

	t.Run("summary rows leave other fields blank", func(t *testing.T) {
		rows := SummaryRows([]bill.Record{{Filename: "a.jpg", Amount: strp("1.00")}})
		require.Len(t, rows, 2)
		assert.Nil(t, rows[0].Date)
		assert.Empty(t, rows[0].Fingerprint)
		assert.Empty(t, string(rows[0].Type))
	})
}

func TestWriteBillsCSV(t *testing.T) {
	records := []bill.Record{
		{
			Filename:    "a.jpg",
			Date:        strp("12 May 2025"),
			Amount:      strp("50.00"),
			Type:        constants.Gas,
			Fingerprint: "f1",
		},
		{Filename: "Total", Amount: strp("50.00")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBillsCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, billHeader, rows[0])
	assert.Equal(t, "a.jpg", rows[1][0])
	assert.Equal(t, "12 May 2025", rows[1][1])
	assert.Equal(t, "50.00", rows[1][5])
	assert.Equal(t, "Gas", rows[1][6])
	assert.Equal(t, "f1", rows[1][10])
	// absent fields render blank
	assert.Equal(t, "", rows[1][2])
	assert.Equal(t, "", rows[2][1])
	assert.Equal(t, "Total", rows[2][0])
}

func TestWriteDuplicatesCSV(t *testing.T) {
	groups := []bill.DuplicateGroup{
		{
			Filenames:   []string{"a.jpg", "b.jpg"},
			MatchType:   constants.ExactContentMatch,
			Fingerprint: "f1",
		},
		{
			Filenames: []string{"c.jpg", "d.jpg"},
			MatchType: constants.SameDateAmountType,
			Date:      "12 May 2025",
			Amount:    "50.00",
			Type:      constants.Gas,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDuplicatesCSV(&buf, groups))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, duplicateHeader, rows[0])
	assert.Equal(t, "a.jpg; b.jpg", rows[1][0])
	assert.Equal(t, "Exact content match", rows[1][1])
	assert.Equal(t, "f1", rows[1][2])
	assert.Equal(t, "c.jpg; d.jpg", rows[2][0])
	assert.Equal(t, "Same date, amount and type", rows[2][1])
	assert.Equal(t, "12 May 2025", rows[2][3])
	assert.Equal(t, "50.00", rows[2][4])
	assert.Equal(t, "Gas", rows[2][5])
}

func TestBillsXLSX(t *testing.T) {
	records := []bill.Record{
		{Filename: "a.jpg", Amount: strp("50.00"), Type: constants.Gas, Fingerprint: "f1"},
	}
	groups := []bill.DuplicateGroup{
		{Filenames: []string{"a.jpg", "b.jpg"}, MatchType: constants.ExactContentMatch, Fingerprint: "f1"},
	}

	data, err := BillsXLSX(records, groups)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
