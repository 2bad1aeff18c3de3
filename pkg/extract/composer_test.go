package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeRow_EmptyAnswers(t *testing.T) {
	row := ComposeRow(map[FieldKey]string{})

	require.Len(t, row, ColumnCount)
	for i, cell := range row {
		assert.Equal(t, "", cell, "column %d should be empty", i)
	}
}

func TestComposeRow_NilAnswers(t *testing.T) {
	row := ComposeRow(nil)

	require.Len(t, row, ColumnCount)
	for _, cell := range row {
		assert.Equal(t, "", cell)
	}
}

func TestComposeRow_FullAnswers(t *testing.T) {
	answers := map[FieldKey]string{
		KeyFounder1:    "Jane Doe, CEO",
		KeyFounder2:    "John Roe, CTO",
		KeyFounder3:    "None",
		KeyCompanyName: "Acme Robotics",
		KeyIdeaSummary: "Autonomous warehouse robots",
		KeyIndustry:    "Logistics",
		KeyAsk:         "$2M",
		KeyCompetitors: "Fetch Robotics, Locus Robotics",
	}

	row := ComposeRow(answers)

	require.Len(t, row, ColumnCount)
	assert.Equal(t, "Jane Doe, CEO", row[0])
	assert.Equal(t, "John Roe, CTO", row[1])
	assert.Equal(t, "None", row[2], "sentinel answers pass through unchanged")
	assert.Equal(t, "Acme Robotics", row[3])
	assert.Equal(t, "Autonomous warehouse robots", row[4])
	assert.Equal(t, "Logistics", row[5])
	assert.Equal(t, "$2M", row[6])

	// Valuation, Previous Rounds, Revenue/Traction and Email have no
	// question feeding them.
	for i := 7; i < ColumnCount; i++ {
		assert.Equal(t, "", row[i], "column %d has no question key", i)
	}
}

func TestComposeRow_PartialAnswers(t *testing.T) {
	answers := map[FieldKey]string{
		KeyCompanyName: "Acme Robotics",
	}

	row := ComposeRow(answers)

	assert.Equal(t, "Acme Robotics", row[3])
	for i, cell := range row {
		if i == 3 {
			continue
		}
		assert.Equal(t, "", cell)
	}
}

func TestComposeRow_DoesNotMutateInput(t *testing.T) {
	answers := map[FieldKey]string{KeyAsk: "$1M"}

	ComposeRow(answers)
	ComposeRow(answers)

	require.Len(t, answers, 1)
	assert.Equal(t, "$1M", answers[KeyAsk])
}

func TestComposeRow_CompetitorsHaveNoColumn(t *testing.T) {
	answers := map[FieldKey]string{KeyCompetitors: "Globex, Initech"}

	row := ComposeRow(answers)

	for _, cell := range row {
		assert.NotEqual(t, "Globex, Initech", cell)
	}
}

func TestColumns_Layout(t *testing.T) {
	cols := Columns()

	require.Len(t, cols, ColumnCount)
	assert.Equal(t, "Founder Name 1", cols[0].Name)
	assert.Equal(t, "Email", cols[10].Name)

	unmapped := 0
	for _, col := range cols {
		if col.Key == "" {
			unmapped++
		}
	}
	assert.Equal(t, 4, unmapped)
}
