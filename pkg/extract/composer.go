package extract

// ColumnCount is the fixed width of the output row.
const ColumnCount = 11

// Column binds a spreadsheet column to the field key that feeds it. A
// column with no key is always composed as an empty cell: Valuation,
// Previous Rounds, Revenue/Traction and Email have no question in the
// current set. The competitors question has no destination column.
type Column struct {
	Name string
	Key  FieldKey
}

var columns = [ColumnCount]Column{
	{Name: "Founder Name 1", Key: KeyFounder1},
	{Name: "Founder Name 2", Key: KeyFounder2},
	{Name: "Founder Name 3", Key: KeyFounder3},
	{Name: "Company Name", Key: KeyCompanyName},
	{Name: "Summary of Idea", Key: KeyIdeaSummary},
	{Name: "Industry/Sector", Key: KeyIndustry},
	{Name: "Ask", Key: KeyAsk},
	{Name: "Valuation"},
	{Name: "Previous Rounds"},
	{Name: "Revenue/Traction"},
	{Name: "Email"},
}

// Columns returns the fixed column layout.
func Columns() [ColumnCount]Column {
	return columns
}

// ComposeRow maps extracted answers onto the fixed row layout. Missing
// or unmapped fields become empty strings, never nulls, keeping the
// table rectangular. Pure: the input map is not modified.
func ComposeRow(answers map[FieldKey]string) []string {
	row := make([]string, ColumnCount)
	for i, col := range columns {
		if col.Key == "" {
			continue
		}
		row[i] = answers[col.Key]
	}
	return row
}
