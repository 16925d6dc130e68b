package schema

// GridSnapshot is the serializable form of a YearGrid: 7 rows (Sun..Sat)
// by one column per week, in sorted week order. Positions outside the
// year's real dates read as zero, like the grid itself.
type GridSnapshot struct {
	Year  int     `json:"year"`
	Weeks []int   `json:"weeks"`
	Rows  [][]int `json:"rows"`
	Max   int     `json:"max"`
	Total int     `json:"total"`
}

// Snapshot flattens the grid into its serializable form.
func (g *YearGrid) Snapshot() GridSnapshot {
	weeks := g.Weeks()
	rows := make([][]int, 7)
	for weekday := 0; weekday < 7; weekday++ {
		row := make([]int, len(weeks))
		for i, week := range weeks {
			row[i] = g.Value(weekday, week)
		}
		rows[weekday] = row
	}
	return GridSnapshot{
		Year:  g.Year,
		Weeks: weeks,
		Rows:  rows,
		Max:   g.Max(),
		Total: g.Total(),
	}
}
