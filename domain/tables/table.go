package tables

import (
	"fmt"

	"gobayes/domain/core"
)

// ContingencyTable is a 2x2 table of outcome counts.
// Rows are groups, columns are outcome categories; by convention the
// first column holds successes (events) and the second column failures.
// INVARIANTS:
// - All counts >= 0
// - Labels are presentation metadata only and never affect estimation
type ContingencyTable struct {
	Counts    [2][2]int `json:"counts"`
	RowLabels [2]string `json:"row_labels,omitempty"`
	ColLabels [2]string `json:"col_labels,omitempty"`
}

// New creates a validated 2x2 contingency table
func New(counts [2][2]int) (ContingencyTable, error) {
	t := ContingencyTable{Counts: counts}
	if err := t.Validate(); err != nil {
		return ContingencyTable{}, err
	}
	return t, nil
}

// NewLabeled creates a validated table with row and column labels attached
func NewLabeled(counts [2][2]int, rowLabels, colLabels [2]string) (ContingencyTable, error) {
	t, err := New(counts)
	if err != nil {
		return ContingencyTable{}, err
	}
	t.RowLabels = rowLabels
	t.ColLabels = colLabels
	return t, nil
}

// FromRows creates a table from a row-major slice, validating the 2x2 shape
func FromRows(rows [][]int) (ContingencyTable, error) {
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 2 {
		return ContingencyTable{}, core.ErrBadTableShape
	}
	return New([2][2]int{
		{rows[0][0], rows[0][1]},
		{rows[1][0], rows[1][1]},
	})
}

// Validate checks the table invariants
func (t ContingencyTable) Validate() error {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if t.Counts[i][j] < 0 {
				return fmt.Errorf("%w: cell (%d,%d) = %d", core.ErrNegativeCount, i, j, t.Counts[i][j])
			}
		}
	}
	return nil
}

// RowTotals returns the per-group totals
func (t ContingencyTable) RowTotals() [2]int {
	return [2]int{
		t.Counts[0][0] + t.Counts[0][1],
		t.Counts[1][0] + t.Counts[1][1],
	}
}

// ColTotals returns the per-outcome totals
func (t ContingencyTable) ColTotals() [2]int {
	return [2]int{
		t.Counts[0][0] + t.Counts[1][0],
		t.Counts[0][1] + t.Counts[1][1],
	}
}

// Total returns the grand total count
func (t ContingencyTable) Total() int {
	return t.Counts[0][0] + t.Counts[0][1] + t.Counts[1][0] + t.Counts[1][1]
}

// Successes returns the first-column count per group
func (t ContingencyTable) Successes() [2]int {
	return [2]int{t.Counts[0][0], t.Counts[1][0]}
}

// Trials returns the row total per group
func (t ContingencyTable) Trials() [2]int {
	return t.RowTotals()
}

// RowLabel returns the label for group i, or a positional fallback
func (t ContingencyTable) RowLabel(i int) string {
	if i >= 0 && i < 2 && t.RowLabels[i] != "" {
		return t.RowLabels[i]
	}
	return fmt.Sprintf("group_%d", i+1)
}

// ColLabel returns the label for outcome j, or a positional fallback
func (t ContingencyTable) ColLabel(j int) string {
	if j >= 0 && j < 2 && t.ColLabels[j] != "" {
		return t.ColLabels[j]
	}
	return fmt.Sprintf("outcome_%d", j+1)
}
