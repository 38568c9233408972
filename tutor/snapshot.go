package tutor

import (
	"database/sql"
	"fmt"
	"sort"
	"strconv"
)

// Snapshot is an in-memory tabular value: ordered rows with named columns,
// produced either by reading a whole table or by executing a query.
type Snapshot struct {
	Columns []string
	Rows    [][]any
}

// DedupeColumns renames repeated column names by appending a numeric
// suffix, preserving the first occurrence unchanged and numbering later
// occurrences in order of appearance: x, x, x becomes x, x_1, x_2.
func DedupeColumns(columns []string) []string {
	seen := make(map[string]bool, len(columns))
	out := make([]string, 0, len(columns))
	for _, col := range columns {
		name := col
		for n := 1; seen[name]; n++ {
			name = fmt.Sprintf("%s_%d", col, n)
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// ReadSnapshot drains a result set into a snapshot. Column names are taken
// exactly as the driver reports them, then de-duplicated. Values are
// normalized so that snapshots from separate executions compare by value.
func ReadSnapshot(rows *sql.Rows) (*Snapshot, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Columns: DedupeColumns(columns)}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range values {
			values[i] = normalizeValue(v)
		}
		snap.Rows = append(snap.Rows, values)
	}
	return snap, rows.Err()
}

// normalizeValue collapses driver-specific representations into a small set
// of comparable types
func normalizeValue(value any) any {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	case float32:
		return float64(v)
	default:
		return v
	}
}

// Equal reports whether two snapshots have identical shape (same columns in
// the same order, same row count) and identical values at every position,
// including row order.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if len(s.Columns) != len(other.Columns) || len(s.Rows) != len(other.Rows) {
		return false
	}
	for i := range s.Columns {
		if s.Columns[i] != other.Columns[i] {
			return false
		}
	}
	for i := range s.Rows {
		if len(s.Rows[i]) != len(other.Rows[i]) {
			return false
		}
		for j := range s.Rows[i] {
			if compareValues(s.Rows[i][j], other.Rows[i][j]) != 0 {
				return false
			}
		}
	}
	return true
}

// Sort orders the rows by the snapshot's own full column list, ascending,
// using natural value ordering. Row positions afterwards are canonical, so
// two sorted snapshots compare independent of their original row order.
func (s *Snapshot) Sort() {
	sort.SliceStable(s.Rows, func(a, b int) bool {
		left, right := s.Rows[a], s.Rows[b]
		for i := range s.Columns {
			if i >= len(left) || i >= len(right) {
				break
			}
			if c := compareValues(left[i], right[i]); c != 0 {
				return c < 0
			}
		}
		return false
	})
}

// compareValues compares two values and returns -1, 0, or 1. NULL sorts
// first, numeric comparison is tried before falling back to strings.
func compareValues(left, right any) int {
	if left == nil && right == nil {
		return 0
	}
	if left == nil {
		return -1
	}
	if right == nil {
		return 1
	}

	leftStr := fmt.Sprintf("%v", left)
	rightStr := fmt.Sprintf("%v", right)

	if leftNum, err1 := strconv.ParseFloat(leftStr, 64); err1 == nil {
		if rightNum, err2 := strconv.ParseFloat(rightStr, 64); err2 == nil {
			if leftNum < rightNum {
				return -1
			} else if leftNum > rightNum {
				return 1
			}
			return 0
		}
	}

	if leftStr < rightStr {
		return -1
	} else if leftStr > rightStr {
		return 1
	}
	return 0
}
