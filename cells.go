package tabula

import "fmt"

// Stringify converts a grid of arbitrary values into cells. Values that
// implement [fmt.Stringer] use their String method; everything else is
// formatted with %v.
func Stringify[T any](rows [][]T) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, item := range row {
			if str, ok := any(item).(fmt.Stringer); ok {
				out[i][j] = str.String()
			} else {
				out[i][j] = fmt.Sprintf("%v", item)
			}
		}
	}
	return out
}
