/*package catalog reads and writes the whitespace-separated text columns that
avo modes pass to one another through stdin and stdout.*/
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// CommentString returns a header line labeling each column with its index,
// e.g. "# Column contents: Theta(0) Shuey(1)".
func CommentString(names []string) string {
	tokens := []string{"# Column contents:"}
	for i := range names {
		tokens = append(tokens, fmt.Sprintf("%s(%d)", names[i], i))
	}
	return strings.Join(tokens, " ")
}

// FormatCols formats equal-height float columns into right-aligned rows.
func FormatCols(cols [][]float64) []string {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return []string{}
	}

	height := len(cols[0])
	formatted := make([][]string, len(cols))
	for i := range cols {
		if len(cols[i]) != height {
			panic("Columns of unequal height.")
		}
		formatted[i] = formatFloatCol(cols[i])
	}

	lines := make([]string, height)
	tokens := make([]string, len(cols))
	for i := 0; i < height; i++ {
		for j := range formatted {
			tokens[j] = formatted[j][i]
		}
		lines[i] = strings.Join(tokens, " ")
	}

	return lines
}

func formatFloatCol(col []float64) []string {
	width := 0
	for i := range col {
		if n := len(fmt.Sprintf("%.6g", col[i])); n > width {
			width = n
		}
	}

	out := make([]string, len(col))
	for i := range col {
		out[i] = fmt.Sprintf("%*.6g", width, col[i])
	}
	return out
}

// ParseCols parses the requested columns out of text lines. Comments start
// with '#' and blank lines are skipped. Every data line must have the same
// number of columns.
func ParseCols(lines []string, colIdxs []int) ([][]float64, error) {
	cols := make([][]float64, len(colIdxs))
	for i := range cols {
		cols[i] = []float64{}
	}

	width := -1
	for i, line := range lines {
		if comment := strings.IndexByte(line, '#'); comment != -1 {
			line = line[:comment]
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		if width == -1 {
			width = len(words)
		} else if len(words) != width {
			return nil, fmt.Errorf(
				"Line %d has %d columns, not %d.", i+1, len(words), width,
			)
		}

		for j, idx := range colIdxs {
			if idx >= width {
				return nil, fmt.Errorf(
					"I was asked to read column %d, but line %d only has "+
						"%d columns.", idx, i+1, width,
				)
			}
			x, err := strconv.ParseFloat(words[idx], 64)
			if err != nil {
				return nil, fmt.Errorf(
					"I could not parse column %d of line %d, '%s', as a "+
						"number.", idx, i+1, words[idx],
				)
			}
			cols[j] = append(cols[j], x)
		}
	}

	return cols, nil
}
