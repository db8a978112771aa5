package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextWidthCountsCharacters(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, textWidth(""))
	assert.Equal(t, 5, textWidth("héllo"))
	// Wide characters count once; display width is not considered.
	assert.Equal(t, 2, textWidth("你好"))
}

func TestPadRight(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcd", padRight("abcd", 2))
	assert.Equal(t, "é ", padRight("é", 2))
}

func TestComputeWidths(t *testing.T) {
	t.Parallel()
	rows := []Row{
		{Str("Name"), Str("Age")},
		{Str("Ana"), Num(25)},
	}
	assert.Equal(t, []int{4, 3}, computeWidths(rows, 2, nil))
	assert.Equal(t, []int{10, 3}, computeWidths(rows, 2, columnWidths{0: 10, 1: 1}))
	assert.Equal(t, []int{4, 3, 0}, computeWidths(rows, 3, nil))
}

func TestColumnWidthsSet(t *testing.T) {
	t.Parallel()
	var m columnWidths
	m = m.set(0, 5)
	m = m.set(1, -2)
	assert.Equal(t, columnWidths{0: 5, 1: 0}, m)
}

func TestQuoteCSV(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `""`, quoteCSV(""))
	assert.Equal(t, `"a""b"`, quoteCSV(`a"b`))
	assert.Equal(t, `""""""`, quoteCSV(`""`))
}

// Append keeps rows uniform; these tests cover renderers given ragged rows.

func TestMarkdownRaggedRows(t *testing.T) {
	t.Parallel()
	m := NewMarkdown()
	m.rows = []Row{{Str("a"), Str("b")}, {Str("c")}}
	out, err := m.Build()
	assert.NoError(t, err)
	assert.Equal(t, "| a | b |\n| - | - |\n| c |   |", out)
}

func TestTextRaggedRows(t *testing.T) {
	t.Parallel()
	txt := NewText()
	txt.rows = []Row{{Str("a"), Str("bb")}, {Str("ccc")}}
	out, err := txt.Build()
	assert.NoError(t, err)
	assert.Equal(t, "a   bb\nccc", out)
	assert.Equal(t, 2, txt.columnCount())
}

func TestChanToSeqStopsEarly(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	var got []int
	for v := range chanToSeq(ch) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Len(t, ch, 1)
}
