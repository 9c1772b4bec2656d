package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/gomoku/pkg/board"
)

func TestNewBoardIsEmpty(t *testing.T) {
	for size := board.MinSize; size <= board.MaxSize; size++ {
		b := board.New(size)
		require.Equal(t, size, b.Size())

		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				if b.At(row, col) != board.Empty {
					t.Fatalf("size %d: cell (%d, %d) is %v", size, row, col, b.At(row, col))
				}
			}
		}

		_, placed := b.Last()
		assert.False(t, placed)
	}
}

func TestNewInvalidSize(t *testing.T) {
	assert.Panics(t, func() { board.New(0) })
	assert.Panics(t, func() { board.New(board.MaxSize + 1) })
}

func TestPlace(t *testing.T) {
	b := board.New(16)
	b.Place(3, 7, board.PlayerTwo)

	assert.Equal(t, board.PlayerTwo, b.At(3, 7))

	last, placed := b.Last()
	assert.True(t, placed)
	assert.Equal(t, board.Point{Row: 3, Col: 7}, last)

	for row := 0; row < 16; row++ {
		for col := 0; col < 16; col++ {
			if row == 3 && col == 7 {
				continue
			}
			assert.Equal(t, board.Empty, b.At(row, col))
		}
	}

	// occupancy is not checked by the board
	b.Place(3, 7, board.PlayerOne)
	assert.Equal(t, board.PlayerOne, b.At(3, 7))
}

func TestPlaceOutOfBounds(t *testing.T) {
	b := board.New(16)
	assert.Panics(t, func() { b.Place(16, 0, board.PlayerOne) })
	assert.Panics(t, func() { b.Place(0, -1, board.PlayerOne) })
	assert.Panics(t, func() { b.At(0, 16) })
}

func TestCheckWin(t *testing.T) {
	tests := []struct {
		name   string
		stones []board.Point // placed in order, last one is the anchor
		winner board.Cell
		won    bool
	}{
		{
			name:   "horizontal",
			stones: []board.Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}},
			winner: board.PlayerOne, won: true,
		},
		{
			name:   "vertical",
			stones: []board.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}},
			winner: board.PlayerOne, won: true,
		},
		{
			name:   "diagonal \\",
			stones: []board.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}},
			winner: board.PlayerOne, won: true,
		},
		{
			name:   "diagonal /",
			stones: []board.Point{{0, 4}, {1, 3}, {2, 2}, {3, 1}, {4, 0}},
			winner: board.PlayerOne, won: true,
		},
		{
			name:   "anchor in the middle",
			stones: []board.Point{{7, 5}, {7, 6}, {7, 8}, {7, 9}, {7, 7}},
			winner: board.PlayerOne, won: true,
		},
		{
			name:   "overline",
			stones: []board.Point{{5, 5}, {6, 5}, {7, 5}, {9, 5}, {10, 5}, {8, 5}},
			winner: board.PlayerOne, won: true,
		},
		{
			name:   "bottom right edge",
			stones: []board.Point{{15, 11}, {15, 12}, {15, 13}, {15, 14}, {15, 15}},
			winner: board.PlayerOne, won: true,
		},
		{
			name:   "four in a row",
			stones: []board.Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		},
		{
			name:   "four in a row anchored in the middle",
			stones: []board.Point{{4, 4}, {4, 6}, {4, 7}, {4, 5}},
		},
		{
			name:   "broken line",
			stones: []board.Point{{2, 0}, {2, 1}, {2, 3}, {2, 4}, {2, 5}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := board.New(16)
			for _, p := range test.stones {
				b.Place(p.Row, p.Col, board.PlayerOne)
			}

			winner, won := b.CheckWin()
			assert.Equal(t, test.won, won)
			assert.Equal(t, test.winner, winner)
		})
	}
}

func TestCheckWinAnchorNotInRun(t *testing.T) {
	b := board.New(16)

	// a complete line for player one exists elsewhere on the board
	for col := 0; col < 5; col++ {
		b.Place(0, col, board.PlayerOne)
	}

	// an isolated player two stone surrounded by player one stones
	for _, p := range []board.Point{
		{7, 7}, {7, 9}, {9, 7}, {9, 9}, {7, 8}, {9, 8}, {8, 7}, {8, 9},
	} {
		b.Place(p.Row, p.Col, board.PlayerOne)
	}
	b.Place(8, 8, board.PlayerTwo)

	winner, won := b.CheckWin()
	assert.False(t, won)
	assert.Equal(t, board.Empty, winner)
}

func TestCheckWinWithoutPlacement(t *testing.T) {
	winner, won := board.New(16).CheckWin()
	assert.False(t, won)
	assert.Equal(t, board.Empty, winner)
}

func TestCheckWinPlayerTwo(t *testing.T) {
	b := board.New(20)
	for i := 0; i < 5; i++ {
		b.Place(10+i, 19-i, board.PlayerTwo)
	}

	winner, won := b.CheckWin()
	assert.True(t, won)
	assert.Equal(t, board.PlayerTwo, winner)
}

func TestFull(t *testing.T) {
	b := board.New(16)
	assert.False(t, b.Full())

	for row := 0; row < 16; row++ {
		for col := 0; col < 16; col++ {
			b.Place(row, col, board.PlayerOne)
		}
	}
	assert.True(t, b.Full())
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		size  int
		fails bool
	}{
		{input: "16", size: 16},
		{input: " 62\n", size: 62},
		{input: "30\r\n", size: 30},
		{input: "15", fails: true},
		{input: "63", fails: true},
		{input: "-20", fails: true},
		{input: "twenty", fails: true},
		{input: "", fails: true},
	}

	for _, test := range tests {
		size, err := board.ParseSize(test.input)
		if test.fails {
			assert.Error(t, err, "input %q", test.input)
			continue
		}

		require.NoError(t, err, "input %q", test.input)
		assert.Equal(t, test.size, size)
	}
}

func TestLabels(t *testing.T) {
	require.Len(t, board.Labels, 62)
	assert.Equal(t, byte('0'), board.Label(0))
	assert.Equal(t, byte('a'), board.Label(10))
	assert.Equal(t, byte('Z'), board.Label(61))

	for i := 0; i < board.MaxSize; i++ {
		index, found := board.LabelIndex(board.Label(i))
		assert.True(t, found)
		assert.Equal(t, i, index)
	}

	_, found := board.LabelIndex('#')
	assert.False(t, found)
}

func TestParsePoint(t *testing.T) {
	p, err := board.ParsePoint("7a", 16)
	require.NoError(t, err)
	assert.Equal(t, board.Point{Row: 7, Col: 10}, p)
	assert.Equal(t, "7a", p.String())

	p, err = board.ParsePoint(" f 0 ", 16)
	require.NoError(t, err)
	assert.Equal(t, board.Point{Row: 15, Col: 0}, p)

	_, err = board.ParsePoint("g0", 16) // row 16 does not exist
	assert.Error(t, err)

	_, err = board.ParsePoint("7", 16)
	assert.Error(t, err)

	_, err = board.ParsePoint("7a1", 16)
	assert.Error(t, err)

	_, err = board.ParsePoint("#1", 16)
	assert.Error(t, err)
}

func TestCellOther(t *testing.T) {
	assert.Equal(t, board.PlayerTwo, board.PlayerOne.Other())
	assert.Equal(t, board.PlayerOne, board.PlayerTwo.Other())
	assert.Equal(t, board.Empty, board.Empty.Other())
}
