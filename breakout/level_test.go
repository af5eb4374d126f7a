package breakout_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/plus3/brickfall/breakout"
)

func formatLayout(layout []breakout.Transform) string {
	lines := make([]string, len(layout))
	for i, b := range layout {
		lines[i] = fmt.Sprintf("%g %g %g %g", b.X, b.Y, b.W, b.H)
	}
	return strings.Join(lines, "\n")
}

func TestLayoutsMatchGolden(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/layouts.txtar")
	require.NoError(t, err)

	layouts := map[string][]breakout.Transform{
		"initial": breakout.InitialLayout(),
		"level2":  breakout.LevelLayout(2),
		"level3":  breakout.LevelLayout(3),
	}
	require.Len(t, archive.Files, len(layouts))

	for _, file := range archive.Files {
		t.Run(file.Name, func(t *testing.T) {
			layout, ok := layouts[file.Name]
			require.True(t, ok, "unexpected golden file %s", file.Name)
			assert.Equal(t, strings.TrimSpace(string(file.Data)), formatLayout(layout))
		})
	}
}

func TestGridCorners(t *testing.T) {
	layout := breakout.InitialLayout()
	require.Len(t, layout, 3*11)

	assert.Equal(t, breakout.Transform{X: 50, Y: 15, W: 60, H: 20}, layout[0])
	assert.Equal(t, breakout.Transform{X: 700, Y: 15, W: 60, H: 20}, layout[10])
	assert.Equal(t, breakout.Transform{X: 50, Y: 40, W: 60, H: 20}, layout[11])
}

func TestRowsForLevel(t *testing.T) {
	assert.Equal(t, 4, breakout.RowsForLevel(1))
	assert.Equal(t, 5, breakout.RowsForLevel(2))
	assert.Len(t, breakout.LevelLayout(4), 7*11)
	assert.Empty(t, breakout.GridLayout(0))
}
