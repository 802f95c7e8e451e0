package dirtree

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/warp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	tests := []struct {
		levels   []int
		expected []string
	}{
		{[]int{1}, []string{"x"}},
		{[]int{1, 2, 3, 2}, []string{
			"x",
			"├─ x",
			"│  └─ x",
			"└─ x",
		}},
		{[]int{1, 2, 3, 4, 3, 3, 4, 2, 3, 2}, []string{
			"x",
			"├─ x",
			"│  ├─ x",
			"│  │  └─ x",
			"│  ├─ x",
			"│  └─ x",
			"│     └─ x",
			"├─ x",
			"│  └─ x",
			"└─ x",
		}},
		{[]int{1, 2, 1, 2}, []string{
			"x",
			"└─ x",
			"x",
			"└─ x",
		}},
		{[]int{1, 2, 2, 3, 1}, []string{
			"x",
			"├─ x",
			"└─ x",
			"   └─ x",
			"x",
		}},
	}
	for _, test := range tests {
		drawing := Render(test.levels, 'x')
		if diff := cmp.Diff(strings.Join(test.expected, "\n"), drawing); diff != "" {
			t.Errorf("tree %v mismatch (-want +got):\n%s", test.levels, diff)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	levels := []int{1, 2, 3, 3, 2, 3, 4, 2}
	assert.Equal(t, Render(levels, 'x'), Render(levels, 'x'))
}

func TestRenderWithMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	assert.Equal(t, "•\n├─ •\n└─ •", Render([]int{1, 2, 2}, '•'))
}

func TestParseAndRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "warp.engine")
	defer teardown()
	//
	out, err := ParseAndRender("1,2,3,2", 'x')
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "<!-- command: 1,2,3,2 -->", lines[0])
	assert.Equal(t, "│  └─ x", lines[3])
	//
	for _, arg := range []string{"2", "2,3,4", "2,1", "0,1"} {
		_, err = ParseAndRender(arg, 'x')
		assert.Error(t, err, arg)
		assert.Equal(t, core.ERANGE, core.Code(err), arg)
	}
	_, err = ParseAndRender("1,a", 'x')
	assert.Equal(t, core.ENOTPOSINT, core.Code(err))
}
