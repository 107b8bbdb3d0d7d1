package render

import (
	"strings"
	"testing"

	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/curvedit/points"
	"github.com/npillmayer/curvedit/shape"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScene(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := points.NewStore()
	s.AddPoint(0, 0)
	s.AddPoint(100, 0)
	sc := NewScene(shape.Generate(s.Pairs(), curvedit.Cubic), s.Points(), 4, 2)
	assert.Equal(t, "M 0,0 C 33.33,0 66.67,0 100,0", sc.Path)
	require.Len(t, sc.Handles, 2)
	assert.Equal(t, curvedit.P(100, 0), sc.Handles[1].Center)
	assert.Equal(t, 4.0, sc.Handles[1].Radius)
}

func TestHandleAtPrefersTopMost(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := Scene{Handles: []Handle{
		{ID: 1, Center: curvedit.P(10, 10), Radius: 4},
		{ID: 2, Center: curvedit.P(13, 10), Radius: 4},
	}}
	h, ok := sc.HandleAt(curvedit.P(11, 10))
	require.True(t, ok)
	assert.Equal(t, points.ID(2), h.ID)
	h, ok = sc.HandleAt(curvedit.P(6, 10))
	require.True(t, ok)
	assert.Equal(t, points.ID(1), h.ID)
	_, ok = sc.HandleAt(curvedit.P(50, 50))
	assert.False(t, ok)
}

func TestWriteSVG(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := Scene{
		Path:    "M 0,0 Q 50,-50 100,0",
		Handles: []Handle{{ID: 7, Center: curvedit.P(0.5, -2), Radius: 4}},
	}
	var sb strings.Builder
	require.NoError(t, sc.WriteSVG(&sb))
	want := `<path d="M 0,0 Q 50,-50 100,0" fill="none" stroke="red" stroke-width="1"/>` + "\n" +
		`<circle data-point="7" cx="0.5" cy="-2" r="4" fill="blue"/>` + "\n"
	assert.Equal(t, want, sb.String())
}

func TestEmptyScene(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := NewScene(nil, nil, 4, 2)
	var sb strings.Builder
	require.NoError(t, sc.WriteSVG(&sb))
	assert.Equal(t, `<path d="" fill="none" stroke="red" stroke-width="1"/>`+"\n", sb.String())
}
