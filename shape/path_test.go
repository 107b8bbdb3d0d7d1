package shape

import (
	"fmt"
	"testing"

	"github.com/npillmayer/curvedit"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testpath() (*Path, *Controls) {
	path := Nullpath().Knot(curvedit.P(0, 0)).Knot(curvedit.P(100, 0)).
		Knot(curvedit.P(150, 50)).End()
	controls := path.Controls
	return path, controls
}

func TestSliceEnlargement(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	arr := make([]curvedit.Pair, 0)
	arr = extendC(arr, 3, 2+1i)
	c := arr[3]
	if c != 2+1i {
		t.Fail()
	}
	if !getC(arr, 4, curvedit.Unknown).IsUnknown() {
		t.Fail()
	}
}

func TestCreatePath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path, _ := testpath()
	if path.N() != 3 {
		t.Fail()
	}
	if path.Z(-1) != path.Z(2) || path.Z(3) != path.Z(0) {
		t.Errorf("expected knot indices to wrap around")
	}
	var none *Path
	assert.Equal(t, 0, none.N())
}

func TestPathOfCopiesKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []curvedit.Pair{curvedit.P(1, 1), curvedit.P(2, 2)}
	path := PathOf(knots)
	knots[0] = curvedit.P(9, 9)
	assert.Equal(t, curvedit.P(1, 1), path.Z(0))
}

func TestAsStringSnapshots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path, _ := testpath()
	if got, want := AsString(path, nil), "(0,0) .. (100,0) .. (150,50)"; got != want {
		t.Fatalf("skeleton AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
	controls := FindControls(path, Quadratic, nil)
	want := "(0,0) .. controls (50.0000,-50.0000)\n" +
		"  .. (100,0) .. controls (125.0000,-25.0000)\n" +
		"  .. (150,50)"
	if got := AsString(path, controls); got != want {
		t.Fatalf("quadratic AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestQuadraticControls(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path, controls := testpath()
	controls = FindControls(path, Quadratic, controls)
	c := controls.PostControl(0)
	assert.True(t, c.Equal(curvedit.P(50, -50)), "post control[0] = %v", c)
	assert.True(t, controls.PreControl(1).IsUnknown())
	c = controls.PostControl(1)
	assert.True(t, c.Equal(curvedit.P(125, -25)), "post control[1] = %v", c)
}

func TestCubicControls(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path, controls := testpath()
	controls = FindControls(path, Cubic, controls)
	c1, c2 := controls.PostControl(1), controls.PreControl(2)
	assert.InDelta(t, 100+50.0/3, c1.X(), 1e-9)
	assert.InDelta(t, 0.0, c1.Y(), 1e-9)
	assert.InDelta(t, 150-50.0/3, c2.X(), 1e-9)
	assert.InDelta(t, 50.0, c2.Y(), 1e-9)
}

func TestGeneratorLift(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := Generator{Lift: 10, Precision: 1}
	d := g.PathData([]curvedit.Pair{curvedit.P(0, 0), curvedit.P(10, 10)}, Quadratic)
	assert.Equal(t, "M 0,0 Q 5,-5 10,10", d)
}

func TestGenerateExamples(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []curvedit.Pair{curvedit.P(0, 0), curvedit.P(100, 0)}
	assert.Equal(t, "M 0,0 Q 50,-50 100,0", Generate(knots, Quadratic).String())
	assert.Equal(t, "M 0,0 C 33.33,0 66.67,0 100,0", Generate(knots, Cubic).String())
}

func TestGenerateTooFewKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, knots := range [][]curvedit.Pair{nil, {}, {curvedit.P(3, 4)}} {
		for _, ct := range []curvedit.CurveType{Quadratic, Cubic} {
			d := Generate(knots, ct)
			assert.True(t, d.IsEmpty())
			assert.Equal(t, "", d.String())
		}
	}
}

func TestGenerateQuadraticProperties(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelInfo)
	knots := []curvedit.Pair{
		curvedit.P(10, 20), curvedit.P(-40, 75.5), curvedit.P(300, -12),
		curvedit.P(300, -12), curvedit.P(1e4, 3),
	}
	d := Generate(knots, Quadratic)
	require.Len(t, d, len(knots))
	assert.Equal(t, MoveToKind, d[0].Kind)
	assert.Equal(t, knots[0], d[0].P0)
	for i := 1; i < len(d); i++ {
		prev, curr := knots[i-1], knots[i]
		assert.Equal(t, QuadToKind, d[i].Kind)
		assert.InDelta(t, (prev.X()+curr.X())/2, d[i].P0.X(), 1e-9)
		assert.InDelta(t, (prev.Y()+curr.Y())/2-50, d[i].P0.Y(), 1e-9)
		assert.Equal(t, curr, d[i].EndPoint())
	}
}

func TestGenerateCubicProperties(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []curvedit.Pair{
		curvedit.P(0, 0), curvedit.P(-90, 30), curvedit.P(45, 45), curvedit.P(45, -200),
	}
	d := Generate(knots, Cubic)
	require.Len(t, d, len(knots))
	for i := 1; i < len(d); i++ {
		prev, curr := knots[i-1], knots[i]
		assert.Equal(t, CubicToKind, d[i].Kind)
		assert.Len(t, d[i].Points(), 3)
		assert.Equal(t, prev.Y(), d[i].P0.Y())
		assert.Equal(t, curr.Y(), d[i].P1.Y())
		assert.InDelta(t, prev.X()+(curr.X()-prev.X())/3, d[i].P0.X(), 1e-9)
		assert.InDelta(t, curr.X()-(curr.X()-prev.X())/3, d[i].P1.X(), 1e-9)
		assert.Equal(t, curr, d[i].P2)
	}
}

func TestGenerateUnknownCurveType(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []curvedit.Pair{curvedit.P(0, 0), curvedit.P(100, 0), curvedit.P(200, 10)}
	d := Generate(knots, curvedit.CurveType(42))
	require.Len(t, d, 1)
	assert.Equal(t, "M 0,0", d.String())
}

func TestGenerateIsPure(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []curvedit.Pair{curvedit.P(1, 2), curvedit.P(3, 4), curvedit.P(5, 6)}
	first := Generate(knots, Cubic).String()
	_ = Generate(knots, Quadratic)
	assert.Equal(t, first, Generate(knots, Cubic).String())
	assert.Equal(t, curvedit.P(1, 2), knots[0])
}

func TestCoordinateFormat(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		x    float64
		prec int
		want string
	}{
		{100.0 / 3, 2, "33.33"},
		{200.0 / 3, 2, "66.67"},
		{50, 2, "50"},
		{-50, 2, "-50"},
		{-0.001, 2, "0"},
		{12.5, 2, "12.5"},
		{12.5, 0, "12"},
		{1e6, 2, "1000000"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, fmtcoord(c.x, c.prec), "x = %g", c.x)
	}
}

func TestDescribeMixedControls(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Nullpath().Knot(curvedit.P(0, 0)).Knot(curvedit.P(10, 0)).Knot(curvedit.P(20, 0)).End()
	path.Controls.SetPreControl(2, curvedit.P(15, 5))
	d := Describe(path, nil)
	assert.Equal(t, "M 0,0", d.String(), "segments without post-control draw nothing")
	path.Controls.SetPostControl(1, curvedit.P(12, 3))
	d = Describe(path, nil)
	assert.Equal(t, "M 0,0 C 12,3 15,5 20,0", d.String())
}

// Thread a path through two knots. Generate returns a description of
// drawing commands, which formats to SVG path data.
func ExampleGenerate() {
	knots := []curvedit.Pair{curvedit.P(0, 0), curvedit.P(100, 0)}
	fmt.Printf("quadratic = %s\n", Generate(knots, Quadratic))
	fmt.Printf("cubic     = %s\n", Generate(knots, Cubic))

	// quadratic = M 0,0 Q 50,-50 100,0
	// cubic     = M 0,0 C 33.33,0 66.67,0 100,0
}
