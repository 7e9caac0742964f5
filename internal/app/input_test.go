package app

import (
	"testing"

	"lifegrid/internal/core"

	"github.com/pkg/errors"
)

func TestCenteredBoard(t *testing.T) {
	b := CenteredBoard(1920, 1080, 100, 100, 10)
	if b.X != 459 || b.Y != 39 {
		t.Fatalf("origin=(%d,%d), expected (459,39)", b.X, b.Y)
	}

	small := CenteredBoard(50, 50, 100, 100, 10)
	if small.X != 0 || small.Y != 0 {
		t.Fatalf("oversized board origin=(%d,%d), expected (0,0)", small.X, small.Y)
	}
}

func TestBoardCellAt(t *testing.T) {
	b := Board{X: 20, Y: 10, W: 4, H: 3, Cell: 10}
	cases := []struct {
		px, py int
		x, y   int
		ok     bool
	}{
		{20, 10, 0, 0, true},
		{29, 19, 0, 0, true},
		{30, 10, 1, 0, true},
		{59, 39, 3, 2, true},
		{60, 39, 0, 0, false},
		{59, 40, 0, 0, false},
		{19, 15, 0, 0, false},
		{25, 9, 0, 0, false},
		{-5, -5, 0, 0, false},
	}
	for _, tc := range cases {
		x, y, ok := b.CellAt(tc.px, tc.py)
		if ok != tc.ok || (ok && (x != tc.x || y != tc.y)) {
			t.Fatalf("CellAt(%d,%d)=(%d,%d,%v), expected (%d,%d,%v)", tc.px, tc.py, x, y, ok, tc.x, tc.y, tc.ok)
		}
	}
}

type recordingToggler struct {
	toggles [][2]int
	err     error
}

func (r *recordingToggler) Toggle(x, y int) error {
	if r.err != nil {
		return r.err
	}
	r.toggles = append(r.toggles, [2]int{x, y})
	return nil
}

func TestEditorDragTogglesEachCellOnce(t *testing.T) {
	b := Board{W: 5, H: 5, Cell: 10}
	rec := &recordingToggler{}
	var e Editor

	for _, p := range [][2]int{{5, 5}, {6, 7}, {9, 9}, {15, 5}, {18, 2}, {25, 5}} {
		if err := e.Press(rec, b, p[0], p[1]); err != nil {
			t.Fatalf("Press: %v", err)
		}
	}
	want := [][2]int{{0, 0}, {1, 0}, {2, 0}}
	if len(rec.toggles) != len(want) {
		t.Fatalf("toggles=%v, expected %v", rec.toggles, want)
	}
	for i := range want {
		if rec.toggles[i] != want[i] {
			t.Fatalf("toggles=%v, expected %v", rec.toggles, want)
		}
	}

	if err := e.Press(rec, b, 25, 5); err != nil {
		t.Fatalf("Press: %v", err)
	}
	if len(rec.toggles) != 3 {
		t.Fatal("holding the button on one cell toggled it again")
	}
	e.Release()
	if err := e.Press(rec, b, 25, 5); err != nil {
		t.Fatalf("Press: %v", err)
	}
	if len(rec.toggles) != 4 {
		t.Fatal("a new click on the same cell should toggle it")
	}
}

func TestEditorIgnoresOffBoardPixels(t *testing.T) {
	g, err := core.New(3, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b := Board{X: 10, Y: 10, W: 3, H: 3, Cell: 10}
	var e Editor
	for _, p := range [][2]int{{0, 0}, {9, 15}, {40, 15}, {15, 40}, {-100, 20}} {
		if err := e.Press(g, b, p[0], p[1]); err != nil {
			t.Fatalf("Press(%d,%d): %v", p[0], p[1], err)
		}
	}
	if g.Population() != 0 {
		t.Fatalf("off-board presses changed %d cells", g.Population())
	}

	if err := e.Press(g, b, 25, 35); err != nil {
		t.Fatalf("Press: %v", err)
	}
	if alive, _ := g.IsAlive(1, 2); !alive {
		t.Fatal("press inside the board did not toggle cell (1,2)")
	}
}

func TestEditorSwallowsOutOfBounds(t *testing.T) {
	// A board wider than the grid maps pixels to cells the grid rejects.
	g, err := core.New(2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b := Board{W: 4, H: 4, Cell: 10}
	var e Editor
	if err := e.Press(g, b, 35, 35); err != nil {
		t.Fatalf("out-of-bounds toggle surfaced: %v", err)
	}
}

func TestEditorPropagatesOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	var e Editor
	err := e.Press(&recordingToggler{err: boom}, Board{W: 2, H: 2, Cell: 4}, 1, 1)
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, expected boom", err)
	}
}
