package core

import (
	"errors"
	"slices"
	"testing"
)

func TestNewGridPadsShortInitial(t *testing.T) {
	g := NewGrid([]int{4}, []State{1, 2})
	if !slices.Equal(g.Cells(), []State{1, 2, 0, 0}) {
		t.Fatalf("expected short initial padded with zeros, got %v", g.Cells())
	}
}

func TestNewGridTruncatesLongInitial(t *testing.T) {
	g := NewGrid([]int{3}, []State{1, 2, 3, 4, 5})
	if !slices.Equal(g.Cells(), []State{1, 2, 3}) {
		t.Fatalf("expected long initial truncated, got %v", g.Cells())
	}
}

func TestGridAt(t *testing.T) {
	g := NewGrid([]int{4, 3}, []State{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})

	got, err := g.At(5)
	if err != nil {
		t.Fatalf("At(5): %v", err)
	}
	if got != 5 {
		t.Fatalf("At(5) = %d, expected 5", got)
	}
	if _, err := g.At(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("At(-1): expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := g.At(12); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("At(12): expected ErrIndexOutOfBounds, got %v", err)
	}

	got, err = g.AtPosition(Position{2, 1})
	if err != nil {
		t.Fatalf("AtPosition(2,1): %v", err)
	}
	if got != 9 {
		t.Fatalf("AtPosition(2,1) = %d, expected 9", got)
	}
	if _, err := g.AtPosition(Position{2}); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("short position: expected ErrDimensionMismatch, got %v", err)
	}
	if g.ValidPosition(Position{3, 0}) {
		t.Fatal("row 3 of a 3-row grid must not be valid")
	}
}
