package main

import (
	"strings"
	"testing"
)

func TestReadMatrix(t *testing.T) {
	input := `
# covariance estimate
4 2
2 3
`
	data, n, err := readMatrix(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("Expected n=2, got %d", n)
	}
	want := []float64{4, 2, 2, 3}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("Element %d: expected %v, got %v", i, want[i], data[i])
		}
	}
}

func TestReadMatrix_RaggedRow(t *testing.T) {
	if _, _, err := readMatrix(strings.NewReader("1 2\n3\n")); err == nil {
		t.Error("Expected error for ragged row")
	}
}

func TestReadMatrix_NotSquare(t *testing.T) {
	if _, _, err := readMatrix(strings.NewReader("1 2 3\n4 5 6\n")); err == nil {
		t.Error("Expected error for non-square matrix")
	}
}

func TestReadMatrix_BadEntry(t *testing.T) {
	if _, _, err := readMatrix(strings.NewReader("1 x\n2 3\n")); err == nil {
		t.Error("Expected error for non-numeric entry")
	}
}

func TestReadMatrix_Empty(t *testing.T) {
	if _, _, err := readMatrix(strings.NewReader("  \n# only comments\n")); err == nil {
		t.Error("Expected error for empty input")
	}
}
