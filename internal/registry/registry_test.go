package registry

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

func TestBuiltinsRegistered(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("List() returned %d algorithms, expected at least 2", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	for _, id := range []string{Backtracker, Wilson} {
		if !Exists(id) {
			t.Errorf("Exists(%q) = false, expected true", id)
		}
	}
}

func TestGenerateBuiltins(t *testing.T) {
	for _, id := range []string{Backtracker, Wilson} {
		g, err := Generate(id, 8, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("Generate(%q) error = %v", id, err)
		}
		if got := g.OpenPassages(); got != 63 {
			t.Errorf("Generate(%q) open passages = %d, expected 63", id, got)
		}
		if got := maze.Reachable(g, maze.C(0, 0)); got != 64 {
			t.Errorf("Generate(%q) reachable = %d, expected 64", id, got)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(Backtracker, 10, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(Backtracker, 10, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("same seed produced different mazes")
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	if Exists("kruskal") {
		t.Fatal("Exists(kruskal) = true, expected false")
	}
	_, err := Generate("kruskal", 5, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Generate(kruskal) error = %v, expected ErrUnknownAlgorithm", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register(duplicate) did not panic")
		}
	}()
	Register(AlgorithmInfo{ID: Backtracker}, maze.Wilson)
}
