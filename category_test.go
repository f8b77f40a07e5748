package gart

import (
	"errors"
	"math/rand"
	"testing"
)

type size string

const (
	small  size = "small"
	medium size = "medium"
	large  size = "large"
)

func sizeChoices() []CategoryChoice[size] {
	return []CategoryChoice[size]{
		{small, Range{1.0 / 250, 1.0 / 75}},
		{medium, Range{1.0 / 75, 1.0 / 25}},
		{large, Range{1.0 / 25, 1.0 / 4}},
	}
}

func TestNewCategorySelectorErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := NewCategorySelector[size](nil, true, rng); !errors.Is(err, ErrNoCategories) {
		t.Errorf("Want ErrNoCategories, got %v", err)
	}
	bad := []CategoryChoice[size]{{small, Range{2, 1}}}
	if _, err := NewCategorySelector(bad, true, rng); err == nil {
		t.Errorf("Want error for inverted range")
	}
	if _, err := NewCategorySelector(sizeChoices(), true, nil); err == nil {
		t.Errorf("Want error for nil random source")
	}
}

func TestSameChoice(t *testing.T) {
	s, err := NewCategorySelector(sizeChoices(), true, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatal(err)
	}
	first := s.Choice()
	if got := s.Choice(); got != first {
		t.Errorf("Want cached choice %v, got %v", first, got)
	}
	r, ok := s.CurrentCategoryRange()
	if !ok || !r.Contains(first) {
		t.Errorf("Choice %v outside range %v of %v", first, r, s.CurrentCategory())
	}
	s.ResetChoice()
	if got := s.Choice(); got == first {
		t.Errorf("Want fresh choice after reset, got %v again", got)
	}
}

func TestZeroChoiceStaysCached(t *testing.T) {
	s, err := NewCategorySelector([]CategoryChoice[int]{{0, Range{0, 0}}}, true, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Choice(); got != 0 {
		t.Fatalf("Want 0, got %v", got)
	}
	if !s.hasChoice {
		t.Errorf("Want a drawn 0 to be cached")
	}
}

func TestFreshChoice(t *testing.T) {
	s, err := NewCategorySelector(sizeChoices(), false, rand.New(rand.NewSource(4)))
	if err != nil {
		t.Fatal(err)
	}
	s.SetCurrentCategory(large)
	seen := map[float64]bool{}
	for i := 0; i < 100; i++ {
		v := s.Choice()
		if v < 1.0/25 || v > 1.0/4 {
			t.Fatalf("Choice %v outside large range", v)
		}
		seen[v] = true
	}
	if len(seen) < 50 {
		t.Errorf("Want mostly distinct choices, got %d distinct of 100", len(seen))
	}
}

func TestSetCurrentCategory(t *testing.T) {
	s, err := NewCategorySelector(sizeChoices(), true, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}
	if !s.SetCurrentCategory(medium) {
		t.Fatalf("Want medium to be accepted")
	}
	if s.SetCurrentCategory("huge") {
		t.Errorf("Want unregistered category to be ignored")
	}
	if got := s.CurrentCategory(); got != medium {
		t.Errorf("Want current category medium, got %v", got)
	}
}

func TestRandomCategory(t *testing.T) {
	s, err := NewCategorySelector(sizeChoices(), true, rand.New(rand.NewSource(6)))
	if err != nil {
		t.Fatal(err)
	}
	s.SetCurrentCategory(small)
	counts := map[size]int{}
	for i := 0; i < 300; i++ {
		counts[s.RandomCategory()]++
	}
	if got := s.CurrentCategory(); got != small {
		t.Errorf("RandomCategory changed the current category to %v", got)
	}
	for _, c := range s.Categories() {
		if counts[c] == 0 {
			t.Errorf("Category %v never picked", c)
		}
	}

	s.Choice()
	s.SetRandomCategory()
	if s.hasChoice {
		t.Errorf("Want SetRandomCategory to clear the cached choice")
	}
}
