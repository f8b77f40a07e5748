package gart

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrNoCategories is returned when a selector is built without categories.
var ErrNoCategories = errors.New("category selector needs at least one category")

// Range is a closed interval of floats.
type Range struct {
	Min, Max float64
}

// Random returns a uniform random value in the range.
func (r Range) Random(rng *rand.Rand) float64 {
	return RandRange(rng, r.Min, r.Max)
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// CategoryChoice pairs a category with the range of values it yields.
type CategoryChoice[T comparable] struct {
	Category T
	Range    Range
}

// CategorySelector picks a category, then a random value in its range.
// With sameChoice set the value is drawn once and reused until ResetChoice.
type CategorySelector[T comparable] struct {
	rng        *rand.Rand
	keys       []T // registration order, so seeded runs repeat
	choices    map[T]Range
	sameChoice bool
	current    T
	choice     float64
	hasChoice  bool
}

// NewCategorySelector registers `choices` and picks a random current category.
func NewCategorySelector[T comparable](choices []CategoryChoice[T], sameChoice bool, rng *rand.Rand) (*CategorySelector[T], error) {
	if len(choices) == 0 {
		return nil, ErrNoCategories
	}
	if rng == nil {
		return nil, errors.New("category selector needs a random source")
	}
	s := &CategorySelector[T]{
		rng:        rng,
		choices:    make(map[T]Range, len(choices)),
		sameChoice: sameChoice,
	}
	for _, c := range choices {
		if c.Range.Min > c.Range.Max {
			return nil, fmt.Errorf("category %v: inverted range [%g, %g]", c.Category, c.Range.Min, c.Range.Max)
		}
		if _, ok := s.choices[c.Category]; !ok {
			s.keys = append(s.keys, c.Category)
		}
		s.choices[c.Category] = c.Range
	}
	s.current = s.RandomCategory()
	return s, nil
}

// Categories returns the registered categories in registration order.
func (s *CategorySelector[T]) Categories() []T {
	return append([]T(nil), s.keys...)
}

// RandomCategory returns one of the categories, leaving the selector alone.
func (s *CategorySelector[T]) RandomCategory() T {
	return s.keys[s.rng.Intn(len(s.keys))]
}

// SetRandomCategory picks a new current category and forgets the cached choice.
func (s *CategorySelector[T]) SetRandomCategory() {
	s.ResetChoice()
	s.current = s.RandomCategory()
}

// ResetChoice forces a fresh draw on the next Choice.
func (s *CategorySelector[T]) ResetChoice() {
	s.choice = 0
	s.hasChoice = false
}

// CurrentCategory returns the current category.
func (s *CategorySelector[T]) CurrentCategory() T {
	return s.current
}

// SetCurrentCategory pins the current category. Unregistered categories are
// ignored and false is returned; the current category is never cleared.
func (s *CategorySelector[T]) SetCurrentCategory(category T) bool {
	if _, ok := s.choices[category]; !ok {
		return false
	}
	s.current = category
	return true
}

// SameChoice reports whether choices are cached.
func (s *CategorySelector[T]) SameChoice() bool {
	return s.sameChoice
}

// SetSameChoice switches caching on or off.
func (s *CategorySelector[T]) SetSameChoice(sameChoice bool) {
	s.sameChoice = sameChoice
}

// CurrentCategoryRange returns the range of the current category.
func (s *CategorySelector[T]) CurrentCategoryRange() (Range, bool) {
	r, ok := s.choices[s.current]
	return r, ok
}

// Choice returns a value within the current category's range.
func (s *CategorySelector[T]) Choice() float64 {
	if !s.sameChoice {
		return s.calculateChoice()
	}
	if !s.hasChoice {
		s.choice = s.calculateChoice()
		s.hasChoice = true
	}
	return s.choice
}

func (s *CategorySelector[T]) calculateChoice() float64 {
	r, ok := s.choices[s.current]
	if !ok {
		return 0
	}
	return r.Random(s.rng)
}
