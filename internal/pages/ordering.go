package pages

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ParsePrice converts a rendered price such as "$29.99" to a float.
func ParsePrice(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if i := strings.LastIndex(s, "$"); i >= 0 {
		s = s[i+1:]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse price %q: %w", text, err)
	}
	return v, nil
}

// ParsePrices converts every rendered price, failing on the first malformed one.
func ParsePrices(texts []string) ([]float64, error) {
	prices := make([]float64, 0, len(texts))
	for _, text := range texts {
		v, err := ParsePrice(text)
		if err != nil {
			return nil, err
		}
		prices = append(prices, v)
	}
	return prices, nil
}

// SortedAsc returns a sorted copy of values; names compare by code unit.
func SortedAsc[T string | float64](values []T) []T {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}

// SortedDesc returns a copy of values sorted in reverse.
func SortedDesc[T string | float64](values []T) []T {
	out := SortedAsc(values)
	slices.Reverse(out)
	return out
}
