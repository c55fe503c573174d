package query

import (
	"net/url"
	"strconv"
	"strings"
)

// IntSlice parses a slice of string values from URL query parameters
// into a slice of integers. Invalid entries are dropped silently.
func IntSlice(vals []string) []int {
	var res []int
	for _, v := range vals {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			res = append(res, i)
		}
	}
	return res
}

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Values collects every value supplied for a query key, treating both
// repeated parameters (?make=BMW&make=Audi) and comma-separated lists
// (?make=BMW,Audi) as sets. A single value yields a singleton slice;
// an absent key yields nil.
func Values(params url.Values, key string) []string {
	raw, ok := params[key]
	if !ok {
		return nil
	}
	var res []string
	for _, v := range raw {
		res = append(res, StringSlice(v)...)
	}
	return res
}

// Float parses a single query value as a float64. It returns nil when the
// key is absent or the value is malformed, so callers can treat bad input
// as "no constraint" rather than an error.
func Float(params url.Values, key string) *float64 {
	raw := strings.TrimSpace(params.Get(key))
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}
