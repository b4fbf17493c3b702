package domain

import (
	"regexp"
	"strconv"
)

// Rule extracts one value from forecast prose. Value receives the numeric
// capture groups of Pattern in order.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Value   func(groups []float64) float64

	// Valid, when set, rejects values the field cannot hold so the next
	// rule or the default applies instead.
	Valid func(v float64) bool
}

// Apply runs the rule against text.
func (r Rule) Apply(text string) (float64, bool) {
	m := r.Pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	groups := make([]float64, 0, len(m)-1)
	for _, g := range m[1:] {
		v, err := strconv.ParseFloat(g, 64)
		if err != nil {
			return 0, false
		}
		groups = append(groups, v)
	}
	v := r.Value(groups)
	if r.Valid != nil && !r.Valid(v) {
		return 0, false
	}
	return v, true
}

// RuleSet is an ordered list of rules; the first match wins.
type RuleSet []Rule

// Match returns the value and rule name of the first matching rule.
func (rs RuleSet) Match(text string) (float64, string, bool) {
	for _, r := range rs {
		if v, ok := r.Apply(text); ok {
			return v, r.Name, true
		}
	}
	return 0, "", false
}

func first(g []float64) float64 { return g[0] }

func maxOf(g []float64) float64 { return max(g[0], g[1]) }

func midpoint(g []float64) float64 { return (g[0] + g[1]) / 2.0 }

func positive(v float64) bool { return v > 0 }

var (
	windRules = RuleSet{
		{Name: "wind_range", Pattern: regexp.MustCompile(`(?i)(\d{1,2})\s*(?:to|-)\s*(\d{1,2})\s*kt`), Value: maxOf},
		{Name: "wind_single", Pattern: regexp.MustCompile(`(?i)(\d{1,2})\s*kt`), Value: first},
	}

	gustRules = RuleSet{
		{Name: "gust", Pattern: regexp.MustCompile(`(?i)gusts?\s+(?:up to\s*)?(\d{1,2})\s*kt`), Value: first},
	}

	seasRules = RuleSet{
		{Name: "seas_range", Pattern: regexp.MustCompile(`(?i)seas?\s+(\d{1,2})\s*(?:to|-)\s*(\d{1,2})\s*ft`), Value: midpoint},
		{Name: "seas_single", Pattern: regexp.MustCompile(`(?i)seas?\s+(\d{1,2})\s*ft`), Value: first},
	}

	periodRules = RuleSet{
		{Name: "dominant_period", Pattern: regexp.MustCompile(`(?i)at\s+(\d{1,2})\s*seconds`), Value: first, Valid: positive},
	}
)

// ExtractMeasurements pulls wind, gust, seas and dominant period out of a
// period body. Fields the text does not mention take the values in d; the
// gust default is relative to the extracted (or defaulted) wind speed.
func ExtractMeasurements(body string, d MeasurementDefaults) Measurements {
	var m Measurements

	if v, _, ok := windRules.Match(body); ok {
		m.WindKt = v
	} else {
		m.WindKt = d.WindKt
		m.Defaulted = append(m.Defaulted, "wspd_kt")
	}

	if v, _, ok := gustRules.Match(body); ok {
		m.GustKt = v
	} else {
		m.GustKt = m.WindKt + d.GustOffsetKt
		m.Defaulted = append(m.Defaulted, "gust_kt")
	}

	if v, _, ok := seasRules.Match(body); ok {
		m.SeasFt = v
	} else {
		m.SeasFt = d.SeasFt
		m.Defaulted = append(m.Defaulted, "seas_ft")
	}

	if v, _, ok := periodRules.Match(body); ok {
		m.PeriodS = v
	} else {
		m.PeriodS = d.PeriodS
		m.Defaulted = append(m.Defaulted, "dpd_s")
	}

	return m
}
