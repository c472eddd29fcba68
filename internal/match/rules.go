// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package match

import (
	"strings"

	"github.com/tomtom215/realconnect/internal/models"
)

// Pair scoring weights. Location and education rules are not cumulative with
// their own weaker variant (a hometown match suppresses the state bonus) but
// do stack across categories.
const (
	// WeightSharedInterest is added per interest present in both profiles
	// (case-sensitive exact match).
	WeightSharedInterest = 5.0

	// WeightHometown is added when hometowns match (case-insensitive).
	WeightHometown = 7.0

	// WeightState is added when states match and hometowns did not.
	WeightState = 4.0

	// WeightCollege is added when colleges match (case-insensitive).
	WeightCollege = 8.0

	// WeightHighSchool is added when high schools match (case-insensitive).
	WeightHighSchool = 6.0

	// WeightLegacySchool is added when the legacy single-school fields match
	// exactly. Pre-split profiles only populate this field.
	WeightLegacySchool = 6.0

	// WeightAgeClose is added when ages differ by at most two years;
	// WeightAgeNear when they differ by at most five.
	WeightAgeClose = 3.0
	WeightAgeNear  = 2.0

	// WeightAspirationToken and WeightBackgroundToken are added per shared
	// free-text token longer than minOverlapTokenLen-1 characters.
	WeightAspirationToken = 2.0
	WeightBackgroundToken = 1.5

	// WeightComplementaryKeyword is added per career keyword appearing in the
	// viewer's aspirations and the candidate's background.
	WeightComplementaryKeyword = 1.0
)

// minOverlapTokenLen is the minimum token length counted by the free-text
// overlap rules. Shorter tokens are stop-word noise ("the", "with", "from").
const minOverlapTokenLen = 5

// complementaryKeywords is the fixed career-keyword list for the cross-field
// rule. Matching is case-insensitive substring containment.
var complementaryKeywords = []string{
	"design", "tech", "startup", "business", "engineering",
	"product", "marketing", "data", "finance", "consulting",
}

// Rule is a single pure scoring rule. Score returns the rule's contribution
// for the (viewer, candidate) pair; contributions are non-negative.
type Rule struct {
	// Name identifies the rule in tests and diagnostics.
	Name string

	// Score computes the rule's contribution.
	Score func(viewer, candidate *models.UserProfile) float64
}

// PairRules returns the pair-scoring rule registry in evaluation order.
// ScorePair folds these with addition; the order does not affect the total.
func PairRules() []Rule {
	return []Rule{
		{Name: "shared_interests", Score: scoreSharedInterests},
		{Name: "location", Score: scoreLocation},
		{Name: "college", Score: scoreCollege},
		{Name: "high_school", Score: scoreHighSchool},
		{Name: "legacy_school", Score: scoreLegacySchool},
		{Name: "age_proximity", Score: scoreAgeProximity},
		{Name: "aspiration_overlap", Score: scoreAspirationOverlap},
		{Name: "background_overlap", Score: scoreBackgroundOverlap},
		{Name: "complementary_keywords", Score: scoreComplementaryKeywords},
	}
}

// ScorePair computes the affinity score between a viewer and a candidate.
// Higher is more compatible; the result is always >= 0. All rules are
// symmetric except the complementary-keyword rule, which reads the viewer's
// aspirations against the candidate's background only.
func ScorePair(viewer, candidate *models.UserProfile) float64 {
	var score float64
	for _, rule := range PairRules() {
		score += rule.Score(viewer, candidate)
	}
	return score
}

func scoreSharedInterests(viewer, candidate *models.UserProfile) float64 {
	if len(viewer.Interests) == 0 || len(candidate.Interests) == 0 {
		return 0
	}

	candidateHas := make(map[string]struct{}, len(candidate.Interests))
	for _, interest := range candidate.Interests {
		candidateHas[interest] = struct{}{}
	}

	var shared int
	for _, interest := range viewer.Interests {
		if _, ok := candidateHas[interest]; ok {
			shared++
		}
	}
	return float64(shared) * WeightSharedInterest
}

func scoreLocation(viewer, candidate *models.UserProfile) float64 {
	if fieldsMatchFold(viewer.Hometown, candidate.Hometown) {
		return WeightHometown
	}
	if fieldsMatchFold(viewer.State, candidate.State) {
		return WeightState
	}
	return 0
}

func scoreCollege(viewer, candidate *models.UserProfile) float64 {
	if fieldsMatchFold(viewer.College, candidate.College) {
		return WeightCollege
	}
	return 0
}

func scoreHighSchool(viewer, candidate *models.UserProfile) float64 {
	if fieldsMatchFold(viewer.HighSchool, candidate.HighSchool) {
		return WeightHighSchool
	}
	return 0
}

func scoreLegacySchool(viewer, candidate *models.UserProfile) float64 {
	// The legacy field predates normalization, so it compares exactly.
	if viewer.School != "" && candidate.School != "" && viewer.School == candidate.School {
		return WeightLegacySchool
	}
	return 0
}

func scoreAgeProximity(viewer, candidate *models.UserProfile) float64 {
	if viewer.Age <= 0 || candidate.Age <= 0 {
		return 0
	}

	diff := viewer.Age - candidate.Age
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 2:
		return WeightAgeClose
	case diff <= 5:
		return WeightAgeNear
	default:
		return 0
	}
}

func scoreAspirationOverlap(viewer, candidate *models.UserProfile) float64 {
	return float64(tokenOverlap(viewer.Aspirations, candidate.Aspirations)) * WeightAspirationToken
}

func scoreBackgroundOverlap(viewer, candidate *models.UserProfile) float64 {
	return float64(tokenOverlap(viewer.Background, candidate.Background)) * WeightBackgroundToken
}

// scoreComplementaryKeywords is the one-directional cross-field rule: the
// viewer's aspirations against the candidate's background.
func scoreComplementaryKeywords(viewer, candidate *models.UserProfile) float64 {
	if viewer.Aspirations == "" || candidate.Background == "" {
		return 0
	}

	aspirations := strings.ToLower(viewer.Aspirations)
	background := strings.ToLower(candidate.Background)

	var matches int
	for _, keyword := range complementaryKeywords {
		if strings.Contains(aspirations, keyword) && strings.Contains(background, keyword) {
			matches++
		}
	}
	return float64(matches) * WeightComplementaryKeyword
}

// fieldsMatchFold reports whether two optional fields are both present and
// equal ignoring case.
func fieldsMatchFold(a, b string) bool {
	return a != "" && b != "" && strings.EqualFold(a, b)
}

// tokenOverlap counts tokens of a that also occur in b, considering only
// tokens of at least minOverlapTokenLen characters. Both strings are
// lowercased and split on whitespace. Repeated tokens in a count once each
// occurrence, mirroring how the overlap has always been scored.
func tokenOverlap(a, b string) int {
	if a == "" || b == "" {
		return 0
	}

	bTokens := make(map[string]struct{})
	for _, token := range strings.Fields(strings.ToLower(b)) {
		bTokens[token] = struct{}{}
	}

	var overlap int
	for _, token := range strings.Fields(strings.ToLower(a)) {
		if len(token) < minOverlapTokenLen {
			continue
		}
		if _, ok := bTokens[token]; ok {
			overlap++
		}
	}
	return overlap
}
