// Package classify derives gift facets (recipient, budget, interests,
// urgency) from free-form prompt text. Classification is a pure function of
// the prompt: deterministic, case-insensitive, and never failing — any facet
// without a match degrades to its neutral default.
//
// Recipient and urgency are "first match wins" over an explicit ordered rule
// list; interests are tested independently and all matches are kept. All
// patterns are plain substring disjunctions, so short keywords can fire
// inside longer words ("mother" contains "her"). That looseness is part of
// the shipped contract and is pinned by tests.
package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/momently/go-gift-backend/internal/catalog"
	"github.com/momently/go-gift-backend/internal/domain"
)

// recipientRules are evaluated in priority order: her > him > parents >
// friends > kids.
var recipientRules = []struct {
	re    *regexp.Regexp
	value domain.Recipient
}{
	{regexp.MustCompile(`her|she|girlfriend|wife`), domain.RecipientHer},
	{regexp.MustCompile(`him|he|boyfriend|husband`), domain.RecipientHim},
	{regexp.MustCompile(`parent|mom|mother|dad|father`), domain.RecipientParents},
	{regexp.MustCompile(`friend`), domain.RecipientFriends},
	{regexp.MustCompile(`kid|child|son|daughter`), domain.RecipientKids},
}

// budgetRE captures the first run of 1–4 digits, optionally preceded by a
// dollar sign and whitespace. Longer digit runs contribute only their first
// four digits. No currency or locale handling beyond this.
var budgetRE = regexp.MustCompile(`\$?\s?(\d{1,4})`)

// interestPatterns maps each interest of the catalog vocabulary to its
// keyword pattern. Interests are tested independently; a prompt may match any
// number of them, and matches are reported in vocabulary order (the order
// catalog.Interests returns).
var interestPatterns = map[string]*regexp.Regexp{
	"tech":        regexp.MustCompile(`tech|gadget|device|smart`),
	"beauty":      regexp.MustCompile(`beauty|skincare|makeup|spa`),
	"cozy":        regexp.MustCompile(`cozy|home|blanket|candle|warm`),
	"fitness":     regexp.MustCompile(`fitness|gym|yoga|workout|run`),
	"photography": regexp.MustCompile(`photo|camera|film`),
	"fashion":     regexp.MustCompile(`fashion|style|wear|accessor`),
	"gaming":      regexp.MustCompile(`game|gaming|xbox|playstation|switch|pc`),
}

// urgencyRules are evaluated in priority order: tomorrow > this week >
// digital. No rule ever yields UrgencyLocal; that pool is catalog-only.
var urgencyRules = []struct {
	re    *regexp.Regexp
	value domain.Urgency
}{
	{regexp.MustCompile(`tomorrow|next day|overnight`), domain.UrgencyTomorrow},
	{regexp.MustCompile(`week|this week|few days`), domain.UrgencyThisWeek},
	{regexp.MustCompile(`digital|email|instant`), domain.UrgencyDigital},
}

// Classify derives the full facet set for a trimmed prompt.
func Classify(prompt string) domain.FacetSet {
	lower := strings.ToLower(prompt)
	return domain.FacetSet{
		Recipient: classifyRecipient(lower),
		BudgetMax: parseBudget(lower),
		Interests: matchInterests(lower),
		Urgency:   classifyUrgency(lower),
	}
}

func classifyRecipient(lower string) domain.Recipient {
	for _, r := range recipientRules {
		if r.re.MatchString(lower) {
			return r.value
		}
	}
	return domain.RecipientUnknown
}

func parseBudget(lower string) *int {
	m := budgetRE.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

func matchInterests(lower string) []string {
	var out []string
	for _, key := range catalog.Interests() {
		re, ok := interestPatterns[key]
		if !ok {
			continue
		}
		if re.MatchString(lower) {
			out = append(out, key)
		}
	}
	return out
}

func classifyUrgency(lower string) domain.Urgency {
	for _, r := range urgencyRules {
		if r.re.MatchString(lower) {
			return r.value
		}
	}
	return domain.UrgencyNone
}
