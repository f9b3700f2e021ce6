package finsight

import (
	"slices"
	"strings"
)

// OtherCategory is the fallback category for descriptions that match no rule.
const OtherCategory = "other"

// CategoryRule maps a spending category to the keywords that select it. A
// description belongs to the category when any keyword is a substring of the
// lowercased description.
type CategoryRule struct {
	Name     string
	Keywords []string
}

// DefaultRules returns the built-in category table. Order matters: rules are
// evaluated first to last and the first match wins, so "target" resolves to
// grocery even though it is also a shopping keyword. The returned slice is a
// fresh copy, callers may reorder or extend it.
func DefaultRules() []CategoryRule {
	rules := []CategoryRule{
		{Name: "grocery", Keywords: []string{
			"grocery", "supermarket", "food", "walmart", "target", "kroger", "safeway", "publix",
			"whole foods", "trader joe", "costco", "fresh market", "harris teeter", "wegmans", "sprouts"}},
		{Name: "dining", Keywords: []string{
			"restaurant", "cafe", "pizza", "starbucks", "mcdonald", "subway", "chipotle", "taco bell",
			"burger", "kfc", "dunkin", "panera", "olive garden", "red lobster", "five guys", "domino"}},
		{Name: "transportation", Keywords: []string{
			"gas station", "uber", "lyft", "metro", "parking", "taxi", "bus", "train", "fuel",
			"shell", "exxon", "bp", "chevron", "marathon", "texaco", "mobil", "airport"}},
		{Name: "utilities", Keywords: []string{
			"electric", "gas", "water", "internet", "phone", "cable", "insurance", "utility",
			"verizon", "at&t", "comcast", "spectrum"}},
		{Name: "entertainment", Keywords: []string{
			"movie", "netflix", "spotify", "amazon prime", "hulu", "disney", "hbo", "theater",
			"concert", "game", "youtube", "paramount", "apple music", "steam"}},
		{Name: "healthcare", Keywords: []string{
			"hospital", "pharmacy", "doctor", "medical", "dentist", "cvs", "walgreens", "clinic",
			"urgent care", "prescription"}},
		{Name: "shopping", Keywords: []string{
			"amazon", "ebay", "mall", "clothing", "electronics", "best buy", "apple store", "nike",
			"adidas", "macy", "target", "home depot", "rei", "gamestop"}},
		{Name: "salary", Keywords: []string{
			"salary", "paycheck", "wages", "income", "bonus", "freelance", "consulting"}},
		{Name: "investment", Keywords: []string{
			"dividend", "interest", "capital gains", "stock", "bond", "mutual fund", "reit"}},
	}
	out := make([]CategoryRule, len(rules))
	for i, r := range rules {
		out[i] = CategoryRule{Name: r.Name, Keywords: slices.Clone(r.Keywords)}
	}
	return out
}

// Classifier assigns spending categories to transaction descriptions by
// keyword matching against an ordered rule table.
type Classifier struct {
	rules []CategoryRule
}

// NewClassifier returns a classifier over the given ordered rules.
func NewClassifier(rules []CategoryRule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the category of the first rule with a keyword contained in
// the lowercased description, or OtherCategory when nothing matches. An empty
// description is OtherCategory.
func (c *Classifier) Classify(description string) string {
	description = strings.ToLower(description)
	if description == "" {
		return OtherCategory
	}
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(description, keyword) {
				return rule.Name
			}
		}
	}
	return OtherCategory
}

// ClassifyAll returns a new slice where every transaction that does not
// already carry a category (empty or OtherCategory) gets one from Classify.
// Rows with a pre-assigned category are copied untouched, which makes the
// operation idempotent. The input slice is not modified.
func (c *Classifier) ClassifyAll(txs []Transaction) []Transaction {
	out := slices.Clone(txs)
	for i, tx := range out {
		if tx.Categorized() {
			continue
		}
		out[i].Category = c.Classify(tx.Description)
	}
	return out
}
