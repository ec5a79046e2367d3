package entity

import "strings"

// StockLine is one medication entry inside a pharmacy's stock list.
// Availability is declared by the pharmacy and is deliberately independent of
// Quantity: a line can be flagged available with zero units on hand (e.g.
// available to order) and the two fields are never reconciled here.
type StockLine struct {
	MedicationName string
	Quantity       int
	Price          float64
	Available      bool
}

// MatchesQuery reports whether this line satisfies a medication query: the
// query must be a case-folded substring of the medication name AND the line
// must be available. Matching is literal; accented forms only match
// themselves.
func (l StockLine) MatchesQuery(query string) bool {
	if !l.Available {
		return false
	}

	return strings.Contains(strings.ToLower(l.MedicationName), strings.ToLower(query))
}

// FindStockMatches returns every line of stock matching the query, in stock
// order. Enumeration mode of the matcher: a pharmacy with N matching lines
// yields N results.
func FindStockMatches(stock []StockLine, query string) []StockLine {
	var matches []StockLine
	for _, line := range stock {
		if line.MatchesQuery(query) {
			matches = append(matches, line)
		}
	}

	return matches
}

// HasStockMatch reports whether at least one line matches the query.
// Existence mode of the matcher: short-circuits on the first match.
func HasStockMatch(stock []StockLine, query string) bool {
	for _, line := range stock {
		if line.MatchesQuery(query) {
			return true
		}
	}

	return false
}
