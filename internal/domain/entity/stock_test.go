package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleStock() []StockLine {
	return []StockLine{
		{MedicationName: "Paracétamol 500mg", Quantity: 50, Price: 120.0, Available: true},
		{MedicationName: "Ibuprofène 400mg", Quantity: 30, Price: 250.0, Available: true},
		{MedicationName: "Amoxicilline 250mg", Quantity: 0, Price: 350.0, Available: false},
	}
}

func TestStockLine_MatchesQuery_CaseInsensitive(t *testing.T) {
	line := StockLine{MedicationName: "Paracétamol 500mg", Available: true}

	assert.True(t, line.MatchesQuery("paracétamol"))
	assert.True(t, line.MatchesQuery("PARACÉTAMOL"))
	assert.True(t, line.MatchesQuery("500MG"))
	assert.False(t, line.MatchesQuery("ibuprofen"))
}

func TestStockLine_MatchesQuery_LiteralSubstring(t *testing.T) {
	line := StockLine{MedicationName: "Paracétamol 500mg", Available: true}

	// No accent folding: the unaccented form does not match.
	assert.False(t, line.MatchesQuery("paracetamol"))
}

func TestStockLine_MatchesQuery_UnavailableNeverMatches(t *testing.T) {
	line := StockLine{MedicationName: "Amoxicilline 250mg", Quantity: 10, Available: false}

	assert.False(t, line.MatchesQuery("amoxicilline"))
	assert.False(t, line.MatchesQuery("Amoxicilline 250mg"))
}

func TestStockLine_MatchesQuery_AvailableWithZeroQuantity(t *testing.T) {
	// Availability is declared, not derived: qty 0 with available=true matches.
	line := StockLine{MedicationName: "Doliprane 1000mg", Quantity: 0, Available: true}

	assert.True(t, line.MatchesQuery("doliprane"))
}

func TestFindStockMatches_EnumeratesInStockOrder(t *testing.T) {
	stock := []StockLine{
		{MedicationName: "Paracétamol 500mg", Available: true},
		{MedicationName: "Doliprane 1000mg", Available: true},
		{MedicationName: "Paracétamol 1000mg", Available: true},
	}

	matches := FindStockMatches(stock, "paracétamol")

	assert.Len(t, matches, 2)
	assert.Equal(t, "Paracétamol 500mg", matches[0].MedicationName)
	assert.Equal(t, "Paracétamol 1000mg", matches[1].MedicationName)
}

func TestFindStockMatches_UnavailableLineExcluded(t *testing.T) {
	matches := FindStockMatches(sampleStock(), "amoxicilline")

	assert.Empty(t, matches)
}

func TestFindStockMatches_NoMatchReturnsEmpty(t *testing.T) {
	matches := FindStockMatches(sampleStock(), "insuline")

	assert.Empty(t, matches)
}

func TestHasStockMatch(t *testing.T) {
	stock := sampleStock()

	assert.True(t, HasStockMatch(stock, "paracétamol"))
	assert.True(t, HasStockMatch(stock, "Ibuprofène"))
	assert.False(t, HasStockMatch(stock, "amoxicilline")) // present but unavailable
	assert.False(t, HasStockMatch(nil, "paracétamol"))
}
