package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_Matches_EmptyFilterMatchesEverything(t *testing.T) {
	loc := Location{Wilaya: "Alger", Commune: "Hydra"}

	assert.True(t, loc.Matches(LocationFilter{}))
}

func TestLocation_Matches_ExactEquality(t *testing.T) {
	loc := Location{Wilaya: "Alger", Commune: "Hydra"}

	assert.True(t, loc.Matches(LocationFilter{Wilaya: "Alger"}))
	assert.True(t, loc.Matches(LocationFilter{Wilaya: "Alger", Commune: "Hydra"}))
	assert.False(t, loc.Matches(LocationFilter{Wilaya: "Oran"}))
	assert.False(t, loc.Matches(LocationFilter{Wilaya: "Alger", Commune: "Alger Centre"}))
}

func TestLocation_Matches_NoCaseFoldingNoPartialMatch(t *testing.T) {
	loc := Location{Wilaya: "Alger", Commune: "Hydra"}

	assert.False(t, loc.Matches(LocationFilter{Wilaya: "alger"}))
	assert.False(t, loc.Matches(LocationFilter{Wilaya: "Alg"}))
}

func TestLocation_Matches_MissingQuartier(t *testing.T) {
	quartier := "Centre-ville"
	with := Location{Wilaya: "Alger", Commune: "Alger Centre", Quartier: &quartier}
	without := Location{Wilaya: "Alger", Commune: "Alger Centre"}

	assert.True(t, with.Matches(LocationFilter{Quartier: "Centre-ville"}))
	// A quartier constraint against a location with no quartier is a non-match.
	assert.False(t, without.Matches(LocationFilter{Quartier: "Centre-ville"}))
}

func TestLocationFilter_IsZero(t *testing.T) {
	assert.True(t, LocationFilter{}.IsZero())
	assert.False(t, LocationFilter{Commune: "Hydra"}.IsZero())
}
