// Package mealdb is a small client for the public TheMealDB JSON API.
//
// Only the two lookups needed for ingredient search are implemented:
//
//	client := mealdb.NewClient(mealdb.DefaultBaseURL)
//	summaries, err := client.FilterByIngredient(ctx, "chicken")
//	meal, err := client.Lookup(ctx, summaries[0].ID)
//
// Transport failures and non-200 responses are reported as *StatusError or
// wrapped transport errors; both match ErrUpstream with errors.Is.
package mealdb
