package mealdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/cookify/pkg/mealdb"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, h http.HandlerFunc) *mealdb.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return mealdb.NewClient(srv.URL + "/")
}

func TestNewClient_Defaults(t *testing.T) {
	c := mealdb.NewClient("")
	require.Equal(t, mealdb.DefaultBaseURL, c.BaseURL)
	require.Equal(t, mealdb.DefaultTimeout, c.HTTPClient.Timeout)
}

func TestFilterByIngredient(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/filter.php", r.URL.Path)
		require.Equal(t, "chicken breast", r.URL.Query().Get("i"))
		_, _ = w.Write([]byte(`{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken","strMealThumb":"https://img/1.jpg"},{"idMeal":"52795","strMeal":"Chicken Handi","strMealThumb":""}]}`))
	})

	meals, err := c.FilterByIngredient(context.Background(), "chicken breast")
	require.NoError(t, err)
	require.Len(t, meals, 2)
	require.Equal(t, "52772", meals[0].ID)
	require.Equal(t, "Teriyaki Chicken", meals[0].Name)
}

func TestFilterByIngredient_NoMatches(t *testing.T) {
	for name, body := range map[string]string{
		"null":   `{"meals":null}`,
		"string": `{"meals":"no data found"}`,
		"absent": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			meals, err := c.FilterByIngredient(context.Background(), "unobtainium")
			require.NoError(t, err)
			require.Empty(t, meals)
		})
	}
}

func TestLookup(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/lookup.php", r.URL.Path)
		if r.URL.Query().Get("i") != "52772" {
			_, _ = w.Write([]byte(`{"meals":null}`))
			return
		}
		_, _ = w.Write([]byte(`{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken","strArea":"Japanese","strCategory":"Chicken","strTags":"Meat,Casserole","strIngredient1":" soy sauce ","strMeasure1":"3/4 cup","strIngredient2":null,"strMeasure2":null}]}`))
	})

	meal, found, err := c.Lookup(context.Background(), "52772")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "52772", meal.ID())
	require.Equal(t, "Japanese", meal.Area())
	require.Equal(t, "Meat,Casserole", meal.Tags())

	name, measure := meal.Ingredient(1)
	require.Equal(t, "soy sauce", name)
	require.Equal(t, "3/4 cup", measure)

	name, measure = meal.Ingredient(2)
	require.Empty(t, name)
	require.Empty(t, measure)

	_, found, err = c.Lookup(context.Background(), "1")
	require.NoError(t, err)
	require.False(t, found)
}

func TestUpstreamFailures(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := c.FilterByIngredient(context.Background(), "egg")
		require.ErrorIs(t, err, mealdb.ErrUpstream)

		var se *mealdb.StatusError
		require.ErrorAs(t, err, &se)
		require.Equal(t, http.StatusBadGateway, se.StatusCode)
	})

	t.Run("bad json", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		})

		_, _, err := c.Lookup(context.Background(), "1")
		require.ErrorIs(t, err, mealdb.ErrUpstream)
	})

	t.Run("transport", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		_, err := mealdb.NewClient(srv.URL).FilterByIngredient(context.Background(), "egg")
		require.ErrorIs(t, err, mealdb.ErrUpstream)
	})
}
