package dbutil

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/internal/cookify/store"
	"github.com/stretchr/testify/require"
)

func TestMapNotFound(t *testing.T) {
	require.ErrorIs(t, MapNotFound(sql.ErrNoRows), store.ErrNotFound)
	require.ErrorIs(t, MapNotFound(fmt.Errorf("scan: %w", sql.ErrNoRows)), store.ErrNotFound)

	other := sql.ErrConnDone
	require.Equal(t, other, MapNotFound(other))
	require.NoError(t, MapNotFound(nil))
}

func TestOptionalRoundTrip(t *testing.T) {
	require.Nil(t, NullTimePtr(OptionalTime(nil)))
	require.Nil(t, NullIntPtr(OptionalInt(nil)))

	at := time.Date(2025, 6, 1, 9, 30, 0, 0, time.FixedZone("AEST", 10*3600))
	got := NullTimePtr(OptionalTime(&at))
	require.NotNil(t, got)
	require.True(t, got.Equal(at))
	require.Equal(t, time.UTC, got.Location())

	n := 4
	require.Equal(t, 4, *NullIntPtr(OptionalInt(&n)))
}

func TestLists(t *testing.T) {
	s, err := EncodeList[string](nil)
	require.NoError(t, err)
	require.Equal(t, "[]", s)

	s, err = EncodeList([]domain.Ingredient{{Name: "rice", Measure: "1 cup"}})
	require.NoError(t, err)
	require.JSONEq(t, `[{"name":"rice","measure":"1 cup"}]`, s)

	ings, err := DecodeList[domain.Ingredient](s)
	require.NoError(t, err)
	require.Equal(t, []domain.Ingredient{{Name: "rice", Measure: "1 cup"}}, ings)

	empty, err := DecodeList[string]("")
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	_, err = DecodeList[string]("{")
	require.Error(t, err)
}
