package services_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func testRestaurants(t *testing.T) []restaurant.Restaurant {
	t.Helper()
	return []restaurant.Restaurant{
		{
			ID:          kernel.NewUUID(),
			Name:        "Bella Napoli",
			CuisineType: "Italian",
			City:        "Berlin",
			Country:     "Germany",
			Location:    mustPoint(t, 52.52, 13.405),
			MenuItems: []restaurant.MenuItem{
				{ID: kernel.NewUUID(), Name: "Margherita Pizza", Price: mustMoney(t, "12.99"), Available: true},
				{ID: kernel.NewUUID(), Name: "Tiramisu", Price: mustMoney(t, "6.50"), Available: true},
			},
		},
		{
			ID:          kernel.NewUUID(),
			Name:        "Sakura House",
			CuisineType: "Japanese",
			City:        "Potsdam",
			Country:     "Germany",
			// Roughly 100 km from central Berlin.
			Location: mustPoint(t, 52.52, 14.88),
			MenuItems: []restaurant.MenuItem{
				{ID: kernel.NewUUID(), Name: "Sashimi Set", Price: mustMoney(t, "24.00"), Available: true},
			},
		},
		{
			ID:          kernel.NewUUID(),
			Name:        "No Coordinates Diner",
			CuisineType: "American",
			City:        "Berlin",
			Country:     "Germany",
			Location:    nil,
			MenuItems: []restaurant.MenuItem{
				{ID: kernel.NewUUID(), Name: "Burger", Price: mustMoney(t, "9.90"), Available: true},
			},
		},
	}
}

func TestRestaurantSearch_TextFilters(t *testing.T) {
	search := services.NewRestaurantSearch()
	candidates := testRestaurants(t)

	t.Run("no criteria returns everything", func(t *testing.T) {
		results, err := search.Search(services.SearchCriteria{}, candidates)

		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("name substring is case-insensitive", func(t *testing.T) {
		results, err := search.Search(services.SearchCriteria{Name: "napoli"}, candidates)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Bella Napoli", results[0].Restaurant.Name)
	})

	t.Run("cuisine is exact", func(t *testing.T) {
		results, err := search.Search(services.SearchCriteria{CuisineType: "Japanese"}, candidates)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Sakura House", results[0].Restaurant.Name)

		results, err = search.Search(services.SearchCriteria{CuisineType: "japanese"}, candidates)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("city filter", func(t *testing.T) {
		results, err := search.Search(services.SearchCriteria{City: "Berlin"}, candidates)

		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		results, err := search.Search(services.SearchCriteria{Name: "nothing matches this"}, candidates)

		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestRestaurantSearch_PriceBand(t *testing.T) {
	search := services.NewRestaurantSearch()
	candidates := testRestaurants(t)

	t.Run("restaurant qualifies when any item is in band", func(t *testing.T) {
		minPrice := mustMoney(t, "6.00")
		maxPrice := mustMoney(t, "7.00")

		results, err := search.Search(services.SearchCriteria{
			MinPrice: &minPrice, MaxPrice: &maxPrice,
		}, candidates)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Bella Napoli", results[0].Restaurant.Name)
	})

	t.Run("open upper bound", func(t *testing.T) {
		minPrice := mustMoney(t, "20.00")

		results, err := search.Search(services.SearchCriteria{MinPrice: &minPrice}, candidates)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Sakura House", results[0].Restaurant.Name)
	})

	t.Run("min greater than max is a validation error", func(t *testing.T) {
		minPrice := mustMoney(t, "10.00")
		maxPrice := mustMoney(t, "5.00")

		_, err := search.Search(services.SearchCriteria{
			MinPrice: &minPrice, MaxPrice: &maxPrice,
		}, candidates)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestaurantSearch_DistanceFilter(t *testing.T) {
	search := services.NewRestaurantSearch()
	candidates := testRestaurants(t)
	// Central Berlin; Sakura House sits ~100 km east.
	origin := mustPoint(t, 52.52, 13.405)

	t.Run("excludes restaurants beyond the bound", func(t *testing.T) {
		results, err := search.Search(services.SearchCriteria{
			Name: "Sakura", Origin: origin, MaxDistanceKm: 5,
		}, candidates)

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("includes the same restaurant under a wider bound", func(t *testing.T) {
		results, err := search.Search(services.SearchCriteria{
			Name: "Sakura", Origin: origin, MaxDistanceKm: 150,
		}, candidates)

		require.NoError(t, err)
		require.Len(t, results, 1)
		require.NotNil(t, results[0].DistanceKm)
		assert.InDelta(t, 100, *results[0].DistanceKm, 5)
	})

	t.Run("missing coordinates fail any distance bound", func(t *testing.T) {
		results, err := search.Search(services.SearchCriteria{
			Origin: origin, MaxDistanceKm: 100000,
		}, candidates)

		require.NoError(t, err)
		for _, r := range results {
			assert.NotEqual(t, "No Coordinates Diner", r.Restaurant.Name)
		}
	})

	t.Run("no bound keeps restaurants without coordinates", func(t *testing.T) {
		results, err := search.Search(services.SearchCriteria{Origin: origin}, candidates)

		require.NoError(t, err)
		assert.Len(t, results, 3)

		for _, r := range results {
			if r.Restaurant.Name == "No Coordinates Diner" {
				assert.Nil(t, r.DistanceKm)
			} else {
				assert.NotNil(t, r.DistanceKm)
			}
		}
	})

	t.Run("negative distance bound rejected", func(t *testing.T) {
		_, err := search.Search(services.SearchCriteria{
			Origin: origin, MaxDistanceKm: -1,
		}, candidates)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
