package searchfilters

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsFor(t *testing.T) {
	individual := DefaultsFor(AudienceIndividual)
	assert.Equal(t, All, individual.VenueID)
	assert.Equal(t, All, individual.Status)
	assert.Equal(t, All, individual.CollectiveOfferType)
	assert.Equal(t, 1, individual.Page)
	assert.Empty(t, individual.NameOrISBN)

	template := DefaultsFor(AudienceCollectiveTemplate)
	assert.Equal(t, "template", template.CollectiveOfferType)
}

func TestDecode(t *testing.T) {
	t.Run("overrides defaults with present params", func(t *testing.T) {
		query := url.Values{
			"venueId": {"666"},
			"status":  {"ACTIVE"},
			"name":    {"musée"},
		}
		filters := Decode(query, AudienceCollective)

		assert.Equal(t, "666", filters.VenueID)
		assert.Equal(t, "ACTIVE", filters.Status)
		assert.Equal(t, "musée", filters.NameOrISBN)
		// Untouched fields keep their defaults.
		assert.Equal(t, All, filters.OffererID)
		assert.Equal(t, 1, filters.Page)
	})

	t.Run("ignores unrecognized params", func(t *testing.T) {
		query := url.Values{
			"utm_source": {"newsletter"},
			"foo":        {"bar"},
		}
		assert.Equal(t, DefaultsFor(AudienceIndividual), Decode(query, AudienceIndividual))
	})

	t.Run("empty values fall back to defaults", func(t *testing.T) {
		query := url.Values{"venueId": {""}}
		assert.Equal(t, All, Decode(query, AudienceIndividual).VenueID)
	})

	t.Run("malformed dates fall back to defaults", func(t *testing.T) {
		tests := []string{"not-a-date", "2024-13-45", "2024/06/15", "15-06-2024"}
		for _, raw := range tests {
			query := url.Values{"periodBeginningDate": {raw}}
			filters := Decode(query, AudienceIndividual)
			assert.Empty(t, filters.PeriodBeginningDate, "input %q", raw)
		}
	})

	t.Run("well-formed dates are kept", func(t *testing.T) {
		query := url.Values{
			"periodBeginningDate": {"2024-06-01"},
			"periodEndingDate":    {"2024-06-30"},
		}
		filters := Decode(query, AudienceIndividual)
		assert.Equal(t, "2024-06-01", filters.PeriodBeginningDate)
		assert.Equal(t, "2024-06-30", filters.PeriodEndingDate)
	})

	t.Run("invalid page falls back to 1", func(t *testing.T) {
		for _, raw := range []string{"abc", "0", "-3"} {
			query := url.Values{"page": {raw}}
			assert.Equal(t, 1, Decode(query, AudienceIndividual).Page, "input %q", raw)
		}
	})
}

func TestEncode(t *testing.T) {
	t.Run("omits default-valued fields", func(t *testing.T) {
		filters := DefaultsFor(AudienceCollective)
		filters.VenueID = "666"

		query := Encode(filters, AudienceCollective)

		assert.Equal(t, "666", query.Get("venueId"))
		assert.Len(t, query, 1, "only the diverging field is emitted")
	})

	t.Run("all sentinel is never emitted", func(t *testing.T) {
		// Template audience defaults collectiveOfferType to "template";
		// setting it back to "all" still must not serialize.
		filters := DefaultsFor(AudienceCollectiveTemplate)
		filters.CollectiveOfferType = All

		query := Encode(filters, AudienceCollectiveTemplate)
		assert.Empty(t, query.Get("collectiveOfferType"))
	})

	t.Run("page one omitted, later pages kept", func(t *testing.T) {
		filters := DefaultsFor(AudienceIndividual)
		assert.Empty(t, Encode(filters, AudienceIndividual).Get("page"))

		filters.Page = 3
		assert.Equal(t, "3", Encode(filters, AudienceIndividual).Get("page"))
	})
}

func TestRoundTrip(t *testing.T) {
	// decode(encode(f)) == merge(defaults, f): every field that survives
	// encoding round-trips, fields equal to defaults are restored as such.
	filters := DefaultsFor(AudienceCollective)
	filters.NameOrISBN = "concert"
	filters.VenueID = "42"
	filters.Status = "SOLD_OUT"
	filters.PeriodBeginningDate = "2024-06-01"
	filters.Page = 2

	decoded := Decode(Encode(filters, AudienceCollective), AudienceCollective)
	assert.Equal(t, filters, decoded)
}

func TestHasActiveFilters(t *testing.T) {
	defaults := DefaultsFor(AudienceIndividual)

	assert.False(t, HasActiveFilters(defaults, defaults))

	modified := defaults
	modified.VenueID = "42"
	assert.True(t, HasActiveFilters(modified, defaults))

	paged := defaults
	paged.Page = 2
	assert.True(t, HasActiveFilters(paged, defaults))
}
