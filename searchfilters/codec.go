// Package searchfilters maps the list-screen filters to and from URL query
// parameters. Decoding is total: any query string, however degenerate,
// yields a usable filter set. The audience is always passed explicitly so
// the codec stays pure and testable.
package searchfilters

import (
	"net/url"
	"reflect"
	"strconv"
	"time"
)

// Audience selects the per-screen filter defaults.
type Audience string

const (
	AudienceIndividual         Audience = "individual"
	AudienceCollective         Audience = "collective"
	AudienceCollectiveTemplate Audience = "collective-template"
)

// All is the "no filtering" enum sentinel. It is always treated as a
// default and never serialized.
const All = "all"

const dateLayout = "2006-01-02"

// SearchFilters is the flat filter record shared by every offer and booking
// list screen. String zero values mean "no filter" for free-text and date
// fields; enum fields use the All sentinel.
type SearchFilters struct {
	NameOrISBN          string `json:"name_or_isbn"`
	OffererID           string `json:"offerer_id"`
	VenueID             string `json:"venue_id"`
	CategoryID          string `json:"category_id"`
	Format              string `json:"format"`
	Status              string `json:"status"`
	CreationMode        string `json:"creation_mode"`
	CollectiveOfferType string `json:"collective_offer_type"`
	PeriodBeginningDate string `json:"period_beginning_date"`
	PeriodEndingDate    string `json:"period_ending_date"`
	Page                int    `json:"page"`
}

// DefaultsFor returns the default filter set for an audience. The template
// list screen pre-selects the template offer type; everything else is
// shared.
func DefaultsFor(audience Audience) SearchFilters {
	defaults := SearchFilters{
		OffererID:           All,
		VenueID:             All,
		CategoryID:          All,
		Format:              All,
		Status:              All,
		CreationMode:        All,
		CollectiveOfferType: All,
		Page:                1,
	}
	if audience == AudienceCollectiveTemplate {
		defaults.CollectiveOfferType = "template"
	}
	return defaults
}

// Decode builds a filter set from raw query parameters. Recognized
// parameters override the audience defaults when present and non-empty;
// everything else is ignored so hand-edited or stale URLs keep working.
// Malformed dates and page numbers silently fall back to the default.
func Decode(query url.Values, audience Audience) SearchFilters {
	filters := DefaultsFor(audience)

	setString(query, "name", &filters.NameOrISBN)
	setString(query, "offererId", &filters.OffererID)
	setString(query, "venueId", &filters.VenueID)
	setString(query, "categoryId", &filters.CategoryID)
	setString(query, "format", &filters.Format)
	setString(query, "status", &filters.Status)
	setString(query, "creationMode", &filters.CreationMode)
	setString(query, "collectiveOfferType", &filters.CollectiveOfferType)
	setDate(query, "periodBeginningDate", &filters.PeriodBeginningDate)
	setDate(query, "periodEndingDate", &filters.PeriodEndingDate)

	if raw := query.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 {
			filters.Page = page
		}
	}

	return filters
}

// Encode serializes a filter set, omitting every field that equals the
// audience default. The All sentinel is a default by definition, and page 1
// is never emitted, which keeps shared URLs short.
func Encode(filters SearchFilters, audience Audience) url.Values {
	defaults := DefaultsFor(audience)
	query := url.Values{}

	addString(query, "name", filters.NameOrISBN, defaults.NameOrISBN)
	addString(query, "offererId", filters.OffererID, defaults.OffererID)
	addString(query, "venueId", filters.VenueID, defaults.VenueID)
	addString(query, "categoryId", filters.CategoryID, defaults.CategoryID)
	addString(query, "format", filters.Format, defaults.Format)
	addString(query, "status", filters.Status, defaults.Status)
	addString(query, "creationMode", filters.CreationMode, defaults.CreationMode)
	addString(query, "collectiveOfferType", filters.CollectiveOfferType, defaults.CollectiveOfferType)
	addString(query, "periodBeginningDate", filters.PeriodBeginningDate, defaults.PeriodBeginningDate)
	addString(query, "periodEndingDate", filters.PeriodEndingDate, defaults.PeriodEndingDate)

	if filters.Page > 1 {
		query.Set("page", strconv.Itoa(filters.Page))
	}

	return query
}

// HasActiveFilters reports whether any field diverges from the defaults.
// Fields are compared structurally, not by identity, so composite values
// added later keep working.
func HasActiveFilters(filters, defaults SearchFilters) bool {
	fv := reflect.ValueOf(filters)
	dv := reflect.ValueOf(defaults)
	for i := 0; i < fv.NumField(); i++ {
		if !reflect.DeepEqual(fv.Field(i).Interface(), dv.Field(i).Interface()) {
			return true
		}
	}
	return false
}

func setString(query url.Values, key string, dst *string) {
	if v := query.Get(key); v != "" {
		*dst = v
	}
}

// setDate accepts only well-formed calendar dates; anything else keeps the
// default rather than failing the whole decode.
func setDate(query url.Values, key string, dst *string) {
	v := query.Get(key)
	if v == "" {
		return
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		return
	}
	*dst = v
}

func addString(query url.Values, key, value, defaultValue string) {
	if value == defaultValue || value == All {
		return
	}
	query.Set(key, value)
}
