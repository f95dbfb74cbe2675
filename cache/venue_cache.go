package venue_cache

import (
	"sync"
	"time"

	"github.com/jellies-true/pass-culture/models"
)

const TTL = 5 * time.Minute

// ── Per-offerer venue list cache ─────────────────────────────────────────────
// Stores venues with their offer counts, keyed by offerer ID.
// GetVenues reads from this; the empty key holds the unfiltered list.

type listEntry struct {
	venues      []models.VenueListItem
	offerCounts map[string]int
	fetchedAt   time.Time
}

var (
	listMu    sync.RWMutex
	listCache = map[string]*listEntry{}
)

func GetList(offererID string) (venues []models.VenueListItem, offerCounts map[string]int, ok bool) {
	listMu.RLock()
	defer listMu.RUnlock()
	entry := listCache[offererID]
	if entry != nil && time.Since(entry.fetchedAt) < TTL {
		return entry.venues, entry.offerCounts, true
	}
	return nil, nil, false
}

func SetList(offererID string, venues []models.VenueListItem, offerCounts map[string]int) {
	listMu.Lock()
	defer listMu.Unlock()
	listCache[offererID] = &listEntry{
		venues:      venues,
		offerCounts: offerCounts,
		fetchedAt:   time.Now(),
	}
}

// ── Single venue cache ───────────────────────────────────────────────────────

type venueEntry struct {
	data      *models.Venue
	fetchedAt time.Time
}

var (
	venueMu    sync.RWMutex
	venueCache = map[string]*venueEntry{}
)

func GetVenue(venueID string) (*models.Venue, bool) {
	venueMu.RLock()
	defer venueMu.RUnlock()
	entry := venueCache[venueID]
	if entry != nil && time.Since(entry.fetchedAt) < TTL {
		return entry.data, true
	}
	return nil, false
}

func SetVenue(venueID string, data *models.Venue) {
	venueMu.Lock()
	defer venueMu.Unlock()
	venueCache[venueID] = &venueEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any venue create/update) ──────────────────

func Invalidate() {
	listMu.Lock()
	listCache = map[string]*listEntry{}
	listMu.Unlock()

	venueMu.Lock()
	venueCache = map[string]*venueEntry{}
	venueMu.Unlock()
}
