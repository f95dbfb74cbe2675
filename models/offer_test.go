package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOfferKind_Valid(t *testing.T) {
	assert.True(t, OfferKindIndividual.Valid())
	assert.True(t, OfferKindCollectiveBookable.Valid())
	assert.True(t, OfferKindCollectiveTemplate.Valid())

	assert.False(t, OfferKind("").Valid())
	assert.False(t, OfferKind("collective").Valid())
	assert.False(t, OfferKind("INDIVIDUAL").Valid())
}

func TestOfferKind_IsCollective(t *testing.T) {
	assert.False(t, OfferKindIndividual.IsCollective())
	assert.True(t, OfferKindCollectiveBookable.IsCollective())
	assert.True(t, OfferKindCollectiveTemplate.IsCollective())
}

func TestOfferKind_IsTemplate(t *testing.T) {
	assert.False(t, OfferKindIndividual.IsTemplate())
	assert.False(t, OfferKindCollectiveBookable.IsTemplate())
	assert.True(t, OfferKindCollectiveTemplate.IsTemplate())
}

func TestOffer_IsArchived(t *testing.T) {
	offer := Offer{}
	assert.False(t, offer.IsArchived())

	archivedAt := time.Now()
	offer.ArchivedAt = &archivedAt
	assert.True(t, offer.IsArchived())
}
