package navigation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jellies-true/pass-culture/models"
)

var offerID = uuid.MustParse("018f4a5e-0000-7000-8000-000000000042")

func stepIDsOf(steps []Step) []StepID {
	ids := make([]StepID, len(steps))
	for i, s := range steps {
		ids[i] = s.ID
	}
	return ids
}

func TestComputeSteps_IndividualCreation(t *testing.T) {
	steps, err := ComputeSteps(Params{
		Kind:       models.OfferKindIndividual,
		Mode:       ModeCreation,
		Status:     models.StatusDraft,
		ActiveStep: StepDetails,
	})
	require.NoError(t, err)

	assert.Equal(t,
		[]StepID{StepDetails, StepStocks, StepSummary, StepConfirmation},
		stepIDsOf(steps))

	// No offer yet: only the first step is reachable.
	assert.Equal(t, "/offer/individual/creation/details", steps[0].URL)
	assert.True(t, steps[0].Active)
	for _, s := range steps[1:] {
		assert.Empty(t, s.URL, "step %s must not be reachable yet", s.ID)
		assert.False(t, s.Active)
	}
}

func TestComputeSteps_CreationGating(t *testing.T) {
	steps, err := ComputeSteps(Params{
		Kind:       models.OfferKindIndividual,
		Mode:       ModeCreation,
		Status:     models.StatusDraft,
		ActiveStep: StepSummary,
		OfferID:    &offerID,
	})
	require.NoError(t, err)

	// Steps up to the furthest-reached one are links, later ones are not.
	assert.Equal(t, "/offer/individual/"+offerID.String()+"/creation/details", steps[0].URL)
	assert.Equal(t, "/offer/individual/"+offerID.String()+"/creation/stocks", steps[1].URL)
	assert.Equal(t, "/offer/individual/"+offerID.String()+"/creation/summary", steps[2].URL)
	assert.Empty(t, steps[3].URL)

	assert.True(t, steps[2].Active)
	assert.False(t, steps[0].Active)
}

func TestComputeSteps_CollectiveBookableCreation(t *testing.T) {
	steps, err := ComputeSteps(Params{
		Kind:       models.OfferKindCollectiveBookable,
		Mode:       ModeCreation,
		Status:     models.StatusDraft,
		ActiveStep: StepDetails,
		OfferID:    &offerID,
	})
	require.NoError(t, err)

	assert.Equal(t,
		[]StepID{StepDetails, StepStocks, StepVisibility, StepSummary, StepConfirmation},
		stepIDsOf(steps))
	assert.Equal(t, "Dates and prices", steps[1].Label)
	assert.Equal(t, "Institution and teacher", steps[2].Label)
}

func TestComputeSteps_TemplateOmitsStocksAndVisibility(t *testing.T) {
	steps, err := ComputeSteps(Params{
		Kind:       models.OfferKindCollectiveTemplate,
		Mode:       ModeCreation,
		Status:     models.StatusDraft,
		ActiveStep: StepDetails,
		OfferID:    &offerID,
	})
	require.NoError(t, err)

	ids := stepIDsOf(steps)
	assert.Equal(t, []StepID{StepDetails, StepSummary, StepConfirmation}, ids)
	assert.NotContains(t, ids, StepStocks)
	assert.NotContains(t, ids, StepVisibility)
}

func TestComputeSteps_EditionLinksEverything(t *testing.T) {
	steps, err := ComputeSteps(Params{
		Kind:       models.OfferKindIndividual,
		Mode:       ModeEdition,
		Status:     models.StatusActive,
		ActiveStep: StepStocks,
		OfferID:    &offerID,
	})
	require.NoError(t, err)

	// Edition drops the creation-only stages.
	assert.Equal(t, []StepID{StepDetails, StepStocks}, stepIDsOf(steps))
	for _, s := range steps {
		assert.NotEmpty(t, s.URL)
	}
	assert.Equal(t, "/offer/individual/"+offerID.String()+"/edition/stocks", steps[1].URL)
	assert.True(t, steps[1].Active)
}

func TestComputeSteps_ReadOnlyURLs(t *testing.T) {
	steps, err := ComputeSteps(Params{
		Kind:       models.OfferKindCollectiveBookable,
		Mode:       ModeReadOnly,
		Status:     models.StatusActive,
		ActiveStep: StepDetails,
		OfferID:    &offerID,
	})
	require.NoError(t, err)

	assert.Equal(t, []StepID{StepDetails, StepStocks, StepVisibility}, stepIDsOf(steps))
	assert.Equal(t, "/offer/collective/"+offerID.String()+"/details", steps[0].URL)
}

func TestComputeSteps_EditionWithoutOfferID(t *testing.T) {
	_, err := ComputeSteps(Params{
		Kind:       models.OfferKindIndividual,
		Mode:       ModeEdition,
		Status:     models.StatusActive,
		ActiveStep: StepDetails,
	})
	assert.ErrorIs(t, err, ErrInvalidOfferID)
}

func TestComputeSteps_ArchivedHasNoSteps(t *testing.T) {
	steps, err := ComputeSteps(Params{
		Kind:       models.OfferKindIndividual,
		Mode:       ModeEdition,
		Status:     models.StatusArchived,
		ActiveStep: StepDetails,
		OfferID:    &offerID,
	})
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestComputeSteps_RequestIDOnlyChangesURLs(t *testing.T) {
	with, err := ComputeSteps(Params{
		Kind:       models.OfferKindCollectiveBookable,
		Mode:       ModeCreation,
		Status:     models.StatusDraft,
		ActiveStep: StepStocks,
		OfferID:    &offerID,
		RequestID:  "req-7",
	})
	require.NoError(t, err)

	without, err := ComputeSteps(Params{
		Kind:       models.OfferKindCollectiveBookable,
		Mode:       ModeCreation,
		Status:     models.StatusDraft,
		ActiveStep: StepStocks,
		OfferID:    &offerID,
	})
	require.NoError(t, err)

	require.Equal(t, stepIDsOf(without), stepIDsOf(with))
	assert.Equal(t,
		"/offer/collective/"+offerID.String()+"/creation/stocks?requestId=req-7",
		with[1].URL)
	assert.Equal(t,
		"/offer/collective/"+offerID.String()+"/creation/stocks",
		without[1].URL)
}

func TestComputeSteps_UnknownActiveStepFallsBackToFirst(t *testing.T) {
	steps, err := ComputeSteps(Params{
		Kind:       models.OfferKindCollectiveTemplate,
		Mode:       ModeCreation,
		Status:     models.StatusDraft,
		ActiveStep: StepVisibility, // not part of the template step set
		OfferID:    &offerID,
	})
	require.NoError(t, err)
	assert.True(t, steps[0].Active)
}
