// Package navigation computes the offer wizard step list: which steps are
// visible for an offer kind, which are reachable links, and where each one
// points. All gating rules live here so the screens stay dumb.
package navigation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jellies-true/pass-culture/models"
)

// Mode governs step gating and control interactivity on the host screen.
type Mode string

const (
	ModeCreation Mode = "creation"
	ModeEdition  Mode = "edition"
	ModeReadOnly Mode = "read-only"
)

// Valid reports whether m is one of the three known modes.
func (m Mode) Valid() bool {
	return m == ModeCreation || m == ModeEdition || m == ModeReadOnly
}

// StepID identifies a wizard stage.
type StepID string

const (
	StepDetails      StepID = "details"
	StepStocks       StepID = "stocks"
	StepVisibility   StepID = "visibility"
	StepSummary      StepID = "summary"
	StepConfirmation StepID = "confirmation"
)

// Step is one entry of the wizard navigation. An empty URL renders as a
// plain, non-clickable label.
type Step struct {
	ID     StepID `json:"id"`
	Label  string `json:"label"`
	URL    string `json:"url,omitempty"`
	Active bool   `json:"active"`
}

// Params carries everything the navigator needs; it holds no state between
// calls.
type Params struct {
	Kind       models.OfferKind
	Mode       Mode
	Status     models.OfferStatus
	ActiveStep StepID
	OfferID    *uuid.UUID
	// RequestID is the in-flight duplication-from-template request, if any.
	// Its absence never changes step ordering or visibility, only URLs.
	RequestID string
}

// ErrInvalidOfferID is returned when a step URL requires an offer id and
// none was supplied. The caller surfaces it to the user; emitting a
// malformed URL instead is never acceptable.
var ErrInvalidOfferID = errors.New("invalid offer identifier")

// ComputeSteps returns the ordered step list for the given offer state.
// An archived offer has no steps at all: the host screen must not render
// navigation for it.
func ComputeSteps(p Params) ([]Step, error) {
	if p.Status == models.StatusArchived {
		return []Step{}, nil
	}

	ids := stepIDs(p.Kind, p.Mode)
	activeIdx := indexOf(ids, p.ActiveStep)
	if activeIdx < 0 {
		activeIdx = 0
	}

	if p.Mode != ModeCreation && p.OfferID == nil {
		return nil, ErrInvalidOfferID
	}

	steps := make([]Step, 0, len(ids))
	for i, id := range ids {
		step := Step{
			ID:     id,
			Label:  stepLabel(id, p.Kind),
			Active: i == activeIdx,
		}
		if hasURL(p, i, activeIdx) {
			step.URL = stepURL(p, id)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// stepIDs returns the visible step set. Creation carries the full wizard;
// edition and read-only drop the summary/confirmation stages because the
// offer already exists end-to-end. Templates have neither bookable stock
// nor an institution assignment, so their stocks and visibility steps are
// omitted entirely.
func stepIDs(kind models.OfferKind, mode Mode) []StepID {
	creation := mode == ModeCreation

	switch kind {
	case models.OfferKindCollectiveTemplate:
		if creation {
			return []StepID{StepDetails, StepSummary, StepConfirmation}
		}
		return []StepID{StepDetails}
	case models.OfferKindCollectiveBookable:
		if creation {
			return []StepID{StepDetails, StepStocks, StepVisibility, StepSummary, StepConfirmation}
		}
		return []StepID{StepDetails, StepStocks, StepVisibility}
	default: // individual
		if creation {
			return []StepID{StepDetails, StepStocks, StepSummary, StepConfirmation}
		}
		return []StepID{StepDetails, StepStocks}
	}
}

func stepLabel(id StepID, kind models.OfferKind) string {
	switch id {
	case StepDetails:
		return "Offer details"
	case StepStocks:
		if kind.IsCollective() {
			return "Dates and prices"
		}
		return "Stocks and prices"
	case StepVisibility:
		return "Institution and teacher"
	case StepSummary:
		return "Summary"
	case StepConfirmation:
		return "Confirmation"
	}
	return string(id)
}

// hasURL decides link vs. plain label. In creation the wizard is strictly
// gated: a step is reachable only once every step before it has been
// submitted, i.e. up to the active step. Steps past the first also need a
// persisted offer. Edition and read-only always link everything.
func hasURL(p Params, idx, activeIdx int) bool {
	if p.Mode != ModeCreation {
		return true
	}
	if idx > activeIdx {
		return false
	}
	if idx > 0 && p.OfferID == nil {
		return false
	}
	return true
}

func stepURL(p Params, id StepID) string {
	base := kindPath(p.Kind)

	var url string
	switch {
	case p.Mode == ModeCreation && p.OfferID == nil:
		url = fmt.Sprintf("/offer/%s/creation/%s", base, id)
	case p.Mode == ModeCreation:
		url = fmt.Sprintf("/offer/%s/%s/creation/%s", base, p.OfferID, id)
	case p.Mode == ModeEdition:
		url = fmt.Sprintf("/offer/%s/%s/edition/%s", base, p.OfferID, id)
	default: // read-only
		url = fmt.Sprintf("/offer/%s/%s/%s", base, p.OfferID, id)
	}

	if p.RequestID != "" && p.Kind.IsCollective() && p.Mode == ModeCreation {
		url += "?requestId=" + p.RequestID
	}
	return url
}

func kindPath(kind models.OfferKind) string {
	switch kind {
	case models.OfferKindCollectiveTemplate:
		return "collective/template"
	case models.OfferKindCollectiveBookable:
		return "collective"
	default:
		return "individual"
	}
}

func indexOf(ids []StepID, id StepID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
