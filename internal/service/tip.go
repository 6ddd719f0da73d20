package service

import (
	"context"
	"math/rand"
	"sort"

	"capi-onboarding-backend/internal/catalog"
	apperrors "capi-onboarding-backend/internal/errors"
)

// maxTipCandidates is how many of the highest priority tips are drawn from
const maxTipCandidates = 3

// TipContext describes where the user is and which tips they have already seen
type TipContext struct {
	Page       string   `json:"page" example:"wizard"`
	Platform   string   `json:"platform,omitempty" example:"snowflake"`
	Phase      int      `json:"phase,omitempty" example:"2"`
	SeenTipIDs []string `json:"seenTipIds,omitempty"`
}

// TipService picks assistant tips from the catalog
type TipService struct {
	catalog *catalog.Catalog
	intn    func(n int) int
}

// NewTipService creates a tip selector. A nil intn uses math/rand.
func NewTipService(cat *catalog.Catalog, intn func(n int) int) *TipService {
	if intn == nil {
		intn = rand.Intn
	}
	return &TipService{catalog: cat, intn: intn}
}

// SelectTip returns a tip matching the context, preferring ones not yet seen,
// drawn uniformly from the top priorities. It returns nil when nothing matches.
func (s *TipService) SelectTip(_ context.Context, req *TipContext) (*catalog.Tip, error) {
	if req == nil || req.Page == "" {
		return nil, apperrors.NewValidationError("page", "is required")
	}

	category := ""
	if p, ok := s.catalog.Platform(req.Platform); ok {
		category = p.Category
	}
	seen := make(map[string]struct{}, len(req.SeenTipIDs))
	for _, id := range req.SeenTipIDs {
		seen[id] = struct{}{}
	}

	var matching, unseen []catalog.Tip
	for _, tip := range s.catalog.Tips() {
		if !tipMatches(tip, req, category) {
			continue
		}
		matching = append(matching, tip)
		if _, ok := seen[tip.ID]; !ok {
			unseen = append(unseen, tip)
		}
	}

	candidates := unseen
	if len(candidates) == 0 {
		candidates = matching
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].EffectivePriority() > candidates[j].EffectivePriority()
	})
	if len(candidates) > maxTipCandidates {
		candidates = candidates[:maxTipCandidates]
	}
	tip := candidates[s.intn(len(candidates))]
	return &tip, nil
}

func tipMatches(tip catalog.Tip, req *TipContext, category string) bool {
	if tip.Page != req.Page && tip.Page != catalog.PageAny {
		return false
	}
	if tip.Platform != "" && tip.Platform != req.Platform && (category == "" || tip.Platform != category) {
		return false
	}
	if tip.Phase != 0 && tip.Phase != req.Phase {
		return false
	}
	return true
}
