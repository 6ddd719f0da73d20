package service_test

import (
	"context"
	"testing"

	"capi-onboarding-backend/internal/catalog"
	apperrors "capi-onboarding-backend/internal/errors"
	"capi-onboarding-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tipsFixture = `
tips:
- {id: low, page: wizard, priority: 1, message: low}
- {id: default, page: wizard, message: default}
- {id: high, page: wizard, priority: 9, message: high}
- {id: higher, page: wizard, priority: 10, message: higher}
- {id: anywhere, page: any, priority: 2, message: anywhere}
- {id: snow, page: wizard, platform: snowflake, priority: 10, message: snow}
- {id: warehouse, page: wizard, platform: Data Warehouse, priority: 10, message: warehouse}
- {id: phase3, page: wizard, phase: 3, priority: 10, message: phase3}
- {id: dash, page: dashboard, message: dash}
`

const catalogFixture = `
phases:
- {id: 1, name: One}
- {id: 3, name: Three}
platforms:
- {id: snowflake, name: Snowflake, category: Data Warehouse}
- {id: hubspot, name: HubSpot, category: CRM}
`

func tipCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(catalogFixture), []byte(tipsFixture))
	require.NoError(t, err)
	return c
}

// drawAll selects with every possible random draw and returns the distinct results
func drawAll(t *testing.T, c *catalog.Catalog, req *service.TipContext) []string {
	t.Helper()
	seen := map[string]bool{}
	var out []string
	for draw := 0; draw < 3; draw++ {
		d := draw
		svc := service.NewTipService(c, func(n int) int {
			if d >= n {
				return n - 1
			}
			return d
		})
		tip, err := svc.SelectTip(context.Background(), req)
		require.NoError(t, err)
		if tip != nil && !seen[tip.ID] {
			seen[tip.ID] = true
			out = append(out, tip.ID)
		}
	}
	return out
}

func TestSelectTip_TopThreeByPriority(t *testing.T) {
	c := tipCatalog(t)

	got := drawAll(t, c, &service.TipContext{Page: "wizard"})

	// platform and phase scoped tips are excluded without a matching context
	assert.Equal(t, []string{"higher", "high", "default"}, got)
}

func TestSelectTip_PlatformAndCategory(t *testing.T) {
	c := tipCatalog(t)

	got := drawAll(t, c, &service.TipContext{Page: "wizard", Platform: "snowflake"})
	assert.ElementsMatch(t, []string{"higher", "snow", "warehouse"}, got)

	got = drawAll(t, c, &service.TipContext{Page: "wizard", Platform: "hubspot", Phase: 3})
	assert.ElementsMatch(t, []string{"higher", "phase3", "high"}, got)
}

func TestSelectTip_PrefersUnseen(t *testing.T) {
	c := tipCatalog(t)

	got := drawAll(t, c, &service.TipContext{Page: "wizard", SeenTipIDs: []string{"higher", "high"}})
	assert.Equal(t, []string{"default", "anywhere", "low"}, got)

	// once everything is seen the seen tips are eligible again
	all := []string{"low", "default", "high", "higher", "anywhere"}
	got = drawAll(t, c, &service.TipContext{Page: "wizard", SeenTipIDs: all})
	assert.Equal(t, []string{"higher", "high", "default"}, got)
}

func TestSelectTip_NoMatch(t *testing.T) {
	c, err := catalog.Parse([]byte(catalogFixture), []byte("tips:\n- {id: dash, page: dashboard, message: x}\n"))
	require.NoError(t, err)
	svc := service.NewTipService(c, nil)

	tip, err := svc.SelectTip(context.Background(), &service.TipContext{Page: "docs"})
	require.NoError(t, err)
	assert.Nil(t, tip)

	_, err = svc.SelectTip(context.Background(), &service.TipContext{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestSelectTip_EmbeddedCatalog(t *testing.T) {
	svc := service.NewTipService(catalog.MustLoad(), func(int) int { return 0 })

	tip, err := svc.SelectTip(context.Background(), &service.TipContext{Page: "wizard", Platform: "snowflake", Phase: 6})
	require.NoError(t, err)
	require.NotNil(t, tip)
	assert.NotEmpty(t, tip.Message)
	assert.Contains(t, []string{"wizard", catalog.PageAny}, tip.Page)
	if tip.Platform != "" {
		assert.Contains(t, []string{"snowflake", "Data Warehouse"}, tip.Platform)
	}
}
