package document

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateSinglePage(t *testing.T) {
	// Source aspect ratio fits well within one page strip.
	plan, err := Paginate(794, 500, DefaultLayout)

	assert.NoError(t, err)
	assert.Len(t, plan.Slices, 1)
	assert.Equal(t, 1, plan.Slices[0].Page)
	assert.Equal(t, DefaultLayout.Margin, plan.Slices[0].OffsetY)
	assert.InDelta(t, 190.0, plan.ContentWidth, 1e-9)
}

func TestPaginateMultiPageOffsets(t *testing.T) {
	// Tall source: scaled height 190*4000/794 ≈ 957mm over 277mm strips.
	plan, err := Paginate(794, 4000, DefaultLayout)

	assert.NoError(t, err)
	assert.Equal(t, 4, len(plan.Slices))

	strip := DefaultLayout.PageHeight - 2*DefaultLayout.Margin
	for i, slice := range plan.Slices {
		assert.Equal(t, i+1, slice.Page)
		assert.InDelta(t, DefaultLayout.Margin-float64(i)*strip, slice.OffsetY, 1e-9)
	}
}

func TestPaginatePageCountMatchesCeil(t *testing.T) {
	layouts := []PageLayout{
		DefaultLayout,
		{PageWidth: 148, PageHeight: 210, Margin: 5},
		{PageWidth: 210, PageHeight: 297, Margin: 25},
	}
	sources := [][2]int{{794, 1}, {794, 1122}, {794, 10000}, {400, 3000}, {1600, 50}}

	for _, layout := range layouts {
		strip := layout.PageHeight - 2*layout.Margin
		for _, src := range sources {
			plan, err := Paginate(src[0], src[1], layout)
			assert.NoError(t, err)

			expected := int(math.Ceil(plan.ContentHeight / strip))
			if expected < 1 {
				expected = 1
			}
			assert.Equal(t, expected, len(plan.Slices),
				"src %v layout %+v", src, layout)

			// Everything past the last slice's strip is empty: the plan
			// always terminates and covers the full content height.
			last := plan.Slices[len(plan.Slices)-1]
			covered := float64(len(plan.Slices)) * strip
			assert.GreaterOrEqual(t, covered, plan.ContentHeight)
			assert.LessOrEqual(t, layout.Margin-last.OffsetY, plan.ContentHeight)
		}
	}
}

func TestPaginateRejectsDegenerateLayouts(t *testing.T) {
	_, err := Paginate(794, 1122, PageLayout{PageWidth: 210, PageHeight: 20, Margin: 10})
	assert.ErrorIs(t, err, ErrPageTooSmall)

	_, err = Paginate(794, 1122, PageLayout{PageWidth: 20, PageHeight: 297, Margin: 10})
	assert.ErrorIs(t, err, ErrPageTooNarrow)

	_, err = Paginate(0, 1122, DefaultLayout)
	assert.ErrorIs(t, err, ErrEmptySource)

	_, err = Paginate(794, 0, DefaultLayout)
	assert.ErrorIs(t, err, ErrEmptySource)
}
