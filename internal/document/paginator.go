package document

import (
	"errors"
	"math"
)

var (
	ErrPageTooSmall  = errors.New("page height leaves no printable area after margins")
	ErrPageTooNarrow = errors.New("page width leaves no printable area after margins")
	ErrEmptySource   = errors.New("source image has no area")
)

// PageLayout describes the target page in millimetres.
type PageLayout struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
}

// A4 portrait with a uniform 10mm margin.
var DefaultLayout = PageLayout{
	PageWidth:  210,
	PageHeight: 297,
	Margin:     10,
}

// PageSlice places the full source image on one page. OffsetY is the
// vertical position (mm) at which the image top sits on that page;
// negative values shift earlier content above the printable area so each
// page exposes the next strip.
type PageSlice struct {
	Page    int
	OffsetY float64
}

// Pagination is the computed plan for laying a tall rendered document
// across pages.
type Pagination struct {
	ContentWidth  float64
	ContentHeight float64
	StripHeight   float64
	Slices        []PageSlice
}

// Paginate fits a rendered image of srcWidth x srcHeight pixels onto
// pages. The image is scaled to the printable width; its scaled height is
// then walked page by page, each page showing one strip of
// pageHeight-2*margin.
func Paginate(srcWidth, srcHeight int, layout PageLayout) (Pagination, error) {
	if srcWidth <= 0 || srcHeight <= 0 {
		return Pagination{}, ErrEmptySource
	}

	contentWidth := layout.PageWidth - 2*layout.Margin
	if contentWidth <= 0 {
		return Pagination{}, ErrPageTooNarrow
	}

	stripHeight := layout.PageHeight - 2*layout.Margin
	if stripHeight <= 0 {
		return Pagination{}, ErrPageTooSmall
	}

	contentHeight := float64(srcHeight) * contentWidth / float64(srcWidth)
	pages := int(math.Ceil(contentHeight / stripHeight))
	if pages < 1 {
		pages = 1
	}

	slices := make([]PageSlice, pages)
	for i := 0; i < pages; i++ {
		// Page i shows the strip starting at i*stripHeight of the
		// scaled image, so the image top moves up by that much.
		slices[i] = PageSlice{
			Page:    i + 1,
			OffsetY: layout.Margin - float64(i)*stripHeight,
		}
	}

	return Pagination{
		ContentWidth:  contentWidth,
		ContentHeight: contentHeight,
		StripHeight:   stripHeight,
		Slices:        slices,
	}, nil
}
