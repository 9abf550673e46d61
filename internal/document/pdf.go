package document

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/jung-kurt/gofpdf"
)

// Renderer turns payslip data into a finished PDF.
type Renderer interface {
	Render(data PayslipData) ([]byte, error)
}

type pdfRenderer struct {
	layout PageLayout
}

func NewPDFRenderer() Renderer {
	return &pdfRenderer{layout: DefaultLayout}
}

func NewPDFRendererWithLayout(layout PageLayout) Renderer {
	return &pdfRenderer{layout: layout}
}

// Render rasterizes the payslip template to one tall image, then places
// that same image on every page at a rising negative offset so each page
// clips out its own strip.
func (r *pdfRenderer) Render(data PayslipData) ([]byte, error) {
	template := BuildPayslipTemplate(data)

	img, err := Capture(NewTemplateSurface(template), template)
	if err != nil {
		return nil, fmt.Errorf("capture payslip surface: %w", err)
	}

	return ComposePDF(img, r.layout)
}

// ComposePDF lays a rendered image across pages per the pagination plan.
func ComposePDF(img *image.RGBA, layout PageLayout) ([]byte, error) {
	bounds := img.Bounds()
	plan, err := Paginate(bounds.Dx(), bounds.Dy(), layout)
	if err != nil {
		return nil, err
	}

	var encoded bytes.Buffer
	if err := jpeg.Encode(&encoded, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encode payslip image: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)

	const imageName = "payslip"
	opts := gofpdf.ImageOptions{ImageType: "JPEG"}
	pdf.RegisterImageOptionsReader(imageName, opts, bytes.NewReader(encoded.Bytes()))

	for _, slice := range plan.Slices {
		pdf.AddPage()
		pdf.ImageOptions(
			imageName,
			layout.Margin, slice.OffsetY,
			plan.ContentWidth, plan.ContentHeight,
			false, opts, 0, "",
		)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return out.Bytes(), nil
}
