package document

import "image"

// Surface is anything that can toggle section visibility and produce a
// bitmap of its current state.
type Surface interface {
	SetSectionVisible(title string, visible bool)
	Snapshot() (*image.RGBA, error)
}

// Capture snapshots the surface with every ExcludeFromCapture section
// hidden. Visibility is restored before returning, whether or not the
// snapshot succeeds.
func Capture(s Surface, t Template) (*image.RGBA, error) {
	var hidden []string
	for _, sec := range t.Sections {
		if sec.ExcludeFromCapture {
			hidden = append(hidden, sec.Title)
		}
	}

	for _, title := range hidden {
		s.SetSectionVisible(title, false)
	}
	defer func() {
		for _, title := range hidden {
			s.SetSectionVisible(title, true)
		}
	}()

	return s.Snapshot()
}

// templateSurface renders a Template directly. Hiding a section removes
// it from the next snapshot.
type templateSurface struct {
	template Template
	hidden   map[string]bool
}

func NewTemplateSurface(t Template) Surface {
	return &templateSurface{template: t, hidden: make(map[string]bool)}
}

func (s *templateSurface) SetSectionVisible(title string, visible bool) {
	if visible {
		delete(s.hidden, title)
	} else {
		s.hidden[title] = true
	}
}

func (s *templateSurface) Snapshot() (*image.RGBA, error) {
	visible := Template{
		Heading:    s.template.Heading,
		Subheading: s.template.Subheading,
	}
	for _, sec := range s.template.Sections {
		if s.hidden[sec.Title] {
			continue
		}
		visible.Sections = append(visible.Sections, sec)
	}
	return Rasterize(visible), nil
}
