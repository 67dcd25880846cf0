package rendering

import (
	"context"
	_ "embed"
	"html/template"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/resume.html.tmpl
var resumeTemplateText string

//go:embed templates/style.css
var styleSheet string

var resumeTemplate = template.Must(template.New("resume").Parse(resumeTemplateText))

// Options controls a single render
type Options struct {
	// Now supplies the date shown in the document title; defaults to time.Now
	Now func() time.Time
}

// TemplateData represents the data structure passed to the HTML template
type TemplateData struct {
	Title    string
	Style    template.CSS
	Sections []SectionView
}

// SectionView is one top-level section container. Basics is set only for the basics
// section; every other kind renders Items as a list, which may be empty.
type SectionView struct {
	ID      string
	Heading string
	Basics  *BasicsView
	Items   []ItemView
}

// BasicsView holds the rendered header fields
type BasicsView struct {
	Name     string
	Label    string
	Email    string
	Phone    string
	URL      string
	Location string
	Summary  string
	Profiles []ProfileView
}

// ProfileView is a single social profile link
type ProfileView struct {
	Network string
	URL     string
}

// ItemView is a single list entry. Empty fields are not rendered.
type ItemView struct {
	Title      string
	Subtitle   string
	Dates      string
	Location   string
	URL        string
	Summary    string
	Highlights []string
	Keywords   []string
}

// RenderHTML renders resume as a complete HTML document. Missing optional data never
// fails the render: items lacking a required field are skipped and unsupported fields
// are ignored, each with a warning on the logger carried by ctx.
func RenderHTML(ctx context.Context, resume types.Resume, opts Options) (string, error) {
	data, err := buildTemplateData(ctx, resume, opts)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := resumeTemplate.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// buildTemplateData walks every section in display order
func buildTemplateData(ctx context.Context, resume types.Resume, opts Options) (*TemplateData, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	b := &builder{logger: zerolog.Ctx(ctx)}
	sections := make([]SectionView, 0, len(SectionOrder))
	for _, kind := range SectionOrder {
		section, err := b.section(kind, &resume)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	return &TemplateData{
		Title:    documentTitle(resume.Basics.Name, now()),
		Style:    template.CSS(styleSheet),
		Sections: sections,
	}, nil
}

func documentTitle(name *string, now time.Time) string {
	title := "Resume"
	if name != nil {
		title = *name
	}
	return title + " - " + now.Format("2006-01-02")
}
