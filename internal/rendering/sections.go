package rendering

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-builder/internal/types"
)

// SectionKind identifies a top-level resume section
type SectionKind int

// Section kinds, in display order
const (
	SectionBasics SectionKind = iota
	SectionEducation
	SectionWork
	SectionPublications
	SectionProjects
	SectionSkills
	SectionAwards
	SectionCertificates
	SectionVolunteer
	SectionInterests
	SectionLanguages
	SectionReferences
)

// SectionOrder is the fixed order sections appear in the document
var SectionOrder = []SectionKind{
	SectionBasics,
	SectionEducation,
	SectionWork,
	SectionPublications,
	SectionProjects,
	SectionSkills,
	SectionAwards,
	SectionCertificates,
	SectionVolunteer,
	SectionInterests,
	SectionLanguages,
	SectionReferences,
}

// String returns the identifier used for element ids and log fields
func (k SectionKind) String() string {
	switch k {
	case SectionBasics:
		return "basics"
	case SectionEducation:
		return "education"
	case SectionWork:
		return "work"
	case SectionPublications:
		return "publications"
	case SectionProjects:
		return "projects"
	case SectionSkills:
		return "skills"
	case SectionAwards:
		return "awards"
	case SectionCertificates:
		return "certificates"
	case SectionVolunteer:
		return "volunteer"
	case SectionInterests:
		return "interests"
	case SectionLanguages:
		return "languages"
	case SectionReferences:
		return "references"
	default:
		return fmt.Sprintf("section(%d)", int(k))
	}
}

// Notice actions
const (
	ActionSkip   = "skip"
	ActionIgnore = "ignore"
)

const profilesSection = "profiles"

// builder converts resume sections into views, reporting every degradation decision
type builder struct {
	logger *zerolog.Logger
}

func (b *builder) section(kind SectionKind, resume *types.Resume) (SectionView, error) {
	view := SectionView{ID: kind.String()}
	if kind != SectionBasics {
		view.Heading = strings.ToUpper(kind.String()[:1]) + kind.String()[1:]
	}

	switch kind {
	case SectionBasics:
		view.Basics = b.basics(resume.Basics)
	case SectionEducation:
		view.Items = collect(resume.Education, b.education)
	case SectionWork:
		view.Items = collect(resume.Work, b.work)
	case SectionPublications:
		view.Items = collect(resume.Publications, b.publication)
	case SectionProjects:
		view.Items = collect(resume.Projects, b.project)
	case SectionSkills:
		view.Items = collect(resume.Skills, b.skill)
	case SectionAwards:
		view.Items = collect(resume.Awards, b.award)
	case SectionCertificates:
		view.Items = collect(resume.Certificates, b.certificate)
	case SectionVolunteer:
		view.Items = collect(resume.Volunteer, b.volunteer)
	case SectionInterests:
		view.Items = collect(resume.Interests, b.interest)
	case SectionLanguages:
		view.Items = collect(resume.Languages, b.language)
	case SectionReferences:
		view.Items = collect(resume.References, b.reference)
	default:
		return SectionView{}, &TemplateError{Message: fmt.Sprintf("no view for section kind %d", int(kind))}
	}

	return view, nil
}

func collect[T any](items []T, build func(int, T) (ItemView, bool)) []ItemView {
	views := make([]ItemView, 0, len(items))
	for i, item := range items {
		if view, ok := build(i, item); ok {
			views = append(views, view)
		}
	}
	return views
}

// has reports whether a required field is present, logging a skip notice if not
func (b *builder) has(section string, index int, field string, value *string) bool {
	if value != nil {
		return true
	}
	b.logger.Warn().
		Str("section", section).
		Int("index", index).
		Str("field", field).
		Str("action", ActionSkip).
		Msg("required field missing; item skipped")
	return false
}

// ignore logs an ignore notice for a present but unsupported field
func (b *builder) ignore(section string, index int, field string, present bool) {
	if !present {
		return
	}
	b.logger.Warn().
		Str("section", section).
		Int("index", index).
		Str("field", field).
		Str("action", ActionIgnore).
		Msg("unsupported field ignored")
}

func (b *builder) basics(basics types.Basics) *BasicsView {
	section := SectionBasics.String()
	b.ignore(section, 0, "image", basics.Image != nil)
	b.ignore(section, 0, "location.address", basics.Location.Address != nil)
	b.ignore(section, 0, "location.postalCode", basics.Location.PostalCode != nil)

	view := &BasicsView{
		Name:    deref(basics.Name),
		Label:   deref(basics.Label),
		Email:   deref(basics.Email),
		Phone:   deref(basics.Phone),
		URL:     deref(basics.URL),
		Summary: deref(basics.Summary),
		Location: joinPresent(", ",
			basics.Location.City,
			basics.Location.Region,
			basics.Location.CountryCode,
		),
	}

	for i, profile := range basics.Profiles {
		if !b.has(profilesSection, i, "url", profile.URL) {
			continue
		}
		b.ignore(profilesSection, i, "username", profile.Username != nil)
		view.Profiles = append(view.Profiles, ProfileView{
			Network: deref(profile.Network),
			URL:     *profile.URL,
		})
	}

	return view
}

func (b *builder) education(i int, item types.EducationItem) (ItemView, bool) {
	section := SectionEducation.String()
	if !b.has(section, i, "studyType", item.StudyType) ||
		!b.has(section, i, "area", item.Area) ||
		!b.has(section, i, "institution", item.Institution) {
		return ItemView{}, false
	}

	b.ignore(section, i, "url", item.URL != nil)
	b.ignore(section, i, "startDate", item.StartDate != nil)
	b.ignore(section, i, "score", item.Score != nil)
	b.ignore(section, i, "courses", len(item.Courses) > 0)

	title := fmt.Sprintf("%s in %s from %s", *item.StudyType, *item.Area, *item.Institution)
	if item.EndDate != nil {
		title += " (" + year(item.EndDate) + ")"
	}
	return ItemView{Title: title}, true
}

func (b *builder) work(i int, item types.WorkItem) (ItemView, bool) {
	section := SectionWork.String()
	if !b.has(section, i, "name", item.Name) || !b.has(section, i, "position", item.Position) {
		return ItemView{}, false
	}

	b.ignore(section, i, "description", item.Description != nil)

	return ItemView{
		Title:      *item.Position,
		Subtitle:   *item.Name,
		Location:   deref(item.Location),
		Dates:      dateRange(item.StartDate, item.EndDate),
		URL:        deref(item.URL),
		Summary:    deref(item.Summary),
		Highlights: item.Highlights,
	}, true
}

func (b *builder) publication(i int, item types.PublicationsItem) (ItemView, bool) {
	if !b.has(SectionPublications.String(), i, "name", item.Name) {
		return ItemView{}, false
	}

	return ItemView{
		Title:    *item.Name,
		Subtitle: deref(item.Publisher),
		Dates:    year(item.ReleaseDate),
		URL:      deref(item.URL),
		Summary:  deref(item.Summary),
	}, true
}

func (b *builder) project(i int, item types.ProjectsItem) (ItemView, bool) {
	section := SectionProjects.String()
	if !b.has(section, i, "name", item.Name) {
		return ItemView{}, false
	}

	b.ignore(section, i, "entity", item.Entity != nil)
	b.ignore(section, i, "type", item.Type != nil)
	b.ignore(section, i, "roles", len(item.Roles) > 0)

	return ItemView{
		Title:      *item.Name,
		Dates:      dateRange(item.StartDate, item.EndDate),
		URL:        deref(item.URL),
		Summary:    deref(item.Description),
		Highlights: item.Highlights,
		Keywords:   item.Keywords,
	}, true
}

func (b *builder) skill(i int, item types.SkillsItem) (ItemView, bool) {
	if !b.has(SectionSkills.String(), i, "name", item.Name) {
		return ItemView{}, false
	}

	return ItemView{
		Title:    *item.Name,
		Subtitle: deref(item.Level),
		Keywords: item.Keywords,
	}, true
}

func (b *builder) award(i int, item types.AwardsItem) (ItemView, bool) {
	if !b.has(SectionAwards.String(), i, "title", item.Title) {
		return ItemView{}, false
	}

	return ItemView{
		Title:    *item.Title,
		Subtitle: deref(item.Awarder),
		Dates:    year(item.Date),
		Summary:  deref(item.Summary),
	}, true
}

func (b *builder) certificate(i int, item types.CertificatesItem) (ItemView, bool) {
	if !b.has(SectionCertificates.String(), i, "name", item.Name) {
		return ItemView{}, false
	}

	return ItemView{
		Title:    *item.Name,
		Subtitle: deref(item.Issuer),
		Dates:    year(item.Date),
		URL:      deref(item.URL),
	}, true
}

func (b *builder) volunteer(i int, item types.VolunteerItem) (ItemView, bool) {
	if !b.has(SectionVolunteer.String(), i, "organization", item.Organization) {
		return ItemView{}, false
	}

	return ItemView{
		Title:      *item.Organization,
		Subtitle:   deref(item.Position),
		Dates:      dateRange(item.StartDate, item.EndDate),
		URL:        deref(item.URL),
		Summary:    deref(item.Summary),
		Highlights: item.Highlights,
	}, true
}

func (b *builder) interest(i int, item types.InterestsItem) (ItemView, bool) {
	if !b.has(SectionInterests.String(), i, "name", item.Name) {
		return ItemView{}, false
	}

	return ItemView{
		Title:    *item.Name,
		Keywords: item.Keywords,
	}, true
}

func (b *builder) language(i int, item types.LanguagesItem) (ItemView, bool) {
	if !b.has(SectionLanguages.String(), i, "language", item.Language) {
		return ItemView{}, false
	}

	return ItemView{
		Title:    *item.Language,
		Subtitle: deref(item.Fluency),
	}, true
}

func (b *builder) reference(i int, item types.ReferencesItem) (ItemView, bool) {
	if !b.has(SectionReferences.String(), i, "reference", item.Reference) {
		return ItemView{}, false
	}

	return ItemView{
		Summary:  *item.Reference,
		Subtitle: deref(item.Name),
	}, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func joinPresent(sep string, values ...*string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != nil && *v != "" {
			parts = append(parts, *v)
		}
	}
	return strings.Join(parts, sep)
}

// year renders only the year component, whatever the precision
func year(d *types.PartialDate) string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("%04d", d.Year())
}

func dateRange(start, end *types.PartialDate) string {
	switch {
	case start != nil && end != nil:
		return year(start) + " – " + year(end)
	case start != nil:
		return year(start) + " – Present"
	default:
		return year(end)
	}
}
