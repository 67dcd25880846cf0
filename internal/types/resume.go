// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume is the canonical, normalized resume document every input format decodes into.
// It follows the JSON Resume vocabulary. Every scalar is optional (nil when absent) and
// every section defaults to empty; keys the model does not know are ignored on decode.
type Resume struct {
	Schema       *string            `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	Basics       Basics             `json:"basics" yaml:"basics"`
	Work         []WorkItem         `json:"work,omitempty" yaml:"work,omitempty" validate:"dive"`
	Volunteer    []VolunteerItem    `json:"volunteer,omitempty" yaml:"volunteer,omitempty" validate:"dive"`
	Education    []EducationItem    `json:"education,omitempty" yaml:"education,omitempty" validate:"dive"`
	Awards       []AwardsItem       `json:"awards,omitempty" yaml:"awards,omitempty" validate:"dive"`
	Certificates []CertificatesItem `json:"certificates,omitempty" yaml:"certificates,omitempty" validate:"dive"`
	Publications []PublicationsItem `json:"publications,omitempty" yaml:"publications,omitempty" validate:"dive"`
	Skills       []SkillsItem       `json:"skills,omitempty" yaml:"skills,omitempty"`
	Languages    []LanguagesItem    `json:"languages,omitempty" yaml:"languages,omitempty"`
	Interests    []InterestsItem    `json:"interests,omitempty" yaml:"interests,omitempty"`
	References   []ReferencesItem   `json:"references,omitempty" yaml:"references,omitempty"`
	Projects     []ProjectsItem     `json:"projects,omitempty" yaml:"projects,omitempty" validate:"dive"`
	Meta         Meta               `json:"meta" yaml:"meta"`
}

// Basics holds the contact details and headline of the resume owner
type Basics struct {
	Name     *string   `json:"name,omitempty" yaml:"name,omitempty"`
	Label    *string   `json:"label,omitempty" yaml:"label,omitempty"` // e.g. Web Developer
	Image    *string   `json:"image,omitempty" yaml:"image,omitempty" validate:"omitempty,url"`
	Email    *string   `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	Phone    *string   `json:"phone,omitempty" yaml:"phone,omitempty"` // free-form, e.g. 712-117-2923
	URL      *string   `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
	Summary  *string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Location Location  `json:"location" yaml:"location"`
	Profiles []Profile `json:"profiles,omitempty" yaml:"profiles,omitempty" validate:"dive"`
}

// Location is a postal address. Address may span lines separated by \n.
type Location struct {
	Address     *string `json:"address,omitempty" yaml:"address,omitempty"`
	PostalCode  *string `json:"postalCode,omitempty" yaml:"postalCode,omitempty"`
	City        *string `json:"city,omitempty" yaml:"city,omitempty"`
	CountryCode *string `json:"countryCode,omitempty" yaml:"countryCode,omitempty" validate:"omitempty,iso3166_1_alpha2"`
	Region      *string `json:"region,omitempty" yaml:"region,omitempty"` // US state, province, etc.
}

// Profile is a social network presence
type Profile struct {
	Network  *string `json:"network,omitempty" yaml:"network,omitempty"`   // e.g. Twitter
	Username *string `json:"username,omitempty" yaml:"username,omitempty"` // e.g. neutralthoughts
	URL      *string `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
}

// WorkItem is a single position held at a company
type WorkItem struct {
	Name        *string      `json:"name,omitempty" yaml:"name,omitempty"` // company name
	Location    *string      `json:"location,omitempty" yaml:"location,omitempty"`
	Description *string      `json:"description,omitempty" yaml:"description,omitempty"` // e.g. Social Media Company
	Position    *string      `json:"position,omitempty" yaml:"position,omitempty"`
	URL         *string      `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
	StartDate   *PartialDate `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate     *PartialDate `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Summary     *string      `json:"summary,omitempty" yaml:"summary,omitempty"`
	Highlights  []string     `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// VolunteerItem is a single volunteering engagement
type VolunteerItem struct {
	Organization *string      `json:"organization,omitempty" yaml:"organization,omitempty"`
	Position     *string      `json:"position,omitempty" yaml:"position,omitempty"`
	URL          *string      `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
	StartDate    *PartialDate `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate      *PartialDate `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Summary      *string      `json:"summary,omitempty" yaml:"summary,omitempty"`
	Highlights   []string     `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// EducationItem is a single degree or course of study
type EducationItem struct {
	Institution *string      `json:"institution,omitempty" yaml:"institution,omitempty"`
	URL         *string      `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
	Area        *string      `json:"area,omitempty" yaml:"area,omitempty"`           // e.g. Arts
	StudyType   *string      `json:"studyType,omitempty" yaml:"studyType,omitempty"` // e.g. Bachelor
	StartDate   *PartialDate `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate     *PartialDate `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Score       *string      `json:"score,omitempty" yaml:"score,omitempty"` // e.g. 3.67/4.0
	Courses     []string     `json:"courses,omitempty" yaml:"courses,omitempty"`
}

// AwardsItem is an award received
type AwardsItem struct {
	Title   *string      `json:"title,omitempty" yaml:"title,omitempty"`
	Date    *PartialDate `json:"date,omitempty" yaml:"date,omitempty"`
	Awarder *string      `json:"awarder,omitempty" yaml:"awarder,omitempty"`
	Summary *string      `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// CertificatesItem is a certificate received
type CertificatesItem struct {
	Name   *string      `json:"name,omitempty" yaml:"name,omitempty"`
	Date   *PartialDate `json:"date,omitempty" yaml:"date,omitempty"`
	URL    *string      `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
	Issuer *string      `json:"issuer,omitempty" yaml:"issuer,omitempty"`
}

// PublicationsItem is a published work
type PublicationsItem struct {
	Name        *string      `json:"name,omitempty" yaml:"name,omitempty"`
	Publisher   *string      `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	ReleaseDate *PartialDate `json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`
	URL         *string      `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
	Summary     *string      `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// SkillsItem is a skill area with keywords
type SkillsItem struct {
	Name     *string  `json:"name,omitempty" yaml:"name,omitempty"`
	Level    *string  `json:"level,omitempty" yaml:"level,omitempty"` // e.g. Master
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// LanguagesItem is a spoken language
type LanguagesItem struct {
	Language *string `json:"language,omitempty" yaml:"language,omitempty"`
	Fluency  *string `json:"fluency,omitempty" yaml:"fluency,omitempty"`
}

// InterestsItem is a personal interest
type InterestsItem struct {
	Name     *string  `json:"name,omitempty" yaml:"name,omitempty"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// ReferencesItem is a reference from a colleague
type ReferencesItem struct {
	Name      *string `json:"name,omitempty" yaml:"name,omitempty"`
	Reference *string `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// ProjectsItem is a career project
type ProjectsItem struct {
	Name        *string      `json:"name,omitempty" yaml:"name,omitempty"`
	Description *string      `json:"description,omitempty" yaml:"description,omitempty"`
	Highlights  []string     `json:"highlights,omitempty" yaml:"highlights,omitempty"`
	Keywords    []string     `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	StartDate   *PartialDate `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate     *PartialDate `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	URL         *string      `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
	Roles       []string     `json:"roles,omitempty" yaml:"roles,omitempty"`
	Entity      *string      `json:"entity,omitempty" yaml:"entity,omitempty"` // e.g. greenpeace
	Type        *string      `json:"type,omitempty" yaml:"type,omitempty"`     // e.g. talk, application
}

// Meta holds the schema version and tooling configuration
type Meta struct {
	Canonical    *string `json:"canonical,omitempty" yaml:"canonical,omitempty" validate:"omitempty,url"`
	Version      *string `json:"version,omitempty" yaml:"version,omitempty"`           // semver, e.g. v1.0.0
	LastModified *string `json:"lastModified,omitempty" yaml:"lastModified,omitempty"` // YYYY-MM-DDThh:mm:ss
}

// StringPtr returns a pointer to s. It keeps literal construction of optional fields short.
func StringPtr(s string) *string {
	return &s
}

// DatePtr parses text and returns a pointer to the result, panicking on invalid input.
func DatePtr(text string) *PartialDate {
	d := MustParsePartialDate(text)
	return &d
}
