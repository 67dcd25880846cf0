package ingestion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

const adaJSON = `{
  "basics": {
    "name": "Ada Lovelace",
    "label": "Analyst",
    "email": "ada@example.com",
    "location": {"city": "London", "countryCode": "GB"},
    "profiles": [{"network": "GitHub", "url": "https://github.com/ada"}]
  },
  "work": [{
    "name": "Analytical Engines",
    "position": "Programmer",
    "startDate": "1842-07",
    "endDate": "1843",
    "highlights": ["Note G"]
  }],
  "education": [{
    "institution": "Home",
    "area": "Mathematics",
    "studyType": "Private tutoring",
    "endDate": "1835-06-01"
  }],
  "skills": [{"name": "Mathematics", "keywords": ["Algorithms", "Bernoulli numbers"]}]
}`

const adaJSON5 = `// hand-edited
{
  basics: {
    name: 'Ada Lovelace',
    label: 'Analyst',
    email: 'ada@example.com',
    location: {city: 'London', countryCode: 'GB',},
    profiles: [{network: 'GitHub', url: 'https://github.com/ada'},],
  },
  work: [{
    name: 'Analytical Engines',
    position: 'Programmer',
    startDate: '1842-07',
    endDate: '1843',
    highlights: ['Note G'],
  }],
  education: [{
    institution: 'Home',
    area: 'Mathematics',
    studyType: 'Private tutoring',
    endDate: '1835-06-01',
  }],
  skills: [{name: 'Mathematics', keywords: ['Algorithms', 'Bernoulli numbers']}],
}
`

const adaYAML = `basics:
  name: Ada Lovelace
  label: Analyst
  email: ada@example.com
  location:
    city: London
    countryCode: GB
  profiles:
    - network: GitHub
      url: https://github.com/ada
work:
  - name: Analytical Engines
    position: Programmer
    startDate: 1842-07
    endDate: 1843
    highlights:
      - Note G
education:
  - institution: Home
    area: Mathematics
    studyType: Private tutoring
    endDate: 1835-06-01
skills:
  - name: Mathematics
    keywords: [Algorithms, Bernoulli numbers]
`

const adaTOML = `[basics]
name = "Ada Lovelace"
label = "Analyst"
email = "ada@example.com"

[basics.location]
city = "London"
countryCode = "GB"

[[basics.profiles]]
network = "GitHub"
url = "https://github.com/ada"

[[work]]
name = "Analytical Engines"
position = "Programmer"
startDate = "1842-07"
endDate = "1843"
highlights = ["Note G"]

[[education]]
institution = "Home"
area = "Mathematics"
studyType = "Private tutoring"
endDate = 1835-06-01

[[skills]]
name = "Mathematics"
keywords = ["Algorithms", "Bernoulli numbers"]
`

const adaLibsonnet = `{
  profile(network, url):: { network: network, url: url },
}
`

const adaJsonnet = `local lib = import 'lib.libsonnet';
local city = 'London';

{
  basics: {
    name: 'Ada ' + 'Lovelace',
    label: 'Analyst',
    email: 'ada@example.com',
    location: { city: city, countryCode: 'GB' },
    profiles: [lib.profile('GitHub', 'https://github.com/ada')],
  },
  work: [{
    name: 'Analytical Engines',
    position: 'Programmer',
    startDate: '1842-07',
    endDate: std.toString(1843),
    highlights: ['Note G'],
  }],
  education: [{
    institution: 'Home',
    area: 'Mathematics',
    studyType: 'Private tutoring',
    endDate: '1835-06-01',
  }],
  skills: [{ name: 'Mathematics', keywords: ['Algorithms', 'Bernoulli numbers'] }],
}
`

const adaHCL = `basics = {
  name  = "Ada Lovelace"
  label = title("analyst")
  email = lower("ADA@example.com")
  location = {
    city        = "London"
    countryCode = upper("gb")
  }
  profiles = [
    { network = "GitHub", url = "https://github.com/ada" },
  ]
}

work = [
  {
    name       = "Analytical Engines"
    position   = "Programmer"
    startDate  = "1842-07"
    endDate    = "1843"
    highlights = ["Note G"]
  },
]

education = [
  {
    institution = "Home"
    area        = "Mathematics"
    studyType   = "Private tutoring"
    endDate     = "1835-06-01"
  },
]

skills = [
  {
    name     = "Mathematics"
    keywords = concat(["Algorithms"], ["Bernoulli numbers"])
  },
]
`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_AllFormatsAgree(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "lib.libsonnet", adaLibsonnet)

	fixtures := map[string]string{
		"resume.json":    adaJSON,
		"resume.json5":   adaJSON5,
		"resume.yaml":    adaYAML,
		"resume.yml":     adaYAML,
		"resume.toml":    adaTOML,
		"resume.jsonnet": adaJsonnet,
		"resume.hcl":     adaHCL,
	}

	ctx := context.Background()
	want, err := LoadFile(ctx, writeFixture(t, dir, "reference.json", adaJSON), Options{})
	require.NoError(t, err)
	require.NotNil(t, want.Basics.Name)
	assert.Equal(t, "Ada Lovelace", *want.Basics.Name)

	for name, content := range fixtures {
		t.Run(name, func(t *testing.T) {
			got, err := LoadFile(ctx, writeFixture(t, dir, name, content), Options{})
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadFile_PreservesDatePrecision(t *testing.T) {
	dir := t.TempDir()
	resume, err := LoadFile(context.Background(), writeFixture(t, dir, "resume.json", adaJSON), Options{})
	require.NoError(t, err)

	require.Len(t, resume.Work, 1)
	assert.Equal(t, types.PrecisionYearMonth, resume.Work[0].StartDate.Precision())
	assert.Equal(t, types.PrecisionYear, resume.Work[0].EndDate.Precision())
	require.Len(t, resume.Education, 1)
	assert.Equal(t, "1835-06-01", resume.Education[0].EndDate.String())
	assert.Nil(t, resume.Education[0].StartDate)
}

func TestLoadFile_JsonnetMatchesEquivalentJSON(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	fromJsonnet, err := LoadFile(ctx, writeFixture(t, dir, "ada.jsonnet", `{ basics: { name: 'Ada' } }`), Options{})
	require.NoError(t, err)
	fromJSON, err := LoadFile(ctx, writeFixture(t, dir, "ada.json", `{"basics":{"name":"Ada"}}`), Options{})
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromJsonnet)
}

func TestLoadFile_JsonnetLibraryPaths(t *testing.T) {
	dir := t.TempDir()
	libDir := filepath.Join(dir, "lib")
	require.NoError(t, os.MkdirAll(libDir, 0755))
	writeFixture(t, libDir, "people.libsonnet", `{ ada:: 'Ada' }`)

	path := writeFixture(t, dir, "resume.jsonnet", `local people = import 'people.libsonnet'; { basics: { name: people.ada } }`)

	_, err := LoadFile(context.Background(), path, Options{})
	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)

	resume, err := LoadFile(context.Background(), path, Options{JsonnetPaths: []string{libDir}})
	require.NoError(t, err)
	assert.Equal(t, "Ada", *resume.Basics.Name)
}

func TestLoadFile_UnknownKeysIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "resume.json", `{"basics":{"name":"Ada","nickname":"Countess"},"hobbies":["chess"]}`)

	resume, err := LoadFile(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Ada", *resume.Basics.Name)
}

func TestLoadFile_KeysAreCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	fromJSON, err := LoadFile(ctx, writeFixture(t, dir, "resume.json", `{"Basics":{"NAME":"Ada"},"basics":{"Label":"Analyst"}}`), Options{})
	require.NoError(t, err)
	fromYAML, err := LoadFile(ctx, writeFixture(t, dir, "resume.yaml", "Basics:\n  NAME: Ada\nbasics:\n  Label: Analyst\n"), Options{})
	require.NoError(t, err)

	assert.Nil(t, fromJSON.Basics.Name)
	assert.Nil(t, fromJSON.Basics.Label)
	assert.Equal(t, fromYAML, fromJSON)
}

func TestLoadFile_JsonnetRelativeImports(t *testing.T) {
	dir := t.TempDir()
	partsDir := filepath.Join(dir, "parts")
	require.NoError(t, os.MkdirAll(partsDir, 0755))
	writeFixture(t, partsDir, "names.libsonnet", `{ ada: 'Ada' }`)
	writeFixture(t, partsDir, "basics.libsonnet", `local names = import 'names.libsonnet'; { name: names.ada }`)

	path := writeFixture(t, dir, "resume.jsonnet", `{ basics: import 'parts/basics.libsonnet' }`)

	resume, err := LoadFile(context.Background(), path, Options{})
	require.NoError(t, err)
	require.NotNil(t, resume.Basics.Name)
	assert.Equal(t, "Ada", *resume.Basics.Name)
}

func TestLoadFile_NumericScalarsInStringFields(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	// YAML reads scalars as text, so an unquoted number fills a string field
	fromYAML, err := LoadFile(ctx, writeFixture(t, dir, "resume.yaml", "basics:\n  phone: 5550100\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, "5550100", *fromYAML.Basics.Phone)

	_, err = LoadFile(ctx, writeFixture(t, dir, "resume.json", `{"basics":{"phone":5550100}}`), Options{})
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestLoadFile_UnknownFormatBeforeRead(t *testing.T) {
	tests := []struct {
		name string
		path string
		ext  string
	}{
		{name: "ron", path: "missing/resume.ron", ext: "ron"},
		{name: "docx", path: "missing/resume.docx", ext: "docx"},
		{name: "uppercase", path: "missing/resume.JSON", ext: "JSON"},
		{name: "no extension", path: "missing/resume", ext: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(context.Background(), tt.path, Options{})
			var unknown *UnknownFormatError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, tt.ext, unknown.Extension)

			var readErr *ReadError
			assert.False(t, errors.As(err, &readErr))
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := LoadFile(context.Background(), path, Options{})
	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, path, readErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFile_DecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		format   Format
		contains string
	}{
		{
			name:     "invalid month",
			file:     "resume.json",
			content:  `{"work":[{"name":"X","startDate":"2024-13"}]}`,
			format:   FormatJSON5,
			contains: "2024-13",
		},
		{
			name:     "date grammar",
			file:     "resume.yaml",
			content:  "work:\n  - name: X\n    startDate: June 2020\n",
			format:   FormatYAML,
			contains: "June 2020",
		},
		{
			name:    "type mismatch",
			file:    "resume.json",
			content: `{"basics":{"name":5}}`,
			format:  FormatJSON5,
		},
		{
			name:    "malformed json5",
			file:    "resume.json5",
			content: `{basics: {name: 'Ada'`,
			format:  FormatJSON5,
		},
		{
			name:    "toml datetime is not a partial date",
			file:    "resume.toml",
			content: "[[work]]\nname = \"X\"\nstartDate = 2020-01-01T10:00:00Z\n",
			format:  FormatTOML,
		},
		{
			name:     "toml midnight datetime",
			file:     "resume.toml",
			content:  "[[work]]\nname = \"X\"\nstartDate = 2020-01-01T00:00:00Z\n",
			format:   FormatTOML,
			contains: "2020-01-01T00:00:00",
		},
		{
			name:     "toml midnight local datetime",
			file:     "resume.toml",
			content:  "[[work]]\nname = \"X\"\nstartDate = 2020-01-01T00:00:00\n",
			format:   FormatTOML,
			contains: "2020-01-01T00:00:00",
		},
		{
			name:     "toml integer year",
			file:     "resume.toml",
			content:  "[[work]]\nname = \"X\"\nstartDate = 2020\n",
			format:   FormatTOML,
			contains: "date must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, t.TempDir(), tt.file, tt.content)

			resume, err := LoadFile(context.Background(), path, Options{})
			assert.Nil(t, resume)
			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.format, decodeErr.Format)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestLoadFile_EvaluationErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		format   Format
		contains string
	}{
		{name: "jsonnet syntax", file: "bad.jsonnet", content: `{ basics: `, format: FormatJsonnet},
		{name: "jsonnet runtime", file: "boom.jsonnet", content: `{ basics: error 'boom' }`, format: FormatJsonnet, contains: "boom"},
		{name: "jsonnet missing import", file: "imp.jsonnet", content: `import 'nowhere.libsonnet'`, format: FormatJsonnet},
		{name: "hcl syntax", file: "bad.hcl", content: "basics = {\n", format: FormatHCL},
		{name: "hcl block", file: "block.hcl", content: "basics {\n  name = \"Ada\"\n}\n", format: FormatHCL},
		{name: "hcl unknown function", file: "fn.hcl", content: "basics = { name = shout(\"ada\") }\n", format: FormatHCL, contains: "shout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, t.TempDir(), tt.file, tt.content)

			resume, err := LoadFile(context.Background(), path, Options{})
			assert.Nil(t, resume)
			var evalErr *EvaluationError
			require.ErrorAs(t, err, &evalErr)
			assert.Equal(t, tt.format, evalErr.Format)
			assert.NotEmpty(t, evalErr.Message)
			if tt.contains != "" {
				assert.Contains(t, evalErr.Message, tt.contains)
			}
		})
	}
}

func TestLoadFile_EvaluatedOutputStillDecoded(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "resume.jsonnet", `{ work: [{ name: 'X', startDate: '2024-02-30' }] }`)

	_, err := LoadFile(context.Background(), path, Options{})
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, FormatJsonnet, decodeErr.Format)
}

func TestLoadBuffer(t *testing.T) {
	ctx := context.Background()

	resume, err := LoadBuffer(ctx, []byte(adaYAML), FormatYAML, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", *resume.Basics.Name)

	resume, err = LoadBuffer(ctx, []byte(adaHCL), FormatHCL, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Analyst", *resume.Basics.Label)

	resume, err = LoadBuffer(ctx, []byte(adaTOML), Format("toml"), Options{})
	require.NoError(t, err)
	assert.Equal(t, "GB", *resume.Basics.Location.CountryCode)
}

func TestLoadBuffer_JSON5Syntax(t *testing.T) {
	resume, err := LoadBuffer(context.Background(), []byte(`{
  // comments, unquoted keys, single quotes and trailing commas
  basics: {name: 'Ada', label: "Analyst",},
  skills: [{name: 'Go', keywords: ['cobra', 'zerolog',],},],
}`), FormatJSON5, Options{})
	require.NoError(t, err)

	assert.Equal(t, "Ada", *resume.Basics.Name)
	assert.Equal(t, "Analyst", *resume.Basics.Label)
	require.Len(t, resume.Skills, 1)
	assert.Equal(t, []string{"cobra", "zerolog"}, resume.Skills[0].Keywords)
}

func TestLoadBuffer_JsonnetUnsupported(t *testing.T) {
	_, err := LoadBuffer(context.Background(), []byte(`{}`), FormatJsonnet, Options{})
	var bufErr *BufferUnsupportedError
	require.ErrorAs(t, err, &bufErr)
	assert.Equal(t, FormatJsonnet, bufErr.Format)
}

func TestLoadBuffer_UnknownFormat(t *testing.T) {
	_, err := LoadBuffer(context.Background(), []byte(`()`), Format("ron"), Options{})
	var unknown *UnknownFormatError
	require.ErrorAs(t, err, &unknown)
}
