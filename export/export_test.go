package export

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/c360/semfair/document"
	fairengine "github.com/c360/semfair/engine"
	"github.com/c360/semfair/errors"
	"github.com/c360/semfair/technique"
)

// assessedDocument builds a structurally valid CV record and runs the full
// pipeline so quality metrics are current.
func assessedDocument(t *testing.T) (*document.Document, *fairengine.Result) {
	t.Helper()

	d, err := document.NewWithDefaults(technique.Default(), technique.CV,
		document.WithElectrodes("Glassy carbon", "Ag/AgCl", "Platinum wire", "0.1 M KCl"),
		document.WithPH(7),
		document.WithDataset(document.DatasetInfo{
			Filename: "cv_run1.csv",
			Format:   "csv",
		}),
		document.WithLicense("CC-BY-4.0"),
		document.WithAttribution(document.Attribution{
			Creator:     "R. Daniels",
			Institution: "Example University",
			ORCID:       "0000-0002-1825-0097",
		}),
	)
	require.NoError(t, err)

	res, err := fairengine.New().Process(d)
	require.NoError(t, err)
	return d, res
}

func TestExportableGate(t *testing.T) {
	valid, _ := assessedDocument(t)

	unprocessed, err := document.NewWithDefaults(technique.Default(), technique.CV,
		document.WithElectrodes("GC", "Ag/AgCl", "Pt", "KCl"))
	require.NoError(t, err)

	mutated, _ := assessedDocument(t)
	mutated.Apply(document.WithDescription("changed after scoring"))

	incomplete, err := document.NewWithDefaults(technique.Default(), technique.CV)
	require.NoError(t, err)
	_, err = fairengine.New().Process(incomplete)
	require.NoError(t, err)

	tests := []struct {
		name    string
		doc     *document.Document
		wantErr error
	}{
		{"assessed document passes", valid, nil},
		{"nil document", nil, errors.ErrNilDocument},
		{"never scored", unprocessed, errors.ErrStaleMetrics},
		{"mutated after scoring", mutated, errors.ErrStaleMetrics},
		{"schema violations", incomplete, errors.ErrInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Exportable(tt.doc)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, errors.IsInvalid(err))
		})
	}
}

func TestRecordShape(t *testing.T) {
	d, _ := assessedDocument(t)

	out, err := Record(d)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, yaml.Unmarshal(out, &record))

	for _, key := range []string{
		"experiment_id", "created_date", "schema_version", "technique",
		"experimental_setup", "dataset", "fair_compliance", "attribution",
		"related_work", "quality_metrics",
	} {
		assert.Contains(t, record, key)
	}

	quality, ok := record["quality_metrics"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, quality, "completeness_score")
	assert.Contains(t, quality, "fair_score")
}

func TestRecordRefusesUnscored(t *testing.T) {
	d, err := document.NewWithDefaults(technique.Default(), technique.CV,
		document.WithElectrodes("GC", "Ag/AgCl", "Pt", "KCl"))
	require.NoError(t, err)

	_, err = Record(d)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrStaleMetrics)
}

func TestCitationContent(t *testing.T) {
	d, _ := assessedDocument(t)

	out, err := Citation(d)
	require.NoError(t, err)

	var cff map[string]any
	require.NoError(t, yaml.Unmarshal(out, &cff))

	assert.Equal(t, "1.2.0", cff["cff-version"])
	assert.Equal(t, "dataset", cff["type"])
	assert.Equal(t, "CV measurement data", cff["title"])
	assert.Equal(t, "CC-BY-4.0", cff["license"])
	assert.Equal(t, d.CreatedDate.Format("2006-01-02"), cff["date-released"])

	authors, ok := cff["authors"].([]any)
	require.True(t, ok)
	require.Len(t, authors, 1)
	author, ok := authors[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Daniels", author["family-names"])
	assert.Equal(t, "R.", author["given-names"])
	assert.Equal(t, "https://orcid.org/0000-0002-1825-0097", author["orcid"])
	assert.Equal(t, "Example University", author["affiliation"])
}

func TestSplitCreator(t *testing.T) {
	tests := []struct {
		creator string
		family  string
		given   string
	}{
		{"", "Unknown", ""},
		{"Plato", "Plato", ""},
		{"R. Daniels", "Daniels", "R."},
		{"Anna Maria Weber", "Weber", "Anna Maria"},
		{"  spaced   out  ", "out", "spaced"},
	}

	for _, tt := range tests {
		t.Run(tt.creator, func(t *testing.T) {
			family, given := splitCreator(tt.creator)
			assert.Equal(t, tt.family, family)
			assert.Equal(t, tt.given, given)
		})
	}
}

func TestReadmeContent(t *testing.T) {
	d, _ := assessedDocument(t)

	readme := string(Readme(d))
	assert.Contains(t, readme, "**Technique:** CV")
	assert.Contains(t, readme, d.ExperimentID)
	assert.Contains(t, readme, "data/cv_run1.csv")
	assert.Contains(t, readme, "CC-BY-4.0")
	assert.Contains(t, readme, generatorTag)
}

func TestReadmeFallbacks(t *testing.T) {
	d := document.New(technique.CV)

	readme := string(Readme(d))
	assert.Contains(t, readme, "data/data.csv")
	assert.Contains(t, readme, "Please check metadata for licensing information")
}

func TestRenderReport(t *testing.T) {
	d, res := assessedDocument(t)

	report := string(RenderReport(d, res))
	assert.Contains(t, report, "# FAIR Assessment Report")
	assert.Contains(t, report, "| Completeness |")
	assert.Contains(t, report, "### Recommendations", "missing recommended fields should surface")
	assert.Contains(t, report, "## Ontology Terms")
	assert.Contains(t, report, "## Suggested Improvements")
	assert.NotContains(t, report, "### Errors")

	assert.Nil(t, RenderReport(d, nil))
	assert.Nil(t, RenderReport(nil, res))
}

func TestRenderReportWithErrors(t *testing.T) {
	d, err := document.NewWithDefaults(technique.Default(), technique.CV)
	require.NoError(t, err)
	res, err := fairengine.New().Process(d)
	require.NoError(t, err)

	report := string(RenderReport(d, res))
	assert.Contains(t, report, "### Errors")
	assert.Contains(t, report, "experimental_setup.working_electrode")
}

func TestBundleLayout(t *testing.T) {
	d, res := assessedDocument(t)
	data := []byte("Potential (V),Current (A)\n0.1,0.0002\n")

	var buf bytes.Buffer
	require.NoError(t, Bundle(&buf, d, data, res))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	got := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body := make([]byte, f.UncompressedSize64)
		_, err = io.ReadFull(rc, body)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		got[f.Name] = body
	}

	require.Len(t, got, 5)
	assert.Equal(t, data, got["data/cv_run1.csv"])
	assert.NotEmpty(t, got["metadata/metadata.yaml"])
	assert.NotEmpty(t, got["metadata/CITATION.cff"])
	assert.NotEmpty(t, got["documentation/README.md"])
	assert.NotEmpty(t, got["documentation/report.md"])
}

func TestBundleWithoutReport(t *testing.T) {
	d, _ := assessedDocument(t)

	var buf bytes.Buffer
	require.NoError(t, Bundle(&buf, d, []byte("x,y\n"), nil))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	for _, f := range zr.File {
		assert.NotEqual(t, "documentation/report.md", f.Name)
	}
	assert.Len(t, zr.File, 4)
}

func TestBundleRefusesStale(t *testing.T) {
	d, _ := assessedDocument(t)
	d.Apply(document.WithDescription("edited"))

	var buf bytes.Buffer
	err := Bundle(&buf, d, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrStaleMetrics)
	assert.Zero(t, buf.Len(), "no partial archive on refusal")
}

func TestBundleName(t *testing.T) {
	d, _ := assessedDocument(t)
	name := BundleName(d)
	assert.Contains(t, name, "fair_bundle_cv_")
	assert.Contains(t, name, d.ExperimentID[:8])
	assert.Equal(t, ".zip", filepath.Ext(name))
}

func TestWriteBundle(t *testing.T) {
	d, res := assessedDocument(t)
	path := filepath.Join(t.TempDir(), BundleName(d))

	require.NoError(t, WriteBundle(path, d, []byte("a,b\n1,2\n"), res))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)
	assert.Len(t, zr.File, 5)
}
