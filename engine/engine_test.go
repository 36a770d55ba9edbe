package fairengine_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/c360/semfair/document"
	fairengine "github.com/c360/semfair/engine"
	"github.com/c360/semfair/errors"
	"github.com/c360/semfair/metric"
	"github.com/c360/semfair/technique"
	"github.com/c360/semfair/vocabulary"
)

type EngineSuite struct {
	suite.Suite
	eng *fairengine.Engine
}

func (s *EngineSuite) SetupTest() {
	s.eng = fairengine.New()
}

// scenarioDocument is a CV record with the four mandatory setup fields
// filled and pH 7, but no licensing or attribution yet.
func (s *EngineSuite) scenarioDocument() *document.Document {
	d, err := document.NewWithDefaults(technique.Default(), technique.CV,
		document.WithElectrodes("Glassy carbon", "Ag/AgCl", "Platinum wire", "0.1 M KCl"),
		document.WithPH(7),
	)
	s.Require().NoError(err)
	return d
}

// completeDocument fills every definable section of a CV record.
func (s *EngineSuite) completeDocument() *document.Document {
	d, err := document.NewWithDefaults(technique.Default(), technique.CV,
		document.WithDescription("CV of ferricyanide at a polished GC disc"),
		document.WithParameters(map[string]any{
			"scan_rate":       0.25,
			"start_potential": -0.3,
			"end_potential":   0.7,
			"step_size":       0.001,
			"cycles":          3.0,
		}),
		document.WithElectrodes("Glassy carbon, 3 mm", "Ag/AgCl reference electrode", "Platinum wire", "0.1 M KNO3"),
		document.WithTemperature("25.0 ± 0.1 °C"),
		document.WithAtmosphere("Nitrogen"),
		document.WithPH(7),
		document.WithScanArea(0.071),
		document.WithDataset(document.DatasetInfo{
			Filename:    "cv_run1.csv",
			Format:      "csv",
			Description: "Three cycles at 250 mV/s",
		}),
		document.WithKeywords("cyclic voltammetry", "ferricyanide"),
		document.WithAccess("HTTPS", "https://data.example.org/exp/1", "text/csv"),
		document.WithMetadataVocabulary(vocabulary.OntologyName),
		document.WithDataFormatStandard("RFC 4180 CSV"),
		document.WithLicense("CC-BY-4.0"),
		document.WithProvenance("Recorded on Autolab PGSTAT302N, 2026-08-12"),
		document.WithQualityAssessment("Peak separation 68 mV, within reversible range"),
		document.WithAttribution(document.Attribution{
			Creator:      "R. Daniels",
			Institution:  "Example University",
			ContactEmail: "rdaniels@example.edu",
			ORCID:        "0000-0002-1825-0097",
		}),
		document.WithRelatedWork(document.RelatedWork{
			PublicationDOI: "10.1000/xyz123",
			FundingSource:  "Example Research Council grant 12-345",
		}),
	)
	s.Require().NoError(err)
	return d
}

func (s *EngineSuite) TestProcessCompleteDocument() {
	doc := s.completeDocument()

	res, err := s.eng.Process(doc)
	s.Require().NoError(err)

	s.True(res.Report.Valid)
	s.Empty(res.Report.Errors)
	s.Empty(res.Report.Warnings)
	s.InDelta(1.0, res.Scores.Completeness, 1e-9)
	s.InDelta(1.0, res.Scores.FAIR, 1e-9)
	s.InDelta(1.0, res.Annotation.Coverage(), 1e-9)
	s.Empty(res.Suggestions)

	s.Require().NotNil(doc.Quality)
	s.True(doc.QualityCurrent())
	s.InDelta(res.Scores.Completeness, doc.Quality.CompletenessScore, 1e-9)
	s.InDelta(res.Scores.FAIR, doc.Quality.FAIRScore, 1e-9)
	s.Empty(doc.Quality.ValidationErrors)
	s.Empty(doc.Quality.ValidationWarnings)
}

// TestProcessPartialRecord covers the reference scenario: all mandatory
// setup fields present, pH 7, no license or creator. The record is
// structurally sound but loses reuse points.
func (s *EngineSuite) TestProcessPartialRecord() {
	doc := s.scenarioDocument()

	res, err := s.eng.Process(doc)
	s.Require().NoError(err)

	s.True(res.Report.Valid)
	s.Empty(res.Report.Errors)
	s.NotEmpty(res.Report.Warnings, "missing license and creator should warn")

	s.Less(res.Scores.Completeness, 1.0)
	s.Greater(res.Scores.Completeness, 0.0)
	s.Less(res.Scores.FAIR, 1.0)

	s.Require().NotEmpty(res.Suggestions)
	s.Contains(res.Suggestions[0], "license")
	s.LessOrEqual(len(res.Suggestions), 5)

	s.Require().NotNil(doc.Quality)
	s.Len(doc.Quality.ValidationWarnings, len(res.Report.Warnings))
}

func (s *EngineSuite) TestProcessIncompleteSetup() {
	doc, err := document.NewWithDefaults(technique.Default(), technique.CV)
	s.Require().NoError(err)

	res, err := s.eng.Process(doc)
	s.Require().NoError(err, "incomplete input is a finding, not a failure")

	s.False(res.Report.Valid)
	s.Len(res.Report.Errors, 4, "all four mandatory setup fields are empty")

	s.Require().NotNil(doc.Quality)
	s.True(doc.QualityCurrent())
	s.Len(doc.Quality.ValidationErrors, 4)
}

func (s *EngineSuite) TestProcessUnknownTechnique() {
	doc := document.New(technique.Technique("XYZ"),
		document.WithElectrodes("GC", "Ag/AgCl", "Pt", "KCl"),
	)

	res, err := s.eng.Process(doc)
	s.Require().NoError(err)

	s.False(res.Report.Valid, "unlisted technique name fails the enum check")
	s.True(doc.QualityCurrent())
}

func (s *EngineSuite) TestProcessTwiceIsIdentical() {
	doc := s.scenarioDocument()

	first, err := s.eng.Process(doc)
	s.Require().NoError(err)
	quality := *doc.Quality
	rev := doc.Rev()

	second, err := s.eng.Process(doc)
	s.Require().NoError(err)

	s.Empty(cmp.Diff(first, second), "rerunning on an unchanged document must reproduce the result")
	s.Equal(quality, *doc.Quality)
	s.Equal(rev, doc.Rev(), "processing without enrichment never mutates")
}

func (s *EngineSuite) TestProcessWithEnrichment() {
	eng := fairengine.New(fairengine.WithEnrichment())
	doc := s.scenarioDocument()
	revBefore := doc.Rev()

	first, err := eng.Process(doc)
	s.Require().NoError(err)

	s.NotEmpty(doc.Technique.EMMOIRI, "enrichment annotates the technique block")
	s.Equal(vocabulary.OntologyName, doc.FAIR.Interoperable.MetadataVocabulary)
	s.Greater(doc.Rev(), revBefore)
	s.True(doc.QualityCurrent(), "metrics attach at the post-enrichment revision")

	revAfter := doc.Rev()
	second, err := eng.Process(doc)
	s.Require().NoError(err)

	s.Equal(revAfter, doc.Rev(), "a second pass has nothing new to write")
	s.Empty(cmp.Diff(first, second))
}

func (s *EngineSuite) TestProcessNilDocument() {
	res, err := s.eng.Process(nil)
	s.Require().Error(err)
	s.True(errors.IsInvalid(err))
	s.Nil(res)
}

func (s *EngineSuite) TestProcessRecordsMetrics() {
	registry := metric.NewMetricsRegistry()
	eng := fairengine.New(fairengine.WithMetricsRegistry(registry))

	_, err := eng.Process(s.completeDocument())
	s.Require().NoError(err)
	_, err = eng.Process(s.scenarioDocument())
	s.Require().NoError(err)

	core := registry.CoreMetrics()
	s.InDelta(2.0, testutil.ToFloat64(core.DocumentsProcessed.WithLabelValues("CV", "valid")), 1e-9)

	count, err := testutil.GatherAndCount(registry.PrometheusRegistry(),
		"semfair_scoring_completeness_score",
		"semfair_scoring_fair_score",
		"semfair_ontology_mapping_coverage",
		"semfair_validation_findings_total")
	s.Require().NoError(err)
	s.Greater(count, 0, "score and finding metrics should be populated")
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}
