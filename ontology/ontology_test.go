package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semfair/document"
	"github.com/c360/semfair/errors"
	"github.com/c360/semfair/technique"
	"github.com/c360/semfair/vocabulary"
)

func cvDocument(t *testing.T) *document.Document {
	t.Helper()
	d, err := document.NewWithDefaults(technique.Default(), technique.CV,
		document.WithElectrodes("Glassy carbon, 3 mm", "Ag/AgCl", "Platinum wire", "0.1 M KNO3"),
	)
	require.NoError(t, err)
	return d
}

func TestMapCompleteDocument(t *testing.T) {
	ann, err := New().Map(cvDocument(t))
	require.NoError(t, err)

	assert.Equal(t, vocabulary.EMMOElectrochemistryBase, ann.Ontology)
	assert.Equal(t, 5, ann.Checked)

	require.Len(t, ann.TermsUsed, 4)
	byField := make(map[string]string, len(ann.TermsUsed))
	for _, use := range ann.TermsUsed {
		byField[use.Field] = use.Term.Key
	}
	assert.Equal(t, "cyclic_voltammetry", byField["technique.name"])
	assert.Equal(t, "glassy_carbon", byField["experimental_setup.working_electrode"])
	assert.Equal(t, "platinum", byField["experimental_setup.counter_electrode"])
	assert.Equal(t, "potassium_nitrate", byField["experimental_setup.electrolyte"])

	// Ag/AgCl has no term in the builtin vocabulary.
	assert.Equal(t, []string{"experimental_setup.reference_electrode"}, ann.Unmapped)
	assert.InDelta(t, 0.8, ann.Coverage(), 1e-9)
}

func TestMapSparseDocument(t *testing.T) {
	d := document.New(technique.CV)

	ann, err := New().Map(d)
	require.NoError(t, err)

	// Only the technique name is filled; empty fields are neither used nor
	// unmapped, but they still count against coverage.
	require.Len(t, ann.TermsUsed, 1)
	assert.Equal(t, "technique.name", ann.TermsUsed[0].Field)
	assert.Empty(t, ann.Unmapped)
	assert.InDelta(t, 0.2, ann.Coverage(), 1e-9)
}

func TestMapUnknownTechnique(t *testing.T) {
	d := document.New(technique.Technique("XYZ"))

	ann, err := New().Map(d)
	require.NoError(t, err)

	assert.Empty(t, ann.TermsUsed)
	assert.Equal(t, []string{"technique.name"}, ann.Unmapped)
	assert.Zero(t, ann.Coverage())
}

func TestMapNilDocument(t *testing.T) {
	_, err := New().Map(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNilDocument)
	assert.True(t, errors.IsInvalid(err))
}

func TestMapDeterministic(t *testing.T) {
	d := cvDocument(t)
	m := New()

	first, err := m.Map(d)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := m.Map(d)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestEnrichAnnotatesTechnique(t *testing.T) {
	d := cvDocument(t)
	require.Empty(t, d.Technique.EMMOIRI)

	ann, err := New().Enrich(d)
	require.NoError(t, err)
	require.Len(t, ann.TermsUsed, 4)

	term, ok := vocabulary.Default().Lookup("cyclic_voltammetry")
	require.True(t, ok)
	assert.Equal(t, term.IRI, d.Technique.EMMOIRI)
	assert.Equal(t, term.Label, d.Technique.EMMOLabel)
	assert.Equal(t, term.Definition, d.Technique.EMMODefinition)
	assert.Equal(t, vocabulary.OntologyName, d.FAIR.Interoperable.MetadataVocabulary)
}

func TestEnrichIsIdempotent(t *testing.T) {
	d := cvDocument(t)

	_, err := New().Enrich(d)
	require.NoError(t, err)
	rev := d.Rev()

	_, err = New().Enrich(d)
	require.NoError(t, err)
	assert.Equal(t, rev, d.Rev(), "second enrichment should not touch the document")
}

func TestEnrichPreservesResearcherVocabulary(t *testing.T) {
	d := cvDocument(t)
	d.Apply(document.WithMetadataVocabulary("https://vocab.example.org/custom"))

	_, err := New().Enrich(d)
	require.NoError(t, err)

	assert.Equal(t, "https://vocab.example.org/custom", d.FAIR.Interoperable.MetadataVocabulary)
}

func TestEnrichUnknownTechniqueLeavesBlockAlone(t *testing.T) {
	d := document.New(technique.Technique("XYZ"),
		document.WithElectrodes("Glassy carbon, 3 mm", "Ag/AgCl", "Platinum wire", "0.1 M KNO3"))

	ann, err := New().Enrich(d)
	require.NoError(t, err)

	assert.Empty(t, d.Technique.EMMOIRI)
	assert.Contains(t, ann.Unmapped, "technique.name")
}

func TestMapWithCustomVocabulary(t *testing.T) {
	reg, err := vocabulary.New(
		vocabulary.NewTerm("silver_chloride", vocabulary.CategoryMaterial,
			"https://echem.example.org/vocab#silver_chloride", "silver chloride electrode",
			vocabulary.WithSynonyms("Ag/AgCl")),
	)
	require.NoError(t, err)

	ann, err := New(WithVocabulary(reg)).Map(cvDocument(t))
	require.NoError(t, err)

	byField := make(map[string]string)
	for _, use := range ann.TermsUsed {
		byField[use.Field] = use.Term.Key
	}
	assert.Equal(t, "silver_chloride", byField["experimental_setup.reference_electrode"])
}
