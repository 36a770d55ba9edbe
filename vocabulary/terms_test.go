package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Cyclic Voltammetry", "cyclic voltammetry"},
		{"trims", "  CV  ", "cv"},
		{"collapses internal whitespace", "glassy \t carbon", "glassy carbon"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestKeyAndSpaceForms(t *testing.T) {
	assert.Equal(t, "cyclic_voltammetry", keyForm("cyclic voltammetry"))
	assert.Equal(t, "cyclic voltammetry", spaceForm("cyclic_voltammetry"))
	assert.Equal(t, "platinum", keyForm("platinum"))
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple words", "platinum wire", []string{"platinum", "wire"}},
		{"punctuation splits", "ag/agcl", []string{"ag", "agcl"}},
		{"mixed units", "0.1 m kno3", []string{"0", "1", "m", "kno3"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokens(tt.input))
		})
	}
}

func TestTerm_Matching(t *testing.T) {
	term := NewTerm("glassy_carbon", CategoryMaterial,
		EMMOElectrochemistryBase+"#electrochemistry_3f70e5de_fa27_46a4_b201_92d0e6b5ab7a",
		"GlassyCarbon",
		WithSynonyms("GC", "vitreous carbon", "glassy carbon"))

	t.Run("exact key form", func(t *testing.T) {
		assert.True(t, term.matchesExact("glassy carbon"))
		assert.True(t, term.matchesExact("glassy_carbon"))
	})

	t.Run("exact label", func(t *testing.T) {
		assert.True(t, term.matchesExact("glassycarbon"))
	})

	t.Run("exact synonym", func(t *testing.T) {
		assert.True(t, term.matchesExact("gc"))
		assert.True(t, term.matchesExact("vitreous carbon"))
	})

	t.Run("not exact", func(t *testing.T) {
		assert.False(t, term.matchesExact("glassy carbon, 3 mm"))
	})

	t.Run("containment of long synonym", func(t *testing.T) {
		assert.True(t, term.matchesWithin("glassy carbon, 3 mm"))
	})

	t.Run("short synonym needs whole token", func(t *testing.T) {
		assert.True(t, term.matchesWithin("gc disk electrode"))
		assert.False(t, term.matchesWithin("gcd electrode"))
	})

	t.Run("no match", func(t *testing.T) {
		assert.False(t, term.matchesWithin("boron doped diamond"))
	})
}

func TestValidTermIRI(t *testing.T) {
	tests := []struct {
		name     string
		iri      string
		expected bool
	}{
		{"emmo fragment IRI", EMMOElectrochemistryBase + "#electrochemistry_25aae0e9_a17c_4eb6_ac69_dd4264fad3d5", true},
		{"path style IRI", "http://purl.obolibrary.org/obo/CHEBI_32588", true},
		{"empty", "", false},
		{"no scheme", "w3id.org/emmo#x", false},
		{"wrong scheme", "ftp://w3id.org/emmo#x", false},
		{"host only", "https://w3id.org", false},
		{"root path only", "https://w3id.org/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidTermIRI(tt.iri))
		})
	}
}

func TestIsEMMOTermIRI(t *testing.T) {
	tests := []struct {
		name     string
		iri      string
		expected bool
	}{
		{
			"builtin technique IRI",
			EMMOElectrochemistryBase + "#electrochemistry_25aae0e9_a17c_4eb6_ac69_dd4264fad3d5",
			true,
		},
		{
			"foreign ontology",
			"http://purl.obolibrary.org/obo/CHEBI_32588",
			false,
		},
		{
			"wrong fragment shape",
			EMMOElectrochemistryBase + "#electrochemistry_xyz",
			false,
		},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsEMMOTermIRI(tt.iri))
		})
	}
}

func TestTermFragment(t *testing.T) {
	tests := []struct {
		name     string
		iri      string
		expected string
	}{
		{"fragment present", "https://w3id.org/emmo#electrochemistry_abc", "electrochemistry_abc"},
		{"no fragment", "http://purl.obolibrary.org/obo/CHEBI_32588", ""},
		{"trailing hash", "https://w3id.org/emmo#", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TermFragment(tt.iri))
		})
	}
}
