package document

// Section types of the metadata document. Field names and JSON/YAML keys
// follow the published document schema; exports must round-trip through
// these shapes without extra keys.

// TechniqueBlock describes the measurement method and its parameters.
type TechniqueBlock struct {
	// Name is the technique's short name from the enumerated set, e.g. "CV".
	Name string `json:"name" yaml:"name"`

	// Description is the researcher's free-text summary of the measurement.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Parameters maps parameter names to values: float64 for scalars,
	// []float64 for lists. Decoded input may carry int or []any shapes;
	// the validator converts tolerantly.
	Parameters map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	// Ontology annotation fields, populated by vocabulary enrichment.
	EMMOIRI        string `json:"emmo_iri,omitempty" yaml:"emmo_iri,omitempty"`
	EMMOLabel      string `json:"emmo_label,omitempty" yaml:"emmo_label,omitempty"`
	EMMODefinition string `json:"emmo_definition,omitempty" yaml:"emmo_definition,omitempty"`
}

// ExperimentalSetup holds the cell description. The four electrode and
// electrolyte fields are mandatory for a structurally complete document; the
// rest are optional with defaults.
type ExperimentalSetup struct {
	WorkingElectrode   string `json:"working_electrode" yaml:"working_electrode"`
	ReferenceElectrode string `json:"reference_electrode" yaml:"reference_electrode"`
	CounterElectrode   string `json:"counter_electrode" yaml:"counter_electrode"`
	Electrolyte        string `json:"electrolyte" yaml:"electrolyte"`

	Temperature string `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	Atmosphere  string `json:"atmosphere,omitempty" yaml:"atmosphere,omitempty"`

	// PH and ScanArea are optional numerics; nil means not recorded.
	PH       *float64 `json:"ph,omitempty" yaml:"ph,omitempty"`
	ScanArea *float64 `json:"scan_area,omitempty" yaml:"scan_area,omitempty"`
}

// DatasetInfo describes the attached data file.
type DatasetInfo struct {
	Filename        string   `json:"filename" yaml:"filename"`
	Format          string   `json:"format,omitempty" yaml:"format,omitempty"`
	Encoding        string   `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Description     string   `json:"description,omitempty" yaml:"description,omitempty"`
	ExpectedColumns []string `json:"expected_columns,omitempty" yaml:"expected_columns,omitempty"`
	SizeBytes       int64    `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
	Checksum        string   `json:"checksum,omitempty" yaml:"checksum,omitempty"`
}

// FAIRCompliance groups the four FAIR facets. Each facet is independently
// scorable; empty fields simply lower the corresponding sub-score.
type FAIRCompliance struct {
	Findable      Findable      `json:"findable" yaml:"findable"`
	Accessible    Accessible    `json:"accessible" yaml:"accessible"`
	Interoperable Interoperable `json:"interoperable" yaml:"interoperable"`
	Reusable      Reusable      `json:"reusable" yaml:"reusable"`
}

// Findable covers discovery: identifier, keywords, and the metadata standard
// the document follows.
type Findable struct {
	UniqueIdentifier string   `json:"unique_identifier,omitempty" yaml:"unique_identifier,omitempty"`
	Keywords         []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	MetadataStandard string   `json:"metadata_standard,omitempty" yaml:"metadata_standard,omitempty"`
}

// Accessible covers retrieval: how and where the data can be obtained.
type Accessible struct {
	AccessProtocol string `json:"access_protocol,omitempty" yaml:"access_protocol,omitempty"`
	AccessURL      string `json:"access_url,omitempty" yaml:"access_url,omitempty"`
	Format         string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Interoperable covers shared vocabularies and format standards.
type Interoperable struct {
	MetadataVocabulary string `json:"metadata_vocabulary,omitempty" yaml:"metadata_vocabulary,omitempty"`
	DataFormatStandard string `json:"data_format_standard,omitempty" yaml:"data_format_standard,omitempty"`
}

// Reusable covers reuse conditions: license, provenance, and quality notes.
type Reusable struct {
	License           string `json:"license,omitempty" yaml:"license,omitempty"`
	Provenance        string `json:"provenance,omitempty" yaml:"provenance,omitempty"`
	QualityAssessment string `json:"quality_assessment,omitempty" yaml:"quality_assessment,omitempty"`
}

// Attribution identifies the people behind the experiment.
type Attribution struct {
	Creator      string `json:"creator,omitempty" yaml:"creator,omitempty"`
	Institution  string `json:"institution,omitempty" yaml:"institution,omitempty"`
	ContactEmail string `json:"contact_email,omitempty" yaml:"contact_email,omitempty"`
	ORCID        string `json:"orcid,omitempty" yaml:"orcid,omitempty"`
}

// RelatedWork links the dataset to publications and funding.
type RelatedWork struct {
	PublicationDOI string `json:"publication_doi,omitempty" yaml:"publication_doi,omitempty"`
	FundingSource  string `json:"funding_source,omitempty" yaml:"funding_source,omitempty"`
}

// QualityMetrics is the derived assessment of a document. It is a pure
// projection: the engine recomputes it from the other sections, and any
// later mutation of the document invalidates it.
type QualityMetrics struct {
	CompletenessScore  float64  `json:"completeness_score" yaml:"completeness_score"`
	FAIRScore          float64  `json:"fair_score" yaml:"fair_score"`
	ValidationErrors   []string `json:"validation_errors" yaml:"validation_errors"`
	ValidationWarnings []string `json:"validation_warnings" yaml:"validation_warnings"`

	// rev is the document revision the metrics were computed from.
	rev uint64
}
