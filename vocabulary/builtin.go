package vocabulary

// Builtin vocabulary terms drawn from the EMMO electrochemistry domain
// ontology. The table is a curated offline snapshot: every IRI below is a
// published EMMO class identifier, kept literal so exports remain resolvable
// without network access.

// Builtin returns the vocabulary terms shipped with the package, in
// registration order. Callers get a fresh slice and may extend it before
// building a Registry.
func Builtin() []Term {
	return []Term{
		// Measurement techniques
		NewTerm("cyclic_voltammetry", CategoryTechnique,
			EMMOElectrochemistryBase+"#electrochemistry_25aae0e9_a17c_4eb6_ac69_dd4264fad3d5",
			"CyclicVoltammetry",
			WithDefinition("A voltammetry technique where the potential is swept linearly between two limits at a constant rate."),
			WithSynonyms("CV", "cyclic voltammetry")),

		NewTerm("differential_pulse_voltammetry", CategoryTechnique,
			EMMOElectrochemistryBase+"#electrochemistry_f49b84d4_e1f9_424c_bb22_8cea23c0a7d4",
			"DifferentialPulseVoltammetry",
			WithDefinition("A voltammetry technique where pulses of potential are applied on top of a linear sweep."),
			WithSynonyms("DPV", "differential pulse voltammetry")),

		NewTerm("square_wave_voltammetry", CategoryTechnique,
			EMMOElectrochemistryBase+"#electrochemistry_979e24bc_a0d6_4a94_ad99_46739c887dc1",
			"SquareWaveVoltammetry",
			WithDefinition("A voltammetry technique where a square wave potential is superimposed on a staircase waveform."),
			WithSynonyms("SWV", "square wave voltammetry")),

		NewTerm("electrochemical_impedance_spectroscopy", CategoryTechnique,
			EMMOElectrochemistryBase+"#electrochemistry_c7c8cda4_b8a4_4b1a_b0eb_58cbb1516945",
			"ElectrochemicalImpedanceSpectroscopy",
			WithDefinition("A technique that applies a small amplitude sinusoidal voltage perturbation to measure impedance."),
			WithSynonyms("EIS", "impedance spectroscopy")),

		NewTerm("chronoamperometry", CategoryTechnique,
			EMMOElectrochemistryBase+"#electrochemistry_f57e2b9c_bc4c_4245_b154_7ee83e688464",
			"Chronoamperometry",
			WithDefinition("A technique where potential steps are applied and the current response is measured against time."),
			WithSynonyms("CA", "chronoamperometry")),

		// Electrode roles
		NewTerm("working_electrode", CategoryElectrode,
			EMMOElectrochemistryBase+"#electrochemistry_fb0d9eef_92af_4628_8814_e065ca255d59",
			"WorkingElectrode",
			WithDefinition("The electrode at which the electrochemical reaction of interest occurs."),
			WithSynonyms("WE", "working electrode")),

		NewTerm("reference_electrode", CategoryElectrode,
			EMMOElectrochemistryBase+"#electrochemistry_8e3bd7c7_681b_4f50_8ac5_f3dad6312ff4",
			"ReferenceElectrode",
			WithDefinition("An electrode with a stable and well-known electrode potential."),
			WithSynonyms("RE", "reference electrode")),

		NewTerm("counter_electrode", CategoryElectrode,
			EMMOElectrochemistryBase+"#electrochemistry_4bd89acc_d5ee_4dae_8bb0_bf9e5de43fbd",
			"CounterElectrode",
			WithDefinition("An electrode used to complete the electrical circuit in an electrochemical cell."),
			WithSynonyms("CE", "auxiliary electrode", "counter electrode")),

		// Electrode materials
		NewTerm("glassy_carbon", CategoryMaterial,
			EMMOElectrochemistryBase+"#electrochemistry_3f70e5de_fa27_46a4_b201_92d0e6b5ab7a",
			"GlassyCarbon",
			WithDefinition("A non-graphitising carbon with a glass-like structure."),
			WithSynonyms("GC", "vitreous carbon", "glassy carbon")),

		NewTerm("platinum", CategoryMaterial,
			EMMOElectrochemistryBase+"#electrochemistry_1b827d8b_47e4_4f5a_a49e_4ad3fb28d559",
			"Platinum",
			WithDefinition("A precious metal electrode material with high chemical stability."),
			WithSynonyms("Pt", "platinum")),

		// Electrolyte components
		NewTerm("potassium_nitrate", CategoryElectrolyte,
			EMMOElectrochemistryBase+"#electrochemistry_5e8b6d8c_3d60_4186_8b47_0c80b154b0a9",
			"PotassiumNitrate",
			WithDefinition("An ionic compound with formula KNO3, commonly used as supporting electrolyte."),
			WithSynonyms("KNO3", "potassium nitrate")),
	}
}
