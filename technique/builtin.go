package technique

// Builtin technique definitions: parameter templates, expected dataset
// columns, and advisory rules for the five supported methods. Bounds reflect
// the ranges bench potentiostats realistically deliver; values outside them
// are graded by the validator, not rejected here.

// Builtin returns the technique definitions shipped with the package, in
// registration order. Callers get fresh definitions and may extend the slice
// before building a Registry.
func Builtin() []Definition {
	return []Definition{
		{
			Technique:   CV,
			Description: "Cyclic Voltammetry - Potential swept linearly between limits",
			Params: []ParamSpec{
				{
					Name:        "scan_rate",
					Unit:        "V/s",
					Default:     0.1,
					Bounds:      &Bounds{Min: 0.001, Max: 10.0},
					Description: "Rate at which potential is swept",
				},
				{
					Name:        "start_potential",
					Unit:        "V",
					Default:     -0.2,
					Bounds:      &Bounds{Min: -5.0, Max: 5.0},
					Description: "Initial potential for the sweep",
				},
				{
					Name:        "end_potential",
					Unit:        "V",
					Default:     0.6,
					Bounds:      &Bounds{Min: -5.0, Max: 5.0},
					Description: "Final potential for the sweep",
				},
				{
					Name:        "step_size",
					Unit:        "V",
					Default:     0.002,
					Bounds:      &Bounds{Min: 0.0001, Max: 0.1},
					Description: "Potential step increment",
				},
				{
					Name:        "cycles",
					Default:     1.0,
					Bounds:      &Bounds{Min: 1, Max: 100},
					Description: "Number of CV cycles",
				},
			},
			Columns: []ColumnSpec{
				{Name: "Potential (V)", Pattern: `potential.*v`},
				{Name: "Current (A)", Pattern: `current.*a`},
				{Name: "Cycle", Pattern: `cycle`},
			},
			Advisories: []Advisory{
				{
					Kind:      AdvisoryMinWindow,
					Params:    []string{"start_potential", "end_potential"},
					Threshold: 0.1,
					Message:   "potential window narrower than 0.1 V",
				},
			},
		},
		{
			Technique:   DPV,
			Description: "Differential Pulse Voltammetry - Series of potential pulses",
			Params: []ParamSpec{
				{
					Name:        "pulse_amplitude",
					Unit:        "V",
					Default:     0.05,
					Bounds:      &Bounds{Min: 0.001, Max: 0.5},
					Description: "Amplitude of the differential pulse",
				},
				{
					Name:        "pulse_width",
					Unit:        "s",
					Default:     0.05,
					Bounds:      &Bounds{Min: 0.001, Max: 1.0},
					Description: "Width of each pulse",
				},
				{
					Name:        "step_potential",
					Unit:        "V",
					Default:     0.005,
					Bounds:      &Bounds{Min: 0.001, Max: 0.1},
					Description: "Potential step between pulses",
				},
				{
					Name:        "scan_rate",
					Unit:        "V/s",
					Default:     0.01,
					Bounds:      &Bounds{Min: 0.001, Max: 1.0},
					Description: "Effective scan rate",
				},
			},
			Columns: []ColumnSpec{
				{Name: "Potential (V)", Pattern: `potential.*v`},
				{Name: "Current (A)", Pattern: `current.*a`},
			},
			Advisories: []Advisory{
				{
					Kind:      AdvisoryMinValue,
					Params:    []string{"pulse_width"},
					Threshold: 0.01,
					Message:   "pulse width below 10 ms may be too short",
				},
			},
		},
		{
			Technique:   SWV,
			Description: "Square Wave Voltammetry - Square wave potential modulation",
			Params: []ParamSpec{
				{
					Name:        "frequency",
					Unit:        "Hz",
					Default:     25.0,
					Bounds:      &Bounds{Min: 1, Max: 1000},
					Description: "Square wave frequency",
				},
				{
					Name:        "amplitude",
					Unit:        "V",
					Default:     0.025,
					Bounds:      &Bounds{Min: 0.001, Max: 0.5},
					Description: "Square wave amplitude",
				},
				{
					Name:        "step_height",
					Unit:        "V",
					Default:     0.004,
					Bounds:      &Bounds{Min: 0.001, Max: 0.1},
					Description: "Potential step height",
				},
			},
			Columns: []ColumnSpec{
				// Specific patterns come first: matching claims a header, and
				// forward/reverse headers also contain "current".
				{Name: "Potential (V)", Pattern: `potential.*v`},
				{Name: "Forward current", Pattern: `forward.*current`},
				{Name: "Reverse current", Pattern: `reverse.*current`},
				{Name: "Current (A)", Pattern: `current.*a`},
			},
		},
		{
			Technique:   EIS,
			Description: "Electrochemical Impedance Spectroscopy - AC frequency response",
			Params: []ParamSpec{
				{
					Name:        "frequency_range",
					Unit:        "Hz",
					Kind:        KindList,
					Default:     []float64{100000, 0.01},
					Description: "Frequency range [high, low]",
				},
				{
					Name:        "ac_amplitude",
					Unit:        "V",
					Default:     0.01,
					Bounds:      &Bounds{Min: 0.001, Max: 0.1},
					Description: "AC perturbation amplitude",
				},
				{
					Name:        "bias_potential",
					Unit:        "V",
					Default:     0.0,
					Bounds:      &Bounds{Min: -5.0, Max: 5.0},
					Description: "DC bias potential",
				},
				{
					Name:        "equilibration_time",
					Unit:        "s",
					Default:     10.0,
					Bounds:      &Bounds{Min: 0, Max: 3600},
					Description: "Pre-equilibration time",
				},
			},
			Columns: []ColumnSpec{
				{Name: "Frequency (Hz)", Pattern: `frequency.*hz`},
				{Name: "Z real", Pattern: `z.*real`},
				{Name: "Z imaginary", Pattern: `z.*imag`},
				{Name: "Phase", Pattern: `phase`},
			},
			Advisories: []Advisory{
				{
					Kind:    AdvisoryDescending,
					Params:  []string{"frequency_range"},
					Message: "frequency range should run high to low",
				},
			},
		},
		{
			Technique:   CA,
			Description: "Chronoamperometry - Current response to potential steps",
			Params: []ParamSpec{
				{
					Name:        "step_potentials",
					Unit:        "V",
					Kind:        KindList,
					Default:     []float64{0.0, 0.5},
					Description: "Applied potentials for each step",
				},
				{
					Name:        "step_times",
					Unit:        "s",
					Kind:        KindList,
					Default:     []float64{5, 60},
					Description: "Duration of each potential step",
				},
				{
					Name:        "total_duration",
					Unit:        "s",
					Default:     65.0,
					Bounds:      &Bounds{Min: 1, Max: 86400},
					Description: "Total experiment duration",
				},
			},
			Columns: []ColumnSpec{
				{Name: "Time (s)", Pattern: `time.*s`},
				{Name: "Current (A)", Pattern: `current.*a`},
				{Name: "Potential (V)", Pattern: `potential.*v`},
			},
			Advisories: []Advisory{
				{
					Kind:      AdvisoryMinValue,
					Params:    []string{"step_times"},
					Threshold: 0.1,
					Message:   "step times below 0.1 s may be too short for steady state",
				},
			},
		},
	}
}
