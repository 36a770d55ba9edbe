package technique

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semfair/errors"
)

func TestDefault_BuiltinCatalog(t *testing.T) {
	reg := Default()
	require.NotNil(t, reg)

	assert.Equal(t, []Technique{CV, DPV, SWV, EIS, CA}, reg.Techniques())
	assert.Same(t, reg, Default())

	for _, tech := range reg.Techniques() {
		desc, err := reg.Describe(tech)
		require.NoError(t, err)
		assert.NotEmpty(t, desc)

		cols, err := reg.ColumnSpecsFor(tech)
		require.NoError(t, err)
		assert.NotEmpty(t, cols)
	}
}

func TestRegistry_SpecsFor(t *testing.T) {
	reg := Default()

	t.Run("CV specs ordered", func(t *testing.T) {
		specs, err := reg.SpecsFor(CV)
		require.NoError(t, err)

		names := make([]string, len(specs))
		for i, s := range specs {
			names[i] = s.Name
		}
		assert.Equal(t, []string{"scan_rate", "start_potential", "end_potential", "step_size", "cycles"}, names)

		assert.Equal(t, "V/s", specs[0].Unit)
		require.NotNil(t, specs[0].Bounds)
		assert.Equal(t, 0.001, specs[0].Bounds.Min)
		assert.Equal(t, 10.0, specs[0].Bounds.Max)
	})

	t.Run("unknown technique fails", func(t *testing.T) {
		specs, err := reg.SpecsFor(Technique("XYZ"))
		require.Error(t, err)
		assert.Nil(t, specs)
		assert.ErrorIs(t, err, errors.ErrUnknownTechnique)
		assert.True(t, errors.IsInvalid(err))
	})

	t.Run("list parameters unbounded", func(t *testing.T) {
		spec, err := reg.SpecOf(EIS, "frequency_range")
		require.NoError(t, err)
		assert.Equal(t, KindList, spec.Kind)
		assert.Nil(t, spec.Bounds)
	})
}

func TestRegistry_SpecOf(t *testing.T) {
	reg := Default()

	spec, err := reg.SpecOf(CV, "scan_rate")
	require.NoError(t, err)
	assert.Equal(t, "scan_rate", spec.Name)

	_, err = reg.SpecOf(CV, "frequency")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownParameter)

	_, err = reg.SpecOf(Technique("XYZ"), "scan_rate")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownTechnique)
}

func TestRegistry_Defaults(t *testing.T) {
	reg := Default()

	t.Run("CV defaults", func(t *testing.T) {
		defaults, err := reg.Defaults(CV)
		require.NoError(t, err)
		assert.Equal(t, 0.1, defaults["scan_rate"])
		assert.Equal(t, -0.2, defaults["start_potential"])
		assert.Equal(t, 0.6, defaults["end_potential"])
		assert.Equal(t, 0.002, defaults["step_size"])
		assert.Equal(t, 1.0, defaults["cycles"])
	})

	t.Run("list defaults are copies", func(t *testing.T) {
		first, err := reg.Defaults(EIS)
		require.NoError(t, err)
		list, ok := first["frequency_range"].([]float64)
		require.True(t, ok)
		list[0] = -1

		second, err := reg.Defaults(EIS)
		require.NoError(t, err)
		assert.Equal(t, []float64{100000, 0.01}, second["frequency_range"])
	})

	t.Run("unknown technique fails", func(t *testing.T) {
		_, err := reg.Defaults(Technique("NPV"))
		assert.ErrorIs(t, err, errors.ErrUnknownTechnique)
	})
}

func TestRegistry_Known(t *testing.T) {
	reg := Default()
	assert.True(t, reg.Known(CV))
	assert.True(t, reg.Known(EIS))
	assert.False(t, reg.Known(Technique("XYZ")))
	assert.False(t, reg.Known(Technique("cv")), "technique names are exact")
}

func TestRegistry_AdvisoriesFor(t *testing.T) {
	reg := Default()

	advs, err := reg.AdvisoriesFor(CV)
	require.NoError(t, err)
	require.Len(t, advs, 1)
	assert.Equal(t, AdvisoryMinWindow, advs[0].Kind)

	advs, err = reg.AdvisoriesFor(SWV)
	require.NoError(t, err)
	assert.Empty(t, advs)
}

func TestNew_ValidatesDefinitions(t *testing.T) {
	valid := Definition{
		Technique:   Technique("LSV"),
		Description: "Linear Sweep Voltammetry",
		Params: []ParamSpec{
			{Name: "scan_rate", Unit: "V/s", Default: 0.05, Bounds: &Bounds{Min: 0.001, Max: 10}},
		},
		Columns: []ColumnSpec{
			{Name: "Potential (V)", Pattern: `potential.*v`},
		},
	}

	tests := []struct {
		name    string
		mutate  func(Definition) Definition
		wantErr error
	}{
		{
			name:   "valid definition accepted",
			mutate: func(d Definition) Definition { return d },
		},
		{
			name: "empty technique rejected",
			mutate: func(d Definition) Definition {
				d.Technique = ""
				return d
			},
			wantErr: errors.ErrMalformedSpec,
		},
		{
			name: "bad parameter name rejected",
			mutate: func(d Definition) Definition {
				d.Params = []ParamSpec{{Name: "Scan Rate", Default: 0.05}}
				return d
			},
			wantErr: errors.ErrMalformedSpec,
		},
		{
			name: "duplicate parameter rejected",
			mutate: func(d Definition) Definition {
				d.Params = append(d.Params, d.Params[0])
				return d
			},
			wantErr: errors.ErrDuplicateSpec,
		},
		{
			name: "inverted bounds rejected",
			mutate: func(d Definition) Definition {
				d.Params = []ParamSpec{{Name: "scan_rate", Default: 0.05, Bounds: &Bounds{Min: 10, Max: 1}}}
				return d
			},
			wantErr: errors.ErrMalformedSpec,
		},
		{
			name: "non-numeric scalar default rejected",
			mutate: func(d Definition) Definition {
				d.Params = []ParamSpec{{Name: "scan_rate", Default: "fast"}}
				return d
			},
			wantErr: errors.ErrMalformedSpec,
		},
		{
			name: "bad list default rejected",
			mutate: func(d Definition) Definition {
				d.Params = []ParamSpec{{Name: "steps", Kind: KindList, Default: []any{1.0, "x"}}}
				return d
			},
			wantErr: errors.ErrMalformedSpec,
		},
		{
			name: "unknown kind rejected",
			mutate: func(d Definition) Definition {
				d.Params = []ParamSpec{{Name: "scan_rate", Kind: Kind("matrix"), Default: 0.05}}
				return d
			},
			wantErr: errors.ErrMalformedSpec,
		},
		{
			name: "uncompilable column pattern rejected",
			mutate: func(d Definition) Definition {
				d.Columns = []ColumnSpec{{Name: "Potential (V)", Pattern: `potential.*(`}}
				return d
			},
			wantErr: errors.ErrMalformedSpec,
		},
		{
			name: "column missing name rejected",
			mutate: func(d Definition) Definition {
				d.Columns = []ColumnSpec{{Pattern: `potential.*v`}}
				return d
			},
			wantErr: errors.ErrMalformedSpec,
		},
		{
			name: "advisory on unknown parameter rejected",
			mutate: func(d Definition) Definition {
				d.Advisories = []Advisory{{
					Kind:    AdvisoryMinValue,
					Params:  []string{"frequency"},
					Message: "too low",
				}}
				return d
			},
			wantErr: errors.ErrMalformedSpec,
		},
		{
			name: "advisory arity enforced",
			mutate: func(d Definition) Definition {
				d.Advisories = []Advisory{{
					Kind:    AdvisoryMinWindow,
					Params:  []string{"scan_rate"},
					Message: "window",
				}}
				return d
			},
			wantErr: errors.ErrMalformedSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := New(tt.mutate(valid))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errors.IsFatal(err), "reference data defects classify fatal")
				assert.Nil(t, reg)
				return
			}
			require.NoError(t, err)
			assert.True(t, reg.Known(Technique("LSV")))
		})
	}
}

func TestNew_DuplicateTechniqueRejected(t *testing.T) {
	defs := Builtin()
	_, err := New(append(defs, defs[0])...)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateSpec)
}

func TestNew_ExtensionWithoutTouchingValidator(t *testing.T) {
	lsv := Definition{
		Technique:   Technique("LSV"),
		Description: "Linear Sweep Voltammetry - Single linear potential sweep",
		Params: []ParamSpec{
			{Name: "scan_rate", Unit: "V/s", Default: 0.05, Bounds: &Bounds{Min: 0.001, Max: 10}},
			{Name: "start_potential", Unit: "V", Default: -0.2, Bounds: &Bounds{Min: -5, Max: 5}},
			{Name: "end_potential", Unit: "V", Default: 0.6, Bounds: &Bounds{Min: -5, Max: 5}},
		},
		Columns: []ColumnSpec{
			{Name: "Potential (V)", Pattern: `potential.*v`},
			{Name: "Current (A)", Pattern: `current.*a`},
		},
	}

	reg, err := New(append(Builtin(), lsv)...)
	require.NoError(t, err)

	assert.Len(t, reg.Techniques(), 6)
	specs, err := reg.SpecsFor(Technique("LSV"))
	require.NoError(t, err)
	assert.Len(t, specs, 3)
}

func BenchmarkRegistry_SpecsFor(b *testing.B) {
	reg := Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reg.SpecsFor(CV); err != nil {
			b.Fatal(err)
		}
	}
}
