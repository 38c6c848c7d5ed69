package tanktemp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerticalConeGeometry(t *testing.T) {
	tank, err := New(Config{
		ShellHeight:   30,
		ShellDiameter: 15,
		FillFraction:  0.5,
		Location:      "Cedar City, UT",
	})
	require.NoError(t, err)

	// Defaults: vertical cylinder, cone roof, Sr = 0.0625.
	assert.Equal(t, VerticalCylinder, tank.Geometry)
	assert.Equal(t, ConeRoof, tank.RoofType)
	assert.Equal(t, 0.0625, tank.Sr)

	assert.Equal(t, 7.5, tank.Rs)
	assert.Equal(t, 15.0, tank.Hl) // Hl = H * Fl exactly

	// Hr = Sr * Rs, Hro = Hr / 3 exactly.
	assert.Equal(t, 0.0625*7.5, tank.Hr)
	assert.Equal(t, tank.Hr/3, tank.Hro)
	assert.InDelta(t, 30-15+tank.Hro, tank.Hvo, 1e-12)

	// Horizontal-only fields stay zero on a vertical tank.
	assert.Zero(t, tank.De)
	assert.Zero(t, tank.He)
}

func TestVerticalDomeGeometry(t *testing.T) {
	tank, err := New(Config{
		ShellHeight:   12,
		ShellDiameter: 6,
		RoofType:      DomeRoof,
		Location:      "Cedar City, UT",
	})
	require.NoError(t, err)

	// Rr = Rrd * D with Rrd defaulting to 1.
	assert.Equal(t, 6.0, tank.Rr)

	hr := 6.0 - math.Sqrt(6.0*6.0-3.0*3.0)
	assert.InDelta(t, hr, tank.Hr, 1e-12)
	assert.InDelta(t, hr*(0.5+hr*hr/(6*3.0*3.0)), tank.Hro, 1e-12)

	// The dome correction term keeps the dome outage above the cone's Hr/3.
	assert.Greater(t, tank.Hro, tank.Hr/3)
}

func TestHorizontalGeometry(t *testing.T) {
	tank, err := New(Config{
		ShellHeight:   20,
		ShellDiameter: 8,
		Geometry:      HorizontalCylinder,
		Location:      "Houston, TX",
	})
	require.NoError(t, err)

	assert.InDelta(t, math.Sqrt(20*8/(math.Pi/4)), tank.De, 1e-12)
	assert.InDelta(t, math.Pi/4*8, tank.He, 1e-12)
	assert.InDelta(t, tank.He/2, tank.Hvo, 1e-12)

	// Vertical-only fields stay zero on a horizontal tank.
	assert.Zero(t, tank.Hr)
	assert.Zero(t, tank.Hro)

	// No roof: the roof absorptance falls back to the shell value.
	assert.Equal(t, tank.AlphaS, tank.AlphaR)
}

func TestHorizontalRejectsRoofInputs(t *testing.T) {
	_, err := New(Config{
		ShellHeight:   20,
		ShellDiameter: 8,
		Geometry:      HorizontalCylinder,
		RoofType:      ConeRoof,
		Location:      "Houston, TX",
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = New(Config{
		ShellHeight:   20,
		ShellDiameter: 8,
		Geometry:      HorizontalCylinder,
		RoofColor:     Black,
		Location:      "Houston, TX",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRoofParameterExclusivity(t *testing.T) {
	base := Config{ShellHeight: 12, ShellDiameter: 6, Location: "Cedar City, UT"}

	cone := base
	cone.RoofType = ConeRoof
	cone.DomeRadiusRatio = 1.1
	_, err := New(cone)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "Rrd")

	dome := base
	dome.RoofType = DomeRoof
	dome.RoofSlope = 0.0625
	_, err = New(dome)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "Sr")
}

func TestFloatingRoofUnsupported(t *testing.T) {
	for _, g := range []TankGeometry{ExternalFloatingRoof, InternalFloatingRoof, DomedFloatingRoof} {
		_, err := New(Config{
			ShellHeight:   40,
			ShellDiameter: 60,
			Geometry:      g,
			Location:      "Houston, TX",
		})
		assert.ErrorIs(t, err, ErrUnsupportedGeometry, string(g))
	}
}

func TestInputValidation(t *testing.T) {
	valid := Config{ShellHeight: 12, ShellDiameter: 6, Location: "Cedar City, UT"}

	cases := map[string]func(*Config){
		"zero height":        func(c *Config) { c.ShellHeight = 0 },
		"negative diameter":  func(c *Config) { c.ShellDiameter = -3 },
		"fill above one":     func(c *Config) { c.FillFraction = 1.2 },
		"negative fill":      func(c *Config) { c.FillFraction = -0.1 },
		"bad geometry":       func(c *Config) { c.Geometry = "sphere" },
		"bad roof type":      func(c *Config) { c.RoofType = "flat" },
		"bad color":          func(c *Config) { c.ShellColor = "purple" },
		"bad condition":      func(c *Config) { c.ShellCondition = "rusty" },
		"bad insulation":     func(c *Config) { c.Insulation = "double" },
		"flat dome":          func(c *Config) { c.RoofType = DomeRoof; c.DomeRadiusRatio = 0.3 },
		"negative roofslope": func(c *Config) { c.RoofSlope = -1 },
	}
	for name, mutate := range cases {
		cfg := valid
		mutate(&cfg)
		_, err := New(cfg)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}

	// Enum errors name the accepted set.
	cfg := valid
	cfg.ShellColor = "purple"
	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'white'")
	assert.Contains(t, err.Error(), "'unpainted aluminum'")
}

func TestEnumInputsAcceptAnyCase(t *testing.T) {
	tank, err := New(Config{
		ShellHeight:   12,
		ShellDiameter: 6,
		Geometry:      "Vertical Cylinder",
		RoofType:      "CONE",
		ShellColor:    "Brown",
		Location:      "Cedar City, UT",
	})
	require.NoError(t, err)
	assert.Equal(t, Brown, tank.ShellColor)
}

func TestPaintCrossDefaulting(t *testing.T) {
	// Only the shell side given: the roof inherits it.
	tank, err := New(Config{
		ShellHeight:    12,
		ShellDiameter:  6,
		ShellColor:     Black,
		ShellCondition: ConditionAged,
		Location:       "Cedar City, UT",
	})
	require.NoError(t, err)
	assert.Equal(t, Black, tank.RoofColor)
	assert.Equal(t, ConditionAged, tank.RoofCondition)
	assert.Equal(t, tank.AlphaS, tank.AlphaR)

	// Only the roof side given: the shell inherits it.
	tank, err = New(Config{
		ShellHeight:   12,
		ShellDiameter: 6,
		RoofColor:     Tan,
		Location:      "Cedar City, UT",
	})
	require.NoError(t, err)
	assert.Equal(t, Tan, tank.ShellColor)
	assert.Equal(t, ConditionAverage, tank.ShellCondition)

	// Neither given: white with average paint.
	tank, err = New(Config{ShellHeight: 12, ShellDiameter: 6, Location: "Cedar City, UT"})
	require.NoError(t, err)
	assert.Equal(t, White, tank.ShellColor)
	assert.Equal(t, 0.25, tank.AlphaS)
}

// The worked example: Cedar City, UT in January, dome roof, white roof over
// a brown shell, half full.
func TestCedarCityJanuary(t *testing.T) {
	tank, err := New(Config{
		ShellHeight:   12,
		ShellDiameter: 6,
		FillFraction:  0.5,
		Geometry:      VerticalCylinder,
		RoofType:      DomeRoof,
		RoofColor:     White,
		ShellColor:    Brown,
		Location:      "Cedar City, UT",
		Timeframe:     "1",
	})
	require.NoError(t, err)

	assert.Equal(t, January, tank.Timeframe)
	assert.Equal(t, "Cedar City, UT", tank.Location)
	assert.Equal(t, 0.62, tank.AlphaS) // brown, average
	assert.Equal(t, 0.25, tank.AlphaR) // white, average

	for name, v := range map[string]float64{
		"Hvo": tank.Hvo, "Tla": tank.Tla, "Tlx": tank.Tlx, "Tln": tank.Tln,
	} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), name)
		assert.Positive(t, v, name)
	}
	assert.Greater(t, tank.Tlx, tank.Tla)
	assert.Greater(t, tank.Tla, tank.Tln)

	// Chain cross-check against the equations, degR.
	taa := (tank.Tax + tank.Tan) / 2
	tb := taa + 0.003*0.62*tank.I
	dtv := 0.7*(tank.Tax-tank.Tan) + 0.02*0.25*tank.I
	tla := 0.4*taa + 0.6*tb + 0.005*0.25*tank.I
	assert.InDelta(t, taa, tank.Taa, 1e-9)
	assert.InDelta(t, tb, tank.Tb, 1e-9)
	assert.InDelta(t, dtv, tank.DeltaTV, 1e-9)
	assert.InDelta(t, tla, tank.Tla, 1e-9)
	assert.InDelta(t, tla+0.25*dtv, tank.Tlx, 1e-9)
	assert.InDelta(t, tla-0.25*dtv, tank.Tln, 1e-9)
}

func TestPartialInsulationChain(t *testing.T) {
	tank, err := New(Config{
		ShellHeight:   12,
		ShellDiameter: 6,
		Insulation:    PartialInsulation,
		Location:      "Cedar City, UT",
		Timeframe:     "jul",
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.6*tank.DeltaTA+0.02*tank.AlphaR*tank.I, tank.DeltaTV, 1e-9)
	assert.InDelta(t, 0.3*tank.Taa+0.7*tank.Tb+0.005*tank.AlphaR*tank.I, tank.Tla, 1e-9)
}

func TestFullInsulationAnchorsToBulk(t *testing.T) {
	tank, err := New(Config{
		ShellHeight:   12,
		ShellDiameter: 6,
		Insulation:    FullInsulation,
		Location:      "Cedar City, UT",
	})
	require.NoError(t, err)
	assert.Zero(t, tank.DeltaTV)
	assert.Equal(t, tank.Tb, tank.Tla)
	assert.Equal(t, tank.Tla, tank.Tlx)
	assert.Equal(t, tank.Tla, tank.Tln)
}

func TestBulkTemperatureOverride(t *testing.T) {
	bulk := 95.0 // degF
	tank, err := New(Config{
		ShellHeight:   12,
		ShellDiameter: 6,
		Insulation:    FullInsulation,
		BulkTemp:      &bulk,
		Location:      "Cedar City, UT",
	})
	require.NoError(t, err)
	assert.Equal(t, FToR(95.0), tank.Tb)
	assert.Equal(t, tank.Tb, tank.Tla)
}

// Fixture tables stand in for the embedded data, so constructions can be
// checked without touching package-level state.
func TestInjectedTables(t *testing.T) {
	model := fixtureModel(t)

	tank, err := model.New(Config{
		ShellHeight:   10,
		ShellDiameter: 5,
		Location:      "Springfield, IL",
		Timeframe:     "January",
	})
	require.NoError(t, err)

	// Fixture January: TAX 40 degF, TAN 20 degF.
	assert.InDelta(t, FToR(40), tank.Tax, 1e-9)
	assert.InDelta(t, FToR(20), tank.Tan, 1e-9)
	assert.InDelta(t, FToR(30), tank.Taa, 1e-9)
	assert.Equal(t, 20.0, tank.DeltaTA)
}
