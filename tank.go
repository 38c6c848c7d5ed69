// Package tanktemp derives the geometric and thermal parameters of storage
// tanks used by the AP-42 Chapter 7.1 evaporative-loss equations: roof
// geometry, vapor space outage, and the ambient/bulk/vapor/liquid-surface
// temperature chain for a named US location and timeframe.
package tanktemp

import (
	"fmt"
	"math"
	"sync"
)

// Defaults applied when the corresponding Config field is left zero.
const (
	DefaultRoofSlope       = 0.0625 // cone roof slope, ft/ft
	DefaultDomeRadiusRatio = 1.0    // dome roof radius / tank shell diameter
	DefaultFillFraction    = 0.5
)

// Config collects the inputs of one tank construction. String-typed fields
// accept any capitalization; zero values take the documented defaults.
type Config struct {
	ShellHeight   float64 // H: tank shell height, ft (horizontal cylinders: shell length)
	ShellDiameter float64 // D: tank shell diameter, ft

	Geometry TankGeometry // default 'vertical cylinder'
	RoofType RoofType     // vertical cylinders only; default 'cone'

	RoofSlope       float64 // Sr: cone roof slope, ft/ft; cone roofs only, default 0.0625
	DomeRadiusRatio float64 // Rrd: dome roof radius / shell diameter; dome roofs only, default 1

	FillFraction float64 // Fl: liquid fill fraction, 0 < Fl <= 1; default 0.5

	Insulation Insulation // default 'uninsulated'

	// Shell and roof paint. When only one side is given the other inherits
	// its value; when neither is given the tank is white with average paint.
	ShellColor     PaintColor
	ShellCondition PaintCondition
	RoofColor      PaintColor
	RoofCondition  PaintCondition

	Location  string // free-text city/state, resolved against the climate table
	Timeframe string // month name, abbreviation, or index 0-12; default Annual

	BulkTemp *float64 // optional liquid bulk temperature override, degF
}

// Tank holds the parameters derived for one tank. Field names follow the
// AP-42 Chapter 7.1 symbols; temperatures are degrees Rankine.
//
// The geometry-specific fields are mutually exclusive: vertical cylinders
// populate Hr/Hro (and Rr for dome roofs), horizontal cylinders populate
// De/He. A Tank is immutable once constructed.
type Tank struct {
	Geometry TankGeometry
	RoofType RoofType // vertical cylinders only

	H  float64 // tank shell height, ft
	D  float64 // tank shell diameter, ft
	Rs float64 // tank shell radius, ft
	Fl float64 // liquid fill fraction
	Hl float64 // liquid height, ft

	Sr  float64 // cone roof slope, ft/ft
	Rrd float64 // dome roof radius / shell diameter
	Rr  float64 // dome roof radius, ft
	Hr  float64 // tank roof height, ft, eq 1-18 (cone) / eq 1-20 (dome)
	Hro float64 // roof outage, ft, eq 1-17 (cone) / eq 1-19 (dome)

	De float64 // effective diameter for horizontal tanks, ft, eq 1-14
	He float64 // effective height for horizontal tanks, ft, eq 1-15

	Hvo float64 // vapor space outage, ft, eq 1-16

	Insulation     Insulation
	ShellColor     PaintColor
	ShellCondition PaintCondition
	RoofColor      PaintColor
	RoofCondition  PaintCondition

	AlphaS float64 // tank shell paint solar absorptance, Table 7.1-6
	AlphaR float64 // tank roof paint solar absorptance, Table 7.1-6

	Location  string // resolved "City, ST"
	Timeframe Timeframe

	V  float64 // average wind speed, mph
	I  float64 // daily total solar insolation, Btu/(ft2 day)
	PA float64 // atmospheric pressure, psia

	Tax     float64 // average daily maximum ambient temperature, degR
	Tan     float64 // average daily minimum ambient temperature, degR
	Taa     float64 // average daily ambient temperature, degR
	DeltaTA float64 // daily ambient temperature range, degR
	Tb      float64 // liquid bulk temperature, degR
	DeltaTV float64 // daily vapor temperature range, degR
	Tla     float64 // daily average liquid surface temperature, degR
	Tlx     float64 // daily maximum liquid surface temperature, degR
	Tln     float64 // daily minimum liquid surface temperature, degR
}

// Model binds the two static reference tables a tank construction reads.
// A Model is safe for concurrent use; both tables are read-only.
type Model struct {
	Climate *ClimateTable
	Paint   *PaintTable
}

var (
	defaultModel     *Model
	defaultModelErr  error
	defaultModelOnce sync.Once
)

// Default returns the Model backed by the embedded reference tables,
// loading them on first use.
func Default() (*Model, error) {
	defaultModelOnce.Do(func() {
		climate, err := loadEmbeddedClimateTable()
		if err != nil {
			defaultModelErr = err
			return
		}
		paint, err := loadEmbeddedPaintTable()
		if err != nil {
			defaultModelErr = err
			return
		}
		defaultModel = &Model{Climate: climate, Paint: paint}
	})
	return defaultModel, defaultModelErr
}

// New builds a Tank against the embedded reference tables.
func New(cfg Config) (*Tank, error) {
	m, err := Default()
	if err != nil {
		return nil, err
	}
	return m.New(cfg)
}

// New validates cfg, resolves its location and timeframe, and derives the
// tank's geometric and thermal parameters. Construction either succeeds
// completely or fails with a descriptive error; there is no partial state.
func (m *Model) New(cfg Config) (*Tank, error) {
	if cfg.ShellHeight <= 0 {
		return nil, fmt.Errorf("%w: shell height must be a positive number of feet, got %g",
			ErrInvalidInput, cfg.ShellHeight)
	}
	if cfg.ShellDiameter <= 0 {
		return nil, fmt.Errorf("%w: shell diameter must be a positive number of feet, got %g",
			ErrInvalidInput, cfg.ShellDiameter)
	}

	fl := cfg.FillFraction
	if fl == 0 {
		fl = DefaultFillFraction
	}
	if fl < 0 || fl > 1 {
		return nil, fmt.Errorf("%w: fill fraction must be greater than 0 and at most 1, got %g",
			ErrInvalidInput, fl)
	}

	geometry := cfg.Geometry
	if geometry == "" {
		geometry = VerticalCylinder
	}
	geometry, err := ParseTankGeometry(string(geometry))
	if err != nil {
		return nil, err
	}

	t := &Tank{
		Geometry: geometry,
		H:        cfg.ShellHeight,
		D:        cfg.ShellDiameter,
		Rs:       cfg.ShellDiameter / 2,
		Fl:       fl,
		Hl:       cfg.ShellHeight * fl,
	}

	switch geometry {
	case VerticalCylinder:
		if err := t.verticalGeometry(cfg); err != nil {
			return nil, err
		}
	case HorizontalCylinder:
		if err := t.horizontalGeometry(cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q has no roof outage or temperature equations in AP-42 section 7.1",
			ErrUnsupportedGeometry, geometry)
	}

	insulation := cfg.Insulation
	if insulation == "" {
		insulation = Uninsulated
	}
	if t.Insulation, err = ParseInsulation(string(insulation)); err != nil {
		return nil, err
	}

	if err := t.resolvePaint(m.Paint, cfg); err != nil {
		return nil, err
	}

	record, err := m.Climate.Resolve(cfg.Location)
	if err != nil {
		return nil, err
	}
	t.Location = record.Name()

	timeframe := Annual
	if cfg.Timeframe != "" {
		timeframe, err = ParseTimeframe(cfg.Timeframe)
		if err != nil {
			return nil, err
		}
	}
	t.Timeframe = timeframe

	t.temperatureChain(record, cfg.BulkTemp)
	return t, nil
}

// verticalGeometry derives the roof height, roof outage and vapor space
// outage of a vertical cylinder, enforcing the cone/dome parameter split.
func (t *Tank) verticalGeometry(cfg Config) error {
	roof := cfg.RoofType
	if roof == "" {
		roof = ConeRoof
	}
	roof, err := ParseRoofType(string(roof))
	if err != nil {
		return err
	}
	t.RoofType = roof

	switch roof {
	case ConeRoof:
		if cfg.DomeRadiusRatio != 0 {
			return fmt.Errorf("%w: dome radius ratio Rrd applies to dome roofs only, not cone roofs",
				ErrInvalidInput)
		}
		t.Sr = cfg.RoofSlope
		if t.Sr == 0 {
			t.Sr = DefaultRoofSlope
		}
		if t.Sr < 0 {
			return fmt.Errorf("%w: cone roof slope must be positive, got %g", ErrInvalidInput, t.Sr)
		}
		t.Hr = t.Sr * t.Rs // eq 1-18
		t.Hro = t.Hr / 3   // eq 1-17
	case DomeRoof:
		if cfg.RoofSlope != 0 {
			return fmt.Errorf("%w: roof slope Sr applies to cone roofs only, not dome roofs",
				ErrInvalidInput)
		}
		t.Rrd = cfg.DomeRadiusRatio
		if t.Rrd == 0 {
			t.Rrd = DefaultDomeRadiusRatio
		}
		// The dome radius may not be smaller than the shell radius.
		if t.Rrd < 0.5 {
			return fmt.Errorf("%w: dome radius ratio must be at least 0.5, got %g", ErrInvalidInput, t.Rrd)
		}
		t.Rr = t.Rrd * t.D
		t.Hr = t.Rr - math.Sqrt(t.Rr*t.Rr-t.Rs*t.Rs)   // eq 1-20
		t.Hro = t.Hr * (0.5 + t.Hr*t.Hr/(6*t.Rs*t.Rs)) // eq 1-19
	}

	t.Hvo = t.H - t.Hl + t.Hro // eq 1-16
	return nil
}

// horizontalGeometry derives the effective diameter/height and vapor space
// outage of a horizontal cylinder. The roof concept does not apply, so any
// roof-side input is rejected.
func (t *Tank) horizontalGeometry(cfg Config) error {
	if cfg.RoofType != "" || cfg.RoofSlope != 0 || cfg.DomeRadiusRatio != 0 ||
		cfg.RoofColor != "" || cfg.RoofCondition != "" {
		return fmt.Errorf("%w: roof parameters do not apply to horizontal cylinders", ErrInvalidInput)
	}
	t.De = math.Sqrt(t.H * t.D / (math.Pi / 4)) // eq 1-14
	t.He = math.Pi / 4 * t.D                    // eq 1-15
	t.Hvo = t.He / 2                            // eq 1-16
	return nil
}

// resolvePaint applies the shell/roof cross-defaulting, validates the paint
// inputs and looks up both absorptances. Horizontal cylinders carry no roof,
// so the roof absorptance falls back to the shell value.
func (t *Tank) resolvePaint(paint *PaintTable, cfg Config) error {
	sc, rc := cfg.ShellColor, cfg.RoofColor
	if sc == "" && rc == "" {
		sc, rc = White, White
	} else if sc == "" {
		sc = rc
	} else if rc == "" {
		rc = sc
	}
	spc, rpc := cfg.ShellCondition, cfg.RoofCondition
	if spc == "" && rpc == "" {
		spc, rpc = ConditionAverage, ConditionAverage
	} else if spc == "" {
		spc = rpc
	} else if rpc == "" {
		rpc = spc
	}

	var err error
	if t.ShellColor, err = ParsePaintColor(string(sc)); err != nil {
		return err
	}
	if t.ShellCondition, err = ParsePaintCondition(string(spc)); err != nil {
		return err
	}
	if t.AlphaS, err = paint.Absorptance(t.ShellColor, t.ShellCondition); err != nil {
		return err
	}

	if t.Geometry == HorizontalCylinder {
		t.AlphaR = t.AlphaS
		return nil
	}

	if t.RoofColor, err = ParsePaintColor(string(rc)); err != nil {
		return err
	}
	if t.RoofCondition, err = ParsePaintCondition(string(rpc)); err != nil {
		return err
	}
	t.AlphaR, err = paint.Absorptance(t.RoofColor, t.RoofCondition)
	return err
}

// temperatureChain evaluates the ambient, bulk, vapor and liquid surface
// temperature equations for the resolved location and timeframe.
func (t *Tank) temperatureChain(record *ClimateRecord, bulkOverride *float64) {
	tf := t.Timeframe
	t.V = record.V[tf]
	t.I = record.I[tf]
	t.PA = record.PA[tf]

	t.Tax = FToR(record.Tax[tf])
	t.Tan = FToR(record.Tan[tf])
	t.Taa = (t.Tax + t.Tan) / 2
	t.DeltaTA = t.Tax - t.Tan

	if bulkOverride != nil {
		t.Tb = FToR(*bulkOverride)
	} else {
		t.Tb = t.Taa + 0.003*t.AlphaS*t.I // eq 1-31
	}

	switch t.Insulation {
	case PartialInsulation:
		// Insulated shell, exposed roof.
		t.DeltaTV = 0.6*t.DeltaTA + 0.02*t.AlphaR*t.I
		t.Tla = 0.3*t.Taa + 0.7*t.Tb + 0.005*t.AlphaR*t.I
	case FullInsulation:
		// Fully insulated: the vapor space tracks the bulk liquid.
		t.DeltaTV = 0
		t.Tla = t.Tb
	default:
		t.DeltaTV = 0.7*t.DeltaTA + 0.02*t.AlphaR*t.I     // eq 1-6
		t.Tla = 0.4*t.Taa + 0.6*t.Tb + 0.005*t.AlphaR*t.I // eq 1-27
	}

	t.Tlx = t.Tla + 0.25*t.DeltaTV // eq 1-29
	t.Tln = t.Tla - 0.25*t.DeltaTV // eq 1-30
}
