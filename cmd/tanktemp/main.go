// Command tanktemp derives the AP-42 tank parameters for one tank and
// prints them, e.g.
//
//	tanktemp --height 12 --diameter 6 --location "Cedar City, UT" \
//	    --roof dome --roof-color white --shell-color brown --timeframe 1
package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tanktemp"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Fatal("tank construction failed")
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg      tanktemp.Config
		geometry string
		roof     string
		insul    string
		bulkTemp float64
	)

	cmd := &cobra.Command{
		Use:   "tanktemp",
		Short: "Derive AP-42 Chapter 7.1 tank geometry and temperature parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Geometry = tanktemp.TankGeometry(geometry)
			cfg.RoofType = tanktemp.RoofType(roof)
			cfg.Insulation = tanktemp.Insulation(insul)
			if cmd.Flags().Changed("bulk-temp") {
				cfg.BulkTemp = &bulkTemp
			}

			log.WithFields(log.Fields{
				"location":  cfg.Location,
				"timeframe": cfg.Timeframe,
				"geometry":  geometry,
			}).Info("building tank")

			tank, err := tanktemp.New(cfg)
			if err != nil {
				return err
			}
			printTank(cmd.OutOrStdout(), tank)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&cfg.ShellHeight, "height", 0, "tank shell height H, ft (required)")
	f.Float64Var(&cfg.ShellDiameter, "diameter", 0, "tank shell diameter D, ft (required)")
	f.StringVar(&geometry, "geometry", "vertical cylinder", "tank geometry")
	f.StringVar(&roof, "roof", "", "roof type for vertical cylinders: cone or dome")
	f.Float64Var(&cfg.RoofSlope, "roof-slope", 0, "cone roof slope Sr, ft/ft")
	f.Float64Var(&cfg.DomeRadiusRatio, "dome-radius-ratio", 0, "dome roof radius / shell diameter Rrd")
	f.Float64Var(&cfg.FillFraction, "fill", 0, "liquid fill fraction Fl (default 0.5)")
	f.StringVar(&insul, "insulation", "", "insulation class: uninsulated, partial or full")
	f.StringVar((*string)(&cfg.ShellColor), "shell-color", "", "shell paint color")
	f.StringVar((*string)(&cfg.ShellCondition), "shell-condition", "", "shell paint condition")
	f.StringVar((*string)(&cfg.RoofColor), "roof-color", "", "roof paint color")
	f.StringVar((*string)(&cfg.RoofCondition), "roof-condition", "", "roof paint condition")
	f.StringVar(&cfg.Location, "location", "", "US location, e.g. \"Cedar City, UT\" (required)")
	f.StringVar(&cfg.Timeframe, "timeframe", "", "month name or index 0-12 (default annual)")
	f.Float64Var(&bulkTemp, "bulk-temp", 0, "liquid bulk temperature override, degF")

	cobra.CheckErr(cmd.MarkFlagRequired("height"))
	cobra.CheckErr(cmd.MarkFlagRequired("diameter"))
	cobra.CheckErr(cmd.MarkFlagRequired("location"))

	return cmd
}

func printTank(w io.Writer, t *tanktemp.Tank) {
	fmt.Fprintf(w, "%s, %s (%s)\n", t.Location, t.Timeframe, t.Geometry)
	fmt.Fprintf(w, "  Hl  = %8.3f ft   liquid height\n", t.Hl)
	switch t.Geometry {
	case tanktemp.VerticalCylinder:
		fmt.Fprintf(w, "  Hr  = %8.3f ft   roof height (%s)\n", t.Hr, t.RoofType)
		fmt.Fprintf(w, "  Hro = %8.3f ft   roof outage\n", t.Hro)
	case tanktemp.HorizontalCylinder:
		fmt.Fprintf(w, "  De  = %8.3f ft   effective diameter\n", t.De)
		fmt.Fprintf(w, "  He  = %8.3f ft   effective height\n", t.He)
	}
	fmt.Fprintf(w, "  Hvo = %8.3f ft   vapor space outage\n", t.Hvo)
	fmt.Fprintf(w, "  aS  = %8.2f      shell absorptance (%s, %s)\n", t.AlphaS, t.ShellColor, t.ShellCondition)
	fmt.Fprintf(w, "  aR  = %8.2f      roof absorptance\n", t.AlphaR)
	fmt.Fprintf(w, "  V   = %8.1f mph  wind speed\n", t.V)
	fmt.Fprintf(w, "  I   = %8.0f Btu/(ft2 day) insolation\n", t.I)
	fmt.Fprintf(w, "  PA  = %8.2f psia atmospheric pressure\n", t.PA)
	fmt.Fprintf(w, "  Taa = %8.2f degF ambient average\n", tanktemp.RToF(t.Taa))
	fmt.Fprintf(w, "  Tb  = %8.2f degF liquid bulk\n", tanktemp.RToF(t.Tb))
	fmt.Fprintf(w, "  Tla = %8.2f degF liquid surface average\n", tanktemp.RToF(t.Tla))
	fmt.Fprintf(w, "  Tlx = %8.2f degF liquid surface maximum\n", tanktemp.RToF(t.Tlx))
	fmt.Fprintf(w, "  Tln = %8.2f degF liquid surface minimum\n", tanktemp.RToF(t.Tln))
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
}
