/*
Copyright © 2019 the pipeflow authors.
This file is part of pipeflow.

pipeflow is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

pipeflow is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with pipeflow.  If not, see <http://www.gnu.org/licenses/>.
*/

package pipeflowutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/pipeflow"
	"github.com/spatialmodel/pipeflow/catalog"
	"github.com/spatialmodel/pipeflow/solver"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to pipeflow.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel specifies the level of messages written to standard
              error: panic, fatal, error, warning, info, or debug.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "legacy",
			usage: `
              legacy specifies that the report should be written in the
              fixed-column legacy engineering report format. This is
              the default.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "modern",
			usage: `
              modern specifies that the report should be written as
              aligned tables in SI units. It cannot be combined with --legacy.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "units",
			usage: `
              units overrides the unit system of every input record.
              Valid values are traditional (or 0) and si (or 1). If empty,
              the UNITS field of each record is used.`,
			shorthand:  "u",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile specifies the path to the report file. If empty,
              the report is written to standard output.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "XLSXFile",
			usage: `
              XLSXFile specifies the path to an Excel spreadsheet to write
              per-segment results to. If empty, no spreadsheet is written.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "PDFFile",
			usage: `
              PDFFile specifies the path to a PDF copy of the report.
              If empty, no PDF is written.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "CatalogFile",
			usage: `
              CatalogFile specifies the path to a TOML file with schedule
              rows and materials that add to or replace the built-in tables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{scheduleCmd.Flags(), roughnessCmd.Flags()},
		},
		{
			name: "dirty",
			usage: `
              dirty specifies that the roughness of fouled pipe should be
              printed instead of the roughness of new, clean pipe.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{roughnessCmd.Flags()},
		},
		{
			name: "Friction.Tolerance",
			usage: `
              Friction.Tolerance specifies the relative convergence
              tolerance of the Colebrook friction factor iteration.`,
			defaultVal: 1.0e-10,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Friction.MaxIterations",
			usage: `
              Friction.MaxIterations specifies the maximum number of
              Colebrook iterations before a case fails.`,
			defaultVal: 50,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("PIPEFLOW")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
			case int:
				set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(scheduleCmd)
	Root.AddCommand(roughnessCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("pipeflow: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "pipeflow",
	Short: "Friction head loss in pipes.",
	Long: `pipeflow calculates friction head losses in pipes and in pipes
in series using the Darcy-Weisbach equation with the Colebrook friction
factor, or the Hazen-Williams equation.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'PIPEFLOW_var' where 'var' is the
name of the variable to be set, with '.' replaced by '_'.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of pipeflow.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pipeflow v%s\n", pipeflow.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd solves a batch of cases.
var runCmd = &cobra.Command{
	Use:   "run input-file",
	Short: "Solve a batch of head loss cases.",
	Long: `run reads one case per line from input-file and writes a report of
the head loss in each pipe segment and the total head loss of each case.

A Darcy-Weisbach case has the form

	[DW] Q D L NU E [UNITS] [; D L E]...

and a Hazen-Williams case has the form

	HW Q D L C [UNITS] [; D L C]...

where Q is the flow rate, D the inner diameter, L the length, NU the kinematic
viscosity, E the absolute roughness height, and C the Hazen-Williams
coefficient. Additional segments in series follow semicolons. UNITS is
0 or traditional (Q in cfs, D in inches, L and E in feet, NU in ft²/s; the
default) or 1 or si (Q in m³/s, D and E in mm, L in m, NU in m²/s).
Fields may be separated by spaces or commas and '#' starts a comment.
The first case that cannot be solved ends the run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		legacy, err := outputMode(Cfg.GetBool("legacy"), Cfg.GetBool("modern"))
		if err != nil {
			return err
		}
		units, err := unitsOption(Cfg.GetString("units"))
		if err != nil {
			return err
		}
		settings, err := frictionSettings(Cfg.Get("Friction.Tolerance"), Cfg.Get("Friction.MaxIterations"))
		if err != nil {
			return err
		}
		log, err := newLogger(Cfg.GetString("LogLevel"), cmd.OutOrStderr())
		if err != nil {
			return err
		}
		return Run(context.Background(), log, cmd.OutOrStdout(),
			os.ExpandEnv(args[0]),
			os.ExpandEnv(Cfg.GetString("OutputFile")),
			os.ExpandEnv(Cfg.GetString("XLSXFile")),
			os.ExpandEnv(Cfg.GetString("PDFFile")),
			solver.Options{Legacy: legacy, Units: units, Settings: settings},
		)
	},
	DisableAutoGenTag: true,
}

// scheduleCmd prints schedule table entries.
var scheduleCmd = &cobra.Command{
	Use:   "schedule schedule [nps]",
	Short: "Print pipe dimensions for a schedule.",
	Long: `schedule prints the outside diameter, wall thickness and inner
diameter of the nominal pipe size closest to nps in the given schedule
(for example 40, 80, STD or XS). If nps is omitted, all tabulated sizes of
the schedule are printed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(os.ExpandEnv(Cfg.GetString("CatalogFile")))
		if err != nil {
			return err
		}
		if len(args) == 2 {
			nps, err := cast.ToFloat64E(args[1])
			if err != nil {
				return fmt.Errorf("pipeflow: invalid nominal pipe size %q", args[1])
			}
			e, err := c.NearestByNPS(args[0], nps)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e)
			return nil
		}
		return printSchedule(cmd.OutOrStdout(), c, args[0])
	},
	DisableAutoGenTag: true,
}

// roughnessCmd prints material roughness heights.
var roughnessCmd = &cobra.Command{
	Use:   "roughness [material]",
	Short: "Print the roughness height of a pipe material.",
	Long: `roughness prints the absolute roughness height in meters of the
given pipe material when new and clean, or fouled if --dirty is set.
If material is omitted, all tabulated materials are printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(os.ExpandEnv(Cfg.GetString("CatalogFile")))
		if err != nil {
			return err
		}
		if len(args) == 0 {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "material\tclean [m]\tfouled [m]")
			for _, m := range c.Materials() {
				fmt.Fprintf(w, "%s\t%.3g\t%.3g\n", m.Name, m.Clean, m.Fouled)
			}
			return w.Flush()
		}
		e, err := c.Roughness(args[0], !Cfg.GetBool("dirty"))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.3g m\n", e)
		return nil
	},
	DisableAutoGenTag: true,
}

// printSchedule writes every tabulated size of schedule sch.
func printSchedule(w0 io.Writer, c *catalog.Catalog, sch string) error {
	w := tabwriter.NewWriter(w0, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "NPS\tOD [in]\ttwall [in]\tID [in]\t")
	key := catalog.NormalizeSchedule(sch)
	var n int
	for _, r := range c.Rows() {
		t, ok := r.Walls[key]
		if !ok {
			continue
		}
		n++
		fmt.Fprintf(w, "%g\t%.3f\t%.3f\t%.3f\t\n", r.NPS, r.OD, t, r.OD-2*t)
	}
	if n == 0 {
		return fmt.Errorf("pipeflow: schedule %q: %w", sch, catalog.ErrNoSchedule)
	}
	return w.Flush()
}
