package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/araddon/dttm"
	"github.com/scylladb/termtables"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	dayFirst bool
	tzTable  string
	ref      string
	verbose  bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "dttm",
		Short: "Parse, extract and manipulate loosely formatted date/time text",
		Long: `dttm resolves loosely formatted date/time text into canonical temporal
values and manipulates them by datepart unit.

Examples:
  dttm parse "December 31st in 1999"
  dttm parse --layout "01/02/2006" "12/31/1999"
  dttm part day_of_week "Sunday, Jan 2 2000"
  dttm add day 1 "Sunday, Jan 2 2000"
  dttm diff hour "1999-12-31 23:59:59" "2000-01-01 00:00:01"
  dttm trunc hour "12/31/1999 23:59:59"
  dttm endof quarter "2/1/2000"
  dttm name day_name "12/31/1999"
  dttm units`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.dayFirst, "day-first", false, "prefer day-first for ambiguous numeric dates such as 03/04/2000")
	cmd.PersistentFlags().StringVar(&opts.tzTable, "tz-table", "", "TOML file of timezone abbreviation overrides")
	cmd.PersistentFlags().StringVar(&opts.ref, "ref", "", "reference time for completing incomplete inputs (default now)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(
		newParseCommand(opts),
		newPartCommand(opts),
		newAddCommand(opts),
		newDiffCommand(opts),
		newSpanCommand(opts, "trunc", "Truncate down to the start of a unit", dttm.DateTrunc),
		newSpanCommand(opts, "startof", "Start of the unit span containing the value", dttm.DateStartOf),
		newSpanCommand(opts, "endof", "Last instant of the unit span containing the value", dttm.DateEndOf),
		newNameCommand(opts),
		newUnitsCommand(),
	)
	return cmd
}

func (o *rootOptions) logger() *zap.SugaredLogger {
	if !o.verbose {
		return zap.NewNop().Sugar()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

func (o *rootOptions) parserOptions() ([]dttm.ParserOption, error) {
	popts := []dttm.ParserOption{dttm.PreferMonthFirst(!o.dayFirst)}
	if o.tzTable != "" {
		zt, err := dttm.LoadZoneTable(o.tzTable)
		if err != nil {
			return nil, err
		}
		popts = append(popts, dttm.WithZoneTable(zt))
	}
	if o.ref != "" {
		ref, err := dttm.Parse(o.ref)
		if err != nil {
			return nil, err
		}
		popts = append(popts, dttm.WithReferenceTime(ref.Instant()))
	}
	return popts, nil
}

func (o *rootOptions) value(text string) (dttm.Temporal, error) {
	popts, err := o.parserOptions()
	if err != nil {
		return dttm.Temporal{}, err
	}
	return dttm.Parse(text, popts...)
}

func newParseCommand(opts *rootOptions) *cobra.Command {
	var layout string

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Resolve date/time text and show the canonical value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := opts.logger()

			var (
				v   dttm.Temporal
				err error
			)
			if layout != "" {
				v, err = dttm.ParseFormatted(args[0], layout)
			} else {
				v, err = opts.value(args[0])
			}
			if err != nil {
				return err
			}
			log.Debugw("resolved", "input", args[0], "value", dttm.Format(v), "epoch_us", v.UnixMicro())

			table := termtables.CreateTable()
			table.AddHeaders("Field", "Value")
			table.AddRow("input", v.Source())
			table.AddRow("value", dttm.Format(v))
			table.AddRow("instant (UTC)", v.Instant().Format("2006-01-02T15:04:05.999999Z07:00"))
			table.AddRow("epoch seconds", v.Epoch())
			if min, ok := v.Offset(); ok {
				table.AddRow("offset minutes", min)
			} else {
				table.AddRow("offset minutes", "none")
			}
			table.AddRow("weekday", v.WeekdayName())
			fmt.Print(table.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&layout, "layout", "", "exact Go layout to parse with; disables heuristics")
	return cmd
}

func newPartCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "part <unit> <text>",
		Short: "Extract one datepart as an integer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := dttm.ResolveDatepart(args[0])
			if err != nil {
				return err
			}
			v, err := opts.value(args[1])
			if err != nil {
				return err
			}
			n, err := dttm.Extract(unit, v)
			if err != nil {
				return err
			}
			fmt.Println(n)
			return nil
		},
	}
}

func newAddCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <unit> <amount> <text>",
		Short: "Shift a value by a signed number of units",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := dttm.ResolveDatepart(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("amount %q: %w", args[1], err)
			}
			v, err := opts.value(args[2])
			if err != nil {
				return err
			}
			out, err := dttm.DateAdd(unit, amount, v)
			if err != nil {
				return err
			}
			opts.logger().Debugw("added", "unit", unit.String(), "amount", amount, "in", dttm.Format(v), "out", dttm.Format(out))
			fmt.Println(dttm.Format(out))
			return nil
		},
	}
}

func newDiffCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <unit> <start> <end>",
		Short: "Count unit boundaries crossed between two values",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := dttm.ResolveDatepart(args[0])
			if err != nil {
				return err
			}
			start, err := opts.value(args[1])
			if err != nil {
				return err
			}
			end, err := opts.value(args[2])
			if err != nil {
				return err
			}
			n, err := dttm.DateDiff(unit, start, end)
			if err != nil {
				return err
			}
			fmt.Println(n)
			return nil
		},
	}
}

func newSpanCommand(opts *rootOptions, use, short string, op func(dttm.Datepart, dttm.Temporal) (dttm.Temporal, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <unit> <text>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := dttm.ResolveDatepart(args[0])
			if err != nil {
				return err
			}
			v, err := opts.value(args[1])
			if err != nil {
				return err
			}
			out, err := op(unit, v)
			if err != nil {
				return err
			}
			fmt.Println(dttm.Format(out))
			return nil
		},
	}
}

func newNameCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "name <unit> <text>",
		Short: "Name a datepart (day_name or month)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := dttm.ResolveDatepart(args[0])
			if err != nil {
				return err
			}
			v, err := opts.value(args[1])
			if err != nil {
				return err
			}
			name, err := dttm.DateName(unit, v)
			if err != nil {
				return err
			}
			fmt.Println(name)
			return nil
		},
	}
}

func newUnitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List datepart units and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := termtables.CreateTable()
			table.AddHeaders("Unit", "Aliases")
			for _, u := range dttm.Dateparts() {
				table.AddRow(u.String(), strings.Join(u.Aliases(), ", "))
			}
			fmt.Print(table.Render())
			return nil
		},
	}
}
