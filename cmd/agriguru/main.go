// Command agriguru answers farming questions from the terminal using the same
// knowledge base and advice templates as the HTTP service.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BerylCAtieno/agriguru-agent/internal/advisor"
	"github.com/BerylCAtieno/agriguru-agent/internal/knowledge"
	"github.com/BerylCAtieno/agriguru-agent/internal/location"
	"github.com/BerylCAtieno/agriguru-agent/internal/weather"
	"github.com/spf13/cobra"
)

type options struct {
	crop     string
	location string
	season   string
	seed     int64
	asJSON   bool
}

type app struct {
	kb       *knowledge.Base
	weather  *weather.Lookup
	resolver *location.Resolver
	advisor  *advisor.Advisor
}

func newApp(seed int64) *app {
	kb := knowledge.New()
	resolver := location.NewResolver(kb, 0, 0)

	if seed == 0 {
		lookup := weather.NewLookup(nil)
		return &app{kb: kb, weather: lookup, resolver: resolver, advisor: advisor.New(kb, lookup, resolver)}
	}

	src := weather.NewLockedSource(seed)
	lookup := weather.NewLookup(src)
	return &app{
		kb:       kb,
		weather:  lookup,
		resolver: resolver,
		advisor:  advisor.New(kb, lookup, resolver, advisor.WithChooser(src)),
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "agriguru",
		Short:         "Rule-based farming advice from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "Seed for weather jitter and heading choice (0: random)")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Print the JSON payload instead of the advice text")

	ask := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a free-text farming question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(opts.seed)
			result := a.advisor.Result(advisor.Query{
				Text:     args[0],
				Crop:     opts.crop,
				Location: opts.location,
				Season:   opts.season,
			})
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), result.Advice)
			return err
		},
	}
	ask.Flags().StringVar(&opts.crop, "crop", "", "Crop key (rice, wheat, cotton, maize)")
	ask.Flags().StringVar(&opts.location, "location", "", "City or region")
	ask.Flags().StringVar(&opts.season, "season", "", "kharif or rabi")

	weatherCmd := &cobra.Command{
		Use:   "weather [location]",
		Short: "Show weather-based advice for a location",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := "Delhi"
			if len(args) == 1 {
				loc = args[0]
			}
			a := newApp(opts.seed)
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), a.weather.Get(loc))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.advisor.WeatherReport(loc, opts.crop))
			return err
		},
	}
	weatherCmd.Flags().StringVar(&opts.crop, "crop", "", "Crop to check suitability for")

	soil := &cobra.Command{
		Use:   "soil [location]",
		Short: "Show soil recommendations for a location",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := "india"
			if len(args) == 1 {
				loc = args[0]
			}
			a := newApp(opts.seed)
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), a.resolver.Resolve(loc))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.advisor.SoilReport(loc))
			return err
		},
	}

	calendar := &cobra.Command{
		Use:   "calendar [season]",
		Short: "Show the seasonal farming calendar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			season := "kharif"
			if len(args) == 1 {
				season = args[0]
			}
			a := newApp(opts.seed)
			if opts.asJSON {
				cal, ok := a.kb.Season(season)
				if !ok {
					return fmt.Errorf("unknown season %q", season)
				}
				return printJSON(cmd.OutOrStdout(), cal)
			}
			advice := a.advisor.Advise(advisor.Query{
				Text:   fmt.Sprintf("Seasonal farming activities for %s", season),
				Season: season,
			})
			_, err := fmt.Fprintln(cmd.OutOrStdout(), advice)
			return err
		},
	}

	crops := &cobra.Command{
		Use:   "crops",
		Short: "List crops in the knowledge base",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(opts.seed)
			for _, key := range a.kb.CropKeys() {
				crop, _ := a.kb.Crop(key)
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", key, crop.ScientificName)
			}
			return nil
		},
	}

	root.AddCommand(ask, weatherCmd, soil, calendar, crops)
	return root
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
