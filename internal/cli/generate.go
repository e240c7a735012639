package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flightgraph/pkg/flights"
	"github.com/matzehuels/flightgraph/pkg/pipeline"
)

const defaultFlightsFile = "flights.json"

// generateCommand creates the generate command, which samples flights and
// writes them as JSON for later use with render --flights-file.
func (c *CLI) generateCommand() *cobra.Command {
	var output string
	opts := pipeline.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample synthetic flights and write them as JSON",
		Long: `Sample synthetic flights between airports and write them as a JSON array.

Each record has an arrival, a destination and a connecting airport.
Arrival and destination always differ. The output can be fed back with
'render --flights-file' or 'layout'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := c.runGenerate(cmd.Context(), opts, output)
			if c.reportUserError(err) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&opts.Airports, "airports", opts.Airports, "number of generated airports")
	cmd.Flags().IntVar(&opts.Flights, "flights", opts.Flights, "number of sampled flights")
	cmd.Flags().StringArrayVar(&opts.AirportIDs, "airport", nil, "explicit airport identifier (repeatable, overrides --airports)")
	cmd.Flags().Uint64Var(&opts.SampleSeed, "seed", opts.Seed, "sampling seed")
	cmd.Flags().StringVarP(&output, "output", "o", defaultFlightsFile, "output file")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string) error {
	opts.Logger = c.Logger
	airports, records, err := c.newRunner().Sample(ctx, opts)
	if err != nil {
		return err
	}

	if err := flights.WriteFile(records, output); err != nil {
		return fmt.Errorf("write flights: %w", err)
	}
	c.Logger.Debug("wrote flights", "path", output, "records", len(records))

	printSuccess(c.Out, "Generated %d flights between %d airports", len(records), len(airports))
	printFile(c.Out, output)
	printNewline(c.Out)
	printNextStep(c.Out, "Render", appName+" render --flights-file "+output)
	return nil
}
