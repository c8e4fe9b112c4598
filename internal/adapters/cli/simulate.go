package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lucasmendis/supplyline/internal/adapters/registry"
	"github.com/lucasmendis/supplyline/internal/adapters/world"
	"github.com/lucasmendis/supplyline/internal/application/routing"
	"github.com/lucasmendis/supplyline/internal/domain/logistics"
	"github.com/lucasmendis/supplyline/internal/domain/shared"
	"github.com/lucasmendis/supplyline/internal/infrastructure/config"
)

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	var (
		configPath string
		steps      int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a demo logistics scenario",
		Long: `Run a small built-in scenario and print the resolved routes.

The scenario places a sawmill needing wood, a forester hut producing wood and
a depot stockpile. Roads are laid halfway through the run, demonstrating how
unresolved routes self-heal once infrastructure exists.

Example:
  supplyline simulate --steps 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(configPath, steps)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file")
	cmd.Flags().IntVar(&steps, "steps", 100, "Number of simulation steps to run")

	return cmd
}

func runSimulate(configPath string, steps int) error {
	cfg := config.LoadConfigOrDefault(configPath)

	entities := registry.NewEntityRegistry()
	roads := world.NewRoadNetwork()
	translator := world.NewGridTranslator()
	events := routing.NewRouteEventBus()

	sim := routing.NewSimulation(
		entities,
		roads,
		translator,
		events,
		routing.ResolverOptions{
			PreferDirectSupply: cfg.Resolver.PreferDirectSupply,
			MaxSearchRadius:    cfg.Resolver.MaxSearchRadius,
		},
		cfg.Resolver.RetryInterval,
	)

	sawmill, err := logistics.NewProductionFacility(
		"sawmill",
		shared.NewGridPosition(0, 0),
		logistics.Footprint{Width: 2, Height: 2},
		"planks",
		[]logistics.Resource{"wood"},
	)
	if err != nil {
		return err
	}

	forester, err := logistics.NewProductionFacility(
		"forester-hut",
		shared.NewGridPosition(8, 6),
		logistics.SingleCell,
		"wood",
		nil,
	)
	if err != nil {
		return err
	}

	depot, err := logistics.NewStockpile(
		"depot",
		shared.NewGridPosition(3, 9),
		logistics.Footprint{Width: 2, Height: 2},
	)
	if err != nil {
		return err
	}

	for _, facility := range []*logistics.Facility{sawmill, forester, depot} {
		entities.Register(facility)
		sim.AddFacility(facility, nil)
	}

	fmt.Printf("Running %d steps (%s simulated per step)\n\n", steps, cfg.Simulation.StepInterval)
	fmt.Println("Before roads exist:")
	printRoutes(sim)

	for step := 0; step < steps; step++ {
		// Halfway through, the player lays a road connecting everything.
		if step == steps/2 {
			roads.LayPath(
				shared.NewGridPosition(2, 0),
				shared.NewGridPosition(2, 1),
				shared.NewGridPosition(2, 2),
				shared.NewGridPosition(2, 3),
				shared.NewGridPosition(2, 4),
				shared.NewGridPosition(2, 5),
				shared.NewGridPosition(2, 6),
				shared.NewGridPosition(3, 6),
				shared.NewGridPosition(4, 6),
				shared.NewGridPosition(5, 6),
				shared.NewGridPosition(6, 6),
				shared.NewGridPosition(7, 6),
			)
			roads.LayPath(
				shared.NewGridPosition(2, 6),
				shared.NewGridPosition(2, 7),
				shared.NewGridPosition(2, 8),
				shared.NewGridPosition(2, 9),
			)
			sim.MapChanged()
			fmt.Println("\nRoads laid, map change applied:")
			printRoutes(sim)
		}

		sim.Step(cfg.Simulation.StepInterval)
	}

	fmt.Println("\nFinal state:")
	printRoutes(sim)
	return nil
}

func printRoutes(sim *routing.Simulation) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FACILITY\tCONFIGURED\tSOURCE\tDESTINATION")
	for _, resolver := range sim.Resolvers() {
		route := resolver.Route()
		fmt.Fprintf(w, "%s\t%v\t%s\t%s\n",
			resolver.Facility().Name(),
			resolver.IsConfigured(),
			orDash(route.SourceName),
			orDash(route.DestinationName),
		)
	}
	w.Flush()
}

func orDash(name string) string {
	if name == "" {
		return "-"
	}
	return name
}
