package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lucasmendis/supplyline/internal/adapters/persistence"
	"github.com/lucasmendis/supplyline/internal/domain/logistics"
	"github.com/lucasmendis/supplyline/internal/domain/shared"
	"github.com/lucasmendis/supplyline/internal/infrastructure/config"
	"github.com/lucasmendis/supplyline/internal/infrastructure/database"
)

// NewWorldCommand creates the world command with subcommands
func NewWorldCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "world",
		Short: "Manage the persisted world",
		Long: `Manage facilities stored in the world save database.

Examples:
  supplyline world add --name sawmill --at 0,0 --needs wood --produces planks
  supplyline world add --name depot --at 3,9 --stockpile
  supplyline world list`,
	}

	cmd.AddCommand(newWorldAddCommand())
	cmd.AddCommand(newWorldListCommand())

	return cmd
}

func newWorldAddCommand() *cobra.Command {
	var (
		configPath string
		name       string
		at         string
		produces   string
		needs      []string
		stockpile  bool
		width      int
		height     int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a facility to the world save",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name flag is required")
			}
			position, err := parsePosition(at)
			if err != nil {
				return err
			}

			footprint := logistics.Footprint{Width: width, Height: height}
			var facility *logistics.Facility
			if stockpile {
				facility, err = logistics.NewStockpile(name, position, footprint)
			} else {
				required := make([]logistics.Resource, 0, len(needs))
				for _, need := range needs {
					required = append(required, logistics.Resource(need))
				}
				facility, err = logistics.NewProductionFacility(name, position, footprint, logistics.Resource(produces), required)
			}
			if err != nil {
				return err
			}

			repo, err := openFacilityRepository(configPath)
			if err != nil {
				return err
			}
			if err := repo.Save(context.Background(), facility); err != nil {
				return err
			}

			fmt.Printf("Added %s %q at %s (id %s)\n", facility.Kind(), facility.Name(), facility.Position(), facility.ID())
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&name, "name", "", "Facility name (required)")
	cmd.Flags().StringVar(&at, "at", "0,0", "Root grid position as x,y")
	cmd.Flags().StringVar(&produces, "produces", "", "Produced resource type")
	cmd.Flags().StringSliceVar(&needs, "needs", nil, "Required resource types, in priority order")
	cmd.Flags().BoolVar(&stockpile, "stockpile", false, "Create a stockpile instead of a production facility")
	cmd.Flags().IntVar(&width, "width", 1, "Footprint width in cells")
	cmd.Flags().IntVar(&height, "height", 1, "Footprint height in cells")

	return cmd
}

func newWorldListCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List facilities in the world save",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openFacilityRepository(configPath)
			if err != nil {
				return err
			}
			facilities, err := repo.ListAll(context.Background())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tKIND\tPOSITION\tPRODUCES\tNEEDS")
			for _, facility := range facilities {
				produces := "-"
				if output, ok := facility.ProducedResource(); ok {
					produces = string(output)
				}
				needs := "-"
				if required := facility.RequiredResources(); len(required) > 0 {
					parts := make([]string, len(required))
					for i, r := range required {
						parts[i] = string(r)
					}
					needs = strings.Join(parts, ",")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					facility.ID(), facility.Name(), facility.Kind(), facility.Position(), produces, needs)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file")

	return cmd
}

func openFacilityRepository(configPath string) (logistics.FacilityRepository, error) {
	cfg := config.LoadConfigOrDefault(configPath)
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	return persistence.NewGormFacilityRepository(db), nil
}

func parsePosition(s string) (shared.GridPosition, error) {
	var x, y int
	if _, err := fmt.Sscanf(s, "%d,%d", &x, &y); err != nil {
		return shared.GridPosition{}, fmt.Errorf("invalid position %q, expected x,y: %w", s, err)
	}
	return shared.NewGridPosition(x, y), nil
}
