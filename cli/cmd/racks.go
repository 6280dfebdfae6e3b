// ABOUTME: Rack listing and elevation commands for the assetdex CLI
// ABOUTME: Renders racks as a lipgloss table and a single rack as an elevation

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/markalston/assetdex-dcim/cli/internal/client"
	"github.com/markalston/assetdex-dcim/cli/internal/elevation"
	"github.com/markalston/assetdex-dcim/models"
	"github.com/spf13/cobra"
)

var racksCmd = &cobra.Command{
	Use:   "racks",
	Short: "List racks with unit usage",
	Args:  cobra.NoArgs,
	Run: withExitCode(func(ctx context.Context, w io.Writer, _ []string) int {
		return runRacks(ctx, w)
	}),
}

var rackCmd = &cobra.Command{
	Use:   "rack <name>",
	Short: "Show a rack elevation",
	Long:  `Show every unit of a rack, top of rack first, with mounted servers and free runs.`,
	Args:  cobra.ExactArgs(1),
	Run: withExitCode(func(ctx context.Context, w io.Writer, args []string) int {
		return runRack(ctx, w, args[0])
	}),
}

func init() {
	rootCmd.AddCommand(racksCmd)
	rootCmd.AddCommand(rackCmd)
}

// runRacks lists racks and returns exit code
func runRacks(ctx context.Context, w io.Writer) int {
	racks, err := client.New(GetAPIURL()).ListRacks(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(racks, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(racks) == 0 {
		fmt.Fprintln(w, "No racks defined.")
		return 0
	}
	fmt.Fprintln(w, formatRacksTable(racks))
	return 0
}

// formatRacksTable renders rack summaries as a bordered table
func formatRacksTable(racks []models.RackSummary) string {
	rows := make([][]string, len(racks))
	for i, r := range racks {
		rows[i] = []string{
			r.Name,
			r.Location,
			strconv.Itoa(r.TotalUnits),
			strconv.Itoa(r.UsedUnits),
			strconv.Itoa(r.FreeUnits),
			strconv.Itoa(r.ServerCount),
		}
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(elevation.Primary).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(elevation.Muted)).
		Headers("RACK", "LOCATION", "UNITS", "USED", "FREE", "SERVERS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return t.String()
}

// runRack renders one rack elevation and returns exit code
func runRack(ctx context.Context, w io.Writer, name string) int {
	occ, err := client.New(GetAPIURL()).GetRack(ctx, name)
	if err != nil {
		if client.IsNotFound(err) {
			fmt.Fprintf(w, "Error: rack %q not found\n", name)
		} else {
			fmt.Fprintf(w, "Error: %v\n", err)
		}
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(occ, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, elevation.Render(*occ))
	return 0
}
