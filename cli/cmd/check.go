// ABOUTME: Check command for the assetdex CLI
// ABOUTME: Checks whether a device fits at a rack position for provisioning scripts

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/markalston/assetdex-dcim/cli/internal/client"
	"github.com/markalston/assetdex-dcim/cli/internal/elevation"
	"github.com/markalston/assetdex-dcim/models"
	"github.com/spf13/cobra"
)

var (
	checkRack     string
	checkPosition string
	checkHeight   int
	checkExclude  string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a device fits at a rack position",
	Long: `Check whether a device of the given height fits at a rack position and exit
non-zero on conflict. On conflict the conflicting servers and a suggested
alternative position are printed.

Exit codes:
  0 - Position is free
  1 - Position conflicts with mounted servers
  2 - Error (connectivity, unknown rack, invalid input)`,
	Example: `  assetdex check --rack R01 --position U25 --height 2
  assetdex check --rack R01 --position 10 --height 4 --exclude 6f1c... --json`,
	Args: cobra.NoArgs,
	Run: withExitCode(func(ctx context.Context, w io.Writer, _ []string) int {
		return runCheck(ctx, w)
	}),
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkRack, "rack", "", "Rack name")
	checkCmd.Flags().StringVar(&checkPosition, "position", "", "Bottom unit of the device (U25 or 25)")
	checkCmd.Flags().IntVar(&checkHeight, "height", 1, "Device height in rack units")
	checkCmd.Flags().StringVar(&checkExclude, "exclude", "", "Server id to ignore, for moves of an existing server")
}

// runCheck executes the availability check and returns exit code
func runCheck(ctx context.Context, w io.Writer) int {
	req, err := buildCheckRequest(checkRack, checkPosition, checkHeight, checkExclude)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	resp, err := client.New(GetAPIURL()).CheckRackSpace(ctx, req)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatCheckJSON(resp))
	} else {
		fmt.Fprintln(w, formatCheckHuman(req, resp))
	}

	if !resp.Available {
		return 1
	}
	return 0
}

// buildCheckRequest validates flags and builds the API request
func buildCheckRequest(rack, position string, height int, exclude string) (models.AvailabilityRequest, error) {
	rack = strings.TrimSpace(rack)
	if rack == "" {
		return models.AvailabilityRequest{}, fmt.Errorf("--rack is required")
	}
	if strings.TrimSpace(position) == "" {
		return models.AvailabilityRequest{}, fmt.Errorf("--position is required")
	}
	unit, err := parsePosition(position)
	if err != nil {
		return models.AvailabilityRequest{}, fmt.Errorf("--position: %w", err)
	}
	if height < 1 {
		return models.AvailabilityRequest{}, fmt.Errorf("--height must be at least 1")
	}

	return models.AvailabilityRequest{
		Rack:            rack,
		Position:        models.UnitPosition(unit),
		UnitHeight:      height,
		ExcludeServerID: strings.TrimSpace(exclude),
	}, nil
}

// parsePosition accepts a bare unit number or a "U<n>" string.
func parsePosition(s string) (int, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if n < 1 {
			return 0, fmt.Errorf("%w: %q", models.ErrInvalidUnitFormat, s)
		}
		return n, nil
	}
	return models.ParseUnit(s)
}

// formatCheckHuman formats the verdict for human readability
func formatCheckHuman(req models.AvailabilityRequest, resp *models.AvailabilityResponse) string {
	var b strings.Builder
	span := fmt.Sprintf("%s-%s", models.FormatUnit(int(req.Position)), models.FormatUnit(int(req.Position)+req.UnitHeight-1))

	if resp.Available {
		fmt.Fprintf(&b, "✓ %s in %s is free (%dU)\n", span, req.Rack, req.UnitHeight)
	} else {
		fmt.Fprintf(&b, "✗ %s in %s conflicts with:\n", span, req.Rack)
		for _, s := range resp.ConflictingServers {
			fmt.Fprintf(&b, "  %s at %s (%dU)\n", s.Hostname, s.Unit, s.UnitHeight)
		}
		if resp.Suggestion != nil {
			fmt.Fprintf(&b, "\nSuggestion: %s (%s)\n", models.FormatUnit(resp.Suggestion.StartUnit), resp.Suggestion.Reason)
		} else {
			fmt.Fprintf(&b, "\nNo free run fits a %dU device.\n", req.UnitHeight)
		}
	}

	b.WriteString(elevation.FreeSpaceSummary(resp.AvailableSpaces))
	return b.String()
}

// formatCheckJSON formats the verdict as JSON
func formatCheckJSON(resp *models.AvailabilityResponse) string {
	data, _ := json.MarshalIndent(resp, "", "  ")
	return string(data)
}
