// ABOUTME: Health command for the assetdex CLI
// ABOUTME: Checks backend connectivity and database status

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/markalston/assetdex-dcim/cli/internal/client"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long:  `Check connectivity to the AssetDex backend and verify its database is reachable.`,
	Args:  cobra.NoArgs,
	Run: withExitCode(func(ctx context.Context, w io.Writer, _ []string) int {
		return runHealth(ctx, w)
	}),
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth exits 0 when healthy, 1 when the backend answers but reports
// itself degraded, and 2 when it cannot be reached at all.
func runHealth(ctx context.Context, w io.Writer) int {
	backend := GetAPIURL()
	resp, err := client.New(backend).Health(ctx)
	if resp == nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	render := formatHealthHuman
	if IsJSONOutput() {
		render = formatHealthJSON
	}
	fmt.Fprintln(w, render(backend, resp))

	if err != nil {
		return 1
	}
	return 0
}

func formatHealthHuman(backend string, resp *client.HealthResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s%s\n", "Backend:", backend)
	fmt.Fprintf(&b, "%-10s%s\n", "Status:", resp.Status)
	fmt.Fprintf(&b, "%-10s%s", "Database:", resp.Database)
	return b.String()
}

type healthReport struct {
	Backend  string `json:"backend"`
	Status   string `json:"status"`
	Database string `json:"database"`
}

func formatHealthJSON(backend string, resp *client.HealthResponse) string {
	data, _ := json.MarshalIndent(healthReport{backend, resp.Status, resp.Database}, "", "  ")
	return string(data)
}
