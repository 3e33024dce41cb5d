package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

var (
	chartBirth  birthFlags
	chartHouses string
	chartNode   string
	chartJSON   bool
	chartAll    bool
)

var chartCmd = &cobra.Command{
	Use:   "chart [profile]",
	Short: "Cast a natal chart",
	Long: `Cast a natal chart for a stored profile or for explicit birth data.

The chart lists the position, house and daily motion of every body, the
lunar nodes, Lilith and the Part of Fortune, the four angles, the cusps of
each requested house system, the lunar phase and the aspects between them.

Examples:
  zenith chart --date 1990-01-01 --time 00:00 --lat 51.5072 --lon -0.1276
  zenith chart ada --houses whole_sign,placidus
  zenith chart --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChart,
}

func init() {
	addBirthFlags(chartCmd, &chartBirth)
	chartCmd.Flags().StringVar(&chartHouses, "houses", "", "comma separated house systems (placidus, equal, whole_sign)")
	chartCmd.Flags().StringVar(&chartNode, "node", "", "lunar node formula (mean or true)")
	chartCmd.Flags().BoolVar(&chartJSON, "json", false, "output the chart as JSON")
	chartCmd.Flags().BoolVar(&chartAll, "all", false, "cast every stored profile and print a summary")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	if chartService == nil {
		return errors.New("chart service not configured")
	}

	if chartAll {
		return runChartAll(cmd)
	}

	req, title, err := resolveBirth(cmd, args, &chartBirth)
	if err != nil {
		return err
	}
	if err := applyChartOptions(&req); err != nil {
		return err
	}

	chart, err := chartService.Natal(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to cast chart: %w", err)
	}

	if chartJSON {
		return outputJSON(cmd, chart)
	}
	printChart(cmd, "Natal chart: "+title, chart)
	return nil
}

func applyChartOptions(req *domain.ChartRequest) error {
	systems, err := parseHouseSystems(chartHouses)
	if err != nil {
		return err
	}
	if systems != nil {
		req.HouseSystems = systems
	}
	if chartNode != "" {
		mode := domain.NodeMode(strings.ToLower(chartNode))
		if !mode.IsValid() {
			return fmt.Errorf("%w: unknown node mode %q", domain.ErrInvalidInput, chartNode)
		}
		req.NodeMode = mode
	}
	return nil
}

// runChartAll casts every stored profile concurrently.
func runChartAll(cmd *cobra.Command) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	profiles, err := profileService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(profiles) == 0 {
		cmd.Println("No profiles stored.")
		return nil
	}

	reqs := make([]domain.ChartRequest, len(profiles))
	for i := range profiles {
		reqs[i] = profiles[i].Request(nil, "")
		if err := applyChartOptions(&reqs[i]); err != nil {
			return err
		}
	}

	charts, err := chartService.NatalBatch(cmd.Context(), reqs)
	if err != nil {
		return fmt.Errorf("failed to cast charts: %w", err)
	}

	if chartJSON {
		return outputJSON(cmd, charts)
	}

	header(cmd, "Charts")
	cmd.Printf("  %-24s %-20s %-20s %s\n", "Name", "Sun", "Moon", "Ascendant")
	for i := range charts {
		sun, _ := charts[i].Body(domain.BodySun)
		moon, _ := charts[i].Body(domain.BodyMoon)
		cmd.Printf("  %-24s %-20s %-20s %s\n",
			profiles[i].Name,
			domain.FormatZodiac(sun.Longitude),
			domain.FormatZodiac(moon.Longitude),
			domain.FormatZodiac(charts[i].Angles.Ascendant))
	}
	return nil
}
