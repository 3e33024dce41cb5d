package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

var (
	progressBirth  birthFlags
	progressTo     string
	progressMethod string
	progressJSON   bool
)

var progressCmd = &cobra.Command{
	Use:   "progress [profile]",
	Short: "Progress a natal chart to a date",
	Long: `Cast a secondary progression: one day after birth for each year of life.

Methods:
  solar_arc   - natal angles and cusps advanced by the Sun's arc (default)
  naive_date  - everything recomputed for the progressed instant`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgress,
}

func init() {
	addBirthFlags(progressCmd, &progressBirth)
	progressCmd.Flags().StringVar(&progressTo, "to", "", "target date as RFC 3339 or YYYY-MM-DD (default now)")
	progressCmd.Flags().StringVarP(&progressMethod, "method", "m", "", "progression method (default from settings)")
	progressCmd.Flags().BoolVar(&progressJSON, "json", false, "output the progressed chart as JSON")
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	if chartService == nil {
		return errors.New("chart service not configured")
	}

	req, title, err := resolveBirth(cmd, args, &progressBirth)
	if err != nil {
		return err
	}
	target, err := parseInstant(progressTo)
	if err != nil {
		return err
	}

	var method domain.ProgressionMethod
	if progressMethod != "" {
		method, err = domain.ParseProgressionMethod(progressMethod)
		if err != nil {
			return err
		}
	}

	prog, err := chartService.Progressed(cmd.Context(), req, target, method)
	if err != nil {
		return fmt.Errorf("failed to progress chart: %w", err)
	}

	if progressJSON {
		return outputJSON(cmd, prog)
	}

	cmd.Printf("%s %s\n", label(cmd, "Method:"), prog.Method.Description())
	cmd.Printf("%s %s\n", label(cmd, "Target:"), prog.Target.Format("2006-01-02"))
	cmd.Printf("%s %.4f°\n", label(cmd, "Solar arc:"), prog.SolarArc)
	cmd.Println()
	printChart(cmd, "Progressed chart: "+title, &prog.Chart)
	return nil
}
