package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
)

// isTerminal reports whether the command writes to a terminal. Styling is
// skipped for pipes, files and test buffers.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func header(cmd *cobra.Command, title string) {
	if isTerminal(cmd) {
		cmd.Println(headerStyle.Render(title))
		return
	}
	cmd.Println(title)
}

func label(cmd *cobra.Command, s string) string {
	if isTerminal(cmd) {
		return labelStyle.Render(s)
	}
	return s
}

func warn(cmd *cobra.Command, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if isTerminal(cmd) {
		msg = warnStyle.Render(msg)
	}
	cmd.Println(msg)
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// motion renders the speed column, flagging retrograde motion.
func motion(p domain.BodyPosition) string {
	if p.Speed == 0 {
		return ""
	}
	if p.Retrograde() {
		return fmt.Sprintf("%+.3f°/d R", p.Speed)
	}
	return fmt.Sprintf("%+.3f°/d", p.Speed)
}

func printPositions(cmd *cobra.Command, positions []domain.BodyPosition) {
	for _, p := range positions {
		if !p.Available() {
			cmd.Printf("  %-11s %-18s %s\n", p.Body.DisplayName(), "unavailable", p.Note)
			continue
		}
		house := ""
		if p.House > 0 {
			house = fmt.Sprintf("H%d", p.House)
		}
		cmd.Printf("  %-11s %-16s %-4s %-13s %s\n",
			p.Body.DisplayName(), domain.FormatZodiac(p.Longitude), house, motion(p), p.Precision)
	}
}

func printAngles(cmd *cobra.Command, a domain.ChartAngles) {
	cmd.Printf("  %-11s %s\n", "Ascendant", domain.FormatZodiac(a.Ascendant))
	cmd.Printf("  %-11s %s\n", "Midheaven", domain.FormatZodiac(a.Midheaven))
	cmd.Printf("  %-11s %s\n", "Descendant", domain.FormatZodiac(a.Descendant))
	cmd.Printf("  %-11s %s\n", "Imum Coeli", domain.FormatZodiac(a.ImumCoeli))
}

func printChart(cmd *cobra.Command, title string, c *domain.NatalChart) {
	header(cmd, title)
	cmd.Printf("%s %s (JD %.5f)\n", label(cmd, "UT:"), c.UT.Format("2006-01-02 15:04:05"), c.JulianDay)
	cmd.Printf("%s %.4f°  %s %.4f°\n",
		label(cmd, "LST:"), c.LocalSiderealTime, label(cmd, "Obliquity:"), c.Obliquity)
	cmd.Println()

	header(cmd, "Bodies")
	printPositions(cmd, c.Bodies)
	printPositions(cmd, []domain.BodyPosition{c.Points.NorthNode, c.Points.SouthNode, c.Points.Lilith})
	cmd.Printf("  %-11s %s\n", "Fortune", domain.FormatZodiac(c.Points.PartOfFortune))
	cmd.Println()

	header(cmd, "Angles")
	printAngles(cmd, c.Angles)
	cmd.Println()

	for _, h := range c.Houses {
		header(cmd, "Houses ("+h.System.Description()+")")
		if h.Degraded {
			warn(cmd, "  %s unavailable: %s", h.Requested, h.Reason)
		}
		for i := 0; i < 12; i += 2 {
			cmd.Printf("  %2d %-16s %2d %s\n",
				i+1, domain.FormatZodiac(h.Cusps[i]), i+2, domain.FormatZodiac(h.Cusps[i+1]))
		}
		cmd.Println()
	}

	cmd.Printf("%s %s (%.0f%% illuminated)\n", label(cmd, "Lunar phase:"),
		c.LunarPhase.Name, c.LunarPhase.Illumination*100)
	cmd.Println()

	if len(c.Aspects) > 0 {
		header(cmd, "Aspects")
		for _, a := range c.Aspects {
			cmd.Printf("  %-11s %-14s %-11s orb %.2f°\n",
				a.A.DisplayName(), a.Type, a.B.DisplayName(), a.Orb)
		}
	}
}
