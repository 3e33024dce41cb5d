package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zenith/internal/core/domain"
)

var (
	profileBirth birthFlags
	profilePlace string
	profileNotes string
	profileJSON  bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage birth profiles",
	Long: `Store, list and remove birth profiles.

Only the birth data is stored. Charts are recomputed from it every time a
profile is used, so a stored profile never goes stale.`,
}

var profileAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Store a birth profile",
	Long: `Store a birth profile under a name.

Example:
  zenith profile add "Ada Lovelace" --date 1815-12-10 --time 13:00 \
    --lat 51.5072 --lon -0.1276 --place London`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileAdd,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show [profile]",
	Short: "Show a stored profile",
	Long:  `Show a profile by ID, unique ID prefix or name.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove [profile]",
	Short: "Remove a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileRemove,
}

func init() {
	addBirthFlags(profileAddCmd, &profileBirth)
	profileAddCmd.Flags().StringVar(&profilePlace, "place", "", "birthplace label")
	profileAddCmd.Flags().StringVar(&profileNotes, "notes", "", "free text notes")
	profileListCmd.Flags().BoolVar(&profileJSON, "json", false, "output profiles as JSON")

	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileRemoveCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileAdd(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}
	if profileBirth.date == "" {
		return fmt.Errorf("%w: --date is required", domain.ErrInvalidInput)
	}

	birth, loc, err := profileBirth.civil()
	if err != nil {
		return err
	}

	p, err := profileService.Add(cmd.Context(), domain.BirthProfile{
		Name:      args[0],
		Birth:     birth,
		Location:  loc,
		PlaceName: profilePlace,
		Notes:     profileNotes,
	})
	if err != nil {
		return fmt.Errorf("failed to add profile: %w", err)
	}

	cmd.Printf("Added profile %s (%s)\n", p.DisplayName(), p.ID)
	return nil
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	profiles, err := profileService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if profileJSON {
		return outputJSON(cmd, profiles)
	}

	if len(profiles) == 0 {
		cmd.Println("No profiles stored.")
		cmd.Println("Add one with 'zenith profile add'.")
		return nil
	}

	header(cmd, "Profiles")
	for i := range profiles {
		p := &profiles[i]
		cmd.Printf("  %-8s %-28s %s\n", shortID(p.ID), p.DisplayName(), p.Birth)
	}
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	p, err := profileService.Find(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("profile %q: %w", args[0], err)
	}

	header(cmd, p.DisplayName())
	cmd.Printf("  %s %s\n", label(cmd, "ID:      "), p.ID)
	cmd.Printf("  %s %s\n", label(cmd, "Birth:   "), p.Birth)
	cmd.Printf("  %s %.4f, %.4f\n", label(cmd, "Location:"), p.Location.Latitude, p.Location.Longitude)
	if p.Location.Elevation != 0 {
		cmd.Printf("  %s %.0f m\n", label(cmd, "Elevation:"), p.Location.Elevation)
	}
	if p.Notes != "" {
		cmd.Printf("  %s %s\n", label(cmd, "Notes:   "), p.Notes)
	}
	cmd.Printf("  %s %s\n", label(cmd, "Created: "), p.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func runProfileRemove(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	p, err := profileService.Find(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("profile %q: %w", args[0], err)
	}
	if err := profileService.Remove(cmd.Context(), p.ID); err != nil {
		return fmt.Errorf("failed to remove profile: %w", err)
	}

	cmd.Printf("Removed profile %s\n", p.DisplayName())
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
