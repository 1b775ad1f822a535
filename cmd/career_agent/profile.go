package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-agent/internal/observability"
	"github.com/jonathan/career-agent/internal/profile"
	"github.com/jonathan/career-agent/internal/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Save or load the user profile file",
}

var profileSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a user profile to a file",
	RunE:  runProfileSave,
}

var profileLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load and display a user profile from a file",
	RunE:  runProfileLoad,
}

var (
	profilePath      string
	profileName      string
	profileTitle     string
	profileYears     int
	profileEducation string
	profileSkills    string
)

func init() {
	profileCmd.PersistentFlags().StringVarP(&profilePath, "file", "f", "", "Profile file path (defaults to the configured profile path)")

	profileSaveCmd.Flags().StringVarP(&profileName, "name", "n", "", "Full name (required)")
	profileSaveCmd.Flags().StringVarP(&profileTitle, "title", "t", "", "Current job title")
	profileSaveCmd.Flags().IntVarP(&profileYears, "years", "y", 0, "Years of experience")
	profileSaveCmd.Flags().StringVarP(&profileEducation, "education", "e", "", "Education summary")
	profileSaveCmd.Flags().StringVarP(&profileSkills, "skills", "s", "", "Comma-separated skills")

	if err := profileSaveCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}

	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileLoadCmd)
	rootCmd.AddCommand(profileCmd)
}

func resolveProfilePath() (string, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return "", err
	}
	if profilePath != "" {
		return profilePath, nil
	}
	return cfg.ProfilePath, nil
}

func runProfileSave(_ *cobra.Command, _ []string) error {
	path, err := resolveProfilePath()
	if err != nil {
		return err
	}

	p := &types.UserProfile{
		Name:            profileName,
		CurrentTitle:    profileTitle,
		YearsExperience: profileYears,
		Education:       profileEducation,
		Skills:          splitTokens(profileSkills),
	}

	if err := profile.Save(p, path); err != nil {
		return err
	}

	fmt.Printf("Profile saved to %s\n", path)
	return nil
}

func runProfileLoad(_ *cobra.Command, _ []string) error {
	path, err := resolveProfilePath()
	if err != nil {
		return err
	}

	p, err := profile.Load(path)
	if err != nil {
		// Missing or corrupt profiles are recoverable: surface a message
		// and let the user pick another file.
		var notFound *profile.NotFoundError
		var corrupt *profile.CorruptError
		if errors.As(err, &notFound) || errors.As(err, &corrupt) {
			fmt.Printf("Could not load profile: %v\n", err)
			return nil
		}
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(p)
	return nil
}
