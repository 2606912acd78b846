package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "careerwise", version)

		want, _ := cmd.Flags().GetString("check")
		if want == "" {
			return nil
		}
		msg, err := compareVersion(version, want)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

// compareVersion describes how current relates to want. Both are semver
// strings with or without the leading "v".
func compareVersion(current, want string) (string, error) {
	want = canonical(want)
	if !semver.IsValid(want) {
		return "", fmt.Errorf("invalid version %q", want)
	}
	current = canonical(current)
	if !semver.IsValid(current) {
		return "Development build; cannot compare with " + want + ".", nil
	}
	switch semver.Compare(current, want) {
	case -1:
		return fmt.Sprintf("Older than %s.", want), nil
	case 1:
		return fmt.Sprintf("Newer than %s.", want), nil
	}
	return fmt.Sprintf("Up to date with %s.", want), nil
}

func canonical(v string) string {
	if v != "" && v[0] != 'v' {
		return "v" + v
	}
	return v
}

func init() {
	versionCmd.Flags().String("check", "", "Compare the running version with this release (e.g. v1.2.0)")
}
