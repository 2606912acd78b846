package cmd

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerwise/internal/appdata"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Inspect the boot data",
}

var dataCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the boot data, then print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		b, err := appdata.NewLoader(cfg.Source(), nil).Load(cmd.Context())
		if err != nil {
			var de *appdata.DataError
			if errors.As(err, &de) {
				return errors.New(de.Detail())
			}
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Education fields: %d\n", len(b.EducationFields))
		for _, f := range b.EducationFields {
			sections := b.FormStructure[f.ID]
			questions := len(b.Quiz[f.ID])
			fmt.Fprintf(out, "  %-24s %2d levels  %2d form sections  %2d quiz questions\n",
				truncate(f.Name, 24), len(f.Levels), len(sections), questions)
		}
		fmt.Fprintf(out, "General quiz questions: %d\n", len(b.Quiz[appdata.GeneralQuizKey]))

		var orphans []string
		for id := range b.FormStructure {
			if _, ok := b.Field(id); !ok {
				orphans = append(orphans, id)
			}
		}
		if len(orphans) > 0 {
			sort.Strings(orphans)
			fmt.Fprintf(out, "Form structure for unknown fields: %v\n", orphans)
		}
		return nil
	},
}

func init() {
	dataCmd.AddCommand(dataCheckCmd)
}
