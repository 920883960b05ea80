package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all study data for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user := userFlag(cmd)
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("this deletes all data for %q; re-run with --yes to confirm", user)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Reset(cmd.Context(), user); err != nil {
			return err
		}
		fmt.Printf("Reset data for %s.\n", user)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
