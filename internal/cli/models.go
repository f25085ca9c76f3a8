package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"memd/pkg/types"
)

func init() {
	rootCmd.AddCommand(modelsCmd)
}

var modelsCmd = &cobra.Command{
	Use:     "models",
	Aliases: []string{"ls"},
	Short:   "List models in the catalog",
	RunE:    runModels,
}

func runModels(cmd *cobra.Command, args []string) error {
	var resp types.ModelsResponse
	if err := newClient().get("/models", &resp); err != nil {
		return err
	}

	if len(resp.Models) == 0 {
		fmt.Println("No models in the catalog.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSIZE\tFAMILY\tCAPABILITIES")
	for _, m := range resp.Models {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			m.ID,
			m.Name,
			humanSize(m.SizeBytes),
			m.Family,
			strings.Join(m.Capabilities, ","),
		)
	}
	return w.Flush()
}
