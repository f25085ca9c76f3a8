package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"memd/pkg/types"
)

func init() {
	rootCmd.AddCommand(psCmd)
}

var psCmd = &cobra.Command{
	Use:   "ps",
	Short: "List models currently loaded in memory",
	RunE:  runPs,
}

func runPs(cmd *cobra.Command, args []string) error {
	var rep types.MemoryReport
	if err := newClient().get("/memory/report", &rep); err != nil {
		return err
	}

	if len(rep.Models) == 0 {
		fmt.Println("No models currently loaded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIZE\tREFS\tLAST USED\tEST INFER")
	for _, m := range rep.Models {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%dms\n",
			m.ModelID,
			humanSize(m.MemoryUsedBytes),
			m.ReferenceCount,
			time.Unix(m.LastUsedUnix, 0).Format("15:04:05"),
			m.EstimatedInferenceTimeMs,
		)
	}
	return w.Flush()
}
