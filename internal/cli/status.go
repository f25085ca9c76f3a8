package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"memd/pkg/types"
)

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(optimizeCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status and counters",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	var st types.StatusResponse
	if err := newClient().get("/status", &st); err != nil {
		return err
	}
	fmt.Printf("budget:    %s\n", humanSize(st.MaxMemoryBytes))
	fmt.Printf("used:      %s\n", humanSize(st.UsedBytes))
	fmt.Printf("loaded:    %d\n", st.LoadedCount)
	fmt.Printf("loads:     %d\n", st.LoadsTotal)
	fmt.Printf("evictions: %d\n", st.EvictionsTotal)
	fmt.Printf("uptime:    %s\n", (time.Duration(st.UptimeSeconds) * time.Second).String())
	return nil
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the memory usage report",
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	var rep types.MemoryReport
	if err := newClient().get("/memory/report", &rep); err != nil {
		return err
	}
	fmt.Printf("used %s of %s (%.1f%%), %s available, %d model(s) loaded\n",
		humanSize(rep.TotalUsedBytes),
		humanSize(rep.MaxMemoryBytes),
		rep.MemoryUsagePercentage,
		humanSize(rep.AvailableBytes),
		rep.LoadedCount,
	)
	return nil
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Evict idle models until usage drops below half the budget",
	RunE:  runOptimize,
}

func runOptimize(cmd *cobra.Command, args []string) error {
	var res types.OptimizeResponse
	if err := newClient().post("/memory/optimize", &res); err != nil {
		return err
	}
	fmt.Printf("evicted %d model(s)\n", res.Evicted)
	return nil
}
