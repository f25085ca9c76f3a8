package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"memd/pkg/types"
)

func init() {
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(unloadCmd)
	rootCmd.AddCommand(unloadAllCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load <model-id>",
	Short: "Load a model into memory (or bump its reference count)",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	var res types.LoadingResult
	path := "/models/" + url.PathEscape(args[0]) + "/load"
	if err := newClient().post(path, &res); err != nil {
		return err
	}
	fmt.Printf("%s: %s (%s, est. inference %dms)\n",
		res.ModelID, res.Status, humanSize(res.MemoryUsedBytes), res.EstimatedInferenceTimeMs)
	return nil
}

var unloadCmd = &cobra.Command{
	Use:   "unload <model-id>",
	Short: "Release a reference to a loaded model",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnload,
}

func runUnload(cmd *cobra.Command, args []string) error {
	var res types.UnloadResponse
	path := "/models/" + url.PathEscape(args[0]) + "/unload"
	if err := newClient().post(path, &res); err != nil {
		return err
	}
	if res.Unloaded {
		fmt.Printf("%s unloaded\n", args[0])
	} else {
		fmt.Printf("%s still referenced\n", args[0])
	}
	return nil
}

var unloadAllCmd = &cobra.Command{
	Use:   "unload-all",
	Short: "Unload every model regardless of reference counts",
	RunE:  runUnloadAll,
}

func runUnloadAll(cmd *cobra.Command, args []string) error {
	if err := newClient().post("/models/unload_all", nil); err != nil {
		return err
	}
	fmt.Println("All models unloaded.")
	return nil
}
