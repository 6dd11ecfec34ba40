package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/primus/internal/config"
	"github.com/dshills/primus/internal/history"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the query history ledger",
}

func openHistory() (*history.Store, error) {
	cfg, err := config.Load(nil)
	if err != nil {
		return nil, err
	}
	path, err := cfg.HistoryPath()
	if err != nil {
		return nil, err
	}
	s, err := history.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	return s, nil
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded queries, newest first",
	RunE: runtimeE(func(cmd *cobra.Command, args []string) error {
		s, err := openHistory()
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.List(flagHistoryLimit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(os.Stdout, "%s  %-8s  %s -> %s\n",
				e.CreatedAt.Format("2006-01-02 15:04:05"), e.Op, e.Input, e.Result)
		}
		return nil
	}),
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show history statistics",
	RunE: runtimeE(func(cmd *cobra.Command, args []string) error {
		s, err := openHistory()
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.GetStats()
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}),
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded queries",
	RunE: runtimeE(func(cmd *cobra.Command, args []string) error {
		s, err := openHistory()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "History cleared.")
		return nil
	}),
}

func init() {
	historyListCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum entries to list (0 for all)")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyClearCmd)
}
