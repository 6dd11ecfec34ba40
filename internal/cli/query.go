package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/primus/internal/config"
	"github.com/dshills/primus/internal/history"
	"github.com/dshills/primus/internal/output"
	"github.com/dshills/primus/internal/prime"
)

// Shared query flags
var (
	flagFormat    string
	flagOut       string
	flagRecord    bool
	flagCacheSize uint64
	flagInclusive bool
)

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flagRecord, "record", false, "Record the query in history")
	cmd.Flags().Uint64Var(&flagCacheSize, "cache-size", 0, "Primality cache size (even integer, at least 4)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagCacheSize > 0 {
		m["cacheSize"] = strconv.FormatUint(flagCacheSize, 10)
	}
	if flagRecord {
		m["history.enabled"] = "true"
	}
	return m
}

// parseArgs converts command arguments to integers. Any argument that is
// not a non-negative integer makes the whole query absent; malformed
// input is "no answer", not an error.
func parseArgs(args []string) ([]uint64, bool) {
	nums := make([]uint64, len(args))
	for i, a := range args {
		n, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, false
		}
		nums[i] = n
	}
	return nums, true
}

// newCache returns the shared default cache, or builds a dedicated one
// when a non-default size is configured.
func newCache(cfg config.Config) (*prime.Cache, error) {
	if cfg.CacheSize == prime.DefaultCacheSize {
		return prime.Default(), nil
	}
	return prime.New(prime.Size(cfg.CacheSize))
}

// runQuery loads config, parses arguments, runs fn against the cache, and
// emits the result. Unparseable arguments produce an absent result
// without building a cache.
func runQuery(op string, args []string, fn func(c *prime.Cache, nums []uint64) *output.Result) {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		fail(err)
		return
	}

	nums, ok := parseArgs(args)
	var res *output.Result
	if !ok {
		res = output.Absent(op, nil)
	} else {
		cache, err := newCache(cfg)
		if err != nil {
			fail(err)
			return
		}
		res = fn(cache, nums)
	}
	emit(res, cfg)
}

func emit(res *output.Result, cfg config.Config) {
	if err := output.WriteResult(res, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	if cfg.History.Enabled {
		if err := record(res, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: recording history: %v\n", err)
		}
	}
	if !res.Found {
		exitCode = ExitNoResult
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exitCode = ExitRuntimeError
}

func record(res *output.Result, cfg config.Config) error {
	path, err := cfg.HistoryPath()
	if err != nil {
		return err
	}
	s, err := history.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Record(res.Op, joinUints(res.Args), renderResult(res))
}

// renderResult flattens a result to the text stored in history.
func renderResult(res *output.Result) string {
	if !res.Found {
		return "none"
	}
	if res.Values != nil {
		return joinUints(res.Values)
	}
	return strconv.FormatUint(res.Value, 10)
}

func joinUints(nums []uint64) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.FormatUint(n, 10)
	}
	return strings.Join(parts, " ")
}

var checkCmd = &cobra.Command{
	Use:   "check <n>",
	Short: "Test whether n is prime",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runQuery("check", args, func(c *prime.Cache, nums []uint64) *output.Result {
			p, ok := c.IsPrime(nums[0])
			if !ok {
				return output.Absent("check", nums)
			}
			return output.Scalar("check", nums, p)
		})
	},
}

var nextCmd = &cobra.Command{
	Use:   "next <n>",
	Short: "Find the smallest prime greater than n",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runQuery("next", args, func(c *prime.Cache, nums []uint64) *output.Result {
			if flagInclusive {
				return output.Scalar("next", nums, c.NextPrimeOrEqual(nums[0]))
			}
			return output.Scalar("next", nums, c.NextPrime(nums[0]))
		})
	},
}

var previousCmd = &cobra.Command{
	Use:     "previous <n>",
	Aliases: []string{"prev"},
	Short:   "Find the largest prime less than n",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runQuery("previous", args, func(c *prime.Cache, nums []uint64) *output.Result {
			var p uint64
			var ok bool
			if flagInclusive {
				p, ok = c.PreviousPrimeOrEqual(nums[0])
			} else {
				p, ok = c.PreviousPrime(nums[0])
			}
			if !ok {
				return output.Absent("previous", nums)
			}
			return output.Scalar("previous", nums, p)
		})
	},
}

var betweenCmd = &cobra.Command{
	Use:   "between <from> <to>",
	Short: "List all primes in the inclusive range [from, to]",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runQuery("between", args, func(c *prime.Cache, nums []uint64) *output.Result {
			return output.Sequence("between", nums, c.Between(nums[0], nums[1]))
		})
	},
}

var nthCmd = &cobra.Command{
	Use:   "nth <n>",
	Short: "Find the n-th prime (one-based: the 1st prime is 2)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runQuery("nth", args, func(c *prime.Cache, nums []uint64) *output.Result {
			p, ok := c.Nth(nums[0])
			if !ok {
				return output.Absent("nth", nums)
			}
			return output.Scalar("nth", nums, p)
		})
	},
}

var factorCmd = &cobra.Command{
	Use:   "factor <n>",
	Short: "Compute the prime factorization of n",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runQuery("factor", args, func(c *prime.Cache, nums []uint64) *output.Result {
			factors := c.Factors(nums[0])
			if factors == nil {
				return output.Absent("factor", nums)
			}
			return output.Sequence("factor", nums, factors)
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{checkCmd, nextCmd, previousCmd, betweenCmd, nthCmd, factorCmd} {
		addQueryFlags(cmd)
	}
	nextCmd.Flags().BoolVar(&flagInclusive, "inclusive", false, "Accept n itself if it is prime")
	previousCmd.Flags().BoolVar(&flagInclusive, "inclusive", false, "Accept n itself if it is prime")
}
