package cmd

import (
	"fmt"
	"sort"
	"strconv"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func completeValues(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if toComplete == "" {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
		return fuzzy.FindFold(toComplete, values), cobra.ShellCompDirectiveNoFileComp
	}
}

// closest returns the value most similar to s. Fuzzy matches win over edit distance.
func closest(s string, values []string) string {
	if len(values) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(s, values)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	return lo.MinBy(values, func(a, b string) bool {
		return levenshtein.Distance(s, a) < levenshtein.Distance(s, b)
	})
}

func errUnknownValue(kind, s string, values []string) error {
	return fmt.Errorf("unknown %s %q, did you mean %q?", kind, s, closest(s, values))
}

// enumFlag registers a string flag restricted to values.
func enumFlag(cmd *cobra.Command, name, usage string, values []string) {
	cmd.Flags().String(name, "", usage)
	lo.Must0(cmd.RegisterFlagCompletionFunc(name, completeValues(values)))
}

func parseEnum[T any](name, s string, parse func(string) (T, error), values []string) (T, error) {
	v, err := parse(s)
	if err != nil {
		var zero T
		return zero, errUnknownValue(name, s, values)
	}
	return v, nil
}

func optEnum[T any](cmd *cobra.Command, name string, parse func(string) (T, error), values []string) mo.Option[T] {
	if !cmd.Flags().Changed(name) {
		return mo.None[T]()
	}

	v, err := parseEnum(name, lo.Must(cmd.Flags().GetString(name)), parse, values)
	handleErr(err)
	return mo.Some(v)
}

func optString(cmd *cobra.Command, name string) mo.Option[string] {
	if !cmd.Flags().Changed(name) {
		return mo.None[string]()
	}
	return mo.Some(lo.Must(cmd.Flags().GetString(name)))
}

func optUint(cmd *cobra.Command, name string) mo.Option[uint64] {
	if !cmd.Flags().Changed(name) {
		return mo.None[uint64]()
	}
	return mo.Some(lo.Must(cmd.Flags().GetUint64(name)))
}

func optInt8(cmd *cobra.Command, name string) mo.Option[int8] {
	if !cmd.Flags().Changed(name) {
		return mo.None[int8]()
	}
	return mo.Some(lo.Must(cmd.Flags().GetInt8(name)))
}

func optBool(cmd *cobra.Command, name string) mo.Option[bool] {
	if !cmd.Flags().Changed(name) {
		return mo.None[bool]()
	}
	return mo.Some(lo.Must(cmd.Flags().GetBool(name)))
}

func pageFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64P("page", "p", 0, "Page to load, starting at 0")
	cmd.Flags().Uint64P("limit", "l", 0, "Entries per page")
}

func uintArg(args []string, i int, name string) uint64 {
	v, err := strconv.ParseUint(args[i], 10, 64)
	if err != nil {
		handleErr(fmt.Errorf("invalid %s %q: expected a number", name, args[i]))
	}
	return v
}
