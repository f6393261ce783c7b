package cmd

import (
	"fmt"
	"strconv"

	"github.com/Ceeox/proxer-go/api"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(codesCmd)
}

type codeDescription struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

var codesCmd = &cobra.Command{
	Use:   "codes [code]...",
	Short: "Describe API error codes",
	Long:  "Describe API error codes. Without arguments every known code is listed.",
	Run: func(cmd *cobra.Command, args []string) {
		codes := api.Codes()

		if len(args) > 0 {
			codes = make([]int, len(args))
			for i, arg := range args {
				code, err := strconv.Atoi(arg)
				if err != nil {
					handleErr(fmt.Errorf("invalid code %q", arg))
				}
				codes[i] = code
			}
		}

		render(cmd, lo.Map(codes, func(code int, _ int) codeDescription {
			return codeDescription{Code: code, Description: api.Describe(code)}
		}))
	},
}
