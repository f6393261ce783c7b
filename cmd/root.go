// Package cmd implements the proxer command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/Ceeox/proxer-go/color"
	"github.com/Ceeox/proxer-go/config"
	"github.com/Ceeox/proxer-go/constant"
	"github.com/Ceeox/proxer-go/icon"
	"github.com/Ceeox/proxer-go/inline"
	"github.com/Ceeox/proxer-go/key"
	"github.com/Ceeox/proxer-go/log"
	"github.com/Ceeox/proxer-go/style"
	"github.com/Ceeox/proxer-go/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", completeValues(icon.AvailableVariants())))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("format", "F", "", "Output format")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("format", completeValues([]string{inline.FormatPretty, inline.FormatJSON, inline.FormatYAML})))
	lo.Must0(viper.BindPFlag(key.OutputFormat, rootCmd.PersistentFlags().Lookup("format")))

	rootCmd.PersistentFlags().Int("wrap", 0, "Wrap long texts at this width")
	lo.Must0(viper.BindPFlag(key.OutputWrap, rootCmd.PersistentFlags().Lookup("wrap")))

	rootCmd.PersistentFlags().String("transport", "", "HTTP transport")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("transport", completeValues(config.Default[key.NetworkTransport].Values)))
	lo.Must0(viper.BindPFlag(key.NetworkTransport, rootCmd.PersistentFlags().Lookup("transport")))

	rootCmd.PersistentFlags().String("filter", "", "Keep list elements matching this expression, e.g. 'rate_count > 100'")
	rootCmd.PersistentFlags().String("pick", "", "Pick one element of a list: first, last or an index")
	rootCmd.PersistentFlags().String("path", "", "Print only the value at this gjson path")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Write the result to a file instead of stdout")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		notifyVersion(cmd.Context())
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.Proxer,
	Short: "Command line client for the Proxer.me API",
	Long: constant.AsciiArtLogo + "\n\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - "+constant.Notice),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute runs the root command. An interrupt cancels the running request.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}

var exit = os.Exit

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		exit(1)
	}
}

func notifyVersion(ctx context.Context) {
	client, err := httpClient()
	if err != nil {
		log.Warn(err)
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	version.Notify(ctx, client)
}
