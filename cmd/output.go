package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/color"
	"github.com/Ceeox/proxer-go/filesystem"
	"github.com/Ceeox/proxer-go/icon"
	"github.com/Ceeox/proxer-go/inline"
	"github.com/Ceeox/proxer-go/key"
	"github.com/Ceeox/proxer-go/open"
	"github.com/Ceeox/proxer-go/style"
	"github.com/Ceeox/proxer-go/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// outputOptions collects the output flags shared by every endpoint command.
func outputOptions(cmd *cobra.Command, out io.Writer) (*inline.Options, error) {
	options := &inline.Options{
		Out:    out,
		Format: viper.GetString(key.OutputFormat),
		Wrap:   viper.GetInt(key.OutputWrap),
	}

	if options.Wrap == 0 {
		options.Wrap = util.TerminalWidth(80)
	}

	if filter := lo.Must(cmd.Flags().GetString("filter")); filter != "" {
		options.Filter = mo.Some(filter)
	}

	if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
		picker, err := inline.ParsePicker(pick)
		if err != nil {
			return nil, err
		}
		options.Pick = mo.Some(picker)
	}

	if path := lo.Must(cmd.Flags().GetString("path")); path != "" {
		options.Path = mo.Some(path)
	}

	return options, nil
}

// render prints value to the command's output, or to the --output file.
func render(cmd *cobra.Command, value any) {
	out := cmd.OutOrStdout()

	if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
		file, err := filesystem.API().Create(path)
		handleErr(err)
		defer file.Close()
		out = file
	}

	options, err := outputOptions(cmd, out)
	handleErr(err)
	handleErr(inline.Run(value, options))
}

func done(cmd *cobra.Command, format string, args ...any) {
	cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

// openLink starts the browser with link when --open was given and reports whether it did.
func openLink(cmd *cobra.Command, link string) bool {
	if !lo.Must(cmd.Flags().GetBool("open")) {
		return false
	}

	launch(cmd, link)
	return true
}

func launch(cmd *cobra.Command, link string) {
	handleErr(open.Start(link))
	done(cmd, "opened %s", style.Fg(color.Cyan)(link))
}

// runner performs one request. Its result is rendered by the command.
type runner func(ctx context.Context, s *api.Session, cmd *cobra.Command, args []string) (any, error)

// endpoint builds a command that runs run against the configured session and renders the result.
func endpoint(use, short string, args cobra.PositionalArgs, run runner) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		Run: func(cmd *cobra.Command, args []string) {
			value, err := run(cmd.Context(), session(), cmd, args)
			handleErr(err)
			render(cmd, value)
		},
	}
}

// action builds a command for an endpoint without a payload. It prints message on success.
func action(use, short, message string, args cobra.PositionalArgs, run func(ctx context.Context, s *api.Session, cmd *cobra.Command, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		Run: func(cmd *cobra.Command, args []string) {
			handleErr(run(cmd.Context(), session(), cmd, args))
			done(cmd, "%s", message)
		},
	}
}

func byID[T any](use, short string, fn func(context.Context, *api.Session, uint64) (T, error)) *cobra.Command {
	return endpoint(use+" <id>", short, cobra.ExactArgs(1), func(ctx context.Context, s *api.Session, _ *cobra.Command, args []string) (any, error) {
		return fn(ctx, s, uintArg(args, 0, "id"))
	})
}

func noArgs[T any](use, short string, fn func(context.Context, *api.Session) (T, error)) *cobra.Command {
	return endpoint(use, short, cobra.NoArgs, func(ctx context.Context, s *api.Session, _ *cobra.Command, _ []string) (any, error) {
		return fn(ctx, s)
	})
}
