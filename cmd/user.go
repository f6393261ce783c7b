package cmd

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/auth"
	"github.com/Ceeox/proxer-go/color"
	"github.com/Ceeox/proxer-go/enum"
	"github.com/Ceeox/proxer-go/style"
	"github.com/Ceeox/proxer-go/user"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(userCmd)

	userCmd.AddCommand(userLoginCmd)
	userLoginCmd.Flags().StringP("username", "u", "", "Proxer username")
	userLoginCmd.Flags().String("password", "", "Password. Prompted for when omitted")

	userCmd.AddCommand(userLogoutCmd)

	userInfo := userEndpoint("info", "Show the profile of a user", func(ctx context.Context, u *user.User, s *api.Session, target mo.Option[user.Target], _ *cobra.Command) (any, error) {
		if t, ok := target.Get(); ok || u == nil {
			return user.GetInfo(ctx, s, t)
		}
		return u.Info(ctx)
	})

	topTen := userEndpoint("topten", "List the favourites of a user", func(ctx context.Context, u *user.User, s *api.Session, target mo.Option[user.Target], cmd *cobra.Command) (any, error) {
		category := optEnum(cmd, "category", enum.ParseCategory, enum.CategoryValues())
		if t, ok := target.Get(); ok || u == nil {
			return user.GetTopTen(ctx, s, t, category)
		}
		return u.TopTen(ctx, category)
	})
	enumFlag(topTen, "category", "Category to list", enum.CategoryValues())

	list := userEndpoint("list", "List the entries on the lists of a user", func(ctx context.Context, u *user.User, s *api.Session, target mo.Option[user.Target], cmd *cobra.Command) (any, error) {
		opts := user.ListOptions{
			Category:    optEnum(cmd, "category", enum.ParseCategory, enum.CategoryValues()),
			Page:        optUint(cmd, "page"),
			Limit:       optUint(cmd, "limit"),
			Search:      optString(cmd, "search"),
			SearchStart: optString(cmd, "search-start"),
			Sort:        optEnum(cmd, "sort", enum.ParseSort, enum.SortValues()),
		}
		if t, ok := target.Get(); ok || u == nil {
			return user.GetList(ctx, s, t, opts)
		}
		return u.List(ctx, opts)
	})
	enumFlag(list, "category", "Category to list", enum.CategoryValues())
	list.Flags().String("search", "", "Only names containing this")
	list.Flags().String("search-start", "", "Only names starting with this")
	enumFlag(list, "sort", "Sort order", enum.SortValues())
	pageFlags(list)

	comments := userEndpoint("comments", "List the reviews of a user", func(ctx context.Context, u *user.User, s *api.Session, target mo.Option[user.Target], cmd *cobra.Command) (any, error) {
		opts := user.CommentOptions{
			Category: optEnum(cmd, "category", enum.ParseCategory, enum.CategoryValues()),
			Page:     optUint(cmd, "page"),
			Limit:    optUint(cmd, "limit"),
			Length:   optUint(cmd, "length"),
		}
		if t, ok := target.Get(); ok || u == nil {
			return user.GetComments(ctx, s, t, opts)
		}
		return u.Comments(ctx, opts)
	})
	enumFlag(comments, "category", "Category to list", enum.CategoryValues())
	comments.Flags().Uint64("length", 0, "Minimum length of a review in characters")
	pageFlags(comments)

	userCmd.AddCommand(userInfo, topTen, list, comments)
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Login, logout and user profiles",
}

var userLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and keep the login in the system keyring",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		username := lo.Must(cmd.Flags().GetString("username"))
		if username == "" {
			handleErr(survey.AskOne(&survey.Input{Message: "Username"}, &username, survey.WithValidator(survey.Required)))
		}

		password := lo.Must(cmd.Flags().GetString("password"))
		if password == "" {
			handleErr(survey.AskOne(&survey.Password{Message: "Password"}, &password, survey.WithValidator(survey.Required)))
		}

		s, err := newSession()
		handleErr(err)

		u, err := user.Login(cmd.Context(), s, username, password)
		handleErr(err)
		handleErr(auth.SaveCredentials(u.Credentials()))

		done(cmd, "logged in as %s %s", style.Fg(color.Purple)(username), style.Faint("(uid "+api.Render(u.UID())+")"))
	},
}

var userLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored login",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := newSession()
		handleErr(err)

		u, err := storedUser(s)
		handleErr(err)

		// the local login is dropped even when the server rejects the logout
		logoutErr := u.Logout(cmd.Context())
		handleErr(auth.DeleteCredentials())
		handleErr(logoutErr)

		done(cmd, "logged out")
	},
}

type userRunner func(ctx context.Context, u *user.User, s *api.Session, target mo.Option[user.Target], cmd *cobra.Command) (any, error)

// userEndpoint builds a profile command. The profile is chosen with --uid or --name and defaults
// to the stored login. u is nil when nobody is logged in.
func userEndpoint(use, short string, run userRunner) *cobra.Command {
	cmd := endpoint(use, short, cobra.NoArgs, func(ctx context.Context, s *api.Session, cmd *cobra.Command, _ []string) (any, error) {
		target := mo.None[user.Target]()
		switch {
		case cmd.Flags().Changed("uid"):
			target = mo.Some(user.ByUID(lo.Must(cmd.Flags().GetUint64("uid"))))
		case cmd.Flags().Changed("name"):
			target = mo.Some(user.ByName(lo.Must(cmd.Flags().GetString("name"))))
		}

		u, err := storedUser(s)
		if err != nil && !errors.Is(err, errNotLoggedIn) {
			return nil, err
		}

		return run(ctx, u, s, target, cmd)
	})

	cmd.Flags().Uint64("uid", 0, "Id of the user")
	cmd.Flags().String("name", "", "Name of the user")
	cmd.MarkFlagsMutuallyExclusive("uid", "name")

	return cmd
}
