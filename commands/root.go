package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// ErrUsage reports a missing or unknown command
	ErrUsage = errors.New("usage")
	// ErrSetup reports that configuration or client construction failed before a command ran
	ErrSetup = errors.New("setup failed")
	// ErrCommandFailed reports a store or mail failure when strict exit codes are enabled
	ErrCommandFailed = errors.New("command failed")
)

// Usage is printed for missing or unknown commands
const Usage = `
╔════════════════════════════════════════════════════════════════╗
║      Moderator Verification Code Generator                     ║
╚════════════════════════════════════════════════════════════════╝

Usage:
  moderator-codes <command> [options]

Commands:
  add <email>     Generate a code and send it to the email
  list            List all verification codes
  delete <code>   Delete a specific verification code

Examples:
  moderator-codes add moderator@example.com
  moderator-codes list
  moderator-codes delete ABC12345

Setup:
  Configuration is read from the environment or a .env file in the
  working directory:
    DB_URI, DB_NAME                  MongoDB connection and database
    MAIL_FROM                        sender address
    MAIL_TRANSPORT                   smtp (default) or sendgrid
    SMTP_USERNAME, SMTP_PASSWORD     SMTP account and app password
    SENDGRID_API_KEY                 when MAIL_TRANSPORT=sendgrid
    STRICT_EXIT=true                 exit 1 when a command fails
`

// Session is what a command needs to run
type Session struct {
	Handler    ModeratorCode
	StrictExit bool
	Close      func()
}

// Setup builds a Session. It runs only after the command line has been validated.
type Setup func(ctx context.Context) (*Session, error)

// NewRootCommand wires the add, list and delete commands to setup
func NewRootCommand(setup Setup, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "moderator-codes",
		Short:         "Issue, list and revoke moderator verification codes",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ErrUsage
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(out)
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), Usage)
	})

	run := func(failure string, fn func(ctx context.Context, h ModeratorCode, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := setup(ctx)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrSetup, err)
			}
			if s.Close != nil {
				defer s.Close()
			}
			if s.Handler.Out == nil {
				s.Handler.Out = cmd.OutOrStdout()
			}

			err = fn(ctx, s.Handler, args)
			if err == nil {
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "❌ %s: %v\n", failure, err)
			zap.S().Errorw(failure, "command", cmd.Name(), "error", err)
			if s.StrictExit {
				return fmt.Errorf("%w: %v", ErrCommandFailed, err)
			}
			// the failure is reported but the exit status stays 0 unless STRICT_EXIT is set
			return nil
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "add <email>",
			Short: "Generate a code and send it to the email",
			Args:  cobra.MatchAll(cobra.ExactArgs(1), nonEmptyArg),
			RunE: run("Error", func(ctx context.Context, h ModeratorCode, args []string) error {
				return h.AddHandler(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all verification codes",
			Args:  cobra.NoArgs,
			RunE: run("Error listing codes", func(ctx context.Context, h ModeratorCode, _ []string) error {
				return h.ListHandler(ctx)
			}),
		},
		&cobra.Command{
			Use:   "delete <code>",
			Short: "Delete a specific verification code",
			Args:  cobra.MatchAll(cobra.ExactArgs(1), nonEmptyArg),
			RunE: run("Error deleting code", func(ctx context.Context, h ModeratorCode, args []string) error {
				return h.DeleteHandler(ctx, args[0])
			}),
		},
	)
	return root
}

// nonEmptyArg treats an empty email or code as a missing one
func nonEmptyArg(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("%s requires a non-empty argument", cmd.Name())
	}
	return nil
}

// Execute runs root with args and maps the outcome to a process exit status
func Execute(ctx context.Context, root *cobra.Command, args []string) int {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	out := root.OutOrStdout()

	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrCommandFailed):
		return 1
	case errors.Is(err, ErrSetup):
		fmt.Fprintf(out, "❌ %v\n", err)
		zap.S().Errorw("setup failed", "error", err)
		return 1
	default:
		zap.S().Debugw("invalid command line", "args", args, "error", err)
		fmt.Fprint(out, Usage)
		return 1
	}
}
