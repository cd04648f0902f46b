package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"prodcheck/internal/modules/verify/domain"
)

var errRejected = errors.New("one or more codes were rejected")

func validateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <code>...",
		Short: "Check code format only",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rejected := false
			for _, code := range args {
				var fe *domain.FormatError
				if err := e.validator.FormatError(code); errors.As(err, &fe) {
					rejected = true
					fmt.Fprintf(out, "%s\tinvalid\t%s\n", code, fe.Reason)
					continue
				}
				fmt.Fprintf(out, "%s\tvalid\n", code)
			}
			if rejected {
				return errRejected
			}
			return nil
		},
	}
}

func checkCmd(e *env) *cobra.Command {
	var withDelay bool
	cmd := &cobra.Command{
		Use:   "check <code>...",
		Short: "Validate and classify codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delay := e.cfg.VerificationDelay
			if !withDelay {
				delay = 0
			}
			verifier := domain.NewVerifier(e.validator, delay)
			out := cmd.OutOrStdout()
			rejected := false
			for _, code := range args {
				if !e.validator.ValidateFormat(code) {
					rejected = true
					fmt.Fprintf(out, "%s\tmalformed\n", code)
					continue
				}
				r, err := verifier.Verify(cmd.Context(), code)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", r.Code, r.Status.Wire())
			}
			if rejected {
				return errRejected
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withDelay, "delay", false, "wait the configured verification delay")
	return cmd
}

func sanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize <input>",
		Short: "Strip non-alphanumerics and uppercase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), domain.Sanitize(args[0]))
			return nil
		},
	}
}

func listsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Print the loaded code lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fresh (%d): %s\n", len(e.lists.Fresh), strings.Join(e.lists.Fresh, ", "))
			fmt.Fprintf(out, "expired (%d): %s\n", len(e.lists.Expired), strings.Join(e.lists.Expired, ", "))
			return nil
		},
	}
}
