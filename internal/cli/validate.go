package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JaremyCheng/vue/pkg/diag"
	"github.com/JaremyCheng/vue/pkg/errors"
	"github.com/JaremyCheng/vue/pkg/options"
	"github.com/JaremyCheng/vue/pkg/options/loader"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate a component definition",
		Long: `Validate a component definition without printing the resolved
option set. The definition is loaded, normalized, and fully resolved;
any warning raised along the way fails the command.

Examples:
  vuec validate component.yaml
  vuec validate component.hcl`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := diag.NewSink(diag.WithHandler(func(*errors.Error) {}))
			r := options.NewResolver(options.WithSink(sink))
			l := loader.New(r)

			if _, err := l.Resolve(args[0], nil); err != nil {
				return formatDefinitionError(err)
			}
			if sink.Count() > 0 {
				return formatDiagnostics(sink.Records())
			}

			fmt.Println("Component definition is valid!")
			return nil
		},
	}

	return cmd
}

// formatDefinitionError extracts and displays definition error details
func formatDefinitionError(err error) error {
	var defErr *errors.Error
	if e, ok := err.(*errors.Error); ok {
		defErr = e
	} else {
		// Check wrapped errors
		unwrapped := err
		for unwrapped != nil {
			if e, ok := unwrapped.(*errors.Error); ok {
				defErr = e
				break
			}
			if u, ok := unwrapped.(interface{ Unwrap() error }); ok {
				unwrapped = u.Unwrap()
			} else {
				break
			}
		}
	}

	if defErr != nil {
		if file, ok := defErr.Details["file"].(string); ok {
			return fmt.Errorf("validation failed in %s: %s", file, defErr.Message)
		}
		return fmt.Errorf("validation failed: %s", defErr.Message)
	}

	return fmt.Errorf("validation failed: %w", err)
}

func formatDiagnostics(records []*errors.Error) error {
	var sb strings.Builder
	sb.WriteString("validation failed\n")
	sb.WriteString("\nWarnings:\n")
	for _, e := range records {
		sb.WriteString(fmt.Sprintf("  - [%s] %s\n", e.Code, e.Message))
	}
	return fmt.Errorf("%s", sb.String())
}
