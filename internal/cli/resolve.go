package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/JaremyCheng/vue/pkg/diag"
	"github.com/JaremyCheng/vue/pkg/errors"
	"github.com/JaremyCheng/vue/pkg/options"
	"github.com/JaremyCheng/vue/pkg/options/loader"
)

func newResolveCmd() *cobra.Command {
	var basePath string
	var strict bool

	cmd := &cobra.Command{
		Use:   "resolve <path>",
		Short: "Resolve a component definition",
		Long: `Resolve a component definition by folding its extends chain and
mixins into a single option set, then print the result as YAML.

Warnings raised during the merge (invalid shapes, reserved names,
cyclic inheritance) are printed to stderr. With --strict they fail
the command instead.

Examples:
  vuec resolve component.yaml
  vuec resolve component.hcl --base base.yaml
  vuec resolve component.yaml --strict`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := diag.NewSink(diag.WithHandler(func(e *errors.Error) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", e.Message)
			}))
			r := options.NewResolver(options.WithSink(sink))
			l := loader.New(r)

			base := options.ConfigNode{}
			if bp := resolveBasePath(basePath); bp != "" {
				loaded, err := l.Load(bp)
				if err != nil {
					return fmt.Errorf("failed to load base definition: %w", err)
				}
				base = loaded
			}

			resolved, err := l.Resolve(args[0], base)
			if err != nil {
				return err
			}

			if (strict || viper.GetBool(ConfigKeyStrict)) && sink.Count() > 0 {
				return fmt.Errorf("resolution reported %d warning(s) in strict mode", sink.Count())
			}

			out, err := yaml.Marshal(renderNode(resolved))
			if err != nil {
				return fmt.Errorf("failed to render resolved options: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&basePath, "base", "b", "", "Definition file providing base options")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat merge warnings as errors")

	return cmd
}
