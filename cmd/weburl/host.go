package main

import (
	"github.com/jongio/weburl/cliout"
	"github.com/jongio/weburl/host"
	"github.com/spf13/cobra"
)

type hostResult struct {
	Input    string   `json:"input" yaml:"input"`
	Kind     string   `json:"kind" yaml:"kind"`
	Host     string   `json:"host" yaml:"host"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func newHostCommand() *cobra.Command {
	var opaque bool

	cmd := &cobra.Command{
		Use:   "host <input>",
		Short: "Parse a host on its own",
		Example: `  weburl host 0x7f.1
  weburl host "[0:0::1]"
  weburl host --opaque "Ex%41mple"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := hostResult{Input: args[0]}
			p := host.Parser{Report: func(code string) {
				res.Warnings = append(res.Warnings, code)
			}}

			h, err := p.Parse(args[0], !opaque)
			if err != nil {
				return err
			}
			res.Kind, res.Host = h.Kind().String(), h.String()

			return cliout.Print(res, func() {
				cliout.Success("%s", res.Host)
				cliout.Label("kind", res.Kind)
				for _, w := range res.Warnings {
					cliout.Bullet("%s", w)
				}
			})
		},
	}

	cmd.Flags().BoolVar(&opaque, "opaque", false, "Parse as the host of a non-special URL")
	return cmd
}
