package main

import (
	"github.com/jongio/weburl/cliout"
	"github.com/jongio/weburl/urlutil"
	"github.com/spf13/cobra"
)

type checkResult struct {
	URL   string `json:"url" yaml:"url"`
	Valid bool   `json:"valid" yaml:"valid"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newCheckCommand() *cobra.Command {
	var httpsOnly bool

	cmd := &cobra.Command{
		Use:   "check <url>...",
		Short: "Validate HTTP(S) URLs",
		Long: `Validate that each argument is an absolute http or https URL with a host.
With --https-only, http is only accepted for loopback hosts.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validate := urlutil.Validate
			if httpsOnly {
				validate = urlutil.ValidateHTTPSOnly
			}

			results := make([]checkResult, 0, len(args))
			var firstErr error
			for _, arg := range args {
				res := checkResult{URL: arg, Valid: true}
				if err := validate(arg); err != nil {
					res.Valid, res.Error = false, err.Error()
					if firstErr == nil {
						firstErr = err
					}
				}
				results = append(results, res)
			}

			if err := cliout.Print(results, func() {
				for _, r := range results {
					if r.Valid {
						cliout.Success("%s", r.URL)
					} else {
						cliout.Error("%s: %s", r.URL, r.Error)
					}
				}
			}); err != nil {
				return err
			}
			return firstErr
		},
	}

	cmd.Flags().BoolVar(&httpsOnly, "https-only", false, "Require https (http allowed for loopback hosts)")
	return cmd
}
