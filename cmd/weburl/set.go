package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jongio/weburl/logutil"
	"github.com/jongio/weburl/weburl"
	"github.com/spf13/cobra"
)

var setters = map[string]func(*weburl.URL, string) error{
	"href":     (*weburl.URL).SetHref,
	"protocol": (*weburl.URL).SetProtocol,
	"username": (*weburl.URL).SetUsername,
	"password": (*weburl.URL).SetPassword,
	"host":     (*weburl.URL).SetHost,
	"hostname": (*weburl.URL).SetHostname,
	"port":     (*weburl.URL).SetPort,
	"pathname": (*weburl.URL).SetPathname,
	"search":   (*weburl.URL).SetSearch,
	"hash":     (*weburl.URL).SetHash,
}

func componentNames() []string {
	names := make([]string, 0, len(setters))
	for name := range setters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <url> <component> <value>",
		Short: "Change one component of a URL",
		Long: "Change one component of a URL using the URL API setter rules.\n\n" +
			"Components: " + strings.Join(componentNames(), ", "),
		Example: `  weburl set https://example.com/a host other.org:8443
  weburl set https://example.com/a search "q=a b"`,
		Args: cobra.ExactArgs(3),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return componentNames(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			set, ok := setters[strings.ToLower(args[1])]
			if !ok {
				return fmt.Errorf("unknown component %q (valid: %s)", args[1], strings.Join(componentNames(), ", "))
			}

			u, err := weburl.Parse(args[0], nil)
			if err != nil {
				return err
			}
			before := u.Href()
			if err := set(u, args[2]); err != nil {
				return fmt.Errorf("set %s: %w", args[1], err)
			}
			if u.Href() == before {
				logutil.Debug("setter left URL unchanged", "component", args[1], "value", args[2])
			}
			return printURL(u)
		},
	}
	return cmd
}
