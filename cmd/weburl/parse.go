package main

import (
	"fmt"
	"strconv"

	"github.com/jongio/weburl/cliout"
	"github.com/jongio/weburl/weburl"
	"github.com/spf13/cobra"
)

type parseOptions struct {
	base     string
	encoding string
	strict   bool
}

func newParseCommand() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <url>",
		Short: "Parse a URL and print its components",
		Example: `  weburl parse "HTTP://Example.COM:80/a/../b"
  weburl parse ../img.png --base https://example.com/docs/page
  weburl parse "http://example.com/?q=café" --encoding windows-1252 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := opts.parse(args[0])
			if err != nil {
				return err
			}
			if opts.strict && len(u.ValidationErrors()) > 0 {
				_ = printURL(u)
				return fmt.Errorf("%d validation error(s)", len(u.ValidationErrors()))
			}
			return printURL(u)
		},
	}

	cmd.Flags().StringVarP(&opts.base, "base", "b", "", "Base URL to resolve against")
	cmd.Flags().StringVarP(&opts.encoding, "encoding", "e", "", "Query encoding label for special URLs (default utf-8)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when the URL has validation errors")
	return cmd
}

func (o *parseOptions) parse(input string) (*weburl.URL, error) {
	var parseOpts weburl.Options
	if o.base != "" {
		base, err := weburl.Parse(o.base, nil)
		if err != nil {
			return nil, fmt.Errorf("base: %w", err)
		}
		parseOpts.Base = base
	}
	if o.encoding != "" {
		enc, err := weburl.EncodingFromLabel(o.encoding)
		if err != nil {
			return nil, fmt.Errorf("encoding: %w", err)
		}
		parseOpts.Encoding = enc
	}
	return weburl.ParseWithOptions(input, parseOpts)
}

// printURL prints the URL components in the selected output format.
func printURL(u *weburl.URL) error {
	return cliout.Print(u.Components(), func() {
		cliout.Header(u.Href())
		cliout.Label("protocol", u.Protocol())
		if u.IncludesCredentials() {
			cliout.Label("username", u.Username())
			cliout.Label("password", u.Password())
		}
		if h, ok := u.Host(); ok {
			cliout.Label("host", u.HostPort()+" "+cliout.Muted("(%s)", h.Kind()))
		}
		cliout.Label("pathname", u.Pathname())
		if q, ok := u.Query(); ok {
			cliout.Label("search", "?"+q)
		}
		if f, ok := u.Fragment(); ok {
			cliout.Label("hash", "#"+f)
		}
		cliout.Label("origin", cliout.Emphasize("%s", u.Origin()))

		errs := u.ValidationErrors()
		if len(errs) == 0 {
			return
		}
		fmt.Println()
		cliout.Warning("%d validation error(s)", len(errs))
		rows := make([]cliout.TableRow, 0, len(errs))
		for _, v := range errs {
			rows = append(rows, cliout.TableRow{"Code": string(v.Code), "Offset": strconv.Itoa(v.Offset)})
		}
		cliout.Table([]string{"Code", "Offset"}, rows)
	})
}
