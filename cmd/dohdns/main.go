// Command dohdns resolves DNS records over HTTPS from the command line.
//
//	dohdns example.com mx --sort-mx
//	dohdns --server https://dns.google/resolve --timeout 2s example.com aaaa
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/dohdns/dohdns"
)

var (
	rootCmd = &cobra.Command{
		Use:   "dohdns <domain> [type]",
		Short: "Resolve DNS records using DNS over HTTPS (JSON API)",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  run,
	}

	serverURLs []string
	timeout    time.Duration
	sortMX     bool
	verbose    bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringArrayVar(&serverURLs, "server", nil,
		"DoH endpoint to query; repeat for failover order (default: Google, then Cloudflare)")
	flags.DurationVar(&timeout, "timeout", 3*time.Second, "per-server query timeout")
	flags.BoolVar(&sortMX, "sort-mx", false, "sort MX answers by priority and strip it from the data")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log failed server attempts")
}

func run(cmd *cobra.Command, args []string) error {
	domain := args[0]
	rtype := "a"
	if len(args) == 2 {
		rtype = args[1]
	}

	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

	opts := []dohdns.Option{dohdns.WithLogger(slogLogger{logger})}
	if len(serverURLs) > 0 {
		servers := make([]dohdns.Server, 0, len(serverURLs))
		for _, u := range serverURLs {
			servers = append(servers, dohdns.NewServer(u, timeout))
		}
		opts = append(opts, dohdns.WithServers(servers...))
	}

	dns, err := dohdns.New(opts...)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var answers []dohdns.DnsAnswer
	if sortMX {
		answers, err = dns.ResolveMXSorted(ctx, domain)
	} else {
		answers, err = dns.ResolveType(ctx, domain, rtype)
	}
	if err != nil {
		return err
	}

	if len(answers) == 0 {
		fmt.Println("No entries found.")
		return nil
	}
	for _, a := range answers {
		fmt.Printf("name: %s, type: %s, TTL: %d, data: %s\n",
			a.Name, dohdns.TypeToName(a.Type), a.TTL, a.Data)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
