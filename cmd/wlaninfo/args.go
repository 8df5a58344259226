package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// normalizeArgs rewrites single-dash long flags such as -action or
// -format=json to their double-dash form so both spellings parse.
// Shorthands (-h), unknown flags, flag values and anything after "--"
// are left untouched.
func normalizeArgs(root *cobra.Command, args []string) []string {
	takesValue := longFlags(root, map[string]bool{})

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || len(arg) < 3 {
			out = append(out, arg)
			continue
		}

		body := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
		name, _, inline := strings.Cut(body, "=")
		needsValue, known := takesValue[name]
		if !known {
			out = append(out, arg)
			continue
		}
		out = append(out, "--"+body)

		// Copy the value verbatim even if it looks like a flag.
		if needsValue && !inline && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

// longFlags records every multi-letter flag in the command tree and
// whether it takes a separate value.
func longFlags(cmd *cobra.Command, into map[string]bool) map[string]bool {
	visit := func(f *pflag.Flag) {
		if len(f.Name) > 1 {
			into[f.Name] = f.NoOptDefVal == ""
		}
	}
	cmd.Flags().VisitAll(visit)
	cmd.PersistentFlags().VisitAll(visit)
	for _, sub := range cmd.Commands() {
		longFlags(sub, into)
	}
	return into
}
