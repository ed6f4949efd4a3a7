package cmd

import "strings"

// GlobalFlag names an option that belongs in front of the subcommand, with
// the number of value tokens it consumes.
type GlobalFlag struct {
	Name  string
	NArgs int
}

// ResolveArgs injects defaultCmd into args when no known subcommand token is
// present, regrouping recognized global flags in front of it so the strict
// parser still associates them with the root command. Args that already name
// a subcommand are returned unchanged.
//
// A global flag given as a bare name consumes itself plus its declared token
// count; the name=value form consumes a single token. Arity sufficiency is
// not checked here, short argument vectors surface as parse errors later.
func ResolveArgs(args []string, globals []GlobalFlag, subcommands map[string]bool, defaultCmd string) []string {
	for _, a := range args {
		if subcommands[a] {
			return args
		}
	}

	arity := make(map[string]int, len(globals))
	for _, g := range globals {
		arity[g.Name] = g.NArgs
	}

	var globalArgs, cmdArgs []string
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if n, ok := arity[tok]; ok {
			globalArgs = append(globalArgs, tok)
			for ; n > 0 && i+1 < len(args); n-- {
				i++
				globalArgs = append(globalArgs, args[i])
			}
			continue
		}
		if eq := strings.Index(tok, "="); eq > 0 {
			if _, ok := arity[tok[:eq]]; ok {
				globalArgs = append(globalArgs, tok)
				continue
			}
		}
		cmdArgs = append(cmdArgs, tok)
	}

	resolved := append(globalArgs, defaultCmd)
	return append(resolved, cmdArgs...)
}
