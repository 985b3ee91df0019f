package main

import (
	"github.com/integrii/flaggy"

	"github.com/rfjakob/xtendr"
	"github.com/rfjakob/xtendr/internal/exitcodes"
)

// noDefault marks "-default" as not passed. It cannot appear in argv.
const noDefault = "\x00"

// argContainer stores the parsed CLI options and arguments
type argContainer struct {
	debug, quiet, version bool
	// cmd is the subcommand: get, set, list, dump, rm, rmall
	cmd                                             string
	nofollow, create, replace, hex, json, recursive bool
	def, name, value, path                          string
	// -exclude, -exclude-wildcard, -exclude-from can be passed multiple times
	exclude, excludeWildcard, excludeFrom []string
}

// flags converts the command line switches to xtendr.Flags.
func (args *argContainer) flags() (f xtendr.Flags) {
	if args.nofollow {
		f |= xtendr.NoFollow
	}
	if args.create {
		f |= xtendr.Create
	}
	if args.replace {
		f |= xtendr.Replace
	}
	return f
}

// hasDefault reports whether "-default" was passed.
func (args *argContainer) hasDefault() bool {
	return args.def != noDefault
}

// parseCliOpts - parse command line options (i.e. arguments that start with "-")
func parseCliOpts(osArgs []string) (args argContainer, err error) {
	args.def = noDefault

	p := flaggy.NewParser(myName)
	p.Description = "Get, set, list and remove extended attributes"
	p.ShowVersionWithVersionFlag = false
	p.ShowHelpOnUnexpected = false

	p.Bool(&args.debug, "d", "debug", "Enable debug output")
	p.Bool(&args.quiet, "q", "quiet", "Silence informational messages")
	p.Bool(&args.version, "version", "", "Print version and exit")

	nofollow := func(sc *flaggy.Subcommand) {
		sc.Bool(&args.nofollow, "n", "nofollow", "Act on symlinks themselves instead of their targets")
	}
	walk := func(sc *flaggy.Subcommand) {
		sc.Bool(&args.recursive, "r", "recursive", "Descend into directories")
		sc.StringSlice(&args.exclude, "e", "exclude", "Exclude relative path")
		sc.StringSlice(&args.excludeWildcard, "ew", "exclude-wildcard", "Exclude path, supporting wildcards")
		sc.StringSlice(&args.excludeFrom, "exclude-from", "", "File from which to read exclusion patterns (with -exclude-wildcard syntax)")
	}

	get := flaggy.NewSubcommand("get")
	get.Description = "Print the value of attribute NAME"
	get.AddPositionalValue(&args.name, "NAME", 1, true, "attribute name")
	get.AddPositionalValue(&args.path, "PATH", 2, true, "file")
	nofollow(get)
	get.String(&args.def, "default", "", "Print this instead of failing if the attribute does not exist")
	get.Bool(&args.hex, "x", "hex", "Print the value hex-encoded")

	set := flaggy.NewSubcommand("set")
	set.Description = "Set attribute NAME to VALUE"
	set.AddPositionalValue(&args.name, "NAME", 1, true, "attribute name")
	set.AddPositionalValue(&args.value, "VALUE", 2, true, "attribute value")
	set.AddPositionalValue(&args.path, "PATH", 3, true, "file")
	nofollow(set)
	set.Bool(&args.create, "create", "", "Fail if the attribute already exists")
	set.Bool(&args.replace, "replace", "", "Fail if the attribute does not exist")

	list := flaggy.NewSubcommand("list")
	list.Description = "Print all attribute names"
	list.AddPositionalValue(&args.path, "PATH", 1, true, "file")
	nofollow(list)
	list.Bool(&args.json, "json", "", "Print as JSON")

	dump := flaggy.NewSubcommand("dump")
	dump.Description = "Print all attributes with their values"
	dump.AddPositionalValue(&args.path, "PATH", 1, true, "file or directory")
	nofollow(dump)
	walk(dump)
	dump.Bool(&args.json, "json", "", "Print as JSON")
	dump.Bool(&args.hex, "x", "hex", "Print values hex-encoded")

	rm := flaggy.NewSubcommand("rm")
	rm.Description = "Remove attribute NAME"
	rm.AddPositionalValue(&args.name, "NAME", 1, true, "attribute name")
	rm.AddPositionalValue(&args.path, "PATH", 2, true, "file")
	nofollow(rm)

	rmall := flaggy.NewSubcommand("rmall")
	rmall.Description = "Remove all attributes"
	rmall.AddPositionalValue(&args.path, "PATH", 1, true, "file or directory")
	nofollow(rmall)
	walk(rmall)

	subcommands := []*flaggy.Subcommand{get, set, list, dump, rm, rmall}
	for _, sc := range subcommands {
		p.AttachSubcommand(sc, 1)
	}

	err = p.ParseArgs(osArgs[1:])
	if err != nil {
		return args, exitcodes.NewErr(err.Error(), exitcodes.Usage)
	}
	if args.version {
		return args, nil
	}
	for _, sc := range subcommands {
		if sc.Used {
			args.cmd = sc.Name
		}
	}
	if args.cmd == "" {
		return args, exitcodes.NewErr("missing command, run with -h for help", exitcodes.Usage)
	}
	if args.create && args.replace {
		return args, exitcodes.NewErr("-create and -replace are mutually exclusive", exitcodes.Usage)
	}
	if args.json && args.hex {
		return args, exitcodes.NewErr("-json and -hex are mutually exclusive", exitcodes.Usage)
	}
	return args, nil
}
