package translate

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/doeshing/cmdx/internal/domain"
)

// packageCommand is a parsed package-manager invocation.
type packageCommand struct {
	sudo     bool
	manager  domain.PackageManager
	op       domain.Operation
	flags    []string
	packages []string
	warnings []string
}

// detectVerb maps an apt, yum, dnf, zypper or apk style verb.
func detectVerb(pm domain.PackageManager, verb string) (domain.Operation, bool) {
	switch pm {
	case domain.PMApt:
		switch verb {
		case "install":
			return domain.OpInstall, true
		case "remove", "purge":
			return domain.OpRemove, true
		case "update":
			return domain.OpUpdate, true
		case "upgrade", "full-upgrade", "dist-upgrade", "safe-upgrade":
			return domain.OpUpgrade, true
		case "search":
			return domain.OpSearch, true
		case "show", "showpkg":
			return domain.OpInfo, true
		case "list":
			return domain.OpList, true
		case "clean", "autoclean":
			return domain.OpClean, true
		case "autoremove":
			return domain.OpAutoRemove, true
		}
	case domain.PMYum, domain.PMDnf:
		switch verb {
		case "install", "in":
			return domain.OpInstall, true
		case "remove", "erase", "rm":
			return domain.OpRemove, true
		case "check-update", "makecache":
			return domain.OpUpdate, true
		case "update", "upgrade", "up", "distro-sync":
			return domain.OpUpgrade, true
		case "search", "se":
			return domain.OpSearch, true
		case "info":
			return domain.OpInfo, true
		case "list", "ls":
			return domain.OpList, true
		case "clean":
			return domain.OpClean, true
		case "autoremove":
			return domain.OpAutoRemove, true
		}
	case domain.PMZypper:
		switch verb {
		case "install", "in":
			return domain.OpInstall, true
		case "remove", "rm":
			return domain.OpRemove, true
		case "refresh", "ref":
			return domain.OpUpdate, true
		case "update", "up", "dist-upgrade", "dup":
			return domain.OpUpgrade, true
		case "search", "se":
			return domain.OpSearch, true
		case "info", "if":
			return domain.OpInfo, true
		case "packages", "pa":
			return domain.OpList, true
		case "clean", "cc":
			return domain.OpClean, true
		}
	case domain.PMApk:
		switch verb {
		case "add":
			return domain.OpInstall, true
		case "del":
			return domain.OpRemove, true
		case "update":
			return domain.OpUpdate, true
		case "upgrade":
			return domain.OpUpgrade, true
		case "search":
			return domain.OpSearch, true
		case "info":
			return domain.OpInfo, true
		case "list":
			return domain.OpList, true
		case "cache":
			return domain.OpClean, true
		}
	}
	return "", false
}

// splitFlagsAndWords separates dash tokens from bare words.
func splitFlagsAndWords(args []string) (flagTokens, words []string) {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && arg != "-" {
			flagTokens = append(flagTokens, arg)
		} else {
			words = append(words, arg)
		}
	}
	return flagTokens, words
}

// removeFirst drops the first occurrence of v.
func removeFirst(args []string, v string) []string {
	if i := slices.Index(args, v); i >= 0 {
		return slices.Delete(slices.Clone(args), i, i+1)
	}
	return args
}

func parseVerbStyle(pm domain.PackageManager, args []string) (packageCommand, error) {
	flagTokens, words := splitFlagsAndWords(args)
	if len(words) == 0 {
		return packageCommand{}, errMissingOperation
	}
	op, ok := detectVerb(pm, words[0])
	if !ok {
		return packageCommand{}, &domain.UnsupportedOperationError{Manager: pm, Operation: words[0]}
	}
	words = words[1:]
	switch {
	case pm == domain.PMApk && op == domain.OpClean && len(words) > 0 && words[0] == "clean":
		words = words[1:]
	case (pm == domain.PMYum || pm == domain.PMDnf) && op == domain.OpClean && len(words) > 0 && words[0] == "all":
		words = words[1:]
	case (pm == domain.PMYum || pm == domain.PMDnf) && op == domain.OpList && len(words) > 0 && words[0] == "installed":
		words = words[1:]
	case pm == domain.PMApt && op == domain.OpList:
		flagTokens = removeFirst(flagTokens, "--installed")
	case pm == domain.PMApk && op == domain.OpList:
		flagTokens = removeFirst(flagTokens, "--installed")
	}
	return packageCommand{manager: pm, op: op, flags: flagTokens, packages: words}, nil
}

// parsePacman reads the operation from the leading -S/-R/-Q switch and its
// modifier letters.
func parsePacman(args []string) (packageCommand, error) {
	cmd := packageCommand{manager: domain.PMPacman}
	opIndex := -1
	for i, arg := range args {
		if len(arg) >= 2 && arg[0] == '-' && arg[1] != '-' && strings.ContainsAny(arg[1:2], "SRQU") {
			opIndex = i
			break
		}
	}
	if opIndex < 0 {
		return packageCommand{}, errMissingOperation
	}
	opSwitch := args[opIndex]
	rest := append(slices.Clone(args[:opIndex]), args[opIndex+1:]...)
	cmd.flags, cmd.packages = splitFlagsAndWords(rest)

	letter, mods := opSwitch[1], opSwitch[2:]
	has := func(c string) bool { return strings.Contains(mods, c) }
	var consumed string
	switch letter {
	case 'S':
		switch {
		case has("s"):
			cmd.op, consumed = domain.OpSearch, "s"
		case has("i"):
			cmd.op, consumed = domain.OpInfo, "i"
		case has("c"):
			cmd.op, consumed = domain.OpClean, "c"
		case has("u"):
			cmd.op, consumed = domain.OpUpgrade, "uy"
		case has("y") && len(cmd.packages) == 0:
			cmd.op, consumed = domain.OpUpdate, "y"
		default:
			cmd.op = domain.OpInstall
			if has("y") {
				consumed = "y"
				cmd.warnings = append(cmd.warnings, "pacman -y also refreshes the package database; run the update operation first")
			}
		}
	case 'R':
		if len(cmd.packages) == 0 && has("s") {
			cmd.op, consumed = domain.OpAutoRemove, "s"
		} else {
			cmd.op = domain.OpRemove
		}
	case 'Q':
		switch {
		case has("s"):
			cmd.op, consumed = domain.OpSearch, "s"
		case has("i"):
			cmd.op, consumed = domain.OpInfo, "i"
		default:
			cmd.op = domain.OpList
		}
	default:
		return packageCommand{}, &domain.UnsupportedOperationError{Manager: domain.PMPacman, Operation: opSwitch}
	}
	cmd.flags = append(splitModifiers(mods, consumed), cmd.flags...)
	return cmd, nil
}

// splitModifiers turns the letters of a combined switch that did not select
// the operation into separate short flags, so -Rns maps like -R -n -s.
func splitModifiers(mods, consumed string) []string {
	var out []string
	for _, c := range mods {
		flag := "-" + string(c)
		if strings.ContainsRune(consumed, c) || slices.Contains(out, flag) {
			continue
		}
		out = append(out, flag)
	}
	return out
}

// parseEmerge treats a bare package list as install.
func parseEmerge(args []string) (packageCommand, error) {
	cmd := packageCommand{manager: domain.PMEmerge, op: domain.OpInstall}
	var rest []string
	for _, arg := range args {
		switch arg {
		case "--unmerge", "-C":
			cmd.op = domain.OpRemove
		case "--sync":
			cmd.op = domain.OpUpdate
		case "--update", "-u", "--deep", "-D", "--with-bdeps=y", "@world":
			cmd.op = domain.OpUpgrade
		case "--search", "-s":
			cmd.op = domain.OpSearch
		case "--info":
			cmd.op = domain.OpInfo
		case "--depclean", "-c":
			cmd.op = domain.OpAutoRemove
		default:
			rest = append(rest, arg)
		}
	}
	cmd.flags, cmd.packages = splitFlagsAndWords(rest)
	if cmd.op == domain.OpInstall && len(cmd.packages) == 0 {
		return packageCommand{}, errMissingOperation
	}
	return cmd, nil
}

// parseXbps uses the binary to pick the operation family.
func parseXbps(binary string, args []string) (packageCommand, error) {
	cmd := packageCommand{manager: domain.PMXbps}
	flagTokens, words := splitFlagsAndWords(args)
	cmd.packages = words
	take := func(flag string) bool {
		if slices.Contains(flagTokens, flag) {
			flagTokens = removeFirst(flagTokens, flag)
			return true
		}
		return false
	}
	switch binary {
	case "xbps-install":
		switch {
		case take("-Su"):
			cmd.op = domain.OpUpgrade
		case take("-S"):
			if len(words) == 0 {
				cmd.op = domain.OpUpdate
			} else {
				cmd.op = domain.OpInstall
			}
		case take("-u"):
			cmd.op = domain.OpUpgrade
		default:
			cmd.op = domain.OpInstall
		}
	case "xbps-remove":
		switch {
		case take("-O"):
			cmd.op = domain.OpClean
		case take("-o"):
			cmd.op = domain.OpAutoRemove
		default:
			cmd.op = domain.OpRemove
		}
	case "xbps-query":
		switch {
		case take("-Rs"):
			cmd.op = domain.OpSearch
		case take("-R"):
			cmd.op = domain.OpInfo
		case take("-l"):
			cmd.op = domain.OpList
		default:
			return packageCommand{}, &domain.UnsupportedOperationError{Manager: domain.PMXbps, Operation: strings.Join(args, " ")}
		}
	}
	cmd.flags = flagTokens
	return cmd, nil
}

func parseNix(binary string, args []string) (packageCommand, error) {
	cmd := packageCommand{manager: domain.PMNix}
	switch binary {
	case "nix-channel":
		cmd.op = domain.OpUpdate
		cmd.flags, cmd.packages = splitFlagsAndWords(removeFirst(args, "--update"))
		return cmd, nil
	case "nix-collect-garbage":
		cmd.op = domain.OpClean
		if slices.Contains(args, "-d") {
			cmd.op = domain.OpAutoRemove
			args = removeFirst(args, "-d")
		}
		cmd.flags, cmd.packages = splitFlagsAndWords(args)
		return cmd, nil
	case "nix":
		if len(args) > 0 && args[0] == "search" {
			cmd.op = domain.OpSearch
			cmd.flags, cmd.packages = splitFlagsAndWords(args[1:])
			return cmd, nil
		}
		return packageCommand{}, &domain.UnsupportedOperationError{Manager: domain.PMNix, Operation: strings.Join(args, " ")}
	}

	var rest []string
	for _, arg := range args {
		switch arg {
		case "-i", "--install", "-iA":
			cmd.op = domain.OpInstall
		case "-e", "--uninstall":
			cmd.op = domain.OpRemove
		case "-u", "--upgrade":
			cmd.op = domain.OpUpgrade
		case "-q", "--query":
			if cmd.op == "" {
				cmd.op = domain.OpList
			}
		case "-qa":
			cmd.op = domain.OpInfo
		default:
			rest = append(rest, arg)
		}
	}
	if cmd.op == "" {
		return packageCommand{}, errMissingOperation
	}
	if cmd.op == domain.OpInfo || cmd.op == domain.OpList {
		rest = removeFirst(rest, "--description")
	}
	cmd.flags, cmd.packages = splitFlagsAndWords(rest)
	return cmd, nil
}

var errMissingOperation = errors.New("missing operation")

// parsePackageCommand strips sudo, identifies the manager from the binary and
// detects the operation.
func parsePackageCommand(line string) (packageCommand, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return packageCommand{}, domain.ErrEmptyCommand
	}
	sudo := false
	if fields[0] == "sudo" {
		sudo = true
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return packageCommand{}, &domain.NotPackageCommandError{Input: line}
	}
	binary := fields[0]
	pm, ok := domain.PackageManagerForBinary(binary)
	if !ok {
		return packageCommand{}, &domain.NotPackageCommandError{Input: line}
	}

	args := fields[1:]
	var (
		cmd packageCommand
		err error
	)
	switch pm {
	case domain.PMApt, domain.PMYum, domain.PMDnf, domain.PMZypper, domain.PMApk:
		cmd, err = parseVerbStyle(pm, args)
	case domain.PMPacman:
		cmd, err = parsePacman(args)
	case domain.PMEmerge:
		cmd, err = parseEmerge(args)
	case domain.PMXbps:
		cmd, err = parseXbps(binary, args)
	case domain.PMNix:
		cmd, err = parseNix(binary, args)
	}
	if errors.Is(err, errMissingOperation) {
		return packageCommand{}, &domain.NotPackageCommandError{Input: line}
	}
	if err != nil {
		return packageCommand{}, err
	}
	cmd.sudo = sudo
	return cmd, nil
}

// LookupPackageCommand returns the target spelling of op on toPM with the
// flag pairs for the (fromPM, toPM, op) combination.
func LookupPackageCommand(op domain.Operation, fromPM, toPM domain.PackageManager) (domain.CommandMapping, bool) {
	target, ok := pmOperations[toPM][op]
	if !ok {
		return domain.CommandMapping{}, false
	}
	source, ok := pmOperations[fromPM][op]
	if !ok {
		return domain.CommandMapping{}, false
	}
	pairs := slices.Clone(pmFlags[pmFlagKey{from: fromPM, to: toPM, op: op}])
	if verboseShared(fromPM, toPM, op) {
		m := domain.CommandMapping{Flags: pairs}
		if _, found := m.Lookup("-v"); !found {
			pairs = append(pairs, domain.FlagPair{Source: "-v", Target: "-v"})
		}
	}
	return domain.CommandMapping{
		SourceCommand: source.command,
		TargetCommand: target.command,
		Flags:         pairs,
		Notes:         target.notes,
	}, true
}

func verboseShared(fromPM, toPM domain.PackageManager, op domain.Operation) bool {
	switch op {
	case domain.OpInstall, domain.OpRemove, domain.OpUpgrade:
	default:
		return false
	}
	return slices.Contains(verboseFamily, fromPM) && slices.Contains(verboseFamily, toPM)
}

// TranslatePackageCommand rewrites a package-manager invocation from fromPM
// to toPM.
func (e *Engine) TranslatePackageCommand(line string, fromPM, toPM domain.PackageManager) (domain.PackageResult, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return domain.PackageResult{}, domain.ErrEmptyCommand
	}
	cmd, err := parsePackageCommand(trimmed)
	if err != nil {
		return domain.PackageResult{}, err
	}

	result := domain.PackageResult{
		Original:   line,
		Translated: line,
		From:       fromPM,
		To:         toPM,
		Operation:  cmd.op,
		Warnings:   []string{},
	}
	if cmd.manager != fromPM {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"command uses %s, not %s; translating as %s", cmd.manager, fromPM, cmd.manager))
		result.From = cmd.manager
	}
	if result.From == toPM {
		result.RequiresSudo = pmOperations[toPM][cmd.op].sudo
		return result, nil
	}

	m, ok := LookupPackageCommand(cmd.op, result.From, toPM)
	if !ok {
		return domain.PackageResult{}, &domain.UnsupportedOperationError{Manager: toPM, Operation: string(cmd.op)}
	}
	targetFlags, unmapped := MapFlags(m, cmd.flags)
	result.Warnings = append(result.Warnings, cmd.warnings...)

	parts := make([]string, 0, 2+len(targetFlags)+len(cmd.packages))
	if cmd.sudo {
		parts = append(parts, "sudo")
	}
	parts = append(parts, m.TargetCommand)
	parts = append(parts, targetFlags...)
	parts = append(parts, cmd.packages...)

	result.Translated = strings.Join(parts, " ")
	result.RequiresSudo = pmOperations[toPM][cmd.op].sudo
	result.HadUnmappedFlags = len(unmapped) > 0
	for _, flag := range unmapped {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"flag %q has no %s equivalent for %s and was kept as is", flag, toPM, cmd.op))
	}
	if m.Notes != "" {
		result.Warnings = append(result.Warnings, m.Notes)
	}
	return result, nil
}

// TranslatePackageCommandAuto infers the source manager from the binary.
func (e *Engine) TranslatePackageCommandAuto(line string, toPM domain.PackageManager) (domain.PackageResult, error) {
	pm, err := DetectPackageManager(line)
	if err != nil {
		return domain.PackageResult{}, err
	}
	return e.TranslatePackageCommand(line, pm, toPM)
}

// DetectPackageManager names the manager a command line invokes.
func DetectPackageManager(line string) (domain.PackageManager, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", domain.ErrEmptyCommand
	}
	if fields[0] == "sudo" {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return "", &domain.NotPackageCommandError{Input: line}
	}
	pm, ok := domain.PackageManagerForBinary(fields[0])
	if !ok {
		return "", &domain.NotPackageCommandError{Input: line}
	}
	return pm, nil
}
