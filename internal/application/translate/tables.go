package translate

import (
	"strings"

	"github.com/doeshing/cmdx/internal/domain"
)

type commandKey struct {
	command string
	from    domain.OS
	to      domain.OS
}

// tables holds every lookup the engine consults. It is read-only once built.
type tables struct {
	commands map[commandKey]domain.CommandMapping
	native   map[domain.OS]map[string]struct{}
	env      envTable
}

func flags(pairs ...string) []domain.FlagPair {
	out := make([]domain.FlagPair, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.FlagPair{Source: pairs[i], Target: pairs[i+1]})
	}
	return out
}

func mapping(source, target string, pairs ...string) domain.CommandMapping {
	return domain.CommandMapping{SourceCommand: source, TargetCommand: target, Flags: flags(pairs...)}
}

func withNotes(m domain.CommandMapping, notes string) domain.CommandMapping {
	m.Notes = notes
	return m
}

// windowsToUnix is authored against GNU userland and applied to every POSIX target.
var windowsToUnix = []domain.CommandMapping{
	mapping("dir", "ls",
		"/w", "-C", "/s", "-R", "/b", "-1", "/a", "-la",
		"/o:n", "--sort=name", "/o:s", "--sort=size", "/o:d", "--sort=time",
		"/p", "", "/q", "-l"),
	mapping("copy", "cp", "/y", "-f", "/v", "-v", "/a", "", "/b", ""),
	mapping("xcopy", "cp -r", "/s", "", "/e", "", "/y", "-f", "/i", "", "/q", "-q"),
	mapping("move", "mv", "/y", "-f"),
	mapping("del", "rm", "/s", "-r", "/q", "-f", "/f", "-f", "/p", "-i"),
	mapping("erase", "rm", "/s", "-r", "/q", "-f", "/f", "-f", "/p", "-i"),
	mapping("rmdir", "rm -r", "/s", "", "/q", "-f"),
	mapping("rd", "rm -r", "/s", "", "/q", "-f"),
	mapping("mkdir", "mkdir", "/p", "-p"),
	mapping("md", "mkdir -p"),
	mapping("type", "cat"),
	mapping("cls", "clear"),
	mapping("findstr", "grep", "/i", "-i", "/s", "-r", "/n", "-n", "/v", "-v", "/r", "-E"),
	mapping("find", "grep", "/i", "-i", "/v", "-v", "/c", "-c", "/n", "-n"),
	mapping("tasklist", "ps aux"),
	withNotes(mapping("taskkill", "kill", "/f", "-9", "/pid", "", "/im", ""),
		"taskkill /im selects processes by image name; use pkill <name> on the target"),
	mapping("ipconfig", "ip addr", "/all", "show", "/release", "", "/renew", ""),
	withNotes(mapping("systeminfo", "uname -a && cat /etc/os-release"),
		"systeminfo expands to two commands"),
	mapping("set", "env"),
	withNotes(mapping("attrib", "chmod"), "attrib flags have no direct chmod equivalent"),
	mapping("fc", "diff", "/b", "", "/c", "-i", "/n", "-n", "/w", "-w"),
	mapping("more", "less"),
	mapping("ren", "mv"),
	mapping("rename", "mv"),
	mapping("tree", "tree", "/f", "", "/a", "--charset=ascii"),
	mapping("sort", "sort", "/r", "-r", "/n", "-n"),
	mapping("where", "which"),
	mapping("tracert", "traceroute", "-h", "-m", "-w", "-w"),
	mapping("netstat", "ss", "-a", "-a", "-n", "-n", "-o", "-p", "-b", "-p"),
	mapping("chkdsk", "fsck"),
}

// bsdOverrides replaces GNU-only spellings for macOS and the BSDs.
var bsdOverrides = []domain.CommandMapping{
	mapping("dir", "ls",
		"/w", "-C", "/s", "-R", "/b", "-1", "/a", "-la",
		"/o:n", "", "/o:s", "-S", "/o:d", "-t",
		"/p", "", "/q", "-l"),
	mapping("ipconfig", "ifconfig", "/all", "-a", "/release", "", "/renew", ""),
	mapping("tasklist", "ps aux"),
	mapping("netstat", "netstat", "-a", "-a", "-n", "-n", "-o", "", "-b", ""),
	withNotes(mapping("tree", "find . -print"), "tree is not installed by default"),
}

// macOverrides applies on top of bsdOverrides for macOS only.
var macOverrides = []domain.CommandMapping{
	withNotes(mapping("systeminfo", "sw_vers && uname -a"), "systeminfo expands to two commands"),
	mapping("chkdsk", "diskutil verifyVolume /"),
}

// unixToWindows is applied from every POSIX source.
var unixToWindows = []domain.CommandMapping{
	mapping("ls", "dir",
		"-l", "", "-a", "/a", "-la", "/a", "-al", "/a", "-R", "/s", "-1", "/b",
		"-S", "/o:s", "-t", "/o:d", "-r", "/o:-n",
		"--sort=size", "/o:s", "--sort=time", "/o:d"),
	withNotes(mapping("cp", "copy", "-f", "/y", "-v", "/v", "-i", "/-y"), "recursive copies need xcopy /s /e"),
	mapping("mv", "move", "-f", "/y", "-i", "/-y"),
	mapping("rm", "del", "-r", "/s", "-R", "/s", "-f", "/q /f", "-rf", "/s /q", "-fr", "/s /q", "-i", "/p"),
	mapping("cat", "type"),
	mapping("clear", "cls"),
	mapping("grep", "findstr", "-i", "/i", "-r", "/s", "-R", "/s", "-n", "/n", "-v", "/v", "-E", "/r"),
	mapping("ps", "tasklist"),
	mapping("kill", "taskkill /pid", "-9", "/f", "-SIGKILL", "/f", "-SIGTERM", ""),
	mapping("pkill", "taskkill /im", "-9", "/f"),
	mapping("ifconfig", "ipconfig"),
	mapping("ip", "ipconfig", "addr", "/all", "link", "", "route", ""),
	mapping("uname", "systeminfo", "-a", "", "-r", ""),
	mapping("env", "set"),
	mapping("printenv", "set"),
	withNotes(mapping("chmod", "attrib"), "chmod modes have no direct attrib equivalent"),
	mapping("diff", "fc", "-i", "/c", "-w", "/w", "-n", "/n"),
	mapping("less", "more"),
	mapping("which", "where"),
	mapping("whereis", "where"),
	mapping("touch", "type nul >"),
	withNotes(mapping("head", "more"), "more pages the whole file"),
	withNotes(mapping("tail", "more"), "more pages the whole file"),
	mapping("traceroute", "tracert", "-m", "-h", "-w", "-w"),
	mapping("ss", "netstat", "-a", "-a", "-n", "-n", "-p", "-o", "-t", "", "-u", ""),
	mapping("wget", "curl -O", "-O", "-o", "-q", "-s"),
	mapping("df", "wmic logicaldisk get size,freespace,caption"),
	mapping("du", "dir /s"),
	withNotes(mapping("ln", "mklink", "-s", ""), "mklink takes the link name before the target"),
	mapping("man", "help"),
}

var windowsNative = []string{
	"assoc", "attrib", "call", "cd", "chdir", "chkdsk", "choice", "cipher", "clip", "cls", "cmd",
	"color", "copy", "curl", "date", "del", "dir", "diskpart", "driverquery", "echo", "endlocal",
	"erase", "exit", "fc", "find", "findstr", "for", "format", "ftype", "goto", "help", "hostname",
	"icacls", "if", "ipconfig", "md", "mkdir", "mklink", "more", "move", "net", "netsh", "netstat",
	"nslookup", "path", "pause", "ping", "popd", "powershell", "prompt", "pushd", "pwsh", "rd",
	"reg", "ren", "rename", "rmdir", "robocopy", "sc", "schtasks", "set", "setlocal", "sfc", "shift",
	"shutdown", "sort", "start", "systeminfo", "takeown", "tar", "taskkill", "tasklist", "time",
	"timeout", "title", "tracert", "tree", "type", "ver", "vol", "where", "whoami", "wmic", "xcopy",
}

// posixNative lists names that are canonical on every POSIX target. Names a
// Windows command shares but uses with slash switches (find, mkdir, rmdir,
// sort, more, tree, netstat) are left out so their mappings apply.
var posixNative = []string{
	"awk", "basename", "bash", "cat", "cd", "chgrp", "chmod", "chown", "clear", "cp", "curl", "cut",
	"date", "dd", "df", "diff", "dirname", "du", "echo", "env", "export", "false", "file",
	"git", "grep", "gunzip", "gzip", "head", "hostname", "id", "kill", "less", "ln", "ls", "make",
	"man", "mv", "nano", "nohup", "ping", "printenv", "ps", "pwd", "rm", "rsync", "scp", "sed", "sh", "sleep",
	"ssh", "stat", "su", "sudo", "tail", "tar", "tee", "test", "top", "touch", "tr", "true", "uname",
	"uniq", "unzip", "vi", "vim", "wc", "wget", "which", "whoami", "xargs", "zip",
}

var linuxNative = []string{
	"apt", "apt-get", "dnf", "free", "ip", "journalctl", "lsblk", "pacman", "pkill", "pgrep", "ss",
	"systemctl", "traceroute", "yum", "zypper", "apk", "emerge", "xbps-install", "nix-env", "fsck",
	"lsof", "watch", "whereis",
}

var bsdNative = []string{
	"ifconfig", "pkg", "pkill", "pgrep", "sysctl", "traceroute", "whereis", "fsck",
}

var macNative = []string{
	"brew", "defaults", "diskutil", "ditto", "launchctl", "open", "pbcopy", "pbpaste", "say",
	"softwareupdate", "sw_vers",
}

var androidNative = []string{
	"am", "getprop", "logcat", "pm", "setprop", "toybox", "ip", "ifconfig",
}

func newTables() *tables {
	t := &tables{
		commands: make(map[commandKey]domain.CommandMapping),
		native:   make(map[domain.OS]map[string]struct{}),
		env:      newEnvTable(defaultEnvPairs, defaultEnvAliases),
	}

	for _, to := range domain.AllOS() {
		if to.UsesWindowsConventions() {
			continue
		}
		t.putAll(windowsToUnix, domain.OSWindows, to)
		switch to {
		case domain.OSMacOS:
			t.putAll(bsdOverrides, domain.OSWindows, to)
			t.putAll(macOverrides, domain.OSWindows, to)
		case domain.OSFreeBSD, domain.OSOpenBSD, domain.OSNetBSD:
			t.putAll(bsdOverrides, domain.OSWindows, to)
		}
		t.putAll(unixToWindows, to, domain.OSWindows)
	}

	t.addNative(domain.OSWindows, windowsNative...)
	for _, os := range domain.AllOS() {
		if os.UsesWindowsConventions() {
			continue
		}
		t.addNative(os, posixNative...)
		switch os {
		case domain.OSLinux:
			t.addNative(os, linuxNative...)
		case domain.OSMacOS:
			t.addNative(os, bsdNative...)
			t.addNative(os, macNative...)
		case domain.OSFreeBSD, domain.OSOpenBSD, domain.OSNetBSD:
			t.addNative(os, bsdNative...)
		case domain.OSAndroid:
			t.addNative(os, androidNative...)
		case domain.OSSolaris, domain.OSiOS:
		}
	}
	return t
}

func (t *tables) put(m domain.CommandMapping, from, to domain.OS) {
	name := m.SourceCommand
	if from.UsesWindowsConventions() {
		name = strings.ToLower(name)
	}
	t.commands[commandKey{command: name, from: from, to: to}] = m
}

func (t *tables) putAll(ms []domain.CommandMapping, from, to domain.OS) {
	for _, m := range ms {
		t.put(m, from, to)
	}
}

func (t *tables) addNative(os domain.OS, names ...string) {
	set, ok := t.native[os]
	if !ok {
		set = make(map[string]struct{}, len(names))
		t.native[os] = set
	}
	for _, name := range names {
		if os.UsesWindowsConventions() {
			name = strings.ToLower(name)
		}
		set[name] = struct{}{}
	}
}

// lookupCommand finds the mapping for name, falling back to lowercase for
// Windows sources since cmd.exe names are case-insensitive.
func (t *tables) lookupCommand(name string, from, to domain.OS) (domain.CommandMapping, bool) {
	if m, ok := t.commands[commandKey{command: name, from: from, to: to}]; ok {
		return m, true
	}
	if from.UsesWindowsConventions() {
		m, ok := t.commands[commandKey{command: strings.ToLower(name), from: from, to: to}]
		return m, ok
	}
	return domain.CommandMapping{}, false
}

func (t *tables) isNative(name string, os domain.OS) bool {
	set := t.native[os]
	if set == nil {
		return false
	}
	if os.UsesWindowsConventions() {
		name = strings.ToLower(name)
	}
	_, ok := set[name]
	return ok
}

// sourceCommands returns the mapped source names for a pair, unsorted.
func (t *tables) sourceCommands(from, to domain.OS) []string {
	var out []string
	for key := range t.commands {
		if key.from == from && key.to == to {
			out = append(out, key.command)
		}
	}
	return out
}

// clone copies the maps so an overlay can extend them without touching the
// shared defaults.
func (t *tables) clone() *tables {
	c := &tables{
		commands: make(map[commandKey]domain.CommandMapping, len(t.commands)),
		native:   make(map[domain.OS]map[string]struct{}, len(t.native)),
		env:      t.env.clone(),
	}
	for k, v := range t.commands {
		c.commands[k] = v
	}
	for os, set := range t.native {
		cs := make(map[string]struct{}, len(set))
		for name := range set {
			cs[name] = struct{}{}
		}
		c.native[os] = cs
	}
	return c
}
