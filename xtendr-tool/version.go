package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"

	"github.com/rfjakob/xtendr/internal/tlog"
)

const (
	gitVersionNotSet = "[GitVersion not set - please compile using ./build.bash]"
	buildDateNotSet  = "0000-00-00"
)

var (
	// GitVersion is the xtendr version according to git, set by build.bash
	GitVersion = gitVersionNotSet
	// BuildDate is a date string like "2017-09-06", set by build.bash
	BuildDate = buildDateNotSet
)

func init() {
	versionFromBuildInfo()
}

// printVersion prints a version string like this:
// xtendr-tool v0.3-2-gcf99cfd; 2026-10-12 go1.24.0 linux/amd64
func printVersion() {
	fmt.Printf("%s %s; %s %s %s/%s\n",
		myName, GitVersion, BuildDate, runtime.Version(),
		runtime.GOOS, runtime.GOARCH)
}

// versionFromBuildInfo tries to get some information out of the information baked in
// by the Go compiler. Does nothing when build.bash was used to build.
func versionFromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		tlog.Debug.Println("versionFromBuildInfo: ReadBuildInfo() failed")
		return
	}
	// Parse BuildSettings
	var vcsRevision, vcsTime string
	var vcsModified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			vcsRevision = s.Value
		case "vcs.time":
			vcsTime = s.Value
		case "vcs.modified":
			vcsModified, _ = strconv.ParseBool(s.Value)
		}
	}
	// Fill our version strings
	if GitVersion == gitVersionNotSet {
		GitVersion = info.Main.Version
		if GitVersion == "(devel)" && vcsRevision != "" {
			GitVersion = fmt.Sprintf("vcs.revision=%s", vcsRevision)
		}
		if vcsModified {
			GitVersion += "-dirty"
		}
	}
	if BuildDate == buildDateNotSet {
		if vcsTime != "" {
			BuildDate = fmt.Sprintf("vcs.time=%s", vcsTime)
		}
	}
}
