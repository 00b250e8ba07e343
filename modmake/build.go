package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	nativesecVersion = "0.3.0"
)

// configureCLI produces a stripped, statically linked binary stamped with nativesecVersion.
func configureCLI(gb *GoBuild) {
	gb.
		StripDebugSymbols().
		SetVariable("main", "version", nativesecVersion).
		Env("CGO_ENABLED", "0")
}

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	cli := NewAppBuild("nativesec", "cmd/nativesec", nativesecVersion)
	cli.Build(configureCLI)
	cli.Variant("linux", "amd64")
	cli.Variant("linux", "arm64")
	cli.Variant("android", "arm64")
	cli.Variant("darwin", "arm64")
	cli.Variant("windows", "amd64")
	b.ImportApp(cli)

	b.Execute()
}
