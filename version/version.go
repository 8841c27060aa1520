// Package version holds build metadata injected at link time.
package version

//nolint:gochecknoglobals // set through -ldflags "-X"
var (
	name    = "etgrep"
	version = "dev"
	commit  = "unknown"
)

func Name() string {
	return name
}

func Version() string {
	return version
}

func Commit() string {
	return commit
}
