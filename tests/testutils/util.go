// Package testutils provides the binary under test and trace fixtures for etgrep CLI tests.
package testutils

import (
	"path/filepath"
	"runtime"

	"github.com/containerd/nerdctl/mod/tigron/test"

	"github.com/farcloser/agar/pkg/agar"
)

// Setup creates a test case running bin/etgrep, built by "make build" from cmd/etgrep.
// Trace files are created per subtest in its temporary directory (see Trace).
func Setup() *test.Case {
	_, thisFile, _, _ := runtime.Caller(0) //nolint:dogsled // runtime.Caller returns 4 values, only file is needed
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
	binaryPath := filepath.Join(projectRoot, "bin", "etgrep")

	return agar.Setup(binaryPath)
}

// Trace is the payload of a small trace file, mimicking the framing bytes around
// operator names found in real .et artifacts.
const Trace = "\x0a\x15\x08\x01\x12transformer.0.mha.qkv\x1a\x09COMP_NODE foo.bar\xff\xfe\x00" +
	"\x0a\x15\x08\x02\x12transformer.0.mha.qkv\x80\x81\x00"
