package tests_test

import (
	"fmt"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"
)

// expectContains returns a comparator verifying the output contains a substring.
func expectContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if !strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("expected substring %q not found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectNoReport returns a comparator verifying that no report was printed.
func expectNoReport() test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if strings.Contains(stdout, "Operations found in") {
			testing.Log(fmt.Sprintf("expected no report but got:\n%s", stdout))
			testing.Fail()
		}
	}
}

// expectOperation returns a comparator verifying an operation is listed with the given count
// in the "All unique operations" section.
func expectOperation(name string, count int) test.Comparator {
	return expectContains(fmt.Sprintf("\n  %s (%d)\n", name, count))
}

// expectGrouped returns a comparator verifying an operation is listed under the given prefix.
func expectGrouped(prefix, name string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		header := "\n" + prefix + ":\n"

		start := strings.Index(stdout, header)
		if start < 0 {
			testing.Log(fmt.Sprintf("expected group %q not found in output:\n%s", prefix, stdout))
			testing.Fail()

			return
		}

		block := stdout[start+len(header):]
		if end := strings.Index(block, "\n\n"); end >= 0 {
			block = block[:end]
		}

		if !strings.Contains(block, "  - "+name+" ") {
			testing.Log(fmt.Sprintf("expected %q under group %q in output:\n%s", name, prefix, stdout))
			testing.Fail()
		}
	}
}
