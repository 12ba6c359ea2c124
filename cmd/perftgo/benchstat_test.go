package main

import (
	"regexp"
	"strings"
	"testing"
)

func TestFilterBenchLines(t *testing.T) {
	var src = strings.Join([]string{
		"goos: linux",
		"run-id: abc",
		"",
		"BenchmarkPerft/pos=startpos/backend=classic/mode=plain 1 100 ns/op",
		"BenchmarkPerft/pos=startpos/backend=magic/mode=plain 1 90 ns/op",
		"BenchmarkPerft/pos=kiwipete/backend=magic/mode=hashed 1 80 ns/op",
	}, "\n")

	var got = string(filterBenchLines([]byte(src), regexp.MustCompile(`backend=magic`)))
	for _, keep := range []string{"goos: linux", "run-id: abc", "backend=magic/mode=plain", "backend=magic/mode=hashed"} {
		if !strings.Contains(got, keep) {
			t.Errorf("filtered output must keep %q:\n%v", keep, got)
		}
	}
	if strings.Contains(got, "backend=classic") {
		t.Errorf("filtered output must drop classic lines:\n%v", got)
	}

	var benchLines = 0
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "BenchmarkPerft/") {
			benchLines++
		}
	}
	if benchLines != 2 {
		t.Errorf("want 2 benchmark lines, got %v:\n%v", benchLines, got)
	}
}
