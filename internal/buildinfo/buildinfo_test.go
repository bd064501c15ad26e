package buildinfo

import (
	"bytes"
	"testing"
)

func TestPrintBuildData_Defaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)

	want := "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s", got)
	}
}
