package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares the final state against
// the golden file testdata/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, sc *Scenario) {
	t.Helper()

	state, err := Run(sc)
	if err != nil {
		t.Fatalf("scenario run failed: %v", err)
	}

	snapshot, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		t.Fatalf("marshal final state: %v", err)
	}

	g := goldie.New(t)
	g.Assert(t, sc.Name, snapshot)
}
