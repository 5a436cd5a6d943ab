// Package testing provides a deterministic harness for clock face tests.
//
// # Quick Start
//
// Create a tester, set a time, and pump frames:
//
//	func TestMyFace(t *testing.T) {
//	    tester := fliptest.NewFaceTester(t)
//	    tester.SetTime(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
//
//	    tester.Pump(250 * time.Millisecond)
//	    if !tester.Face().IsAnimating() {
//	        t.Error("expected the seconds item to be mid-flip")
//	    }
//
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare face snapshots:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/face.snapshot.json")
//
// Update snapshots with:
//
//	FLIPCLOCK_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import fliptest "github.com/go-drift/flipclock/pkg/testing"
package testing
