package domain

import (
	"fmt"
	"testing"
)

func TestNewScanSummaryHasAllBuckets(t *testing.T) {
	summary := NewScanSummary("/root")
	if len(summary.ByCategory) != len(Categories) {
		t.Fatalf("expected %d category buckets, got %d", len(Categories), len(summary.ByCategory))
	}
	for _, category := range Categories {
		if _, ok := summary.ByCategory[category]; !ok {
			t.Fatalf("missing bucket for %s", category)
		}
	}
}

func TestSummaryAddKeepsBucketsConsistent(t *testing.T) {
	summary := NewScanSummary("/root")
	summary.Add(NewFileRecord("/root/a.jpg", 500))
	summary.Add(NewFileRecord("/root/b.mp3", 2000))
	summary.Add(NewFileRecord("/root/noext", 10))

	if summary.TotalFiles != 3 || summary.TotalSize != 2510 {
		t.Fatalf("unexpected totals: files=%d size=%d", summary.TotalFiles, summary.TotalSize)
	}

	categoryCount := 0
	for _, records := range summary.ByCategory {
		categoryCount += len(records)
	}
	extensionCount := 0
	for _, records := range summary.ByExtension {
		extensionCount += len(records)
	}
	if categoryCount != 3 || extensionCount != 3 {
		t.Fatalf("bucket totals diverge: category=%d extension=%d", categoryCount, extensionCount)
	}

	// The empty extension is a valid bucket key.
	if len(summary.ByExtension[""]) != 1 {
		t.Fatalf("expected the extensionless file under the empty key, got %v", summary.ByExtension)
	}
}

func TestFinalizeSortsAndCapsLargestFiles(t *testing.T) {
	summary := NewScanSummary("/root")
	for i := 0; i < LargestFilesCap+10; i++ {
		summary.Add(NewFileRecord(fmt.Sprintf("/root/f%03d.txt", i), int64(i)))
	}
	summary.Finalize()

	if len(summary.LargestFiles) != LargestFilesCap {
		t.Fatalf("expected %d largest files, got %d", LargestFilesCap, len(summary.LargestFiles))
	}
	for i := 1; i < len(summary.LargestFiles); i++ {
		if summary.LargestFiles[i].Size > summary.LargestFiles[i-1].Size {
			t.Fatalf("largest files not sorted descending at index %d", i)
		}
	}
	// With sizes 0..59 the cut keeps 10..59.
	if summary.LargestFiles[0].Size != int64(LargestFilesCap+9) {
		t.Fatalf("expected the biggest file first, got %d", summary.LargestFiles[0].Size)
	}
	if summary.LargestFiles[len(summary.LargestFiles)-1].Size != 10 {
		t.Fatalf("expected size 10 at the cutoff, got %d", summary.LargestFiles[len(summary.LargestFiles)-1].Size)
	}
}

func TestFinalizeBreaksTiesByDiscoveryOrder(t *testing.T) {
	summary := NewScanSummary("/root")
	summary.Add(NewFileRecord("/root/first.txt", 7))
	summary.Add(NewFileRecord("/root/second.txt", 7))
	summary.Finalize()

	if summary.LargestFiles[0].Name != "first.txt" || summary.LargestFiles[1].Name != "second.txt" {
		t.Fatalf("ties must keep discovery order, got %v", summary.LargestFiles)
	}
}
