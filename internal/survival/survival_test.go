package survival

import (
	"testing"

	"github.com/crimson-sun/steerage/internal/model"
)

func TestByClass(t *testing.T) {
	records := []model.Passenger{
		{CabinClass: 1, Survived: 1, Age: 30},
		{CabinClass: 1, Survived: 0, Age: 40},
		{CabinClass: 3, Survived: 1, Age: 20},
	}

	got := ByClass(records)
	if len(got) != 2 {
		t.Fatalf("expected 2 groups (class 2 is empty and skipped), got %d", len(got))
	}
	if got[0].Group != "1" || got[0].Survivors != 1 || got[0].Total != 2 || got[0].Rate != 50 {
		t.Fatalf("class 1 summary mismatch: %+v", got[0])
	}
	if got[1].Group != "3" || got[1].Survivors != 1 || got[1].Total != 1 || got[1].Rate != 100 {
		t.Fatalf("class 3 summary mismatch: %+v", got[1])
	}
}

func TestByClassOrder(t *testing.T) {
	records := []model.Passenger{
		{CabinClass: 3, Survived: 0},
		{CabinClass: 1, Survived: 1},
		{CabinClass: 2, Survived: 0},
	}
	got := ByClass(records)
	want := []string{"1", "2", "3"}
	for i, g := range got {
		if g.Group != want[i] {
			t.Errorf("group %d: got %q, want %q", i, g.Group, want[i])
		}
	}
}

func TestByAgeBandOrder(t *testing.T) {
	// One passenger per band, inserted out of order; output must follow the
	// band order, not insertion or alphabetical order.
	records := []model.Passenger{
		{CabinClass: 1, Survived: 1, Age: 70}, // Senior
		{CabinClass: 1, Survived: 0, Age: 5},  // Child
		{CabinClass: 2, Survived: 1, Age: 40}, // Adult
		{CabinClass: 2, Survived: 0, Age: 15}, // Teen
		{CabinClass: 3, Survived: 1, Age: 20}, // Young Adult
	}

	got := ByAgeBand(records)
	want := []string{
		"Child (0-11)",
		"Teen (12-17)",
		"Young Adult (18-34)",
		"Adult (35-59)",
		"Senior (60+)",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(got))
	}
	for i, g := range got {
		if g.Group != want[i] {
			t.Errorf("group %d: got %q, want %q", i, g.Group, want[i])
		}
		if g.Total != 1 {
			t.Errorf("group %q: expected total 1, got %d", g.Group, g.Total)
		}
	}
}

func TestByAgeBandBoundary(t *testing.T) {
	// Age 12 belongs to Teen under half-open interval semantics.
	records := []model.Passenger{{CabinClass: 3, Survived: 1, Age: 12}}
	got := ByAgeBand(records)
	if len(got) != 1 || got[0].Group != "Teen (12-17)" {
		t.Fatalf("age 12 must land in Teen, got %+v", got)
	}
}

func TestSummarizeByEmpty(t *testing.T) {
	if got := ByClass(nil); len(got) != 0 {
		t.Fatalf("expected empty summary for no records, got %+v", got)
	}
	if got := ByAgeBand([]model.Passenger{}); len(got) != 0 {
		t.Fatalf("expected empty summary for no records, got %+v", got)
	}
}

func TestSummarizeByDoesNotMutate(t *testing.T) {
	records := []model.Passenger{{CabinClass: 2, Survived: 1, Age: 33}}
	ByClass(records)
	ByAgeBand(records)
	if records[0].CabinClass != 2 || records[0].Survived != 1 || records[0].Age != 33 {
		t.Fatalf("records were mutated: %+v", records[0])
	}
}

func TestRatePrecision(t *testing.T) {
	// 1 of 3 survivors: the rate carries full float precision; rounding to
	// two decimals is the renderer's job.
	records := []model.Passenger{
		{CabinClass: 1, Survived: 1},
		{CabinClass: 1, Survived: 0},
		{CabinClass: 1, Survived: 0},
	}
	got := ByClass(records)
	if got[0].Rate < 33.3 || got[0].Rate > 33.4 {
		t.Fatalf("expected rate ≈ 33.33, got %v", got[0].Rate)
	}
}
