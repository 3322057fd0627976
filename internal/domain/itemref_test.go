package domain

import "testing"

func TestParseItemRefTrip(t *testing.T) {
	ref, err := ParseItemRef("trip-5")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ref.Kind != ItemKindTrip || ref.ID != 5 {
		t.Fatalf("unexpected ref: %+v", ref)
	}
	if ref.String() != "trip-5" {
		t.Fatalf("round trip mismatch: %s", ref.String())
	}
}

func TestParseItemRefPackage(t *testing.T) {
	ref, err := ParseItemRef("package-12")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ref.Kind != ItemKindPackage || ref.ID != 12 {
		t.Fatalf("unexpected ref: %+v", ref)
	}
}

func TestParseItemRefRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"trip5",
		"boat-3",
		"trip-",
		"trip-0",
		"trip--1",
		"package-abc",
		"-7",
	}
	for _, in := range cases {
		if _, err := ParseItemRef(in); err == nil {
			t.Errorf("expected error for %q", in)
		} else if !IsValidation(err) {
			t.Errorf("expected validation error for %q, got %v", in, err)
		}
	}
}

func TestParseItemRefSplitsOnFirstSeparator(t *testing.T) {
	// the id part may not itself contain a separator
	if _, err := ParseItemRef("trip-5-6"); err == nil {
		t.Fatal("expected error for nested separator")
	}
}
