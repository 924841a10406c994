package utils

import (
	"strings"
	"testing"
)

func TestParseMemberCSVHappyRow(t *testing.T) {
	content := MemberCSVHeader + "\n" +
		"John,Doe,john.doe@example.com,,,,,\n"

	rows, errs := ParseMemberCSV(content)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.FirstName != "John" || r.LastName != "Doe" || r.Email != "john.doe@example.com" {
		t.Fatalf("unexpected row: %+v", r)
	}
	if r.Status != "PENDING" {
		t.Fatalf("expected status defaulted to PENDING, got %q", r.Status)
	}
}

func TestParseMemberCSVMissingEmail(t *testing.T) {
	content := MemberCSVHeader + "\n" +
		"John,Doe,john.doe@example.com,,ACTIVE,M-1,2024-01-01,2024-01-15\n" +
		"Jane,Doe,,,,,,\n"

	rows, errs := ParseMemberCSV(content)
	if len(rows) != 1 {
		t.Fatalf("expected 1 valid row, got %d", len(rows))
	}
	if rows[0].Status != "ACTIVE" {
		t.Fatalf("expected supplied status kept, got %q", rows[0].Status)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	// The bad row is the second data row; errors are 1-based.
	if !strings.Contains(errs[0], "row 2") || !strings.Contains(errs[0], "email") {
		t.Fatalf("unexpected error string: %q", errs[0])
	}
}

func TestParseMemberCSVColumnMismatch(t *testing.T) {
	content := MemberCSVHeader + "\n" + "John,Doe\n"
	rows, errs := ParseMemberCSV(content)
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "row 1") {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestParseMemberCSVInvalidEmail(t *testing.T) {
	content := MemberCSVHeader + "\n" + "John,Doe,not-an-email,,,,,\n"
	rows, errs := ParseMemberCSV(content)
	if len(rows) != 0 || len(errs) != 1 {
		t.Fatalf("expected rejection, got rows=%d errs=%v", len(rows), errs)
	}
}

func TestParseMemberCSVBadHeader(t *testing.T) {
	_, errs := ParseMemberCSV("name,email\nJohn,j@x.com\n")
	if len(errs) != 1 || !strings.Contains(errs[0], "invalid header") {
		t.Fatalf("expected header error, got %v", errs)
	}
}

func TestBuildTimeSeriesCSV(t *testing.T) {
	out := BuildTimeSeriesCSV([]TimeSeriesCSVRow{
		{Date: "2025-03-01", TotalReviews: 12, AverageRating: 4.25},
		{Date: "2025-03-02", TotalReviews: 0, AverageRating: 0},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Date,Total Reviews,Average Rating" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "2025-03-01,12,4.25" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
	if lines[2] != "2025-03-02,0,0.00" {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}
