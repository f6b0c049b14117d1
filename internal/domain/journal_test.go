package domain

import (
	"testing"
	"time"
)

func TestParseYearFolder(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		wantYear int
		wantOK   bool
	}{
		{"valid year", "2024", 2024, true},
		{"valid old year", "1999", 1999, true},
		{"too short", "202", 0, false},
		{"too long", "20240", 0, false},
		{"month folder", "202401", 0, false},
		{"letters", "notes", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, ok := ParseYearFolder(tt.folder)
			if ok != tt.wantOK {
				t.Fatalf("ParseYearFolder(%q) ok = %v, want %v", tt.folder, ok, tt.wantOK)
			}
			if year != tt.wantYear {
				t.Errorf("ParseYearFolder(%q) = %d, want %d", tt.folder, year, tt.wantYear)
			}
		})
	}
}

func TestParseMonthFolder(t *testing.T) {
	tests := []struct {
		name      string
		folder    string
		wantYear  int
		wantMonth int
		wantOK    bool
	}{
		{"january", "202401", 2024, 1, true},
		{"december", "202412", 2024, 12, true},
		{"month zero", "202400", 0, 0, false},
		{"month thirteen", "202413", 0, 0, false},
		{"year folder", "2024", 0, 0, false},
		{"too long", "2024011", 0, 0, false},
		{"letters", "2024ab", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, ok := ParseMonthFolder(tt.folder)
			if ok != tt.wantOK {
				t.Fatalf("ParseMonthFolder(%q) ok = %v, want %v", tt.folder, ok, tt.wantOK)
			}
			if year != tt.wantYear || month != tt.wantMonth {
				t.Errorf("ParseMonthFolder(%q) = %d, %d, want %d, %d",
					tt.folder, year, month, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestParseNoteDate(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantDate string
		wantOK   bool
	}{
		{"plain date", "20240112.md", "2024-01-12", true},
		{"date with suffix", "20240112_Meeting.md", "2024-01-12", true},
		{"suffix with more underscores", "20240112_Some_Long_Topic.md", "2024-01-12", true},
		{"no extension", "20240112_Topic", "2024-01-12", true},
		{"short digits", "2024011.md", "", false},
		{"no date", "Ideas.md", "", false},
		{"invalid calendar date", "20241332.md", "", false},
		{"digits after underscore only", "_20240112.md", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := ParseNoteDate(tt.filename)
			if ok != tt.wantOK {
				t.Fatalf("ParseNoteDate(%q) ok = %v, want %v", tt.filename, ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if got := date.Format("2006-01-02"); got != tt.wantDate {
				t.Errorf("ParseNoteDate(%q) = %s, want %s", tt.filename, got, tt.wantDate)
			}
		})
	}
}

func TestNoteStem_PreservesUnderscores(t *testing.T) {
	note := Note{Filename: "20240112_Some_Long_Topic.md"}
	if got := note.Stem(); got != "20240112_Some_Long_Topic" {
		t.Errorf("Stem() = %q, want %q", got, "20240112_Some_Long_Topic")
	}
}

func TestMonthNameAndTag(t *testing.T) {
	month := Month{Year: 2024, Number: 1}
	if got := month.Name(); got != "January" {
		t.Errorf("Name() = %q, want January", got)
	}
	if got := month.Tag(); got != "january" {
		t.Errorf("Tag() = %q, want january", got)
	}
}

func TestIndexFilenames(t *testing.T) {
	if got := YearIndexFilename(2024); got != "Overview 2024 DailyNotes.md" {
		t.Errorf("YearIndexFilename = %q", got)
	}
	if got := MonthIndexFilename(2024, 3); got != "Overview 2024 03 Daily Notes.md" {
		t.Errorf("MonthIndexFilename = %q", got)
	}
	if got := MonthFolderName(2024, 3); got != "202403" {
		t.Errorf("MonthFolderName = %q", got)
	}
}

func TestIsIndexFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"Overview 2024 DailyNotes.md", true},
		{"Overview 2024 01 Daily Notes.md", true},
		{"overview.md", true},
		{"20240112.md", false},
		{"Overview_notes.md", false},
	}

	for _, tt := range tests {
		if got := IsIndexFile(tt.filename); got != tt.want {
			t.Errorf("IsIndexFile(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestWikiLink(t *testing.T) {
	if got := WikiLink("20240112_Topic", ""); got != "[[20240112_Topic]]" {
		t.Errorf("WikiLink = %q", got)
	}
	if got := WikiLink("20240112", "Morning Pages"); got != "[[20240112|Morning Pages]]" {
		t.Errorf("WikiLink with display = %q", got)
	}
	if got := WikiLink("20240112", "20240112"); got != "[[20240112]]" {
		t.Errorf("WikiLink with same display = %q", got)
	}
}

func TestSortMonths(t *testing.T) {
	months := []Month{
		{Year: 2024, Number: 12},
		{Year: 2024, Number: 1},
		{Year: 2023, Number: 6},
	}
	SortMonths(months)

	want := []Month{
		{Year: 2023, Number: 6},
		{Year: 2024, Number: 1},
		{Year: 2024, Number: 12},
	}
	for i := range want {
		if months[i].Year != want[i].Year || months[i].Number != want[i].Number {
			t.Fatalf("SortMonths[%d] = %d-%02d, want %d-%02d",
				i, months[i].Year, months[i].Number, want[i].Year, want[i].Number)
		}
	}
}

func TestSortNotes(t *testing.T) {
	notes := []Note{
		{Filename: "20240131.md"},
		{Filename: "20240101_Topic.md"},
		{Filename: "20240101.md"},
	}
	SortNotes(notes)

	want := []string{"20240101.md", "20240101_Topic.md", "20240131.md"}
	for i, w := range want {
		if notes[i].Filename != w {
			t.Fatalf("SortNotes[%d] = %s, want %s", i, notes[i].Filename, w)
		}
	}
}

func TestYearSummaryTotalNotes(t *testing.T) {
	summary := YearSummary{
		Year: 2024,
		Months: []MonthListing{
			{Month: Month{Year: 2024, Number: 1}, Notes: make([]Note, 3)},
			{Month: Month{Year: 2024, Number: 2}, Notes: make([]Note, 0)},
			{Month: Month{Year: 2024, Number: 3}, Notes: make([]Note, 5)},
		},
	}
	if got := summary.TotalNotes(); got != 8 {
		t.Errorf("TotalNotes() = %d, want 8", got)
	}
}

func TestNoteDate(t *testing.T) {
	note := Note{Filename: "20240615_Summer.md"}
	date, ok := note.Date()
	if !ok {
		t.Fatal("Date() not ok")
	}
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if !date.Equal(want) {
		t.Errorf("Date() = %v, want %v", date, want)
	}
}
