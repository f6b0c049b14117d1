package commands

import (
	"jotdex/internal/application"
	"jotdex/internal/domain"
	"jotdex/internal/ports"
)

// collectYear lists every month of a year with its notes. Month folders
// that cannot be read are reported as skips; the collection continues
// with the remaining months.
func collectYear(repo ports.JournalRepository, year int) (domain.YearSummary, []*application.SkipError, error) {
	months, err := repo.ListMonths(year)
	if err != nil {
		return domain.YearSummary{}, nil, err
	}

	summary := domain.YearSummary{Year: year}
	var skipped []*application.SkipError
	for _, month := range months {
		notes, err := repo.ListNotes(month)
		if err != nil {
			skipped = append(skipped, &application.SkipError{Folder: month.Folder, Reason: err})
			continue
		}
		summary.Months = append(summary.Months, domain.MonthListing{Month: month, Notes: notes})
	}

	return summary, skipped, nil
}

// previousDate reads the date field from an existing index file.
// A missing file or malformed metadata block yields an empty string,
// which makes the caller fall back to the current date.
func previousDate(repo ports.JournalRepository, renderer ports.IndexRenderer, path string) string {
	content, err := repo.ReadIndex(path)
	if err != nil {
		return ""
	}
	meta, err := renderer.ParseMetadata(content)
	if err != nil {
		return ""
	}
	return meta.Date
}
