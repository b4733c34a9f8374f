package stamp

import (
	"fmt"
	"strconv"
)

// BuildPlan validates the numbering scheme and resolves the page plan for a
// document with totalPageCount pages. totalPagesOverride and maxPages use 0
// for "not set". Pure function; it runs before any page is touched, so a
// malformed request never produces partial output.
func BuildPlan(totalPageCount, startNumber, totalPagesOverride, maxPages int) (PagePlan, error) {
	if startNumber < 1 {
		return PagePlan{}, fmt.Errorf("%w: start number must be at least 1, got %d",
			ErrInvalidConfiguration, startNumber)
	}

	processed := totalPageCount
	if maxPages != 0 {
		if maxPages < 1 {
			return PagePlan{}, fmt.Errorf("%w: max pages must be a positive integer, got %d",
				ErrInvalidConfiguration, maxPages)
		}
		if maxPages < processed {
			processed = maxPages
		}
	}

	calculated := startNumber + processed - 1
	resolved := calculated
	if totalPagesOverride != 0 {
		if totalPagesOverride < calculated {
			return PagePlan{}, fmt.Errorf("%w: total pages %d is smaller than the %d pages that will be numbered",
				ErrInvalidConfiguration, totalPagesOverride, calculated)
		}
		// No upper bound: an oversized override is permitted.
		resolved = totalPagesOverride
	}

	return PagePlan{
		ProcessedPageCount: processed,
		ResolvedTotalPages: resolved,
	}, nil
}

// DecideForPage derives the per-page decision for the 0-based pageIndex.
// Pages at or beyond the processed page count pass through unannotated.
func DecideForPage(plan PagePlan, req AnnotationRequest, pageIndex int) (PageDecision, error) {
	decision := PageDecision{PageIndex: pageIndex}
	if pageIndex >= plan.ProcessedPageCount {
		return decision, nil
	}

	current := req.StartNumber + pageIndex
	pageLabel, err := substituteTemplate(req.PageLabelTemplate, map[string]string{
		PlaceholderNumber: strconv.Itoa(current),
		PlaceholderTotal:  strconv.Itoa(plan.ResolvedTotalPages),
	})
	if err != nil {
		return PageDecision{}, err
	}
	copyLabel, err := substituteTemplate(req.CopyLabelTemplate, map[string]string{
		PlaceholderCopyNumber: req.CopyNumber,
	})
	if err != nil {
		return PageDecision{}, err
	}

	decision.Annotated = true
	decision.PageLabel = pageLabel
	decision.CopyLabel = copyLabel
	return decision, nil
}
