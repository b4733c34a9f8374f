package stamp

import (
	"fmt"
	"os"
)

// Composite applies the page plan to every page of doc in input order:
// annotated pages get an overlay rendered at their own dimensions and
// merged, the rest pass through verbatim. The output keeps every input
// page, none added or removed.
func Composite(codec Codec, doc Document, plan PagePlan, req AnnotationRequest) error {
	for i := 0; i < doc.PageCount(); i++ {
		decision, err := DecideForPage(plan, req, i)
		if err != nil {
			return err
		}
		if !decision.Annotated {
			debugPrintf("page %d: pass through\n", i+1)
			continue
		}

		width, height, err := doc.PageDimensions(i)
		if err != nil {
			return err
		}
		overlay, err := RenderOverlay(width, height, decision.PageLabel, decision.CopyLabel, req.WatermarkText)
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		if err := codec.MergeOverlay(doc, i, overlay); err != nil {
			return err
		}
		debugPrintf("page %d: %q, %q (%.0fx%.0f)\n", i+1, decision.PageLabel, decision.CopyLabel, width, height)
	}
	return nil
}

// AnnotateFile runs the whole single-document transform described by req:
// validate, plan, compose, write. All validation happens before any page is
// merged, and the destination path is only written after every page has
// been composed successfully.
func AnnotateFile(codec Codec, req AnnotationRequest) error {
	if _, err := os.Stat(req.InputPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, req.InputPath)
		}
		return fmt.Errorf("stat %s: %w", req.InputPath, err)
	}
	if err := validateTemplates(req); err != nil {
		return err
	}

	doc, err := codec.ReadDocument(req.InputPath)
	if err != nil {
		return err
	}

	plan, err := BuildPlan(doc.PageCount(), req.StartNumber, req.TotalPages, req.MaxPages)
	if err != nil {
		return err
	}
	debugPrintf("plan: numbering %d of %d pages starting at %d, displayed total %d\n",
		plan.ProcessedPageCount, doc.PageCount(), req.StartNumber, plan.ResolvedTotalPages)
	if calculated := req.StartNumber + plan.ProcessedPageCount - 1; plan.ResolvedTotalPages > calculated {
		debugPrintf("plan: total pages override %d exceeds calculated total %d\n",
			plan.ResolvedTotalPages, calculated)
	}

	if err := Composite(codec, doc, plan, req); err != nil {
		return err
	}
	if err := codec.WriteDocument(doc, req.OutputPath); err != nil {
		return err
	}
	debugPrintf("wrote %s\n", req.OutputPath)
	return nil
}
