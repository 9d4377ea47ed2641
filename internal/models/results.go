package models

import "mediorg/internal/domain/enums"

// RenameResult is the outcome for a single file visited by the tree renamer.
type RenameResult struct {
	Dir     string
	OldName string
	NewName string
	Outcome enums.RenameOutcome
	Err     error
}

// PromotionResult is the outcome for a single entry visited by the folder promoter.
type PromotionResult struct {
	Name    string
	Folder  string
	Outcome enums.PromoteOutcome
	Err     error
}

// Report aggregates the per-item outcomes of one run.
type Report struct {
	Renames    []RenameResult
	Promotions []PromotionResult
}

// RenameCount returns the number of rename results with the given outcome.
func (r *Report) RenameCount(o enums.RenameOutcome) (n int) {
	for _, res := range r.Renames {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// PromoteCount returns the number of promotion results with the given outcome.
func (r *Report) PromoteCount(o enums.PromoteOutcome) (n int) {
	for _, res := range r.Promotions {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Failed reports whether any per-item outcome in the run failed.
func (r *Report) Failed() bool {
	return r.RenameCount(enums.RenameFailed) > 0 || r.PromoteCount(enums.PromoteFailed) > 0
}
