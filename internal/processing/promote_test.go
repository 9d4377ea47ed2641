package processing

import (
	"testing"

	"github.com/spf13/afero"

	"mediorg/internal/domain/enums"
	"mediorg/internal/models"
)

func TestPromoteFilesCreatesFolders(t *testing.T) {
	fsys := newTestFs(t,
		"/docs/report.pdf",
		"/docs/notes.txt",
	)

	results, err := PromoteFiles(fsys, "/docs", false)
	if err != nil {
		t.Fatalf("PromoteFiles: %v", err)
	}

	report := models.Report{Promotions: results}
	if got := report.PromoteCount(enums.PromotePromoted); got != 2 {
		t.Errorf("promoted count = %d, want 2", got)
	}

	mustExist(t, fsys, "/docs/report/report.pdf")
	mustExist(t, fsys, "/docs/notes/notes.txt")
	mustNotExist(t, fsys, "/docs/report.pdf")
}

func TestPromoteFilesExistingFolder(t *testing.T) {
	fsys := newTestFs(t, "/docs/report.pdf")
	if err := fsys.MkdirAll("/docs/report", 0o755); err != nil {
		t.Fatal(err)
	}

	results, err := PromoteFiles(fsys, "/docs", false)
	if err != nil {
		t.Fatalf("PromoteFiles: %v", err)
	}

	// The pre-existing "report" folder is itself listed, and skipped.
	report := models.Report{Promotions: results}
	if got := report.PromoteCount(enums.PromoteExistingFolder); got != 1 {
		t.Errorf("existing-folder count = %d, want 1", got)
	}
	if got := report.PromoteCount(enums.PromoteSkippedNotAFile); got != 1 {
		t.Errorf("not-a-file count = %d, want 1", got)
	}

	// The file still moves into the existing folder
	mustExist(t, fsys, "/docs/report/report.pdf")
	mustNotExist(t, fsys, "/docs/report.pdf")
}

func TestPromoteFilesSharedStem(t *testing.T) {
	fsys := newTestFs(t,
		"/docs/a.md",
		"/docs/a.txt",
	)

	results, err := PromoteFiles(fsys, "/docs", false)
	if err != nil {
		t.Fatalf("PromoteFiles: %v", err)
	}

	report := models.Report{Promotions: results}
	if got := report.PromoteCount(enums.PromotePromoted); got != 1 {
		t.Errorf("promoted count = %d, want 1", got)
	}
	if got := report.PromoteCount(enums.PromoteExistingFolder); got != 1 {
		t.Errorf("existing-folder count = %d, want 1", got)
	}

	mustExist(t, fsys, "/docs/a/a.md")
	mustExist(t, fsys, "/docs/a/a.txt")
}

func TestPromoteFilesNotRecursive(t *testing.T) {
	fsys := newTestFs(t, "/docs/sub/nested.txt")

	results, err := PromoteFiles(fsys, "/docs", false)
	if err != nil {
		t.Fatalf("PromoteFiles: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("result count = %d, want 1", len(results))
	}
	if results[0].Outcome != enums.PromoteSkippedNotAFile {
		t.Errorf("outcome = %v, want %v", results[0].Outcome, enums.PromoteSkippedNotAFile)
	}

	// Nested file left exactly where it was
	mustExist(t, fsys, "/docs/sub/nested.txt")
}

func TestPromoteFilesDryRun(t *testing.T) {
	fsys := newTestFs(t,
		"/docs/a.md",
		"/docs/a.txt",
		"/docs/b.txt",
	)

	results, err := PromoteFiles(fsys, "/docs", true)
	if err != nil {
		t.Fatalf("PromoteFiles: %v", err)
	}

	// Same classification as a live run, including the shared-stem pair
	report := models.Report{Promotions: results}
	if got := report.PromoteCount(enums.PromotePromoted); got != 2 {
		t.Errorf("promoted count = %d, want 2", got)
	}
	if got := report.PromoteCount(enums.PromoteExistingFolder); got != 1 {
		t.Errorf("existing-folder count = %d, want 1", got)
	}

	mustExist(t, fsys, "/docs/a.md")
	mustExist(t, fsys, "/docs/a.txt")
	mustExist(t, fsys, "/docs/b.txt")
	mustNotExist(t, fsys, "/docs/a")
	mustNotExist(t, fsys, "/docs/b")
}

func TestPromoteFilesExtensionlessFileFailsBothModes(t *testing.T) {
	// The stem of "README" is "README", so the promotion target collides
	// with the file itself. Live and dry runs must classify this the same.
	for _, dryRun := range []bool{false, true} {
		fsys := newTestFs(t, "/docs/README")

		results, err := PromoteFiles(fsys, "/docs", dryRun)
		if err != nil {
			t.Fatalf("PromoteFiles(dryRun=%v): %v", dryRun, err)
		}
		if len(results) != 1 {
			t.Fatalf("dryRun=%v: result count = %d, want 1", dryRun, len(results))
		}
		if results[0].Outcome != enums.PromoteFailed {
			t.Errorf("dryRun=%v: outcome = %v, want %v", dryRun, results[0].Outcome, enums.PromoteFailed)
		}
		if results[0].Err == nil {
			t.Errorf("dryRun=%v: failed result must carry an error", dryRun)
		}

		mustExist(t, fsys, "/docs/README")
	}
}

func TestPromoteFilesStemNamesExistingFile(t *testing.T) {
	for _, dryRun := range []bool{false, true} {
		fsys := newTestFs(t,
			"/docs/report",
			"/docs/report.pdf",
		)

		results, err := PromoteFiles(fsys, "/docs", dryRun)
		if err != nil {
			t.Fatalf("PromoteFiles(dryRun=%v): %v", dryRun, err)
		}

		report := models.Report{Promotions: results}
		if got := report.PromoteCount(enums.PromoteFailed); got != 2 {
			t.Errorf("dryRun=%v: failed count = %d, want 2 (both stems collide with a plain file)", dryRun, got)
		}

		mustExist(t, fsys, "/docs/report")
		mustExist(t, fsys, "/docs/report.pdf")
	}
}

func TestPromoteFilesFailureDoesNotAbort(t *testing.T) {
	base := newTestFs(t,
		"/docs/a.txt",
		"/docs/b.txt",
	)
	fsys := afero.NewReadOnlyFs(base)

	results, err := PromoteFiles(fsys, "/docs", false)
	if err != nil {
		t.Fatalf("PromoteFiles: %v", err)
	}

	// Every folder creation is refused, and every entry is still classified
	if len(results) != 2 {
		t.Fatalf("result count = %d, want 2", len(results))
	}
	for _, r := range results {
		if r.Outcome != enums.PromoteFailed {
			t.Errorf("outcome for %q = %v, want %v", r.Name, r.Outcome, enums.PromoteFailed)
		}
		if r.Err == nil {
			t.Errorf("failed result for %q must carry the underlying error", r.Name)
		}
	}

	mustExist(t, base, "/docs/a.txt")
	mustExist(t, base, "/docs/b.txt")
}

func TestPromoteFilesMissingDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if _, err := PromoteFiles(fsys, "/nope", false); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestRunRenameThenPromote(t *testing.T) {
	fsys := newTestFs(t, "/docs/DRAFT-report.pdf")

	cfg := &models.RenameConfig{Prefix: "DRAFT-"}
	report, err := Run(fsys, "/docs", cfg, true)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Rename happens first, so the folder is named after the new stem
	if got := report.RenameCount(enums.RenameRenamed); got != 1 {
		t.Errorf("renamed count = %d, want 1", got)
	}
	if got := report.PromoteCount(enums.PromotePromoted); got != 1 {
		t.Errorf("promoted count = %d, want 1", got)
	}
	if report.Failed() {
		t.Error("run should not report failure")
	}

	mustExist(t, fsys, "/docs/report/report.pdf")
}

func TestRunWithoutMkFoldersSkipsPromotion(t *testing.T) {
	fsys := newTestFs(t, "/docs/report.pdf")

	report, err := Run(fsys, "/docs", &models.RenameConfig{Clean: true}, false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Promotions) != 0 {
		t.Errorf("promotions = %d, want 0", len(report.Promotions))
	}
	mustExist(t, fsys, "/docs/report.pdf")
}
