package transformations

import (
	"testing"

	"mediorg/internal/domain/enums"
	"mediorg/internal/models"
)

func TestTransformName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		cfg  models.RenameConfig
		want string
	}{
		{
			name: "prefix strip with cleanup",
			in:   "DRAFT-Movie.Name.2020.x264-GROUP.mkv",
			cfg:  models.RenameConfig{Prefix: "DRAFT-", Clean: true},
			want: "Movie Name 2020 GROUP.mkv",
		},
		{
			name: "prefix stripped exactly once",
			in:   "old-old-file.txt",
			cfg:  models.RenameConfig{Prefix: "old-"},
			want: "old-file.txt",
		},
		{
			name: "prefix not present leaves name alone",
			in:   "file.txt",
			cfg:  models.RenameConfig{Prefix: "old-"},
			want: "file.txt",
		},
		{
			name: "prefix match is case sensitive",
			in:   "Draft-file.txt",
			cfg:  models.RenameConfig{Prefix: "DRAFT-"},
			want: "Draft-file.txt",
		},
		{
			name: "postfix stripped from stem not extension",
			in:   "recording_final.wav",
			cfg:  models.RenameConfig{Postfix: "_final"},
			want: "recording.wav",
		},
		{
			name: "substring removed everywhere",
			in:   "episode_01_v2.mp4",
			cfg:  models.RenameConfig{RemoveSubstring: "_v2"},
			want: "episode_01.mp4",
		},
		{
			name: "substring removal repeats",
			in:   "a (copy) (copy).txt",
			cfg:  models.RenameConfig{RemoveSubstring: " (copy)"},
			want: "a.txt",
		},
		{
			name: "clean collapses separator runs",
			in:   "My--Show__S01..E01.mkv",
			cfg:  models.RenameConfig{Clean: true},
			want: "My Show S01 E01.mkv",
		},
		{
			name: "clean removes release tags case insensitively",
			in:   "Show.S01E01.1080p.HEVC.WEBRip.mkv",
			cfg:  models.RenameConfig{Clean: true},
			want: "Show S01E01 1080p.mkv",
		},
		{
			name: "clean strips curly braces",
			in:   "Movie {Extended} Cut.avi",
			cfg:  models.RenameConfig{Clean: true},
			want: "Movie Extended Cut.avi",
		},
		{
			name: "stages chain prefix then remove then clean",
			in:   "web-dl_Show.Name_final.ep01.mkv",
			cfg:  models.RenameConfig{Prefix: "web-dl_", RemoveSubstring: "_final", Clean: true},
			want: "Show Name ep01.mkv",
		},
		{
			name: "prefix consuming whole stem leaves only extension",
			in:   "DRAFT-.bashrc",
			cfg:  models.RenameConfig{Prefix: "DRAFT-"},
			want: ".bashrc",
		},
		{
			name: "only last extension is protected",
			in:   "archive.tar.gz",
			cfg:  models.RenameConfig{RemoveSubstring: ".tar"},
			want: "archive.gz",
		},
		{
			name: "extension never cleaned",
			in:   "some_file.multi_part",
			cfg:  models.RenameConfig{Clean: true},
			want: "some file.multi_part",
		},
		{
			name: "spaces style replaces underscores",
			in:   "my_show_ep1.mkv",
			cfg:  models.RenameConfig{Style: enums.RenamingSpaces},
			want: "my show ep1.mkv",
		},
		{
			name: "underscores style replaces spaces",
			in:   "my show ep1.mkv",
			cfg:  models.RenameConfig{Style: enums.RenamingUnderscores},
			want: "my_show_ep1.mkv",
		},
		{
			name: "title style capitalizes words",
			in:   "movie name.mkv",
			cfg:  models.RenameConfig{Style: enums.RenamingTitleCase},
			want: "Movie Name.mkv",
		},
		{
			name: "date tag with real date is stripped",
			in:   "[2024-01-31] Show Episode.mkv",
			cfg:  models.RenameConfig{StripDateTags: true},
			want: "Show Episode.mkv",
		},
		{
			name: "date shaped tag with impossible date survives",
			in:   "[2024-99-99] Show Episode.mkv",
			cfg:  models.RenameConfig{StripDateTags: true},
			want: "[2024-99-99] Show Episode.mkv",
		},
		{
			name: "leading dot run is stem not extension",
			in:   "..bashrc",
			cfg:  models.RenameConfig{Clean: true},
			want: "bashrc",
		},
		{
			name: "no operations is a no-op",
			in:   "Anything Goes Here.mp3",
			cfg:  models.RenameConfig{},
			want: "Anything Goes Here.mp3",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TransformName(tc.in, &tc.cfg)
			if got != tc.want {
				t.Errorf("TransformName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTransformNameIdempotent(t *testing.T) {
	cfg := &models.RenameConfig{Prefix: "DRAFT-", Clean: true, StripDateTags: true}
	inputs := []string{
		"DRAFT-Movie.Name.2020.x264-GROUP.mkv",
		"[2024-01-31] Some.Show.HEVC.mkv",
		"already clean name.mkv",
	}
	for _, in := range inputs {
		once := TransformName(in, cfg)
		twice := TransformName(once, cfg)
		if once != twice {
			t.Errorf("second application of TransformName(%q) changed %q to %q", in, once, twice)
		}
	}
}

func TestTransformNameNoOpReturnsSameString(t *testing.T) {
	in := "unchanged.mkv"
	got := TransformName(in, &models.RenameConfig{Clean: true})
	if got != in {
		t.Errorf("TransformName(%q) = %q, want input unchanged", in, got)
	}
}

func TestSplitExt(t *testing.T) {
	cases := []struct {
		in, stem, ext string
	}{
		{"file.txt", "file", ".txt"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"noext", "noext", ""},
		{".bashrc", ".bashrc", ""},
		{"..bashrc", "..bashrc", ""},
		{"...", "...", ""},
		{".a.b", ".a", ".b"},
		{"trailing.", "trailing", "."},
	}
	for _, tc := range cases {
		stem, ext := SplitExt(tc.in)
		if stem != tc.stem || ext != tc.ext {
			t.Errorf("SplitExt(%q) = (%q, %q), want (%q, %q)", tc.in, stem, ext, tc.stem, tc.ext)
		}
	}
}
