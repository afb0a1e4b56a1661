package utils

import "testing"

func TestFilenameFromContentDisposition(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", ""},
		{"quoted", `attachment; filename="invoice.pdf"`, "invoice.pdf"},
		{"unquoted", `attachment; filename=results.zip`, "results.zip"},
		{"rfc5987", `attachment; filename*=UTF-8''r%C3%A9sum%C3%A9.pdf`, "résumé.pdf"},
		{"no filename", `attachment`, ""},
		{"strips directories", `attachment; filename="../../etc/passwd"`, "passwd"},
		{"windows path", `attachment; filename="C:\\tmp\\a.xlsx"`, "a.xlsx"},
		{"malformed falls back", `attachment; filename="lede 1.zip"; =broken`, "lede 1.zip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilenameFromContentDisposition(tt.header)
			if got != tt.want {
				t.Errorf("FilenameFromContentDisposition(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestJoinFileIDs(t *testing.T) {
	if got := JoinFileIDs([]int64{1, 2, 3}); got != "1,2,3" {
		t.Errorf("expected 1,2,3, got %q", got)
	}
	if got := JoinFileIDs(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	if got := JoinFileIDsForName([]int64{7, 8}); got != "7_8" {
		t.Errorf("expected 7_8, got %q", got)
	}
}
