package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "resume.pdf", want: "resume.pdf"},
		{in: " dir/cv.docx ", want: "cv.docx"},
		{in: `c:\x\cv.pdf`, want: "cv.pdf"},
		{in: "John..Doe.docx", want: "John_Doe.docx"},
		{in: "cv_v2..final.pdf", want: "cv_v2_final.pdf"},
		{in: "../etc/passwd", want: "passwd"},
		{in: "..", want: "_"},
		{in: "nul\x00.pdf", want: "nul.pdf"},
		{in: "   ", want: FallbackFileName},
		{in: "/", want: FallbackFileName},
	}
	for _, tt := range tests {
		if got := SanitizeFileName(tt.in); got != tt.want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtension(t *testing.T) {
	cases := map[string]string{
		"Resume.PDF":     "pdf",
		"cv.final.docx":  "docx",
		"notes":          "",
		" spaced.Docx  ": "docx",
		"archive.tar.gz": "gz",
	}
	for in, want := range cases {
		if got := Extension(in); got != want {
			t.Fatalf("Extension(%q) = %q, want %q", in, got, want)
		}
	}
}
