package fileio

import "testing"

func TestFormatFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"structures.xyz", ".xyz"},
		{"data/my_grad.dat", ".dat"},
		{"dataset.XYZ", ".xyz"},
		{"no-extension", ""},
	}
	for _, tc := range cases {
		if got := FormatFromPath(tc.path); got != tc.want {
			t.Fatalf("FormatFromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestCheckFileExtension(t *testing.T) {
	if got := CheckFileExtension("model.ckpt", ".ckpt"); got != "model.ckpt" {
		t.Fatalf("expected unchanged name, got %q", got)
	}
	if got := CheckFileExtension("model", ".ckpt"); got != "model.ckpt" {
		t.Fatalf("expected extension appended, got %q", got)
	}
}
