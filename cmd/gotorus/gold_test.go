package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func checkGold(t *testing.T, goldFile string, got string) {
	t.Helper()
	want, err := os.ReadFile(filepath.Join("testdata", "gold", goldFile))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Fatalf("%s (-want +got):\n%s", goldFile, diff)
	}
}

func TestGold(t *testing.T) {
	dir, err := os.MkdirTemp("", "gotorus-gold")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	catPath := filepath.Join(dir, "catalog")
	input := filepath.Join("testdata", "graphs.txt")

	out := strings.Builder{}
	if code := run([]string{"--catalog", catPath, "-j", "2", "classify", input}, nil, &out); code != 0 {
		t.Fatalf("classify exited with %d", code)
	}
	checkGold(t, "classify.txt", out.String())

	out.Reset()
	if code := run([]string{"--catalog", catPath, "--min", "5", "list"}, nil, &out); code != 0 {
		t.Fatalf("list exited with %d", code)
	}
	checkGold(t, "list.txt", out.String())
}

func TestStdin(t *testing.T) {
	out := strings.Builder{}
	if code := run([]string{"classify"}, strings.NewReader("# K3,3\n6 001110111111000\n"), &out); code != 0 {
		t.Fatalf("classify exited with %d", code)
	}
	if got, want := out.String(), ",000001,stdin:2,toroidal,EFz_\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBadUsage(t *testing.T) {
	out := strings.Builder{}
	for _, args := range [][]string{
		nil,
		{"embed"},
		{"list"},
	} {
		if code := run(args, nil, &out); code == 0 {
			t.Errorf("run(%q) should fail", args)
		}
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
}
