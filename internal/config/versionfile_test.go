package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindSpecifier(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "project", "src", "pkg")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	writeFile(t, root, "project/.nvmrc", "# pinned\n\nlts/boron\n")

	spec, path, err := FindSpecifier(nested)
	if err != nil {
		t.Fatalf("FindSpecifier() error: %v", err)
	}
	if spec != "lts/boron" {
		t.Errorf("spec = %q, want lts/boron", spec)
	}
	if want := filepath.Join(root, "project", ".nvmrc"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestFindSpecifierPrefersNearest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".nvmrc", "0.10\n")
	writeFile(t, root, "app/.node-version", "  v0.12.0  \n")

	spec, _, err := FindSpecifier(filepath.Join(root, "app"))
	if err != nil {
		t.Fatal(err)
	}
	if spec != "v0.12.0" {
		t.Errorf("spec = %q, want v0.12.0", spec)
	}
}

func TestFindSpecifierNvmrcBeforeNodeVersion(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".node-version", "0.12\n")
	writeFile(t, root, ".nvmrc", "0.10\n")

	spec, _, err := FindSpecifier(root)
	if err != nil {
		t.Fatal(err)
	}
	if spec != "0.10" {
		t.Errorf("spec = %q, want 0.10", spec)
	}
}

func TestFindSpecifierEmptyFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".nvmrc", "\n# nothing\n")

	if _, _, err := FindSpecifier(root); err == nil {
		t.Error("expected error for empty version file")
	}
}

func TestFindSpecifierMissing(t *testing.T) {
	// Temp dirs may sit below a directory carrying its own .nvmrc; only assert
	// the sentinel when the walk really reaches the root empty-handed.
	root := t.TempDir()
	_, path, err := FindSpecifier(root)
	if path != "" {
		t.Skipf("found unrelated version file %s", path)
	}
	if !errors.Is(err, ErrNoVersionFile) {
		t.Errorf("FindSpecifier() error = %v, want ErrNoVersionFile", err)
	}
}
