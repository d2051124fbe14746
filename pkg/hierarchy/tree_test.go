package hierarchy

import (
	"bytes"
	"math/rand"
	"testing"

	invErrors "github.com/stackwise/invctl/pkg/errors"
)

func TestBuild_SingleRootWithChildren(t *testing.T) {
	tree, err := Build([]Item{
		{Name: "prod"},
		{Name: "web", Parent: "prod"},
		{Name: "db", Parent: "prod"},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(tree.Roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(tree.Roots))
	}
	root := tree.Roots["prod"]
	if root == nil {
		t.Fatal("root prod not found")
	}
	if len(root.Children) != 2 || root.Children["web"] == nil || root.Children["db"] == nil {
		t.Errorf("children = %v, want web and db", root.Children)
	}
}

func TestBuild_OrderIndependent(t *testing.T) {
	items := []Item{
		{Name: "root"},
		{Name: "a", Parent: "root"},
		{Name: "b", Parent: "a"},
		{Name: "c", Parent: "b"},
		{Name: "d", Parent: "a"},
	}

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		shuffled := append([]Item(nil), items...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		tree, err := Build(shuffled)
		if err != nil {
			t.Fatalf("trial %d: Build failed: %v", trial, err)
		}
		if tree.Len() != len(items) {
			t.Fatalf("trial %d: placed %d nodes, want %d", trial, tree.Len(), len(items))
		}

		var buf bytes.Buffer
		if err := tree.Render(&buf); err != nil {
			t.Fatalf("trial %d: Render failed: %v", trial, err)
		}
		want := "root\n  a\n    b\n      c\n    d\n"
		if buf.String() != want {
			t.Errorf("trial %d: rendered\n%s\nwant\n%s", trial, buf.String(), want)
		}
	}
}

func TestBuild_SelfParentIsRoot(t *testing.T) {
	tree, err := Build([]Item{
		{Name: "top", Parent: "top"},
		{Name: "leaf", Parent: "top"},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if tree.Roots["top"] == nil {
		t.Fatal("self-parented record should be a root")
	}
	if tree.Roots["top"].Children["leaf"] == nil {
		t.Error("leaf not attached under top")
	}
}

func TestBuild_DanglingParent(t *testing.T) {
	_, err := Build([]Item{
		{Name: "prod"},
		{Name: "orphan", Parent: "missing"},
	})
	if err == nil {
		t.Fatal("Build succeeded, want dangling parent error")
	}
	if invErrors.CodeOf(err) != invErrors.ErrCodeDanglingParent {
		t.Errorf("code = %q, want dangling parent", invErrors.CodeOf(err))
	}
}

func TestBuild_DanglingCycleDetected(t *testing.T) {
	// Two records parenting each other can never be placed.
	_, err := Build([]Item{
		{Name: "a", Parent: "b"},
		{Name: "b", Parent: "a"},
	})
	if err == nil {
		t.Fatal("Build succeeded, want error")
	}
	if invErrors.CodeOf(err) != invErrors.ErrCodeDanglingParent {
		t.Errorf("code = %q, want dangling parent", invErrors.CodeOf(err))
	}
}

func TestBuild_Empty(t *testing.T) {
	tree, err := Build(nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if tree.Len() != 0 || len(tree.Roots) != 0 {
		t.Errorf("empty input produced nodes: %d", tree.Len())
	}
}

func TestFind(t *testing.T) {
	tree, err := Build([]Item{
		{Name: "prod"},
		{Name: "web", Parent: "prod"},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if n := tree.Find("web"); n == nil || n.Name != "web" {
		t.Errorf("Find(web) = %v", n)
	}
	if n := tree.Find("nope"); n != nil {
		t.Errorf("Find(nope) = %v, want nil", n)
	}
}
