package partition

import "testing"

func TestExtendIfNew(t *testing.T) {
	p := Initial(0)
	p = ExtendIfNew(p, 1)
	if Key(p) != "0|1" {
		t.Fatalf("Key = %q; want %q", Key(p), "0|1")
	}
	// extending with an already-present vertex is a no-op
	p2 := ExtendIfNew(p, 1)
	if Key(p2) != Key(p) {
		t.Fatalf("ExtendIfNew mutated an existing member: %q vs %q", Key(p2), Key(p))
	}
}

func TestMerge_NewVertices(t *testing.T) {
	p := Initial(0)
	p = Merge(p, 0, 1)
	if !IsFullySpanning(p, 2) {
		t.Fatalf("partition %v should span {0,1}", p)
	}
}

func TestMerge_JoinsExistingSubsets(t *testing.T) {
	p := Partition{{0}, {1}, {2}}
	p = Merge(p, 0, 1)
	if len(p) != 2 {
		t.Fatalf("len(p) = %d; want 2", len(p))
	}
	if Key(p) != "0,1|2" {
		t.Fatalf("Key = %q; want %q", Key(p), "0,1|2")
	}
}

func TestPrune_DropsFinalizedComponent(t *testing.T) {
	p := Partition{{0, 1}, {2, 3}}
	pruned, dropped := Prune(p, 2)
	if !dropped {
		t.Fatal("expected the {0,1} subset to be dropped")
	}
	if Key(pruned) != "2,3" {
		t.Fatalf("Key = %q; want %q", Key(pruned), "2,3")
	}
}

func TestPrune_NoneDropped(t *testing.T) {
	p := Partition{{0, 1}, {2, 3}}
	pruned, dropped := Prune(p, 0)
	if dropped {
		t.Fatal("did not expect any subset to be dropped")
	}
	if Key(pruned) != Key(p) {
		t.Fatalf("Key = %q; want %q", Key(pruned), Key(p))
	}
}

func TestIsFullySpanning(t *testing.T) {
	if !IsFullySpanning(Partition{{0, 1, 2}}, 3) {
		t.Fatal("expected {0,1,2} to span n=3")
	}
	if IsFullySpanning(Partition{{0, 1}, {2}}, 3) {
		t.Fatal("did not expect two subsets to count as spanning")
	}
}
