package inmemory

import "testing"

func TestRecorder_CountsPerOp(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess("move")
	r.RecordSuccess("move")
	r.RecordSuccess("attack")
	r.RecordFailure("move")

	s := r.Snapshot()
	if s.Total != 4 || s.Success != 3 || s.Failure != 1 {
		t.Fatalf("snapshot = %+v", s)
	}
	if s.ByOp["move"] != 2 || s.ByOp["attack"] != 1 || s.FailureBy["move"] != 1 {
		t.Fatalf("per-op = %+v", s)
	}
}

func TestRecorder_SnapshotIsDetached(t *testing.T) {
	r := NewRecorder()
	r.RecordSuccess("move")
	s := r.Snapshot()
	s.ByOp["move"] = 99

	if r.Snapshot().ByOp["move"] != 1 {
		t.Fatal("snapshot shares internal map")
	}
}
