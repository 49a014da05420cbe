package audit

import (
	"context"
	"testing"
)

func TestRecordExportRequiresPool(t *testing.T) {
	var r *PGRecorder
	if err := r.RecordExport(context.Background(), Entry{Kind: "sales"}); err == nil {
		t.Fatal("expected error from nil recorder")
	}
	empty := &PGRecorder{}
	if err := empty.RecordExport(context.Background(), Entry{Kind: "sales"}); err == nil {
		t.Fatal("expected error without a pool")
	}
}
