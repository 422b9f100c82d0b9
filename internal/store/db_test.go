package store

import (
	"context"
	"testing"
)

func TestNilDBIsSafe(t *testing.T) {
	var d *DB
	if d.Healthy(context.Background()) {
		t.Error("nil DB must report unhealthy")
	}
	if err := d.Close(); err != nil {
		t.Errorf("Close on nil DB = %v", err)
	}
}
