package keyring

import (
	"testing"

	"github.com/zalando/go-keyring"
)

func TestConnectionStringRoundTrip(t *testing.T) {
	keyring.MockInit()

	if _, err := GetConnectionString(); err != ErrNotFound {
		t.Fatalf("empty keyring: got %v, want ErrNotFound", err)
	}

	connStr := "postgresql://user@localhost:5432/sparkcal"
	if err := SetConnectionString(connStr); err != nil {
		t.Fatalf("SetConnectionString: %v", err)
	}

	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString: %v", err)
	}
	if got != connStr {
		t.Errorf("got %q, want %q", got, connStr)
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString: %v", err)
	}
	if _, err := GetConnectionString(); err != ErrNotFound {
		t.Errorf("after delete: got %v, want ErrNotFound", err)
	}
}

func TestSetEmptyConnectionString(t *testing.T) {
	keyring.MockInit()

	if err := SetConnectionString(""); err == nil {
		t.Error("empty connection string should be rejected")
	}
}
