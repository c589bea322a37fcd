package cfb

import (
	"bytes"
	"errors"
	"testing"
)

func TestOpenRejectsNonCompoundBytes(t *testing.T) {
	noise := bytes.Repeat([]byte{0x41, 0x00, 0xFF, 0x10}, 64)
	_, err := Open(noise)
	if !errors.Is(err, ErrNotCompound) {
		t.Errorf("Open(noise) error = %v, want ErrNotCompound", err)
	}
}

func TestOpenRejectsEmptyInput(t *testing.T) {
	_, err := Open(nil)
	if !errors.Is(err, ErrNotCompound) {
		t.Errorf("Open(nil) error = %v, want ErrNotCompound", err)
	}
}

func TestNilContainerFindAndHas(t *testing.T) {
	var c *Container
	if c.Find("anything") != nil {
		t.Error("Find on nil container should return nil")
	}
	if c.Has("anything") {
		t.Error("Has on nil container should return false")
	}
}
