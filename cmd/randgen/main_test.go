package main

import "testing"

func TestParseSeed(t *testing.T) {
	if s, err := parseSeed(0); err != nil || s != 0 {
		t.Errorf("parseSeed(0) = %d, %v; want 0, nil", s, err)
	}
	if s, err := parseSeed(4294967295); err != nil || s != 4294967295 {
		t.Errorf("parseSeed(4294967295) = %d, %v; want 4294967295, nil", s, err)
	}
	if _, err := parseSeed(4294967296); err == nil {
		t.Error("parseSeed(4294967296) accepted a seed above the 32-bit range")
	}
}
