package secretsweep

import (
	"reflect"
	"testing"
)

func TestSplitGlobs(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"*.log", []string{"*.log"}},
		{"*.log, dist/** ,", []string{"*.log", "dist/**"}},
	}
	for _, c := range cases {
		if got := splitGlobs(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("splitGlobs(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPickPrecedence(t *testing.T) {
	local := "from-local"
	global := "from-global"

	if got := pickString("cli", true, &local, &global); got != "cli" {
		t.Fatalf("changed flag must win, got %q", got)
	}
	if got := pickString("default", false, &local, &global); got != local {
		t.Fatalf("local config must beat global, got %q", got)
	}
	if got := pickString("default", false, nil, &global); got != global {
		t.Fatalf("global config must beat default, got %q", got)
	}
	if got := pickString("default", false, nil, nil); got != "default" {
		t.Fatalf("flag default must be the fallback, got %q", got)
	}

	n := int64(42)
	if got := pickInt64(7, false, &n, nil); got != 42 {
		t.Fatalf("pickInt64 = %d", got)
	}
	b := true
	if got := pickBool(false, false, nil, &b); got != true {
		t.Fatalf("pickBool = %v", got)
	}
	d := 3
	if got := pickInt(0, false, &d, nil); got != 3 {
		t.Fatalf("pickInt = %d", got)
	}
}
