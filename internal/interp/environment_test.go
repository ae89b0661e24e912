package interp

import "testing"

func TestDefineThenGetInSameScope(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", 1.0)

	v, ok := env.Get("x")
	if !ok || v != 1.0 {
		t.Fatalf("Get(x) = %v, %v; want 1.0, true", v, ok)
	}
}

func TestGetWalksOuterChain(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", "outer value")
	inner := NewEnclosedEnvironment(outer)

	v, ok := inner.Get("x")
	if !ok || v != "outer value" {
		t.Fatalf("Get(x) = %v, %v; want %q, true", v, ok, "outer value")
	}
}

func TestDefineShadowsOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", "outer")
	inner := NewEnclosedEnvironment(outer)
	inner.Define("x", "inner")

	if v, _ := inner.Get("x"); v != "inner" {
		t.Fatalf("shadowed Get(x) = %v; want inner", v)
	}
	if v, _ := outer.Get("x"); v != "outer" {
		t.Fatalf("outer Get(x) = %v; want unaffected outer", v)
	}
}

func TestAssignFindsExistingBindingInOuterScope(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", 1.0)
	inner := NewEnclosedEnvironment(outer)

	if ok := inner.Assign("x", 2.0); !ok {
		t.Fatal("Assign(x) = false; want true")
	}
	if v, _ := outer.Get("x"); v != 2.0 {
		t.Fatalf("outer Get(x) = %v; want 2.0", v)
	}
}

func TestAssignToUndefinedNameFails(t *testing.T) {
	env := NewEnvironment()
	if ok := env.Assign("nope", 1.0); ok {
		t.Fatal("Assign(nope) = true; want false, no implicit global")
	}
}

func TestGetOnUndefinedNameFails(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.Get("nope"); ok {
		t.Fatal("Get(nope) = true; want false")
	}
}

func TestGetAtAndAssignAtAddressSpecificAncestor(t *testing.T) {
	global := NewEnvironment()
	global.Define("x", "global")
	middle := NewEnclosedEnvironment(global)
	middle.Define("x", "middle")
	inner := NewEnclosedEnvironment(middle)

	if v := inner.GetAt(1, "x"); v != "middle" {
		t.Fatalf("GetAt(1, x) = %v; want middle", v)
	}
	if v := inner.GetAt(2, "x"); v != "global" {
		t.Fatalf("GetAt(2, x) = %v; want global", v)
	}

	inner.AssignAt(2, "x", "rebound")
	if v, _ := global.Get("x"); v != "rebound" {
		t.Fatalf("global Get(x) after AssignAt(2) = %v; want rebound", v)
	}
	if v, _ := middle.Get("x"); v != "middle" {
		t.Fatalf("AssignAt(2) leaked into middle scope: %v", v)
	}
}

func TestAncestorZeroIsSelf(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", 1.0)
	if v := env.GetAt(0, "x"); v != 1.0 {
		t.Fatalf("GetAt(0, x) = %v; want 1.0", v)
	}
}
