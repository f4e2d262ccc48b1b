package sparse

import "testing"

func TestSetAndValue(t *testing.T) {
	m := NewIntMatrix(3, 3, DefaultNullValue)
	m.Set(1, 2, 7)
	if v := m.Value(1, 2); v != 7 {
		t.Fatalf("Value(1,2) = %d, want 7", v)
	}
	if v := m.Value(0, 0); v != DefaultNullValue {
		t.Fatalf("Value(0,0) = %d, want null value", v)
	}
}

func TestTrySetAcceptsSameValueTwice(t *testing.T) {
	m := NewIntMatrix(2, 2, DefaultNullValue)
	if _, ok := m.TrySet(0, 0, 5); !ok {
		t.Fatalf("first TrySet should succeed")
	}
	if _, ok := m.TrySet(0, 0, 5); !ok {
		t.Fatalf("re-setting the same value should still succeed")
	}
}

func TestTrySetRejectsConflict(t *testing.T) {
	m := NewIntMatrix(2, 2, DefaultNullValue)
	m.TrySet(0, 0, 5)
	prev, ok := m.TrySet(0, 0, 6)
	if ok {
		t.Fatalf("conflicting TrySet should fail")
	}
	if prev != 5 {
		t.Fatalf("previous value = %d, want 5", prev)
	}
	if v := m.Value(0, 0); v != 5 {
		t.Fatalf("Value(0,0) = %d, want surviving value 5", v)
	}
}

func TestValueCount(t *testing.T) {
	m := NewIntMatrix(5, 5, DefaultNullValue)
	m.Set(0, 0, 1)
	m.Set(4, 4, 2)
	if m.ValueCount() != 2 {
		t.Fatalf("ValueCount() = %d, want 2", m.ValueCount())
	}
}
