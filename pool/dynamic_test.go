package pool

import "testing"

func TestDynamic_ReusesPutValues(t *testing.T) {
	type widget struct{ id int }
	var created int
	p := NewDynamic(func() interface{} {
		created++
		return &widget{id: created}
	})

	w1 := p.Get().(*widget)
	p.Put(w1)
	w2 := p.Get().(*widget)

	if w2 != w1 {
		t.Fatalf("expected sync.Pool to hand back the put value, got a new one")
	}
}

func TestDynamic_CreatesWhenEmpty(t *testing.T) {
	p := NewDynamic(func() interface{} { return new(int) })
	if p.Get() == nil {
		t.Fatalf("expected a freshly created value from an empty pool")
	}
}
