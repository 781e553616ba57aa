package pagination

import "testing"

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := Paginate(items, 1, 2)
	if len(page.Items) != 2 || page.Items[0] != 1 {
		t.Fatalf("page 1 items = %v", page.Items)
	}
	if page.HasPrev || !page.HasNext {
		t.Fatalf("page 1 nav = prev %v next %v", page.HasPrev, page.HasNext)
	}
	if page.Total != 5 {
		t.Fatalf("total = %d, want 5", page.Total)
	}

	page = Paginate(items, 3, 2)
	if len(page.Items) != 1 || page.Items[0] != 5 {
		t.Fatalf("page 3 items = %v", page.Items)
	}
	if !page.HasPrev || page.HasNext {
		t.Fatalf("page 3 nav = prev %v next %v", page.HasPrev, page.HasNext)
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	items := []string{"a", "b"}

	page := Paginate(items, 10, 2)
	if len(page.Items) != 0 {
		t.Fatalf("out-of-range items = %v, want empty", page.Items)
	}
	if !page.HasPrev || page.HasNext {
		t.Fatalf("out-of-range nav = prev %v next %v", page.HasPrev, page.HasNext)
	}
}

func TestPaginateDefaults(t *testing.T) {
	items := make([]int, 25)

	page := Paginate(items, 0, 0)
	if page.Page != 1 || page.PageSize != 10 {
		t.Fatalf("defaults = page %d size %d, want 1/10", page.Page, page.PageSize)
	}
	if len(page.Items) != 10 {
		t.Fatalf("default items = %d, want 10", len(page.Items))
	}
}
