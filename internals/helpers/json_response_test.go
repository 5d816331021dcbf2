package helper

import "testing"

func TestNormalizePaging(t *testing.T) {
	for _, tc := range []struct {
		name                    string
		page, perPage           int
		defPerPage, maxPerPage  int
		wantPage, wantPerPage   int
		wantOffset              int
	}{
		{"defaults", 0, 0, 20, 100, 1, 20, 0},
		{"negative page", -3, 10, 20, 100, 1, 10, 0},
		{"clamped to max", 2, 500, 20, 100, 2, 100, 100},
		{"normal", 3, 25, 20, 100, 3, 25, 50},
		{"no max", 2, 500, 20, 0, 2, 500, 500},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := NormalizePaging(tc.page, tc.perPage, tc.defPerPage, tc.maxPerPage)
			if p.Page != tc.wantPage || p.PerPage != tc.wantPerPage || p.Offset != tc.wantOffset {
				t.Errorf("got page=%d per_page=%d offset=%d, want %d/%d/%d",
					p.Page, p.PerPage, p.Offset, tc.wantPage, tc.wantPerPage, tc.wantOffset)
			}
			if p.Limit != p.PerPage {
				t.Errorf("Limit %d != PerPage %d", p.Limit, p.PerPage)
			}
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(Paging{Page: 2, PerPage: 10}, 35)
	if p.TotalPages != 4 {
		t.Errorf("TotalPages = %d, want 4", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("page 2 of 4 should have next and prev, got next=%v prev=%v", p.HasNext, p.HasPrev)
	}

	last := BuildPagination(Paging{Page: 4, PerPage: 10}, 35)
	if last.HasNext {
		t.Error("last page should not have next")
	}

	empty := BuildPagination(Paging{Page: 1, PerPage: 10}, 0)
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Errorf("empty result: %+v", empty)
	}
}
