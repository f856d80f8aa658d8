package commands

import (
	"testing"

	"github.com/valksor/go-notion/internal/config"
)

func resetQueryFlags() {
	queryFilterProp = "Status"
	queryStatus = ""
	querySelect = ""
	querySort = ""
	queryDescending = false
	queryLimit = 0
	cfg = config.NewDefault()
}

func TestBuildQueryRequestEmpty(t *testing.T) {
	resetQueryFlags()
	cfg.Query.PageSize = 0

	req := buildQueryRequest()
	if req.Filter != nil {
		t.Errorf("Filter = %+v, want nil", req.Filter)
	}
	if req.Sorts != nil {
		t.Errorf("Sorts = %v, want nil", req.Sorts)
	}
	if req.PageSize != 0 {
		t.Errorf("PageSize = %d, want 0", req.PageSize)
	}
}

func TestBuildQueryRequestSingleFilter(t *testing.T) {
	resetQueryFlags()
	queryStatus = "Done"

	req := buildQueryRequest()
	if req.Filter == nil || req.Filter.Status == nil {
		t.Fatalf("Filter = %+v, want status filter", req.Filter)
	}
	if req.Filter.Property != "Status" {
		t.Errorf("Property = %q", req.Filter.Property)
	}
	if req.Filter.Status.Equals != "Done" {
		t.Errorf("Status.Equals = %q", req.Filter.Status.Equals)
	}
	if len(req.Filter.And) != 0 {
		t.Errorf("single filter should not produce an and group")
	}
}

func TestBuildQueryRequestCombinesFilters(t *testing.T) {
	resetQueryFlags()
	queryStatus = "Done"
	querySelect = "Bug"
	queryFilterProp = "Type"

	req := buildQueryRequest()
	if req.Filter == nil || len(req.Filter.And) != 2 {
		t.Fatalf("Filter = %+v, want and group of 2", req.Filter)
	}
	if req.Filter.And[0].Status == nil || req.Filter.And[1].Select == nil {
		t.Errorf("and group = %+v", req.Filter.And)
	}
}

func TestBuildQueryRequestSortAndLimit(t *testing.T) {
	resetQueryFlags()
	querySort = "Created"
	queryDescending = true
	queryLimit = 10

	req := buildQueryRequest()
	if len(req.Sorts) != 1 {
		t.Fatalf("Sorts = %v", req.Sorts)
	}
	if req.Sorts[0].Property != "Created" || req.Sorts[0].Direction != "descending" {
		t.Errorf("Sorts[0] = %+v", req.Sorts[0])
	}
	if req.PageSize != 10 {
		t.Errorf("PageSize = %d, want explicit limit", req.PageSize)
	}
}

func TestBuildQueryRequestConfigPageSize(t *testing.T) {
	resetQueryFlags()
	cfg.Query.PageSize = 42

	req := buildQueryRequest()
	if req.PageSize != 42 {
		t.Errorf("PageSize = %d, want config default", req.PageSize)
	}
}
