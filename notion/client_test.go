package notion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("secret-token", WithBaseURL(server.URL))
}

func TestPagesGet(t *testing.T) {
	var gotPath, gotAuth, gotVersion string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		_, _ = w.Write([]byte(samplePageJSON))
	})

	page, err := client.Pages.Get(context.Background(), "59833787-2cf9-425f-b2bc-8519ce75ba73")
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}

	if gotPath != "/v1/pages/598337872cf9425fb2bc8519ce75ba73" {
		t.Errorf("path = %q, want normalized id", gotPath)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotVersion != defaultVersion {
		t.Errorf("Notion-Version = %q, want %q", gotVersion, defaultVersion)
	}
	if page.Title() != "Roadmap" {
		t.Errorf("Title = %q", page.Title())
	}
}

func TestPagesGetErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{
			name:   "not found",
			status: 404,
			body:   `{"code":"object_not_found","message":"no such page"}`,
			check:  IsNotFound,
		},
		{
			name:   "unauthorized",
			status: 401,
			body:   `{"code":"unauthorized","message":"bad token"}`,
			check:  IsUnauthorized,
		},
		{
			name:   "rate limited",
			status: 429,
			body:   `{"code":"rate_limited","message":"slow down"}`,
			check:  IsRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Pages.Get(context.Background(), "598337872cf9425fb2bc8519ce75ba73")
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Errorf("error = %v, classification check failed", err)
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Errorf("error = %v, want wrapped *APIError", err)
			}
		})
	}
}

func TestWithExecuteHook(t *testing.T) {
	var hookCalls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(samplePageJSON))
	}))
	t.Cleanup(server.Close)

	hook := func(req *http.Request) (*http.Response, error) {
		hookCalls++
		return http.DefaultClient.Do(req)
	}

	client := NewClient("unused", WithBaseURL(server.URL), WithExecute(hook))

	if _, err := client.Pages.Get(context.Background(), "598337872cf9425fb2bc8519ce75ba73"); err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if hookCalls != 1 {
		t.Errorf("hook called %d times, want exactly once", hookCalls)
	}
}

func TestExecuteFailureWrapsNetworkError(t *testing.T) {
	hook := func(req *http.Request) (*http.Response, error) {
		return nil, &timeoutError{}
	}

	client := NewClient("unused", WithBaseURL("http://unreachable.invalid"), WithExecute(hook))

	_, err := client.Pages.Get(context.Background(), "598337872cf9425fb2bc8519ce75ba73")
	if !IsNetworkError(err) {
		t.Errorf("error = %v, want ErrNetworkError", err)
	}
}

func TestBlocksAllChildrenFollowsCursors(t *testing.T) {
	pageOne := `{"object":"list","results":[` + sampleParagraphBlock("first") + `],"has_more":true,"next_cursor":"cur 1"}`
	pageTwo := `{"object":"list","results":[` + sampleParagraphBlock("second") + `],"has_more":false}`

	var cursors []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		cursor := r.URL.Query().Get("start_cursor")
		cursors = append(cursors, cursor)
		if cursor == "" {
			_, _ = w.Write([]byte(pageOne))
		} else {
			_, _ = w.Write([]byte(pageTwo))
		}
	})

	blocks, err := client.Blocks.AllChildren(context.Background(), "598337872cf9425fb2bc8519ce75ba73")
	if err != nil {
		t.Fatalf("AllChildren error = %v", err)
	}

	if len(blocks) != 2 {
		t.Fatalf("blocks len = %d, want 2", len(blocks))
	}
	if got := PlainText(blocks[0].RichTextContent()); got != "first" {
		t.Errorf("blocks[0] = %q", got)
	}
	if got := PlainText(blocks[1].RichTextContent()); got != "second" {
		t.Errorf("blocks[1] = %q", got)
	}
	if len(cursors) != 2 || cursors[1] != "cur 1" {
		t.Errorf("cursors = %v, want escaped cursor echoed back", cursors)
	}
}

func TestBlocksChildrenPropagatesMidPaginationError(t *testing.T) {
	pageOne := `{"object":"list","results":[` + sampleParagraphBlock("first") + `],"has_more":true,"next_cursor":"c1"}`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("start_cursor") == "" {
			_, _ = w.Write([]byte(pageOne))
			return
		}
		w.WriteHeader(429)
		_, _ = w.Write([]byte(`{"code":"rate_limited","message":"slow down"}`))
	})

	blocks, err := client.Blocks.AllChildren(context.Background(), "598337872cf9425fb2bc8519ce75ba73")
	if !IsRateLimited(err) {
		t.Errorf("error = %v, want ErrRateLimited", err)
	}
	if blocks != nil {
		t.Errorf("blocks = %v, want nil on mid-pagination failure", blocks)
	}
}

func TestDatabasesQuerySendsFilter(t *testing.T) {
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"object":"list","results":[],"has_more":false}`))
	})

	req := &DatabaseQueryRequest{
		Filter: &Filter{
			Property: "Status",
			Status:   &StatusFilter{Equals: "Done"},
		},
		Sorts:    []Sort{{Property: "Created", Direction: "descending"}},
		PageSize: 25,
	}

	if _, err := client.Databases.Query(context.Background(), "598337872cf9425fb2bc8519ce75ba73", req); err != nil {
		t.Fatalf("Query error = %v", err)
	}

	filter, ok := gotBody["filter"].(map[string]any)
	if !ok {
		t.Fatalf("request body = %v, want filter object", gotBody)
	}
	if filter["property"] != "Status" {
		t.Errorf("filter.property = %v", filter["property"])
	}
	if gotBody["page_size"] != float64(25) {
		t.Errorf("page_size = %v", gotBody["page_size"])
	}
}

func TestDatabasesQueryAll(t *testing.T) {
	makePage := func(id string, more bool, cursor string) string {
		page := `{
			"object": "page",
			"id": "` + id + `",
			"parent": {"type":"database_id","database_id":"db-1"},
			"created_time": "2023-01-01T00:00:00Z",
			"last_edited_time": "2023-01-01T00:00:00Z",
			"created_by": {"id":"u-1"},
			"last_edited_by": {"id":"u-1"},
			"properties": {},
			"archived": false
		}`
		out := `{"object":"list","results":[` + page + `],"has_more":`
		if more {
			out += `true,"next_cursor":"` + cursor + `"`
		} else {
			out += `false`
		}
		return out + `}`
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req DatabaseQueryRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.StartCursor == "" {
			_, _ = w.Write([]byte(makePage("p-1", true, "c1")))
		} else {
			_, _ = w.Write([]byte(makePage("p-2", false, "")))
		}
	})

	pages, err := client.Databases.QueryAll(context.Background(), "598337872cf9425fb2bc8519ce75ba73", nil)
	if err != nil {
		t.Fatalf("QueryAll error = %v", err)
	}
	if len(pages) != 2 || pages[0].ID != "p-1" || pages[1].ID != "p-2" {
		t.Errorf("pages = %+v, want p-1 then p-2", pages)
	}
}

func TestUsersList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/users" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"object":"list","results":[{"id":"u-1","name":"Ada","person":{"email":"ada@example.com"}}],"has_more":false}`))
	})

	response, err := client.Users.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List error = %v", err)
	}
	if len(response.Results) != 1 || response.Results[0].Person == nil {
		t.Fatalf("results = %+v", response.Results)
	}
	if response.Results[0].Person.Email != "ada@example.com" {
		t.Errorf("email = %q", response.Results[0].Person.Email)
	}
}

func TestSearchDo(t *testing.T) {
	var gotQuery string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req SearchRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotQuery = req.Query
		_, _ = w.Write([]byte(`{"object":"list","results":[` + samplePageJSON + `],"has_more":false}`))
	})

	response, err := client.Search.Do(context.Background(), &SearchRequest{Query: "roadmap"})
	if err != nil {
		t.Fatalf("Do error = %v", err)
	}
	if gotQuery != "roadmap" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(response.Results) != 1 || response.Results[0].Page == nil {
		t.Fatalf("results = %+v", response.Results)
	}
}

func sampleParagraphBlock(content string) string {
	return `{
		"object": "block",
		"id": "b-` + content + `",
		"parent": {"type":"page_id","page_id":"p-1"},
		"created_time": "2023-01-01T00:00:00Z",
		"last_edited_time": "2023-01-01T00:00:00Z",
		"created_by": {"id":"u-1"},
		"last_edited_by": {"id":"u-1"},
		"has_children": false,
		"archived": false,
		"type": "paragraph",
		"paragraph": {"rich_text":[{"type":"text","text":{"content":"` + content + `"},"plain_text":"` + content + `"}]}
	}`
}
