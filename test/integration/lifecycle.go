//go:build integration

package integration

// Test environment setup and server lifecycle management.
//
// The suite starts the blog server in-process against a dedicated test
// database (MONGODB_TEST_URI / MONGODB_TEST_DATABASE, defaulting to a local
// mongod and "blog_test") and runs HTTP requests against it. The server is
// started once for the whole suite; each test case seeds a fresh batch of
// posts and tears the collection down afterwards so no test observes state
// left by a prior one.
//
//	go test -tags=integration ./test/integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/blogforge/blog-service/internal/database"
	"github.com/blogforge/blog-service/internal/post"
	"github.com/blogforge/blog-service/internal/post/fixture"
	"github.com/blogforge/blog-service/internal/post/handler"
	"github.com/blogforge/blog-service/internal/post/repository"
	"github.com/blogforge/blog-service/internal/post/service"
)

const seedBatchSize = 10

// Lifecycle owns the store and server handles for the whole suite. Handles
// are explicit (passed around, not package globals mutated by tests) so
// setup and teardown stay attributable.
type Lifecycle struct {
	client  *mongo.Client
	dbName  string
	col     *mongo.Collection
	repo    *repository.MongoRepo
	server  *httptest.Server
	gen     fixture.Generator
	baseURL string
}

// newLifecycle connects to the test store and starts the in-process server.
// Called once from TestMain.
func newLifecycle(ctx context.Context) (*Lifecycle, error) {
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_TEST_DATABASE")
	if dbName == "" {
		dbName = "blog_test"
	}

	client, err := database.Connect(ctx, uri, 10*time.Second)
	if err != nil {
		return nil, err
	}

	col := client.Database(dbName).Collection("posts")
	repo := repository.NewMongoRepo(col)

	gin.SetMode(gin.TestMode)
	g := gin.New()
	handler.RegisterPostRoutes(g, service.New(repo))
	srv := httptest.NewServer(g)

	return &Lifecycle{
		client:  client,
		dbName:  dbName,
		col:     col,
		repo:    repo,
		server:  srv,
		gen:     fixture.NewGenerator(),
		baseURL: srv.URL,
	}, nil
}

// Seed inserts a batch of synthetic posts directly through the store,
// bypassing the HTTP layer, and returns the stored records.
func (l *Lifecycle) Seed(t *testing.T, n int) []*post.BlogPost {
	t.Helper()
	batch := l.gen.Batch(n)
	if err := l.repo.InsertMany(context.Background(), batch); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return batch
}

// Teardown removes every stored post. Registered via t.Cleanup in each test
// so a failing case cannot leak documents into the next one.
func (l *Lifecycle) Teardown(t *testing.T) {
	t.Helper()
	if err := l.repo.DeleteAll(context.Background()); err != nil {
		t.Fatalf("teardown failed: %v", err)
	}
}

// Close stops the server and drops the test database. Called once after the
// suite.
func (l *Lifecycle) Close(ctx context.Context) {
	l.server.Close()
	_ = l.client.Database(l.dbName).Drop(ctx)
	_ = l.client.Disconnect(ctx)
}

// --- HTTP helpers ---

func (l *Lifecycle) get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(l.baseURL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp, readBody(t, resp)
}

func (l *Lifecycle) postJSON(t *testing.T, path string, body any) (*http.Response, []byte) {
	t.Helper()
	return l.send(t, http.MethodPost, path, body)
}

func (l *Lifecycle) putJSON(t *testing.T, path string, body any) (*http.Response, []byte) {
	t.Helper()
	return l.send(t, http.MethodPut, path, body)
}

func (l *Lifecycle) delete(t *testing.T, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, l.baseURL+path, nil)
	if err != nil {
		t.Fatalf("DELETE %s: %v", path, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s: %v", path, err)
	}
	readBody(t, resp)
	return resp
}

func (l *Lifecycle) send(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	req, err := http.NewRequest(method, l.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp, readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return b
}
