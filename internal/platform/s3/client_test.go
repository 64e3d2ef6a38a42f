package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// testClient creates a Client backed by a test HTTP server.
// The handler receives real S3 XML-protocol requests.
func testClient(t *testing.T, region string, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(server.URL),
		UsePathStyle: true,
		Credentials:  credentials.NewStaticCredentialsProvider("test-key", "test-secret", ""),
		HTTPClient: &http.Client{
			Transport: &http.Transport{},
		},
	})

	return &Client{s3: client, region: region}
}

// xmlResponse is a helper to write S3-style XML responses.
func xmlResponse(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
	}{
		{
			name: "static credentials and custom endpoint",
			opts: Options{Endpoint: "http://localhost:9000", Region: "us-east-1", AccessKey: "ak", SecretKey: "sk", PathStyle: true},
		},
		{
			name: "default credential chain",
			opts: Options{Region: "eu-central-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := NewClient(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client.region != tt.opts.Region {
				t.Errorf("expected region %s, got %s", tt.opts.Region, client.region)
			}
		})
	}
}

func TestEnsureBucket_Exists(t *testing.T) {
	t.Parallel()

	var created bool
	client := testClient(t, "us-east-1", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodHead:
			w.WriteHeader(http.StatusOK)
		case http.MethodPut:
			created = true
			w.WriteHeader(http.StatusOK)
		}
	}))

	if err := client.EnsureBucket(context.Background(), "auth"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("bucket was created although it existed")
	}
}

func TestEnsureBucket_Creates(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		created string
	)
	client := testClient(t, "eu-central-1", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodHead:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			mu.Lock()
			created = r.URL.Path + " " + string(body)
			mu.Unlock()
			xmlResponse(w, http.StatusOK, `<?xml version="1.0" encoding="UTF-8"?><CreateBucketResult/>`)
		}
	}))

	if err := client.EnsureBucket(context.Background(), "auth"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if !strings.HasPrefix(created, "/auth ") {
		t.Errorf("expected PUT /auth, got %q", created)
	}
	if !strings.Contains(created, "<LocationConstraint>eu-central-1</LocationConstraint>") {
		t.Errorf("expected location constraint in body, got %q", created)
	}
}

func TestCreateBucket_AlreadyOwnedByYou(t *testing.T) {
	t.Parallel()

	client := testClient(t, "us-east-1", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		xmlResponse(w, http.StatusConflict, `<?xml version="1.0" encoding="UTF-8"?>
<Error>
  <Code>BucketAlreadyOwnedByYou</Code>
  <Message>Your previous request to create the named bucket succeeded and you already own it.</Message>
  <BucketName>auth</BucketName>
</Error>`)
	}))

	if err := client.CreateBucket(context.Background(), "auth"); err != nil {
		t.Fatalf("expected nil error for already owned bucket, got: %v", err)
	}
}

func TestCreateBucket_Error(t *testing.T) {
	t.Parallel()

	client := testClient(t, "us-east-1", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		xmlResponse(w, http.StatusForbidden, `<?xml version="1.0" encoding="UTF-8"?>
<Error>
  <Code>AccessDenied</Code>
  <Message>Access Denied</Message>
</Error>`)
	}))

	err := client.CreateBucket(context.Background(), "auth")
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !strings.Contains(err.Error(), "failed to create bucket auth") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestBucketExists_OtherError(t *testing.T) {
	t.Parallel()

	client := testClient(t, "us-east-1", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	if err := client.EnsureBucket(context.Background(), "auth"); err == nil {
		t.Fatal("expected error but got nil")
	} else if !strings.Contains(err.Error(), "failed to check bucket auth") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestPutObject(t *testing.T) {
	t.Parallel()

	var (
		mu          sync.Mutex
		body        []byte
		path        string
		contentType string
	)
	client := testClient(t, "us-east-1", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		body, _ = io.ReadAll(r.Body)
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))

	data := []byte("AUTH_SECRET=\"x\"\n")
	if err := client.PutObject(context.Background(), "auth", "demo/auth.env", data, "text/plain"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if !bytes.Equal(body, data) {
		t.Errorf("expected body %q, got %q", data, body)
	}
	if path != "/auth/demo/auth.env" {
		t.Errorf("expected path /auth/demo/auth.env, got %s", path)
	}
	if contentType != "text/plain" {
		t.Errorf("expected content type text/plain, got %s", contentType)
	}
}

func TestPutObject_Error(t *testing.T) {
	t.Parallel()

	client := testClient(t, "us-east-1", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		xmlResponse(w, http.StatusInternalServerError, `<?xml version="1.0" encoding="UTF-8"?>
<Error>
  <Code>InternalError</Code>
  <Message>Internal Error</Message>
</Error>`)
	}))

	err := client.PutObject(context.Background(), "auth", "demo/auth.env", []byte("data"), "")
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !strings.Contains(err.Error(), "failed to put object demo/auth.env in bucket auth") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		notFound bool
		owned    bool
	}{
		{"nil", nil, false, false},
		{"typed not found", &s3types.NotFound{}, true, false},
		{"typed no such bucket", &s3types.NoSuchBucket{}, true, false},
		{"typed owned", &s3types.BucketAlreadyOwnedByYou{}, false, true},
		{"generic 404 code", &smithy.GenericAPIError{Code: "404"}, true, false},
		{"generic owned code", &smithy.GenericAPIError{Code: "BucketAlreadyOwnedByYou"}, false, true},
		{"plain error", errors.New("boom"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isNotFoundError(tt.err); got != tt.notFound {
				t.Errorf("isNotFoundError = %v, want %v", got, tt.notFound)
			}
			if got := isBucketAlreadyOwnedByYou(tt.err); got != tt.owned {
				t.Errorf("isBucketAlreadyOwnedByYou = %v, want %v", got, tt.owned)
			}
		})
	}
}
