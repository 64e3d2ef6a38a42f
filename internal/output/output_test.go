package output

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/imamik/fusionboot/internal/provisioning"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func fixedSecret(t *testing.T, secret string) {
	t.Helper()
	orig := secretFunc
	secretFunc = func() (string, error) { return secret, nil }
	t.Cleanup(func() { secretFunc = orig })
}

func testRecord() *Record {
	return &Record{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		TenantID:     "tenant-1",
		Issuer:       "http://localhost:9011",
		Secret:       "c2VjcmV0",
	}
}

func TestNewRecord(t *testing.T) {
	fixedSecret(t, "c2VjcmV0")
	state := &provisioning.State{TenantID: "tenant-1", ClientID: "client-1", ClientSecret: "secret-1"}

	r, err := NewRecord(state, "http://localhost:9011")
	require.NoError(t, err)
	assert.Equal(t, testRecord(), r)
}

func TestNewRecord_UnresolvedStateIsEmpty(t *testing.T) {
	fixedSecret(t, "x")

	r, err := NewRecord(provisioning.NewState(), "http://localhost:9011")
	require.NoError(t, err)
	assert.Empty(t, r.ClientID)
	assert.Empty(t, r.TenantID)
	assert.Equal(t, "http://localhost:9011", r.Issuer)
}

func TestNewRecord_SecretFailure(t *testing.T) {
	orig := secretFunc
	secretFunc = func() (string, error) { return "", errors.New("no entropy") }
	t.Cleanup(func() { secretFunc = orig })

	_, err := NewRecord(provisioning.NewState(), "")
	assert.Error(t, err)
}

func TestNewRecord_FreshSecretEachTime(t *testing.T) {
	a, err := NewRecord(provisioning.NewState(), "")
	require.NoError(t, err)
	b, err := NewRecord(provisioning.NewState(), "")
	require.NoError(t, err)

	assert.Len(t, a.Secret, 44)
	assert.NotEqual(t, a.Secret, b.Secret)
}

func TestRender_JSON(t *testing.T) {
	data, err := Render(testRecord(), FormatJSON)
	require.NoError(t, err)

	want := `{
  "AUTH_FUSIONAUTH_CLIENT_ID": "client-1",
  "AUTH_FUSIONAUTH_CLIENT_SECRET": "secret-1",
  "AUTH_FUSIONAUTH_TENANT_ID": "tenant-1",
  "AUTH_FUSIONAUTH_ISSUER": "http://localhost:9011",
  "AUTH_SECRET": "c2VjcmV0"
}
`
	assert.Equal(t, want, string(data))

	var back Record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *testRecord(), back)
}

func TestRender_Env(t *testing.T) {
	data, err := Render(testRecord(), FormatEnv)
	require.NoError(t, err)

	want := `AUTH_FUSIONAUTH_CLIENT_ID="client-1"
AUTH_FUSIONAUTH_CLIENT_SECRET="secret-1"
AUTH_FUSIONAUTH_ISSUER="http://localhost:9011"
AUTH_FUSIONAUTH_TENANT_ID="tenant-1"
AUTH_SECRET="c2VjcmV0"
`
	assert.Equal(t, want, string(data))
}

func TestRender_YAML(t *testing.T) {
	data, err := Render(testRecord(), FormatYAML)
	require.NoError(t, err)

	var back Record
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, *testRecord(), back)
	assert.Contains(t, string(data), "AUTH_FUSIONAUTH_TENANT_ID: tenant-1\n")
}

func TestRender_Deterministic(t *testing.T) {
	for _, f := range Formats {
		a, err := Render(testRecord(), f)
		require.NoError(t, err)
		b, err := Render(testRecord(), f)
		require.NoError(t, err)
		assert.Equal(t, a, b, string(f))
	}
}

func TestRender_Unsupported(t *testing.T) {
	_, err := Render(testRecord(), Format("toml"))
	assert.Error(t, err)
}

func TestFormat_Extension(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.Extension())
	assert.Equal(t, "env", FormatEnv.Extension())
	assert.Equal(t, "yaml", FormatYAML.Extension())
	assert.Equal(t, "json", Format("").Extension())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{" ENV ", FormatEnv, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type fakeStore struct {
	ensured     []string
	puts        map[string][]byte
	contentType string
	ensureErr   error
}

func (f *fakeStore) EnsureBucket(_ context.Context, bucket string) error {
	f.ensured = append(f.ensured, bucket)
	return f.ensureErr
}

func (f *fakeStore) PutObject(_ context.Context, bucket, key string, data []byte, contentType string) error {
	if f.puts == nil {
		f.puts = make(map[string][]byte)
	}
	f.puts[bucket+"/"+key] = data
	f.contentType = contentType
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	store := &fakeStore{}
	p := &Publisher{Store: store, Bucket: "auth", Key: "demo/auth.env"}

	require.NoError(t, p.Publish(context.Background(), []byte("A=\"b\"\n"), FormatEnv))
	assert.Equal(t, []string{"auth"}, store.ensured)
	assert.Equal(t, []byte("A=\"b\"\n"), store.puts["auth/demo/auth.env"])
	assert.Equal(t, "text/plain; charset=utf-8", store.contentType)
	assert.Equal(t, "s3://auth/demo/auth.env", p.String())
}

func TestPublisher_Errors(t *testing.T) {
	store := &fakeStore{ensureErr: errors.New("denied")}

	err := (&Publisher{Store: store, Bucket: "auth", Key: "k"}).Publish(context.Background(), nil, FormatJSON)
	assert.ErrorContains(t, err, "denied")
	assert.Empty(t, store.puts)

	err = (&Publisher{Store: store, Bucket: "auth"}).Publish(context.Background(), nil, FormatJSON)
	assert.ErrorContains(t, err, "incomplete")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".env.auth")

	require.NoError(t, WriteFile(path, []byte("x")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}
