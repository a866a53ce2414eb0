package snapshot

import (
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/hookdom/internal/config"
	"github.com/vango-dev/hookdom/internal/errors"
)

type fakeS3 struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func TestUpload(t *testing.T) {
	fake := &fakeS3{}
	store := NewStore(fake, "snaps", "previews")

	key, err := store.Upload(context.Background(), "counter", "Demo <1>", "<div>hi</div>")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if key != "previews/counter.html" {
		t.Errorf("key = %q", key)
	}
	in := fake.inputs[0]
	if aws.ToString(in.Bucket) != "snaps" || aws.ToString(in.Key) != key {
		t.Errorf("input = %s/%s", aws.ToString(in.Bucket), aws.ToString(in.Key))
	}
	if aws.ToString(in.ContentType) != "text/html; charset=utf-8" {
		t.Errorf("ContentType = %q", aws.ToString(in.ContentType))
	}
	body := fake.bodies[0]
	if !strings.Contains(body, "<title>Demo &lt;1&gt;</title>") || !strings.Contains(body, "<div>hi</div>") {
		t.Errorf("body = %q", body)
	}
}

func TestKeyDefaultsToTimestamp(t *testing.T) {
	store := NewStore(&fakeS3{}, "b", "")
	store.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }
	if got := store.Key(""); got != "20260304T050607Z.html" {
		t.Errorf("Key(\"\") = %q", got)
	}
	if got := store.Key("page.html"); got != "page.html" {
		t.Errorf("Key(page.html) = %q", got)
	}
}

func TestUploadErrors(t *testing.T) {
	_, err := NewStore(&fakeS3{}, "", "").Upload(context.Background(), "x", "", "")
	var he *errors.HookdomError
	if !stderrors.As(err, &he) || he.Code != "E151" {
		t.Errorf("missing bucket error = %v, want E151", err)
	}

	cause := stderrors.New("access denied")
	_, err = NewStore(&fakeS3{err: cause}, "b", "").Upload(context.Background(), "x", "", "")
	if !stderrors.As(err, &he) || he.Code != "E150" || !stderrors.Is(err, cause) {
		t.Errorf("put error = %v, want E150 wrapping cause", err)
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient(config.SnapshotConfig{Region: "eu-west-1", Endpoint: "http://localhost:9000"})
	opts := client.Options()
	if opts.Region != "eu-west-1" || aws.ToString(opts.BaseEndpoint) != "http://localhost:9000" || !opts.UsePathStyle {
		t.Errorf("options = region %q endpoint %q path-style %v", opts.Region, aws.ToString(opts.BaseEndpoint), opts.UsePathStyle)
	}

	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	if _, err := envCredentials().Retrieve(context.Background()); err == nil {
		t.Error("Retrieve() without env credentials succeeded")
	}
	t.Setenv("AWS_ACCESS_KEY_ID", "id")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	creds, err := envCredentials().Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "id" {
		t.Errorf("Retrieve() = %+v, %v", creds, err)
	}
}
