// Package snapshot stores rendered HTML snapshots in S3.
package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/hookdom/internal/config"
	"github.com/vango-dev/hookdom/internal/errors"
)

// PutObjectAPI is the part of the S3 client used by Store.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store uploads snapshots under a key prefix of one bucket.
type Store struct {
	client PutObjectAPI
	bucket string
	prefix string
	now    func() time.Time
}

// NewStore creates a Store. prefix may be empty.
func NewStore(client PutObjectAPI, bucket, prefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}
}

// NewClient builds an S3 client from the snapshot configuration. Credentials
// are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
// AWS_SESSION_TOKEN when the client first signs a request.
func NewClient(cfg config.SnapshotConfig) *s3.Client {
	region := cfg.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	opts := s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(envCredentials()),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func envCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		id, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
		if id == "" || secret == "" {
			return aws.Credentials{}, fmt.Errorf("snapshot: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
		}
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "Environment",
		}, nil
	})
}

// Key returns the object key for a snapshot. An empty name is replaced by
// a UTC timestamp.
func (s *Store) Key(name string) string {
	if name == "" {
		name = s.now().UTC().Format("20060102T150405Z")
	}
	if !strings.HasSuffix(name, ".html") {
		name += ".html"
	}
	return path.Join(s.prefix, name)
}

// Upload stores a full HTML page wrapping body and returns the object key.
func (s *Store) Upload(ctx context.Context, name, title, body string) (string, error) {
	if s.bucket == "" {
		return "", errors.New("E151")
	}
	key := s.Key(name)
	page := Page(title, body)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(page),
		ContentType: aws.String("text/html; charset=utf-8"),
		Metadata: map[string]string{
			"snapshot-time": s.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", errors.New("E150").
			WithDetail(fmt.Sprintf("PutObject s3://%s/%s failed.", s.bucket, key)).
			Wrap(err)
	}
	return key, nil
}

// Page wraps an HTML fragment into a standalone document.
func Page(title, body string) []byte {
	var b bytes.Buffer
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.Bytes()
}
