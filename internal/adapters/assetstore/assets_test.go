package assetstore

import (
	"context"
	"strings"
	"testing"
)

func TestStatic_URL(t *testing.T) {
	s, err := NewStatic("https://cdn.example.com/pets/")
	if err != nil {
		t.Fatalf("NewStatic: %v", err)
	}

	got, err := s.URL(context.Background(), "dog1")
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if got != "https://cdn.example.com/pets/dog1.png" {
		t.Fatalf("unexpected url %q", got)
	}

	if _, err := s.URL(context.Background(), "  "); err != ErrEmptyRef {
		t.Fatalf("expected ErrEmptyRef, got %v", err)
	}
}

func TestStatic_NoBaseURL(t *testing.T) {
	s, err := NewStatic("")
	if err != nil {
		t.Fatalf("NewStatic: %v", err)
	}
	got, _ := s.URL(context.Background(), "cat2")
	if got != "/assets/cat2.png" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestS3_PresignsWithoutNetwork(t *testing.T) {
	s, err := NewS3(context.Background(), S3Config{
		Bucket:          "pets",
		Region:          "us-east-1",
		Endpoint:        "http://127.0.0.1:9000",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		PathStyle:       true,
		Prefix:          "images/",
	})
	if err != nil {
		t.Fatalf("NewS3: %v", err)
	}

	got, err := s.URL(context.Background(), "dog1")
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if !strings.HasPrefix(got, "http://127.0.0.1:9000/pets/images/dog1.png?") {
		t.Fatalf("unexpected presigned url %q", got)
	}
	if !strings.Contains(got, "X-Amz-Signature=") {
		t.Fatalf("expected signature in %q", got)
	}
}
