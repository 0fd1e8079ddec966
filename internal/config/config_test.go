package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "APP_ENV", "CORS_ALLOWED_ORIGIN", "AWS_ACCESS_KEY", "AWS_SECRET_KEY",
		"AWS_REGION", "STORAGE_ENDPOINT", "STORAGE_USE_SSL", "STORAGE_ENSURE_BUCKET", "STORAGE_PUBLIC_BASE",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8000" {
		t.Fatalf("expected port 8000, got %q", cfg.Port)
	}
	if cfg.AllowedOrigin != "http://localhost:3000" {
		t.Fatalf("unexpected allowed origin: %q", cfg.AllowedOrigin)
	}
	if cfg.StorageRegion != "eu-north-1" {
		t.Fatalf("unexpected region: %q", cfg.StorageRegion)
	}
	if cfg.StorageEndpoint != "s3.eu-north-1.amazonaws.com" {
		t.Fatalf("unexpected endpoint: %q", cfg.StorageEndpoint)
	}
	if !cfg.StorageUseSSL {
		t.Fatal("expected SSL on by default")
	}
	if cfg.StorageEnsureBucket {
		t.Fatal("expected ensure-bucket off by default")
	}
	if cfg.IsProduction() {
		t.Fatal("expected development environment by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AWS_REGION", "us-west-2")
	t.Setenv("STORAGE_ENDPOINT", "")
	t.Setenv("STORAGE_USE_SSL", "false")
	t.Setenv("STORAGE_ENSURE_BUCKET", "yes")
	t.Setenv("APP_ENV", "production")
	t.Setenv("AWS_ACCESS_KEY", "AKIA")

	cfg := Load()
	if cfg.StorageEndpoint != "s3.us-west-2.amazonaws.com" {
		t.Fatalf("endpoint should follow region, got %q", cfg.StorageEndpoint)
	}
	if cfg.StorageUseSSL {
		t.Fatal("expected SSL off")
	}
	if !cfg.StorageEnsureBucket {
		t.Fatal("expected ensure-bucket on")
	}
	if !cfg.IsProduction() {
		t.Fatal("expected production")
	}
	if cfg.StorageAccessKey != "AKIA" {
		t.Fatalf("unexpected access key: %q", cfg.StorageAccessKey)
	}

	opts := cfg.MinioOptions()
	if opts.Bucket != StorageBucket || opts.Region != "us-west-2" || opts.AccessKey != "AKIA" || !opts.EnsureBucket {
		t.Fatalf("unexpected minio options: %#v", opts)
	}
}
