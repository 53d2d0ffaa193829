package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := writeConfigFile(t, `
env:
  serviceName: patrol
sync:
  batchSize: 25
  interval: 30s
storage:
  bucketUrl: mem://
`)

	t.Chdir(dir)
	t.Setenv("SYNC_BATCHSIZE", "40")
	t.Setenv("STORAGE_PHOTOFOLDER", "evidence")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "patrol", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Sync)
	assert.Equal(t, 40, cfg.Sync.BatchSize)
	assert.Equal(t, 30*time.Second, cfg.Sync.Interval)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, "evidence", cfg.Storage.PhotoFolder)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.Port = 9000

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 9001, cfg.Worker.Port)
	assert.Equal(t, defaultSyncBatchSize, cfg.Sync.BatchSize)
	assert.Equal(t, time.Duration(0), cfg.Sync.Interval)
	assert.Equal(t, defaultNearbyRadius, cfg.Checkpoint.DefaultRadius)
	assert.Equal(t, defaultMaxNearbyRadius, cfg.Checkpoint.MaxRadius)
	assert.Equal(t, defaultBucketURL, cfg.Storage.BucketURL)
	assert.Equal(t, "photos", cfg.Storage.PhotoFolder)
	assert.Equal(t, int64(defaultMaxPhotoBytes), cfg.Storage.MaxPhotoBytes)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	assert.Nil(t, cfg.PubSub)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Sync:       &SyncConfig{BatchSize: 7, Interval: time.Minute},
		Checkpoint: &CheckpointConfig{DefaultRadius: 50, MaxRadius: 100},
		PubSub:     &PubSubConfig{Provider: "local"},
	}

	applyDefaults(cfg)

	assert.Equal(t, defaultPublishQueueSize, cfg.PubSub.QueueSize)

	assert.Equal(t, 7, cfg.Sync.BatchSize)
	assert.Equal(t, time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 50.0, cfg.Checkpoint.DefaultRadius)
	assert.Equal(t, 100.0, cfg.Checkpoint.MaxRadius)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_0_PASSWORD", "secret")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
