package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	loaded := map[string]any{
		"sync":       map[string]any{"batchSize": 100, "interval": "0s"},
		"checkpoint": map[string]any{"maxRadius": 5000, "defaultRadius": 200},
		"storage":    map[string]any{"maxPhotoBytes": 0, "bucketUrl": "mem://"},
		"pubsub":     map[string]any{"queueSize": 256},
		"postgres": map[string]any{
			"master": map[string]any{"userName": "patrol"},
		},
	}

	cases := map[string]string{
		"SYNC_BATCHSIZE":           "sync.batchSize",
		"CHECKPOINT_MAXRADIUS":     "checkpoint.maxRadius",
		"STORAGE_MAXPHOTOBYTES":    "storage.maxPhotoBytes",
		"STORAGE_BUCKETURL":        "storage.bucketUrl",
		"PUBSUB_QUEUESIZE":         "pubsub.queueSize",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"SYNC__INTERVAL":           "sync.interval",
		// Unknown keys fall back to dotted lower case.
		"WORKER_PORT":        "worker.port",
		"CHECKPOINT_MAX_TAG": "checkpoint.max.tag",
	}

	for env, want := range cases {
		assert.Equal(t, want, canonicalizeEnvKey(env, loaded), env)
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "maxphotobytes", normalizeToken("max-Photo_Bytes"))
	assert.Equal(t, "", normalizeToken("__"))
}
