package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: 9090
  mode: debug
database:
  host: db.internal
  user: filingdesk
  password: secret
  db_name: filingdesk
redis:
  addr: cache.internal:6379
kafka:
  brokers: ["broker-1:9092", "broker-2:9092"]
  group_id: filingdesk-worker
minio:
  endpoint: objects.internal:9000
  bucket: filingdesk-documents
firm:
  firm_name: Rao & Menon IP Services
  signing_place: Bengaluru
  agents:
    - name: K. Rao
      registration_number: IN/PA-1234
`

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "Rao & Menon IP Services", cfg.Firm.FirmName)
	require.Len(t, cfg.Firm.Agents, 1)
	assert.Equal(t, "IN/PA-1234", cfg.Firm.Agents[0].RegistrationNumber)

	// Defaults filled where the file is silent.
	assert.Equal(t, DefaultDBPort, cfg.Database.Port)
	assert.Equal(t, DefaultWorkerConcurrency, cfg.Worker.Concurrency)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	bad := sampleYAML + "\nworker:\n  concurrency: -1\n"
	_, err := Load(writeTempConfig(t, bad))
	assert.ErrorContains(t, err, "worker.concurrency")
}

func TestValidateFirmProfileRequired(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	cfg.Database.User = "filingdesk"
	assert.ErrorContains(t, cfg.Validate(), "firm.firm_name")
}

func TestApplyDefaultsPreservesExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 3000
	cfg.Redis.KeyPrefix = "custom"
	ApplyDefaults(cfg)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "custom", cfg.Redis.KeyPrefix)
	assert.Equal(t, DefaultKafkaGroupID, cfg.Kafka.GroupID)
}
