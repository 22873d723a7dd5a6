package config

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name     string
		db       DB
		expected string
	}{
		{
			name:     "discrete variables",
			db:       DB{DbHOST: "db", DbPORT: "5432", DbUSER: "u", DbPASSWORD: "p", DbNAME: "ukmpr", DbSSLMODE: "disable"},
			expected: "host=db port=5432 user=u password=p dbname=ukmpr sslmode=disable",
		},
		{
			name:     "auth token replaces password",
			db:       DB{DbHOST: "db", DbPORT: "5432", DbUSER: "u", DbPASSWORD: "p", DbNAME: "ukmpr", DbSSLMODE: "require", AuthToken: "tok"},
			expected: "host=db port=5432 user=u password=tok dbname=ukmpr sslmode=require",
		},
		{
			name:     "url wins",
			db:       DB{URL: "postgres://u:p@db/ukmpr", DbHOST: "ignored"},
			expected: "postgres://u:p@db/ukmpr",
		},
		{
			name:     "key value url with token",
			db:       DB{URL: "host=db dbname=ukmpr", AuthToken: "tok"},
			expected: "host=db dbname=ukmpr password=tok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.db.DSN())
		})
	}
}

func TestDSN_URLWithTokenIsConverted(t *testing.T) {
	dsn := DB{URL: "postgres://u@db:5432/ukmpr", AuthToken: "tok"}.DSN()

	assert.Contains(t, dsn, "host=db")
	assert.Contains(t, dsn, "dbname=ukmpr")
	assert.Contains(t, dsn, "password=tok")
	assert.NotContains(t, dsn, "postgres://")
}

func TestLoadSessionDefaults(t *testing.T) {
	t.Setenv("SESSION_TTL", "")
	t.Setenv("SESSION_SWEEP_INTERVAL", "0")
	t.Setenv("COOKIE_SECURE", "false")

	session := LoadSession()

	assert.Equal(t, 7*24*time.Hour, session.TTL)
	assert.Equal(t, time.Duration(0), session.SweepInterval)
	assert.Equal(t, "session_id", session.CookieName)
	assert.False(t, session.CookieSecure)
}

func TestLoadConfigPortFallback(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PORT", "3000")
	t.Setenv("MAX_UPLOAD_SIZE", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 3000, cfg.ServerPort)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxUploadSize)
}

func TestLoadAdminWarnsOnDefaultPassword(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	admin := LoadAdmin()
	assert.Equal(t, defaultAdminPassword, admin.Password)
	assert.Contains(t, buf.String(), "ADMIN_PASSWORD is not set")

	buf.Reset()
	t.Setenv("ADMIN_PASSWORD", "s3cret-pass")
	admin = LoadAdmin()
	assert.Equal(t, "s3cret-pass", admin.Password)
	assert.Empty(t, buf.String())
}

func TestMinIOEnabled(t *testing.T) {
	assert.False(t, MinIO{}.Enabled())
	assert.True(t, MinIO{Endpoint: "minio:9000"}.Enabled())
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FLAG_OK", "true")
	t.Setenv("FLAG_BAD", "maybe")

	assert.True(t, getEnvBool("FLAG_OK", false))
	assert.True(t, getEnvBool("FLAG_BAD", true))
	assert.False(t, getEnvBool("FLAG_MISSING", false))
}
