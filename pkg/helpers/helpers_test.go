package helpers

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	dev := NewLogger("nexus", "development")
	assert.Equal(t, logrus.DebugLevel, dev.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, dev.Formatter)

	prod := NewLogger("nexus", "production")
	assert.Equal(t, logrus.InfoLevel, prod.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, prod.Formatter)
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t, "gs://exports-bucket/exports/users.ndjson", ObjectURL("exports-bucket", "exports/users.ndjson"))
}

func TestNewESClientWithoutAddresses(t *testing.T) {
	c, err := NewESClient(nil, "", "")
	assert.NoError(t, err)
	assert.Nil(t, c)
}
