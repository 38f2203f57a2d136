package integrity

import (
	"testing"

	"country-catalog/core/storage"
	"country-catalog/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	mockClient := new(mocks.Client)
	logger := zap.NewNop()
	// Pass nil sink and db for this test as we don't access them unless we use the service
	feature := NewFeature(mockClient, storage.Config{Bucket: "test-bucket"}, nil, logger, nil)

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
