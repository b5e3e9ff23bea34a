package requestid_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecomicro/pkg/requestid"
)

func TestNew_EsUUID(t *testing.T) {
	id := requestid.New()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, requestid.New())
}

func TestContext_IdaYVuelta(t *testing.T) {
	ctx := requestid.NewContext(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))
}
