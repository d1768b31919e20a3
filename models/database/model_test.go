package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeCreateAssignsUUID(t *testing.T) {
	m := &Model{}
	require.NoError(t, m.BeforeCreate(nil))

	_, err := uuid.Parse(m.ID)
	assert.NoError(t, err)
}

func TestBeforeCreateKeepsExplicitID(t *testing.T) {
	m := &Model{ID: "3f1f7b3e-0000-4000-8000-000000000001"}
	require.NoError(t, m.BeforeCreate(nil))
	assert.Equal(t, "3f1f7b3e-0000-4000-8000-000000000001", m.ID)
}
