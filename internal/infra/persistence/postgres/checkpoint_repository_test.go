package postgres

import (
	"testing"

	"patrol/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterWithinRadius(t *testing.T) {
	far := &entity.Checkpoint{ID: uuid.New(), Name: "Gate", Latitude: 25.0340, Longitude: 121.5654}  // ~111 m north
	near := &entity.Checkpoint{ID: uuid.New(), Name: "Lobby", Latitude: 25.0331, Longitude: 121.5654} // ~11 m north
	outside := &entity.Checkpoint{ID: uuid.New(), Name: "Depot", Latitude: 25.0500, Longitude: 121.5654}

	nearby := filterWithinRadius([]*entity.Checkpoint{far, outside, near}, 25.0330, 121.5654, 200)

	require.Len(t, nearby, 2)
	assert.Equal(t, near.ID, nearby[0].Checkpoint.ID)
	assert.Equal(t, far.ID, nearby[1].Checkpoint.ID)
	assert.InDelta(t, 11.1, nearby[0].DistanceMeters, 0.5)
	assert.InDelta(t, 111.2, nearby[1].DistanceMeters, 0.5)
}

func TestFilterWithinRadius_BoundaryIsInclusive(t *testing.T) {
	checkpoint := &entity.Checkpoint{ID: uuid.New(), Latitude: 25.0330, Longitude: 121.5654}

	nearby := filterWithinRadius([]*entity.Checkpoint{checkpoint}, 25.0330, 121.5654, 0)

	require.Len(t, nearby, 1)
	assert.Zero(t, nearby[0].DistanceMeters)
}

func TestFilterWithinRadius_TiesOrderedByID(t *testing.T) {
	a := &entity.Checkpoint{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Latitude: 25.0331, Longitude: 121.5654}
	b := &entity.Checkpoint{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Latitude: 25.0331, Longitude: 121.5654}

	nearby := filterWithinRadius([]*entity.Checkpoint{a, b}, 25.0330, 121.5654, 50)

	require.Len(t, nearby, 2)
	assert.Equal(t, b.ID, nearby[0].Checkpoint.ID)
	assert.Equal(t, a.ID, nearby[1].Checkpoint.ID)
}

func TestFilterWithinRadius_Empty(t *testing.T) {
	nearby := filterWithinRadius(nil, 25.0330, 121.5654, 100)

	assert.NotNil(t, nearby)
	assert.Empty(t, nearby)
}
