package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectRoomIDIsDeterministic(t *testing.T) {
	assert.Equal(t, "room-60d0fe4f-architect", ProjectRoomID("60d0fe4f", VariantArchitect))
	assert.Equal(t, "room-60d0fe4f-interior", ProjectRoomID("60d0fe4f", VariantInterior))
	assert.Equal(t, ProjectRoomID("abc", VariantArchitect), ProjectRoomID("abc", VariantArchitect))
}

func TestHiringRoomIDIgnoresArgumentOrder(t *testing.T) {
	a := HiringRoomID("worker-9", "company-2")
	b := HiringRoomID("company-2", "worker-9")
	assert.Equal(t, a, b)
	assert.Equal(t, "room-hiring-company-2-worker-9", a)
}
