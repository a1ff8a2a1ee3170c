package plan7

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureNakedSingleEntryExit(t *testing.T) {
	mdl := newTestModel(t, 5)
	mdl.ConfigureNaked()
	assert.Equal(t, 1.0, mdl.Nodes[1].Begin)
	assert.Equal(t, 1.0, mdl.Nodes[5].End)
	for k := 2; k <= 5; k++ {
		assert.Zero(t, mdl.Nodes[k].Begin)
	}
	assert.False(t, mdl.Config.AllowsMultiHit())
	assert.False(t, mdl.Config.AllowsLocalEntry())
}

func TestConfigureGlobalNoMultiHit(t *testing.T) {
	mdl := newTestModel(t, 5)
	mdl.ConfigureGlobal(0.02)
	assert.Equal(t, 1.0, mdl.Nodes[1].Begin)
	assert.Equal(t, 1.0, mdl.Nodes[5].End)
	assert.Equal(t, 0.02, mdl.Special[XTN][Loop])
	assert.Zero(t, mdl.Special[XTE][Loop])
	assert.False(t, mdl.Config.AllowsMultiHit())
}

func TestConfigureLSAllowsMultiHit(t *testing.T) {
	mdl := newTestModel(t, 5)
	mdl.ConfigureLS(0.02, 0.3)
	assert.Equal(t, 1.0, mdl.Nodes[1].Begin)
	assert.Equal(t, 0.3, mdl.Special[XTE][Loop])
	assert.True(t, mdl.Config.AllowsMultiHit())
	assert.False(t, mdl.Config.AllowsLocalEntry())
}

func TestConfigureSWSpreadsEntryAndExit(t *testing.T) {
	mdl := newTestModel(t, 5)
	mdl.ConfigureSW(0.4, 0.4, 0.02)
	assert.InDelta(t, 0.6, mdl.Nodes[1].Begin, 1e-9)
	sum := 0.0
	for k := 1; k <= 5; k++ {
		sum += mdl.Nodes[k].Begin
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.False(t, mdl.Config.AllowsMultiHit())
	assert.True(t, mdl.Config.AllowsLocalEntry())
}

func TestConfigureFSAllowsMultiHitAndLocalEntry(t *testing.T) {
	mdl := newTestModel(t, 5)
	mdl.ConfigureFS(0.4, 0.4, 0.02, 0.3)
	assert.True(t, mdl.Config.AllowsMultiHit())
	assert.True(t, mdl.Config.AllowsLocalEntry())
}

func TestSetLocalBeginEndSingleNodeModel(t *testing.T) {
	mdl := newTestModel(t, 1)
	mdl.ConfigureSW(0.4, 0.4, 0.02)
	assert.Equal(t, 1.0, mdl.Nodes[1].Begin)
	assert.Equal(t, 1.0, mdl.Nodes[1].End)
}

func TestRenormalizeExitsCorrectsDrift(t *testing.T) {
	mdl := newTestModel(t, 3)
	mdl.Nodes[1].Begin = 0.3001
	mdl.Nodes[2].Begin = 0.3001
	mdl.Nodes[3].Begin = 0.3001
	mdl.RenormalizeExits()
	sum := mdl.Nodes[1].Begin + mdl.Nodes[2].Begin + mdl.Nodes[3].Begin
	assert.InDelta(t, 1.0, sum, 1e-9)
}
