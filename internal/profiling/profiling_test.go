package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTopN(t *testing.T) {
	var f Frame
	f.Begin()
	f.Add("scene.Update", 300*time.Microsecond)
	f.Add("mesh.Upload", 4*time.Millisecond)
	f.Add("mesh.Upload", 200*time.Microsecond)
	f.Add("draw", time.Millisecond)

	assert.Equal(t, "mesh.Upload:4.2ms, draw:1.0ms", f.TopN(2))
	assert.Equal(t, "mesh.Upload:4.2ms, draw:1.0ms, scene.Update:0.3ms", f.TopN(10))

	f.Begin()
	assert.Empty(t, f.TopN(3))
}

func TestFrameTrack(t *testing.T) {
	var f Frame
	f.Begin()
	stop := f.Track("sleep")
	time.Sleep(2 * time.Millisecond)
	stop()

	assert.GreaterOrEqual(t, f.Snapshot()["sleep"], 2*time.Millisecond)
	assert.GreaterOrEqual(t, f.Elapsed(), 2*time.Millisecond)
}
