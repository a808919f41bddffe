package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Glubus/minacalc-go/model"
	"github.com/stretchr/testify/assert"
)

func TestCreateAndReadBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.dat")
	data := map[string]model.ChartScores{
		"abc123": {Title: "Test Song", KeyCount: 4},
	}

	CreateBinary(path, data)
	read := ReadBinaryOrPanic[map[string]model.ChartScores](path)

	assert.Equal(t, data, read)
}

func TestReadBinaryOrPanicMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		ReadBinaryOrPanic[int](filepath.Join(t.TempDir(), "nope.dat"))
	})
}

func TestGatherAllChartPaths(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.osu"), []byte("x"), 0666)
	os.WriteFile(filepath.Join(dir, "b.osu"), []byte("x"), 0666)
	os.WriteFile(filepath.Join(dir, "c.mp3"), []byte("x"), 0666)

	assert := assert.New(t)
	assert.Len(GatherAllChartPaths(dir, 0), 2)
	assert.Len(GatherAllChartPaths(dir, 1), 1)
}
