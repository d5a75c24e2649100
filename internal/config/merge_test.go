package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func TestMerge_SrcWins(t *testing.T) {
	dst := &Config{Model: "a", SearchContextSize: "low", MaxRetries: intPtr(1), HTTPAddr: ":1"}
	src := &Config{Model: "b", MaxRetries: intPtr(0), URLCitationsOnly: boolPtr(true), RequestTimeout: Duration(time.Second)}

	got := Merge(dst, src)
	assert.Equal(t, "b", got.Model)
	assert.Equal(t, "low", got.SearchContextSize, "unset src falls through")
	assert.Equal(t, 0, *got.MaxRetries, "explicit zero in src wins")
	assert.True(t, *got.URLCitationsOnly)
	assert.Equal(t, Duration(time.Second), got.RequestTimeout)
	assert.Equal(t, ":1", got.HTTPAddr)
}

func TestMerge_DoesNotAlias(t *testing.T) {
	dst := &Config{MaxRetries: intPtr(1)}
	src := &Config{MaxRetries: intPtr(2)}

	got := Merge(dst, src)
	*got.MaxRetries = 9
	assert.Equal(t, 1, *dst.MaxRetries)
	assert.Equal(t, 2, *src.MaxRetries)
}

func TestMerge_NilArgs(t *testing.T) {
	assert.Equal(t, &Config{}, Merge(nil, nil))
	assert.Equal(t, "x", Merge(nil, &Config{Model: "x"}).Model)
	assert.Equal(t, "y", Merge(&Config{Model: "y"}, nil).Model)
}

func TestMerge_Layers(t *testing.T) {
	global := &Config{Model: "global", SearchContextSize: "low"}
	local := &Config{SearchContextSize: "high"}
	flags := &Config{Model: "flag"}

	got := Merge(Merge(global, local), flags)
	assert.Equal(t, "flag", got.Model)
	assert.Equal(t, "high", got.SearchContextSize)
}
