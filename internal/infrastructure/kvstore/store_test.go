package kvstore

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nested struct {
	Name  string            `json:"name"`
	Tags  []string          `json:"tags"`
	Attrs map[string]nested `json:"attrs,omitempty"`
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(quietLogger())

	in := []nested{
		{Name: "héllo wörld ✓", Tags: []string{"a", "日本語"}},
		{Name: "parent", Tags: []string{}, Attrs: map[string]nested{"child": {Name: "c", Tags: []string{"x"}}}},
	}
	require.NoError(t, SetJSON(ctx, s, "things", in))

	out := GetJSON(ctx, s, "things", []nested(nil))
	assert.Equal(t, in, out)
}

func TestStore_MissingKeyReturnsDefault(t *testing.T) {
	s := NewMemoryStore(quietLogger())
	got := GetJSON(context.Background(), s, "absent", []string{"fallback"})
	assert.Equal(t, []string{"fallback"}, got)
}

func TestStore_UndecodableValueReturnsDefault(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	require.NoError(t, mem.Set(ctx, "broken", []byte("{not json")))
	s := New(mem, quietLogger())

	got := GetJSON(ctx, s, "broken", 42)
	assert.Equal(t, 42, got)
}

func TestStore_SetReplacesWholeValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(quietLogger())
	require.NoError(t, SetJSON(ctx, s, "list", []int{1, 2, 3}))
	require.NoError(t, SetJSON(ctx, s, "list", []int{9}))

	assert.Equal(t, []int{9}, GetJSON(ctx, s, "list", []int(nil)))
}

func TestStore_InstancesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryStore(quietLogger())
	b := NewMemoryStore(quietLogger())
	require.NoError(t, SetJSON(ctx, a, "k", "a"))

	assert.Equal(t, "a", GetJSON(ctx, a, "k", ""))
	assert.Equal(t, "", GetJSON(ctx, b, "k", ""))
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(quietLogger())
	require.NoError(t, SetJSON(ctx, s, KeySession, map[string]string{"userId": "u1"}))
	require.NoError(t, s.Delete(ctx, KeySession))

	assert.Nil(t, GetJSON[map[string]string](ctx, s, KeySession, nil))
}

func TestMemory_CopiesOnWrite(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	buf := []byte(`"v1"`)
	require.NoError(t, m.Set(ctx, "k", buf))
	buf[1] = 'X'

	got, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"v1"`, string(got))
}
