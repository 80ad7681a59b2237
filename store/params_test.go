package store

import (
	"errors"
	"testing"
	"time"

	"github.com/etnz/limitcalc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2025, time.October, 17, 9, 30, 0, 0, time.UTC)

func newTestParams(kv KV) *Params {
	return NewParams(kv, WithClock(func() time.Time { return fixedNow }))
}

func sample() Parameters {
	return Parameters{
		Position:     limitcalc.Q(100),
		CostPrice:    limitcalc.M(10),
		CurrentPrice: limitcalc.M(12),
		LimitPercent: limitcalc.P(10),
	}
}

func TestParams_RoundTrip(t *testing.T) {
	p := newTestParams(NewMemory())

	_, ok := p.Load()
	assert.False(t, ok, "nothing saved yet")
	assert.False(t, p.Exists())

	require.True(t, p.Save(sample()))
	assert.True(t, p.Exists())

	got, ok := p.Load()
	require.True(t, ok)
	assert.True(t, got.Position.Equal(limitcalc.Q(100)))
	assert.True(t, got.CostPrice.Equal(limitcalc.M(10)))
	assert.True(t, got.CurrentPrice.Equal(limitcalc.M(12)))
	assert.True(t, got.LimitPercent.Equal(limitcalc.P(10)))
	assert.True(t, got.SavedAt.Equal(fixedNow), "SavedAt = %v", got.SavedAt)

	require.True(t, p.Clear())
	_, ok = p.Load()
	assert.False(t, ok)
	assert.False(t, p.Exists())

	// clearing an absent record
	assert.True(t, p.Clear())
}

func TestParams_Record(t *testing.T) {
	kv := NewMemory()
	p := newTestParams(kv)
	require.True(t, p.Save(sample()))

	data, err := kv.Get(Key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"position":100,"costPrice":10,"currentPrice":12,"limitPercent":10,"savedAt":"2025-10-17T09:30:00.000Z"}`, string(data))
}

func TestParams_SaveReplaces(t *testing.T) {
	p := newTestParams(NewMemory())
	require.True(t, p.Save(sample()))

	next := sample()
	next.CurrentPrice = limitcalc.M(13.5)
	require.True(t, p.Save(next))

	got, ok := p.Load()
	require.True(t, ok)
	assert.True(t, got.CurrentPrice.Equal(limitcalc.M(13.5)))
}

func TestParams_LoadRejects(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"not json", `{"position":`},
		{"missing field", `{"position":100,"costPrice":10,"currentPrice":12}`},
		{"zero field", `{"position":0,"costPrice":10,"currentPrice":12,"limitPercent":10}`},
		{"null field", `{"position":100,"costPrice":null,"currentPrice":12,"limitPercent":10}`},
		{"false field", `{"position":100,"costPrice":10,"currentPrice":false,"limitPercent":10}`},
		{"empty string field", `{"position":100,"costPrice":10,"currentPrice":12,"limitPercent":""}`},
		{"not a number", `{"position":"many","costPrice":10,"currentPrice":12,"limitPercent":10}`},
		{"array", `[1,2,3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemory()
			require.NoError(t, kv.Set(Key, []byte(tt.record)))
			p := newTestParams(kv)
			_, ok := p.Load()
			assert.False(t, ok)
			assert.False(t, p.Exists())
		})
	}
}

func TestParams_LoadLenient(t *testing.T) {
	// numbers as strings and a missing savedAt are still accepted.
	kv := NewMemory()
	require.NoError(t, kv.Set(Key, []byte(`{"position":"200","costPrice":"9.5","currentPrice":9.8,"limitPercent":20}`)))
	got, ok := newTestParams(kv).Load()
	require.True(t, ok)
	assert.True(t, got.Position.Equal(limitcalc.Q(200)))
	assert.True(t, got.CostPrice.Equal(limitcalc.M(9.5)))
	assert.True(t, got.SavedAt.IsZero())
}

func TestParams_StorageFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	kv := &Memory{Fail: errors.New("quota exceeded")}
	p := NewParams(kv, WithLogger(zap.New(core)))

	assert.False(t, p.Save(sample()))
	_, ok := p.Load()
	assert.False(t, ok)
	assert.False(t, p.Clear())
	assert.False(t, p.Exists())

	assert.Equal(t, 1, logs.FilterMessage("cannot save parameters").Len())
	assert.Equal(t, 1, logs.FilterMessage("cannot clear parameters").Len())
	assert.Equal(t, 2, logs.FilterMessage("cannot load parameters").Len())
}

func TestParams_Dir(t *testing.T) {
	kv, err := OpenDir(t.TempDir())
	require.NoError(t, err)
	p := newTestParams(kv)
	require.True(t, p.Save(sample()))

	// A new Params on the same folder sees the record.
	got, ok := newTestParams(kv).Load()
	require.True(t, ok)
	assert.True(t, got.LimitPercent.Equal(limitcalc.P(10)))
}
