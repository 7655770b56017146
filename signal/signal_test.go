package signal_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/dudk/patch/signal"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestInterIntsAsFloat64(t *testing.T) {
	tests := []struct {
		ints        []int
		numChannels int
		bitDepth    signal.BitDepth
		expected    [][]float64
	}{
		{
			ints:        []int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2},
			numChannels: 2,
			expected: [][]float64{
				{1, 1, 1, 1, 1, 1, 1, 1},
				{2, 2, 2, 2, 2, 2, 2, 2},
			},
		},
		{
			ints:        []int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1},
			numChannels: 2,
			expected: [][]float64{
				{1, 1, 1, 1, 1, 1, 1, 1},
				{2, 2, 2, 2, 2, 2, 2, 0},
			},
		},
		{
			ints:        []int{math.MaxInt16, math.MaxInt16 * 2},
			numChannels: 2,
			expected: [][]float64{
				{1},
				{2},
			},
			bitDepth: signal.BitDepth16,
		},
		{
			ints:     nil,
			expected: nil,
		},
		{
			ints:     []int{1, 2, 3},
			expected: nil,
		},
		{
			ints:        []int{1, 2, 3, 4},
			numChannels: 5,
			expected: [][]float64{
				{1},
				{2},
				{3},
				{4},
				{0},
			},
		},
	}

	for _, test := range tests {
		ints := signal.InterInt{
			Data:        test.ints,
			NumChannels: test.numChannels,
			BitDepth:    test.bitDepth,
		}
		result := ints.AsFloat64()
		assert.Equal(t, len(test.expected), len(result))
		for i := range test.expected {
			for j, val := range test.expected[i] {
				assert.Equal(t, val, result[i][j])
			}
		}
	}
}

func TestFloat64AsInterInt(t *testing.T) {
	tests := []struct {
		floats   [][]float64
		bitDepth signal.BitDepth
		expected []int
	}{
		{
			floats: [][]float64{
				{1, 1, 1, 1, 1, 1, 1, 1},
				{2, 2, 2, 2, 2, 2, 2, 2},
			},
			expected: []int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2},
		},
		{
			floats: [][]float64{
				{1, 1, 1, 1, 1, 1, 1, 1},
				{2, 2, 2, 2, 2, 2},
			},
			expected: []int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 0, 1, 0},
		},
		{
			floats: [][]float64{
				{1},
				{2},
			},
			bitDepth: signal.BitDepth16,
			expected: []int{1 * (math.MaxInt16 - 1), 2 * (math.MaxInt16 - 1)},
		},
		{
			floats:   nil,
			expected: nil,
		},
		{
			floats:   [][]float64{},
			expected: nil,
		},
		{
			floats: [][]float64{
				{},
				{},
			},
			expected: []int{},
		},
		{
			floats: [][]float64{
				{1},
				{2},
				{3},
				{4},
				{5},
			},
			expected: []int{1, 2, 3, 4, 5},
		},
	}

	for _, test := range tests {
		floats := signal.Float64(test.floats)
		ints := floats.AsInterInt(test.bitDepth)
		assert.Equal(t, len(test.expected), len(ints))
		for i := range test.expected {
			assert.Equal(t, test.expected[i], ints[i])
		}
	}
}

func TestMono(t *testing.T) {
	s := signal.Mono([]float64{1, 2, 3})
	assert.Equal(t, 1, s.NumChannels())
	assert.Equal(t, 3, s.Size())
}

func TestAppend(t *testing.T) {
	var s signal.Float64
	s = s.Append(signal.Mono([]float64{1, 2}))
	s = s.Append(signal.Mono([]float64{3}))
	assert.Equal(t, signal.Float64{{1, 2, 3}}, s)
}

func TestMerge(t *testing.T) {
	left := signal.Mono([]float64{1, 2})
	right := signal.Mono([]float64{3, 4})
	merged := left.Merge(right)
	assert.Equal(t, 2, merged.NumChannels())
	assert.Equal(t, signal.Float64{{1, 2}, {3, 4}}, merged)

	// merged channels are copies
	right[0][0] = 9
	assert.Equal(t, 3.0, merged[1][0])
}

func TestDurationOf(t *testing.T) {
	assert.Equal(t, time.Second, signal.DurationOf(44100, 44100))
	assert.Equal(t, 500*time.Millisecond, signal.DurationOf(44100, 22050))
}
