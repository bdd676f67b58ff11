package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt.MinCost keeps the tests fast.
func newTestHasher() PasswordHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "min cost", cost: bcrypt.MinCost, want: bcrypt.MinCost},
		{name: "custom cost", cost: 10, want: 10},
		{name: "below range", cost: 1, want: DefaultCost},
		{name: "above range", cost: 99, want: DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := NewBcryptHasher(tt.cost).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, h.cost)
		})
	}
}

func TestHash_EmbedsCostAndSalt(t *testing.T) {
	h := newTestHasher()

	first, err := h.Hash("pw1")
	require.NoError(t, err)
	second, err := h.Hash("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, "pw1", first)
	assert.NotEqual(t, first, second, "salts must differ")

	cost, err := bcrypt.Cost([]byte(first))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestHash_LongInput(t *testing.T) {
	h := newTestHasher()

	long := strings.Repeat("a", 1024)
	hash, err := h.Hash(long)
	require.NoError(t, err)
	assert.True(t, h.Verify(long, hash))
}

func TestVerify_NoTruncationAtBcryptLimit(t *testing.T) {
	h := newTestHasher()

	prefix := strings.Repeat("x", MaxPasswordBytes)
	prefixHash, err := h.Hash(prefix)
	require.NoError(t, err)

	longer := prefix + "x"
	assert.False(t, h.Verify(longer, prefixHash))

	longerHash, err := h.Hash(longer)
	require.NoError(t, err)
	assert.False(t, h.Verify(prefix, longerHash))
	assert.True(t, h.Verify(longer, longerHash))
}

func TestVerify(t *testing.T) {
	h := newTestHasher()
	hash, err := h.Hash("correct horse")
	require.NoError(t, err)

	tests := []struct {
		name  string
		plain string
		hash  string
		want  bool
	}{
		{name: "match", plain: "correct horse", hash: hash, want: true},
		{name: "mismatch", plain: "battery staple", hash: hash, want: false},
		{name: "empty candidate", plain: "", hash: hash, want: false},
		{name: "malformed hash", plain: "correct horse", hash: "not-a-hash", want: false},
		{name: "empty hash", plain: "correct horse", hash: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Verify(tt.plain, tt.hash))
		})
	}
}

func TestVerify_HashFromOtherCost(t *testing.T) {
	hash, err := NewBcryptHasher(bcrypt.MinCost + 1).Hash("pw")
	require.NoError(t, err)

	assert.True(t, newTestHasher().Verify("pw", hash))
}
