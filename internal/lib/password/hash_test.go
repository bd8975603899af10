package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{
			name:     "обычный пароль соискателя",
			password: "iwillgetthisjob1",
		},
		{
			name:     "пароль со спецсимволами",
			password: "h0pe&despair!@#",
		},
		{
			name:     "длинный пароль",
			password: "one-hundred-rejections-and-still-filling-out-forms",
		},
		{
			name:     "минимально допустимая длина",
			password: "8chars!!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := GetHash(tt.password)
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			// хэш никогда не совпадает с исходным паролем
			assert.NotEqual(t, tt.password, hash)

			assert.NoError(t, CompareHash(hash, tt.password))
		})
	}
}

func TestCompareHash(t *testing.T) {
	correctHash, err := GetHash("iwillgetthisjob1")
	require.NoError(t, err)

	otherHash, err := GetHash("rejection-season")
	require.NoError(t, err)

	tests := []struct {
		name        string
		hash        string
		password    string
		shouldMatch bool
	}{
		{
			name:        "верный пароль",
			hash:        correctHash,
			password:    "iwillgetthisjob1",
			shouldMatch: true,
		},
		{
			name:        "неверный пароль",
			hash:        correctHash,
			password:    "iwillgetthisjob2",
			shouldMatch: false,
		},
		{
			name:        "чужой хэш",
			hash:        otherHash,
			password:    "iwillgetthisjob1",
			shouldMatch: false,
		},
		{
			name:        "пустой пароль",
			hash:        correctHash,
			password:    "",
			shouldMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(tt.hash, tt.password)
			if tt.shouldMatch {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGetHash_SamePasswordDifferentHashes(t *testing.T) {
	// bcrypt солёный: повторное хэширование того же пароля даёт другой хэш
	first, err := GetHash("iwillgetthisjob1")
	require.NoError(t, err)

	second, err := GetHash("iwillgetthisjob1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, CompareHash(first, "iwillgetthisjob1"))
	assert.NoError(t, CompareHash(second, "iwillgetthisjob1"))
}
