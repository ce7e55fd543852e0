//go:generate mockgen -package mock_crypt -destination mock/password.go github.com/RoyceAzure/lab/bookshop/internal/pkg/crypt IPasswordHasher

package crypt

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultCost = 10
	// bcrypt 只吃前 72 bytes, x/crypto 超過會直接回錯
	MaxInputBytes = 72
)

type IPasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, digest string) bool
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (b *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(clip(plaintext), b.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare 比對失敗或 digest 格式錯誤都回傳 false
func (b *BcryptHasher) Compare(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), clip(plaintext)) == nil
}

// clip Hash 與 Compare 必須用同一個截斷
func clip(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > MaxInputBytes {
		b = b[:MaxInputBytes]
	}
	return b
}
