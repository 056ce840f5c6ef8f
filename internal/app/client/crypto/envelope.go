// internal/app/client/crypto/envelope.go
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Константы для PBKDF2
	pbkdf2Iterations = 100000
	pbkdf2KeyLength  = 32 // 256 бит для AES-256
	pbkdf2SaltLength = 16
)

// ErrWrongPassword возвращается, когда расшифровка не удалась. Неверный
// пароль и поврежденный конверт неразличимы - AES-GCM аутентифицирует
// шифротекст, правдоподобный мусор наружу не выходит.
var ErrWrongPassword = errors.New("wrong password or corrupt envelope")

// Encrypt шифрует открытый текст паролем. Конверт самоописывающий:
// base64(salt | nonce | ciphertext), для расшифровки нужен только пароль.
func Encrypt(plaintext, password string) (string, error) {
	salt := make([]byte, pbkdf2SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("ошибка генерации соли: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLength, sha256.New)

	ciphertext, err := encryptWithKey(key, []byte(plaintext))
	if err != nil {
		return "", err
	}

	envelope := make([]byte, 0, len(salt)+len(ciphertext))
	envelope = append(envelope, salt...)
	envelope = append(envelope, ciphertext...)

	return base64.StdEncoding.EncodeToString(envelope), nil
}

// Decrypt расшифровывает конверт. Любая ошибка аутентификации или пустой
// результат трактуются как неверный пароль.
func Decrypt(envelope, password string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", ErrWrongPassword
	}

	if len(raw) < pbkdf2SaltLength {
		return "", ErrWrongPassword
	}

	salt := raw[:pbkdf2SaltLength]
	ciphertext := raw[pbkdf2SaltLength:]

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLength, sha256.New)

	plaintext, err := decryptWithKey(key, ciphertext)
	if err != nil {
		return "", ErrWrongPassword
	}
	if len(plaintext) == 0 {
		return "", ErrWrongPassword
	}

	return string(plaintext), nil
}

// encryptWithKey шифрует данные с использованием AES-GCM
func encryptWithKey(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("ошибка генерации nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// decryptWithKey расшифровывает данные с использованием AES-GCM
func decryptWithKey(key, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания GCM: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("шифротекст слишком короткий")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
