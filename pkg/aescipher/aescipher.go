package aescipher

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey ключ или вектор инициализации не подходят для AES-CBC
	ErrInvalidKey = errors.New("aescipher: invalid key or IV")
	// ErrInvalidCiphertext шифртекст не разбирается или имеет неверную длину
	ErrInvalidCiphertext = errors.New("aescipher: invalid ciphertext")
	// ErrInvalidPadding дополнение PKCS#7 повреждено (обычно из-за неверного ключа)
	ErrInvalidPadding = errors.New("aescipher: invalid padding")
)

// Decrypt расшифровывает строку, зашифрованную AES-CBC с дополнением PKCS#7.
// Шифртекст передаётся в base64, ключ и вектор инициализации в hex.
func Decrypt(ciphertextB64, keyHex, ivHex string) (string, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return "", fmt.Errorf("%w: key is not valid hex: %v", ErrInvalidKey, err)
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return "", fmt.Errorf("%w: IV is not valid hex: %v", ErrInvalidKey, err)
	}
	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: IV must be %d bytes, got %d", ErrInvalidKey, aes.BlockSize, len(iv))
	}

	ciphertext, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		return "", fmt.Errorf("%w: not valid base64: %v", ErrInvalidCiphertext, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: length %d is not a multiple of the block size", ErrInvalidCiphertext, len(ciphertext))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	plain, err = stripPKCS7(plain)
	if err != nil {
		return "", err
	}

	return string(plain), nil
}

func stripPKCS7(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrInvalidPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, ErrInvalidPadding
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, ErrInvalidPadding
		}
	}
	return b[:len(b)-n], nil
}
