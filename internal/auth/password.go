package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// Cost — рабочий фактор bcrypt для новых хэшей.
var Cost = bcrypt.DefaultCost

// префикс passlib pbkdf2_sha256: $pbkdf2-sha256$<rounds>$<salt>$<checksum>
const legacyPrefix = "$pbkdf2-sha256$"

// HashPassword возвращает bcrypt-хэш со случайной солью:
// два вызова с одним паролем дают разные строки, обе проходят VerifyPassword.
// Хэшируется любая строка, включая пустую и длиннее 72 байт.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword(prehash(password), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword сверяет пароль с хэшем. Битый или незнакомый хэш — просто false.
func VerifyPassword(password, hash string) bool {
	if hash == "" {
		return false
	}
	if strings.HasPrefix(hash, legacyPrefix) {
		return verifyLegacy(password, hash)
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(password)) == nil
}

// prehash: bcrypt видит только первые 72 байта, поэтому отдаём ему
// base64(sha256(пароль)), 44 байта без нулей.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// NeedsRehash — хэш из старой базы (passlib), после входа его стоит заменить на bcrypt.
func NeedsRehash(hash string) bool {
	return strings.HasPrefix(hash, legacyPrefix)
}

func verifyLegacy(password, hash string) bool {
	// "", "pbkdf2-sha256", rounds, salt, checksum
	parts := strings.Split(hash, "$")
	if len(parts) != 5 {
		return false
	}
	rounds, err := strconv.Atoi(parts[2])
	if err != nil || rounds < 1 {
		return false
	}
	salt, err := decodeAB64(parts[3])
	if err != nil {
		return false
	}
	want, err := decodeAB64(parts[4])
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(password), salt, rounds, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// passlib "adapted base64": '.' вместо '+', без паддинга.
func decodeAB64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
}
